package ports

import (
	"context"

	"github.com/drivelink/drivelink/internal/domain"
)

// GarageService covers the account side of the app: the user, their
// vehicles, and the named drivers on each vehicle.
type GarageService interface {
	GetUser(ctx context.Context, id int) (*domain.User, error)
	GetVehicles(ctx context.Context, userID int) ([]domain.Vehicle, error)
	GetVehicle(ctx context.Context, id int) (*domain.Vehicle, error)
	GetDrivers(ctx context.Context, vehicleID int) ([]domain.Driver, error)
	GetActiveDriver(ctx context.Context, vehicleID int) (*domain.Driver, error)
	AddDriver(ctx context.Context, input domain.NewDriver) (*domain.Driver, error)
	SetDriverStatus(ctx context.Context, id int, isActive bool) (*domain.Driver, error)
}

type ParkingService interface {
	ListCarParks(ctx context.Context) ([]domain.CarPark, error)
	ListNearbyCarParks(ctx context.Context, lat, lng, radius float64) ([]domain.CarPark, error)
	GetCarPark(ctx context.Context, id int) (*domain.CarPark, error)
	UpdateCarParkSpaces(ctx context.Context, id int, availableSpaces int) (*domain.CarPark, error)
	GetSessions(ctx context.Context, vehicleID int) ([]domain.ParkingSession, error)
	GetActiveSession(ctx context.Context, vehicleID int) (*domain.ParkingSession, error)
	StartSession(ctx context.Context, input domain.NewParkingSession) (*domain.ParkingSession, error)
	UpdateSession(ctx context.Context, id int, patch domain.ParkingSessionPatch) (*domain.ParkingSession, error)
}

type ServicingService interface {
	GetRecords(ctx context.Context, vehicleID int) ([]domain.ServiceRecord, error)
	AddRecord(ctx context.Context, input domain.NewServiceRecord) (*domain.ServiceRecord, error)
	GetNextServiceDue(ctx context.Context, vehicleID int) (*domain.ServiceRecord, error)
}

// FineService exposes fine queries plus the two simulated flows: payment
// (always succeeds, stamps the payment time) and appeal.
type FineService interface {
	GetFines(ctx context.Context, vehicleID int) ([]domain.Fine, error)
	GetOutstandingFines(ctx context.Context, vehicleID int) ([]domain.Fine, error)
	Pay(ctx context.Context, id int, paymentMethod string) (*domain.Fine, error)
	Appeal(ctx context.Context, id int, reason string) (*domain.Fine, error)
}

// AssistantService is the mock AI diagnostics chat.
type AssistantService interface {
	Chat(ctx context.Context, message string, conversation []domain.ChatMessage) (*domain.ChatReply, error)
}
