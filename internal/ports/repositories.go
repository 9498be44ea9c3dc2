package ports

import (
	"context"
	"time"

	"github.com/drivelink/drivelink/internal/domain"
)

// Repository lookups return (nil, nil) when the id has no matching entity;
// errors are reserved for rule violations such as uniqueness conflicts.

type UserRepository interface {
	Create(ctx context.Context, input domain.NewUser) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, input domain.NewVehicle) (*domain.Vehicle, error)
	FindByID(ctx context.Context, id int) (*domain.Vehicle, error)
	FindByUserID(ctx context.Context, userID int) ([]domain.Vehicle, error)
}

type DriverRepository interface {
	Create(ctx context.Context, input domain.NewDriver) (*domain.Driver, error)
	FindByID(ctx context.Context, id int) (*domain.Driver, error)
	FindByVehicleID(ctx context.Context, vehicleID int) ([]domain.Driver, error)
	FindActiveByVehicleID(ctx context.Context, vehicleID int) (*domain.Driver, error)
	UpdateStatus(ctx context.Context, id int, isActive bool) (*domain.Driver, error)
}

type ParkingSessionRepository interface {
	Create(ctx context.Context, input domain.NewParkingSession) (*domain.ParkingSession, error)
	FindByID(ctx context.Context, id int) (*domain.ParkingSession, error)
	FindByVehicleID(ctx context.Context, vehicleID int) ([]domain.ParkingSession, error)
	FindActiveByVehicleID(ctx context.Context, vehicleID int) (*domain.ParkingSession, error)
	Update(ctx context.Context, id int, patch domain.ParkingSessionPatch) (*domain.ParkingSession, error)
}

type CarParkRepository interface {
	Create(ctx context.Context, input domain.NewCarPark) (*domain.CarPark, error)
	FindByID(ctx context.Context, id int) (*domain.CarPark, error)
	FindAll(ctx context.Context) ([]domain.CarPark, error)
	FindNearby(ctx context.Context, lat, lng, radius float64) ([]domain.CarPark, error)
	UpdateSpaces(ctx context.Context, id int, availableSpaces int) (*domain.CarPark, error)
}

type ServiceRecordRepository interface {
	Create(ctx context.Context, input domain.NewServiceRecord) (*domain.ServiceRecord, error)
	FindByVehicleID(ctx context.Context, vehicleID int) ([]domain.ServiceRecord, error)
	FindNextDueByVehicleID(ctx context.Context, vehicleID int) (*domain.ServiceRecord, error)
}

type FineRepository interface {
	Create(ctx context.Context, input domain.NewFine) (*domain.Fine, error)
	FindByID(ctx context.Context, id int) (*domain.Fine, error)
	FindByVehicleID(ctx context.Context, vehicleID int) ([]domain.Fine, error)
	FindOutstandingByVehicleID(ctx context.Context, vehicleID int) ([]domain.Fine, error)
	UpdateStatus(ctx context.Context, id int, status domain.FineStatus, paymentDate *time.Time) (*domain.Fine, error)
}
