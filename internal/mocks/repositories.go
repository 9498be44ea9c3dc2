package mocks

import (
	"context"
	"time"

	"github.com/drivelink/drivelink/internal/domain"
)

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	CreateFunc         func(ctx context.Context, input domain.NewUser) (*domain.User, error)
	FindByIDFunc       func(ctx context.Context, id int) (*domain.User, error)
	FindByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
}

func (m *MockUserRepository) Create(ctx context.Context, input domain.NewUser) (*domain.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, input)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int) (*domain.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.FindByUsernameFunc != nil {
		return m.FindByUsernameFunc(ctx, username)
	}
	return nil, nil
}

// MockVehicleRepository is a mock implementation of VehicleRepository
type MockVehicleRepository struct {
	CreateFunc       func(ctx context.Context, input domain.NewVehicle) (*domain.Vehicle, error)
	FindByIDFunc     func(ctx context.Context, id int) (*domain.Vehicle, error)
	FindByUserIDFunc func(ctx context.Context, userID int) ([]domain.Vehicle, error)
}

func (m *MockVehicleRepository) Create(ctx context.Context, input domain.NewVehicle) (*domain.Vehicle, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, input)
	}
	return nil, nil
}

func (m *MockVehicleRepository) FindByID(ctx context.Context, id int) (*domain.Vehicle, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockVehicleRepository) FindByUserID(ctx context.Context, userID int) ([]domain.Vehicle, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return []domain.Vehicle{}, nil
}

// MockDriverRepository is a mock implementation of DriverRepository
type MockDriverRepository struct {
	CreateFunc                func(ctx context.Context, input domain.NewDriver) (*domain.Driver, error)
	FindByIDFunc              func(ctx context.Context, id int) (*domain.Driver, error)
	FindByVehicleIDFunc       func(ctx context.Context, vehicleID int) ([]domain.Driver, error)
	FindActiveByVehicleIDFunc func(ctx context.Context, vehicleID int) (*domain.Driver, error)
	UpdateStatusFunc          func(ctx context.Context, id int, isActive bool) (*domain.Driver, error)
}

func (m *MockDriverRepository) Create(ctx context.Context, input domain.NewDriver) (*domain.Driver, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, input)
	}
	return nil, nil
}

func (m *MockDriverRepository) FindByID(ctx context.Context, id int) (*domain.Driver, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockDriverRepository) FindByVehicleID(ctx context.Context, vehicleID int) ([]domain.Driver, error) {
	if m.FindByVehicleIDFunc != nil {
		return m.FindByVehicleIDFunc(ctx, vehicleID)
	}
	return []domain.Driver{}, nil
}

func (m *MockDriverRepository) FindActiveByVehicleID(ctx context.Context, vehicleID int) (*domain.Driver, error) {
	if m.FindActiveByVehicleIDFunc != nil {
		return m.FindActiveByVehicleIDFunc(ctx, vehicleID)
	}
	return nil, nil
}

func (m *MockDriverRepository) UpdateStatus(ctx context.Context, id int, isActive bool) (*domain.Driver, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, isActive)
	}
	return nil, nil
}

// MockParkingSessionRepository is a mock implementation of ParkingSessionRepository
type MockParkingSessionRepository struct {
	CreateFunc                func(ctx context.Context, input domain.NewParkingSession) (*domain.ParkingSession, error)
	FindByIDFunc              func(ctx context.Context, id int) (*domain.ParkingSession, error)
	FindByVehicleIDFunc       func(ctx context.Context, vehicleID int) ([]domain.ParkingSession, error)
	FindActiveByVehicleIDFunc func(ctx context.Context, vehicleID int) (*domain.ParkingSession, error)
	UpdateFunc                func(ctx context.Context, id int, patch domain.ParkingSessionPatch) (*domain.ParkingSession, error)
}

func (m *MockParkingSessionRepository) Create(ctx context.Context, input domain.NewParkingSession) (*domain.ParkingSession, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, input)
	}
	return nil, nil
}

func (m *MockParkingSessionRepository) FindByID(ctx context.Context, id int) (*domain.ParkingSession, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockParkingSessionRepository) FindByVehicleID(ctx context.Context, vehicleID int) ([]domain.ParkingSession, error) {
	if m.FindByVehicleIDFunc != nil {
		return m.FindByVehicleIDFunc(ctx, vehicleID)
	}
	return []domain.ParkingSession{}, nil
}

func (m *MockParkingSessionRepository) FindActiveByVehicleID(ctx context.Context, vehicleID int) (*domain.ParkingSession, error) {
	if m.FindActiveByVehicleIDFunc != nil {
		return m.FindActiveByVehicleIDFunc(ctx, vehicleID)
	}
	return nil, nil
}

func (m *MockParkingSessionRepository) Update(ctx context.Context, id int, patch domain.ParkingSessionPatch) (*domain.ParkingSession, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, patch)
	}
	return nil, nil
}

// MockCarParkRepository is a mock implementation of CarParkRepository
type MockCarParkRepository struct {
	CreateFunc       func(ctx context.Context, input domain.NewCarPark) (*domain.CarPark, error)
	FindByIDFunc     func(ctx context.Context, id int) (*domain.CarPark, error)
	FindAllFunc      func(ctx context.Context) ([]domain.CarPark, error)
	FindNearbyFunc   func(ctx context.Context, lat, lng, radius float64) ([]domain.CarPark, error)
	UpdateSpacesFunc func(ctx context.Context, id int, availableSpaces int) (*domain.CarPark, error)
}

func (m *MockCarParkRepository) Create(ctx context.Context, input domain.NewCarPark) (*domain.CarPark, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, input)
	}
	return nil, nil
}

func (m *MockCarParkRepository) FindByID(ctx context.Context, id int) (*domain.CarPark, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCarParkRepository) FindAll(ctx context.Context) ([]domain.CarPark, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return []domain.CarPark{}, nil
}

func (m *MockCarParkRepository) FindNearby(ctx context.Context, lat, lng, radius float64) ([]domain.CarPark, error) {
	if m.FindNearbyFunc != nil {
		return m.FindNearbyFunc(ctx, lat, lng, radius)
	}
	return []domain.CarPark{}, nil
}

func (m *MockCarParkRepository) UpdateSpaces(ctx context.Context, id int, availableSpaces int) (*domain.CarPark, error) {
	if m.UpdateSpacesFunc != nil {
		return m.UpdateSpacesFunc(ctx, id, availableSpaces)
	}
	return nil, nil
}

// MockServiceRecordRepository is a mock implementation of ServiceRecordRepository
type MockServiceRecordRepository struct {
	CreateFunc                 func(ctx context.Context, input domain.NewServiceRecord) (*domain.ServiceRecord, error)
	FindByVehicleIDFunc        func(ctx context.Context, vehicleID int) ([]domain.ServiceRecord, error)
	FindNextDueByVehicleIDFunc func(ctx context.Context, vehicleID int) (*domain.ServiceRecord, error)
}

func (m *MockServiceRecordRepository) Create(ctx context.Context, input domain.NewServiceRecord) (*domain.ServiceRecord, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, input)
	}
	return nil, nil
}

func (m *MockServiceRecordRepository) FindByVehicleID(ctx context.Context, vehicleID int) ([]domain.ServiceRecord, error) {
	if m.FindByVehicleIDFunc != nil {
		return m.FindByVehicleIDFunc(ctx, vehicleID)
	}
	return []domain.ServiceRecord{}, nil
}

func (m *MockServiceRecordRepository) FindNextDueByVehicleID(ctx context.Context, vehicleID int) (*domain.ServiceRecord, error) {
	if m.FindNextDueByVehicleIDFunc != nil {
		return m.FindNextDueByVehicleIDFunc(ctx, vehicleID)
	}
	return nil, nil
}

// MockFineRepository is a mock implementation of FineRepository
type MockFineRepository struct {
	CreateFunc                     func(ctx context.Context, input domain.NewFine) (*domain.Fine, error)
	FindByIDFunc                   func(ctx context.Context, id int) (*domain.Fine, error)
	FindByVehicleIDFunc            func(ctx context.Context, vehicleID int) ([]domain.Fine, error)
	FindOutstandingByVehicleIDFunc func(ctx context.Context, vehicleID int) ([]domain.Fine, error)
	UpdateStatusFunc               func(ctx context.Context, id int, status domain.FineStatus, paymentDate *time.Time) (*domain.Fine, error)
}

func (m *MockFineRepository) Create(ctx context.Context, input domain.NewFine) (*domain.Fine, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, input)
	}
	return nil, nil
}

func (m *MockFineRepository) FindByID(ctx context.Context, id int) (*domain.Fine, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockFineRepository) FindByVehicleID(ctx context.Context, vehicleID int) ([]domain.Fine, error) {
	if m.FindByVehicleIDFunc != nil {
		return m.FindByVehicleIDFunc(ctx, vehicleID)
	}
	return []domain.Fine{}, nil
}

func (m *MockFineRepository) FindOutstandingByVehicleID(ctx context.Context, vehicleID int) ([]domain.Fine, error) {
	if m.FindOutstandingByVehicleIDFunc != nil {
		return m.FindOutstandingByVehicleIDFunc(ctx, vehicleID)
	}
	return []domain.Fine{}, nil
}

func (m *MockFineRepository) UpdateStatus(ctx context.Context, id int, status domain.FineStatus, paymentDate *time.Time) (*domain.Fine, error) {
	if m.UpdateStatusFunc != nil {
		return m.UpdateStatusFunc(ctx, id, status, paymentDate)
	}
	return nil, nil
}
