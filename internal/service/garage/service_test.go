package garage

import (
	"context"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/drivelink/drivelink/internal/domain"
	"github.com/drivelink/drivelink/internal/mocks"
)

func newTestLogger() *zap.Logger {
	logger, _ := zap.NewDevelopment()
	return logger
}

func newTestService(users *mocks.MockUserRepository, vehicles *mocks.MockVehicleRepository, drivers *mocks.MockDriverRepository) *Service {
	if users == nil {
		users = &mocks.MockUserRepository{}
	}
	if vehicles == nil {
		vehicles = &mocks.MockVehicleRepository{}
	}
	if drivers == nil {
		drivers = &mocks.MockDriverRepository{}
	}
	return NewService(users, vehicles, drivers, newTestLogger()).(*Service)
}

func TestGetUser(t *testing.T) {
	ctx := context.Background()
	mockUsers := &mocks.MockUserRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*domain.User, error) {
			if id == 1 {
				return &domain.User{ID: 1, Username: "johndoe"}, nil
			}
			return nil, nil
		},
	}
	service := newTestService(mockUsers, nil, nil)

	user, err := service.GetUser(ctx, 1)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if user == nil || user.Username != "johndoe" {
		t.Errorf("expected johndoe, got %+v", user)
	}

	missing, err := service.GetUser(ctx, 999)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing user, got %+v", missing)
	}
}

func TestAddDriver(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockDrivers := &mocks.MockDriverRepository{
		CreateFunc: func(ctx context.Context, input domain.NewDriver) (*domain.Driver, error) {
			return &domain.Driver{
				ID:           7,
				VehicleID:    input.VehicleID,
				Name:         input.Name,
				Relationship: input.Relationship,
				IsActive:     input.IsActive,
				CreatedAt:    time.Now(),
			}, nil
		},
	}
	service := newTestService(nil, nil, mockDrivers)

	// Act
	driver, err := service.AddDriver(ctx, domain.NewDriver{VehicleID: 3, Name: "Emma", Relationship: "Friend"})

	// Assert
	if err != nil {
		t.Fatalf("AddDriver failed: %v", err)
	}
	if driver.ID != 7 {
		t.Errorf("expected id 7, got %d", driver.ID)
	}
	if driver.Name != "Emma" {
		t.Errorf("expected Emma, got %s", driver.Name)
	}
}

func TestSetDriverStatus(t *testing.T) {
	// Arrange
	ctx := context.Background()
	var gotID int
	var gotActive bool
	mockDrivers := &mocks.MockDriverRepository{
		UpdateStatusFunc: func(ctx context.Context, id int, isActive bool) (*domain.Driver, error) {
			gotID, gotActive = id, isActive
			return &domain.Driver{ID: id, VehicleID: 1, IsActive: isActive}, nil
		},
	}
	service := newTestService(nil, nil, mockDrivers)

	// Act
	driver, err := service.SetDriverStatus(ctx, 2, true)

	// Assert
	if err != nil {
		t.Fatalf("SetDriverStatus failed: %v", err)
	}
	if gotID != 2 || !gotActive {
		t.Errorf("expected UpdateStatus(2, true), got (%d, %v)", gotID, gotActive)
	}
	if !driver.IsActive {
		t.Error("expected driver to be active")
	}
}

func TestSetDriverStatus_MissingDriver(t *testing.T) {
	ctx := context.Background()
	mockDrivers := &mocks.MockDriverRepository{
		UpdateStatusFunc: func(ctx context.Context, id int, isActive bool) (*domain.Driver, error) {
			return nil, nil
		},
	}
	service := newTestService(nil, nil, mockDrivers)

	driver, err := service.SetDriverStatus(ctx, 999, true)
	if err != nil {
		t.Fatalf("SetDriverStatus failed: %v", err)
	}
	if driver != nil {
		t.Errorf("expected nil for missing driver, got %+v", driver)
	}
}
