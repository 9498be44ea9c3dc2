package parking

import (
	"context"
	"errors"
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

func TestStartSession_Success(t *testing.T) {
	// Arrange
	ctx := context.Background()
	mockSessions := &mocks.MockParkingSessionRepository{
		FindActiveByVehicleIDFunc: func(ctx context.Context, vehicleID int) (*domain.ParkingSession, error) {
			return nil, nil
		},
		CreateFunc: func(ctx context.Context, input domain.NewParkingSession) (*domain.ParkingSession, error) {
			return &domain.ParkingSession{
				ID:            2,
				VehicleID:     input.VehicleID,
				DriverID:      input.DriverID,
				CarParkNumber: input.CarParkNumber,
				StartTime:     time.Now(),
				HourlyRate:    input.HourlyRate,
				Status:        domain.ParkingSessionStatusActive,
				PaymentStatus: domain.PaymentStatusUnpaid,
			}, nil
		},
	}
	service := NewService(mockSessions, &mocks.MockCarParkRepository{}, newTestLogger())

	// Act
	session, err := service.StartSession(ctx, domain.NewParkingSession{
		VehicleID:     2,
		DriverID:      4,
		CarParkNumber: "P-042",
		HourlyRate:    "2.50",
	})

	// Assert
	if err != nil {
		t.Fatalf("StartSession failed: %v", err)
	}
	if session.Status != domain.ParkingSessionStatusActive {
		t.Errorf("expected active session, got %s", session.Status)
	}
	if session.PaymentStatus != domain.PaymentStatusUnpaid {
		t.Errorf("expected unpaid session, got %s", session.PaymentStatus)
	}
}

func TestStartSession_RejectsSecondActive(t *testing.T) {
	// Arrange
	ctx := context.Background()
	created := false
	mockSessions := &mocks.MockParkingSessionRepository{
		FindActiveByVehicleIDFunc: func(ctx context.Context, vehicleID int) (*domain.ParkingSession, error) {
			return &domain.ParkingSession{ID: 1, VehicleID: vehicleID, Status: domain.ParkingSessionStatusActive}, nil
		},
		CreateFunc: func(ctx context.Context, input domain.NewParkingSession) (*domain.ParkingSession, error) {
			created = true
			return nil, nil
		},
	}
	service := NewService(mockSessions, &mocks.MockCarParkRepository{}, newTestLogger())

	// Act
	session, err := service.StartSession(ctx, domain.NewParkingSession{VehicleID: 1, DriverID: 1})

	// Assert
	if !errors.Is(err, domain.ErrActiveSessionExists) {
		t.Fatalf("expected ErrActiveSessionExists, got %v", err)
	}
	if session != nil {
		t.Errorf("expected no session, got %+v", session)
	}
	if created {
		t.Error("expected Create not to be called")
	}
}

func TestUpdateSession_MissingSession(t *testing.T) {
	ctx := context.Background()
	mockSessions := &mocks.MockParkingSessionRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*domain.ParkingSession, error) {
			return nil, nil
		},
	}
	service := NewService(mockSessions, &mocks.MockCarParkRepository{}, newTestLogger())

	session, err := service.UpdateSession(ctx, 999, domain.ParkingSessionPatch{})
	if err != nil {
		t.Fatalf("UpdateSession failed: %v", err)
	}
	if session != nil {
		t.Errorf("expected nil for missing session, got %+v", session)
	}
}

func TestUpdateSession_ClosesActiveSession(t *testing.T) {
	// Arrange
	ctx := context.Background()
	stored := &domain.ParkingSession{
		ID:        1,
		VehicleID: 1,
		Status:    domain.ParkingSessionStatusActive,
	}
	mockSessions := &mocks.MockParkingSessionRepository{
		FindByIDFunc: func(ctx context.Context, id int) (*domain.ParkingSession, error) {
			out := *stored
			return &out, nil
		},
		UpdateFunc: func(ctx context.Context, id int, patch domain.ParkingSessionPatch) (*domain.ParkingSession, error) {
			if patch.Status != nil {
				stored.Status = *patch.Status
			}
			if patch.TotalCost != nil {
				stored.TotalCost = patch.TotalCost
			}
			out := *stored
			return &out, nil
		},
	}
	service := NewService(mockSessions, &mocks.MockCarParkRepository{}, newTestLogger())

	// Act
	completed := domain.ParkingSessionStatusCompleted
	cost := "5.00"
	session, err := service.UpdateSession(ctx, 1, domain.ParkingSessionPatch{Status: &completed, TotalCost: &cost})

	// Assert
	if err != nil {
		t.Fatalf("UpdateSession failed: %v", err)
	}
	if session.Status != domain.ParkingSessionStatusCompleted {
		t.Errorf("expected completed session, got %s", session.Status)
	}
	if session.TotalCost == nil || *session.TotalCost != "5.00" {
		t.Errorf("expected total cost 5.00, got %v", session.TotalCost)
	}
}

func TestListNearbyCarParks_Delegates(t *testing.T) {
	ctx := context.Background()
	var gotLat, gotLng, gotRadius float64
	mockParks := &mocks.MockCarParkRepository{
		FindNearbyFunc: func(ctx context.Context, lat, lng, radius float64) ([]domain.CarPark, error) {
			gotLat, gotLng, gotRadius = lat, lng, radius
			return []domain.CarPark{{ID: 1, Name: "Central Mall - P1"}}, nil
		},
	}
	service := NewService(&mocks.MockParkingSessionRepository{}, mockParks, newTestLogger())

	parks, err := service.ListNearbyCarParks(ctx, 51.5074, -0.1278, 5)
	if err != nil {
		t.Fatalf("ListNearbyCarParks failed: %v", err)
	}
	if len(parks) != 1 {
		t.Fatalf("expected 1 car park, got %d", len(parks))
	}
	if gotLat != 51.5074 || gotLng != -0.1278 || gotRadius != 5 {
		t.Errorf("expected coordinates forwarded, got %f %f %f", gotLat, gotLng, gotRadius)
	}
}
