package fines

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

func TestPay_StampsPaymentDate(t *testing.T) {
	// Arrange
	ctx := context.Background()
	paidAt := time.Date(2024, 4, 2, 10, 30, 0, 0, time.UTC)

	var gotStatus domain.FineStatus
	var gotPaymentDate *time.Time
	mockRepo := &mocks.MockFineRepository{
		UpdateStatusFunc: func(ctx context.Context, id int, status domain.FineStatus, paymentDate *time.Time) (*domain.Fine, error) {
			gotStatus = status
			gotPaymentDate = paymentDate
			return &domain.Fine{
				ID:          id,
				VehicleID:   1,
				Amount:      "80.00",
				Status:      status,
				PaymentDate: paymentDate,
			}, nil
		},
	}

	service := NewServiceWithClock(mockRepo, func() time.Time { return paidAt }, newTestLogger())

	// Act
	fine, err := service.Pay(ctx, 1, "card")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if fine == nil {
		t.Fatal("expected a fine, got nil")
	}
	if gotStatus != domain.FineStatusPaid {
		t.Errorf("expected status paid, got %s", gotStatus)
	}
	if gotPaymentDate == nil || !gotPaymentDate.Equal(paidAt) {
		t.Errorf("expected payment date %v, got %v", paidAt, gotPaymentDate)
	}
}

func TestPay_MissingFine(t *testing.T) {
	ctx := context.Background()
	mockRepo := &mocks.MockFineRepository{
		UpdateStatusFunc: func(ctx context.Context, id int, status domain.FineStatus, paymentDate *time.Time) (*domain.Fine, error) {
			return nil, nil
		},
	}
	service := NewService(mockRepo, newTestLogger())

	fine, err := service.Pay(ctx, 999, "card")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if fine != nil {
		t.Errorf("expected nil for missing fine, got %+v", fine)
	}
}

func TestAppeal_DoesNotTouchPaymentDate(t *testing.T) {
	// Arrange
	ctx := context.Background()

	var gotStatus domain.FineStatus
	var gotPaymentDate *time.Time
	mockRepo := &mocks.MockFineRepository{
		UpdateStatusFunc: func(ctx context.Context, id int, status domain.FineStatus, paymentDate *time.Time) (*domain.Fine, error) {
			gotStatus = status
			gotPaymentDate = paymentDate
			return &domain.Fine{ID: id, VehicleID: 1, Status: status}, nil
		},
	}
	service := NewService(mockRepo, newTestLogger())

	// Act
	fine, err := service.Appeal(ctx, 2, "Meter was broken")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if fine.Status != domain.FineStatusAppealed {
		t.Errorf("expected status appealed, got %s", fine.Status)
	}
	if gotStatus != domain.FineStatusAppealed {
		t.Errorf("expected repo call with appealed, got %s", gotStatus)
	}
	if gotPaymentDate != nil {
		t.Errorf("expected no payment date on appeal, got %v", gotPaymentDate)
	}
}

func TestGetOutstandingFines_Delegates(t *testing.T) {
	ctx := context.Background()
	mockRepo := &mocks.MockFineRepository{
		FindOutstandingByVehicleIDFunc: func(ctx context.Context, vehicleID int) ([]domain.Fine, error) {
			return []domain.Fine{
				{ID: 1, VehicleID: vehicleID, Status: domain.FineStatusPending},
				{ID: 2, VehicleID: vehicleID, Status: domain.FineStatusAppealed},
			}, nil
		},
	}
	service := NewService(mockRepo, newTestLogger())

	fines, err := service.GetOutstandingFines(ctx, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(fines) != 2 {
		t.Errorf("expected 2 fines, got %d", len(fines))
	}
}
