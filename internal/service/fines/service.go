package fines

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/drivelink/drivelink/internal/domain"
	"github.com/drivelink/drivelink/internal/observability/telemetry"
	"github.com/drivelink/drivelink/internal/ports"
)

type Service struct {
	fines ports.FineRepository
	now   func() time.Time
	log   *zap.Logger
}

func NewService(fines ports.FineRepository, log *zap.Logger) ports.FineService {
	return &Service{
		fines: fines,
		now:   time.Now,
		log:   log,
	}
}

// NewServiceWithClock is used by tests to pin the payment timestamp.
func NewServiceWithClock(fines ports.FineRepository, now func() time.Time, log *zap.Logger) ports.FineService {
	return &Service{
		fines: fines,
		now:   now,
		log:   log,
	}
}

func (s *Service) GetFines(ctx context.Context, vehicleID int) ([]domain.Fine, error) {
	return s.fines.FindByVehicleID(ctx, vehicleID)
}

func (s *Service) GetOutstandingFines(ctx context.Context, vehicleID int) ([]domain.Fine, error) {
	return s.fines.FindOutstandingByVehicleID(ctx, vehicleID)
}

// Pay simulates the payment flow: the fine transitions to paid and the
// current time is recorded as the payment date no matter which payment
// method the client named. The method is echoed back by the handler, never
// persisted.
func (s *Service) Pay(ctx context.Context, id int, paymentMethod string) (*domain.Fine, error) {
	paidAt := s.now()
	fine, err := s.fines.UpdateStatus(ctx, id, domain.FineStatusPaid, &paidAt)
	if err != nil {
		return nil, err
	}
	if fine == nil {
		return nil, nil
	}

	telemetry.FinesPaidTotal.Inc()
	s.log.Info("Fine paid",
		zap.Int("fine_id", fine.ID),
		zap.String("amount", fine.Amount),
		zap.String("payment_method", paymentMethod),
	)
	return fine, nil
}

// Appeal marks the fine as appealed. The reason is echoed back in the
// response only; the data model has no field for it.
func (s *Service) Appeal(ctx context.Context, id int, reason string) (*domain.Fine, error) {
	fine, err := s.fines.UpdateStatus(ctx, id, domain.FineStatusAppealed, nil)
	if err != nil {
		return nil, err
	}
	if fine == nil {
		return nil, nil
	}

	telemetry.FinesAppealedTotal.Inc()
	s.log.Info("Fine appealed", zap.Int("fine_id", fine.ID))
	return fine, nil
}
