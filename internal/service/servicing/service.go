package servicing

import (
	"context"

	"go.uber.org/zap"

	"github.com/drivelink/drivelink/internal/domain"
	"github.com/drivelink/drivelink/internal/ports"
)

type Service struct {
	records ports.ServiceRecordRepository
	log     *zap.Logger
}

func NewService(records ports.ServiceRecordRepository, log *zap.Logger) ports.ServicingService {
	return &Service{
		records: records,
		log:     log,
	}
}

func (s *Service) GetRecords(ctx context.Context, vehicleID int) ([]domain.ServiceRecord, error) {
	return s.records.FindByVehicleID(ctx, vehicleID)
}

func (s *Service) AddRecord(ctx context.Context, input domain.NewServiceRecord) (*domain.ServiceRecord, error) {
	record, err := s.records.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	s.log.Info("Service record added",
		zap.Int("record_id", record.ID),
		zap.Int("vehicle_id", record.VehicleID),
		zap.String("service_type", record.ServiceType),
	)
	return record, nil
}

func (s *Service) GetNextServiceDue(ctx context.Context, vehicleID int) (*domain.ServiceRecord, error) {
	return s.records.FindNextDueByVehicleID(ctx, vehicleID)
}
