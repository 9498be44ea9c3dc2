package garage

import (
	"context"

	"go.uber.org/zap"

	"github.com/drivelink/drivelink/internal/domain"
	"github.com/drivelink/drivelink/internal/ports"
)

type Service struct {
	users    ports.UserRepository
	vehicles ports.VehicleRepository
	drivers  ports.DriverRepository
	log      *zap.Logger
}

func NewService(users ports.UserRepository, vehicles ports.VehicleRepository, drivers ports.DriverRepository, log *zap.Logger) ports.GarageService {
	return &Service{
		users:    users,
		vehicles: vehicles,
		drivers:  drivers,
		log:      log,
	}
}

func (s *Service) GetUser(ctx context.Context, id int) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *Service) GetVehicles(ctx context.Context, userID int) ([]domain.Vehicle, error) {
	return s.vehicles.FindByUserID(ctx, userID)
}

func (s *Service) GetVehicle(ctx context.Context, id int) (*domain.Vehicle, error) {
	return s.vehicles.FindByID(ctx, id)
}

func (s *Service) GetDrivers(ctx context.Context, vehicleID int) ([]domain.Driver, error) {
	return s.drivers.FindByVehicleID(ctx, vehicleID)
}

func (s *Service) GetActiveDriver(ctx context.Context, vehicleID int) (*domain.Driver, error) {
	return s.drivers.FindActiveByVehicleID(ctx, vehicleID)
}

func (s *Service) AddDriver(ctx context.Context, input domain.NewDriver) (*domain.Driver, error) {
	driver, err := s.drivers.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	s.log.Info("Driver added",
		zap.Int("driver_id", driver.ID),
		zap.Int("vehicle_id", driver.VehicleID),
	)
	return driver, nil
}

func (s *Service) SetDriverStatus(ctx context.Context, id int, isActive bool) (*domain.Driver, error) {
	driver, err := s.drivers.UpdateStatus(ctx, id, isActive)
	if err != nil {
		return nil, err
	}
	if driver == nil {
		return nil, nil
	}

	s.log.Info("Driver status updated",
		zap.Int("driver_id", driver.ID),
		zap.Bool("is_active", driver.IsActive),
	)
	return driver, nil
}
