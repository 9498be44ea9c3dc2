package parking

import (
	"context"

	"go.uber.org/zap"

	"github.com/drivelink/drivelink/internal/domain"
	"github.com/drivelink/drivelink/internal/observability/telemetry"
	"github.com/drivelink/drivelink/internal/ports"
)

type Service struct {
	sessions ports.ParkingSessionRepository
	carParks ports.CarParkRepository
	log      *zap.Logger
}

func NewService(sessions ports.ParkingSessionRepository, carParks ports.CarParkRepository, log *zap.Logger) ports.ParkingService {
	return &Service{
		sessions: sessions,
		carParks: carParks,
		log:      log,
	}
}

func (s *Service) ListCarParks(ctx context.Context) ([]domain.CarPark, error) {
	return s.carParks.FindAll(ctx)
}

func (s *Service) ListNearbyCarParks(ctx context.Context, lat, lng, radius float64) ([]domain.CarPark, error) {
	return s.carParks.FindNearby(ctx, lat, lng, radius)
}

func (s *Service) GetCarPark(ctx context.Context, id int) (*domain.CarPark, error) {
	return s.carParks.FindByID(ctx, id)
}

func (s *Service) UpdateCarParkSpaces(ctx context.Context, id int, availableSpaces int) (*domain.CarPark, error) {
	return s.carParks.UpdateSpaces(ctx, id, availableSpaces)
}

func (s *Service) GetSessions(ctx context.Context, vehicleID int) ([]domain.ParkingSession, error) {
	return s.sessions.FindByVehicleID(ctx, vehicleID)
}

func (s *Service) GetActiveSession(ctx context.Context, vehicleID int) (*domain.ParkingSession, error) {
	return s.sessions.FindActiveByVehicleID(ctx, vehicleID)
}

// StartSession opens a new parking session. A vehicle may only have one
// active session, so a start while one is running is rejected with
// ErrActiveSessionExists.
func (s *Service) StartSession(ctx context.Context, input domain.NewParkingSession) (*domain.ParkingSession, error) {
	existing, err := s.sessions.FindActiveByVehicleID(ctx, input.VehicleID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrActiveSessionExists
	}

	session, err := s.sessions.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	if session.Status == domain.ParkingSessionStatusActive {
		telemetry.ParkingSessionsStartedTotal.Inc()
		telemetry.ActiveParkingSessions.Inc()
	}

	s.log.Info("Parking session started",
		zap.Int("session_id", session.ID),
		zap.Int("vehicle_id", session.VehicleID),
		zap.String("car_park", session.CarParkNumber),
	)
	return session, nil
}

func (s *Service) UpdateSession(ctx context.Context, id int, patch domain.ParkingSessionPatch) (*domain.ParkingSession, error) {
	before, err := s.sessions.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if before == nil {
		return nil, nil
	}

	session, err := s.sessions.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	if before.Status == domain.ParkingSessionStatusActive && session.Status != domain.ParkingSessionStatusActive {
		telemetry.ActiveParkingSessions.Dec()
		s.log.Info("Parking session closed",
			zap.Int("session_id", session.ID),
			zap.String("status", string(session.Status)),
		)
	}
	return session, nil
}
