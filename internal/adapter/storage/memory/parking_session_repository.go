package memory

import (
	"context"
	"sort"
	"time"

	"github.com/drivelink/drivelink/internal/domain"
	"github.com/drivelink/drivelink/internal/ports"
)

type ParkingSessionRepository struct {
	store *Store
}

func NewParkingSessionRepository(store *Store) ports.ParkingSessionRepository {
	return &ParkingSessionRepository{store: store}
}

func (r *ParkingSessionRepository) Create(ctx context.Context, input domain.NewParkingSession) (*domain.ParkingSession, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	status := input.Status
	if status == "" {
		status = domain.ParkingSessionStatusActive
	}
	paymentStatus := input.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = domain.PaymentStatusUnpaid
	}

	session := &domain.ParkingSession{
		ID:            s.parkingSessionIDs.next(),
		VehicleID:     input.VehicleID,
		DriverID:      input.DriverID,
		Location:      input.Location,
		CarParkNumber: input.CarParkNumber,
		StartTime:     time.Now(),
		EndTime:       input.EndTime,
		HourlyRate:    input.HourlyRate,
		TotalCost:     input.TotalCost,
		Status:        status,
		PaymentStatus: paymentStatus,
	}
	s.parkingSessions[session.ID] = session

	out := *session
	return &out, nil
}

func (r *ParkingSessionRepository) FindByID(ctx context.Context, id int) (*domain.ParkingSession, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.parkingSessions[id]
	if !ok {
		return nil, nil
	}
	out := *session
	return &out, nil
}

// FindByVehicleID returns the vehicle's sessions most recent first.
func (r *ParkingSessionRepository) FindByVehicleID(ctx context.Context, vehicleID int) ([]domain.ParkingSession, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]domain.ParkingSession, 0)
	for _, session := range s.parkingSessions {
		if session.VehicleID == vehicleID {
			sessions = append(sessions, *session)
		}
	}
	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].StartTime.After(sessions[j].StartTime)
	})
	return sessions, nil
}

func (r *ParkingSessionRepository) FindActiveByVehicleID(ctx context.Context, vehicleID int) (*domain.ParkingSession, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, session := range s.parkingSessions {
		if session.VehicleID == vehicleID && session.Status == domain.ParkingSessionStatusActive {
			out := *session
			return &out, nil
		}
	}
	return nil, nil
}

// Update merges the non-nil patch fields into the session in place.
func (r *ParkingSessionRepository) Update(ctx context.Context, id int, patch domain.ParkingSessionPatch) (*domain.ParkingSession, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.parkingSessions[id]
	if !ok {
		return nil, nil
	}

	if patch.Location != nil {
		session.Location = *patch.Location
	}
	if patch.CarParkNumber != nil {
		session.CarParkNumber = *patch.CarParkNumber
	}
	if patch.EndTime != nil {
		session.EndTime = patch.EndTime
	}
	if patch.HourlyRate != nil {
		session.HourlyRate = *patch.HourlyRate
	}
	if patch.TotalCost != nil {
		session.TotalCost = patch.TotalCost
	}
	if patch.Status != nil {
		session.Status = *patch.Status
	}
	if patch.PaymentStatus != nil {
		session.PaymentStatus = *patch.PaymentStatus
	}

	out := *session
	return &out, nil
}
