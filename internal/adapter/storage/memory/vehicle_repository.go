package memory

import (
	"context"
	"sort"
	"time"

	"github.com/drivelink/drivelink/internal/domain"
	"github.com/drivelink/drivelink/internal/ports"
)

type VehicleRepository struct {
	store *Store
}

func NewVehicleRepository(store *Store) ports.VehicleRepository {
	return &VehicleRepository{store: store}
}

func (r *VehicleRepository) Create(ctx context.Context, input domain.NewVehicle) (*domain.Vehicle, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, v := range s.vehicles {
		if v.Registration == input.Registration {
			return nil, domain.ErrDuplicateRegistration
		}
	}

	vehicle := &domain.Vehicle{
		ID:           s.vehicleIDs.next(),
		UserID:       input.UserID,
		Registration: input.Registration,
		Make:         input.Make,
		Model:        input.Model,
		Year:         input.Year,
		Color:        input.Color,
		CreatedAt:    time.Now(),
	}
	s.vehicles[vehicle.ID] = vehicle

	out := *vehicle
	return &out, nil
}

func (r *VehicleRepository) FindByID(ctx context.Context, id int) (*domain.Vehicle, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	vehicle, ok := s.vehicles[id]
	if !ok {
		return nil, nil
	}
	out := *vehicle
	return &out, nil
}

func (r *VehicleRepository) FindByUserID(ctx context.Context, userID int) ([]domain.Vehicle, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	vehicles := make([]domain.Vehicle, 0)
	for _, vehicle := range s.vehicles {
		if vehicle.UserID == userID {
			vehicles = append(vehicles, *vehicle)
		}
	}
	sort.Slice(vehicles, func(i, j int) bool { return vehicles[i].ID < vehicles[j].ID })
	return vehicles, nil
}
