package memory

import (
	"context"
	"sort"
	"time"

	"github.com/drivelink/drivelink/internal/domain"
	"github.com/drivelink/drivelink/internal/ports"
)

type DriverRepository struct {
	store *Store
}

func NewDriverRepository(store *Store) ports.DriverRepository {
	return &DriverRepository{store: store}
}

func (r *DriverRepository) Create(ctx context.Context, input domain.NewDriver) (*domain.Driver, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	driver := &domain.Driver{
		ID:           s.driverIDs.next(),
		VehicleID:    input.VehicleID,
		Name:         input.Name,
		Relationship: input.Relationship,
		IsActive:     input.IsActive,
		CreatedAt:    time.Now(),
	}
	s.drivers[driver.ID] = driver

	out := *driver
	return &out, nil
}

func (r *DriverRepository) FindByID(ctx context.Context, id int) (*domain.Driver, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	driver, ok := s.drivers[id]
	if !ok {
		return nil, nil
	}
	out := *driver
	return &out, nil
}

func (r *DriverRepository) FindByVehicleID(ctx context.Context, vehicleID int) ([]domain.Driver, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	drivers := make([]domain.Driver, 0)
	for _, driver := range s.drivers {
		if driver.VehicleID == vehicleID {
			drivers = append(drivers, *driver)
		}
	}
	sort.Slice(drivers, func(i, j int) bool { return drivers[i].ID < drivers[j].ID })
	return drivers, nil
}

func (r *DriverRepository) FindActiveByVehicleID(ctx context.Context, vehicleID int) (*domain.Driver, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, driver := range s.drivers {
		if driver.VehicleID == vehicleID && driver.IsActive {
			out := *driver
			return &out, nil
		}
	}
	return nil, nil
}

// UpdateStatus flips a driver's active flag. Activating a driver deactivates
// every other driver of the same vehicle first, under one lock acquisition,
// which is what keeps the one-active-driver invariant. Deactivating touches
// only the target.
func (r *DriverRepository) UpdateStatus(ctx context.Context, id int, isActive bool) (*domain.Driver, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	driver, ok := s.drivers[id]
	if !ok {
		return nil, nil
	}

	if isActive {
		for _, other := range s.drivers {
			if other.VehicleID == driver.VehicleID && other.ID != id {
				other.IsActive = false
			}
		}
	}
	driver.IsActive = isActive

	out := *driver
	return &out, nil
}
