package memory

import (
	"context"
	"sort"

	"github.com/drivelink/drivelink/internal/domain"
	"github.com/drivelink/drivelink/internal/ports"
)

type CarParkRepository struct {
	store *Store
}

func NewCarParkRepository(store *Store) ports.CarParkRepository {
	return &CarParkRepository{store: store}
}

func (r *CarParkRepository) Create(ctx context.Context, input domain.NewCarPark) (*domain.CarPark, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	status := input.Status
	if status == "" {
		status = domain.DeriveCarParkStatus(input.AvailableSpaces, input.TotalSpaces)
	}

	park := &domain.CarPark{
		ID:              s.carParkIDs.next(),
		Name:            input.Name,
		Location:        input.Location,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		TotalSpaces:     input.TotalSpaces,
		AvailableSpaces: input.AvailableSpaces,
		HourlyRate:      input.HourlyRate,
		Status:          status,
	}
	s.carParks[park.ID] = park

	out := *park
	return &out, nil
}

func (r *CarParkRepository) FindByID(ctx context.Context, id int) (*domain.CarPark, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	park, ok := s.carParks[id]
	if !ok {
		return nil, nil
	}
	out := *park
	return &out, nil
}

func (r *CarParkRepository) FindAll(ctx context.Context) ([]domain.CarPark, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	parks := make([]domain.CarPark, 0, len(s.carParks))
	for _, park := range s.carParks {
		parks = append(parks, *park)
	}
	sort.Slice(parks, func(i, j int) bool { return parks[i].ID < parks[j].ID })
	return parks, nil
}

// FindNearby accepts coordinates and a radius but does no distance
// filtering yet; every car park comes back.
func (r *CarParkRepository) FindNearby(ctx context.Context, lat, lng, radius float64) ([]domain.CarPark, error) {
	return r.FindAll(ctx)
}

// UpdateSpaces writes the new availability and recomputes the derived status.
// This is the only path that keeps Status consistent with AvailableSpaces.
func (r *CarParkRepository) UpdateSpaces(ctx context.Context, id int, availableSpaces int) (*domain.CarPark, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	park, ok := s.carParks[id]
	if !ok {
		return nil, nil
	}

	park.AvailableSpaces = availableSpaces
	park.Status = domain.DeriveCarParkStatus(availableSpaces, park.TotalSpaces)

	out := *park
	return &out, nil
}
