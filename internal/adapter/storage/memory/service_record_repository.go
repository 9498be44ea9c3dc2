package memory

import (
	"context"
	"sort"

	"github.com/drivelink/drivelink/internal/domain"
	"github.com/drivelink/drivelink/internal/ports"
)

type ServiceRecordRepository struct {
	store *Store
}

func NewServiceRecordRepository(store *Store) ports.ServiceRecordRepository {
	return &ServiceRecordRepository{store: store}
}

func (r *ServiceRecordRepository) Create(ctx context.Context, input domain.NewServiceRecord) (*domain.ServiceRecord, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	status := input.Status
	if status == "" {
		status = domain.ServiceRecordStatusCompleted
	}

	record := &domain.ServiceRecord{
		ID:             s.serviceRecordIDs.next(),
		VehicleID:      input.VehicleID,
		ServiceType:    input.ServiceType,
		Provider:       input.Provider,
		ServiceDate:    input.ServiceDate,
		Cost:           input.Cost,
		Notes:          input.Notes,
		NextServiceDue: input.NextServiceDue,
		Status:         status,
	}
	s.serviceRecords[record.ID] = record

	out := *record
	return &out, nil
}

// FindByVehicleID returns the vehicle's records, most recent service first.
func (r *ServiceRecordRepository) FindByVehicleID(ctx context.Context, vehicleID int) ([]domain.ServiceRecord, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]domain.ServiceRecord, 0)
	for _, record := range s.serviceRecords {
		if record.VehicleID == vehicleID {
			records = append(records, *record)
		}
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].ServiceDate.After(records[j].ServiceDate)
	})
	return records, nil
}

// FindNextDueByVehicleID returns the record with the earliest NextServiceDue
// among those that have one set, or nil when none do.
func (r *ServiceRecordRepository) FindNextDueByVehicleID(ctx context.Context, vehicleID int) (*domain.ServiceRecord, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var next *domain.ServiceRecord
	for _, record := range s.serviceRecords {
		if record.VehicleID != vehicleID || record.NextServiceDue == nil {
			continue
		}
		if next == nil || record.NextServiceDue.Before(*next.NextServiceDue) {
			next = record
		}
	}
	if next == nil {
		return nil, nil
	}
	out := *next
	return &out, nil
}
