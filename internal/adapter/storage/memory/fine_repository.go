package memory

import (
	"context"
	"sort"
	"time"

	"github.com/drivelink/drivelink/internal/domain"
	"github.com/drivelink/drivelink/internal/ports"
)

type FineRepository struct {
	store *Store
}

func NewFineRepository(store *Store) ports.FineRepository {
	return &FineRepository{store: store}
}

func (r *FineRepository) Create(ctx context.Context, input domain.NewFine) (*domain.Fine, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	status := input.Status
	if status == "" {
		status = domain.FineStatusPending
	}

	fine := &domain.Fine{
		ID:          s.fineIDs.next(),
		VehicleID:   input.VehicleID,
		FineType:    input.FineType,
		Location:    input.Location,
		IssueDate:   input.IssueDate,
		Amount:      input.Amount,
		DueDate:     input.DueDate,
		Description: input.Description,
		Status:      status,
		EvidenceURL: input.EvidenceURL,
		PaymentDate: input.PaymentDate,
	}
	s.fines[fine.ID] = fine

	out := *fine
	return &out, nil
}

func (r *FineRepository) FindByID(ctx context.Context, id int) (*domain.Fine, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	fine, ok := s.fines[id]
	if !ok {
		return nil, nil
	}
	out := *fine
	return &out, nil
}

// FindByVehicleID returns the vehicle's fines, most recently issued first.
func (r *FineRepository) FindByVehicleID(ctx context.Context, vehicleID int) ([]domain.Fine, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	fines := make([]domain.Fine, 0)
	for _, fine := range s.fines {
		if fine.VehicleID == vehicleID {
			fines = append(fines, *fine)
		}
	}
	sort.Slice(fines, func(i, j int) bool {
		return fines[i].IssueDate.After(fines[j].IssueDate)
	})
	return fines, nil
}

// FindOutstandingByVehicleID returns every fine whose status is anything but
// paid, so pending and appealed fines both count as outstanding.
func (r *FineRepository) FindOutstandingByVehicleID(ctx context.Context, vehicleID int) ([]domain.Fine, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	fines := make([]domain.Fine, 0)
	for _, fine := range s.fines {
		if fine.VehicleID == vehicleID && fine.Status != domain.FineStatusPaid {
			fines = append(fines, *fine)
		}
	}
	sort.Slice(fines, func(i, j int) bool { return fines[i].ID < fines[j].ID })
	return fines, nil
}

// UpdateStatus sets the fine's status and records the payment date when one
// is supplied. Transition legality is not checked here.
func (r *FineRepository) UpdateStatus(ctx context.Context, id int, status domain.FineStatus, paymentDate *time.Time) (*domain.Fine, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	fine, ok := s.fines[id]
	if !ok {
		return nil, nil
	}

	fine.Status = status
	if paymentDate != nil {
		fine.PaymentDate = paymentDate
	}

	out := *fine
	return &out, nil
}
