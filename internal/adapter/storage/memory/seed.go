package memory

import (
	"time"

	"go.uber.org/zap"

	"github.com/drivelink/drivelink/internal/domain"
)

func strPtr(s string) *string { return &s }

func timePtr(t time.Time) *time.Time { return &t }

// SeedDemo loads the fixed demo dataset the app ships with: one user, three
// vehicles, their drivers, three car parks, service history and fines for
// the Ferrari, and an active parking session started two hours ago. Ids are
// assigned explicitly so API consumers can rely on them.
func (s *Store) SeedDemo() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()

	s.users[1] = &domain.User{
		ID:        1,
		Username:  "johndoe",
		Email:     "john.doe@email.com",
		Password:  "hashedpassword",
		FirstName: "John",
		LastName:  "Doe",
		CreatedAt: now,
	}
	s.userIDs.reserve(1)

	vehicles := []*domain.Vehicle{
		{ID: 1, UserID: 1, Registration: "SF90 RFR", Make: "Ferrari", Model: "SF90 Stradale", Year: 2020, Color: "Rosso Corsa Red", CreatedAt: now},
		{ID: 2, UserID: 1, Registration: "AMG 63S", Make: "Mercedes-AMG", Model: "GT 63 S", Year: 2022, Color: "Magnetite Black", CreatedAt: now},
		{ID: 3, UserID: 1, Registration: "M3 CSL", Make: "BMW", Model: "M3 CSL", Year: 2023, Color: "Alpine White", CreatedAt: now},
	}
	for _, v := range vehicles {
		s.vehicles[v.ID] = v
		s.vehicleIDs.reserve(v.ID)
	}

	drivers := []*domain.Driver{
		{ID: 1, VehicleID: 1, Name: "Marcus (son)", Relationship: "Son", IsActive: true, CreatedAt: now},
		{ID: 2, VehicleID: 1, Name: "Sarah (daughter)", Relationship: "Daughter", IsActive: false, CreatedAt: now},
		{ID: 3, VehicleID: 1, Name: "John Doe", Relationship: "Owner", IsActive: false, CreatedAt: now},
		{ID: 4, VehicleID: 2, Name: "John Doe", Relationship: "Owner", IsActive: true, CreatedAt: now},
		{ID: 5, VehicleID: 2, Name: "Sarah (daughter)", Relationship: "Daughter", IsActive: false, CreatedAt: now},
		{ID: 6, VehicleID: 3, Name: "John Doe", Relationship: "Owner", IsActive: true, CreatedAt: now},
	}
	for _, d := range drivers {
		s.drivers[d.ID] = d
		s.driverIDs.reserve(d.ID)
	}

	carParks := []*domain.CarPark{
		{ID: 1, Name: "Central Mall - P1", Location: "0.2 miles", Latitude: "51.5074", Longitude: "-0.1278", TotalSpaces: 200, AvailableSpaces: 47, HourlyRate: "2.50", Status: domain.CarParkStatusAvailable},
		{ID: 2, Name: "City Center - Level 2", Location: "0.4 miles", Latitude: "51.5084", Longitude: "-0.1288", TotalSpaces: 150, AvailableSpaces: 8, HourlyRate: "3.00", Status: domain.CarParkStatusLimited},
		{ID: 3, Name: "Station Car Park", Location: "0.6 miles", Latitude: "51.5094", Longitude: "-0.1298", TotalSpaces: 100, AvailableSpaces: 0, HourlyRate: "1.80", Status: domain.CarParkStatusFull},
	}
	for _, p := range carParks {
		s.carParks[p.ID] = p
		s.carParkIDs.reserve(p.ID)
	}

	records := []*domain.ServiceRecord{
		{
			ID: 1, VehicleID: 1, ServiceType: "Annual Service", Provider: "Johnson's Garage",
			ServiceDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), Cost: "245.00",
			Notes: strPtr("Full service completed"), NextServiceDue: timePtr(time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)),
			Status: domain.ServiceRecordStatusCompleted,
		},
		{
			ID: 2, VehicleID: 1, ServiceType: "Oil Change", Provider: "QuickLube Express",
			ServiceDate: time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC), Cost: "35.00",
			Notes: strPtr("Engine oil and filter changed"), NextServiceDue: timePtr(time.Date(2024, 7, 8, 0, 0, 0, 0, time.UTC)),
			Status: domain.ServiceRecordStatusCompleted,
		},
		{
			ID: 3, VehicleID: 1, ServiceType: "Tire Replacement", Provider: "City Tire Center",
			ServiceDate: time.Date(2023, 12, 3, 0, 0, 0, 0, time.UTC), Cost: "320.00",
			Notes: strPtr("All four tires replaced"),
			Status: domain.ServiceRecordStatusCompleted,
		},
	}
	for _, rec := range records {
		s.serviceRecords[rec.ID] = rec
		s.serviceRecordIDs.reserve(rec.ID)
	}

	fines := []*domain.Fine{
		{
			ID: 1, VehicleID: 1, FineType: "Parking Violation", Location: "Oxford Street",
			IssueDate: time.Date(2024, 3, 28, 0, 0, 0, 0, time.UTC), Amount: "80.00",
			DueDate:     time.Date(2024, 4, 11, 0, 0, 0, 0, time.UTC),
			Description: "Expired meter - 2 hours over limit",
			Status:      domain.FineStatusPending, EvidenceURL: strPtr("evidence1.jpg"),
		},
		{
			ID: 2, VehicleID: 1, FineType: "Speed Camera", Location: "A40 Westway",
			IssueDate: time.Date(2024, 3, 25, 0, 0, 0, 0, time.UTC), Amount: "40.00",
			DueDate:     time.Date(2024, 4, 8, 0, 0, 0, 0, time.UTC),
			Description: "37 mph in 30 mph zone",
			Status:      domain.FineStatusPending, EvidenceURL: strPtr("evidence2.jpg"),
		},
		{
			ID: 3, VehicleID: 1, FineType: "Parking Violation", Location: "King's Road",
			IssueDate: time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), Amount: "60.00",
			DueDate:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			Description: "No valid ticket displayed",
			Status:      domain.FineStatusPaid, EvidenceURL: strPtr("evidence3.jpg"),
			PaymentDate: timePtr(time.Date(2024, 2, 18, 0, 0, 0, 0, time.UTC)),
		},
	}
	for _, f := range fines {
		s.fines[f.ID] = f
		s.fineIDs.reserve(f.ID)
	}

	s.parkingSessions[1] = &domain.ParkingSession{
		ID: 1, VehicleID: 1, DriverID: 1,
		Location: "P-127", CarParkNumber: "P-127",
		StartTime:     now.Add(-2 * time.Hour),
		HourlyRate:    "2.50",
		Status:        domain.ParkingSessionStatusActive,
		PaymentStatus: domain.PaymentStatusUnpaid,
	}
	s.parkingSessionIDs.reserve(1)

	if s.log != nil {
		s.log.Info("Demo data seeded",
			zap.Int("vehicles", len(s.vehicles)),
			zap.Int("drivers", len(s.drivers)),
			zap.Int("car_parks", len(s.carParks)),
		)
	}
}
