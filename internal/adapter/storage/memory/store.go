package memory

import (
	"sync"

	"go.uber.org/zap"

	"github.com/drivelink/drivelink/internal/domain"
)

// Store is the single source of truth for all entities. Everything lives in
// keyed maps guarded by one RWMutex, so multi-entity operations such as the
// driver-status update run without interleaving. Entities are never deleted
// and ids are never reused. A Store is constructed once at startup and
// handed to the services; tests build their own isolated instances.
type Store struct {
	mu  sync.RWMutex
	log *zap.Logger

	users           map[int]*domain.User
	vehicles        map[int]*domain.Vehicle
	drivers         map[int]*domain.Driver
	parkingSessions map[int]*domain.ParkingSession
	carParks        map[int]*domain.CarPark
	serviceRecords  map[int]*domain.ServiceRecord
	fines           map[int]*domain.Fine

	userIDs           sequence
	vehicleIDs        sequence
	driverIDs         sequence
	parkingSessionIDs sequence
	carParkIDs        sequence
	serviceRecordIDs  sequence
	fineIDs           sequence
}

func NewStore(log *zap.Logger) *Store {
	return &Store{
		log:             log,
		users:           make(map[int]*domain.User),
		vehicles:        make(map[int]*domain.Vehicle),
		drivers:         make(map[int]*domain.Driver),
		parkingSessions: make(map[int]*domain.ParkingSession),
		carParks:        make(map[int]*domain.CarPark),
		serviceRecords:  make(map[int]*domain.ServiceRecord),
		fines:           make(map[int]*domain.Fine),
	}
}
