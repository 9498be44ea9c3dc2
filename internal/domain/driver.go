package domain

import (
	"time"
)

// Driver is a named driver registered against a vehicle. At most one driver
// per vehicle may be active at a time; the store enforces this when a driver
// is activated.
type Driver struct {
	ID           int       `json:"id"`
	VehicleID    int       `json:"vehicleId"`
	Name         string    `json:"name"`
	Relationship string    `json:"relationship"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

type NewDriver struct {
	VehicleID    int    `json:"vehicleId"`
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	IsActive     bool   `json:"isActive"`
}
