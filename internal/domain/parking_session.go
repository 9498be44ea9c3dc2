package domain

import (
	"time"
)

type ParkingSessionStatus string

const (
	ParkingSessionStatusActive    ParkingSessionStatus = "active"
	ParkingSessionStatusCompleted ParkingSessionStatus = "completed"
	ParkingSessionStatusExpired   ParkingSessionStatus = "expired"
)

type PaymentStatus string

const (
	PaymentStatusPaid       PaymentStatus = "paid"
	PaymentStatusUnpaid     PaymentStatus = "unpaid"
	PaymentStatusProcessing PaymentStatus = "processing"
)

type ParkingSession struct {
	ID            int                  `json:"id"`
	VehicleID     int                  `json:"vehicleId"`
	DriverID      int                  `json:"driverId"`
	Location      string               `json:"location"`
	CarParkNumber string               `json:"carParkNumber"`
	StartTime     time.Time            `json:"startTime"`
	EndTime       *time.Time           `json:"endTime"`
	HourlyRate    string               `json:"hourlyRate"`
	TotalCost     *string              `json:"totalCost"`
	Status        ParkingSessionStatus `json:"status"`
	PaymentStatus PaymentStatus        `json:"paymentStatus"`
}

// NewParkingSession is the input shape for starting a session. StartTime is
// stamped by the store; Status and PaymentStatus fall back to active/unpaid
// when empty.
type NewParkingSession struct {
	VehicleID     int                  `json:"vehicleId"`
	DriverID      int                  `json:"driverId"`
	Location      string               `json:"location"`
	CarParkNumber string               `json:"carParkNumber"`
	HourlyRate    string               `json:"hourlyRate"`
	EndTime       *time.Time           `json:"endTime"`
	TotalCost     *string              `json:"totalCost"`
	Status        ParkingSessionStatus `json:"status"`
	PaymentStatus PaymentStatus        `json:"paymentStatus"`
}

// ParkingSessionPatch carries a partial update; nil fields are left
// untouched.
type ParkingSessionPatch struct {
	Location      *string               `json:"location"`
	CarParkNumber *string               `json:"carParkNumber"`
	EndTime       *time.Time            `json:"endTime"`
	HourlyRate    *string               `json:"hourlyRate"`
	TotalCost     *string               `json:"totalCost"`
	Status        *ParkingSessionStatus `json:"status"`
	PaymentStatus *PaymentStatus        `json:"paymentStatus"`
}
