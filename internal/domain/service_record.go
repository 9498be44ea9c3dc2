package domain

import (
	"time"
)

type ServiceRecordStatus string

const (
	ServiceRecordStatusCompleted ServiceRecordStatus = "completed"
	ServiceRecordStatusScheduled ServiceRecordStatus = "scheduled"
	ServiceRecordStatusCancelled ServiceRecordStatus = "cancelled"
)

type ServiceRecord struct {
	ID             int                 `json:"id"`
	VehicleID      int                 `json:"vehicleId"`
	ServiceType    string              `json:"serviceType"`
	Provider       string              `json:"provider"`
	ServiceDate    time.Time           `json:"serviceDate"`
	Cost           string              `json:"cost"`
	Notes          *string             `json:"notes"`
	NextServiceDue *time.Time          `json:"nextServiceDue"`
	Status         ServiceRecordStatus `json:"status"`
}

type NewServiceRecord struct {
	VehicleID      int                 `json:"vehicleId"`
	ServiceType    string              `json:"serviceType"`
	Provider       string              `json:"provider"`
	ServiceDate    time.Time           `json:"serviceDate"`
	Cost           string              `json:"cost"`
	Notes          *string             `json:"notes"`
	NextServiceDue *time.Time          `json:"nextServiceDue"`
	Status         ServiceRecordStatus `json:"status"`
}
