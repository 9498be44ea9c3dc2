package domain

import (
	"time"
)

type FineStatus string

const (
	FineStatusPending  FineStatus = "pending"
	FineStatusPaid     FineStatus = "paid"
	FineStatusOverdue  FineStatus = "overdue"
	FineStatusAppealed FineStatus = "appealed"
)

// Fine is a traffic or parking penalty issued against a vehicle. PaymentDate
// is recorded when the fine transitions to paid; "overdue" as a label for
// pending fines past their due date is derived at presentation time, not
// stored.
type Fine struct {
	ID          int        `json:"id"`
	VehicleID   int        `json:"vehicleId"`
	FineType    string     `json:"fineType"`
	Location    string     `json:"location"`
	IssueDate   time.Time  `json:"issueDate"`
	Amount      string     `json:"amount"`
	DueDate     time.Time  `json:"dueDate"`
	Description string     `json:"description"`
	Status      FineStatus `json:"status"`
	EvidenceURL *string    `json:"evidenceUrl"`
	PaymentDate *time.Time `json:"paymentDate"`
}

type NewFine struct {
	VehicleID   int        `json:"vehicleId"`
	FineType    string     `json:"fineType"`
	Location    string     `json:"location"`
	IssueDate   time.Time  `json:"issueDate"`
	Amount      string     `json:"amount"`
	DueDate     time.Time  `json:"dueDate"`
	Description string     `json:"description"`
	Status      FineStatus `json:"status"`
	EvidenceURL *string    `json:"evidenceUrl"`
	PaymentDate *time.Time `json:"paymentDate"`
}
