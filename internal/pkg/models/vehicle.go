package models

import "time"

// VehicleStatus represents the status of a vehicle
type VehicleStatus string

const (
	VehicleStatusActive   VehicleStatus = "active"
	VehicleStatusPending  VehicleStatus = "pending"
	VehicleStatusInactive VehicleStatus = "inactive"
)

// Vehicle ownership categories
const (
	VehicleOwnershipCompany = "company"
	VehicleOwnershipSubcon  = "subcon"
)

// Vehicle represents a vehicle record
type Vehicle struct {
	ID          int64         `json:"id" db:"id"`
	CompanyID   int64         `json:"company_id" db:"company_id"`
	PlateNumber string        `json:"plate_number" db:"plate_number"`
	Status      VehicleStatus `json:"status" db:"status"`
	Ownership   string        `json:"ownership" db:"ownership"`
	Make        string        `json:"make" db:"make"`
	Model       string        `json:"model" db:"model"`
	Year        int           `json:"year" db:"year"`
	Color       string        `json:"color" db:"color"`
	CreatedAt   time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" db:"updated_at"`
}

// Assignable reports whether the vehicle may be offered for booking
// assignment.
func (v *Vehicle) Assignable() bool {
	return v.Status == VehicleStatusActive || v.Status == VehicleStatusPending
}
