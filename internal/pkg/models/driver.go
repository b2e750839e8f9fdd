package models

import "time"

// DriverStatus represents the status of a driver
type DriverStatus string

const (
	DriverStatusActive   DriverStatus = "active"
	DriverStatusPending  DriverStatus = "pending"
	DriverStatusInactive DriverStatus = "inactive"
)

// Driver types
const (
	DriverTypeRegular = "regular"
	DriverTypeSubcon  = "subcon"
)

// Driver represents a driver record
type Driver struct {
	ID            int64        `json:"id" db:"id"`
	CompanyID     int64        `json:"company_id" db:"company_id"`
	FirstName     string       `json:"first_name" db:"first_name"`
	LastName      string       `json:"last_name" db:"last_name"`
	LicenseNumber string       `json:"license_number" db:"license_number"`
	Status        DriverStatus `json:"status" db:"status"`
	Type          string       `json:"type" db:"type"`
	ContactNumber string       `json:"contact_number" db:"contact_number"`
	Email         string       `json:"email" db:"email"`
	CreatedAt     time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at" db:"updated_at"`
}

// Assignable reports whether the driver may be offered for booking
// assignment. Inactive drivers never appear in candidate lists.
func (d *Driver) Assignable() bool {
	return d.Status == DriverStatusActive || d.Status == DriverStatusPending
}
