package models

import (
	"sort"
	"time"
)

// BookingStatus represents the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusRequest     BookingStatus = "request"
	BookingStatusConfirmed   BookingStatus = "confirmed"
	BookingStatusOnGoing     BookingStatus = "on_going"
	BookingStatusDoneService BookingStatus = "done_service"
	BookingStatusCancelled   BookingStatus = "cancelled"
)

// statusAliases maps historical status vocabularies onto the canonical enum.
// Both naming conventions appear in stored data and API payloads, so every
// boundary normalizes before comparing.
var statusAliases = map[string]BookingStatus{
	"pending":     BookingStatusRequest,
	"in_progress": BookingStatusOnGoing,
	"ongoing":     BookingStatusOnGoing,
	"completed":   BookingStatusDoneService,
}

// bookingTransitions is the allowed transition table. Terminal states have no
// entries.
var bookingTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusRequest:   {BookingStatusConfirmed, BookingStatusOnGoing, BookingStatusCancelled},
	BookingStatusConfirmed: {BookingStatusOnGoing, BookingStatusCancelled},
	BookingStatusOnGoing:   {BookingStatusDoneService, BookingStatusCancelled},
}

// NormalizeBookingStatus resolves legacy status names to the canonical enum.
// The second return value is false when the input is not a known status.
func NormalizeBookingStatus(s string) (BookingStatus, bool) {
	if alias, ok := statusAliases[s]; ok {
		return alias, true
	}
	switch BookingStatus(s) {
	case BookingStatusRequest, BookingStatusConfirmed, BookingStatusOnGoing,
		BookingStatusDoneService, BookingStatusCancelled:
		return BookingStatus(s), true
	}
	return "", false
}

// Canonical resolves a stored status to the canonical enum. Rows written by
// the legacy UI carry alias names, so comparisons against the transition
// table go through this first. Unknown values pass through unchanged and
// fail transition checks as before.
func (s BookingStatus) Canonical() BookingStatus {
	if normalized, ok := NormalizeBookingStatus(string(s)); ok {
		return normalized
	}
	return s
}

// CanTransition reports whether moving from one status to another is declared
// in the transition table. Both statuses must already be normalized.
func CanTransition(from, to BookingStatus) bool {
	for _, allowed := range bookingTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminalBookingStatus reports whether a status accepts no further
// transitions.
func (s BookingStatus) IsTerminal() bool {
	return len(bookingTransitions[s]) == 0
}

// IsActive reports whether the status implies an assigned driver or vehicle
// is currently committed to the booking.
func (s BookingStatus) IsActive() bool {
	switch s {
	case BookingStatusRequest, BookingStatusConfirmed, BookingStatusOnGoing:
		return true
	}
	return false
}

// ActiveBookingStatuses lists the statuses that hold driver/vehicle
// assignments, in the order they are bound into queries.
func ActiveBookingStatuses() []BookingStatus {
	return []BookingStatus{BookingStatusRequest, BookingStatusConfirmed, BookingStatusOnGoing}
}

// ActiveBookingStatusValues lists every stored spelling of an active status,
// canonical names first and then their aliases in sorted order. Queries that
// match on booking_status bind this list so legacy rows still count as
// holding their driver and vehicle.
func ActiveBookingStatusValues() []string {
	values := []string{}
	for _, s := range ActiveBookingStatuses() {
		values = append(values, string(s))
	}
	aliases := []string{}
	for alias, canonical := range statusAliases {
		if canonical.IsActive() {
			aliases = append(aliases, alias)
		}
	}
	sort.Strings(aliases)
	return append(values, aliases...)
}

// Booking represents a transport booking record
type Booking struct {
	ID                 int64         `json:"id" db:"id"`
	Voucher            string        `json:"voucher" db:"voucher"`
	CompanyID          int64         `json:"company_id" db:"company_id"`
	BookingStatus      BookingStatus `json:"booking_status" db:"booking_status"`
	PaymentStatus      string        `json:"payment_status" db:"payment_status"`
	TotalAmount        float64       `json:"total_amount" db:"total_amount"`
	PickupDatetime     time.Time     `json:"pickup_datetime" db:"pickup_datetime"`
	PickupAddress      string        `json:"pickup_address" db:"pickup_address"`
	DestinationAddress string        `json:"destination_address" db:"destination_address"`
	PassengerName      string        `json:"passenger_name" db:"passenger_name"`
	ContactNumber      string        `json:"contact_number" db:"contact_number"`
	DriverID           *int64        `json:"driver_id" db:"driver_id"`
	VehicleID          *int64        `json:"vehicle_id" db:"vehicle_id"`
	CreatedAt          time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at" db:"updated_at"`
}

// BookingStatusUpdateRequest is the payload for a status transition request
type BookingStatusUpdateRequest struct {
	Status string `json:"status"`
}

// BookingAssignRequest is the payload for assigning or clearing a driver or
// vehicle on a booking. A nil id clears the assignment.
type BookingAssignRequest struct {
	DriverID  *int64 `json:"driver_id,omitempty"`
	VehicleID *int64 `json:"vehicle_id,omitempty"`
}

// BookingEvent is published to NATS on booking lifecycle changes
type BookingEvent struct {
	BookingID  int64     `json:"booking_id"`
	Voucher    string    `json:"voucher"`
	CompanyID  int64     `json:"company_id"`
	Status     string    `json:"status"`
	PrevStatus string    `json:"prev_status,omitempty"`
	DriverID   *int64    `json:"driver_id,omitempty"`
	VehicleID  *int64    `json:"vehicle_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
