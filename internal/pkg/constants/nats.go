package constants

// NATS Subjects
const (
	// Booking lifecycle
	SubjectBookingStatusChanged   = "booking.status_changed"
	SubjectBookingDriverAssigned  = "booking.driver_assigned"
	SubjectBookingVehicleAssigned = "booking.vehicle_assigned"

	// Wildcard used by the dashboard cache invalidation consumer
	SubjectBookingAll = "booking.*"
)
