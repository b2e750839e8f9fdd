package querybuilder

import (
	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
)

const (
	driverProjection = `id, company_id, first_name, last_name, license_number,
		status, type, contact_number, email, created_at, updated_at`
	vehicleProjection = `id, company_id, plate_number, status, ownership,
		make, model, year, color, created_at, updated_at`
	bookingProjection = `id, voucher, company_id, booking_status, payment_status,
		total_amount, pickup_datetime, pickup_address, destination_address,
		passenger_name, contact_number, driver_id, vehicle_id, created_at, updated_at`

	driverSearchClause  = "(first_name ILIKE ? OR last_name ILIKE ? OR license_number ILIKE ?)"
	vehicleSearchClause = "(plate_number ILIKE ? OR make ILIKE ? OR model ILIKE ?)"
	bookingSearchClause = "(voucher ILIKE ? OR passenger_name ILIKE ? OR pickup_address ILIKE ? OR destination_address ILIKE ?)"

	recencyOrder = "created_at DESC, id DESC"
)

// BuildDriverQuery returns the row and count queries for the driver list.
func BuildDriverQuery(f Filter) Descriptor {
	p := buildPredicates(f, "status", driverSearchClause)
	return descriptorFor(driverProjection, "drivers", recencyOrder, p)
}

// BuildVehicleQuery returns the row and count queries for the vehicle list.
func BuildVehicleQuery(f Filter) Descriptor {
	p := buildPredicates(f, "status", vehicleSearchClause)
	return descriptorFor(vehicleProjection, "vehicles", recencyOrder, p)
}

// BuildBookingQuery returns the row and count queries for the booking list.
// A status filter is normalized to the canonical vocabulary before binding so
// legacy names filter the same rows as canonical ones.
func BuildBookingQuery(f Filter) Descriptor {
	if f.Status != "" {
		if canonical, ok := models.NormalizeBookingStatus(f.Status); ok {
			f.Status = string(canonical)
		}
	}
	p := buildPredicates(f, "booking_status", bookingSearchClause)
	return descriptorFor(bookingProjection, "bookings", recencyOrder, p)
}
