package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/fleetdesk/fleetdesk/internal/pkg/apperrors"
	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
)

// BookingRepo handles booking data access against PostgreSQL
type BookingRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(cfg *models.Config, db *sqlx.DB) *BookingRepo {
	return &BookingRepo{
		cfg: cfg,
		db:  db,
	}
}

const bookingColumns = `id, voucher, company_id, booking_status, payment_status,
		total_amount, pickup_datetime, pickup_address, destination_address,
		passenger_name, contact_number, driver_id, vehicle_id, created_at, updated_at`

// GetBookingByID retrieves a booking by ID
func (r *BookingRepo) GetBookingByID(ctx context.Context, id int64) (*models.Booking, error) {
	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE id = $1`, bookingColumns)

	booking := &models.Booking{}
	err := r.db.GetContext(ctx, booking, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return booking, nil
}

// ListBookings retrieves one page of bookings matching the filter together
// with the total match count. The row and count queries come from the same
// descriptor so the two always agree.
func (r *BookingRepo) ListBookings(ctx context.Context, filter querybuilder.Filter, page, perPage int) ([]models.Booking, int, error) {
	desc := querybuilder.BuildBookingQuery(filter)
	paged := querybuilder.Paginate(desc, page, perPage)

	bookings := []models.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, paged.Query, paged.Params...); err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, desc.CountQuery, desc.CountParams...); err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	return bookings, total, nil
}

// ListActiveBookings retrieves every booking in an active lifecycle state,
// optionally excluding one booking id. The resolver uses the result to
// collect driver and vehicle ids that are unavailable for assignment.
func (r *BookingRepo) ListActiveBookings(ctx context.Context, excludeBookingID int64) ([]models.Booking, error) {
	values := models.ActiveBookingStatusValues()
	placeholders := make([]string, len(values))
	args := make([]interface{}, 0, len(values)+1)
	for i, v := range values {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args = append(args, v)
	}

	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE booking_status IN (%s)`,
		bookingColumns, strings.Join(placeholders, ", "))
	if excludeBookingID > 0 {
		query += fmt.Sprintf(" AND id <> $%d", len(values)+1)
		args = append(args, excludeBookingID)
	}

	bookings := []models.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list active bookings: %w", err)
	}
	return bookings, nil
}

// UpdateBookingStatus persists a status change
func (r *BookingRepo) UpdateBookingStatus(ctx context.Context, id int64, status models.BookingStatus) error {
	query := `UPDATE bookings SET booking_status = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, string(status), id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// activeStatusList is the inlined status list for the assignment guards. It
// covers the alias spellings so rows written by the legacy UI still hold
// their driver and vehicle.
var activeStatusList = "'" + strings.Join(models.ActiveBookingStatusValues(), "', '") + "'"

// AssignDriver sets or clears the booking's driver. The update only applies
// while the driver has no other active booking, so two concurrent assignments
// of the same driver cannot both succeed.
func (r *BookingRepo) AssignDriver(ctx context.Context, bookingID int64, driverID *int64) error {
	query := fmt.Sprintf(`
		UPDATE bookings SET driver_id = $1, updated_at = NOW()
		WHERE id = $2
		AND ($1::bigint IS NULL OR NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.driver_id = $1 AND b.id <> $2
			AND b.booking_status IN (%s)
		))`, activeStatusList)

	return r.conditionalAssign(ctx, query, bookingID, driverID)
}

// AssignVehicle sets or clears the booking's vehicle under the same
// no-other-active-booking condition as AssignDriver.
func (r *BookingRepo) AssignVehicle(ctx context.Context, bookingID int64, vehicleID *int64) error {
	query := fmt.Sprintf(`
		UPDATE bookings SET vehicle_id = $1, updated_at = NOW()
		WHERE id = $2
		AND ($1::bigint IS NULL OR NOT EXISTS (
			SELECT 1 FROM bookings b
			WHERE b.vehicle_id = $1 AND b.id <> $2
			AND b.booking_status IN (%s)
		))`, activeStatusList)

	return r.conditionalAssign(ctx, query, bookingID, vehicleID)
}

func (r *BookingRepo) conditionalAssign(ctx context.Context, query string, bookingID int64, resourceID *int64) error {
	result, err := r.db.ExecContext(ctx, query, resourceID, bookingID)
	if err != nil {
		return fmt.Errorf("failed to assign booking resource: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check assignment result: %w", err)
	}
	if rows > 0 {
		return nil
	}

	// Zero rows means either the booking does not exist or the condition
	// failed because the resource is held by another active booking.
	var exists bool
	if err := r.db.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM bookings WHERE id = $1)`, bookingID); err != nil {
		return fmt.Errorf("failed to check booking existence: %w", err)
	}
	if !exists {
		return apperrors.ErrNotFound
	}
	return apperrors.ErrAssignmentConflict
}
