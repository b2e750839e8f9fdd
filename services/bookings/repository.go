package bookings

import (
	"context"

	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
)

// BookingRepo defines the interface for booking data access operations
type BookingRepo interface {
	GetBookingByID(ctx context.Context, id int64) (*models.Booking, error)
	ListBookings(ctx context.Context, filter querybuilder.Filter, page, perPage int) ([]models.Booking, int, error)
	ListActiveBookings(ctx context.Context, excludeBookingID int64) ([]models.Booking, error)
	UpdateBookingStatus(ctx context.Context, id int64, status models.BookingStatus) error
	AssignDriver(ctx context.Context, bookingID int64, driverID *int64) error
	AssignVehicle(ctx context.Context, bookingID int64, vehicleID *int64) error
}

// CandidateRepo supplies the assignable fleet rows the resolver filters
// against active bookings. The fleet service's repository satisfies it.
type CandidateRepo interface {
	ListAssignableDrivers(ctx context.Context, filter querybuilder.Filter) ([]models.Driver, error)
	ListAssignableVehicles(ctx context.Context, filter querybuilder.Filter) ([]models.Vehicle, error)
}
