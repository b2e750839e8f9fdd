package bookings

import (
	"context"

	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
)

// BookingUC defines the interface for booking business logic operations.
// Every operation takes the caller's visibility scope; rows outside the
// scope behave as if they do not exist.
type BookingUC interface {
	ListBookings(ctx context.Context, scope querybuilder.Filter, page, perPage int) ([]models.Booking, int, error)
	GetBooking(ctx context.Context, scope querybuilder.Filter, id int64) (*models.Booking, error)
	UpdateBookingStatus(ctx context.Context, scope querybuilder.Filter, id int64, requested string) (*models.Booking, error)
	AvailableDrivers(ctx context.Context, scope querybuilder.Filter, excludeBookingID int64) ([]models.Driver, error)
	AvailableVehicles(ctx context.Context, scope querybuilder.Filter, excludeBookingID int64) ([]models.Vehicle, error)
	AssignDriver(ctx context.Context, scope querybuilder.Filter, bookingID int64, driverID *int64) (*models.Booking, error)
	AssignVehicle(ctx context.Context, scope querybuilder.Filter, bookingID int64, vehicleID *int64) (*models.Booking, error)
}
