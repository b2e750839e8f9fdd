package bookings

import (
	"context"

	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
)

// BookingGW defines the interface for booking event publishing operations
type BookingGW interface {
	PublishStatusChanged(ctx context.Context, event *models.BookingEvent) error
	PublishDriverAssigned(ctx context.Context, event *models.BookingEvent) error
	PublishVehicleAssigned(ctx context.Context, event *models.BookingEvent) error
}
