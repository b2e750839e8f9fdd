package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/services/bookings"
	httpHandler "github.com/fleetdesk/fleetdesk/services/bookings/handler/http"
)

// Handler combines all handlers for the bookings service
type Handler struct {
	bookingHTTP *httpHandler.BookingHandler
	cfg         *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(bookingUC bookings.BookingUC, cfg *models.Config) *Handler {
	return &Handler{
		bookingHTTP: httpHandler.NewBookingHandler(bookingUC),
		cfg:         cfg,
	}
}

// RegisterRoutes registers all booking HTTP routes on the authenticated group
func (h *Handler) RegisterRoutes(g *echo.Group) {
	bookingGroup := g.Group("/bookings")
	bookingGroup.GET("", h.bookingHTTP.ListBookings)
	bookingGroup.GET("/:id", h.bookingHTTP.GetBooking)
	bookingGroup.PUT("/:id/status", h.bookingHTTP.UpdateBookingStatus)
	bookingGroup.GET("/:id/available-drivers", h.bookingHTTP.AvailableDrivers)
	bookingGroup.GET("/:id/available-vehicles", h.bookingHTTP.AvailableVehicles)
	bookingGroup.PUT("/:id/driver", h.bookingHTTP.AssignDriver)
	bookingGroup.PUT("/:id/vehicle", h.bookingHTTP.AssignVehicle)
}
