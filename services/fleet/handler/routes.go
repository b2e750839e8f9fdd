package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/services/fleet"
	httpHandler "github.com/fleetdesk/fleetdesk/services/fleet/handler/http"
)

// Handler combines all handlers for the fleet service
type Handler struct {
	fleetHTTP *httpHandler.FleetHandler
	cfg       *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(fleetUC fleet.FleetUC, cfg *models.Config) *Handler {
	return &Handler{
		fleetHTTP: httpHandler.NewFleetHandler(fleetUC),
		cfg:       cfg,
	}
}

// RegisterRoutes registers all fleet HTTP routes on the authenticated group
func (h *Handler) RegisterRoutes(g *echo.Group) {
	driverGroup := g.Group("/drivers")
	driverGroup.GET("", h.fleetHTTP.ListDrivers)
	driverGroup.POST("", h.fleetHTTP.CreateDriver)
	driverGroup.GET("/:id", h.fleetHTTP.GetDriver)
	driverGroup.PUT("/:id/status", h.fleetHTTP.UpdateDriverStatus)

	vehicleGroup := g.Group("/vehicles")
	vehicleGroup.GET("", h.fleetHTTP.ListVehicles)
	vehicleGroup.POST("", h.fleetHTTP.CreateVehicle)
	vehicleGroup.GET("/:id", h.fleetHTTP.GetVehicle)
	vehicleGroup.PUT("/:id/status", h.fleetHTTP.UpdateVehicleStatus)
}
