package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	natspkg "github.com/fleetdesk/fleetdesk/internal/pkg/nats"
	"github.com/fleetdesk/fleetdesk/services/dashboard"
	httpHandler "github.com/fleetdesk/fleetdesk/services/dashboard/handler/http"
	natsHandler "github.com/fleetdesk/fleetdesk/services/dashboard/handler/nats"
)

// Handler combines all handlers for the dashboard service
type Handler struct {
	dashboardHTTP *httpHandler.DashboardHandler
	dashboardNATS *natsHandler.DashboardHandler
	cfg           *models.Config
}

// NewHandler creates a new combined handler
func NewHandler(dashboardUC dashboard.DashboardUC, natsClient *natspkg.Client, cfg *models.Config) *Handler {
	return &Handler{
		dashboardHTTP: httpHandler.NewDashboardHandler(dashboardUC),
		dashboardNATS: natsHandler.NewDashboardHandler(dashboardUC, natsClient),
		cfg:           cfg,
	}
}

// RegisterRoutes registers all dashboard HTTP routes on the authenticated group
func (h *Handler) RegisterRoutes(g *echo.Group) {
	dashboardGroup := g.Group("/dashboard")
	dashboardGroup.GET("/summary", h.dashboardHTTP.GetSummary)
	dashboardGroup.GET("/activity", h.dashboardHTTP.GetActivity)
}

// InitNATSConsumers initializes all NATS consumers
func (h *Handler) InitNATSConsumers() error {
	return h.dashboardNATS.InitNATSConsumers()
}
