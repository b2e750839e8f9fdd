package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fleetdesk/fleetdesk/internal/pkg/logger"
	"github.com/fleetdesk/fleetdesk/internal/pkg/middleware"
	"github.com/fleetdesk/fleetdesk/internal/utils"
	"github.com/fleetdesk/fleetdesk/services/dashboard"
)

// DashboardHandler handles HTTP requests for dashboard operations
type DashboardHandler struct {
	dashboardUC dashboard.DashboardUC
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardUC dashboard.DashboardUC) *DashboardHandler {
	return &DashboardHandler{
		dashboardUC: dashboardUC,
	}
}

// GetSummary handles dashboard summary requests
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	filter, err := middleware.FilterFromContext(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	summary, err := h.dashboardUC.GetSummary(c.Request().Context(), filter)
	if err != nil {
		logger.Error("Failed to get dashboard summary", logger.ErrorField(err))
		return utils.DomainErrorResponse(c, err, "Failed to get dashboard summary")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Dashboard summary retrieved successfully", summary)
}

// GetActivity handles activity feed requests
func (h *DashboardHandler) GetActivity(c echo.Context) error {
	filter, err := middleware.FilterFromContext(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	limit := 50
	if raw := c.QueryParam("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			limit = v
		}
	}

	entries, err := h.dashboardUC.GetActivity(c.Request().Context(), filter, limit)
	if err != nil {
		logger.Error("Failed to get activity feed", logger.ErrorField(err))
		return utils.DomainErrorResponse(c, err, "Failed to get activity feed")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Activity feed retrieved successfully", entries)
}
