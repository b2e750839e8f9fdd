package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fleetdesk/fleetdesk/internal/pkg/logger"
	"github.com/fleetdesk/fleetdesk/internal/pkg/middleware"
	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
	"github.com/fleetdesk/fleetdesk/internal/utils"
	"github.com/fleetdesk/fleetdesk/services/fleet"
)

// FleetHandler handles HTTP requests for driver and vehicle operations
type FleetHandler struct {
	fleetUC fleet.FleetUC
}

// NewFleetHandler creates a new fleet handler
func NewFleetHandler(fleetUC fleet.FleetUC) *FleetHandler {
	return &FleetHandler{
		fleetUC: fleetUC,
	}
}

// StatusUpdateRequest is the payload for driver and vehicle status changes
type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// ListDrivers handles driver list requests with filtering and pagination
func (h *FleetHandler) ListDrivers(c echo.Context) error {
	filter, err := middleware.FilterFromContext(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	page, perPage := utils.ParsePagination(c)

	rows, total, err := h.fleetUC.ListDrivers(c.Request().Context(), filter, page, perPage)
	if err != nil {
		logger.Error("Failed to list drivers", logger.ErrorField(err))
		return utils.DomainErrorResponse(c, err, "Failed to list drivers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Drivers retrieved successfully", utils.PaginatedData{
		Rows:    rows,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	})
}

// GetDriver handles driver retrieval requests
func (h *FleetHandler) GetDriver(c echo.Context) error {
	scope, id, err := scopeAndID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	driver, err := h.fleetUC.GetDriver(c.Request().Context(), scope, id)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to retrieve driver")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver retrieved successfully", driver)
}

// CreateDriver handles driver registration requests
func (h *FleetHandler) CreateDriver(c echo.Context) error {
	scope, err := middleware.ScopeFromContext(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var driver models.Driver
	if err := c.Bind(&driver); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.fleetUC.RegisterDriver(c.Request().Context(), scope, &driver); err != nil {
		logger.Error("Failed to create driver", logger.ErrorField(err))
		return utils.DomainErrorResponse(c, err, "Failed to create driver")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Driver created successfully", driver)
}

// UpdateDriverStatus handles driver status change requests
func (h *FleetHandler) UpdateDriverStatus(c echo.Context) error {
	scope, id, err := scopeAndID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	driver, err := h.fleetUC.UpdateDriverStatus(c.Request().Context(), scope, id, req.Status)
	if err != nil {
		logger.Warn("Driver status update rejected",
			logger.ErrorField(err),
			logger.Int64("driver_id", id),
			logger.String("requested_status", req.Status),
		)
		return utils.DomainErrorResponse(c, err, "Failed to update driver status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver status updated successfully", driver)
}

// scopeAndID extracts the caller's scope and the resource id from the request
func scopeAndID(c echo.Context) (querybuilder.Filter, int64, error) {
	scope, err := middleware.ScopeFromContext(c)
	if err != nil {
		return querybuilder.Filter{}, 0, err
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return querybuilder.Filter{}, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid resource id")
	}
	return scope, id, nil
}
