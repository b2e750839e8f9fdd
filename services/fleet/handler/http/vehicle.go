package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/fleetdesk/fleetdesk/internal/pkg/logger"
	"github.com/fleetdesk/fleetdesk/internal/pkg/middleware"
	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/utils"
)

// ListVehicles handles vehicle list requests with filtering and pagination
func (h *FleetHandler) ListVehicles(c echo.Context) error {
	filter, err := middleware.FilterFromContext(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	page, perPage := utils.ParsePagination(c)

	rows, total, err := h.fleetUC.ListVehicles(c.Request().Context(), filter, page, perPage)
	if err != nil {
		logger.Error("Failed to list vehicles", logger.ErrorField(err))
		return utils.DomainErrorResponse(c, err, "Failed to list vehicles")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicles retrieved successfully", utils.PaginatedData{
		Rows:    rows,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	})
}

// GetVehicle handles vehicle retrieval requests
func (h *FleetHandler) GetVehicle(c echo.Context) error {
	scope, id, err := scopeAndID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	vehicle, err := h.fleetUC.GetVehicle(c.Request().Context(), scope, id)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to retrieve vehicle")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle retrieved successfully", vehicle)
}

// CreateVehicle handles vehicle registration requests
func (h *FleetHandler) CreateVehicle(c echo.Context) error {
	scope, err := middleware.ScopeFromContext(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var vehicle models.Vehicle
	if err := c.Bind(&vehicle); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.fleetUC.RegisterVehicle(c.Request().Context(), scope, &vehicle); err != nil {
		logger.Error("Failed to create vehicle", logger.ErrorField(err))
		return utils.DomainErrorResponse(c, err, "Failed to create vehicle")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Vehicle created successfully", vehicle)
}

// UpdateVehicleStatus handles vehicle status change requests
func (h *FleetHandler) UpdateVehicleStatus(c echo.Context) error {
	scope, id, err := scopeAndID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req StatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	vehicle, err := h.fleetUC.UpdateVehicleStatus(c.Request().Context(), scope, id, req.Status)
	if err != nil {
		logger.Warn("Vehicle status update rejected",
			logger.ErrorField(err),
			logger.Int64("vehicle_id", id),
			logger.String("requested_status", req.Status),
		)
		return utils.DomainErrorResponse(c, err, "Failed to update vehicle status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle status updated successfully", vehicle)
}
