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
	"github.com/fleetdesk/fleetdesk/services/bookings"
)

// BookingHandler handles HTTP requests for booking operations
type BookingHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUC bookings.BookingUC) *BookingHandler {
	return &BookingHandler{
		bookingUC: bookingUC,
	}
}

// ListBookings handles booking list requests with filtering and pagination
func (h *BookingHandler) ListBookings(c echo.Context) error {
	filter, err := middleware.FilterFromContext(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}
	page, perPage := utils.ParsePagination(c)

	rows, total, err := h.bookingUC.ListBookings(c.Request().Context(), filter, page, perPage)
	if err != nil {
		logger.Error("Failed to list bookings", logger.ErrorField(err))
		return utils.DomainErrorResponse(c, err, "Failed to list bookings")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved successfully", utils.PaginatedData{
		Rows:    rows,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	})
}

// GetBooking handles booking retrieval requests
func (h *BookingHandler) GetBooking(c echo.Context) error {
	scope, id, err := scopeAndID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	booking, err := h.bookingUC.GetBooking(c.Request().Context(), scope, id)
	if err != nil {
		return utils.DomainErrorResponse(c, err, "Failed to retrieve booking")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved successfully", booking)
}

// UpdateBookingStatus handles booking status transition requests
func (h *BookingHandler) UpdateBookingStatus(c echo.Context) error {
	scope, id, err := scopeAndID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req models.BookingStatusUpdateRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	booking, err := h.bookingUC.UpdateBookingStatus(c.Request().Context(), scope, id, req.Status)
	if err != nil {
		logger.Warn("Booking status update rejected",
			logger.ErrorField(err),
			logger.Int64("booking_id", id),
			logger.String("requested_status", req.Status),
		)
		return utils.DomainErrorResponse(c, err, "Failed to update booking status")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Booking status updated successfully", booking)
}

// AvailableDrivers handles assignment candidate requests for drivers. The
// booking in the path is excluded from availability checks so its current
// driver remains selectable.
func (h *BookingHandler) AvailableDrivers(c echo.Context) error {
	scope, id, err := scopeAndID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	drivers, err := h.bookingUC.AvailableDrivers(c.Request().Context(), scope, id)
	if err != nil {
		logger.Error("Failed to resolve available drivers", logger.ErrorField(err))
		return utils.DomainErrorResponse(c, err, "Failed to resolve available drivers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Available drivers retrieved successfully", drivers)
}

// AvailableVehicles handles assignment candidate requests for vehicles
func (h *BookingHandler) AvailableVehicles(c echo.Context) error {
	scope, id, err := scopeAndID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	vehicles, err := h.bookingUC.AvailableVehicles(c.Request().Context(), scope, id)
	if err != nil {
		logger.Error("Failed to resolve available vehicles", logger.ErrorField(err))
		return utils.DomainErrorResponse(c, err, "Failed to resolve available vehicles")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Available vehicles retrieved successfully", vehicles)
}

// AssignDriver handles driver assignment requests. A null driver_id clears
// the assignment.
func (h *BookingHandler) AssignDriver(c echo.Context) error {
	scope, id, err := scopeAndID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req models.BookingAssignRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	booking, err := h.bookingUC.AssignDriver(c.Request().Context(), scope, id, req.DriverID)
	if err != nil {
		logger.Warn("Driver assignment rejected",
			logger.ErrorField(err),
			logger.Int64("booking_id", id),
		)
		return utils.DomainErrorResponse(c, err, "Failed to assign driver")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Driver assignment updated successfully", booking)
}

// AssignVehicle handles vehicle assignment requests
func (h *BookingHandler) AssignVehicle(c echo.Context) error {
	scope, id, err := scopeAndID(c)
	if err != nil {
		return utils.BadRequestResponse(c, err.Error())
	}

	var req models.BookingAssignRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	booking, err := h.bookingUC.AssignVehicle(c.Request().Context(), scope, id, req.VehicleID)
	if err != nil {
		logger.Warn("Vehicle assignment rejected",
			logger.ErrorField(err),
			logger.Int64("booking_id", id),
		)
		return utils.DomainErrorResponse(c, err, "Failed to assign vehicle")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Vehicle assignment updated successfully", booking)
}

// scopeAndID extracts the caller's scope and the booking id from the request
func scopeAndID(c echo.Context) (querybuilder.Filter, int64, error) {
	scope, err := middleware.ScopeFromContext(c)
	if err != nil {
		return querybuilder.Filter{}, 0, err
	}
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return querybuilder.Filter{}, 0, echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}
	return scope, id, nil
}
