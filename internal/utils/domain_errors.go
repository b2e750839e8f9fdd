package utils

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/fleetdesk/fleetdesk/internal/pkg/apperrors"
	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
)

// DomainErrorResponse maps the domain error taxonomy onto HTTP status codes.
// Unrecognized errors become a 500 with the fallback message so internal
// detail never leaks to clients.
func DomainErrorResponse(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return NotFoundResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrInvalidStatus),
		errors.Is(err, apperrors.ErrInvalidTransition),
		errors.Is(err, querybuilder.ErrMissingCompanyScope):
		return BadRequestResponse(c, err.Error())
	case errors.Is(err, apperrors.ErrAssignmentConflict):
		return ConflictResponse(c, err.Error())
	}
	return InternalServerErrorResponse(c, fallback)
}
