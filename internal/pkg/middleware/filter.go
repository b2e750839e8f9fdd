package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
)

// FilterFromContext builds the list filter from the caller's scope plus the
// optional status, search and date-window query parameters.
func FilterFromContext(c echo.Context) (querybuilder.Filter, error) {
	filter, err := ScopeFromContext(c)
	if err != nil {
		return querybuilder.Filter{}, err
	}

	filter.Status = c.QueryParam("status")
	filter.Search = c.QueryParam("search")

	if filter.DateFrom, err = parseDateParam(c.QueryParam("date_from"), false); err != nil {
		return querybuilder.Filter{}, err
	}
	if filter.DateTo, err = parseDateParam(c.QueryParam("date_to"), true); err != nil {
		return querybuilder.Filter{}, err
	}
	return filter, nil
}

// parseDateParam accepts RFC3339 timestamps or bare dates. A bare date used
// as the window end covers the whole day.
func parseDateParam(raw string, endOfDay bool) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "invalid date parameter")
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}
