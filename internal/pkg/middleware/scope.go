package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/fleetdesk/fleetdesk/internal/pkg/querybuilder"
)

// ScopeFromContext derives the row-visibility filter from the authenticated
// claims. Non-admin callers always get their own company; the scope is never
// read from request input for them. Admins span all companies by default and
// may narrow to one company with the company_id query parameter.
func ScopeFromContext(c echo.Context) (querybuilder.Filter, error) {
	if RoleFromContext(c) == RoleAdmin {
		if raw := c.QueryParam("company_id"); raw != "" {
			companyID, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				return querybuilder.Filter{}, querybuilder.ErrMissingCompanyScope
			}
			return querybuilder.NewCompanyFilter(companyID)
		}
		return querybuilder.NewAdminFilter(), nil
	}
	return querybuilder.NewCompanyFilter(CompanyIDFromContext(c))
}
