package middleware

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	jwtpkg "github.com/fleetdesk/fleetdesk/internal/pkg/jwt"
	"github.com/fleetdesk/fleetdesk/internal/pkg/models"
	"github.com/fleetdesk/fleetdesk/internal/utils"
)

// Context keys set by the auth middleware
const (
	ContextUserID    = "user_id"
	ContextRole      = "role"
	ContextCompanyID = "company_id"
)

// RoleAdmin unlocks cross-company visibility
const RoleAdmin = "admin"

// JWTAuthMiddleware validates the bearer token and stores the caller's
// identity, role and company scope on the request context. Everything behind
// it can trust those three values without re-verifying identity.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			userID, err := claimAsInt64(*claims, "user_id")
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}

			role, ok := (*claims)["role"].(string)
			if !ok || role == "" {
				return utils.UnauthorizedResponse(c, "Invalid token: missing role claim")
			}

			companyID, err := claimAsInt64(*claims, "company_id")
			if err != nil && role != RoleAdmin {
				return utils.UnauthorizedResponse(c, "Invalid token: missing company_id claim")
			}

			c.Set(ContextUserID, userID)
			c.Set(ContextRole, role)
			c.Set(ContextCompanyID, companyID)

			return next(c)
		}
	}
}

// RequireAdmin rejects requests from non-admin callers. Used on endpoints
// that always span all companies.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if RoleFromContext(c) != RoleAdmin {
				return utils.ForbiddenResponse(c, "Admin role required")
			}
			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user id, or zero
func UserIDFromContext(c echo.Context) int64 {
	if v, ok := c.Get(ContextUserID).(int64); ok {
		return v
	}
	return 0
}

// RoleFromContext returns the authenticated role, or an empty string
func RoleFromContext(c echo.Context) string {
	if v, ok := c.Get(ContextRole).(string); ok {
		return v
	}
	return ""
}

// CompanyIDFromContext returns the authenticated company id, or zero
func CompanyIDFromContext(c echo.Context) int64 {
	if v, ok := c.Get(ContextCompanyID).(int64); ok {
		return v
	}
	return 0
}

// JWT numeric claims decode as float64
func claimAsInt64(claims jwt.MapClaims, key string) (int64, error) {
	raw, ok := claims[key]
	if !ok {
		return 0, fmt.Errorf("missing claim %s", key)
	}
	num, ok := raw.(float64)
	if !ok {
		return 0, fmt.Errorf("claim %s is not numeric", key)
	}
	return int64(num), nil
}
