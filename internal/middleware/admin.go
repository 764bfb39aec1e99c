package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/teerapat-dev/blogspace/backend/internal/authz"
)

// RequireAdmin rejects requests whose principal does not hold the admin
// role. Must run after JWTAuth on the same group.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := c.Get(PrincipalContextKey).(authz.Principal)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
			}
			if !principal.IsAdmin() {
				return echo.NewHTTPError(http.StatusForbidden, "Admin role required")
			}
			return next(c)
		}
	}
}
