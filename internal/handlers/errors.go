package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/teerapat-dev/blogspace/backend/internal/apperrors"
	"github.com/teerapat-dev/blogspace/backend/internal/authz"
	"github.com/teerapat-dev/blogspace/backend/internal/middleware"
)

// toHTTPError translates repository errors into HTTP responses. Anything
// outside the shared taxonomy is an unexpected store failure: logged and
// reported as a generic 500, never retried.
func toHTTPError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrForbidden):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, apperrors.ErrUnauthenticated):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperrors.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		log.Printf("unexpected store error: %v", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}

// currentPrincipal extracts the authenticated principal placed in the
// context by the JWT middleware.
func currentPrincipal(c echo.Context) (authz.Principal, bool) {
	principal, ok := c.Get(middleware.PrincipalContextKey).(authz.Principal)
	return principal, ok
}
