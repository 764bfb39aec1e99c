package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/teerapat-dev/blogspace/backend/internal/models"
	"github.com/teerapat-dev/blogspace/backend/internal/repositories"
)

// UserHandler handles HTTP requests related to users
type UserHandler struct {
	userRepository repositories.UserRepository
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepository: userRepo}
}

// RegisterProfileRoutes registers the signed-in user's profile routes
func (h *UserHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET("/me", h.GetProfile)
	g.PUT("/me", h.UpdateProfile)
}

// RegisterAdminUserRoutes registers the admin user-management routes
func (h *UserHandler) RegisterAdminUserRoutes(g *echo.Group) {
	g.GET("/users", h.GetUsers)
	g.DELETE("/users/:id", h.DeleteUser)
}

// GetProfile retrieves the authenticated user's profile
func (h *UserHandler) GetProfile(c echo.Context) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}

	user, err := h.userRepository.GetUserByEmail(principal.Email)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateProfile updates the authenticated user's profile. Comments keep the
// author name snapshot taken at their creation; renames do not rewrite them.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}

	var req models.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userRepository.GetUserByEmail(principal.Email)
	if err != nil {
		return toHTTPError(err)
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		user.Email = req.Email
	}

	if err := h.userRepository.UpdateUser(user); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, user)
}

// GetUsers lists all accounts for the admin user-management page
func (h *UserHandler) GetUsers(c echo.Context) error {
	users, err := h.userRepository.GetUsers()
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// DeleteUser removes an account by ID. Admin only; posts and comments the
// user authored stay in place with their snapshot identity.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid user ID")
	}

	if err := h.userRepository.DeleteUser(uint(id)); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "user deleted"})
}
