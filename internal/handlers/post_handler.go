package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/teerapat-dev/blogspace/backend/internal/authz"
	"github.com/teerapat-dev/blogspace/backend/internal/models"
	"github.com/teerapat-dev/blogspace/backend/internal/repositories"
)

// PostHandler handles HTTP requests related to posts
type PostHandler struct {
	postRepository repositories.PostRepository
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(postRepo repositories.PostRepository) *PostHandler {
	return &PostHandler{postRepository: postRepo}
}

// RegisterPostRoutes registers post routes. Reads are public; mutations and
// the dashboard listing require an authenticated principal.
func (h *PostHandler) RegisterPostRoutes(public, authed *echo.Group) {
	public.GET("/posts", h.GetPosts)
	public.GET("/posts/:id", h.GetPost)
	authed.POST("/posts", h.CreatePost)
	authed.PUT("/posts/:id", h.UpdatePost)
	authed.DELETE("/posts/:id", h.DeletePost)
	authed.GET("/me/posts", h.GetMyPosts)
}

// RegisterAdminPostRoutes registers the admin content listing
func (h *PostHandler) RegisterAdminPostRoutes(admin *echo.Group) {
	admin.GET("/posts", h.GetPosts)
}

// CreatePost creates a new post owned by the session principal
func (h *PostHandler) CreatePost(c echo.Context) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}

	var req models.CreatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	post := &models.Post{
		Title:       req.Title,
		Img:         req.Img,
		Content:     req.Content,
		AuthorID:    principal.ID,
		AuthorEmail: principal.Email,
	}

	if err := h.postRepository.CreatePost(c.Request().Context(), post); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusCreated, post)
}

// GetPost retrieves a post by ID
func (h *PostHandler) GetPost(c echo.Context) error {
	post, err := h.postRepository.GetPostByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, post)
}

// GetPosts retrieves all posts newest-first with pagination
func (h *PostHandler) GetPosts(c echo.Context) error {
	skip, _ := strconv.ParseInt(c.QueryParam("skip"), 10, 64)
	limit, _ := strconv.ParseInt(c.QueryParam("limit"), 10, 64)
	if limit == 0 {
		limit = 10 // Default limit
	}

	posts, err := h.postRepository.GetAllPosts(c.Request().Context(), skip, limit)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, posts)
}

// GetMyPosts retrieves the session principal's own posts for the dashboard
func (h *PostHandler) GetMyPosts(c echo.Context) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}

	posts, err := h.postRepository.GetPostsByAuthorEmail(c.Request().Context(), principal.Email)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, posts)
}

// UpdatePost updates an existing post. Allowed for the owner or an admin.
func (h *PostHandler) UpdatePost(c echo.Context) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}
	postID := c.Param("id")

	var req models.UpdatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	existingPost, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		return toHTTPError(err)
	}

	if !authz.Allow(principal, existingPost.AuthorID, authz.ActionEdit) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this post")
	}

	if req.Title != "" {
		existingPost.Title = req.Title
	}
	if req.Img != "" {
		existingPost.Img = req.Img
	}
	if req.Content != "" {
		existingPost.Content = req.Content
	}

	if err := h.postRepository.UpdatePost(c.Request().Context(), postID, existingPost); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, existingPost)
}

// DeletePost deletes a post. Allowed for the owner or an admin. Comments on
// the post are not cascaded.
func (h *PostHandler) DeletePost(c echo.Context) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}
	postID := c.Param("id")

	existingPost, err := h.postRepository.GetPostByID(c.Request().Context(), postID)
	if err != nil {
		return toHTTPError(err)
	}

	if !authz.Allow(principal, existingPost.AuthorID, authz.ActionDelete) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this post")
	}

	if err := h.postRepository.DeletePost(c.Request().Context(), postID); err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "post deleted"})
}
