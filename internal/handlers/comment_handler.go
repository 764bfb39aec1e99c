package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/teerapat-dev/blogspace/backend/internal/authz"
	"github.com/teerapat-dev/blogspace/backend/internal/models"
	"github.com/teerapat-dev/blogspace/backend/internal/repositories"
)

// CommentHandler handles HTTP requests related to comments
type CommentHandler struct {
	commentRepository repositories.CommentRepository
	postRepository    repositories.PostRepository // To maintain comment counts on posts
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentHandler {
	return &CommentHandler{
		commentRepository: commentRepo,
		postRepository:    postRepo,
	}
}

// RegisterCommentRoutes registers comment routes. Listing is public;
// everything that mutates requires an authenticated principal.
func (h *CommentHandler) RegisterCommentRoutes(public, authed *echo.Group) {
	public.GET("/comments", h.GetCommentsByPostID)
	authed.POST("/comments", h.CreateComment)
	authed.PUT("/comments/:id", h.UpdateComment)
	authed.DELETE("/comments/:id", h.DeleteComment)
	authed.POST("/comments/:id/like", h.LikeComment)
}

// GetCommentsByPostID retrieves all comments for a post, newest first
func (h *CommentHandler) GetCommentsByPostID(c echo.Context) error {
	postID := c.QueryParam("postId")
	if postID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "postId query parameter is required")
	}

	comments, err := h.commentRepository.GetCommentsByPostID(c.Request().Context(), postID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, comments)
}

// CreateComment creates a new comment on a post. The author identity is a
// snapshot of the session principal, never taken from the request body.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}

	var req models.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment := &models.Comment{
		PostID:     req.PostID,
		AuthorID:   principal.ID,
		AuthorName: principal.Name,
		Text:       req.Text,
	}

	if err := h.commentRepository.CreateComment(c.Request().Context(), comment); err != nil {
		return toHTTPError(err)
	}

	// Counter maintenance happens off the request path; a missing post
	// simply matches no document.
	go h.postRepository.IncrementCommentsCount(context.Background(), comment.PostID)

	return c.JSON(http.StatusCreated, comment)
}

// UpdateComment replaces a comment's text. Allowed for the owner or an admin.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}
	commentID := c.Param("id")

	var req models.UpdateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	comment, err := h.commentRepository.GetCommentByID(c.Request().Context(), commentID)
	if err != nil {
		return toHTTPError(err)
	}

	if !authz.Allow(principal, comment.AuthorID, authz.ActionEdit) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to update this comment")
	}

	updated, err := h.commentRepository.UpdateCommentText(c.Request().Context(), commentID, req.Text)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, updated)
}

// DeleteComment removes a comment permanently. Allowed for the owner or an
// admin.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	principal, ok := currentPrincipal(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}
	commentID := c.Param("id")

	comment, err := h.commentRepository.GetCommentByID(c.Request().Context(), commentID)
	if err != nil {
		return toHTTPError(err)
	}

	if !authz.Allow(principal, comment.AuthorID, authz.ActionDelete) {
		return echo.NewHTTPError(http.StatusForbidden, "You are not authorized to delete this comment")
	}

	if err := h.commentRepository.DeleteComment(c.Request().Context(), commentID); err != nil {
		return toHTTPError(err)
	}

	go h.postRepository.DecrementCommentsCount(context.Background(), comment.PostID)

	return c.JSON(http.StatusOK, echo.Map{"message": "comment deleted"})
}

// LikeComment increments a comment's like counter and returns the new count.
// Any authenticated principal may like, including repeatedly; no per-user
// dedup set is tracked.
func (h *CommentHandler) LikeComment(c echo.Context) error {
	if _, ok := currentPrincipal(c); !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authentication")
	}
	commentID := c.Param("id")

	likes, err := h.commentRepository.IncrementLikesCount(c.Request().Context(), commentID)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, echo.Map{"likes_count": likes})
}
