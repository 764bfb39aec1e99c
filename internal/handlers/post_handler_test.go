package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teerapat-dev/blogspace/backend/internal/authz"
	"github.com/teerapat-dev/blogspace/backend/internal/models"
)

func createPost(t *testing.T, h *PostHandler, principal authz.Principal, title string) models.Post {
	t.Helper()
	e := newTestEcho()
	body := `{"title":"` + title + `","img":"https://img.example.com/cover.png","content":"some content"}`
	c, rec := newJSONContext(t, e, http.MethodPost, "/api/v1/posts", body, &principal)
	require.NoError(t, h.CreatePost(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	var post models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &post))
	return post
}

func TestCreatePost(t *testing.T) {
	repo := newMemoryPostRepo()
	h := NewPostHandler(repo)

	t.Run("author identity comes from the session", func(t *testing.T) {
		post := createPost(t, h, alice, "My first post")
		assert.Equal(t, "u1", post.AuthorID)
		assert.Equal(t, "alice@example.com", post.AuthorEmail)
		assert.Equal(t, "My first post", post.Title)
		assert.False(t, post.CreatedAt.IsZero())
	})

	t.Run("missing title is rejected", func(t *testing.T) {
		e := newTestEcho()
		c, _ := newJSONContext(t, e, http.MethodPost, "/api/v1/posts", `{"img":"https://x.example.com/a.png","content":"c"}`, &alice)
		err := h.CreatePost(c)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, httpStatus(t, err))
	})

	t.Run("unauthenticated is rejected", func(t *testing.T) {
		e := newTestEcho()
		c, _ := newJSONContext(t, e, http.MethodPost, "/api/v1/posts", `{}`, nil)
		err := h.CreatePost(c)
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, httpStatus(t, err))
	})
}

func TestUpdatePost(t *testing.T) {
	repo := newMemoryPostRepo()
	h := NewPostHandler(repo)
	post := createPost(t, h, alice, "Editable")
	id := post.ID.Hex()

	updateAs := func(principal authz.Principal, body string) error {
		e := newTestEcho()
		c, _ := newJSONContext(t, e, http.MethodPut, "/api/v1/posts/"+id, body, &principal)
		c.SetParamNames("id")
		c.SetParamValues(id)
		return h.UpdatePost(c)
	}

	t.Run("non-owner is forbidden", func(t *testing.T) {
		err := updateAs(bob, `{"title":"taken over"}`)
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, httpStatus(t, err))
	})

	t.Run("owner may edit", func(t *testing.T) {
		require.NoError(t, updateAs(alice, `{"title":"renamed"}`))
		stored, err := repo.GetPostByID(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, "renamed", stored.Title)
		assert.Equal(t, "some content", stored.Content)
	})

	t.Run("admin may edit", func(t *testing.T) {
		require.NoError(t, updateAs(root, `{"title":"moderated"}`))
	})

	t.Run("unknown post is a 404", func(t *testing.T) {
		e := newTestEcho()
		c, _ := newJSONContext(t, e, http.MethodPut, "/api/v1/posts/missing", `{"title":"x"}`, &alice)
		c.SetParamNames("id")
		c.SetParamValues("missing")
		err := h.UpdatePost(c)
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, httpStatus(t, err))
	})
}

func TestDeletePost(t *testing.T) {
	repo := newMemoryPostRepo()
	h := NewPostHandler(repo)

	deleteAs := func(principal authz.Principal, id string) error {
		e := newTestEcho()
		c, _ := newJSONContext(t, e, http.MethodDelete, "/api/v1/posts/"+id, "", &principal)
		c.SetParamNames("id")
		c.SetParamValues(id)
		return h.DeletePost(c)
	}

	t.Run("non-owner is forbidden", func(t *testing.T) {
		post := createPost(t, h, alice, "Protected")
		err := deleteAs(bob, post.ID.Hex())
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, httpStatus(t, err))
	})

	t.Run("owner may delete", func(t *testing.T) {
		post := createPost(t, h, alice, "Disposable")
		require.NoError(t, deleteAs(alice, post.ID.Hex()))
		_, err := repo.GetPostByID(context.Background(), post.ID.Hex())
		require.Error(t, err)
	})

	t.Run("admin may delete", func(t *testing.T) {
		post := createPost(t, h, bob, "Spam")
		require.NoError(t, deleteAs(root, post.ID.Hex()))
	})
}

func TestGetMyPosts(t *testing.T) {
	repo := newMemoryPostRepo()
	h := NewPostHandler(repo)
	createPost(t, h, alice, "Mine 1")
	createPost(t, h, alice, "Mine 2")
	createPost(t, h, bob, "Not mine")

	e := newTestEcho()
	c, rec := newJSONContext(t, e, http.MethodGet, "/api/v1/me/posts", "", &alice)
	require.NoError(t, h.GetMyPosts(c))

	var posts []models.Post
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &posts))
	require.Len(t, posts, 2)
	for _, post := range posts {
		assert.Equal(t, "alice@example.com", post.AuthorEmail)
	}
}
