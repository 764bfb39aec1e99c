package handlers

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/teerapat-dev/blogspace/backend/internal/apperrors"
	"github.com/teerapat-dev/blogspace/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryCommentRepo is an in-memory CommentRepository double mirroring the
// Mongo store's contract, including atomic increments under a lock.
type memoryCommentRepo struct {
	mu       sync.Mutex
	comments map[string]*models.Comment
}

func newMemoryCommentRepo() *memoryCommentRepo {
	return &memoryCommentRepo{comments: make(map[string]*models.Comment)}
}

func (r *memoryCommentRepo) CreateComment(_ context.Context, comment *models.Comment) error {
	if comment.PostID == "" {
		return fmt.Errorf("post id is required: %w", apperrors.ErrValidation)
	}
	if comment.AuthorID == "" {
		return fmt.Errorf("author id is required: %w", apperrors.ErrValidation)
	}
	if comment.Text == "" {
		return fmt.Errorf("text is required: %w", apperrors.ErrValidation)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now()
	comment.LikesCount = 0
	stored := *comment
	r.comments[comment.ID.Hex()] = &stored
	return nil
}

func (r *memoryCommentRepo) GetCommentByID(_ context.Context, id string) (*models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment, ok := r.comments[id]
	if !ok {
		return nil, fmt.Errorf("comment %q: %w", id, apperrors.ErrNotFound)
	}
	copied := *comment
	return &copied, nil
}

func (r *memoryCommentRepo) GetCommentsByPostID(_ context.Context, postID string) ([]models.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comments := []models.Comment{}
	for _, comment := range r.comments {
		if comment.PostID == postID {
			comments = append(comments, *comment)
		}
	}
	sort.Slice(comments, func(i, j int) bool {
		return comments[i].CreatedAt.After(comments[j].CreatedAt)
	})
	return comments, nil
}

func (r *memoryCommentRepo) UpdateCommentText(_ context.Context, id, text string) (*models.Comment, error) {
	if text == "" {
		return nil, fmt.Errorf("text is required: %w", apperrors.ErrValidation)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	comment, ok := r.comments[id]
	if !ok {
		return nil, fmt.Errorf("comment %q: %w", id, apperrors.ErrNotFound)
	}
	comment.Text = text
	copied := *comment
	return &copied, nil
}

func (r *memoryCommentRepo) IncrementLikesCount(_ context.Context, id string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	comment, ok := r.comments[id]
	if !ok {
		return 0, fmt.Errorf("comment %q: %w", id, apperrors.ErrNotFound)
	}
	comment.LikesCount++
	return comment.LikesCount, nil
}

func (r *memoryCommentRepo) DeleteComment(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.comments[id]; !ok {
		return fmt.Errorf("comment %q: %w", id, apperrors.ErrNotFound)
	}
	delete(r.comments, id)
	return nil
}

// memoryPostRepo is an in-memory PostRepository double.
type memoryPostRepo struct {
	mu    sync.Mutex
	posts map[string]*models.Post
}

func newMemoryPostRepo() *memoryPostRepo {
	return &memoryPostRepo{posts: make(map[string]*models.Post)}
}

func (r *memoryPostRepo) CreatePost(_ context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	post.ID = primitive.NewObjectID()
	post.CreatedAt = time.Now()
	post.UpdatedAt = time.Now()
	stored := *post
	r.posts[post.ID.Hex()] = &stored
	return nil
}

func (r *memoryPostRepo) GetPostByID(_ context.Context, id string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	post, ok := r.posts[id]
	if !ok {
		return nil, fmt.Errorf("post %q: %w", id, apperrors.ErrNotFound)
	}
	copied := *post
	return &copied, nil
}

func (r *memoryPostRepo) GetAllPosts(_ context.Context, skip, limit int64) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := []models.Post{}
	for _, post := range r.posts {
		posts = append(posts, *post)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	if skip >= int64(len(posts)) {
		return []models.Post{}, nil
	}
	posts = posts[skip:]
	if limit > 0 && int64(len(posts)) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (r *memoryPostRepo) GetPostsByAuthorEmail(_ context.Context, email string) ([]models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := []models.Post{}
	for _, post := range r.posts {
		if post.AuthorEmail == email {
			posts = append(posts, *post)
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (r *memoryPostRepo) UpdatePost(_ context.Context, id string, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.posts[id]
	if !ok {
		return fmt.Errorf("post %q: %w", id, apperrors.ErrNotFound)
	}
	existing.Title = post.Title
	existing.Img = post.Img
	existing.Content = post.Content
	existing.UpdatedAt = time.Now()
	return nil
}

func (r *memoryPostRepo) DeletePost(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.posts[id]; !ok {
		return fmt.Errorf("post %q: %w", id, apperrors.ErrNotFound)
	}
	delete(r.posts, id)
	return nil
}

func (r *memoryPostRepo) IncrementCommentsCount(_ context.Context, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if post, ok := r.posts[postID]; ok {
		post.CommentsCount++
	}
	return nil
}

func (r *memoryPostRepo) DecrementCommentsCount(_ context.Context, postID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if post, ok := r.posts[postID]; ok {
		post.CommentsCount--
	}
	return nil
}

// memoryUserRepo is an in-memory UserRepository double.
type memoryUserRepo struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]*models.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{nextID: 1, users: make(map[uint]*models.User)}
}

func (r *memoryUserRepo) CreateUser(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = r.nextID
	r.nextID++
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memoryUserRepo) GetUserByID(id uint) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, apperrors.ErrNotFound)
	}
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepo) GetUserByEmail(email string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, apperrors.ErrNotFound)
}

func (r *memoryUserRepo) GetUsers() ([]models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	users := []models.User{}
	for _, user := range r.users {
		users = append(users, *user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *memoryUserRepo) UpdateUser(user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return fmt.Errorf("user %d: %w", user.ID, apperrors.ErrNotFound)
	}
	stored := *user
	r.users[user.ID] = &stored
	return nil
}

func (r *memoryUserRepo) DeleteUser(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("user %d: %w", id, apperrors.ErrNotFound)
	}
	delete(r.users, id)
	return nil
}
