package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/teerapat-dev/blogspace/backend/internal/apperrors"
	"github.com/teerapat-dev/blogspace/backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	CreateComment(ctx context.Context, comment *models.Comment) error
	GetCommentByID(ctx context.Context, id string) (*models.Comment, error)
	GetCommentsByPostID(ctx context.Context, postID string) ([]models.Comment, error)
	UpdateCommentText(ctx context.Context, id, text string) (*models.Comment, error)
	IncrementLikesCount(ctx context.Context, id string) (int, error)
	DeleteComment(ctx context.Context, id string) error
}

// MongoCommentRepository implements CommentRepository for MongoDB
type MongoCommentRepository struct {
	collection *mongo.Collection
}

// NewMongoCommentRepository creates a new MongoCommentRepository
func NewMongoCommentRepository(db *mongo.Database) *MongoCommentRepository {
	return &MongoCommentRepository{collection: db.Collection("comments")}
}

// CreateComment persists a new comment, assigning its ID and creation time.
// PostID, AuthorID and Text must all be non-empty.
func (r *MongoCommentRepository) CreateComment(ctx context.Context, comment *models.Comment) error {
	if comment.PostID == "" {
		return fmt.Errorf("post id is required: %w", apperrors.ErrValidation)
	}
	if comment.AuthorID == "" {
		return fmt.Errorf("author id is required: %w", apperrors.ErrValidation)
	}
	if comment.Text == "" {
		return fmt.Errorf("text is required: %w", apperrors.ErrValidation)
	}

	comment.ID = primitive.NewObjectID()
	comment.CreatedAt = time.Now()
	comment.LikesCount = 0
	_, err := r.collection.InsertOne(ctx, comment)
	return err
}

// GetCommentByID retrieves a comment by ID from MongoDB
func (r *MongoCommentRepository) GetCommentByID(ctx context.Context, id string) (*models.Comment, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// A malformed id can never name an existing comment.
		return nil, fmt.Errorf("comment %q: %w", id, apperrors.ErrNotFound)
	}

	var comment models.Comment
	err = r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&comment)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("comment %q: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &comment, nil
}

// GetCommentsByPostID retrieves all comments for a post, newest first.
// A post with no comments yields an empty slice, not an error.
func (r *MongoCommentRepository) GetCommentsByPostID(ctx context.Context, postID string) ([]models.Comment, error) {
	findOptions := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.M{"post_id": postID}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	comments := []models.Comment{}
	if err = cursor.All(ctx, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// UpdateCommentText replaces a comment's text and returns the updated
// document. CreatedAt and author identity are never touched.
func (r *MongoCommentRepository) UpdateCommentText(ctx context.Context, id, text string) (*models.Comment, error) {
	if text == "" {
		return nil, fmt.Errorf("text is required: %w", apperrors.ErrValidation)
	}

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("comment %q: %w", id, apperrors.ErrNotFound)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Comment
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$set": bson.M{"text": text}}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, fmt.Errorf("comment %q: %w", id, apperrors.ErrNotFound)
		}
		return nil, err
	}
	return &updated, nil
}

// IncrementLikesCount atomically adds 1 to a comment's like counter and
// returns the new count. Uses the store's $inc primitive so concurrent likes
// on the same comment never lose updates.
func (r *MongoCommentRepository) IncrementLikesCount(ctx context.Context, id string) (int, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("comment %q: %w", id, apperrors.ErrNotFound)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Comment
	err = r.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, bson.M{"$inc": bson.M{"likes_count": 1}}, opts).Decode(&updated)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return 0, fmt.Errorf("comment %q: %w", id, apperrors.ErrNotFound)
		}
		return 0, err
	}
	return updated.LikesCount, nil
}

// DeleteComment removes a comment permanently. No soft delete.
func (r *MongoCommentRepository) DeleteComment(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("comment %q: %w", id, apperrors.ErrNotFound)
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("comment %q: %w", id, apperrors.ErrNotFound)
	}
	return nil
}
