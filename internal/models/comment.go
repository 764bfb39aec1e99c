package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Comment represents a comment on a post, stored in MongoDB.
//
// AuthorID and AuthorName are a snapshot of the commenting user taken at
// creation time. AuthorID never changes; AuthorName is not rewritten if the
// user later renames their profile, so it can drift from the live account.
type Comment struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	PostID     string             `json:"post_id" bson:"post_id"`
	AuthorID   string             `json:"author_id" bson:"author_id"`
	AuthorName string             `json:"author_name" bson:"author_name"`
	Text       string             `json:"text" bson:"text"`
	LikesCount int                `json:"likes_count" bson:"likes_count"`
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
}

// CreateCommentRequest defines the request body for creating a new comment
type CreateCommentRequest struct {
	PostID string `json:"post_id" validate:"required"`
	Text   string `json:"text" validate:"required,min=1,max=500"`
}

// UpdateCommentRequest defines the request body for updating a comment's text
type UpdateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1,max=500"`
}
