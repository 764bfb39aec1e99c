package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post represents a blog post stored in MongoDB
type Post struct {
	ID            primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Img           string             `json:"img" bson:"img"`
	Content       string             `json:"content" bson:"content"`
	AuthorID      string             `json:"author_id" bson:"author_id"`
	AuthorEmail   string             `json:"author_email" bson:"author_email"`
	CommentsCount int                `json:"comments_count" bson:"comments_count"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,min=1,max=200"`
	Img     string `json:"img" validate:"required,url"`
	Content string `json:"content" validate:"required,min=1"`
}

// UpdatePostRequest defines the request body for updating an existing post
type UpdatePostRequest struct {
	Title   string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Img     string `json:"img,omitempty" validate:"omitempty,url"`
	Content string `json:"content,omitempty" validate:"omitempty,min=1"`
}
