package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateCommentRequest represents the request to create a new comment
// @Description Request body for creating a comment on an idea or feature
// @Description parentCommentId threads the comment under an existing comment in the same thread
type CreateCommentRequest struct {
	Content         string     `json:"content" binding:"required,min=1,max=5000"`
	ParentCommentID *uuid.UUID `json:"parent_comment_id,omitempty" example:"f47ac10b-58cc-4372-a567-0e02b2c3d479"`
}

// UpdateCommentRequest represents the request to update a comment's content
type UpdateCommentRequest struct {
	Content string `json:"content" binding:"required,min=1,max=5000"`
}

// CommentResponse represents a single comment with its nested replies
type CommentResponse struct {
	ID              uuid.UUID          `json:"id"`
	AuthorID        uuid.UUID          `json:"author_id"`
	IdeaID          *uuid.UUID         `json:"idea_id,omitempty"`
	FeatureID       *uuid.UUID         `json:"feature_id,omitempty"`
	ParentCommentID *uuid.UUID         `json:"parent_comment_id,omitempty"`
	Content         string             `json:"content"`
	IsAIGenerated   bool               `json:"is_ai_generated"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
	Replies         []*CommentResponse `json:"replies"`
}

// CommentListResponse wraps a paginated comment thread
type CommentListResponse struct {
	Comments []*CommentResponse `json:"comments"`
	Total    int                `json:"total"`
}
