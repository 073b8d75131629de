package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreatePhaseRequest represents the request to create a phase
type CreatePhaseRequest struct {
	Name        string     `json:"name" binding:"required,min=1,max=255"`
	Description *string    `json:"description,omitempty"`
	OrderIndex  int        `json:"order_index" binding:"min=0"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// UpdatePhaseRequest represents a partial phase update
type UpdatePhaseRequest struct {
	Name        *string    `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string    `json:"description,omitempty"`
	OrderIndex  *int       `json:"order_index,omitempty" binding:"omitempty,min=0"`
	IsCompleted *bool      `json:"is_completed,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
}

// PhaseResponse represents a phase in API responses
type PhaseResponse struct {
	ID          uuid.UUID  `json:"id"`
	IdeaID      uuid.UUID  `json:"idea_id"`
	Name        string     `json:"name"`
	Description *string    `json:"description,omitempty"`
	OrderIndex  int        `json:"order_index"`
	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// CreateFeatureRequest represents the request to create a feature
type CreateFeatureRequest struct {
	Title       string  `json:"title" binding:"required,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	Priority    *string `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	OrderIndex  *int    `json:"order_index,omitempty" binding:"omitempty,min=0"`
}

// UpdateFeatureRequest represents a partial feature update
type UpdateFeatureRequest struct {
	Title       *string `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty"`
	IsCompleted *bool   `json:"is_completed,omitempty"`
	Priority    *string `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	OrderIndex  *int    `json:"order_index,omitempty" binding:"omitempty,min=0"`
}

// FeatureResponse represents a feature in API responses
type FeatureResponse struct {
	ID          uuid.UUID  `json:"id"`
	IdeaID      uuid.UUID  `json:"idea_id"`
	PhaseID     *uuid.UUID `json:"phase_id,omitempty"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	IsCompleted bool       `json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Priority    string     `json:"priority"`
	OrderIndex  *int       `json:"order_index,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
