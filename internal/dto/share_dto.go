package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateShareRequest represents the request to share an idea with another user
// @Description Role must be "viewer" or "editor"; the owner role is implicit and never granted by a share
type CreateShareRequest struct {
	SharedWithEmail string     `json:"shared_with_email" binding:"required,email"`
	Role            string     `json:"role" binding:"omitempty,oneof=viewer editor"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
}

// UpdateShareRequest represents a partial share update
type UpdateShareRequest struct {
	Role      *string    `json:"role,omitempty" binding:"omitempty,oneof=viewer editor"`
	IsActive  *bool      `json:"is_active,omitempty"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// ShareResponse represents a share in API responses
type ShareResponse struct {
	ID              uuid.UUID  `json:"id"`
	IdeaID          uuid.UUID  `json:"idea_id"`
	OwnerID         uuid.UUID  `json:"owner_id"`
	SharedWithID    uuid.UUID  `json:"shared_with_id"`
	SharedWithEmail string     `json:"shared_with_email,omitempty"`
	Role            string     `json:"role"`
	SharedAt        time.Time  `json:"shared_at"`
	ExpiresAt       *time.Time `json:"expires_at,omitempty"`
	IsActive        bool       `json:"is_active"`
}
