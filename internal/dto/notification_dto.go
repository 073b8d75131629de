package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateNotificationRequest creates a notification for the calling user
type CreateNotificationRequest struct {
	Type              string     `json:"type" binding:"required,max=50"`
	Title             string     `json:"title" binding:"required,max=255"`
	Message           string     `json:"message" binding:"required"`
	RelatedIdeaID     *uuid.UUID `json:"related_idea_id,omitempty"`
	RelatedEntityType *string    `json:"related_entity_type,omitempty" binding:"omitempty,max=50"`
	RelatedEntityID   *uuid.UUID `json:"related_entity_id,omitempty"`
	ActionURL         *string    `json:"action_url,omitempty" binding:"omitempty,max=500"`
	Priority          *string    `json:"priority,omitempty" binding:"omitempty,oneof=normal high"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
}

// MotivationRequest picks the motivational message variant
type MotivationRequest struct {
	MessageType string `json:"message_type" binding:"omitempty,oneof=encouragement reminder streak"`
}

// UnreadCountResponse carries the cached unread notification count
type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}

// NotificationResponse represents a notification in API responses
type NotificationResponse struct {
	ID                uuid.UUID  `json:"id"`
	UserID            uuid.UUID  `json:"user_id"`
	Type              string     `json:"type"`
	Title             string     `json:"title"`
	Message           string     `json:"message"`
	RelatedIdeaID     *uuid.UUID `json:"related_idea_id,omitempty"`
	RelatedEntityType *string    `json:"related_entity_type,omitempty"`
	RelatedEntityID   *uuid.UUID `json:"related_entity_id,omitempty"`
	ActionURL         *string    `json:"action_url,omitempty"`
	IsRead            bool       `json:"is_read"`
	ReadAt            *time.Time `json:"read_at,omitempty"`
	Priority          string     `json:"priority"`
	ExpiresAt         *time.Time `json:"expires_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
}

// NotificationListResponse wraps a notification page with the unread count
type NotificationListResponse struct {
	Notifications []*NotificationResponse `json:"notifications"`
	Total         int64                   `json:"total"`
	UnreadCount   int64                   `json:"unread_count"`
}
