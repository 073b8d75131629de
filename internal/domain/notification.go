package domain

import (
	"time"

	"github.com/google/uuid"
)

// NotificationPriority values
const (
	NotificationPriorityNormal = "normal"
	NotificationPriorityHigh   = "high"
)

// Notification represents an in-app notification for a user
type Notification struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID            uuid.UUID  `gorm:"type:uuid;not null;index:idx_notifications_user_id" json:"user_id"`
	Type              string     `gorm:"type:varchar(50);not null" json:"type"`
	Title             string     `gorm:"type:varchar(255);not null" json:"title"`
	Message           string     `gorm:"type:text;not null" json:"message"`
	RelatedIdeaID     *uuid.UUID `gorm:"type:uuid" json:"related_idea_id,omitempty"`
	RelatedEntityType *string    `gorm:"type:varchar(50)" json:"related_entity_type,omitempty"`
	RelatedEntityID   *uuid.UUID `gorm:"type:uuid" json:"related_entity_id,omitempty"`
	ActionURL         *string    `gorm:"type:varchar(500)" json:"action_url,omitempty"`
	IsRead            bool       `gorm:"not null;default:false;index:idx_notifications_is_read" json:"is_read"`
	ReadAt            *time.Time `gorm:"type:timestamp" json:"read_at,omitempty"`
	Priority          string     `gorm:"type:varchar(20);not null;default:'normal'" json:"priority"`
	ExpiresAt         *time.Time `gorm:"type:timestamp;index:idx_notifications_expires_at" json:"expires_at,omitempty"`
	CreatedAt         time.Time  `gorm:"type:timestamp;not null;default:now()" json:"created_at"`
}

// TableName specifies the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
