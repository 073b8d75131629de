package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ShareRole represents the role granted by an idea share
type ShareRole string

const (
	ShareRoleOwner  ShareRole = "owner"
	ShareRoleEditor ShareRole = "editor"
	ShareRoleViewer ShareRole = "viewer"
	ShareRoleNone   ShareRole = "none"
)

// CanWrite reports whether the role permits mutations (including commenting)
func (r ShareRole) CanWrite() bool {
	return r == ShareRoleOwner || r == ShareRoleEditor
}

// IdeaShare grants a non-owner user access to an idea, optionally time-bounded
type IdeaShare struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	IdeaID       uuid.UUID      `gorm:"type:uuid;not null;index:idx_idea_shares_idea_id;uniqueIndex:uq_idea_shares_idea_user" json:"idea_id"`
	OwnerID      uuid.UUID      `gorm:"type:uuid;not null;index:idx_idea_shares_owner_id" json:"owner_id"`
	SharedWithID uuid.UUID      `gorm:"type:uuid;not null;index:idx_idea_shares_shared_with_id;uniqueIndex:uq_idea_shares_idea_user" json:"shared_with_id"`
	Role         ShareRole      `gorm:"type:varchar(20);not null;default:'viewer'" json:"role"`
	Permissions  datatypes.JSON `gorm:"type:jsonb" json:"permissions,omitempty"`
	SharedAt     time.Time      `gorm:"type:timestamp;not null;default:now()" json:"shared_at"`
	ExpiresAt    *time.Time     `gorm:"type:timestamp" json:"expires_at,omitempty"`
	IsActive     bool           `gorm:"not null;default:true;index:idx_idea_shares_is_active" json:"is_active"`
	Idea         Idea           `gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE" json:"idea,omitempty"`
}

// IsEffective reports whether the share currently grants access.
// Expired or deactivated shares behave identically to no share at all.
func (s *IdeaShare) IsEffective(now time.Time) bool {
	if !s.IsActive {
		return false
	}
	if s.ExpiresAt != nil && !s.ExpiresAt.After(now) {
		return false
	}
	return true
}

// TableName specifies the table name for IdeaShare
func (IdeaShare) TableName() string {
	return "idea_shares"
}
