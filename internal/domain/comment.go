package domain

import "github.com/google/uuid"

// DeletedContentSentinel replaces comment content on soft-delete.
// Rows are never physically removed so reply trees keep their shape.
const DeletedContentSentinel = "[deleted]"

// Comment represents a threaded comment on an idea or a feature.
// Exactly one of IdeaID / FeatureID is set.
type Comment struct {
	BaseModel
	AuthorID        uuid.UUID  `gorm:"type:uuid;not null;index:idx_comments_author_id" json:"author_id"`
	IdeaID          *uuid.UUID `gorm:"type:uuid;index:idx_comments_idea_id" json:"idea_id,omitempty"`
	FeatureID       *uuid.UUID `gorm:"type:uuid;index:idx_comments_feature_id" json:"feature_id,omitempty"`
	ParentCommentID *uuid.UUID `gorm:"type:uuid;index:idx_comments_parent_comment_id" json:"parent_comment_id,omitempty"`
	Content         string     `gorm:"type:text;not null" json:"content"`
	IsAIGenerated   bool       `gorm:"not null;default:false" json:"is_ai_generated"`
}

// IsDeleted reports whether the comment has been soft-deleted
func (c *Comment) IsDeleted() bool {
	return c.Content == DeletedContentSentinel
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
