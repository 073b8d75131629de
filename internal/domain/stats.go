package domain

import (
	"time"

	"github.com/google/uuid"
)

// XPPerLevel is the amount of XP needed for each user level
const XPPerLevel = 100

// UserStats tracks gamification statistics for one user
type UserStats struct {
	BaseModel
	UserID               uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_user_stats_user_id" json:"user_id"`
	TotalXP              int        `gorm:"not null;default:0" json:"total_xp"`
	CurrentLevel         int        `gorm:"not null;default:1" json:"current_level"`
	CurrentStreak        int        `gorm:"not null;default:0" json:"current_streak"`
	LongestStreak        int        `gorm:"not null;default:0" json:"longest_streak"`
	LastActivityDate     *time.Time `gorm:"type:date" json:"last_activity_date,omitempty"`
	IdeasCreated         int        `gorm:"not null;default:0" json:"ideas_created"`
	IdeasCompleted       int        `gorm:"not null;default:0" json:"ideas_completed"`
	AISuggestionsApplied int        `gorm:"not null;default:0" json:"ai_suggestions_applied"`
	CollaborationsCount  int        `gorm:"not null;default:0" json:"collaborations_count"`
}

// LevelForXP calculates the level for a given XP total (100 XP per level)
func LevelForXP(totalXP int) int {
	level := totalXP/XPPerLevel + 1
	if level < 1 {
		return 1
	}
	return level
}

// Achievement records an unlocked achievement for a user
type Achievement struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index:idx_achievements_user_id;uniqueIndex:uq_achievements_user_type" json:"user_id"`
	AchievementType string     `gorm:"type:varchar(100);not null;uniqueIndex:uq_achievements_user_type" json:"achievement_type"`
	Title           string     `gorm:"type:varchar(255);not null" json:"title"`
	Description     string     `gorm:"type:text;not null" json:"description"`
	Icon            *string    `gorm:"type:varchar(20)" json:"icon"`
	XPAwarded       int        `gorm:"not null;default:0" json:"xp_awarded"`
	UnlockedAt      time.Time  `gorm:"type:timestamp;not null;default:now()" json:"unlocked_at"`
	RelatedIdeaID   *uuid.UUID `gorm:"type:uuid" json:"related_idea_id,omitempty"`
}

// TableName specifies the table name for UserStats
func (UserStats) TableName() string {
	return "user_stats"
}

// TableName specifies the table name for Achievement
func (Achievement) TableName() string {
	return "achievements"
}
