package dto

import (
	"time"

	"github.com/google/uuid"
)

// UpdateStatsRequest represents a partial stats update
type UpdateStatsRequest struct {
	TotalXP              *int       `json:"total_xp,omitempty" binding:"omitempty,min=0"`
	CurrentStreak        *int       `json:"current_streak,omitempty" binding:"omitempty,min=0"`
	LongestStreak        *int       `json:"longest_streak,omitempty" binding:"omitempty,min=0"`
	LastActivityDate     *time.Time `json:"last_activity_date,omitempty"`
	IdeasCreated         *int       `json:"ideas_created,omitempty" binding:"omitempty,min=0"`
	IdeasCompleted       *int       `json:"ideas_completed,omitempty" binding:"omitempty,min=0"`
	AISuggestionsApplied *int       `json:"ai_suggestions_applied,omitempty" binding:"omitempty,min=0"`
	CollaborationsCount  *int       `json:"collaborations_count,omitempty" binding:"omitempty,min=0"`
}

// IncrementStatRequest increments a single stat field
type IncrementStatRequest struct {
	Field  string `json:"field" binding:"required,oneof=ideas_created ideas_completed ai_suggestions_applied collaborations_count"`
	Amount int    `json:"amount" binding:"omitempty,min=1"`
}

// AwardXPRequest awards XP to the calling user
type AwardXPRequest struct {
	XPAmount int `json:"xp_amount" binding:"required,min=1"`
}

// StatsResponse represents user statistics in API responses
type StatsResponse struct {
	UserID               uuid.UUID  `json:"user_id"`
	TotalXP              int        `json:"total_xp"`
	CurrentLevel         int        `json:"current_level"`
	CurrentStreak        int        `json:"current_streak"`
	LongestStreak        int        `json:"longest_streak"`
	LastActivityDate     *time.Time `json:"last_activity_date,omitempty"`
	IdeasCreated         int        `json:"ideas_created"`
	IdeasCompleted       int        `json:"ideas_completed"`
	AISuggestionsApplied int        `json:"ai_suggestions_applied"`
	CollaborationsCount  int        `json:"collaborations_count"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// AchievementResponse represents an unlocked achievement
type AchievementResponse struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	AchievementType string     `json:"achievement_type"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Icon            *string    `json:"icon,omitempty"`
	XPAwarded       int        `json:"xp_awarded"`
	UnlockedAt      time.Time  `json:"unlocked_at"`
	RelatedIdeaID   *uuid.UUID `json:"related_idea_id,omitempty"`
}

// AchievementDefinition describes one unlockable achievement
type AchievementDefinition struct {
	AchievementType string `json:"achievement_type"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	Icon            string `json:"icon"`
	XPAwarded       int    `json:"xp_awarded"`
	UnlockCondition string `json:"unlock_condition"`
}
