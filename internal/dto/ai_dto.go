package dto

import (
	"time"

	"github.com/google/uuid"
)

// GenerateSuggestionsRequest asks the AI pipeline for suggestions on an idea
type GenerateSuggestionsRequest struct {
	IdeaID         uuid.UUID `json:"idea_id" binding:"required"`
	SuggestionType string    `json:"suggestion_type" binding:"required,oneof=features improvements marketing validation"`
	Context        *string   `json:"context,omitempty" binding:"omitempty,max=2000"`
}

// SuggestionResponse represents a stored AI suggestion
type SuggestionResponse struct {
	ID              uuid.UUID  `json:"id"`
	IdeaID          uuid.UUID  `json:"idea_id"`
	SuggestionType  string     `json:"suggestion_type"`
	Title           *string    `json:"title,omitempty"`
	Content         string     `json:"content"`
	ConfidenceScore *float64   `json:"confidence_score,omitempty"`
	IsApplied       bool       `json:"is_applied"`
	AppliedAt       *time.Time `json:"applied_at,omitempty"`
	AIModel         *string    `json:"ai_model,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// SuggestionListResponse wraps generated or stored suggestions
type SuggestionListResponse struct {
	Suggestions []*SuggestionResponse `json:"suggestions"`
	Total       int64                 `json:"total"`
}

// QueryLogResponse represents one AI query log entry
type QueryLogResponse struct {
	ID             uuid.UUID  `json:"id"`
	IdeaID         *uuid.UUID `json:"idea_id,omitempty"`
	QueryType      string     `json:"query_type"`
	AIModel        *string    `json:"ai_model,omitempty"`
	TokensUsed     *int       `json:"tokens_used,omitempty"`
	ResponseTimeMs *int       `json:"response_time_ms,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}
