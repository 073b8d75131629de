package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SuggestionType values accepted by the AI suggestion pipeline
const (
	SuggestionTypeFeatures     = "features"
	SuggestionTypeImprovements = "improvements"
	SuggestionTypeMarketing    = "marketing"
	SuggestionTypeValidation   = "validation"
)

// AISuggestion stores a generated suggestion for an idea
type AISuggestion struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	IdeaID          uuid.UUID  `gorm:"type:uuid;not null;index:idx_ai_suggestions_idea_id" json:"idea_id"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index:idx_ai_suggestions_user_id" json:"user_id"`
	SuggestionType  string     `gorm:"type:varchar(50);not null" json:"suggestion_type"`
	Title           *string    `gorm:"type:varchar(255)" json:"title,omitempty"`
	Content         string     `gorm:"type:text;not null" json:"content"`
	ConfidenceScore *float64   `gorm:"type:numeric" json:"confidence_score,omitempty"`
	IsApplied       bool       `gorm:"not null;default:false" json:"is_applied"`
	AppliedAt       *time.Time `gorm:"type:timestamp" json:"applied_at,omitempty"`
	AIModel         *string    `gorm:"type:varchar(100)" json:"ai_model,omitempty"`
	PromptUsed      *string    `gorm:"type:text" json:"prompt_used,omitempty"`
	CreatedAt       time.Time  `gorm:"type:timestamp;not null;default:now()" json:"created_at"`
}

// AIQueryLog records every call made to the generative-AI endpoint
type AIQueryLog struct {
	ID             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index:idx_ai_query_logs_user_id" json:"user_id"`
	IdeaID         *uuid.UUID     `gorm:"type:uuid;index:idx_ai_query_logs_idea_id" json:"idea_id,omitempty"`
	QueryType      string         `gorm:"type:varchar(100);not null" json:"query_type"`
	UserPrompt     string         `gorm:"type:text;not null" json:"user_prompt"`
	AIResponse     string         `gorm:"type:text;not null" json:"ai_response"`
	AIModel        *string        `gorm:"type:varchar(100)" json:"ai_model,omitempty"`
	TokensUsed     *int           `gorm:"type:int" json:"tokens_used,omitempty"`
	ResponseTimeMs *int           `gorm:"type:int" json:"response_time_ms,omitempty"`
	ContextData    datatypes.JSON `gorm:"type:jsonb" json:"context_data,omitempty"`
	CreatedAt      time.Time      `gorm:"type:timestamp;not null;default:now()" json:"created_at"`
}

// TableName specifies the table name for AISuggestion
func (AISuggestion) TableName() string {
	return "ai_suggestions"
}

// TableName specifies the table name for AIQueryLog
func (AIQueryLog) TableName() string {
	return "ai_query_logs"
}
