package dto

import (
	"time"

	"github.com/google/uuid"

	"idea-copilot-api/internal/domain"
)

// CreateIdeaRequest represents the request to capture a new idea
type CreateIdeaRequest struct {
	Title              string     `json:"title" binding:"required,min=1,max=255"`
	Description        string     `json:"description"`
	CaptureType        string     `json:"capture_type" binding:"omitempty,oneof=text voice"`
	VoiceTranscription *string    `json:"voice_transcription,omitempty"`
	Tags               []string   `json:"tags,omitempty"`
	CategoryID         *uuid.UUID `json:"category_id,omitempty"`
	Priority           *string    `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	IsPrivate          *bool      `json:"is_private,omitempty"`
	ReminderDate       *time.Time `json:"reminder_date,omitempty"`
}

// UpdateIdeaRequest represents a partial idea update
type UpdateIdeaRequest struct {
	Title              *string    `json:"title,omitempty" binding:"omitempty,min=1,max=255"`
	Description        *string    `json:"description,omitempty"`
	Tags               []string   `json:"tags,omitempty"`
	CategoryID         *uuid.UUID `json:"category_id,omitempty"`
	Priority           *string    `json:"priority,omitempty" binding:"omitempty,oneof=low medium high"`
	Status             *string    `json:"status,omitempty" binding:"omitempty,oneof=new in_progress completed archived"`
	EffortScore        *int       `json:"effort_score,omitempty" binding:"omitempty,min=1,max=10"`
	ImpactScore        *int       `json:"impact_score,omitempty" binding:"omitempty,min=1,max=10"`
	InterestScore      *int       `json:"interest_score,omitempty" binding:"omitempty,min=1,max=10"`
	ProgressPercentage *int       `json:"progress_percentage,omitempty" binding:"omitempty,min=0,max=100"`
	IsPrivate          *bool      `json:"is_private,omitempty"`
	IsArchived         *bool      `json:"is_archived,omitempty"`
	ReminderDate       *time.Time `json:"reminder_date,omitempty"`
}

// IdeaFilters holds list filters parsed from the query string
type IdeaFilters struct {
	CategoryID *uuid.UUID `form:"category_id"`
	Priority   string     `form:"priority" binding:"omitempty,oneof=low medium high"`
	Status     string     `form:"status" binding:"omitempty,oneof=new in_progress completed archived"`
	Search     string     `form:"search"`
	SortBy     string     `form:"sort_by,default=created_at" binding:"omitempty,oneof=created_at updated_at title priority overall_score"`
	SortOrder  string     `form:"sort_order,default=desc" binding:"omitempty,oneof=asc desc"`
	Limit      int        `form:"limit,default=20" binding:"min=1,max=100"`
	Offset     int        `form:"offset,default=0" binding:"min=0"`
}

// IdeaResponse represents an idea in API responses
type IdeaResponse struct {
	ID                 uuid.UUID  `json:"id"`
	UserID             uuid.UUID  `json:"user_id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	CaptureType        string     `json:"capture_type"`
	VoiceTranscription *string    `json:"voice_transcription,omitempty"`
	Tags               []string   `json:"tags"`
	CategoryID         *uuid.UUID `json:"category_id,omitempty"`
	Priority           string     `json:"priority"`
	Status             string     `json:"status"`
	EffortScore        *int       `json:"effort_score,omitempty"`
	ImpactScore        *int       `json:"impact_score,omitempty"`
	InterestScore      *int       `json:"interest_score,omitempty"`
	OverallScore       *float64   `json:"overall_score,omitempty"`
	ProgressPercentage int        `json:"progress_percentage"`
	IsPrivate          bool       `json:"is_private"`
	IsArchived         bool       `json:"is_archived"`
	ReminderDate       *time.Time `json:"reminder_date,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// PaginatedIdeaResponse wraps a filtered idea list
type PaginatedIdeaResponse struct {
	Ideas  []*IdeaResponse `json:"ideas"`
	Total  int64           `json:"total"`
	Limit  int             `json:"limit"`
	Offset int             `json:"offset"`
}

// IdeaDetailResponse bundles an idea with its phases and features
type IdeaDetailResponse struct {
	Idea     *IdeaResponse      `json:"idea"`
	Phases   []*PhaseResponse   `json:"phases"`
	Features []*FeatureResponse `json:"features"`
}

// CreateCategoryRequest represents the request to create a category
type CreateCategoryRequest struct {
	Name        string  `json:"name" binding:"required,min=1,max=100"`
	Color       *string `json:"color,omitempty"`
	Description *string `json:"description,omitempty"`
}

// UpdateCategoryRequest represents a partial category update
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=1,max=100"`
	Color       *string `json:"color,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CategoryResponse represents a category in API responses
type CategoryResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      uuid.UUID `json:"user_id"`
	Name        string    `json:"name"`
	Color       *string   `json:"color,omitempty"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// ToIdeaResponse converts a domain Idea to its response form
func ToIdeaResponse(idea *domain.Idea) *IdeaResponse {
	return &IdeaResponse{
		ID:                 idea.ID,
		UserID:             idea.UserID,
		Title:              idea.Title,
		Description:        idea.Description,
		CaptureType:        idea.CaptureType,
		VoiceTranscription: idea.VoiceTranscription,
		Tags:               DecodeStringSlice(idea.Tags),
		CategoryID:         idea.CategoryID,
		Priority:           string(idea.Priority),
		Status:             string(idea.Status),
		EffortScore:        idea.EffortScore,
		ImpactScore:        idea.ImpactScore,
		InterestScore:      idea.InterestScore,
		OverallScore:       idea.OverallScore,
		ProgressPercentage: idea.ProgressPercentage,
		IsPrivate:          idea.IsPrivate,
		IsArchived:         idea.IsArchived,
		ReminderDate:       idea.ReminderDate,
		CreatedAt:          idea.CreatedAt,
		UpdatedAt:          idea.UpdatedAt,
	}
}
