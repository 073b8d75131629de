package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// IdeaPriority represents the priority of an idea or feature
type IdeaPriority string

const (
	PriorityLow    IdeaPriority = "low"
	PriorityMedium IdeaPriority = "medium"
	PriorityHigh   IdeaPriority = "high"
)

// IdeaStatus represents the lifecycle status of an idea
type IdeaStatus string

const (
	IdeaStatusNew        IdeaStatus = "new"
	IdeaStatusInProgress IdeaStatus = "in_progress"
	IdeaStatusCompleted  IdeaStatus = "completed"
	IdeaStatusArchived   IdeaStatus = "archived"
)

// Idea represents a captured idea owned by a user
type Idea struct {
	BaseModel
	UserID             uuid.UUID      `gorm:"type:uuid;not null;index:idx_ideas_user_id" json:"user_id"`
	Title              string         `gorm:"type:varchar(255);not null" json:"title"`
	Description        string         `gorm:"type:text" json:"description"`
	CaptureType        string         `gorm:"type:varchar(50);not null;default:'text'" json:"capture_type"`
	VoiceTranscription *string        `gorm:"type:text" json:"voice_transcription,omitempty"`
	Tags               datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	CategoryID         *uuid.UUID     `gorm:"type:uuid;index:idx_ideas_category_id" json:"category_id"`
	Priority           IdeaPriority   `gorm:"type:varchar(20);not null;default:'medium';index:idx_ideas_priority" json:"priority"`
	Status             IdeaStatus     `gorm:"type:varchar(20);not null;default:'new';index:idx_ideas_status" json:"status"`
	EffortScore        *int           `gorm:"type:int" json:"effort_score"`
	ImpactScore        *int           `gorm:"type:int" json:"impact_score"`
	InterestScore      *int           `gorm:"type:int" json:"interest_score"`
	OverallScore       *float64       `gorm:"type:numeric" json:"overall_score"`
	ProgressPercentage int            `gorm:"not null;default:0" json:"progress_percentage"`
	IsPrivate          bool           `gorm:"not null;default:true" json:"is_private"`
	IsArchived         bool           `gorm:"not null;default:false;index:idx_ideas_is_archived" json:"is_archived"`
	ArchivedAt         *time.Time     `gorm:"type:timestamp" json:"archived_at,omitempty"`
	ReminderDate       *time.Time     `gorm:"type:timestamp" json:"reminder_date,omitempty"`
	Phases             []Phase        `gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE" json:"phases,omitempty"`
	Features           []Feature      `gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE" json:"features,omitempty"`
	Comments           []Comment      `gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
	Shares             []IdeaShare    `gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE" json:"shares,omitempty"`
}

// Category represents a user-defined idea category
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_categories_user_id" json:"user_id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Color       *string   `gorm:"type:varchar(20)" json:"color"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `gorm:"type:timestamp;not null;default:now()" json:"created_at"`
}

// Phase represents an ordered execution phase within an idea
type Phase struct {
	BaseModel
	IdeaID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_phases_idea_id" json:"idea_id"`
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Description *string    `gorm:"type:text" json:"description"`
	OrderIndex  int        `gorm:"not null;default:0;index:idx_phases_order_index" json:"order_index"`
	IsCompleted bool       `gorm:"not null;default:false" json:"is_completed"`
	CompletedAt *time.Time `gorm:"type:timestamp" json:"completed_at,omitempty"`
	DueDate     *time.Time `gorm:"type:timestamp" json:"due_date,omitempty"`
	Idea        Idea       `gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE" json:"idea,omitempty"`
}

// Feature represents a concrete feature attached to an idea, optionally within a phase
type Feature struct {
	BaseModel
	IdeaID      uuid.UUID    `gorm:"type:uuid;not null;index:idx_features_idea_id" json:"idea_id"`
	PhaseID     *uuid.UUID   `gorm:"type:uuid;index:idx_features_phase_id" json:"phase_id"`
	Title       string       `gorm:"type:varchar(255);not null" json:"title"`
	Description *string      `gorm:"type:text" json:"description"`
	IsCompleted bool         `gorm:"not null;default:false" json:"is_completed"`
	CompletedAt *time.Time   `gorm:"type:timestamp" json:"completed_at,omitempty"`
	Priority    IdeaPriority `gorm:"type:varchar(20);not null;default:'medium'" json:"priority"`
	OrderIndex  *int         `gorm:"type:int" json:"order_index"`
	Idea        Idea         `gorm:"foreignKey:IdeaID;constraint:OnDelete:CASCADE" json:"idea,omitempty"`
}

// TableName specifies the table name for Idea
func (Idea) TableName() string {
	return "ideas"
}

// TableName specifies the table name for Category
func (Category) TableName() string {
	return "categories"
}

// TableName specifies the table name for Phase
func (Phase) TableName() string {
	return "phases"
}

// TableName specifies the table name for Feature
func (Feature) TableName() string {
	return "features"
}
