package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CompetitorResearch stores one analyzed competitor for an idea
type CompetitorResearch struct {
	ID                           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	IdeaID                       uuid.UUID      `gorm:"type:uuid;not null;index:idx_competitor_research_idea_id" json:"idea_id"`
	UserID                       uuid.UUID      `gorm:"type:uuid;not null;index:idx_competitor_research_user_id" json:"user_id"`
	CompetitorName               string         `gorm:"type:varchar(255);not null" json:"competitor_name"`
	CompetitorURL                *string        `gorm:"type:varchar(500)" json:"competitor_url,omitempty"`
	Description                  *string        `gorm:"type:text" json:"description,omitempty"`
	Strengths                    datatypes.JSON `gorm:"type:jsonb" json:"strengths,omitempty"`
	Weaknesses                   datatypes.JSON `gorm:"type:jsonb" json:"weaknesses,omitempty"`
	DifferentiationOpportunities datatypes.JSON `gorm:"type:jsonb" json:"differentiation_opportunities,omitempty"`
	MarketPosition               *string        `gorm:"type:varchar(50)" json:"market_position,omitempty"`
	FundingInfo                  datatypes.JSON `gorm:"type:jsonb" json:"funding_info,omitempty"`
	ResearchDate                 time.Time      `gorm:"type:timestamp;not null;default:now()" json:"research_date"`
	DataSources                  datatypes.JSON `gorm:"type:jsonb" json:"data_sources,omitempty"`
	ConfidenceScore              *float64       `gorm:"type:numeric" json:"confidence_score,omitempty"`
	CreatedAt                    time.Time      `gorm:"type:timestamp;not null;default:now()" json:"created_at"`
}

// TableName specifies the table name for CompetitorResearch
func (CompetitorResearch) TableName() string {
	return "competitor_research"
}
