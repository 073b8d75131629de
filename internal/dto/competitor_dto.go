package dto

import (
	"time"

	"github.com/google/uuid"
)

// ScrapeCompetitorsRequest asks for a scrape-and-analyze run over competitor sites
type ScrapeCompetitorsRequest struct {
	IdeaID  uuid.UUID `json:"idea_id" binding:"required"`
	URLs    []string  `json:"urls" binding:"required,min=1,max=5,dive,url"`
	Context *string   `json:"context,omitempty" binding:"omitempty,max=2000"`
}

// CompetitorResponse represents stored competitor research
type CompetitorResponse struct {
	ID                           uuid.UUID `json:"id"`
	IdeaID                       uuid.UUID `json:"idea_id"`
	CompetitorName               string    `json:"competitor_name"`
	CompetitorURL                *string   `json:"competitor_url,omitempty"`
	Description                  *string   `json:"description,omitempty"`
	Strengths                    []string  `json:"strengths"`
	Weaknesses                   []string  `json:"weaknesses"`
	DifferentiationOpportunities []string  `json:"differentiation_opportunities"`
	MarketPosition               *string   `json:"market_position,omitempty"`
	DataSources                  []string  `json:"data_sources"`
	ConfidenceScore              *float64  `json:"confidence_score,omitempty"`
	ResearchDate                 time.Time `json:"research_date"`
	CreatedAt                    time.Time `json:"created_at"`
}

// ScrapeFailure records one URL that could not be scraped or analyzed
type ScrapeFailure struct {
	URL   string `json:"url"`
	Error string `json:"error"`
}

// ScrapeCompetitorsResponse reports the outcome of a scrape batch.
// A failed URL never aborts the batch; it lands in Failures instead.
type ScrapeCompetitorsResponse struct {
	Competitors []*CompetitorResponse `json:"competitors"`
	Failures    []ScrapeFailure       `json:"failures"`
}

// CompetitorListResponse wraps the research list for an idea
type CompetitorListResponse struct {
	Competitors []*CompetitorResponse `json:"competitors"`
	Total       int64                 `json:"total"`
}
