package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"idea-copilot-api/internal/client"
	"idea-copilot-api/internal/domain"
	"idea-copilot-api/internal/dto"
	"idea-copilot-api/internal/repository"
	"idea-copilot-api/internal/response"
)

// CompetitorService defines the interface for competitor research business logic
type CompetitorService interface {
	ScrapeAndAnalyze(ctx context.Context, userID uuid.UUID, req *dto.ScrapeCompetitorsRequest) (*dto.ScrapeCompetitorsResponse, error)
	ListResearch(ctx context.Context, ideaID, userID uuid.UUID) (*dto.CompetitorListResponse, error)
	DeleteResearch(ctx context.Context, researchID, userID uuid.UUID) error
}

// competitorAnalysis is the shape the analyzer prompt asks the model for
type competitorAnalysis struct {
	CompetitorName               string   `json:"competitor_name"`
	Description                  string   `json:"description"`
	Strengths                    []string `json:"strengths"`
	Weaknesses                   []string `json:"weaknesses"`
	DifferentiationOpportunities []string `json:"differentiation_opportunities"`
	MarketPosition               string   `json:"market_position"`
	ConfidenceScore              *float64 `json:"confidence_score"`
}

// competitorServiceImpl is the implementation of CompetitorService
type competitorServiceImpl struct {
	competitorRepo repository.CompetitorRepository
	ideaRepo       repository.IdeaRepository
	access         AccessService
	scraper        client.ScraperClient
	gemini         client.GeminiClient
	logger         *zap.Logger
}

// NewCompetitorService creates a new instance of CompetitorService
func NewCompetitorService(
	competitorRepo repository.CompetitorRepository,
	ideaRepo repository.IdeaRepository,
	access AccessService,
	scraper client.ScraperClient,
	gemini client.GeminiClient,
	logger *zap.Logger,
) CompetitorService {
	return &competitorServiceImpl{
		competitorRepo: competitorRepo,
		ideaRepo:       ideaRepo,
		access:         access,
		scraper:        scraper,
		gemini:         gemini,
		logger:         logger,
	}
}

// ScrapeAndAnalyze scrapes each URL, runs the AI analyzer over the digest and
// persists one research row per successful URL. A failing URL is reported in
// the result but never aborts the rest of the batch. Owner only.
func (s *competitorServiceImpl) ScrapeAndAnalyze(ctx context.Context, userID uuid.UUID, req *dto.ScrapeCompetitorsRequest) (*dto.ScrapeCompetitorsResponse, error) {
	idea, err := s.ideaRepo.FindByID(ctx, req.IdeaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Idea not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load idea", err.Error())
	}
	if idea.UserID != userID {
		return nil, response.NewForbiddenError("Only the idea owner can run competitor research")
	}

	ideaContext := fmt.Sprintf("Title: %s\nDescription: %s", idea.Title, idea.Description)
	if req.Context != nil && *req.Context != "" {
		ideaContext += "\n" + *req.Context
	}

	result := &dto.ScrapeCompetitorsResponse{
		Competitors: []*dto.CompetitorResponse{},
		Failures:    []dto.ScrapeFailure{},
	}
	for _, pageURL := range req.URLs {
		page, err := s.scraper.Scrape(ctx, pageURL)
		if err != nil {
			s.logger.Warn("competitor scrape failed",
				zap.String("url", pageURL),
				zap.Error(err))
			result.Failures = append(result.Failures, dto.ScrapeFailure{URL: pageURL, Error: err.Error()})
			continue
		}

		analysis := s.analyze(ctx, page, ideaContext)
		research, err := s.persistResearch(ctx, req.IdeaID, userID, page, analysis)
		if err != nil {
			result.Failures = append(result.Failures, dto.ScrapeFailure{URL: pageURL, Error: err.Error()})
			continue
		}
		result.Competitors = append(result.Competitors, toCompetitorResponse(research))
	}
	return result, nil
}

// analyze feeds the scraped digest to the model. An analyzer failure falls
// back to the scraped metadata so the scrape itself is never wasted.
func (s *competitorServiceImpl) analyze(ctx context.Context, page *client.ScrapedPage, ideaContext string) *competitorAnalysis {
	fallback := &competitorAnalysis{
		CompetitorName: page.Title,
		Description:    page.Excerpt,
	}

	prompt := fmt.Sprintf(`Analyze this competitor website data and provide structured insights:

Website: %s
URL: %s
Description: %s

Content Preview:
%s

My Product Context: %s

Provide a comprehensive analysis in JSON format with:
1. competitor_name: The company/product name
2. description: Brief description of what they offer (2-3 sentences)
3. strengths: Array of 3-5 key strengths
4. weaknesses: Array of 3-5 potential weaknesses or gaps
5. differentiation_opportunities: Array of 3-5 ways to differentiate from this competitor
6. market_position: Their apparent market position (leader/challenger/niche/emerging)
7. confidence_score: Your confidence in this analysis (0.0-1.0)

Be objective and analytical. Focus on actionable insights.`,
		page.Title, page.URL, page.Excerpt, page.Content, ideaContext)

	generated, err := s.gemini.GenerateContent(ctx, prompt)
	if err != nil {
		s.logger.Warn("competitor analysis failed", zap.String("url", page.URL), zap.Error(err))
		return fallback
	}

	var analysis competitorAnalysis
	if err := json.Unmarshal([]byte(client.StripCodeFences(generated.Text)), &analysis); err != nil {
		s.logger.Warn("competitor analysis returned unparseable JSON", zap.String("url", page.URL))
		return fallback
	}
	if analysis.CompetitorName == "" {
		analysis.CompetitorName = page.Title
	}
	return &analysis
}

func (s *competitorServiceImpl) persistResearch(ctx context.Context, ideaID, userID uuid.UUID, page *client.ScrapedPage, analysis *competitorAnalysis) (*domain.CompetitorResearch, error) {
	confidence := 0.7
	if analysis.ConfidenceScore != nil {
		confidence = *analysis.ConfidenceScore
	}

	var description *string
	if analysis.Description != "" {
		d := analysis.Description
		description = &d
	}
	var marketPosition *string
	if analysis.MarketPosition != "" {
		mp := analysis.MarketPosition
		marketPosition = &mp
	}

	pageURL := page.URL
	research := &domain.CompetitorResearch{
		IdeaID:                       ideaID,
		UserID:                       userID,
		CompetitorName:               truncate(analysis.CompetitorName, 255),
		CompetitorURL:                &pageURL,
		Description:                  description,
		Strengths:                    dto.EncodeStringSlice(capSlice(analysis.Strengths, 10)),
		Weaknesses:                   dto.EncodeStringSlice(capSlice(analysis.Weaknesses, 10)),
		DifferentiationOpportunities: dto.EncodeStringSlice(capSlice(analysis.DifferentiationOpportunities, 10)),
		MarketPosition:               marketPosition,
		ResearchDate:                 time.Now(),
		DataSources:                  dto.EncodeStringSlice([]string{page.URL}),
		ConfidenceScore:              &confidence,
	}
	if err := s.competitorRepo.Create(ctx, research); err != nil {
		return nil, fmt.Errorf("failed to store research: %w", err)
	}
	return research, nil
}

// ListResearch lists stored research for an idea. Any role may read.
func (s *competitorServiceImpl) ListResearch(ctx context.Context, ideaID, userID uuid.UUID) (*dto.CompetitorListResponse, error) {
	if _, err := s.access.RequireRole(ctx, ideaID, userID, false); err != nil {
		return nil, err
	}

	research, err := s.competitorRepo.FindByIdeaID(ctx, ideaID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list research", err.Error())
	}
	items := make([]*dto.CompetitorResponse, 0, len(research))
	for _, r := range research {
		items = append(items, toCompetitorResponse(r))
	}
	return &dto.CompetitorListResponse{Competitors: items, Total: int64(len(items))}, nil
}

// DeleteResearch removes one research row. Owner only.
func (s *competitorServiceImpl) DeleteResearch(ctx context.Context, researchID, userID uuid.UUID) error {
	if err := s.competitorRepo.DeleteByOwner(ctx, researchID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Research not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete research", err.Error())
	}
	return nil
}

// truncate cuts s to at most max bytes, backing up to a rune boundary so the
// stored value stays valid UTF-8
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}

func capSlice(values []string, max int) []string {
	if len(values) > max {
		return values[:max]
	}
	return values
}

func toCompetitorResponse(r *domain.CompetitorResearch) *dto.CompetitorResponse {
	return &dto.CompetitorResponse{
		ID:                           r.ID,
		IdeaID:                       r.IdeaID,
		CompetitorName:               r.CompetitorName,
		CompetitorURL:                r.CompetitorURL,
		Description:                  r.Description,
		Strengths:                    dto.DecodeStringSlice(r.Strengths),
		Weaknesses:                   dto.DecodeStringSlice(r.Weaknesses),
		DifferentiationOpportunities: dto.DecodeStringSlice(r.DifferentiationOpportunities),
		MarketPosition:               r.MarketPosition,
		DataSources:                  dto.DecodeStringSlice(r.DataSources),
		ConfidenceScore:              r.ConfidenceScore,
		ResearchDate:                 r.ResearchDate,
		CreatedAt:                    r.CreatedAt,
	}
}
