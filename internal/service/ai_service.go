package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"idea-copilot-api/internal/client"
	"idea-copilot-api/internal/domain"
	"idea-copilot-api/internal/dto"
	"idea-copilot-api/internal/metrics"
	"idea-copilot-api/internal/repository"
	"idea-copilot-api/internal/response"
)

// promptStoredLimit caps how much of the prompt lands in the suggestion row
const promptStoredLimit = 500

// SuggestionRecorder receives the gamification event for applied suggestions
type SuggestionRecorder interface {
	RecordSuggestionApplied(ctx context.Context, userID uuid.UUID)
}

// AIService defines the interface for AI suggestion business logic
type AIService interface {
	GenerateSuggestions(ctx context.Context, userID uuid.UUID, req *dto.GenerateSuggestionsRequest) (*dto.SuggestionResponse, error)
	ListSuggestions(ctx context.Context, ideaID, userID uuid.UUID) (*dto.SuggestionListResponse, error)
	ApplySuggestion(ctx context.Context, suggestionID, userID uuid.UUID) (*dto.SuggestionResponse, error)
	ListQueryLogs(ctx context.Context, userID uuid.UUID, limit int) ([]*dto.QueryLogResponse, error)
}

// aiServiceImpl is the implementation of AIService
type aiServiceImpl struct {
	aiRepo   repository.AIRepository
	ideaRepo repository.IdeaRepository
	gemini   client.GeminiClient
	recorder SuggestionRecorder
	metrics  *metrics.Metrics
	logger   *zap.Logger
}

// NewAIService creates a new instance of AIService
func NewAIService(
	aiRepo repository.AIRepository,
	ideaRepo repository.IdeaRepository,
	gemini client.GeminiClient,
	recorder SuggestionRecorder,
	m *metrics.Metrics,
	logger *zap.Logger,
) AIService {
	return &aiServiceImpl{
		aiRepo:   aiRepo,
		ideaRepo: ideaRepo,
		gemini:   gemini,
		recorder: recorder,
		metrics:  m,
		logger:   logger,
	}
}

// buildSuggestionPrompt assembles the per-type prompt from the idea fields
func buildSuggestionPrompt(suggestionType string, idea *domain.Idea, extra *string) (string, error) {
	tags := strings.Join(dto.DecodeStringSlice(idea.Tags), ", ")
	context := "None"
	if extra != nil && *extra != "" {
		context = *extra
	}

	switch suggestionType {
	case domain.SuggestionTypeFeatures:
		return fmt.Sprintf(`Analyze this product idea and suggest 5 innovative features that would make it stand out:

Title: %s
Description: %s
Tags: %s

Additional Context: %s

Provide features that are:
1. Innovative yet practical
2. Aligned with the core value proposition
3. Technically feasible
4. User-centric

Format your response as a JSON array of objects with: title, description, priority (high/medium/low), estimated_effort (1-10)`,
			idea.Title, idea.Description, tags, context), nil

	case domain.SuggestionTypeImprovements:
		return fmt.Sprintf(`Review this product idea and suggest 5 specific improvements:

Title: %s
Description: %s

Additional Context: %s

Focus on:
1. User experience enhancements
2. Performance optimizations
3. Scalability considerations
4. Market differentiation

Format your response as a JSON array of objects with: title, description, impact (high/medium/low), effort (low/medium/high)`,
			idea.Title, idea.Description, context), nil

	case domain.SuggestionTypeMarketing:
		return fmt.Sprintf(`Create a marketing strategy for this product idea:

Title: %s
Description: %s

Additional Context: %s

Provide:
1. Value proposition (1-2 sentences)
2. Target audience segments (3-4)
3. Marketing channels (5)
4. Key messaging points (5)
5. Launch strategy overview

Format your response as a JSON object with these keys.`,
			idea.Title, idea.Description, context), nil

	case domain.SuggestionTypeValidation:
		return fmt.Sprintf(`Evaluate this product idea for market viability:

Title: %s
Description: %s

Additional Context: %s

Provide:
1. Market opportunity assessment
2. Potential challenges (3-5)
3. Competitive advantage points (3-5)
4. Recommended next steps (5)
5. Risk factors (3-5)

Format your response as a JSON object with these keys.`,
			idea.Title, idea.Description, context), nil
	}
	return "", response.NewValidationError("Invalid suggestion type: " + suggestionType)
}

// GenerateSuggestions builds the per-type prompt, calls the model, logs the
// query and stores the parsed suggestion. Owner only.
func (s *aiServiceImpl) GenerateSuggestions(ctx context.Context, userID uuid.UUID, req *dto.GenerateSuggestionsRequest) (*dto.SuggestionResponse, error) {
	idea, err := s.loadOwnedIdea(ctx, req.IdeaID, userID)
	if err != nil {
		return nil, err
	}

	prompt, err := buildSuggestionPrompt(req.SuggestionType, idea, req.Context)
	if err != nil {
		return nil, err
	}

	result, err := s.gemini.GenerateContent(ctx, prompt)
	if err != nil {
		if errors.Is(err, client.ErrGeminiNotConfigured) {
			return nil, response.NewValidationError("Gemini API key not configured")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "AI generation failed", err.Error())
	}

	cleaned := client.StripCodeFences(result.Text)
	content := cleaned
	if !json.Valid([]byte(cleaned)) {
		wrapped, _ := json.Marshal(map[string]string{"raw_response": result.Text})
		content = string(wrapped)
	}

	tokens := result.TokensUsed
	if tokens == 0 {
		// rough estimate when the API omits usage metadata
		tokens = len(strings.Fields(prompt)) + len(strings.Fields(result.Text))
	}
	s.logQuery(ctx, userID, &idea.ID, "suggestion_"+req.SuggestionType, prompt, result, tokens, map[string]interface{}{
		"suggestion_type": req.SuggestionType,
		"context":         req.Context,
	})

	title := strings.ToUpper(req.SuggestionType[:1]) + req.SuggestionType[1:] + " Suggestions"
	model := result.Model
	confidence := 0.85
	storedPrompt := prompt
	if len(storedPrompt) > promptStoredLimit {
		storedPrompt = storedPrompt[:promptStoredLimit]
	}
	suggestion := &domain.AISuggestion{
		IdeaID:          idea.ID,
		UserID:          userID,
		SuggestionType:  req.SuggestionType,
		Title:           &title,
		Content:         content,
		ConfidenceScore: &confidence,
		AIModel:         &model,
		PromptUsed:      &storedPrompt,
	}
	if err := s.aiRepo.CreateSuggestion(ctx, suggestion); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to store suggestion", err.Error())
	}

	s.metrics.IncrementSuggestionGenerated()
	s.logger.Info("suggestion generated",
		zap.String("idea_id", idea.ID.String()),
		zap.String("type", req.SuggestionType),
		zap.Int("response_time_ms", result.ResponseTimeMs))
	return toSuggestionResponse(suggestion), nil
}

// ListSuggestions lists stored suggestions for an idea. Owner only.
func (s *aiServiceImpl) ListSuggestions(ctx context.Context, ideaID, userID uuid.UUID) (*dto.SuggestionListResponse, error) {
	if _, err := s.loadOwnedIdea(ctx, ideaID, userID); err != nil {
		return nil, err
	}

	suggestions, err := s.aiRepo.FindSuggestionsByIdeaID(ctx, ideaID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list suggestions", err.Error())
	}
	items := make([]*dto.SuggestionResponse, 0, len(suggestions))
	for _, sg := range suggestions {
		items = append(items, toSuggestionResponse(sg))
	}
	return &dto.SuggestionListResponse{Suggestions: items, Total: int64(len(items))}, nil
}

// ApplySuggestion marks a suggestion applied and feeds the gamification hook
func (s *aiServiceImpl) ApplySuggestion(ctx context.Context, suggestionID, userID uuid.UUID) (*dto.SuggestionResponse, error) {
	suggestion, err := s.aiRepo.MarkSuggestionApplied(ctx, suggestionID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Suggestion not found or already applied")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to apply suggestion", err.Error())
	}

	s.metrics.IncrementSuggestionApplied()
	if s.recorder != nil {
		s.recorder.RecordSuggestionApplied(ctx, userID)
	}
	return toSuggestionResponse(suggestion), nil
}

// ListQueryLogs lists the caller's recent AI calls
func (s *aiServiceImpl) ListQueryLogs(ctx context.Context, userID uuid.UUID, limit int) ([]*dto.QueryLogResponse, error) {
	logs, err := s.aiRepo.FindQueryLogsByUserID(ctx, userID, limit)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list query logs", err.Error())
	}
	items := make([]*dto.QueryLogResponse, 0, len(logs))
	for _, log := range logs {
		items = append(items, &dto.QueryLogResponse{
			ID:             log.ID,
			IdeaID:         log.IdeaID,
			QueryType:      log.QueryType,
			AIModel:        log.AIModel,
			TokensUsed:     log.TokensUsed,
			ResponseTimeMs: log.ResponseTimeMs,
			CreatedAt:      log.CreatedAt,
		})
	}
	return items, nil
}

func (s *aiServiceImpl) loadOwnedIdea(ctx context.Context, ideaID, userID uuid.UUID) (*domain.Idea, error) {
	idea, err := s.ideaRepo.FindByID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Idea not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load idea", err.Error())
	}
	if idea.UserID != userID {
		return nil, response.NewForbiddenError("Only the idea owner can use AI features")
	}
	return idea, nil
}

// logQuery records the call in ai_query_logs; failures are logged, not fatal
func (s *aiServiceImpl) logQuery(ctx context.Context, userID uuid.UUID, ideaID *uuid.UUID, queryType, prompt string, result *client.GenerateResult, tokens int, contextData map[string]interface{}) {
	model := result.Model
	responseTime := result.ResponseTimeMs
	contextJSON, _ := json.Marshal(contextData)

	log := &domain.AIQueryLog{
		UserID:         userID,
		IdeaID:         ideaID,
		QueryType:      queryType,
		UserPrompt:     prompt,
		AIResponse:     result.Text,
		AIModel:        &model,
		TokensUsed:     &tokens,
		ResponseTimeMs: &responseTime,
		ContextData:    contextJSON,
	}
	if err := s.aiRepo.CreateQueryLog(ctx, log); err != nil {
		s.logger.Warn("failed to record ai query log", zap.Error(err))
	}
}

func toSuggestionResponse(sg *domain.AISuggestion) *dto.SuggestionResponse {
	return &dto.SuggestionResponse{
		ID:              sg.ID,
		IdeaID:          sg.IdeaID,
		SuggestionType:  sg.SuggestionType,
		Title:           sg.Title,
		Content:         sg.Content,
		ConfidenceScore: sg.ConfidenceScore,
		IsApplied:       sg.IsApplied,
		AppliedAt:       sg.AppliedAt,
		AIModel:         sg.AIModel,
		CreatedAt:       sg.CreatedAt,
	}
}
