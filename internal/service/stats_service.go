package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"idea-copilot-api/internal/domain"
	"idea-copilot-api/internal/dto"
	"idea-copilot-api/internal/repository"
	"idea-copilot-api/internal/response"
)

// StatsService defines the interface for gamification stats business logic
type StatsService interface {
	GetStats(ctx context.Context, userID uuid.UUID) (*dto.StatsResponse, error)
	UpdateStats(ctx context.Context, userID uuid.UUID, req *dto.UpdateStatsRequest) (*dto.StatsResponse, error)
	IncrementStat(ctx context.Context, userID uuid.UUID, req *dto.IncrementStatRequest) (*dto.StatsResponse, error)
	AwardXP(ctx context.Context, userID uuid.UUID, amount int) (*dto.StatsResponse, error)

	RecordIdeaCreated(ctx context.Context, userID, ideaID uuid.UUID)
	RecordIdeaCompleted(ctx context.Context, userID, ideaID uuid.UUID)
	RecordSuggestionApplied(ctx context.Context, userID uuid.UUID)
	RecordCollaboration(ctx context.Context, userID uuid.UUID)
}

// AchievementChecker re-evaluates unlock conditions after a stats change
type AchievementChecker interface {
	CheckAndUnlock(ctx context.Context, userID uuid.UUID, stats *domain.UserStats, relatedIdeaID *uuid.UUID)
}

// statsServiceImpl is the implementation of StatsService
type statsServiceImpl struct {
	statsRepo repository.StatsRepository
	checker   AchievementChecker
	logger    *zap.Logger
}

// NewStatsService creates a new instance of StatsService
func NewStatsService(
	statsRepo repository.StatsRepository,
	checker AchievementChecker,
	logger *zap.Logger,
) StatsService {
	return &statsServiceImpl{
		statsRepo: statsRepo,
		checker:   checker,
		logger:    logger,
	}
}

// sameDay compares calendar days, ignoring time of day
func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// touchStreak applies the daily streak rules in place.
// First ever activity starts at 1. A second activity on the same day keeps
// the streak. The day after extends it. Anything longer resets to 1.
func touchStreak(stats *domain.UserStats, now time.Time) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch {
	case stats.LastActivityDate == nil:
		stats.CurrentStreak = 1
	case sameDay(*stats.LastActivityDate, today):
		// already counted today
	case sameDay(stats.LastActivityDate.AddDate(0, 0, 1), today):
		stats.CurrentStreak++
	default:
		stats.CurrentStreak = 1
	}

	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	stats.LastActivityDate = &today
}

// GetStats returns the caller's stats, creating the row on first access
func (s *statsServiceImpl) GetStats(ctx context.Context, userID uuid.UUID) (*dto.StatsResponse, error) {
	stats, err := s.statsRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load stats", err.Error())
	}
	return toStatsResponse(stats), nil
}

// UpdateStats applies a partial stats update and re-derives the level
func (s *statsServiceImpl) UpdateStats(ctx context.Context, userID uuid.UUID, req *dto.UpdateStatsRequest) (*dto.StatsResponse, error) {
	stats, err := s.statsRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load stats", err.Error())
	}

	if req.TotalXP != nil {
		stats.TotalXP = *req.TotalXP
	}
	if req.CurrentStreak != nil {
		stats.CurrentStreak = *req.CurrentStreak
	}
	if req.LongestStreak != nil {
		stats.LongestStreak = *req.LongestStreak
	}
	if req.LastActivityDate != nil {
		stats.LastActivityDate = req.LastActivityDate
	}
	if req.IdeasCreated != nil {
		stats.IdeasCreated = *req.IdeasCreated
	}
	if req.IdeasCompleted != nil {
		stats.IdeasCompleted = *req.IdeasCompleted
	}
	if req.AISuggestionsApplied != nil {
		stats.AISuggestionsApplied = *req.AISuggestionsApplied
	}
	if req.CollaborationsCount != nil {
		stats.CollaborationsCount = *req.CollaborationsCount
	}
	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	stats.CurrentLevel = domain.LevelForXP(stats.TotalXP)

	if err := s.statsRepo.Update(ctx, stats); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update stats", err.Error())
	}
	s.runChecker(ctx, userID, stats, nil)
	return toStatsResponse(stats), nil
}

// IncrementStat bumps one counter and touches the daily streak
func (s *statsServiceImpl) IncrementStat(ctx context.Context, userID uuid.UUID, req *dto.IncrementStatRequest) (*dto.StatsResponse, error) {
	amount := req.Amount
	if amount <= 0 {
		amount = 1
	}

	stats, err := s.statsRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load stats", err.Error())
	}

	switch req.Field {
	case "ideas_created":
		stats.IdeasCreated += amount
	case "ideas_completed":
		stats.IdeasCompleted += amount
	case "ai_suggestions_applied":
		stats.AISuggestionsApplied += amount
	case "collaborations_count":
		stats.CollaborationsCount += amount
	default:
		return nil, response.NewValidationError("Unknown stat field")
	}

	touchStreak(stats, time.Now())
	if err := s.statsRepo.Update(ctx, stats); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update stats", err.Error())
	}
	s.runChecker(ctx, userID, stats, nil)
	return toStatsResponse(stats), nil
}

// AwardXP adds XP, re-derives the level and touches the daily streak
func (s *statsServiceImpl) AwardXP(ctx context.Context, userID uuid.UUID, amount int) (*dto.StatsResponse, error) {
	if amount <= 0 {
		return nil, response.NewValidationError("XP amount must be positive")
	}

	stats, err := s.statsRepo.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load stats", err.Error())
	}

	stats.TotalXP += amount
	stats.CurrentLevel = domain.LevelForXP(stats.TotalXP)
	touchStreak(stats, time.Now())

	if err := s.statsRepo.Update(ctx, stats); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update stats", err.Error())
	}
	s.runChecker(ctx, userID, stats, nil)
	return toStatsResponse(stats), nil
}

// RecordIdeaCreated is the idea-creation gamification hook.
// Failures are logged and swallowed; stats never block the main operation.
func (s *statsServiceImpl) RecordIdeaCreated(ctx context.Context, userID, ideaID uuid.UUID) {
	s.recordEvent(ctx, userID, &ideaID, 10, func(stats *domain.UserStats) {
		stats.IdeasCreated++
	})
}

// RecordIdeaCompleted is the idea-completion gamification hook
func (s *statsServiceImpl) RecordIdeaCompleted(ctx context.Context, userID, ideaID uuid.UUID) {
	s.recordEvent(ctx, userID, &ideaID, 50, func(stats *domain.UserStats) {
		stats.IdeasCompleted++
	})
}

// RecordSuggestionApplied is the AI-adoption gamification hook
func (s *statsServiceImpl) RecordSuggestionApplied(ctx context.Context, userID uuid.UUID) {
	s.recordEvent(ctx, userID, nil, 15, func(stats *domain.UserStats) {
		stats.AISuggestionsApplied++
	})
}

// RecordCollaboration is the sharing gamification hook
func (s *statsServiceImpl) RecordCollaboration(ctx context.Context, userID uuid.UUID) {
	s.recordEvent(ctx, userID, nil, 20, func(stats *domain.UserStats) {
		stats.CollaborationsCount++
	})
}

func (s *statsServiceImpl) recordEvent(ctx context.Context, userID uuid.UUID, relatedIdeaID *uuid.UUID, xp int, mutate func(*domain.UserStats)) {
	stats, err := s.statsRepo.GetOrCreate(ctx, userID)
	if err != nil {
		s.logger.Warn("failed to load stats for event", zap.String("user_id", userID.String()), zap.Error(err))
		return
	}

	mutate(stats)
	stats.TotalXP += xp
	stats.CurrentLevel = domain.LevelForXP(stats.TotalXP)
	touchStreak(stats, time.Now())

	if err := s.statsRepo.Update(ctx, stats); err != nil {
		s.logger.Warn("failed to save stats for event", zap.String("user_id", userID.String()), zap.Error(err))
		return
	}
	s.runChecker(ctx, userID, stats, relatedIdeaID)
}

func (s *statsServiceImpl) runChecker(ctx context.Context, userID uuid.UUID, stats *domain.UserStats, relatedIdeaID *uuid.UUID) {
	if s.checker != nil {
		s.checker.CheckAndUnlock(ctx, userID, stats, relatedIdeaID)
	}
}

func toStatsResponse(stats *domain.UserStats) *dto.StatsResponse {
	return &dto.StatsResponse{
		UserID:               stats.UserID,
		TotalXP:              stats.TotalXP,
		CurrentLevel:         stats.CurrentLevel,
		CurrentStreak:        stats.CurrentStreak,
		LongestStreak:        stats.LongestStreak,
		LastActivityDate:     stats.LastActivityDate,
		IdeasCreated:         stats.IdeasCreated,
		IdeasCompleted:       stats.IdeasCompleted,
		AISuggestionsApplied: stats.AISuggestionsApplied,
		CollaborationsCount:  stats.CollaborationsCount,
		CreatedAt:            stats.CreatedAt,
		UpdatedAt:            stats.UpdatedAt,
	}
}
