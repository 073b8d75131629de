package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"idea-copilot-api/internal/domain"
	"idea-copilot-api/internal/dto"
	"idea-copilot-api/internal/metrics"
	"idea-copilot-api/internal/repository"
	"idea-copilot-api/internal/response"
)

// achievementDef pairs the catalog entry with its unlock condition
type achievementDef struct {
	dto.AchievementDefinition
	unlocked func(stats *domain.UserStats) bool
}

// achievementCatalog is the fixed set of unlockable achievements.
// Conditions are evaluated against the stats row after every change.
var achievementCatalog = []achievementDef{
	{
		AchievementDefinition: dto.AchievementDefinition{
			AchievementType: "first_idea",
			Title:           "First Spark",
			Description:     "Capture your first idea",
			Icon:            "💡",
			XPAwarded:       25,
			UnlockCondition: "ideas_created >= 1",
		},
		unlocked: func(s *domain.UserStats) bool { return s.IdeasCreated >= 1 },
	},
	{
		AchievementDefinition: dto.AchievementDefinition{
			AchievementType: "idea_master_10",
			Title:           "Idea Master",
			Description:     "Capture ten ideas",
			Icon:            "🧠",
			XPAwarded:       100,
			UnlockCondition: "ideas_created >= 10",
		},
		unlocked: func(s *domain.UserStats) bool { return s.IdeasCreated >= 10 },
	},
	{
		AchievementDefinition: dto.AchievementDefinition{
			AchievementType: "first_completion",
			Title:           "Finisher",
			Description:     "Complete your first idea",
			Icon:            "🏁",
			XPAwarded:       75,
			UnlockCondition: "ideas_completed >= 1",
		},
		unlocked: func(s *domain.UserStats) bool { return s.IdeasCompleted >= 1 },
	},
	{
		AchievementDefinition: dto.AchievementDefinition{
			AchievementType: "week_streak",
			Title:           "On Fire",
			Description:     "Stay active seven days in a row",
			Icon:            "🔥",
			XPAwarded:       150,
			UnlockCondition: "current_streak >= 7",
		},
		unlocked: func(s *domain.UserStats) bool { return s.CurrentStreak >= 7 },
	},
	{
		AchievementDefinition: dto.AchievementDefinition{
			AchievementType: "collaborator",
			Title:           "Team Player",
			Description:     "Share an idea with someone",
			Icon:            "🤝",
			XPAwarded:       50,
			UnlockCondition: "collaborations_count >= 1",
		},
		unlocked: func(s *domain.UserStats) bool { return s.CollaborationsCount >= 1 },
	},
	{
		AchievementDefinition: dto.AchievementDefinition{
			AchievementType: "ai_adopter",
			Title:           "AI Adopter",
			Description:     "Apply five AI suggestions",
			Icon:            "🤖",
			XPAwarded:       100,
			UnlockCondition: "ai_suggestions_applied >= 5",
		},
		unlocked: func(s *domain.UserStats) bool { return s.AISuggestionsApplied >= 5 },
	},
}

// AchievementNotifier pushes a notification when an achievement unlocks
type AchievementNotifier interface {
	NotifyAchievementUnlocked(ctx context.Context, userID uuid.UUID, achievement *domain.Achievement)
}

// AchievementService defines the interface for achievement business logic
type AchievementService interface {
	ListAchievements(ctx context.Context, userID uuid.UUID) ([]*dto.AchievementResponse, error)
	ListDefinitions() []*dto.AchievementDefinition
	CheckAndUnlock(ctx context.Context, userID uuid.UUID, stats *domain.UserStats, relatedIdeaID *uuid.UUID)
}

// achievementServiceImpl is the implementation of AchievementService
type achievementServiceImpl struct {
	achievementRepo repository.AchievementRepository
	statsRepo       repository.StatsRepository
	notifier        AchievementNotifier
	metrics         *metrics.Metrics
	logger          *zap.Logger
}

// NewAchievementService creates a new instance of AchievementService
func NewAchievementService(
	achievementRepo repository.AchievementRepository,
	statsRepo repository.StatsRepository,
	notifier AchievementNotifier,
	m *metrics.Metrics,
	logger *zap.Logger,
) AchievementService {
	return &achievementServiceImpl{
		achievementRepo: achievementRepo,
		statsRepo:       statsRepo,
		notifier:        notifier,
		metrics:         m,
		logger:          logger,
	}
}

// ListAchievements lists the achievements the user has unlocked
func (s *achievementServiceImpl) ListAchievements(ctx context.Context, userID uuid.UUID) ([]*dto.AchievementResponse, error) {
	achievements, err := s.achievementRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list achievements", err.Error())
	}
	items := make([]*dto.AchievementResponse, 0, len(achievements))
	for _, a := range achievements {
		items = append(items, toAchievementResponse(a))
	}
	return items, nil
}

// ListDefinitions returns the full achievement catalog
func (s *achievementServiceImpl) ListDefinitions() []*dto.AchievementDefinition {
	defs := make([]*dto.AchievementDefinition, 0, len(achievementCatalog))
	for i := range achievementCatalog {
		def := achievementCatalog[i].AchievementDefinition
		defs = append(defs, &def)
	}
	return defs
}

// CheckAndUnlock walks the catalog and records any newly satisfied unlock.
// Already-unlocked achievements are skipped, so re-checking is idempotent.
// XP for the unlock is added directly to avoid re-entering the stats service.
func (s *achievementServiceImpl) CheckAndUnlock(ctx context.Context, userID uuid.UUID, stats *domain.UserStats, relatedIdeaID *uuid.UUID) {
	for i := range achievementCatalog {
		def := &achievementCatalog[i]
		if !def.unlocked(stats) {
			continue
		}

		exists, err := s.achievementRepo.ExistsByType(ctx, userID, def.AchievementType)
		if err != nil {
			s.logger.Warn("achievement existence check failed",
				zap.String("type", def.AchievementType),
				zap.Error(err))
			continue
		}
		if exists {
			continue
		}

		icon := def.Icon
		achievement := &domain.Achievement{
			UserID:          userID,
			AchievementType: def.AchievementType,
			Title:           def.Title,
			Description:     def.Description,
			Icon:            &icon,
			XPAwarded:       def.XPAwarded,
			UnlockedAt:      time.Now(),
			RelatedIdeaID:   relatedIdeaID,
		}
		if err := s.achievementRepo.Create(ctx, achievement); err != nil {
			// unique index makes a concurrent double-unlock a no-op
			s.logger.Warn("failed to record achievement",
				zap.String("type", def.AchievementType),
				zap.Error(err))
			continue
		}

		stats.TotalXP += def.XPAwarded
		stats.CurrentLevel = domain.LevelForXP(stats.TotalXP)
		if err := s.statsRepo.Update(ctx, stats); err != nil {
			s.logger.Warn("failed to award achievement XP", zap.Error(err))
		}

		s.metrics.IncrementAchievementUnlocked()
		if s.notifier != nil {
			s.notifier.NotifyAchievementUnlocked(ctx, userID, achievement)
		}
		s.logger.Info("achievement unlocked",
			zap.String("user_id", userID.String()),
			zap.String("type", def.AchievementType))
	}
}

func toAchievementResponse(a *domain.Achievement) *dto.AchievementResponse {
	return &dto.AchievementResponse{
		ID:              a.ID,
		UserID:          a.UserID,
		AchievementType: a.AchievementType,
		Title:           a.Title,
		Description:     a.Description,
		Icon:            a.Icon,
		XPAwarded:       a.XPAwarded,
		UnlockedAt:      a.UnlockedAt,
		RelatedIdeaID:   a.RelatedIdeaID,
	}
}
