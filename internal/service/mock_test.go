package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"idea-copilot-api/internal/client"
	"idea-copilot-api/internal/domain"
	"idea-copilot-api/internal/dto"
)

// MockIdeaRepository is a mock implementation of IdeaRepository
type MockIdeaRepository struct {
	CreateFunc                func(ctx context.Context, idea *domain.Idea) error
	FindByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	FindByIDWithChildrenFunc  func(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	FindByUserIDFunc          func(ctx context.Context, userID uuid.UUID, filters *dto.IdeaFilters) ([]*domain.Idea, int64, error)
	UpdateFunc                func(ctx context.Context, idea *domain.Idea) error
	DeleteByOwnerFunc         func(ctx context.Context, ideaID, userID uuid.UUID) error
	CountByUserIDFunc         func(ctx context.Context, userID uuid.UUID) (int64, error)
	CountCompletedByUserFunc  func(ctx context.Context, userID uuid.UUID) (int64, error)
}

func (m *MockIdeaRepository) Create(ctx context.Context, idea *domain.Idea) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, idea)
	}
	return nil
}

func (m *MockIdeaRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockIdeaRepository) FindByIDWithChildren(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	if m.FindByIDWithChildrenFunc != nil {
		return m.FindByIDWithChildrenFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockIdeaRepository) FindByUserID(ctx context.Context, userID uuid.UUID, filters *dto.IdeaFilters) ([]*domain.Idea, int64, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID, filters)
	}
	return nil, 0, nil
}

func (m *MockIdeaRepository) Update(ctx context.Context, idea *domain.Idea) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, idea)
	}
	return nil
}

func (m *MockIdeaRepository) DeleteByOwner(ctx context.Context, ideaID, userID uuid.UUID) error {
	if m.DeleteByOwnerFunc != nil {
		return m.DeleteByOwnerFunc(ctx, ideaID, userID)
	}
	return nil
}

func (m *MockIdeaRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.CountByUserIDFunc != nil {
		return m.CountByUserIDFunc(ctx, userID)
	}
	return 0, nil
}

func (m *MockIdeaRepository) CountCompletedByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.CountCompletedByUserFunc != nil {
		return m.CountCompletedByUserFunc(ctx, userID)
	}
	return 0, nil
}

// MockCategoryRepository is a mock implementation of CategoryRepository
type MockCategoryRepository struct {
	CreateFunc        func(ctx context.Context, category *domain.Category) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Category, error)
	FindByUserIDFunc  func(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error)
	UpdateFunc        func(ctx context.Context, category *domain.Category) error
	DeleteByOwnerFunc func(ctx context.Context, categoryID, userID uuid.UUID) error
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *domain.Category) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, category)
	}
	return nil
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Category, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCategoryRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Category, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, category)
	}
	return nil
}

func (m *MockCategoryRepository) DeleteByOwner(ctx context.Context, categoryID, userID uuid.UUID) error {
	if m.DeleteByOwnerFunc != nil {
		return m.DeleteByOwnerFunc(ctx, categoryID, userID)
	}
	return nil
}

// MockPhaseRepository is a mock implementation of PhaseRepository
type MockPhaseRepository struct {
	CreateFunc                 func(ctx context.Context, phase *domain.Phase) error
	FindByIDFunc               func(ctx context.Context, id uuid.UUID) (*domain.Phase, error)
	FindByIdeaIDFunc           func(ctx context.Context, ideaID uuid.UUID) ([]*domain.Phase, error)
	UpdateFunc                 func(ctx context.Context, phase *domain.Phase) error
	DeleteFunc                 func(ctx context.Context, id uuid.UUID) error
	CountByIdeaIDFunc          func(ctx context.Context, ideaID uuid.UUID) (int64, error)
	CountCompletedByIdeaIDFunc func(ctx context.Context, ideaID uuid.UUID) (int64, error)
}

func (m *MockPhaseRepository) Create(ctx context.Context, phase *domain.Phase) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, phase)
	}
	return nil
}

func (m *MockPhaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Phase, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockPhaseRepository) FindByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]*domain.Phase, error) {
	if m.FindByIdeaIDFunc != nil {
		return m.FindByIdeaIDFunc(ctx, ideaID)
	}
	return nil, nil
}

func (m *MockPhaseRepository) Update(ctx context.Context, phase *domain.Phase) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, phase)
	}
	return nil
}

func (m *MockPhaseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockPhaseRepository) CountByIdeaID(ctx context.Context, ideaID uuid.UUID) (int64, error) {
	if m.CountByIdeaIDFunc != nil {
		return m.CountByIdeaIDFunc(ctx, ideaID)
	}
	return 0, nil
}

func (m *MockPhaseRepository) CountCompletedByIdeaID(ctx context.Context, ideaID uuid.UUID) (int64, error) {
	if m.CountCompletedByIdeaIDFunc != nil {
		return m.CountCompletedByIdeaIDFunc(ctx, ideaID)
	}
	return 0, nil
}

// MockFeatureRepository is a mock implementation of FeatureRepository
type MockFeatureRepository struct {
	CreateFunc        func(ctx context.Context, feature *domain.Feature) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Feature, error)
	FindByIdeaIDFunc  func(ctx context.Context, ideaID uuid.UUID) ([]*domain.Feature, error)
	FindByPhaseIDFunc func(ctx context.Context, phaseID uuid.UUID) ([]*domain.Feature, error)
	UpdateFunc        func(ctx context.Context, feature *domain.Feature) error
	DeleteFunc        func(ctx context.Context, id uuid.UUID) error
}

func (m *MockFeatureRepository) Create(ctx context.Context, feature *domain.Feature) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, feature)
	}
	return nil
}

func (m *MockFeatureRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Feature, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockFeatureRepository) FindByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]*domain.Feature, error) {
	if m.FindByIdeaIDFunc != nil {
		return m.FindByIdeaIDFunc(ctx, ideaID)
	}
	return nil, nil
}

func (m *MockFeatureRepository) FindByPhaseID(ctx context.Context, phaseID uuid.UUID) ([]*domain.Feature, error) {
	if m.FindByPhaseIDFunc != nil {
		return m.FindByPhaseIDFunc(ctx, phaseID)
	}
	return nil, nil
}

func (m *MockFeatureRepository) Update(ctx context.Context, feature *domain.Feature) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, feature)
	}
	return nil
}

func (m *MockFeatureRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc                func(ctx context.Context, comment *domain.Comment) error
	FindByIDFunc              func(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindByIdeaIDFunc          func(ctx context.Context, ideaID uuid.UUID) ([]*domain.Comment, error)
	FindByFeatureIDFunc       func(ctx context.Context, featureID uuid.UUID) ([]*domain.Comment, error)
	UpdateContentByAuthorFunc func(ctx context.Context, commentID, authorID uuid.UUID, content string) (*domain.Comment, error)
	SoftDeleteByAuthorFunc    func(ctx context.Context, commentID, authorID uuid.UUID) error
	CountByIdeaIDFunc         func(ctx context.Context, ideaID uuid.UUID) (int64, error)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]*domain.Comment, error) {
	if m.FindByIdeaIDFunc != nil {
		return m.FindByIdeaIDFunc(ctx, ideaID)
	}
	return nil, nil
}

func (m *MockCommentRepository) FindByFeatureID(ctx context.Context, featureID uuid.UUID) ([]*domain.Comment, error) {
	if m.FindByFeatureIDFunc != nil {
		return m.FindByFeatureIDFunc(ctx, featureID)
	}
	return nil, nil
}

func (m *MockCommentRepository) UpdateContentByAuthor(ctx context.Context, commentID, authorID uuid.UUID, content string) (*domain.Comment, error) {
	if m.UpdateContentByAuthorFunc != nil {
		return m.UpdateContentByAuthorFunc(ctx, commentID, authorID, content)
	}
	return nil, nil
}

func (m *MockCommentRepository) SoftDeleteByAuthor(ctx context.Context, commentID, authorID uuid.UUID) error {
	if m.SoftDeleteByAuthorFunc != nil {
		return m.SoftDeleteByAuthorFunc(ctx, commentID, authorID)
	}
	return nil
}

func (m *MockCommentRepository) CountByIdeaID(ctx context.Context, ideaID uuid.UUID) (int64, error) {
	if m.CountByIdeaIDFunc != nil {
		return m.CountByIdeaIDFunc(ctx, ideaID)
	}
	return 0, nil
}

// MockShareRepository is a mock implementation of ShareRepository
type MockShareRepository struct {
	CreateFunc             func(ctx context.Context, share *domain.IdeaShare) error
	FindByIDFunc           func(ctx context.Context, id uuid.UUID) (*domain.IdeaShare, error)
	FindByIdeaAndUserFunc  func(ctx context.Context, ideaID, userID uuid.UUID) (*domain.IdeaShare, error)
	FindByIdeaIDFunc       func(ctx context.Context, ideaID uuid.UUID) ([]*domain.IdeaShare, error)
	FindSharedWithUserFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.IdeaShare, error)
	UpdateFunc             func(ctx context.Context, share *domain.IdeaShare) error
	DeleteByOwnerFunc      func(ctx context.Context, shareID, ownerID uuid.UUID) error
	DeactivateExpiredFunc  func(ctx context.Context, now time.Time) (int64, error)
	CountActiveByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

func (m *MockShareRepository) Create(ctx context.Context, share *domain.IdeaShare) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, share)
	}
	return nil
}

func (m *MockShareRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.IdeaShare, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockShareRepository) FindByIdeaAndUser(ctx context.Context, ideaID, userID uuid.UUID) (*domain.IdeaShare, error) {
	if m.FindByIdeaAndUserFunc != nil {
		return m.FindByIdeaAndUserFunc(ctx, ideaID, userID)
	}
	// no share by default
	return nil, gorm.ErrRecordNotFound
}

func (m *MockShareRepository) FindByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]*domain.IdeaShare, error) {
	if m.FindByIdeaIDFunc != nil {
		return m.FindByIdeaIDFunc(ctx, ideaID)
	}
	return nil, nil
}

func (m *MockShareRepository) FindSharedWithUser(ctx context.Context, userID uuid.UUID) ([]*domain.IdeaShare, error) {
	if m.FindSharedWithUserFunc != nil {
		return m.FindSharedWithUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockShareRepository) Update(ctx context.Context, share *domain.IdeaShare) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, share)
	}
	return nil
}

func (m *MockShareRepository) DeleteByOwner(ctx context.Context, shareID, ownerID uuid.UUID) error {
	if m.DeleteByOwnerFunc != nil {
		return m.DeleteByOwnerFunc(ctx, shareID, ownerID)
	}
	return nil
}

func (m *MockShareRepository) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	if m.DeactivateExpiredFunc != nil {
		return m.DeactivateExpiredFunc(ctx, now)
	}
	return 0, nil
}

func (m *MockShareRepository) CountActiveByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	if m.CountActiveByOwnerFunc != nil {
		return m.CountActiveByOwnerFunc(ctx, ownerID)
	}
	return 0, nil
}

// MockStatsRepository is a mock implementation of StatsRepository
type MockStatsRepository struct {
	GetOrCreateFunc  func(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error)
	FindByUserIDFunc func(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error)
	UpdateFunc       func(ctx context.Context, stats *domain.UserStats) error
}

func (m *MockStatsRepository) GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	if m.GetOrCreateFunc != nil {
		return m.GetOrCreateFunc(ctx, userID)
	}
	return &domain.UserStats{UserID: userID, CurrentLevel: 1}, nil
}

func (m *MockStatsRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockStatsRepository) Update(ctx context.Context, stats *domain.UserStats) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, stats)
	}
	return nil
}

// MockAchievementRepository is a mock implementation of AchievementRepository
type MockAchievementRepository struct {
	CreateFunc       func(ctx context.Context, achievement *domain.Achievement) error
	FindByUserIDFunc func(ctx context.Context, userID uuid.UUID) ([]*domain.Achievement, error)
	ExistsByTypeFunc func(ctx context.Context, userID uuid.UUID, achievementType string) (bool, error)
}

func (m *MockAchievementRepository) Create(ctx context.Context, achievement *domain.Achievement) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, achievement)
	}
	return nil
}

func (m *MockAchievementRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Achievement, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *MockAchievementRepository) ExistsByType(ctx context.Context, userID uuid.UUID, achievementType string) (bool, error) {
	if m.ExistsByTypeFunc != nil {
		return m.ExistsByTypeFunc(ctx, userID, achievementType)
	}
	return false, nil
}

// MockAIRepository is a mock implementation of AIRepository
type MockAIRepository struct {
	CreateSuggestionFunc        func(ctx context.Context, suggestion *domain.AISuggestion) error
	FindSuggestionByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.AISuggestion, error)
	FindSuggestionsByIdeaIDFunc func(ctx context.Context, ideaID uuid.UUID) ([]*domain.AISuggestion, error)
	MarkSuggestionAppliedFunc   func(ctx context.Context, suggestionID, userID uuid.UUID) (*domain.AISuggestion, error)
	CreateQueryLogFunc          func(ctx context.Context, log *domain.AIQueryLog) error
	FindQueryLogsByUserIDFunc   func(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.AIQueryLog, error)
}

func (m *MockAIRepository) CreateSuggestion(ctx context.Context, suggestion *domain.AISuggestion) error {
	if m.CreateSuggestionFunc != nil {
		return m.CreateSuggestionFunc(ctx, suggestion)
	}
	return nil
}

func (m *MockAIRepository) FindSuggestionByID(ctx context.Context, id uuid.UUID) (*domain.AISuggestion, error) {
	if m.FindSuggestionByIDFunc != nil {
		return m.FindSuggestionByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAIRepository) FindSuggestionsByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]*domain.AISuggestion, error) {
	if m.FindSuggestionsByIdeaIDFunc != nil {
		return m.FindSuggestionsByIdeaIDFunc(ctx, ideaID)
	}
	return nil, nil
}

func (m *MockAIRepository) MarkSuggestionApplied(ctx context.Context, suggestionID, userID uuid.UUID) (*domain.AISuggestion, error) {
	if m.MarkSuggestionAppliedFunc != nil {
		return m.MarkSuggestionAppliedFunc(ctx, suggestionID, userID)
	}
	return nil, nil
}

func (m *MockAIRepository) CreateQueryLog(ctx context.Context, log *domain.AIQueryLog) error {
	if m.CreateQueryLogFunc != nil {
		return m.CreateQueryLogFunc(ctx, log)
	}
	return nil
}

func (m *MockAIRepository) FindQueryLogsByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.AIQueryLog, error) {
	if m.FindQueryLogsByUserIDFunc != nil {
		return m.FindQueryLogsByUserIDFunc(ctx, userID, limit)
	}
	return nil, nil
}

// MockCompetitorRepository is a mock implementation of CompetitorRepository
type MockCompetitorRepository struct {
	CreateFunc        func(ctx context.Context, research *domain.CompetitorResearch) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.CompetitorResearch, error)
	FindByIdeaIDFunc  func(ctx context.Context, ideaID uuid.UUID) ([]*domain.CompetitorResearch, error)
	DeleteByOwnerFunc func(ctx context.Context, researchID, userID uuid.UUID) error
}

func (m *MockCompetitorRepository) Create(ctx context.Context, research *domain.CompetitorResearch) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, research)
	}
	return nil
}

func (m *MockCompetitorRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.CompetitorResearch, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockCompetitorRepository) FindByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]*domain.CompetitorResearch, error) {
	if m.FindByIdeaIDFunc != nil {
		return m.FindByIdeaIDFunc(ctx, ideaID)
	}
	return nil, nil
}

func (m *MockCompetitorRepository) DeleteByOwner(ctx context.Context, researchID, userID uuid.UUID) error {
	if m.DeleteByOwnerFunc != nil {
		return m.DeleteByOwnerFunc(ctx, researchID, userID)
	}
	return nil
}

// MockNotificationRepository is a mock implementation of NotificationRepository
type MockNotificationRepository struct {
	CreateFunc        func(ctx context.Context, notification *domain.Notification) error
	FindByIDFunc      func(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	FindByUserIDFunc  func(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*domain.Notification, int64, error)
	CountUnreadFunc   func(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkReadFunc      func(ctx context.Context, notificationID, userID uuid.UUID) error
	MarkAllReadFunc   func(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteByUserFunc  func(ctx context.Context, notificationID, userID uuid.UUID) error
	DeleteExpiredFunc func(ctx context.Context, now time.Time) (int64, error)
}

func (m *MockNotificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, notification)
	}
	return nil
}

func (m *MockNotificationRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockNotificationRepository) FindByUserID(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) ([]*domain.Notification, int64, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID, unreadOnly, limit, offset)
	}
	return nil, 0, nil
}

func (m *MockNotificationRepository) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.CountUnreadFunc != nil {
		return m.CountUnreadFunc(ctx, userID)
	}
	return 0, nil
}

func (m *MockNotificationRepository) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, notificationID, userID)
	}
	return nil
}

func (m *MockNotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	if m.MarkAllReadFunc != nil {
		return m.MarkAllReadFunc(ctx, userID)
	}
	return 0, nil
}

func (m *MockNotificationRepository) DeleteByUser(ctx context.Context, notificationID, userID uuid.UUID) error {
	if m.DeleteByUserFunc != nil {
		return m.DeleteByUserFunc(ctx, notificationID, userID)
	}
	return nil
}

func (m *MockNotificationRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx, now)
	}
	return 0, nil
}

// MockGeminiClient is a mock implementation of client.GeminiClient
type MockGeminiClient struct {
	GenerateContentFunc func(ctx context.Context, prompt string) (*client.GenerateResult, error)
}

func (m *MockGeminiClient) GenerateContent(ctx context.Context, prompt string) (*client.GenerateResult, error) {
	if m.GenerateContentFunc != nil {
		return m.GenerateContentFunc(ctx, prompt)
	}
	return &client.GenerateResult{Text: "{}"}, nil
}

// MockScraperClient is a mock implementation of client.ScraperClient
type MockScraperClient struct {
	ScrapeFunc func(ctx context.Context, pageURL string) (*client.ScrapedPage, error)
}

func (m *MockScraperClient) Scrape(ctx context.Context, pageURL string) (*client.ScrapedPage, error) {
	if m.ScrapeFunc != nil {
		return m.ScrapeFunc(ctx, pageURL)
	}
	return &client.ScrapedPage{}, nil
}

// MockUserDirectory is a mock implementation of client.UserDirectory
type MockUserDirectory struct {
	LookupByEmailFunc func(ctx context.Context, email string) (uuid.UUID, error)
	GetEmailFunc      func(ctx context.Context, userID uuid.UUID) (string, error)
}

func (m *MockUserDirectory) LookupByEmail(ctx context.Context, email string) (uuid.UUID, error) {
	if m.LookupByEmailFunc != nil {
		return m.LookupByEmailFunc(ctx, email)
	}
	return uuid.New(), nil
}

func (m *MockUserDirectory) GetEmail(ctx context.Context, userID uuid.UUID) (string, error) {
	if m.GetEmailFunc != nil {
		return m.GetEmailFunc(ctx, userID)
	}
	return "user@example.com", nil
}

// MockMailClient is a mock implementation of client.MailClient
type MockMailClient struct {
	EnabledValue  bool
	SendAsyncFunc func(to []string, subject, htmlBody string)
}

func (m *MockMailClient) Enabled() bool {
	return m.EnabledValue
}

func (m *MockMailClient) SendAsync(to []string, subject, htmlBody string) {
	if m.SendAsyncFunc != nil {
		m.SendAsyncFunc(to, subject, htmlBody)
	}
}

// MockAccessService is a mock implementation of AccessService
type MockAccessService struct {
	CheckIdeaAccessFunc func(ctx context.Context, ideaID, userID uuid.UUID) (domain.ShareRole, *domain.Idea, error)
	RequireRoleFunc     func(ctx context.Context, ideaID, userID uuid.UUID, write bool) (*domain.Idea, error)
}

func (m *MockAccessService) CheckIdeaAccess(ctx context.Context, ideaID, userID uuid.UUID) (domain.ShareRole, *domain.Idea, error) {
	if m.CheckIdeaAccessFunc != nil {
		return m.CheckIdeaAccessFunc(ctx, ideaID, userID)
	}
	return domain.ShareRoleOwner, nil, nil
}

func (m *MockAccessService) RequireRole(ctx context.Context, ideaID, userID uuid.UUID, write bool) (*domain.Idea, error) {
	if m.RequireRoleFunc != nil {
		return m.RequireRoleFunc(ctx, ideaID, userID, write)
	}
	return nil, nil
}

// MockCommentNotifier is a mock implementation of CommentNotifier
type MockCommentNotifier struct {
	NotifyCommentCreatedFunc func(ctx context.Context, ideaOwnerID, authorID uuid.UUID, idea *domain.Idea, comment *domain.Comment)
}

func (m *MockCommentNotifier) NotifyCommentCreated(ctx context.Context, ideaOwnerID, authorID uuid.UUID, idea *domain.Idea, comment *domain.Comment) {
	if m.NotifyCommentCreatedFunc != nil {
		m.NotifyCommentCreatedFunc(ctx, ideaOwnerID, authorID, idea, comment)
	}
}

// MockShareNotifier is a mock implementation of ShareNotifier
type MockShareNotifier struct {
	NotifyIdeaSharedFunc func(ctx context.Context, recipientID, ownerID uuid.UUID, idea *domain.Idea, share *domain.IdeaShare)
}

func (m *MockShareNotifier) NotifyIdeaShared(ctx context.Context, recipientID, ownerID uuid.UUID, idea *domain.Idea, share *domain.IdeaShare) {
	if m.NotifyIdeaSharedFunc != nil {
		m.NotifyIdeaSharedFunc(ctx, recipientID, ownerID, idea, share)
	}
}

// MockAchievementNotifier is a mock implementation of AchievementNotifier
type MockAchievementNotifier struct {
	NotifyAchievementUnlockedFunc func(ctx context.Context, userID uuid.UUID, achievement *domain.Achievement)
}

func (m *MockAchievementNotifier) NotifyAchievementUnlocked(ctx context.Context, userID uuid.UUID, achievement *domain.Achievement) {
	if m.NotifyAchievementUnlockedFunc != nil {
		m.NotifyAchievementUnlockedFunc(ctx, userID, achievement)
	}
}

// MockAchievementChecker is a mock implementation of AchievementChecker
type MockAchievementChecker struct {
	CheckAndUnlockFunc func(ctx context.Context, userID uuid.UUID, stats *domain.UserStats, relatedIdeaID *uuid.UUID)
}

func (m *MockAchievementChecker) CheckAndUnlock(ctx context.Context, userID uuid.UUID, stats *domain.UserStats, relatedIdeaID *uuid.UUID) {
	if m.CheckAndUnlockFunc != nil {
		m.CheckAndUnlockFunc(ctx, userID, stats, relatedIdeaID)
	}
}

// MockActivityRecorder is a mock implementation of ActivityRecorder
type MockActivityRecorder struct {
	RecordIdeaCreatedFunc   func(ctx context.Context, userID, ideaID uuid.UUID)
	RecordIdeaCompletedFunc func(ctx context.Context, userID, ideaID uuid.UUID)
}

func (m *MockActivityRecorder) RecordIdeaCreated(ctx context.Context, userID, ideaID uuid.UUID) {
	if m.RecordIdeaCreatedFunc != nil {
		m.RecordIdeaCreatedFunc(ctx, userID, ideaID)
	}
}

func (m *MockActivityRecorder) RecordIdeaCompleted(ctx context.Context, userID, ideaID uuid.UUID) {
	if m.RecordIdeaCompletedFunc != nil {
		m.RecordIdeaCompletedFunc(ctx, userID, ideaID)
	}
}

// MockSuggestionRecorder is a mock implementation of SuggestionRecorder
type MockSuggestionRecorder struct {
	RecordSuggestionAppliedFunc func(ctx context.Context, userID uuid.UUID)
}

func (m *MockSuggestionRecorder) RecordSuggestionApplied(ctx context.Context, userID uuid.UUID) {
	if m.RecordSuggestionAppliedFunc != nil {
		m.RecordSuggestionAppliedFunc(ctx, userID)
	}
}

// MockCollaborationRecorder is a mock implementation of CollaborationRecorder
type MockCollaborationRecorder struct {
	RecordCollaborationFunc func(ctx context.Context, userID uuid.UUID)
}

func (m *MockCollaborationRecorder) RecordCollaboration(ctx context.Context, userID uuid.UUID) {
	if m.RecordCollaborationFunc != nil {
		m.RecordCollaborationFunc(ctx, userID)
	}
}

// MockNotificationPusher is a mock implementation of NotificationPusher
type MockNotificationPusher struct {
	SendToUserFunc func(userID uuid.UUID, payload []byte) bool
}

func (m *MockNotificationPusher) SendToUser(userID uuid.UUID, payload []byte) bool {
	if m.SendToUserFunc != nil {
		return m.SendToUserFunc(userID, payload)
	}
	return false
}
