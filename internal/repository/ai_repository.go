package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"idea-copilot-api/internal/domain"
)

// AIRepository defines the interface for AI suggestion and query log data access
type AIRepository interface {
	CreateSuggestion(ctx context.Context, suggestion *domain.AISuggestion) error
	FindSuggestionByID(ctx context.Context, id uuid.UUID) (*domain.AISuggestion, error)
	FindSuggestionsByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]*domain.AISuggestion, error)
	MarkSuggestionApplied(ctx context.Context, suggestionID, userID uuid.UUID) (*domain.AISuggestion, error)
	CreateQueryLog(ctx context.Context, log *domain.AIQueryLog) error
	FindQueryLogsByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.AIQueryLog, error)
}

// aiRepositoryImpl is the GORM implementation of AIRepository
type aiRepositoryImpl struct {
	db *gorm.DB
}

// NewAIRepository creates a new instance of AIRepository
func NewAIRepository(db *gorm.DB) AIRepository {
	return &aiRepositoryImpl{db: db}
}

// CreateSuggestion stores a generated suggestion
func (r *aiRepositoryImpl) CreateSuggestion(ctx context.Context, suggestion *domain.AISuggestion) error {
	if err := r.db.WithContext(ctx).Create(suggestion).Error; err != nil {
		return err
	}
	return nil
}

// FindSuggestionByID finds a suggestion by its ID
func (r *aiRepositoryImpl) FindSuggestionByID(ctx context.Context, id uuid.UUID) (*domain.AISuggestion, error) {
	var suggestion domain.AISuggestion
	if err := r.db.WithContext(ctx).First(&suggestion, id).Error; err != nil {
		return nil, err
	}
	return &suggestion, nil
}

// FindSuggestionsByIdeaID lists suggestions for an idea, newest first
func (r *aiRepositoryImpl) FindSuggestionsByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]*domain.AISuggestion, error) {
	var suggestions []*domain.AISuggestion
	if err := r.db.WithContext(ctx).
		Where("idea_id = ?", ideaID).
		Order("created_at DESC").
		Find(&suggestions).Error; err != nil {
		return nil, err
	}
	return suggestions, nil
}

// MarkSuggestionApplied flags a suggestion as applied, user-filtered so only
// the requesting owner can apply it
func (r *aiRepositoryImpl) MarkSuggestionApplied(ctx context.Context, suggestionID, userID uuid.UUID) (*domain.AISuggestion, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.AISuggestion{}).
		Where("id = ? AND user_id = ? AND is_applied = ?", suggestionID, userID, false).
		Updates(map[string]interface{}{
			"is_applied": true,
			"applied_at": gorm.Expr("CURRENT_TIMESTAMP"),
		})

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var suggestion domain.AISuggestion
	if err := r.db.WithContext(ctx).First(&suggestion, suggestionID).Error; err != nil {
		return nil, err
	}
	return &suggestion, nil
}

// CreateQueryLog records one generative-AI call
func (r *aiRepositoryImpl) CreateQueryLog(ctx context.Context, log *domain.AIQueryLog) error {
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		return err
	}
	return nil
}

// FindQueryLogsByUserID lists a user's recent AI calls
func (r *aiRepositoryImpl) FindQueryLogsByUserID(ctx context.Context, userID uuid.UUID, limit int) ([]*domain.AIQueryLog, error) {
	if limit <= 0 {
		limit = 50
	}
	var logs []*domain.AIQueryLog
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
