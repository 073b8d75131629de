package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"idea-copilot-api/internal/domain"
)

// CompetitorRepository defines the interface for competitor research data access
type CompetitorRepository interface {
	Create(ctx context.Context, research *domain.CompetitorResearch) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.CompetitorResearch, error)
	FindByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]*domain.CompetitorResearch, error)
	DeleteByOwner(ctx context.Context, researchID, userID uuid.UUID) error
}

type competitorRepositoryImpl struct {
	db *gorm.DB
}

// NewCompetitorRepository creates a new instance of CompetitorRepository
func NewCompetitorRepository(db *gorm.DB) CompetitorRepository {
	return &competitorRepositoryImpl{db: db}
}

func (r *competitorRepositoryImpl) Create(ctx context.Context, research *domain.CompetitorResearch) error {
	if err := r.db.WithContext(ctx).Create(research).Error; err != nil {
		return err
	}
	return nil
}

func (r *competitorRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.CompetitorResearch, error) {
	var research domain.CompetitorResearch
	if err := r.db.WithContext(ctx).First(&research, id).Error; err != nil {
		return nil, err
	}
	return &research, nil
}

func (r *competitorRepositoryImpl) FindByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]*domain.CompetitorResearch, error) {
	var research []*domain.CompetitorResearch
	if err := r.db.WithContext(ctx).
		Where("idea_id = ?", ideaID).
		Order("research_date DESC").
		Find(&research).Error; err != nil {
		return nil, err
	}
	return research, nil
}

func (r *competitorRepositoryImpl) DeleteByOwner(ctx context.Context, researchID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", researchID, userID).
		Delete(&domain.CompetitorResearch{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
