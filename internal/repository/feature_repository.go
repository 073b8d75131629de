package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"idea-copilot-api/internal/domain"
)

// FeatureRepository defines the interface for feature data access
type FeatureRepository interface {
	Create(ctx context.Context, feature *domain.Feature) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Feature, error)
	FindByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]*domain.Feature, error)
	FindByPhaseID(ctx context.Context, phaseID uuid.UUID) ([]*domain.Feature, error)
	Update(ctx context.Context, feature *domain.Feature) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type featureRepositoryImpl struct {
	db *gorm.DB
}

// NewFeatureRepository creates a new instance of FeatureRepository
func NewFeatureRepository(db *gorm.DB) FeatureRepository {
	return &featureRepositoryImpl{db: db}
}

func (r *featureRepositoryImpl) Create(ctx context.Context, feature *domain.Feature) error {
	if err := r.db.WithContext(ctx).Create(feature).Error; err != nil {
		return err
	}
	return nil
}

func (r *featureRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Feature, error) {
	var feature domain.Feature
	if err := r.db.WithContext(ctx).First(&feature, id).Error; err != nil {
		return nil, err
	}
	return &feature, nil
}

func (r *featureRepositoryImpl) FindByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]*domain.Feature, error) {
	var features []*domain.Feature
	if err := r.db.WithContext(ctx).
		Where("idea_id = ?", ideaID).
		Order("created_at ASC").
		Find(&features).Error; err != nil {
		return nil, err
	}
	return features, nil
}

func (r *featureRepositoryImpl) FindByPhaseID(ctx context.Context, phaseID uuid.UUID) ([]*domain.Feature, error) {
	var features []*domain.Feature
	if err := r.db.WithContext(ctx).
		Where("phase_id = ?", phaseID).
		Order("order_index ASC, created_at ASC").
		Find(&features).Error; err != nil {
		return nil, err
	}
	return features, nil
}

func (r *featureRepositoryImpl) Update(ctx context.Context, feature *domain.Feature) error {
	if err := r.db.WithContext(ctx).Save(feature).Error; err != nil {
		return err
	}
	return nil
}

func (r *featureRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Feature{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
