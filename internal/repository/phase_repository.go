package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"idea-copilot-api/internal/domain"
)

// PhaseRepository defines the interface for phase data access
type PhaseRepository interface {
	Create(ctx context.Context, phase *domain.Phase) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Phase, error)
	FindByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]*domain.Phase, error)
	Update(ctx context.Context, phase *domain.Phase) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByIdeaID(ctx context.Context, ideaID uuid.UUID) (int64, error)
	CountCompletedByIdeaID(ctx context.Context, ideaID uuid.UUID) (int64, error)
}

type phaseRepositoryImpl struct {
	db *gorm.DB
}

// NewPhaseRepository creates a new instance of PhaseRepository
func NewPhaseRepository(db *gorm.DB) PhaseRepository {
	return &phaseRepositoryImpl{db: db}
}

func (r *phaseRepositoryImpl) Create(ctx context.Context, phase *domain.Phase) error {
	if err := r.db.WithContext(ctx).Create(phase).Error; err != nil {
		return err
	}
	return nil
}

func (r *phaseRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Phase, error) {
	var phase domain.Phase
	if err := r.db.WithContext(ctx).First(&phase, id).Error; err != nil {
		return nil, err
	}
	return &phase, nil
}

func (r *phaseRepositoryImpl) FindByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]*domain.Phase, error) {
	var phases []*domain.Phase
	if err := r.db.WithContext(ctx).
		Where("idea_id = ?", ideaID).
		Order("order_index ASC").
		Find(&phases).Error; err != nil {
		return nil, err
	}
	return phases, nil
}

func (r *phaseRepositoryImpl) Update(ctx context.Context, phase *domain.Phase) error {
	if err := r.db.WithContext(ctx).Save(phase).Error; err != nil {
		return err
	}
	return nil
}

func (r *phaseRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&domain.Phase{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *phaseRepositoryImpl) CountByIdeaID(ctx context.Context, ideaID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Phase{}).
		Where("idea_id = ?", ideaID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *phaseRepositoryImpl) CountCompletedByIdeaID(ctx context.Context, ideaID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Phase{}).
		Where("idea_id = ? AND is_completed = ?", ideaID, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
