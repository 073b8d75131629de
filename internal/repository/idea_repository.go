package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"idea-copilot-api/internal/domain"
	"idea-copilot-api/internal/dto"
)

// IdeaRepository defines the interface for idea data access
type IdeaRepository interface {
	Create(ctx context.Context, idea *domain.Idea) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	FindByIDWithChildren(ctx context.Context, id uuid.UUID) (*domain.Idea, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, filters *dto.IdeaFilters) ([]*domain.Idea, int64, error)
	Update(ctx context.Context, idea *domain.Idea) error
	DeleteByOwner(ctx context.Context, ideaID, userID uuid.UUID) error
	CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
	CountCompletedByUserID(ctx context.Context, userID uuid.UUID) (int64, error)
}

// ideaRepositoryImpl is the GORM implementation of IdeaRepository
type ideaRepositoryImpl struct {
	db *gorm.DB
}

// NewIdeaRepository creates a new instance of IdeaRepository
func NewIdeaRepository(db *gorm.DB) IdeaRepository {
	return &ideaRepositoryImpl{db: db}
}

// Create creates a new idea
func (r *ideaRepositoryImpl) Create(ctx context.Context, idea *domain.Idea) error {
	if err := r.db.WithContext(ctx).Create(idea).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds an idea by its ID
func (r *ideaRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	var idea domain.Idea
	if err := r.db.WithContext(ctx).First(&idea, id).Error; err != nil {
		return nil, err
	}
	return &idea, nil
}

// FindByIDWithChildren loads an idea together with its phases and features
func (r *ideaRepositoryImpl) FindByIDWithChildren(ctx context.Context, id uuid.UUID) (*domain.Idea, error) {
	var idea domain.Idea
	if err := r.db.WithContext(ctx).
		Preload("Phases", func(db *gorm.DB) *gorm.DB {
			return db.Order("order_index ASC")
		}).
		Preload("Features", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&idea, id).Error; err != nil {
		return nil, err
	}
	return &idea, nil
}

// FindByUserID lists a user's ideas with filtering, sorting and pagination
func (r *ideaRepositoryImpl) FindByUserID(ctx context.Context, userID uuid.UUID, filters *dto.IdeaFilters) ([]*domain.Idea, int64, error) {
	query := r.db.WithContext(ctx).
		Model(&domain.Idea{}).
		Where("user_id = ?", userID)

	if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.Priority != "" {
		query = query.Where("priority = ?", filters.Priority)
	}
	if filters.Status != "" {
		query = query.Where("status = ?", filters.Status)
	} else {
		query = query.Where("is_archived = ?", false)
	}
	if filters.Search != "" {
		pattern := "%" + filters.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := filters.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	order := sortBy + " DESC"
	if filters.SortOrder == "asc" {
		order = sortBy + " ASC"
	}

	var ideas []*domain.Idea
	if err := query.
		Order(order).
		Limit(filters.Limit).
		Offset(filters.Offset).
		Find(&ideas).Error; err != nil {
		return nil, 0, err
	}
	return ideas, total, nil
}

// Update saves all fields of an idea
func (r *ideaRepositoryImpl) Update(ctx context.Context, idea *domain.Idea) error {
	if err := r.db.WithContext(ctx).Save(idea).Error; err != nil {
		return err
	}
	return nil
}

// DeleteByOwner deletes an idea only when the caller owns it
func (r *ideaRepositoryImpl) DeleteByOwner(ctx context.Context, ideaID, userID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", ideaID, userID).
		Delete(&domain.Idea{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByUserID counts all ideas a user has created
func (r *ideaRepositoryImpl) CountByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Idea{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountCompletedByUserID counts a user's completed ideas
func (r *ideaRepositoryImpl) CountCompletedByUserID(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Idea{}).
		Where("user_id = ? AND status = ?", userID, domain.IdeaStatusCompleted).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
