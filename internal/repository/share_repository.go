package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"idea-copilot-api/internal/domain"
)

// ShareRepository defines the interface for idea share data access
type ShareRepository interface {
	Create(ctx context.Context, share *domain.IdeaShare) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.IdeaShare, error)
	FindByIdeaAndUser(ctx context.Context, ideaID, userID uuid.UUID) (*domain.IdeaShare, error)
	FindByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]*domain.IdeaShare, error)
	FindSharedWithUser(ctx context.Context, userID uuid.UUID) ([]*domain.IdeaShare, error)
	Update(ctx context.Context, share *domain.IdeaShare) error
	DeleteByOwner(ctx context.Context, shareID, ownerID uuid.UUID) error
	DeactivateExpired(ctx context.Context, now time.Time) (int64, error)
	CountActiveByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error)
}

// shareRepositoryImpl is the GORM implementation of ShareRepository
type shareRepositoryImpl struct {
	db *gorm.DB
}

// NewShareRepository creates a new instance of ShareRepository
func NewShareRepository(db *gorm.DB) ShareRepository {
	return &shareRepositoryImpl{db: db}
}

// Create creates a new share
func (r *shareRepositoryImpl) Create(ctx context.Context, share *domain.IdeaShare) error {
	if err := r.db.WithContext(ctx).Create(share).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a share by its ID
func (r *shareRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.IdeaShare, error) {
	var share domain.IdeaShare
	if err := r.db.WithContext(ctx).First(&share, id).Error; err != nil {
		return nil, err
	}
	return &share, nil
}

// FindByIdeaAndUser finds the share record granting userID access to ideaID.
// Inactive and expired rows are returned too; the caller decides effectiveness.
func (r *shareRepositoryImpl) FindByIdeaAndUser(ctx context.Context, ideaID, userID uuid.UUID) (*domain.IdeaShare, error) {
	var share domain.IdeaShare
	if err := r.db.WithContext(ctx).
		Where("idea_id = ? AND shared_with_id = ?", ideaID, userID).
		First(&share).Error; err != nil {
		return nil, err
	}
	return &share, nil
}

// FindByIdeaID lists all shares of an idea
func (r *shareRepositoryImpl) FindByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]*domain.IdeaShare, error) {
	var shares []*domain.IdeaShare
	if err := r.db.WithContext(ctx).
		Where("idea_id = ?", ideaID).
		Order("shared_at DESC").
		Find(&shares).Error; err != nil {
		return nil, err
	}
	return shares, nil
}

// FindSharedWithUser lists the active shares granted to a user, idea preloaded
func (r *shareRepositoryImpl) FindSharedWithUser(ctx context.Context, userID uuid.UUID) ([]*domain.IdeaShare, error) {
	var shares []*domain.IdeaShare
	if err := r.db.WithContext(ctx).
		Preload("Idea").
		Where("shared_with_id = ? AND is_active = ?", userID, true).
		Order("shared_at DESC").
		Find(&shares).Error; err != nil {
		return nil, err
	}
	return shares, nil
}

// Update saves all fields of a share
func (r *shareRepositoryImpl) Update(ctx context.Context, share *domain.IdeaShare) error {
	if err := r.db.WithContext(ctx).Save(share).Error; err != nil {
		return err
	}
	return nil
}

// DeleteByOwner revokes a share outright, owner-filtered in the WHERE clause
func (r *shareRepositoryImpl) DeleteByOwner(ctx context.Context, shareID, ownerID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND owner_id = ?", shareID, ownerID).
		Delete(&domain.IdeaShare{})

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeactivateExpired flips is_active off for every share past its expiry.
// Access checks already ignore expired shares; this keeps the table tidy.
func (r *shareRepositoryImpl) DeactivateExpired(ctx context.Context, now time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.IdeaShare{}).
		Where("is_active = ? AND expires_at IS NOT NULL AND expires_at <= ?", true, now).
		Update("is_active", false)

	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// CountActiveByOwner counts the active shares a user has handed out
func (r *shareRepositoryImpl) CountActiveByOwner(ctx context.Context, ownerID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.IdeaShare{}).
		Where("owner_id = ? AND is_active = ?", ownerID, true).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
