package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"idea-copilot-api/internal/domain"
)

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error)
	FindByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]*domain.Comment, error)
	FindByFeatureID(ctx context.Context, featureID uuid.UUID) ([]*domain.Comment, error)
	UpdateContentByAuthor(ctx context.Context, commentID, authorID uuid.UUID, content string) (*domain.Comment, error)
	SoftDeleteByAuthor(ctx context.Context, commentID, authorID uuid.UUID) error
	CountByIdeaID(ctx context.Context, ideaID uuid.UUID) (int64, error)
}

// commentRepositoryImpl is the GORM implementation of CommentRepository
type commentRepositoryImpl struct {
	db *gorm.DB
}

// NewCommentRepository creates a new instance of CommentRepository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepositoryImpl{db: db}
}

// Create creates a new comment
func (r *commentRepositoryImpl) Create(ctx context.Context, comment *domain.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds a comment by its ID
func (r *commentRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Comment, error) {
	var comment domain.Comment
	if err := r.db.WithContext(ctx).First(&comment, id).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// FindByIdeaID returns every comment on an idea, oldest first.
// The stable ordering (created_at, then id) is what the thread builder relies on.
func (r *commentRepositoryImpl) FindByIdeaID(ctx context.Context, ideaID uuid.UUID) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := r.db.WithContext(ctx).
		Where("idea_id = ?", ideaID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// FindByFeatureID returns every comment on a feature, oldest first
func (r *commentRepositoryImpl) FindByFeatureID(ctx context.Context, featureID uuid.UUID) ([]*domain.Comment, error) {
	var comments []*domain.Comment
	if err := r.db.WithContext(ctx).
		Where("feature_id = ?", featureID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// UpdateContentByAuthor updates comment content with the author filter in the
// WHERE clause, so a non-author update is indistinguishable from a missing row
func (r *commentRepositoryImpl) UpdateContentByAuthor(ctx context.Context, commentID, authorID uuid.UUID, content string) (*domain.Comment, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("id = ? AND author_id = ? AND content != ?", commentID, authorID, domain.DeletedContentSentinel).
		Update("content", content)

	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var comment domain.Comment
	if err := r.db.WithContext(ctx).First(&comment, commentID).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

// SoftDeleteByAuthor replaces the content with the deleted sentinel.
// The row stays in place so replies keep their parent.
func (r *commentRepositoryImpl) SoftDeleteByAuthor(ctx context.Context, commentID, authorID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("id = ? AND author_id = ?", commentID, authorID).
		Update("content", domain.DeletedContentSentinel)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByIdeaID counts all comments on an idea, deleted ones included
func (r *commentRepositoryImpl) CountByIdeaID(ctx context.Context, ideaID uuid.UUID) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Comment{}).
		Where("idea_id = ?", ideaID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
