package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"idea-copilot-api/internal/domain"
)

// StatsRepository defines the interface for user stats data access
type StatsRepository interface {
	GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error)
	Update(ctx context.Context, stats *domain.UserStats) error
}

// AchievementRepository defines the interface for achievement data access
type AchievementRepository interface {
	Create(ctx context.Context, achievement *domain.Achievement) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Achievement, error)
	ExistsByType(ctx context.Context, userID uuid.UUID, achievementType string) (bool, error)
}

type statsRepositoryImpl struct {
	db *gorm.DB
}

// NewStatsRepository creates a new instance of StatsRepository
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepositoryImpl{db: db}
}

// GetOrCreate returns the stats row for a user, creating a zeroed one on first touch
func (r *statsRepositoryImpl) GetOrCreate(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	var stats domain.UserStats
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&stats).Error
	if err == nil {
		return &stats, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	stats = domain.UserStats{
		UserID:       userID,
		CurrentLevel: 1,
	}
	if err := r.db.WithContext(ctx).Create(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// FindByUserID finds the stats row for a user
func (r *statsRepositoryImpl) FindByUserID(ctx context.Context, userID uuid.UUID) (*domain.UserStats, error) {
	var stats domain.UserStats
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&stats).Error; err != nil {
		return nil, err
	}
	return &stats, nil
}

// Update saves all fields of a stats row
func (r *statsRepositoryImpl) Update(ctx context.Context, stats *domain.UserStats) error {
	if err := r.db.WithContext(ctx).Save(stats).Error; err != nil {
		return err
	}
	return nil
}

type achievementRepositoryImpl struct {
	db *gorm.DB
}

// NewAchievementRepository creates a new instance of AchievementRepository
func NewAchievementRepository(db *gorm.DB) AchievementRepository {
	return &achievementRepositoryImpl{db: db}
}

// Create records an unlocked achievement
func (r *achievementRepositoryImpl) Create(ctx context.Context, achievement *domain.Achievement) error {
	if err := r.db.WithContext(ctx).Create(achievement).Error; err != nil {
		return err
	}
	return nil
}

// FindByUserID lists a user's achievements, newest first
func (r *achievementRepositoryImpl) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*domain.Achievement, error) {
	var achievements []*domain.Achievement
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("unlocked_at DESC").
		Find(&achievements).Error; err != nil {
		return nil, err
	}
	return achievements, nil
}

// ExistsByType reports whether the user already unlocked the given achievement
func (r *achievementRepositoryImpl) ExistsByType(ctx context.Context, userID uuid.UUID, achievementType string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Achievement{}).
		Where("user_id = ? AND achievement_type = ?", userID, achievementType).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
