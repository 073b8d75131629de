package job

import (
	"context"
	"time"

	"go.uber.org/zap"

	"idea-copilot-api/internal/repository"
)

// CleanupJob handles periodic cleanup of expired shares and notifications
type CleanupJob struct {
	shareRepo        repository.ShareRepository
	notificationRepo repository.NotificationRepository
	logger           *zap.Logger
}

// NewCleanupJob creates a new CleanupJob instance
func NewCleanupJob(
	shareRepo repository.ShareRepository,
	notificationRepo repository.NotificationRepository,
	logger *zap.Logger,
) *CleanupJob {
	return &CleanupJob{
		shareRepo:        shareRepo,
		notificationRepo: notificationRepo,
		logger:           logger,
	}
}

// DeactivateExpiredShares flips shares past their expiry to inactive so the
// access checks stop honoring them
func (j *CleanupJob) DeactivateExpiredShares() {
	ctx := context.Background()

	deactivated, err := j.shareRepo.DeactivateExpired(ctx, time.Now())
	if err != nil {
		j.logger.Error("Failed to deactivate expired shares",
			zap.Error(err),
		)
		return
	}

	if deactivated > 0 {
		j.logger.Info("Deactivated expired shares",
			zap.Int64("count", deactivated),
		)
	}
}

// PurgeExpiredNotifications removes notifications past their expiry
func (j *CleanupJob) PurgeExpiredNotifications() {
	ctx := context.Background()

	deleted, err := j.notificationRepo.DeleteExpired(ctx, time.Now())
	if err != nil {
		j.logger.Error("Failed to purge expired notifications",
			zap.Error(err),
		)
		return
	}

	if deleted > 0 {
		j.logger.Info("Purged expired notifications",
			zap.Int64("count", deleted),
		)
	}
}
