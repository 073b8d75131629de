package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"idea-copilot-api/internal/client"
	"idea-copilot-api/internal/domain"
	"idea-copilot-api/internal/dto"
	"idea-copilot-api/internal/metrics"
	"idea-copilot-api/internal/repository"
	"idea-copilot-api/internal/response"
)

// unreadCountTTL is how long the cached unread count stays valid
const unreadCountTTL = 30 * time.Second

// NotificationPusher delivers a payload to a user's live websocket
// connections. Returns false when the user has none open.
type NotificationPusher interface {
	SendToUser(userID uuid.UUID, payload []byte) bool
}

// motivationMessages maps the message_type variants to their content
var motivationMessages = map[string]struct {
	Title   string
	Message string
}{
	"encouragement": {
		Title:   "Keep Going! 💪",
		Message: "You're doing great! Your ideas are valuable. Keep building and creating!",
	},
	"reminder": {
		Title:   "We Miss You! 👋",
		Message: "It's been a while since your last idea. Got something new brewing? Come share it!",
	},
	"streak": {
		Title:   "Maintain Your Streak! 🔥",
		Message: "You're on a roll! Don't break your streak. Add an update to your ideas today!",
	},
}

// NotificationService defines the interface for notification business logic
type NotificationService interface {
	CreateNotification(ctx context.Context, userID uuid.UUID, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error)
	ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) (*dto.NotificationListResponse, error)
	GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteNotification(ctx context.Context, notificationID, userID uuid.UUID) error
	SendMotivation(ctx context.Context, userID uuid.UUID, messageType string) (*dto.NotificationResponse, error)

	// cross-service hooks
	NotifyCommentCreated(ctx context.Context, ideaOwnerID, authorID uuid.UUID, idea *domain.Idea, comment *domain.Comment)
	NotifyIdeaShared(ctx context.Context, recipientID, ownerID uuid.UUID, idea *domain.Idea, share *domain.IdeaShare)
	NotifyAchievementUnlocked(ctx context.Context, userID uuid.UUID, achievement *domain.Achievement)
}

// notificationServiceImpl is the implementation of NotificationService
type notificationServiceImpl struct {
	notificationRepo repository.NotificationRepository
	redisClient      *redis.Client
	mail             client.MailClient
	users            client.UserDirectory
	pusher           NotificationPusher
	metrics          *metrics.Metrics
	logger           *zap.Logger
}

// NewNotificationService creates a new instance of NotificationService.
// redisClient and pusher may be nil; caching and websocket push degrade to
// no-ops in that case.
func NewNotificationService(
	notificationRepo repository.NotificationRepository,
	redisClient *redis.Client,
	mail client.MailClient,
	users client.UserDirectory,
	pusher NotificationPusher,
	m *metrics.Metrics,
	logger *zap.Logger,
) NotificationService {
	return &notificationServiceImpl{
		notificationRepo: notificationRepo,
		redisClient:      redisClient,
		mail:             mail,
		users:            users,
		pusher:           pusher,
		metrics:          m,
		logger:           logger,
	}
}

// CreateNotification stores a notification for the calling user and pushes it
// to their open websocket connections
func (s *notificationServiceImpl) CreateNotification(ctx context.Context, userID uuid.UUID, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	priority := domain.NotificationPriorityNormal
	if req.Priority != nil {
		priority = *req.Priority
	}

	notification := &domain.Notification{
		UserID:            userID,
		Type:              req.Type,
		Title:             req.Title,
		Message:           req.Message,
		RelatedIdeaID:     req.RelatedIdeaID,
		RelatedEntityType: req.RelatedEntityType,
		RelatedEntityID:   req.RelatedEntityID,
		ActionURL:         req.ActionURL,
		Priority:          priority,
		ExpiresAt:         req.ExpiresAt,
	}
	if err := s.deliver(ctx, notification); err != nil {
		return nil, err
	}
	return toNotificationResponse(notification), nil
}

// ListNotifications returns a page of the user's notifications, newest first
func (s *notificationServiceImpl) ListNotifications(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit, offset int) (*dto.NotificationListResponse, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	notifications, total, err := s.notificationRepo.FindByUserID(ctx, userID, unreadOnly, limit, offset)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list notifications", err.Error())
	}

	unreadCount, err := s.GetUnreadCount(ctx, userID)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		items = append(items, toNotificationResponse(n))
	}
	return &dto.NotificationListResponse{
		Notifications: items,
		Total:         total,
		UnreadCount:   unreadCount,
	}, nil
}

// GetUnreadCount returns the unread count, served from redis when the cache
// is warm
func (s *notificationServiceImpl) GetUnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	cacheKey := unreadCountKey(userID)
	if s.redisClient != nil {
		if cached, err := s.redisClient.Get(ctx, cacheKey).Result(); err == nil {
			if count, err := strconv.ParseInt(cached, 10, 64); err == nil {
				return count, nil
			}
		}
	}

	count, err := s.notificationRepo.CountUnread(ctx, userID)
	if err != nil {
		return 0, response.NewAppError(response.ErrCodeInternal, "Failed to count notifications", err.Error())
	}

	if s.redisClient != nil {
		if err := s.redisClient.Set(ctx, cacheKey, count, unreadCountTTL).Err(); err != nil {
			s.logger.Warn("failed to cache unread count", zap.Error(err))
		}
	}
	return count, nil
}

// MarkRead marks one notification read
func (s *notificationServiceImpl) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	if err := s.notificationRepo.MarkRead(ctx, notificationID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Notification not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to mark notification as read", err.Error())
	}
	s.invalidateUnreadCount(ctx, userID)
	return nil
}

// MarkAllRead marks every unread notification of the user read
func (s *notificationServiceImpl) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	updated, err := s.notificationRepo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, response.NewAppError(response.ErrCodeInternal, "Failed to mark notifications as read", err.Error())
	}
	s.invalidateUnreadCount(ctx, userID)
	return updated, nil
}

// DeleteNotification removes one notification owned by the user
func (s *notificationServiceImpl) DeleteNotification(ctx context.Context, notificationID, userID uuid.UUID) error {
	if err := s.notificationRepo.DeleteByUser(ctx, notificationID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Notification not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete notification", err.Error())
	}
	s.invalidateUnreadCount(ctx, userID)
	return nil
}

// SendMotivation creates a motivational notification for the user and emails
// it when SMTP is configured
func (s *notificationServiceImpl) SendMotivation(ctx context.Context, userID uuid.UUID, messageType string) (*dto.NotificationResponse, error) {
	content, ok := motivationMessages[messageType]
	if !ok {
		content = motivationMessages["encouragement"]
	}

	notification := &domain.Notification{
		UserID:   userID,
		Type:     "motivation",
		Title:    content.Title,
		Message:  content.Message,
		Priority: domain.NotificationPriorityNormal,
	}
	if err := s.deliver(ctx, notification); err != nil {
		return nil, err
	}

	s.sendEmail(ctx, userID, content.Title, "<p>"+content.Message+"</p>")
	return toNotificationResponse(notification), nil
}

// NotifyCommentCreated tells the idea owner about a new comment on their idea
func (s *notificationServiceImpl) NotifyCommentCreated(ctx context.Context, ideaOwnerID, authorID uuid.UUID, idea *domain.Idea, comment *domain.Comment) {
	entityType := "comment"
	actionURL := fmt.Sprintf("/ideas/%s", idea.ID)
	notification := &domain.Notification{
		UserID:            ideaOwnerID,
		Type:              "comment",
		Title:             "New comment on your idea",
		Message:           fmt.Sprintf("Someone commented on \"%s\"", idea.Title),
		RelatedIdeaID:     &idea.ID,
		RelatedEntityType: &entityType,
		RelatedEntityID:   &comment.ID,
		ActionURL:         &actionURL,
		Priority:          domain.NotificationPriorityNormal,
	}
	if err := s.deliver(ctx, notification); err != nil {
		s.logger.Warn("failed to deliver comment notification",
			zap.String("idea_id", idea.ID.String()),
			zap.Error(err))
	}
}

// NotifyIdeaShared tells the recipient an idea was shared with them, in-app
// plus email
func (s *notificationServiceImpl) NotifyIdeaShared(ctx context.Context, recipientID, ownerID uuid.UUID, idea *domain.Idea, share *domain.IdeaShare) {
	entityType := "share"
	actionURL := fmt.Sprintf("/ideas/%s", idea.ID)
	notification := &domain.Notification{
		UserID:            recipientID,
		Type:              "share",
		Title:             "An idea was shared with you",
		Message:           fmt.Sprintf("You now have %s access to \"%s\"", share.Role, idea.Title),
		RelatedIdeaID:     &idea.ID,
		RelatedEntityType: &entityType,
		RelatedEntityID:   &share.ID,
		ActionURL:         &actionURL,
		Priority:          domain.NotificationPriorityNormal,
	}
	if err := s.deliver(ctx, notification); err != nil {
		s.logger.Warn("failed to deliver share notification",
			zap.String("idea_id", idea.ID.String()),
			zap.Error(err))
		return
	}

	body := fmt.Sprintf("<p>An idea titled <strong>%s</strong> was shared with you (%s access).</p>", idea.Title, share.Role)
	s.sendEmail(ctx, recipientID, "An idea was shared with you", body)
}

// NotifyAchievementUnlocked tells the user about a freshly unlocked
// achievement
func (s *notificationServiceImpl) NotifyAchievementUnlocked(ctx context.Context, userID uuid.UUID, achievement *domain.Achievement) {
	entityType := "achievement"
	priority := domain.NotificationPriorityHigh
	title := achievement.Title
	if achievement.Icon != nil {
		title = *achievement.Icon + " " + title
	}
	notification := &domain.Notification{
		UserID:            userID,
		Type:              "achievement",
		Title:             "Achievement unlocked: " + title,
		Message:           fmt.Sprintf("%s (+%d XP)", achievement.Description, achievement.XPAwarded),
		RelatedIdeaID:     achievement.RelatedIdeaID,
		RelatedEntityType: &entityType,
		RelatedEntityID:   &achievement.ID,
		Priority:          priority,
	}
	if err := s.deliver(ctx, notification); err != nil {
		s.logger.Warn("failed to deliver achievement notification",
			zap.String("achievement_type", achievement.AchievementType),
			zap.Error(err))
	}
}

// deliver stores the row, invalidates the unread cache and pushes the
// notification over websocket
func (s *notificationServiceImpl) deliver(ctx context.Context, notification *domain.Notification) error {
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		if s.metrics != nil {
			s.metrics.IncrementNotificationDelivery("in_app", "error")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to create notification", err.Error())
	}
	if s.metrics != nil {
		s.metrics.IncrementNotificationDelivery("in_app", "success")
	}
	s.invalidateUnreadCount(ctx, notification.UserID)

	if s.pusher != nil {
		payload, err := json.Marshal(map[string]interface{}{
			"type":         "notification",
			"notification": toNotificationResponse(notification),
		})
		if err == nil {
			delivered := s.pusher.SendToUser(notification.UserID, payload)
			if s.metrics != nil {
				status := "skipped"
				if delivered {
					status = "success"
				}
				s.metrics.IncrementNotificationDelivery("websocket", status)
			}
		}
	}
	return nil
}

// sendEmail resolves the recipient address and fires the email. Failures are
// logged, never returned.
func (s *notificationServiceImpl) sendEmail(ctx context.Context, userID uuid.UUID, subject, htmlBody string) {
	if s.mail == nil || !s.mail.Enabled() {
		return
	}
	email, err := s.users.GetEmail(ctx, userID)
	if err != nil {
		s.logger.Warn("failed to resolve email for notification",
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return
	}
	s.mail.SendAsync([]string{email}, subject, htmlBody)
}

func (s *notificationServiceImpl) invalidateUnreadCount(ctx context.Context, userID uuid.UUID) {
	if s.redisClient == nil {
		return
	}
	if err := s.redisClient.Del(ctx, unreadCountKey(userID)).Err(); err != nil {
		s.logger.Warn("failed to invalidate unread count cache", zap.Error(err))
	}
}

func unreadCountKey(userID uuid.UUID) string {
	return "notifications:unread:" + userID.String()
}

func toNotificationResponse(n *domain.Notification) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:                n.ID,
		UserID:            n.UserID,
		Type:              n.Type,
		Title:             n.Title,
		Message:           n.Message,
		RelatedIdeaID:     n.RelatedIdeaID,
		RelatedEntityType: n.RelatedEntityType,
		RelatedEntityID:   n.RelatedEntityID,
		ActionURL:         n.ActionURL,
		IsRead:            n.IsRead,
		ReadAt:            n.ReadAt,
		Priority:          n.Priority,
		ExpiresAt:         n.ExpiresAt,
		CreatedAt:         n.CreatedAt,
	}
}
