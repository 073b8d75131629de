package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"idea-copilot-api/internal/client"
	"idea-copilot-api/internal/domain"
	"idea-copilot-api/internal/dto"
	"idea-copilot-api/internal/repository"
	"idea-copilot-api/internal/response"
)

// ShareNotifier pushes a notification when an idea is shared with a user
type ShareNotifier interface {
	NotifyIdeaShared(ctx context.Context, recipientID, ownerID uuid.UUID, idea *domain.Idea, share *domain.IdeaShare)
}

// CollaborationRecorder receives gamification events from sharing
type CollaborationRecorder interface {
	RecordCollaboration(ctx context.Context, userID uuid.UUID)
}

// ShareService defines the interface for idea sharing business logic
type ShareService interface {
	CreateShare(ctx context.Context, ideaID, ownerID uuid.UUID, req *dto.CreateShareRequest) (*dto.ShareResponse, error)
	ListShares(ctx context.Context, ideaID, ownerID uuid.UUID) ([]*dto.ShareResponse, error)
	ListSharedWithMe(ctx context.Context, userID uuid.UUID) ([]*dto.IdeaResponse, error)
	UpdateShare(ctx context.Context, ideaID, shareID, ownerID uuid.UUID, req *dto.UpdateShareRequest) (*dto.ShareResponse, error)
	RevokeShare(ctx context.Context, ideaID, shareID, ownerID uuid.UUID) error
}

// shareServiceImpl is the implementation of ShareService
type shareServiceImpl struct {
	shareRepo repository.ShareRepository
	ideaRepo  repository.IdeaRepository
	users     client.UserDirectory
	notifier  ShareNotifier
	recorder  CollaborationRecorder
	logger    *zap.Logger
}

// NewShareService creates a new instance of ShareService
func NewShareService(
	shareRepo repository.ShareRepository,
	ideaRepo repository.IdeaRepository,
	users client.UserDirectory,
	notifier ShareNotifier,
	recorder CollaborationRecorder,
	logger *zap.Logger,
) ShareService {
	return &shareServiceImpl{
		shareRepo: shareRepo,
		ideaRepo:  ideaRepo,
		users:     users,
		notifier:  notifier,
		recorder:  recorder,
		logger:    logger,
	}
}

// CreateShare grants another user access to an idea. Owner only.
// The recipient is addressed by email and resolved through the user directory.
func (s *shareServiceImpl) CreateShare(ctx context.Context, ideaID, ownerID uuid.UUID, req *dto.CreateShareRequest) (*dto.ShareResponse, error) {
	idea, err := s.loadOwnedIdea(ctx, ideaID, ownerID)
	if err != nil {
		return nil, err
	}

	sharedWithID, err := s.users.LookupByEmail(ctx, req.SharedWithEmail)
	if err != nil {
		if errors.Is(err, client.ErrUserNotFound) {
			return nil, response.NewNotFoundError("No user with that email address")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to resolve user", err.Error())
	}
	if sharedWithID == ownerID {
		return nil, response.NewValidationError("You cannot share an idea with yourself")
	}

	if existing, err := s.shareRepo.FindByIdeaAndUser(ctx, ideaID, sharedWithID); err == nil && existing.IsActive {
		return nil, response.NewAppError(response.ErrCodeAlreadyExists, "Idea is already shared with this user", "")
	}

	role := domain.ShareRoleViewer
	if req.Role != "" {
		role = domain.ShareRole(req.Role)
	}
	share := &domain.IdeaShare{
		IdeaID:       ideaID,
		OwnerID:      ownerID,
		SharedWithID: sharedWithID,
		Role:         role,
		SharedAt:     time.Now(),
		ExpiresAt:    req.ExpiresAt,
		IsActive:     true,
	}
	if err := s.shareRepo.Create(ctx, share); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create share", err.Error())
	}

	if s.recorder != nil {
		s.recorder.RecordCollaboration(ctx, ownerID)
	}
	if s.notifier != nil {
		s.notifier.NotifyIdeaShared(ctx, sharedWithID, ownerID, idea, share)
	}

	s.logger.Info("idea shared",
		zap.String("idea_id", ideaID.String()),
		zap.String("shared_with", sharedWithID.String()),
		zap.String("role", string(role)))

	resp := toShareResponse(share)
	resp.SharedWithEmail = req.SharedWithEmail
	return resp, nil
}

// ListShares lists all shares of an idea. Owner only.
func (s *shareServiceImpl) ListShares(ctx context.Context, ideaID, ownerID uuid.UUID) ([]*dto.ShareResponse, error) {
	if _, err := s.loadOwnedIdea(ctx, ideaID, ownerID); err != nil {
		return nil, err
	}

	shares, err := s.shareRepo.FindByIdeaID(ctx, ideaID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list shares", err.Error())
	}
	items := make([]*dto.ShareResponse, 0, len(shares))
	for _, share := range shares {
		items = append(items, toShareResponse(share))
	}
	return items, nil
}

// ListSharedWithMe lists ideas other users have shared with the caller.
// Shares past their expiry are filtered out even before the cleanup job runs.
func (s *shareServiceImpl) ListSharedWithMe(ctx context.Context, userID uuid.UUID) ([]*dto.IdeaResponse, error) {
	shares, err := s.shareRepo.FindSharedWithUser(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list shared ideas", err.Error())
	}

	now := time.Now()
	items := make([]*dto.IdeaResponse, 0, len(shares))
	for _, share := range shares {
		if !share.IsEffective(now) {
			continue
		}
		items = append(items, dto.ToIdeaResponse(&share.Idea))
	}
	return items, nil
}

// UpdateShare changes the role, expiry or active state of a share. Owner only.
func (s *shareServiceImpl) UpdateShare(ctx context.Context, ideaID, shareID, ownerID uuid.UUID, req *dto.UpdateShareRequest) (*dto.ShareResponse, error) {
	share, err := s.loadOwnedShare(ctx, ideaID, shareID, ownerID)
	if err != nil {
		return nil, err
	}

	if req.Role != nil {
		share.Role = domain.ShareRole(*req.Role)
	}
	if req.IsActive != nil {
		share.IsActive = *req.IsActive
	}
	if req.ExpiresAt != nil {
		share.ExpiresAt = req.ExpiresAt
	}
	if err := s.shareRepo.Update(ctx, share); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update share", err.Error())
	}
	return toShareResponse(share), nil
}

// RevokeShare removes a share outright. Owner only. Access drops the
// moment the row is gone.
func (s *shareServiceImpl) RevokeShare(ctx context.Context, ideaID, shareID, ownerID uuid.UUID) error {
	if _, err := s.loadOwnedShare(ctx, ideaID, shareID, ownerID); err != nil {
		return err
	}

	if err := s.shareRepo.DeleteByOwner(ctx, shareID, ownerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Share not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to revoke share", err.Error())
	}
	return nil
}

func (s *shareServiceImpl) loadOwnedIdea(ctx context.Context, ideaID, ownerID uuid.UUID) (*domain.Idea, error) {
	idea, err := s.ideaRepo.FindByID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Idea not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load idea", err.Error())
	}
	if idea.UserID != ownerID {
		return nil, response.NewForbiddenError("Only the owner can manage shares")
	}
	return idea, nil
}

func (s *shareServiceImpl) loadOwnedShare(ctx context.Context, ideaID, shareID, ownerID uuid.UUID) (*domain.IdeaShare, error) {
	if _, err := s.loadOwnedIdea(ctx, ideaID, ownerID); err != nil {
		return nil, err
	}
	share, err := s.shareRepo.FindByID(ctx, shareID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Share not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load share", err.Error())
	}
	if share.IdeaID != ideaID {
		return nil, response.NewNotFoundError("Share not found")
	}
	return share, nil
}

func toShareResponse(share *domain.IdeaShare) *dto.ShareResponse {
	return &dto.ShareResponse{
		ID:           share.ID,
		IdeaID:       share.IdeaID,
		OwnerID:      share.OwnerID,
		SharedWithID: share.SharedWithID,
		Role:         string(share.Role),
		SharedAt:     share.SharedAt,
		ExpiresAt:    share.ExpiresAt,
		IsActive:     share.IsActive,
	}
}
