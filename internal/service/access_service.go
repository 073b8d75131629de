package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"idea-copilot-api/internal/domain"
	"idea-copilot-api/internal/repository"
	"idea-copilot-api/internal/response"
)

// AccessService resolves the role a user holds on an idea.
// Every idea-scoped operation goes through here before touching data.
type AccessService interface {
	CheckIdeaAccess(ctx context.Context, ideaID, userID uuid.UUID) (domain.ShareRole, *domain.Idea, error)
	RequireRole(ctx context.Context, ideaID, userID uuid.UUID, write bool) (*domain.Idea, error)
}

// accessServiceImpl is the implementation of AccessService
type accessServiceImpl struct {
	ideaRepo  repository.IdeaRepository
	shareRepo repository.ShareRepository
	logger    *zap.Logger
}

// NewAccessService creates a new instance of AccessService
func NewAccessService(
	ideaRepo repository.IdeaRepository,
	shareRepo repository.ShareRepository,
	logger *zap.Logger,
) AccessService {
	return &accessServiceImpl{
		ideaRepo:  ideaRepo,
		shareRepo: shareRepo,
		logger:    logger,
	}
}

// CheckIdeaAccess resolves the caller's role on an idea.
// Owner wins before any share lookup. A share that is inactive or past its
// expiry grants nothing. Only a confirmed absence of a share resolves to no
// access; store faults surface as internal errors so the caller can tell a
// denial apart from an outage.
func (s *accessServiceImpl) CheckIdeaAccess(ctx context.Context, ideaID, userID uuid.UUID) (domain.ShareRole, *domain.Idea, error) {
	idea, err := s.ideaRepo.FindByID(ctx, ideaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShareRoleNone, nil, response.NewNotFoundError("Idea not found")
		}
		return domain.ShareRoleNone, nil, response.NewAppError(response.ErrCodeInternal, "Failed to load idea", err.Error())
	}

	if idea.UserID == userID {
		return domain.ShareRoleOwner, idea, nil
	}

	share, err := s.shareRepo.FindByIdeaAndUser(ctx, ideaID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ShareRoleNone, idea, nil
		}
		s.logger.Error("share lookup failed",
			zap.String("idea_id", ideaID.String()),
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return domain.ShareRoleNone, nil, response.NewAppError(response.ErrCodeInternal, "Failed to check idea access", err.Error())
	}

	if !share.IsEffective(time.Now()) {
		return domain.ShareRoleNone, idea, nil
	}
	return share.Role, idea, nil
}

// RequireRole checks access and rejects callers below the needed level.
// write=false admits any role including viewer; write=true needs owner or editor.
func (s *accessServiceImpl) RequireRole(ctx context.Context, ideaID, userID uuid.UUID, write bool) (*domain.Idea, error) {
	role, idea, err := s.CheckIdeaAccess(ctx, ideaID, userID)
	if err != nil {
		return nil, err
	}
	if role == domain.ShareRoleNone {
		return nil, response.NewForbiddenError("You do not have access to this idea")
	}
	if write && !role.CanWrite() {
		return nil, response.NewForbiddenError("You do not have write access to this idea")
	}
	return idea, nil
}
