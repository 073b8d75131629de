package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"idea-copilot-api/internal/domain"
	"idea-copilot-api/internal/dto"
	"idea-copilot-api/internal/metrics"
	"idea-copilot-api/internal/repository"
	"idea-copilot-api/internal/response"
)

// CommentNotifier pushes a notification when someone comments on another user's idea
type CommentNotifier interface {
	NotifyCommentCreated(ctx context.Context, ideaOwnerID, authorID uuid.UUID, idea *domain.Idea, comment *domain.Comment)
}

// CommentService defines the interface for threaded comment business logic
type CommentService interface {
	CreateIdeaComment(ctx context.Context, ideaID, authorID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	GetIdeaComments(ctx context.Context, ideaID, userID uuid.UUID, limit, offset int) (*dto.CommentListResponse, error)
	CreateFeatureComment(ctx context.Context, featureID, authorID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	GetFeatureComments(ctx context.Context, featureID, userID uuid.UUID, limit, offset int) (*dto.CommentListResponse, error)
	UpdateComment(ctx context.Context, commentID, authorID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error)
	DeleteComment(ctx context.Context, commentID, authorID uuid.UUID) error
}

// commentServiceImpl is the implementation of CommentService
type commentServiceImpl struct {
	commentRepo repository.CommentRepository
	featureRepo repository.FeatureRepository
	access      AccessService
	notifier    CommentNotifier
	metrics     *metrics.Metrics
	logger      *zap.Logger
}

// NewCommentService creates a new instance of CommentService
func NewCommentService(
	commentRepo repository.CommentRepository,
	featureRepo repository.FeatureRepository,
	access AccessService,
	notifier CommentNotifier,
	m *metrics.Metrics,
	logger *zap.Logger,
) CommentService {
	return &commentServiceImpl{
		commentRepo: commentRepo,
		featureRepo: featureRepo,
		access:      access,
		notifier:    notifier,
		metrics:     m,
		logger:      logger,
	}
}

// CreateIdeaComment creates a comment or reply on an idea.
// Viewers can read threads but commenting needs owner or editor.
func (s *commentServiceImpl) CreateIdeaComment(ctx context.Context, ideaID, authorID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	idea, err := s.access.RequireRole(ctx, ideaID, authorID, true)
	if err != nil {
		return nil, err
	}

	if req.ParentCommentID != nil {
		parent, err := s.commentRepo.FindByID(ctx, *req.ParentCommentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewNotFoundError("Parent comment not found")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load parent comment", err.Error())
		}
		if parent.IdeaID == nil || *parent.IdeaID != ideaID {
			return nil, response.NewValidationError("Parent comment belongs to a different thread")
		}
	}

	comment := &domain.Comment{
		AuthorID:        authorID,
		IdeaID:          &ideaID,
		ParentCommentID: req.ParentCommentID,
		Content:         req.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	s.metrics.IncrementCommentCreated()
	if s.notifier != nil && idea.UserID != authorID {
		s.notifier.NotifyCommentCreated(ctx, idea.UserID, authorID, idea, comment)
	}

	s.logger.Info("comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("idea_id", ideaID.String()))
	return toCommentResponse(comment), nil
}

// GetIdeaComments returns the paginated comment forest of an idea
func (s *commentServiceImpl) GetIdeaComments(ctx context.Context, ideaID, userID uuid.UUID, limit, offset int) (*dto.CommentListResponse, error) {
	if _, err := s.access.RequireRole(ctx, ideaID, userID, false); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindByIdeaID(ctx, ideaID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load comments", err.Error())
	}

	roots, total := BuildCommentForest(comments, limit, offset)
	return &dto.CommentListResponse{Comments: roots, Total: total}, nil
}

// CreateFeatureComment creates a comment or reply on a feature.
// Access is resolved against the feature's parent idea.
func (s *commentServiceImpl) CreateFeatureComment(ctx context.Context, featureID, authorID uuid.UUID, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	feature, err := s.featureRepo.FindByID(ctx, featureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Feature not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load feature", err.Error())
	}

	idea, err := s.access.RequireRole(ctx, feature.IdeaID, authorID, true)
	if err != nil {
		return nil, err
	}

	if req.ParentCommentID != nil {
		parent, err := s.commentRepo.FindByID(ctx, *req.ParentCommentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewNotFoundError("Parent comment not found")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load parent comment", err.Error())
		}
		if parent.FeatureID == nil || *parent.FeatureID != featureID {
			return nil, response.NewValidationError("Parent comment belongs to a different thread")
		}
	}

	comment := &domain.Comment{
		AuthorID:        authorID,
		FeatureID:       &featureID,
		ParentCommentID: req.ParentCommentID,
		Content:         req.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	s.metrics.IncrementCommentCreated()
	if s.notifier != nil && idea.UserID != authorID {
		s.notifier.NotifyCommentCreated(ctx, idea.UserID, authorID, idea, comment)
	}
	return toCommentResponse(comment), nil
}

// GetFeatureComments returns the paginated comment forest of a feature
func (s *commentServiceImpl) GetFeatureComments(ctx context.Context, featureID, userID uuid.UUID, limit, offset int) (*dto.CommentListResponse, error) {
	feature, err := s.featureRepo.FindByID(ctx, featureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Feature not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load feature", err.Error())
	}

	if _, err := s.access.RequireRole(ctx, feature.IdeaID, userID, false); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.FindByFeatureID(ctx, featureID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load comments", err.Error())
	}

	roots, total := BuildCommentForest(comments, limit, offset)
	return &dto.CommentListResponse{Comments: roots, Total: total}, nil
}

// UpdateComment rewrites a comment's content. Only the author can edit, and
// the author filter lives in the UPDATE itself, so editing someone else's
// comment looks exactly like editing a comment that does not exist.
func (s *commentServiceImpl) UpdateComment(ctx context.Context, commentID, authorID uuid.UUID, req *dto.UpdateCommentRequest) (*dto.CommentResponse, error) {
	comment, err := s.commentRepo.UpdateContentByAuthor(ctx, commentID, authorID, req.Content)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Comment not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update comment", err.Error())
	}
	return toCommentResponse(comment), nil
}

// DeleteComment soft-deletes a comment, keeping the row so replies survive
func (s *commentServiceImpl) DeleteComment(ctx context.Context, commentID, authorID uuid.UUID) error {
	if err := s.commentRepo.SoftDeleteByAuthor(ctx, commentID, authorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Comment not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete comment", err.Error())
	}
	return nil
}
