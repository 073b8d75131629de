package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"idea-copilot-api/internal/domain"
	"idea-copilot-api/internal/dto"
	"idea-copilot-api/internal/metrics"
	"idea-copilot-api/internal/repository"
	"idea-copilot-api/internal/response"
)

// ActivityRecorder receives gamification events from the idea lifecycle
type ActivityRecorder interface {
	RecordIdeaCreated(ctx context.Context, userID, ideaID uuid.UUID)
	RecordIdeaCompleted(ctx context.Context, userID, ideaID uuid.UUID)
}

// IdeaService defines the interface for idea business logic
type IdeaService interface {
	CreateIdea(ctx context.Context, userID uuid.UUID, req *dto.CreateIdeaRequest) (*dto.IdeaResponse, error)
	GetIdea(ctx context.Context, ideaID, userID uuid.UUID) (*dto.IdeaDetailResponse, error)
	ListIdeas(ctx context.Context, userID uuid.UUID, filters *dto.IdeaFilters) (*dto.PaginatedIdeaResponse, error)
	UpdateIdea(ctx context.Context, ideaID, userID uuid.UUID, req *dto.UpdateIdeaRequest) (*dto.IdeaResponse, error)
	DeleteIdea(ctx context.Context, ideaID, userID uuid.UUID) error

	CreateCategory(ctx context.Context, userID uuid.UUID, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	ListCategories(ctx context.Context, userID uuid.UUID) ([]*dto.CategoryResponse, error)
	UpdateCategory(ctx context.Context, categoryID, userID uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, categoryID, userID uuid.UUID) error
}

// ideaServiceImpl is the implementation of IdeaService
type ideaServiceImpl struct {
	ideaRepo     repository.IdeaRepository
	categoryRepo repository.CategoryRepository
	access       AccessService
	recorder     ActivityRecorder
	metrics      *metrics.Metrics
	logger       *zap.Logger
}

// NewIdeaService creates a new instance of IdeaService
func NewIdeaService(
	ideaRepo repository.IdeaRepository,
	categoryRepo repository.CategoryRepository,
	access AccessService,
	recorder ActivityRecorder,
	m *metrics.Metrics,
	logger *zap.Logger,
) IdeaService {
	return &ideaServiceImpl{
		ideaRepo:     ideaRepo,
		categoryRepo: categoryRepo,
		access:       access,
		recorder:     recorder,
		metrics:      m,
		logger:       logger,
	}
}

// overallScore folds the three 1-10 ratings into a single ranking value.
// Effort counts inverted so low-effort high-impact ideas float to the top.
func overallScore(effort, impact, interest *int) *float64 {
	if effort == nil || impact == nil || interest == nil {
		return nil
	}
	score := (float64(*impact) + float64(*interest) + float64(11-*effort)) / 3
	return &score
}

// CreateIdea captures a new idea for the calling user
func (s *ideaServiceImpl) CreateIdea(ctx context.Context, userID uuid.UUID, req *dto.CreateIdeaRequest) (*dto.IdeaResponse, error) {
	if req.CategoryID != nil {
		if err := s.verifyCategoryOwner(ctx, *req.CategoryID, userID); err != nil {
			return nil, err
		}
	}

	captureType := req.CaptureType
	if captureType == "" {
		captureType = "text"
	}
	priority := domain.PriorityMedium
	if req.Priority != nil {
		priority = domain.IdeaPriority(*req.Priority)
	}
	isPrivate := true
	if req.IsPrivate != nil {
		isPrivate = *req.IsPrivate
	}

	idea := &domain.Idea{
		UserID:             userID,
		Title:              req.Title,
		Description:        req.Description,
		CaptureType:        captureType,
		VoiceTranscription: req.VoiceTranscription,
		Tags:               dto.EncodeStringSlice(req.Tags),
		CategoryID:         req.CategoryID,
		Priority:           priority,
		Status:             domain.IdeaStatusNew,
		IsPrivate:          isPrivate,
		ReminderDate:       req.ReminderDate,
	}

	if err := s.ideaRepo.Create(ctx, idea); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create idea", err.Error())
	}

	s.metrics.IncrementIdeaCreated()
	if s.recorder != nil {
		s.recorder.RecordIdeaCreated(ctx, userID, idea.ID)
	}

	s.logger.Info("idea created",
		zap.String("idea_id", idea.ID.String()),
		zap.String("user_id", userID.String()))
	return dto.ToIdeaResponse(idea), nil
}

// GetIdea loads an idea with its phases and features. Any role may read.
func (s *ideaServiceImpl) GetIdea(ctx context.Context, ideaID, userID uuid.UUID) (*dto.IdeaDetailResponse, error) {
	if _, err := s.access.RequireRole(ctx, ideaID, userID, false); err != nil {
		return nil, err
	}

	idea, err := s.ideaRepo.FindByIDWithChildren(ctx, ideaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Idea not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load idea", err.Error())
	}

	phases := make([]*dto.PhaseResponse, 0, len(idea.Phases))
	for i := range idea.Phases {
		phases = append(phases, toPhaseResponse(&idea.Phases[i]))
	}
	features := make([]*dto.FeatureResponse, 0, len(idea.Features))
	for i := range idea.Features {
		features = append(features, toFeatureResponse(&idea.Features[i]))
	}

	return &dto.IdeaDetailResponse{
		Idea:     dto.ToIdeaResponse(idea),
		Phases:   phases,
		Features: features,
	}, nil
}

// ListIdeas returns the caller's own ideas, filtered and paginated
func (s *ideaServiceImpl) ListIdeas(ctx context.Context, userID uuid.UUID, filters *dto.IdeaFilters) (*dto.PaginatedIdeaResponse, error) {
	ideas, total, err := s.ideaRepo.FindByUserID(ctx, userID, filters)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list ideas", err.Error())
	}

	items := make([]*dto.IdeaResponse, 0, len(ideas))
	for _, idea := range ideas {
		items = append(items, dto.ToIdeaResponse(idea))
	}
	return &dto.PaginatedIdeaResponse{
		Ideas:  items,
		Total:  total,
		Limit:  filters.Limit,
		Offset: filters.Offset,
	}, nil
}

// UpdateIdea applies a partial update. Owner or editor required; archival
// and privacy changes stay owner-only.
func (s *ideaServiceImpl) UpdateIdea(ctx context.Context, ideaID, userID uuid.UUID, req *dto.UpdateIdeaRequest) (*dto.IdeaResponse, error) {
	role, idea, err := s.access.CheckIdeaAccess(ctx, ideaID, userID)
	if err != nil {
		return nil, err
	}
	if !role.CanWrite() {
		return nil, response.NewForbiddenError("You do not have write access to this idea")
	}
	if (req.IsPrivate != nil || req.IsArchived != nil) && role != domain.ShareRoleOwner {
		return nil, response.NewForbiddenError("Only the owner can change privacy or archive state")
	}

	if req.CategoryID != nil {
		if err := s.verifyCategoryOwner(ctx, *req.CategoryID, idea.UserID); err != nil {
			return nil, err
		}
		idea.CategoryID = req.CategoryID
	}

	if req.Title != nil {
		idea.Title = *req.Title
	}
	if req.Description != nil {
		idea.Description = *req.Description
	}
	if req.Tags != nil {
		idea.Tags = dto.EncodeStringSlice(req.Tags)
	}
	if req.Priority != nil {
		idea.Priority = domain.IdeaPriority(*req.Priority)
	}
	if req.EffortScore != nil {
		idea.EffortScore = req.EffortScore
	}
	if req.ImpactScore != nil {
		idea.ImpactScore = req.ImpactScore
	}
	if req.InterestScore != nil {
		idea.InterestScore = req.InterestScore
	}
	idea.OverallScore = overallScore(idea.EffortScore, idea.ImpactScore, idea.InterestScore)

	if req.ProgressPercentage != nil {
		idea.ProgressPercentage = *req.ProgressPercentage
	}
	if req.IsPrivate != nil {
		idea.IsPrivate = *req.IsPrivate
	}
	if req.ReminderDate != nil {
		idea.ReminderDate = req.ReminderDate
	}

	completedNow := false
	if req.Status != nil {
		newStatus := domain.IdeaStatus(*req.Status)
		if newStatus == domain.IdeaStatusCompleted && idea.Status != domain.IdeaStatusCompleted {
			completedNow = true
			idea.ProgressPercentage = 100
		}
		idea.Status = newStatus
	}
	if req.IsArchived != nil {
		idea.IsArchived = *req.IsArchived
		if *req.IsArchived {
			now := time.Now()
			idea.ArchivedAt = &now
			idea.Status = domain.IdeaStatusArchived
		} else {
			idea.ArchivedAt = nil
		}
	}

	if err := s.ideaRepo.Update(ctx, idea); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update idea", err.Error())
	}

	if completedNow && s.recorder != nil {
		s.recorder.RecordIdeaCompleted(ctx, idea.UserID, idea.ID)
	}
	return dto.ToIdeaResponse(idea), nil
}

// DeleteIdea removes an idea and everything cascaded under it. Owner only.
func (s *ideaServiceImpl) DeleteIdea(ctx context.Context, ideaID, userID uuid.UUID) error {
	if err := s.ideaRepo.DeleteByOwner(ctx, ideaID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Idea not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete idea", err.Error())
	}
	s.logger.Info("idea deleted", zap.String("idea_id", ideaID.String()))
	return nil
}

// CreateCategory creates a category owned by the calling user
func (s *ideaServiceImpl) CreateCategory(ctx context.Context, userID uuid.UUID, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	category := &domain.Category{
		UserID:      userID,
		Name:        req.Name,
		Color:       req.Color,
		Description: req.Description,
	}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create category", err.Error())
	}
	return toCategoryResponse(category), nil
}

// ListCategories lists the caller's categories
func (s *ideaServiceImpl) ListCategories(ctx context.Context, userID uuid.UUID) ([]*dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list categories", err.Error())
	}
	items := make([]*dto.CategoryResponse, 0, len(categories))
	for _, c := range categories {
		items = append(items, toCategoryResponse(c))
	}
	return items, nil
}

// UpdateCategory applies a partial category update. Owner only.
func (s *ideaServiceImpl) UpdateCategory(ctx context.Context, categoryID, userID uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Category not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load category", err.Error())
	}
	if category.UserID != userID {
		return nil, response.NewNotFoundError("Category not found")
	}

	if req.Name != nil {
		category.Name = *req.Name
	}
	if req.Color != nil {
		category.Color = req.Color
	}
	if req.Description != nil {
		category.Description = req.Description
	}
	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update category", err.Error())
	}
	return toCategoryResponse(category), nil
}

// DeleteCategory removes a category owned by the caller
func (s *ideaServiceImpl) DeleteCategory(ctx context.Context, categoryID, userID uuid.UUID) error {
	if err := s.categoryRepo.DeleteByOwner(ctx, categoryID, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Category not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete category", err.Error())
	}
	return nil
}

func (s *ideaServiceImpl) verifyCategoryOwner(ctx context.Context, categoryID, userID uuid.UUID) error {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Category not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify category", err.Error())
	}
	if category.UserID != userID {
		return response.NewNotFoundError("Category not found")
	}
	return nil
}

func toCategoryResponse(c *domain.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		UserID:      c.UserID,
		Name:        c.Name,
		Color:       c.Color,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
	}
}
