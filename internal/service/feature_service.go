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
	"idea-copilot-api/internal/repository"
	"idea-copilot-api/internal/response"
)

// FeatureService defines the interface for phase and feature business logic
type FeatureService interface {
	CreatePhase(ctx context.Context, ideaID, userID uuid.UUID, req *dto.CreatePhaseRequest) (*dto.PhaseResponse, error)
	ListPhases(ctx context.Context, ideaID, userID uuid.UUID) ([]*dto.PhaseResponse, error)
	UpdatePhase(ctx context.Context, phaseID, userID uuid.UUID, req *dto.UpdatePhaseRequest) (*dto.PhaseResponse, error)
	DeletePhase(ctx context.Context, phaseID, userID uuid.UUID) error

	CreateFeature(ctx context.Context, ideaID uuid.UUID, phaseID *uuid.UUID, userID uuid.UUID, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error)
	ListFeatures(ctx context.Context, ideaID, userID uuid.UUID) ([]*dto.FeatureResponse, error)
	UpdateFeature(ctx context.Context, featureID, userID uuid.UUID, req *dto.UpdateFeatureRequest) (*dto.FeatureResponse, error)
	DeleteFeature(ctx context.Context, featureID, userID uuid.UUID) error
}

// featureServiceImpl is the implementation of FeatureService
type featureServiceImpl struct {
	phaseRepo   repository.PhaseRepository
	featureRepo repository.FeatureRepository
	ideaRepo    repository.IdeaRepository
	access      AccessService
	logger      *zap.Logger
}

// NewFeatureService creates a new instance of FeatureService
func NewFeatureService(
	phaseRepo repository.PhaseRepository,
	featureRepo repository.FeatureRepository,
	ideaRepo repository.IdeaRepository,
	access AccessService,
	logger *zap.Logger,
) FeatureService {
	return &featureServiceImpl{
		phaseRepo:   phaseRepo,
		featureRepo: featureRepo,
		ideaRepo:    ideaRepo,
		access:      access,
		logger:      logger,
	}
}

// CreatePhase adds an execution phase to an idea
func (s *featureServiceImpl) CreatePhase(ctx context.Context, ideaID, userID uuid.UUID, req *dto.CreatePhaseRequest) (*dto.PhaseResponse, error) {
	if _, err := s.access.RequireRole(ctx, ideaID, userID, true); err != nil {
		return nil, err
	}

	phase := &domain.Phase{
		IdeaID:      ideaID,
		Name:        req.Name,
		Description: req.Description,
		OrderIndex:  req.OrderIndex,
		DueDate:     req.DueDate,
	}
	if err := s.phaseRepo.Create(ctx, phase); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create phase", err.Error())
	}
	return toPhaseResponse(phase), nil
}

// ListPhases lists the phases of an idea in execution order
func (s *featureServiceImpl) ListPhases(ctx context.Context, ideaID, userID uuid.UUID) ([]*dto.PhaseResponse, error) {
	if _, err := s.access.RequireRole(ctx, ideaID, userID, false); err != nil {
		return nil, err
	}

	phases, err := s.phaseRepo.FindByIdeaID(ctx, ideaID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list phases", err.Error())
	}
	items := make([]*dto.PhaseResponse, 0, len(phases))
	for _, p := range phases {
		items = append(items, toPhaseResponse(p))
	}
	return items, nil
}

// UpdatePhase applies a partial phase update
func (s *featureServiceImpl) UpdatePhase(ctx context.Context, phaseID, userID uuid.UUID, req *dto.UpdatePhaseRequest) (*dto.PhaseResponse, error) {
	phase, err := s.loadPhaseForWrite(ctx, phaseID, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		phase.Name = *req.Name
	}
	if req.Description != nil {
		phase.Description = req.Description
	}
	if req.OrderIndex != nil {
		phase.OrderIndex = *req.OrderIndex
	}
	if req.DueDate != nil {
		phase.DueDate = req.DueDate
	}
	if req.IsCompleted != nil && *req.IsCompleted != phase.IsCompleted {
		phase.IsCompleted = *req.IsCompleted
		if phase.IsCompleted {
			now := time.Now()
			phase.CompletedAt = &now
		} else {
			phase.CompletedAt = nil
		}
	}

	if err := s.phaseRepo.Update(ctx, phase); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update phase", err.Error())
	}
	return toPhaseResponse(phase), nil
}

// DeletePhase removes a phase; its features stay on the idea with phase_id cleared
func (s *featureServiceImpl) DeletePhase(ctx context.Context, phaseID, userID uuid.UUID) error {
	if _, err := s.loadPhaseForWrite(ctx, phaseID, userID); err != nil {
		return err
	}

	features, err := s.featureRepo.FindByPhaseID(ctx, phaseID)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to load phase features", err.Error())
	}
	for _, f := range features {
		f.PhaseID = nil
		if err := s.featureRepo.Update(ctx, f); err != nil {
			return response.NewAppError(response.ErrCodeInternal, "Failed to detach feature", err.Error())
		}
	}

	if err := s.phaseRepo.Delete(ctx, phaseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Phase not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete phase", err.Error())
	}
	return nil
}

// CreateFeature adds a feature to an idea, optionally inside a phase
func (s *featureServiceImpl) CreateFeature(ctx context.Context, ideaID uuid.UUID, phaseID *uuid.UUID, userID uuid.UUID, req *dto.CreateFeatureRequest) (*dto.FeatureResponse, error) {
	if _, err := s.access.RequireRole(ctx, ideaID, userID, true); err != nil {
		return nil, err
	}

	if phaseID != nil {
		phase, err := s.phaseRepo.FindByID(ctx, *phaseID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, response.NewNotFoundError("Phase not found")
			}
			return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load phase", err.Error())
		}
		if phase.IdeaID != ideaID {
			return nil, response.NewValidationError("Phase belongs to a different idea")
		}
	}

	priority := domain.PriorityMedium
	if req.Priority != nil {
		priority = domain.IdeaPriority(*req.Priority)
	}
	feature := &domain.Feature{
		IdeaID:      ideaID,
		PhaseID:     phaseID,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		OrderIndex:  req.OrderIndex,
	}
	if err := s.featureRepo.Create(ctx, feature); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create feature", err.Error())
	}
	return toFeatureResponse(feature), nil
}

// ListFeatures lists all features of an idea
func (s *featureServiceImpl) ListFeatures(ctx context.Context, ideaID, userID uuid.UUID) ([]*dto.FeatureResponse, error) {
	if _, err := s.access.RequireRole(ctx, ideaID, userID, false); err != nil {
		return nil, err
	}

	features, err := s.featureRepo.FindByIdeaID(ctx, ideaID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to list features", err.Error())
	}
	items := make([]*dto.FeatureResponse, 0, len(features))
	for _, f := range features {
		items = append(items, toFeatureResponse(f))
	}
	return items, nil
}

// UpdateFeature applies a partial feature update and recomputes idea progress
// when completion flips
func (s *featureServiceImpl) UpdateFeature(ctx context.Context, featureID, userID uuid.UUID, req *dto.UpdateFeatureRequest) (*dto.FeatureResponse, error) {
	feature, err := s.loadFeatureForWrite(ctx, featureID, userID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		feature.Title = *req.Title
	}
	if req.Description != nil {
		feature.Description = req.Description
	}
	if req.Priority != nil {
		feature.Priority = domain.IdeaPriority(*req.Priority)
	}
	if req.OrderIndex != nil {
		feature.OrderIndex = req.OrderIndex
	}

	completionChanged := false
	if req.IsCompleted != nil && *req.IsCompleted != feature.IsCompleted {
		completionChanged = true
		feature.IsCompleted = *req.IsCompleted
		if feature.IsCompleted {
			now := time.Now()
			feature.CompletedAt = &now
		} else {
			feature.CompletedAt = nil
		}
	}

	if err := s.featureRepo.Update(ctx, feature); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to update feature", err.Error())
	}

	if completionChanged {
		if err := s.recomputeIdeaProgress(ctx, feature.IdeaID); err != nil {
			s.logger.Warn("failed to recompute idea progress",
				zap.String("idea_id", feature.IdeaID.String()),
				zap.Error(err))
		}
	}
	return toFeatureResponse(feature), nil
}

// DeleteFeature removes a feature and its comments via cascade
func (s *featureServiceImpl) DeleteFeature(ctx context.Context, featureID, userID uuid.UUID) error {
	feature, err := s.loadFeatureForWrite(ctx, featureID, userID)
	if err != nil {
		return err
	}

	if err := s.featureRepo.Delete(ctx, featureID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFoundError("Feature not found")
		}
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete feature", err.Error())
	}

	if err := s.recomputeIdeaProgress(ctx, feature.IdeaID); err != nil {
		s.logger.Warn("failed to recompute idea progress",
			zap.String("idea_id", feature.IdeaID.String()),
			zap.Error(err))
	}
	return nil
}

func (s *featureServiceImpl) loadPhaseForWrite(ctx context.Context, phaseID, userID uuid.UUID) (*domain.Phase, error) {
	phase, err := s.phaseRepo.FindByID(ctx, phaseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Phase not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load phase", err.Error())
	}
	if _, err := s.access.RequireRole(ctx, phase.IdeaID, userID, true); err != nil {
		return nil, err
	}
	return phase, nil
}

func (s *featureServiceImpl) loadFeatureForWrite(ctx context.Context, featureID, userID uuid.UUID) (*domain.Feature, error) {
	feature, err := s.featureRepo.FindByID(ctx, featureID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFoundError("Feature not found")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to load feature", err.Error())
	}
	if _, err := s.access.RequireRole(ctx, feature.IdeaID, userID, true); err != nil {
		return nil, err
	}
	return feature, nil
}

// recomputeIdeaProgress derives progress from the completed feature ratio
func (s *featureServiceImpl) recomputeIdeaProgress(ctx context.Context, ideaID uuid.UUID) error {
	features, err := s.featureRepo.FindByIdeaID(ctx, ideaID)
	if err != nil {
		return err
	}
	idea, err := s.ideaRepo.FindByID(ctx, ideaID)
	if err != nil {
		return err
	}

	progress := 0
	if len(features) > 0 {
		completed := 0
		for _, f := range features {
			if f.IsCompleted {
				completed++
			}
		}
		progress = completed * 100 / len(features)
	}
	idea.ProgressPercentage = progress
	return s.ideaRepo.Update(ctx, idea)
}

func toPhaseResponse(p *domain.Phase) *dto.PhaseResponse {
	return &dto.PhaseResponse{
		ID:          p.ID,
		IdeaID:      p.IdeaID,
		Name:        p.Name,
		Description: p.Description,
		OrderIndex:  p.OrderIndex,
		IsCompleted: p.IsCompleted,
		CompletedAt: p.CompletedAt,
		DueDate:     p.DueDate,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toFeatureResponse(f *domain.Feature) *dto.FeatureResponse {
	return &dto.FeatureResponse{
		ID:          f.ID,
		IdeaID:      f.IdeaID,
		PhaseID:     f.PhaseID,
		Title:       f.Title,
		Description: f.Description,
		IsCompleted: f.IsCompleted,
		CompletedAt: f.CompletedAt,
		Priority:    string(f.Priority),
		OrderIndex:  f.OrderIndex,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
