package service

import (
	"context"
	"errors"
	"fmt"

	"growth-roadmap-backend/internal/database/models"
	apperrors "growth-roadmap-backend/internal/errors"
	"growth-roadmap-backend/internal/logger"
	"growth-roadmap-backend/internal/progression"
	"growth-roadmap-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OKRService handles key results and the OKR linkage guard
type OKRService struct {
	krRepo    repository.KeyResultRepositoryInterface
	orgRepo   repository.OrganizationRepositoryInterface
	phases    PhaseServiceInterface
	validator *validator.Validate
}

// NewOKRService creates a new OKR service
func NewOKRService(
	krRepo repository.KeyResultRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	phases PhaseServiceInterface,
	validator *validator.Validate,
) *OKRService {
	return &OKRService{
		krRepo:    krRepo,
		orgRepo:   orgRepo,
		phases:    phases,
		validator: validator,
	}
}

// CreateKeyResultRequest represents the request to create a key result
type CreateKeyResultRequest struct {
	ObjectiveTitle string   `json:"objective_title" validate:"required,max=200"`
	Title          string   `json:"title" validate:"required,max=200"`
	StartValue     float64  `json:"start_value"`
	CurrentValue   *float64 `json:"current_value,omitempty"`
	TargetValue    float64  `json:"target_value"`
	Unit           string   `json:"unit,omitempty" validate:"max=30"`
}

// UpdateKeyResultProgressRequest sets the current value of a key result
type UpdateKeyResultProgressRequest struct {
	CurrentValue *float64 `json:"current_value" validate:"required"`
}

// OKRStatusResponse reports whether objective progress may be shown
type OKRStatusResponse struct {
	OrganizationID         uuid.UUID `json:"organization_id"`
	HasGeneratedOKRs       bool      `json:"has_generated_okrs"`
	KeyResultCount         int64     `json:"key_result_count"`
	AllowObjectiveProgress bool      `json:"allow_objective_progress"`
}

// ObjectiveProgressResponse is the completion state of one key result
type ObjectiveProgressResponse struct {
	KeyResultID    uuid.UUID `json:"key_result_id"`
	ObjectiveTitle string    `json:"objective_title"`
	Title          string    `json:"title"`
	Current        float64   `json:"current"`
	Target         float64   `json:"target"`
	Percent        int       `json:"percent"`
	IsComplete     bool      `json:"is_complete"`
	Degenerate     bool      `json:"degenerate"`
}

// CreateKeyResult adds a key result. Without an explicit current value it
// starts at the start value.
func (s *OKRService) CreateKeyResult(ctx context.Context, orgID uuid.UUID, req *CreateKeyResultRequest) (*models.KeyResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if _, err := loadOrganization(ctx, s.orgRepo, orgID); err != nil {
		return nil, err
	}

	current := req.StartValue
	if req.CurrentValue != nil {
		current = *req.CurrentValue
	}

	kr := &models.KeyResult{
		OrganizationID: orgID,
		ObjectiveTitle: req.ObjectiveTitle,
		Title:          req.Title,
		StartValue:     req.StartValue,
		CurrentValue:   current,
		TargetValue:    req.TargetValue,
		Unit:           req.Unit,
	}
	if err := s.krRepo.Create(ctx, kr); err != nil {
		return nil, fmt.Errorf("failed to create key result: %w", err)
	}

	if kr.TargetValue <= 0 {
		logger.WithContext(ctx).WithField("key_result_id", kr.ID).
			Warn("Key result has a non-positive target and counts as complete")
	}
	return kr, nil
}

// UpdateKeyResultProgress sets the current value and recomputes the phases
// whose objectives link to it.
func (s *OKRService) UpdateKeyResultProgress(ctx context.Context, orgID, krID uuid.UUID, req *UpdateKeyResultProgressRequest) (*models.KeyResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}

	kr, err := s.keyResultOf(ctx, orgID, krID)
	if err != nil {
		return nil, err
	}

	if err := s.krRepo.UpdateCurrent(ctx, krID, *req.CurrentValue); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrKeyResultNotFound
		}
		return nil, fmt.Errorf("failed to update key result: %w", err)
	}
	kr.CurrentValue = *req.CurrentValue

	if _, err := s.phases.RecomputeOrganization(ctx, orgID); err != nil {
		logger.WithContext(ctx).WithField("organization_id", orgID).
			Errorf("Failed to recompute progress: %v", err)
	}
	return kr, nil
}

// HasGeneratedOKRs reports whether the organization has any key result
func (s *OKRService) HasGeneratedOKRs(ctx context.Context, orgID uuid.UUID) (bool, error) {
	count, err := s.krRepo.CountByOrganization(ctx, orgID)
	if err != nil {
		return false, fmt.Errorf("failed to count key results: %w", err)
	}
	return count > 0, nil
}

// GetStatus returns the OKR linkage status of the organization
func (s *OKRService) GetStatus(ctx context.Context, orgID uuid.UUID) (*OKRStatusResponse, error) {
	if _, err := loadOrganization(ctx, s.orgRepo, orgID); err != nil {
		return nil, err
	}
	count, err := s.krRepo.CountByOrganization(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to count key results: %w", err)
	}
	return &OKRStatusResponse{
		OrganizationID:         orgID,
		HasGeneratedOKRs:       count > 0,
		KeyResultCount:         count,
		AllowObjectiveProgress: count > 0,
	}, nil
}

// GetObjectiveProgress returns the completion state of a key result
func (s *OKRService) GetObjectiveProgress(ctx context.Context, orgID, krID uuid.UUID) (*ObjectiveProgressResponse, error) {
	kr, err := s.keyResultOf(ctx, orgID, krID)
	if err != nil {
		return nil, err
	}

	objective := models.Objective{Name: kr.Title, Current: kr.CurrentValue, Target: kr.TargetValue, KeyResultID: &kr.ID}
	percent, degenerate := progression.ObjectivePercent(objective)
	return &ObjectiveProgressResponse{
		KeyResultID:    kr.ID,
		ObjectiveTitle: kr.ObjectiveTitle,
		Title:          kr.Title,
		Current:        kr.CurrentValue,
		Target:         kr.TargetValue,
		Percent:        percent,
		IsComplete:     progression.ComputeObjectiveCompletion(objective),
		Degenerate:     degenerate,
	}, nil
}

func (s *OKRService) keyResultOf(ctx context.Context, orgID, krID uuid.UUID) (*models.KeyResult, error) {
	kr, err := s.krRepo.GetByID(ctx, krID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrKeyResultNotFound
		}
		return nil, fmt.Errorf("failed to get key result: %w", err)
	}
	if kr.OrganizationID != orgID {
		return nil, apperrors.ErrKeyResultNotFound
	}
	return kr, nil
}
