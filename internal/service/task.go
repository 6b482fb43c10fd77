package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"growth-roadmap-backend/internal/database/models"
	apperrors "growth-roadmap-backend/internal/errors"
	"growth-roadmap-backend/internal/logger"
	"growth-roadmap-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskService handles tasks and the task completion ledger
type TaskService struct {
	taskRepo       repository.TaskRepositoryInterface
	completionRepo repository.TaskCompletionRepositoryInterface
	krRepo         repository.KeyResultRepositoryInterface
	orgRepo        repository.OrganizationRepositoryInterface
	phases         PhaseServiceInterface
	validator      *validator.Validate
	now            func() time.Time
}

// NewTaskService creates a new task service
func NewTaskService(
	taskRepo repository.TaskRepositoryInterface,
	completionRepo repository.TaskCompletionRepositoryInterface,
	krRepo repository.KeyResultRepositoryInterface,
	orgRepo repository.OrganizationRepositoryInterface,
	phases PhaseServiceInterface,
	validator *validator.Validate,
) *TaskService {
	return &TaskService{
		taskRepo:       taskRepo,
		completionRepo: completionRepo,
		krRepo:         krRepo,
		orgRepo:        orgRepo,
		phases:         phases,
		validator:      validator,
		now:            time.Now,
	}
}

// CreateTaskRequest represents the request to create a task
type CreateTaskRequest struct {
	Title              string     `json:"title" validate:"required,max=200"`
	Phase              int        `json:"phase" validate:"required,min=1"`
	Category           string     `json:"category,omitempty" validate:"max=50"`
	KeyResultID        *uuid.UUID `json:"key_result_id,omitempty"`
	KeyResultIncrement float64    `json:"key_result_increment,omitempty" validate:"gte=0"`
}

// CreateTask adds a task to the organization. A zero increment means one
// unit per validated completion.
func (s *TaskService) CreateTask(ctx context.Context, orgID uuid.UUID, req *CreateTaskRequest) (*models.Task, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, validationError(err)
	}
	if _, err := loadOrganization(ctx, s.orgRepo, orgID); err != nil {
		return nil, err
	}

	if req.KeyResultID != nil {
		if _, err := s.keyResultOf(ctx, orgID, *req.KeyResultID); err != nil {
			return nil, err
		}
	}

	increment := req.KeyResultIncrement
	if increment == 0 {
		increment = 1
	}

	task := &models.Task{
		OrganizationID:     orgID,
		Title:              req.Title,
		Phase:              req.Phase,
		Category:           req.Category,
		KeyResultID:        req.KeyResultID,
		KeyResultIncrement: increment,
	}
	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	// A new task changes the denominator of its phase.
	s.recompute(ctx, orgID)
	return task, nil
}

// ListTasks lists the organization's tasks, optionally for one phase
func (s *TaskService) ListTasks(ctx context.Context, orgID uuid.UUID, phase *int) ([]models.Task, error) {
	if _, err := loadOrganization(ctx, s.orgRepo, orgID); err != nil {
		return nil, err
	}
	tasks, err := s.taskRepo.ListByOrganization(ctx, orgID, phase)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// RecordCompletion adds an unvalidated ledger entry. It does not move
// progress until a leader validates it.
func (s *TaskService) RecordCompletion(ctx context.Context, orgID, taskID uuid.UUID, userID string) (*models.TaskCompletion, error) {
	if userID == "" {
		return nil, apperrors.NewValidationError("user_id", "is required")
	}

	task, err := s.taskOf(ctx, orgID, taskID)
	if err != nil {
		return nil, err
	}

	completion := &models.TaskCompletion{
		OrganizationID:  orgID,
		TaskID:          task.ID,
		UserID:          userID,
		Phase:           task.Phase,
		CompletedByUser: true,
	}
	if err := s.completionRepo.Create(ctx, completion); err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.ErrCompletionExists
		}
		return nil, fmt.Errorf("failed to record completion: %w", err)
	}
	completion.Task = task
	return completion, nil
}

// ValidateCompletion marks a completion as validated by a leader, applies the
// task's key result increment and recomputes the organization's progress.
func (s *TaskService) ValidateCompletion(ctx context.Context, orgID, completionID uuid.UUID, leaderID string) (*models.TaskCompletion, error) {
	existing, err := s.completionRepo.GetByID(ctx, completionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskCompletionNotFound
		}
		return nil, fmt.Errorf("failed to get completion: %w", err)
	}
	if existing.OrganizationID != orgID {
		return nil, apperrors.ErrTaskCompletionNotFound
	}
	if existing.ValidatedByLeader {
		return nil, apperrors.ErrCompletionAlreadyValid
	}

	completion, err := s.completionRepo.Validate(ctx, completionID, leaderID, s.now())
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperrors.ErrTaskCompletionNotFound
		case apperrors.IsPrecondition(err):
			return nil, err
		}
		return nil, fmt.Errorf("failed to validate completion: %w", err)
	}

	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"completion_id": completionID,
		"task_id":       completion.TaskID,
		"phase":         completion.Phase,
	}).Info("Task completion validated")

	s.recompute(ctx, orgID)
	return completion, nil
}

// ListCompletions lists ledger entries of the organization
func (s *TaskService) ListCompletions(ctx context.Context, orgID uuid.UUID, filter repository.CompletionFilter) ([]models.TaskCompletion, error) {
	if filter.ValidatedOnly && filter.UnvalidatedOnly {
		return nil, apperrors.NewValidationError("validated", "cannot filter on validated and unvalidated at once")
	}
	if _, err := loadOrganization(ctx, s.orgRepo, orgID); err != nil {
		return nil, err
	}
	completions, err := s.completionRepo.ListCompletions(ctx, orgID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list completions: %w", err)
	}
	return completions, nil
}

func (s *TaskService) taskOf(ctx context.Context, orgID, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.GetByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task.OrganizationID != orgID {
		return nil, apperrors.ErrTaskNotFound
	}
	return task, nil
}

func (s *TaskService) keyResultOf(ctx context.Context, orgID, krID uuid.UUID) (*models.KeyResult, error) {
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

// recompute refreshes derived progress after a committed ledger write. The
// write stands on failure; the next recompute catches up.
func (s *TaskService) recompute(ctx context.Context, orgID uuid.UUID) {
	if _, err := s.phases.RecomputeOrganization(ctx, orgID); err != nil {
		logger.WithContext(ctx).WithField("organization_id", orgID).
			Errorf("Failed to recompute progress: %v", err)
	}
}
