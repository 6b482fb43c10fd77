package repository

import (
	"context"
	"time"

	"growth-roadmap-backend/internal/database/models"
	apperrors "growth-roadmap-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TaskCompletionRepository handles database operations for the task completion ledger
type TaskCompletionRepository struct {
	db *gorm.DB
}

// NewTaskCompletionRepository creates a new task completion repository
func NewTaskCompletionRepository(db *gorm.DB) *TaskCompletionRepository {
	return &TaskCompletionRepository{db: db}
}

// Create records a new completion
func (r *TaskCompletionRepository) Create(ctx context.Context, completion *models.TaskCompletion) error {
	return r.db.WithContext(ctx).Create(completion).Error
}

// GetByID retrieves a completion with its task
func (r *TaskCompletionRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TaskCompletion, error) {
	var completion models.TaskCompletion
	err := r.db.WithContext(ctx).Preload("Task").First(&completion, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &completion, nil
}

// ListCompletions lists ledger entries of an organization
func (r *TaskCompletionRepository) ListCompletions(ctx context.Context, orgID uuid.UUID, filter CompletionFilter) ([]models.TaskCompletion, error) {
	var completions []models.TaskCompletion

	query := r.db.WithContext(ctx).Preload("Task").Where("organization_id = ?", orgID)
	if filter.Phase != nil {
		query = query.Where("phase = ?", *filter.Phase)
	}
	if filter.TaskID != nil {
		query = query.Where("task_id = ?", *filter.TaskID)
	}
	if filter.ValidatedOnly {
		query = query.Where("validated_by_leader = ?", true)
	}
	if filter.UnvalidatedOnly {
		query = query.Where("validated_by_leader = ?", false)
	}

	if err := query.Order("created_at DESC").Find(&completions).Error; err != nil {
		return nil, err
	}
	return completions, nil
}

// CountValidatedByPhase counts distinct tasks of a phase that have at least
// one completion both completed by a user and validated by a leader.
func (r *TaskCompletionRepository) CountValidatedByPhase(ctx context.Context, orgID uuid.UUID, phase int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.TaskCompletion{}).
		Joins("JOIN tasks ON tasks.id = task_completions.task_id").
		Where("tasks.organization_id = ? AND tasks.phase = ?", orgID, phase).
		Where("task_completions.completed_by_user = ? AND task_completions.validated_by_leader = ?", true, true).
		Distinct("task_completions.task_id").
		Count(&count).Error
	return count, err
}

// ValidatedTaskIDs returns the tasks of an organization with a validated completion
func (r *TaskCompletionRepository) ValidatedTaskIDs(ctx context.Context, orgID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).Model(&models.TaskCompletion{}).
		Where("organization_id = ?", orgID).
		Where("completed_by_user = ? AND validated_by_leader = ?", true, true).
		Distinct().
		Pluck("task_id", &ids).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// Validate marks a completion as validated by a leader and applies the task's
// key result increment in the same transaction.
func (r *TaskCompletionRepository) Validate(ctx context.Context, id uuid.UUID, leaderID string, at time.Time) (*models.TaskCompletion, error) {
	var completion models.TaskCompletion

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&completion, "id = ?", id).Error; err != nil {
			return err
		}
		if completion.ValidatedByLeader {
			return apperrors.ErrCompletionAlreadyValid
		}

		completion.ValidatedByLeader = true
		completion.ValidatedBy = leaderID
		completion.ValidatedAt = &at
		if err := tx.Model(&completion).
			Select("validated_by_leader", "validated_by", "validated_at").
			Updates(&completion).Error; err != nil {
			return err
		}

		var task models.Task
		if err := tx.First(&task, "id = ?", completion.TaskID).Error; err != nil {
			return err
		}
		completion.Task = &task

		if task.KeyResultID == nil || task.KeyResultIncrement == 0 {
			return nil
		}
		return tx.Model(&models.KeyResult{}).
			Where("id = ?", *task.KeyResultID).
			Update("current_value", gorm.Expr("current_value + ?", task.KeyResultIncrement)).Error
	})
	if err != nil {
		return nil, err
	}
	return &completion, nil
}
