package repository

import (
	"context"

	"growth-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TaskRepository handles database operations for tasks
type TaskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository
func NewTaskRepository(db *gorm.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// Create creates a new task
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	return r.db.WithContext(ctx).Create(task).Error
}

// CreateBatch inserts several tasks at once
func (r *TaskRepository) CreateBatch(ctx context.Context, tasks []models.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&tasks).Error
}

// GetByID retrieves a task by ID
func (r *TaskRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	var task models.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// ListByOrganization lists an organization's tasks, optionally for one phase
func (r *TaskRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID, phase *int) ([]models.Task, error) {
	var tasks []models.Task
	query := r.db.WithContext(ctx).Where("organization_id = ?", orgID)
	if phase != nil {
		query = query.Where("phase = ?", *phase)
	}
	if err := query.Order("phase, created_at").Find(&tasks).Error; err != nil {
		return nil, err
	}
	return tasks, nil
}

// CountByPhase counts the tasks tagged to a phase number
func (r *TaskRepository) CountByPhase(ctx context.Context, orgID uuid.UUID, phase int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("organization_id = ? AND phase = ?", orgID, phase).
		Count(&count).Error
	return count, err
}
