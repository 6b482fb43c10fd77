package repository

import (
	"context"
	"time"

	"growth-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// OrganizationRepositoryInterface defines the interface for organization repository operations
type OrganizationRepositoryInterface interface {
	Create(ctx context.Context, org *models.Organization) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Organization, error)
	GetByName(ctx context.Context, name string) (*models.Organization, error)
	GetAll(ctx context.Context, limit, offset int) ([]models.Organization, int64, error)
}

// PhaseRepositoryInterface defines the interface for phase repository operations
type PhaseRepositoryInterface interface {
	ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.Phase, error)
	ListForUpdate(ctx context.Context, orgID uuid.UUID) ([]models.Phase, error)
	GetByNumber(ctx context.Context, orgID uuid.UUID, phaseNumber int) (*models.Phase, error)
	CountByOrganization(ctx context.Context, orgID uuid.UUID) (int64, error)
	CreateBatch(ctx context.Context, phases []models.Phase) error
	Upsert(ctx context.Context, phase *models.Phase) error
	UpdateStatus(ctx context.Context, phase *models.Phase) error
	UpdateDerived(ctx context.Context, phase *models.Phase) error
	UpdateContent(ctx context.Context, phase *models.Phase) error
	Tasks() TaskRepositoryInterface
	Transaction(ctx context.Context, fn func(repo PhaseRepositoryInterface) error) error
}

// TaskRepositoryInterface defines the interface for task repository operations
type TaskRepositoryInterface interface {
	Create(ctx context.Context, task *models.Task) error
	CreateBatch(ctx context.Context, tasks []models.Task) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Task, error)
	ListByOrganization(ctx context.Context, orgID uuid.UUID, phase *int) ([]models.Task, error)
	CountByPhase(ctx context.Context, orgID uuid.UUID, phase int) (int64, error)
}

// CompletionFilter narrows ledger queries. Zero values do not filter.
type CompletionFilter struct {
	Phase           *int
	TaskID          *uuid.UUID
	ValidatedOnly   bool
	UnvalidatedOnly bool
}

// TaskCompletionRepositoryInterface defines the interface for the task completion ledger
type TaskCompletionRepositoryInterface interface {
	Create(ctx context.Context, completion *models.TaskCompletion) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.TaskCompletion, error)
	ListCompletions(ctx context.Context, orgID uuid.UUID, filter CompletionFilter) ([]models.TaskCompletion, error)
	CountValidatedByPhase(ctx context.Context, orgID uuid.UUID, phase int) (int64, error)
	ValidatedTaskIDs(ctx context.Context, orgID uuid.UUID) ([]uuid.UUID, error)
	Validate(ctx context.Context, id uuid.UUID, leaderID string, at time.Time) (*models.TaskCompletion, error)
}

// KeyResultRepositoryInterface defines the interface for key result repository operations
type KeyResultRepositoryInterface interface {
	Create(ctx context.Context, kr *models.KeyResult) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.KeyResult, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.KeyResult, error)
	CountByOrganization(ctx context.Context, orgID uuid.UUID) (int64, error)
	UpdateCurrent(ctx context.Context, id uuid.UUID, current float64) error
}
