package service

import (
	"context"

	"growth-roadmap-backend/internal/database/models"
	"growth-roadmap-backend/internal/progression"
	"growth-roadmap-backend/internal/repository"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// OrganizationServiceInterface defines the interface for organization service
type OrganizationServiceInterface interface {
	Create(ctx context.Context, req *CreateOrganizationRequest) (*OrganizationResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*OrganizationResponse, error)
	GetAll(ctx context.Context, page, pageSize int) (*OrganizationListResponse, error)
}

// PhaseServiceInterface defines the interface for roadmap phase operations
type PhaseServiceInterface interface {
	GetRoadmap(ctx context.Context, orgID uuid.UUID) (*progression.RoadmapView, error)
	GenerateRoadmap(ctx context.Context, orgID uuid.UUID, req *GenerateRoadmapRequest) (*progression.RoadmapView, error)
	RecomputeOrganization(ctx context.Context, orgID uuid.UUID) ([]RecomputeResult, error)
	RecomputePhase(ctx context.Context, orgID uuid.UUID, phaseNumber int) (*RecomputeResult, error)
	ActivationPreview(ctx context.Context, orgID uuid.UUID, phaseNumber int) (*progression.ActivationPreview, error)
	Activate(ctx context.Context, orgID uuid.UUID, phaseNumber int) (*progression.RoadmapView, error)
	Regenerate(ctx context.Context, orgID uuid.UUID, phaseNumber int) (*progression.PhaseView, error)
	Skip(ctx context.Context, orgID uuid.UUID, phaseNumber int) (*progression.RoadmapView, error)
}

// TaskServiceInterface defines the interface for tasks and the completion ledger
type TaskServiceInterface interface {
	CreateTask(ctx context.Context, orgID uuid.UUID, req *CreateTaskRequest) (*models.Task, error)
	ListTasks(ctx context.Context, orgID uuid.UUID, phase *int) ([]models.Task, error)
	RecordCompletion(ctx context.Context, orgID, taskID uuid.UUID, userID string) (*models.TaskCompletion, error)
	ValidateCompletion(ctx context.Context, orgID, completionID uuid.UUID, leaderID string) (*models.TaskCompletion, error)
	ListCompletions(ctx context.Context, orgID uuid.UUID, filter repository.CompletionFilter) ([]models.TaskCompletion, error)
}

// OKRServiceInterface defines the interface for key results
type OKRServiceInterface interface {
	CreateKeyResult(ctx context.Context, orgID uuid.UUID, req *CreateKeyResultRequest) (*models.KeyResult, error)
	UpdateKeyResultProgress(ctx context.Context, orgID, krID uuid.UUID, req *UpdateKeyResultProgressRequest) (*models.KeyResult, error)
	HasGeneratedOKRs(ctx context.Context, orgID uuid.UUID) (bool, error)
	GetStatus(ctx context.Context, orgID uuid.UUID) (*OKRStatusResponse, error)
	GetObjectiveProgress(ctx context.Context, orgID, krID uuid.UUID) (*ObjectiveProgressResponse, error)
}
