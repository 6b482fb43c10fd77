package testutils

import (
	"fmt"
	"time"

	"growth-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return &models.Organization{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:        "test-organization",
		DisplayName: "Test Organization",
		Description: "A test organization for testing purposes",
		Methodology: models.MethodologyLeanStartup,
		Metadata:    nil,
	}
}

// WithName sets a custom name for the organization
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	org := f.Create()
	org.Name = name
	org.DisplayName = name + " Display Name"
	return org
}

// PhaseFactory provides methods to create test Phase data
type PhaseFactory struct{}

// NewPhaseFactory creates a new PhaseFactory
func NewPhaseFactory() *PhaseFactory {
	return &PhaseFactory{}
}

// Create creates a pending test Phase with default values
func (f *PhaseFactory) Create(orgID uuid.UUID, number int) *models.Phase {
	return &models.Phase{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID:   orgID,
		PhaseNumber:      number,
		PhaseName:        fmt.Sprintf("Phase %d", number),
		PhaseDescription: "A test phase",
		Methodology:      models.MethodologyLeanStartup,
		DurationWeeks:    4,
		Status:           models.PhaseStatusPending,
		Objectives:       []models.Objective{{Name: "Reach first customers", Current: 0, Target: 10}},
		Checklist:        []models.ChecklistItem{{Task: "Interview ten users"}, {Task: "Ship a landing page"}},
		Playbook:         []byte(`{"steps":["discover","validate"]}`),
	}
}

// WithStatus creates a test Phase with a custom status
func (f *PhaseFactory) WithStatus(orgID uuid.UUID, number int, status models.PhaseStatus) *models.Phase {
	phase := f.Create(orgID, number)
	phase.Status = status
	if status == models.PhaseStatusActive {
		now := time.Now()
		phase.ActivatedAt = &now
	}
	return phase
}

// Roadmap creates phases numbered 1..n, the first active and the rest pending
func (f *PhaseFactory) Roadmap(orgID uuid.UUID, n int) []models.Phase {
	phases := make([]models.Phase, 0, n)
	for i := 1; i <= n; i++ {
		status := models.PhaseStatusPending
		if i == 1 {
			status = models.PhaseStatusActive
		}
		phases = append(phases, *f.WithStatus(orgID, i, status))
	}
	return phases
}

// TaskFactory provides methods to create test Task data
type TaskFactory struct{}

// NewTaskFactory creates a new TaskFactory
func NewTaskFactory() *TaskFactory {
	return &TaskFactory{}
}

// Create creates a test Task tagged to the given phase
func (f *TaskFactory) Create(orgID uuid.UUID, phase int) *models.Task {
	return &models.Task{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID:     orgID,
		Title:              "Test task",
		Phase:              phase,
		Category:           "research",
		KeyResultIncrement: 1,
	}
}

// WithKeyResult creates a test Task that moves the given key result
func (f *TaskFactory) WithKeyResult(orgID uuid.UUID, phase int, krID uuid.UUID, increment float64) *models.Task {
	task := f.Create(orgID, phase)
	task.KeyResultID = &krID
	task.KeyResultIncrement = increment
	return task
}

// TaskCompletionFactory provides methods to create test TaskCompletion data
type TaskCompletionFactory struct{}

// NewTaskCompletionFactory creates a new TaskCompletionFactory
func NewTaskCompletionFactory() *TaskCompletionFactory {
	return &TaskCompletionFactory{}
}

// Create creates an unvalidated completion of the task by userID
func (f *TaskCompletionFactory) Create(task *models.Task, userID string) *models.TaskCompletion {
	return &models.TaskCompletion{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID:  task.OrganizationID,
		TaskID:          task.ID,
		UserID:          userID,
		Phase:           task.Phase,
		CompletedByUser: true,
	}
}

// Validated creates a completion that a leader has already validated
func (f *TaskCompletionFactory) Validated(task *models.Task, userID string) *models.TaskCompletion {
	completion := f.Create(task, userID)
	now := time.Now()
	completion.ValidatedByLeader = true
	completion.ValidatedBy = "leader"
	completion.ValidatedAt = &now
	return completion
}

// KeyResultFactory provides methods to create test KeyResult data
type KeyResultFactory struct{}

// NewKeyResultFactory creates a new KeyResultFactory
func NewKeyResultFactory() *KeyResultFactory {
	return &KeyResultFactory{}
}

// Create creates a test KeyResult with default values
func (f *KeyResultFactory) Create(orgID uuid.UUID) *models.KeyResult {
	return &models.KeyResult{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		OrganizationID: orgID,
		ObjectiveTitle: "Find product market fit",
		Title:          "Paying customers",
		StartValue:     0,
		CurrentValue:   0,
		TargetValue:    50,
		Unit:           "customers",
	}
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization   *OrganizationFactory
	Phase          *PhaseFactory
	Task           *TaskFactory
	TaskCompletion *TaskCompletionFactory
	KeyResult      *KeyResultFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization:   NewOrganizationFactory(),
		Phase:          NewPhaseFactory(),
		Task:           NewTaskFactory(),
		TaskCompletion: NewTaskCompletionFactory(),
		KeyResult:      NewKeyResultFactory(),
	}
}
