package repository

import (
	"context"

	"growth-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Column sets written by the different phase mutations. Each mutation only
// touches its own columns so a recompute never overwrites a status change.
var (
	phaseStatusColumns  = []string{"status", "completion_reason", "activated_at", "completed_at"}
	phaseDerivedColumns = []string{"objectives", "checklist", "progress_percentage"}
	phaseContentColumns = []string{"objectives", "checklist", "playbook", "regeneration_count", "progress_percentage"}
	phaseUpsertColumns  = []string{
		"phase_name", "phase_description", "methodology", "duration_weeks", "status", "completion_reason",
		"progress_percentage", "regeneration_count", "objectives", "checklist", "playbook",
		"activated_at", "completed_at", "updated_at",
	}
)

// PhaseRepository handles database operations for roadmap phases
type PhaseRepository struct {
	db *gorm.DB
}

// NewPhaseRepository creates a new phase repository
func NewPhaseRepository(db *gorm.DB) *PhaseRepository {
	return &PhaseRepository{db: db}
}

// ListByOrganization returns the organization's phases ordered by number
func (r *PhaseRepository) ListByOrganization(ctx context.Context, orgID uuid.UUID) ([]models.Phase, error) {
	var phases []models.Phase
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", orgID).
		Order("phase_number").
		Find(&phases).Error
	if err != nil {
		return nil, err
	}
	return phases, nil
}

// ListForUpdate is ListByOrganization with row locks held until the
// surrounding transaction ends. Only meaningful inside Transaction.
func (r *PhaseRepository) ListForUpdate(ctx context.Context, orgID uuid.UUID) ([]models.Phase, error) {
	var phases []models.Phase
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("organization_id = ?", orgID).
		Order("phase_number").
		Find(&phases).Error
	if err != nil {
		return nil, err
	}
	return phases, nil
}

// GetByNumber retrieves one phase of an organization
func (r *PhaseRepository) GetByNumber(ctx context.Context, orgID uuid.UUID, phaseNumber int) (*models.Phase, error) {
	var phase models.Phase
	err := r.db.WithContext(ctx).
		First(&phase, "organization_id = ? AND phase_number = ?", orgID, phaseNumber).Error
	if err != nil {
		return nil, err
	}
	return &phase, nil
}

// CountByOrganization counts the phases of an organization
func (r *PhaseRepository) CountByOrganization(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Phase{}).
		Where("organization_id = ?", orgID).
		Count(&count).Error
	return count, err
}

// CreateBatch inserts a freshly generated roadmap
func (r *PhaseRepository) CreateBatch(ctx context.Context, phases []models.Phase) error {
	if len(phases) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&phases).Error
}

// Upsert inserts the phase or replaces the row with the same organization
// and phase number, keeping its identity.
func (r *PhaseRepository) Upsert(ctx context.Context, phase *models.Phase) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "organization_id"}, {Name: "phase_number"}},
		DoUpdates: clause.AssignmentColumns(phaseUpsertColumns),
	}).Create(phase).Error
}

// UpdateStatus persists the lifecycle fields of a phase
func (r *PhaseRepository) UpdateStatus(ctx context.Context, phase *models.Phase) error {
	return r.updateColumns(ctx, phase, phaseStatusColumns)
}

// UpdateDerived persists the fields rebuilt by a recompute
func (r *PhaseRepository) UpdateDerived(ctx context.Context, phase *models.Phase) error {
	return r.updateColumns(ctx, phase, phaseDerivedColumns)
}

// UpdateContent persists regenerated content and the regeneration counter
func (r *PhaseRepository) UpdateContent(ctx context.Context, phase *models.Phase) error {
	return r.updateColumns(ctx, phase, phaseContentColumns)
}

// Tasks returns a task repository on the same handle, so inside Transaction
// its writes commit or roll back with the phase writes.
func (r *PhaseRepository) Tasks() TaskRepositoryInterface {
	return NewTaskRepository(r.db)
}

// Transaction runs fn with a repository bound to a single database transaction
func (r *PhaseRepository) Transaction(ctx context.Context, fn func(repo PhaseRepositoryInterface) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&PhaseRepository{db: tx})
	})
}

func (r *PhaseRepository) updateColumns(ctx context.Context, phase *models.Phase, columns []string) error {
	result := r.db.WithContext(ctx).Model(phase).Select(columns).Updates(phase)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
