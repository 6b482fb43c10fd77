package repository

import (
	"context"

	"growth-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KeyResultRepository handles database operations for key results
type KeyResultRepository struct {
	db *gorm.DB
}

// NewKeyResultRepository creates a new key result repository
func NewKeyResultRepository(db *gorm.DB) *KeyResultRepository {
	return &KeyResultRepository{db: db}
}

// Create creates a new key result
func (r *KeyResultRepository) Create(ctx context.Context, kr *models.KeyResult) error {
	return r.db.WithContext(ctx).Create(kr).Error
}

// GetByID retrieves a key result by ID
func (r *KeyResultRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.KeyResult, error) {
	var kr models.KeyResult
	err := r.db.WithContext(ctx).First(&kr, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &kr, nil
}

// ListByIDs retrieves the key results with the given IDs. Unknown IDs are skipped.
func (r *KeyResultRepository) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]models.KeyResult, error) {
	if len(ids) == 0 {
		return []models.KeyResult{}, nil
	}
	var krs []models.KeyResult
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&krs).Error; err != nil {
		return nil, err
	}
	return krs, nil
}

// CountByOrganization counts the key results of an organization
func (r *KeyResultRepository) CountByOrganization(ctx context.Context, orgID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.KeyResult{}).
		Where("organization_id = ?", orgID).
		Count(&count).Error
	return count, err
}

// UpdateCurrent sets the current value of a key result
func (r *KeyResultRepository) UpdateCurrent(ctx context.Context, id uuid.UUID, current float64) error {
	result := r.db.WithContext(ctx).Model(&models.KeyResult{}).
		Where("id = ?", id).
		Update("current_value", current)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
