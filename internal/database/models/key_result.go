package models

import (
	"github.com/google/uuid"
)

// KeyResult is an OKR metric. Validated task completions tagged to it move
// CurrentValue towards TargetValue.
type KeyResult struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;index"`
	ObjectiveTitle string    `json:"objective_title" gorm:"size:200;not null" validate:"required,max=200"`
	Title          string    `json:"title" gorm:"size:200;not null" validate:"required,max=200"`
	StartValue     float64   `json:"start_value" gorm:"not null;default:0"`
	CurrentValue   float64   `json:"current_value" gorm:"not null;default:0"`
	TargetValue    float64   `json:"target_value" gorm:"not null"`
	Unit           string    `json:"unit" gorm:"size:30"`
}

// TableName returns the table name for KeyResult
func (KeyResult) TableName() string {
	return "key_results"
}
