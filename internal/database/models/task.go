package models

import (
	"github.com/google/uuid"
)

// Task is a unit of work tagged to a roadmap phase number. Tasks optionally
// move a key result forward by KeyResultIncrement once validated.
type Task struct {
	BaseModel
	OrganizationID     uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index:idx_tasks_org_phase,priority:1"`
	Title              string     `json:"title" gorm:"size:200;not null" validate:"required,max=200"`
	Phase              int        `json:"phase" gorm:"not null;index:idx_tasks_org_phase,priority:2" validate:"min=1"`
	Category           string     `json:"category" gorm:"size:50"`
	KeyResultID        *uuid.UUID `json:"key_result_id,omitempty" gorm:"type:uuid;index"`
	KeyResultIncrement float64    `json:"key_result_increment" gorm:"not null;default:1"`
}

// TableName returns the table name for Task
func (Task) TableName() string {
	return "tasks"
}
