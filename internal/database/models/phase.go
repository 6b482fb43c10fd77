package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Objective is a measurable target inside a phase. Current and Target are
// only ever written by the progression engine from the linked key result.
type Objective struct {
	Name        string     `json:"name" validate:"required"`
	Current     float64    `json:"current"`
	Target      float64    `json:"target"`
	KeyResultID *uuid.UUID `json:"key_result_id,omitempty"`
}

// ChecklistItem mirrors a task of the ledger. Completed is derived from
// validated task completions and cannot be toggled directly.
type ChecklistItem struct {
	Task      string     `json:"task" validate:"required"`
	Completed bool       `json:"completed"`
	Category  string     `json:"category,omitempty"`
	TaskID    *uuid.UUID `json:"task_id,omitempty"`
}

// Phase is one stage of an organization's growth roadmap.
//
// The partial unique index idx_phases_single_active keeps at most one active
// phase per organization at the database level.
type Phase struct {
	BaseModel
	OrganizationID    uuid.UUID                          `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_phases_org_number,priority:1;uniqueIndex:idx_phases_single_active,where:status = 'active'"`
	PhaseNumber       int                                `json:"phase_number" gorm:"not null;uniqueIndex:idx_phases_org_number,priority:2" validate:"required,min=1"`
	PhaseName         string                             `json:"phase_name" gorm:"size:200;not null" validate:"required,max=200"`
	PhaseDescription  string                             `json:"phase_description" gorm:"type:text"`
	Methodology       Methodology                        `json:"methodology" gorm:"size:20;not null"`
	DurationWeeks     int                                `json:"duration_weeks" gorm:"not null;default:0" validate:"min=0"`
	Status            PhaseStatus                        `json:"status" gorm:"size:20;not null;default:'pending';index"`
	CompletionReason  CompletionReason                   `json:"-" gorm:"size:20"`
	ProgressPercent   int                                `json:"progress_percentage" gorm:"column:progress_percentage;not null;default:0"`
	RegenerationCount int                                `json:"regeneration_count" gorm:"not null;default:0"`
	Objectives        datatypes.JSONSlice[Objective]     `json:"objectives" gorm:"type:jsonb"`
	Checklist         datatypes.JSONSlice[ChecklistItem] `json:"checklist" gorm:"type:jsonb"`
	Playbook          datatypes.JSON                     `json:"playbook" gorm:"type:jsonb"`
	ActivatedAt       *time.Time                         `json:"activated_at,omitempty"`
	CompletedAt       *time.Time                         `json:"completed_at,omitempty"`
}

// TableName returns the table name for Phase
func (Phase) TableName() string {
	return "phases"
}
