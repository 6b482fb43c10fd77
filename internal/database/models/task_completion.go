package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskCompletion is one entry of the task completion ledger. Only entries
// with ValidatedByLeader set count towards phase progress.
type TaskCompletion struct {
	BaseModel
	OrganizationID    uuid.UUID  `json:"organization_id" gorm:"type:uuid;not null;index:idx_completions_org_phase,priority:1"`
	TaskID            uuid.UUID  `json:"task_id" gorm:"type:uuid;not null;uniqueIndex:idx_completions_task_user,priority:1"`
	UserID            string     `json:"user_id" gorm:"size:64;not null;uniqueIndex:idx_completions_task_user,priority:2"`
	Phase             int        `json:"phase" gorm:"not null;index:idx_completions_org_phase,priority:2"`
	CompletedByUser   bool       `json:"completed_by_user" gorm:"not null;default:false"`
	ValidatedByLeader bool       `json:"validated_by_leader" gorm:"not null;default:false"`
	ValidatedBy       string     `json:"validated_by,omitempty" gorm:"size:64"`
	ValidatedAt       *time.Time `json:"validated_at,omitempty"`

	Task *Task `json:"task,omitempty" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TaskCompletion
func (TaskCompletion) TableName() string {
	return "task_completions"
}
