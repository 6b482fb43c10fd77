package progression

import (
	"growth-roadmap-backend/internal/database/models"
)

// DefaultPreviewLimit is how many pending task labels an activation preview lists
const DefaultPreviewLimit = 5

// ActivationPreview is what the operator confirms before activating a phase.
// The labels belong to the phase being superseded, not the target.
type ActivationPreview struct {
	CurrentPhaseNumber *int     `json:"current_phase_number,omitempty"`
	CurrentPhaseName   string   `json:"current_phase_name,omitempty"`
	CurrentProgress    int      `json:"current_progress"`
	PendingTaskLabels  []string `json:"pending_task_labels"`
	HasMore            bool     `json:"has_more"`
	MoreCount          int      `json:"more_count"`
	TargetPhaseNumber  int      `json:"target_phase_number"`
	TargetPhaseName    string   `json:"target_phase_name"`
}

// BuildActivationPreview lists the first limit incomplete checklist labels of
// the current active phase. current may be nil when nothing is active.
func BuildActivationPreview(current, target *models.Phase, limit int) ActivationPreview {
	if limit <= 0 {
		limit = DefaultPreviewLimit
	}

	preview := ActivationPreview{
		PendingTaskLabels: []string{},
	}
	if target != nil {
		preview.TargetPhaseNumber = target.PhaseNumber
		preview.TargetPhaseName = target.PhaseName
	}
	if current == nil {
		return preview
	}

	number := current.PhaseNumber
	preview.CurrentPhaseNumber = &number
	preview.CurrentPhaseName = current.PhaseName
	preview.CurrentProgress = current.ProgressPercent

	pending := 0
	for _, item := range current.Checklist {
		if item.Completed {
			continue
		}
		pending++
		if len(preview.PendingTaskLabels) < limit {
			preview.PendingTaskLabels = append(preview.PendingTaskLabels, item.Task)
		}
	}
	if pending > limit {
		preview.HasMore = true
		preview.MoreCount = pending - limit
	}
	return preview
}
