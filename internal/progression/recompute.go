package progression

import (
	"fmt"

	"growth-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
)

// WarningCode identifies a data inconsistency found while recomputing
type WarningCode string

const (
	// WarningNoTaggedTasks means no task is tagged with the phase number, so
	// progress falls back to 0%.
	WarningNoTaggedTasks WarningCode = "no_tagged_tasks"
	// WarningCompletionsExceedTasks means more validated completions than
	// tagged tasks were counted; progress is clamped to 100%.
	WarningCompletionsExceedTasks WarningCode = "completions_exceed_tasks"
)

// Warning is a non-fatal signal of incomplete or inconsistent setup
type Warning struct {
	Code        WarningCode `json:"code"`
	PhaseNumber int         `json:"phase_number"`
	Message     string      `json:"message"`
}

// Inputs bundles everything a phase recompute reads
type Inputs struct {
	Stats             TaskStats
	ValidatedTaskIDs  map[uuid.UUID]bool
	KeyResultProgress map[uuid.UUID]KeyResultProgress
}

// Recompute rebuilds the derived fields of phase in place: checklist
// completion, objective values and progress percentage.
func Recompute(phase *models.Phase, in Inputs) []Warning {
	var warnings []Warning

	phase.Checklist = ReconcileChecklist(phase.Checklist, in.ValidatedTaskIDs)
	phase.Objectives = ApplyKeyResults(phase.Objectives, in.KeyResultProgress)
	phase.ProgressPercent = ComputePhaseProgress(in.Stats)

	if in.Stats.Total == 0 {
		warnings = append(warnings, Warning{
			Code:        WarningNoTaggedTasks,
			PhaseNumber: phase.PhaseNumber,
			Message:     fmt.Sprintf("phase %d has no tagged tasks", phase.PhaseNumber),
		})
	} else if in.Stats.CompletedValidated > in.Stats.Total {
		warnings = append(warnings, Warning{
			Code:        WarningCompletionsExceedTasks,
			PhaseNumber: phase.PhaseNumber,
			Message: fmt.Sprintf("phase %d has %d validated completions for %d tasks",
				phase.PhaseNumber, in.Stats.CompletedValidated, in.Stats.Total),
		})
	}

	return warnings
}
