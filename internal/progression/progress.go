// Package progression derives roadmap progress from validated work and
// governs the phase lifecycle. Everything here is a pure function over the
// values it is given; callers own loading and persisting.
package progression

import (
	"math"

	"growth-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
)

// TaskStats are the two counts phase progress is derived from
type TaskStats struct {
	PhaseNumber        int   `json:"phase_number"`
	Total              int64 `json:"total"`
	CompletedValidated int64 `json:"completed_validated"`
}

// KeyResultProgress is the current/target pair read from a key result
type KeyResultProgress struct {
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
}

// ComputePhaseProgress returns round(100 * completed / total) clamped to
// [0,100]. A phase without tagged tasks is 0%.
func ComputePhaseProgress(stats TaskStats) int {
	if stats.Total <= 0 {
		return 0
	}
	return clampPercent(math.Round(100 * float64(stats.CompletedValidated) / float64(stats.Total)))
}

// ComputeOverallProgress is the rounded mean of the phases' progress, 0 when
// there are no phases.
func ComputeOverallProgress(phases []models.Phase) int {
	if len(phases) == 0 {
		return 0
	}
	sum := 0
	for _, p := range phases {
		sum += clampPercent(float64(p.ProgressPercent))
	}
	return clampPercent(math.Round(float64(sum) / float64(len(phases))))
}

// ComputeObjectiveCompletion reports current >= target. An objective with a
// non-positive target counts as complete.
func ComputeObjectiveCompletion(o models.Objective) bool {
	if o.Target <= 0 {
		return true
	}
	return o.Current >= o.Target
}

// ObjectivePercent is the display percentage of an objective. degenerate is
// true when the target is not positive and the value is a placeholder.
func ObjectivePercent(o models.Objective) (percent int, degenerate bool) {
	if o.Target <= 0 {
		return 100, true
	}
	return clampPercent(math.Round(100 * o.Current / o.Target)), false
}

// ReconcileChecklist returns a copy of checklist where every item bound to a
// task is completed iff that task has a validated completion. Unbound items
// keep their stored value.
func ReconcileChecklist(checklist []models.ChecklistItem, validated map[uuid.UUID]bool) []models.ChecklistItem {
	out := make([]models.ChecklistItem, len(checklist))
	for i, item := range checklist {
		if item.TaskID != nil {
			item.Completed = validated[*item.TaskID]
		}
		out[i] = item
	}
	return out
}

// ApplyKeyResults returns a copy of objectives with current/target taken
// from their linked key results. Objectives whose key result is unknown keep
// their last computed values.
func ApplyKeyResults(objectives []models.Objective, progress map[uuid.UUID]KeyResultProgress) []models.Objective {
	out := make([]models.Objective, len(objectives))
	for i, o := range objectives {
		if o.KeyResultID != nil {
			if kr, ok := progress[*o.KeyResultID]; ok {
				o.Current = kr.Current
				o.Target = kr.Target
			}
		}
		out[i] = o
	}
	return out
}

// KeyResultIDs lists the distinct key results referenced by objectives
func KeyResultIDs(objectives []models.Objective) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var ids []uuid.UUID
	for _, o := range objectives {
		if o.KeyResultID == nil || seen[*o.KeyResultID] {
			continue
		}
		seen[*o.KeyResultID] = true
		ids = append(ids, *o.KeyResultID)
	}
	return ids
}

func clampPercent(v float64) int {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
