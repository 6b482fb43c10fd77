package progression

import (
	"encoding/json"
	"sort"
	"time"

	"growth-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
)

// ObjectiveView is an objective with its derived completion
type ObjectiveView struct {
	models.Objective
	Percent    int  `json:"percent"`
	IsComplete bool `json:"is_complete"`
	// Degenerate marks objectives whose target is not positive
	Degenerate bool `json:"degenerate,omitempty"`
}

// PhaseView is the read model of a phase for presentation
type PhaseView struct {
	ID                     uuid.UUID              `json:"id"`
	PhaseNumber            int                    `json:"phase_number"`
	PhaseName              string                 `json:"phase_name"`
	PhaseDescription       string                 `json:"phase_description"`
	Methodology            models.Methodology     `json:"methodology"`
	DurationWeeks          int                    `json:"duration_weeks"`
	Status                 models.PhaseStatus     `json:"status"`
	ProgressPercentage     int                    `json:"progress_percentage"`
	RegenerationCount      int                    `json:"regeneration_count"`
	RegenerationsRemaining int                    `json:"regenerations_remaining"`
	CanActivate            bool                   `json:"can_activate"`
	CanRegenerate          bool                   `json:"can_regenerate"`
	Objectives             []ObjectiveView        `json:"objectives"`
	Checklist              []models.ChecklistItem `json:"checklist"`
	CompletedChecklist     int                    `json:"completed_checklist_items"`
	Playbook               json.RawMessage        `json:"playbook,omitempty"`
	ActivatedAt            *time.Time             `json:"activated_at,omitempty"`
	CompletedAt            *time.Time             `json:"completed_at,omitempty"`
}

// RoadmapView is the whole roadmap of one organization
type RoadmapView struct {
	OrganizationID    uuid.UUID   `json:"organization_id"`
	Phases            []PhaseView `json:"phases"`
	OverallProgress   int         `json:"overall_progress"`
	ActivePhaseNumber *int        `json:"active_phase_number,omitempty"`
	HasGeneratedOKRs  bool        `json:"has_generated_okrs"`
	// AllowObjectiveProgress is false until key results exist; objective
	// values are then frozen at their last computed state.
	AllowObjectiveProgress bool `json:"allow_objective_progress"`
}

// BuildRoadmapView assembles the read model ordered by phase number
func BuildRoadmapView(organizationID uuid.UUID, phases []models.Phase, hasOKRs bool, maxRegenerations int) RoadmapView {
	sorted := append([]models.Phase(nil), phases...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].PhaseNumber < sorted[j].PhaseNumber })

	view := RoadmapView{
		OrganizationID:         organizationID,
		Phases:                 make([]PhaseView, 0, len(sorted)),
		OverallProgress:        ComputeOverallProgress(sorted),
		HasGeneratedOKRs:       hasOKRs,
		AllowObjectiveProgress: hasOKRs,
	}
	if active := ActivePhase(sorted); active != nil {
		number := active.PhaseNumber
		view.ActivePhaseNumber = &number
	}
	for i := range sorted {
		view.Phases = append(view.Phases, BuildPhaseView(&sorted[i], maxRegenerations))
	}
	return view
}

// BuildPhaseView derives the presentation fields of a single phase
func BuildPhaseView(p *models.Phase, maxRegenerations int) PhaseView {
	objectives := make([]ObjectiveView, len(p.Objectives))
	for i, o := range p.Objectives {
		percent, degenerate := ObjectivePercent(o)
		objectives[i] = ObjectiveView{
			Objective:  o,
			Percent:    percent,
			IsComplete: ComputeObjectiveCompletion(o),
			Degenerate: degenerate,
		}
	}

	completed := 0
	for _, item := range p.Checklist {
		if item.Completed {
			completed++
		}
	}

	remaining := RegenerationsRemaining(p, maxRegenerations)
	return PhaseView{
		ID:                     p.ID,
		PhaseNumber:            p.PhaseNumber,
		PhaseName:              p.PhaseName,
		PhaseDescription:       p.PhaseDescription,
		Methodology:            p.Methodology,
		DurationWeeks:          p.DurationWeeks,
		Status:                 p.Status,
		ProgressPercentage:     p.ProgressPercent,
		RegenerationCount:      p.RegenerationCount,
		RegenerationsRemaining: remaining,
		CanActivate:            p.Status == models.PhaseStatusPending,
		CanRegenerate:          remaining > 0,
		Objectives:             objectives,
		Checklist:              append([]models.ChecklistItem{}, p.Checklist...),
		CompletedChecklist:     completed,
		Playbook:               json.RawMessage(p.Playbook),
		ActivatedAt:            p.ActivatedAt,
		CompletedAt:            p.CompletedAt,
	}
}
