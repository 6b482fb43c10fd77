package progression

import (
	"fmt"

	"growth-roadmap-backend/internal/database/models"
	apperrors "growth-roadmap-backend/internal/errors"
)

// DefaultMaxRegenerations is how many times a phase's content may be replaced
const DefaultMaxRegenerations = 2

// Content is the generated part of a phase
type Content struct {
	Objectives []models.Objective     `json:"objectives"`
	Checklist  []models.ChecklistItem `json:"checklist"`
	Playbook   []byte                 `json:"playbook,omitempty"`
}

// CheckRegeneration fails with a precondition error once phase has used up
// its regenerations.
func CheckRegeneration(phase *models.Phase, maxRegenerations int) error {
	if maxRegenerations <= 0 {
		maxRegenerations = DefaultMaxRegenerations
	}
	if phase.RegenerationCount >= maxRegenerations {
		return fmt.Errorf("phase %d regenerated %d times: %w",
			phase.PhaseNumber, phase.RegenerationCount, apperrors.ErrNoRegenerationsRemaining)
	}
	return nil
}

// RegenerationsRemaining never goes below zero
func RegenerationsRemaining(phase *models.Phase, maxRegenerations int) int {
	if maxRegenerations <= 0 {
		maxRegenerations = DefaultMaxRegenerations
	}
	if remaining := maxRegenerations - phase.RegenerationCount; remaining > 0 {
		return remaining
	}
	return 0
}

// ApplyContent replaces the phase content. Status, number, identity and the
// regeneration counter are left alone; checklist completion is reset so the
// next recompute derives it from the ledger again.
func ApplyContent(phase *models.Phase, content Content) {
	checklist := make([]models.ChecklistItem, len(content.Checklist))
	for i, item := range content.Checklist {
		item.Completed = false
		checklist[i] = item
	}

	phase.Objectives = append([]models.Objective(nil), content.Objectives...)
	phase.Checklist = checklist
	phase.Playbook = append([]byte(nil), content.Playbook...)
}

// ApplyRegeneration replaces the phase content and bumps the counter
func ApplyRegeneration(phase *models.Phase, content Content) {
	ApplyContent(phase, content)
	phase.RegenerationCount++
}
