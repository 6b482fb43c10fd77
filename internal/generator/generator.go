// Package generator talks to the external content generator that produces
// roadmap phases and regenerates the content of a single phase.
package generator

import (
	"context"
	"encoding/json"

	"growth-roadmap-backend/internal/database/models"
	"growth-roadmap-backend/internal/progression"

	"github.com/google/uuid"
)

//go:generate mockgen -source=generator.go -destination=../mocks/generator_mocks.go -package=mocks

// ContentGenerator produces roadmap content. Implementations must honor ctx
// cancellation and return a GenerationFailure for any unusable response.
type ContentGenerator interface {
	GeneratePhases(ctx context.Context, req RoadmapRequest) ([]GeneratedPhase, error)
	RegeneratePhase(ctx context.Context, req PhaseRequest) (progression.Content, error)
}

// RoadmapRequest asks for a complete roadmap
type RoadmapRequest struct {
	OrganizationID   uuid.UUID          `json:"organization_id"`
	OrganizationName string             `json:"organization_name"`
	Methodology      models.Methodology `json:"methodology"`
	RegenerateOnly   bool               `json:"regenerate_only"`
}

// PhaseRequest asks for fresh content for one existing phase
type PhaseRequest struct {
	OrganizationID uuid.UUID          `json:"organization_id"`
	Methodology    models.Methodology `json:"methodology"`
	PhaseNumber    int                `json:"phase_number"`
	PhaseName      string             `json:"phase_name"`
	Attempt        int                `json:"attempt"`
}

// GeneratedPhase is one phase as returned by the generator
type GeneratedPhase struct {
	PhaseNumber      int                    `json:"phase_number" validate:"required,min=1"`
	PhaseName        string                 `json:"phase_name" validate:"required,max=200"`
	PhaseDescription string                 `json:"phase_description"`
	DurationWeeks    int                    `json:"duration_weeks" validate:"min=0"`
	Objectives       []models.Objective     `json:"objectives" validate:"dive"`
	Checklist        []models.ChecklistItem `json:"checklist" validate:"dive"`
	Playbook         json.RawMessage        `json:"playbook"`
}

// Content returns the regenerable part of the phase
func (p GeneratedPhase) Content() progression.Content {
	return progression.Content{
		Objectives: p.Objectives,
		Checklist:  p.Checklist,
		Playbook:   p.Playbook,
	}
}
