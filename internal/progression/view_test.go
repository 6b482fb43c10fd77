package progression

import (
	"testing"

	"growth-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRoadmapView(t *testing.T) {
	orgID := uuid.New()
	phases := []models.Phase{
		{PhaseNumber: 3, Status: models.PhaseStatusPending, ProgressPercent: 0, RegenerationCount: 2},
		{PhaseNumber: 1, Status: models.PhaseStatusCompleted, ProgressPercent: 100},
		{
			PhaseNumber:     2,
			Status:          models.PhaseStatusActive,
			ProgressPercent: 40,
			Objectives: []models.Objective{
				{Name: "MRR", Current: 500, Target: 1000},
				{Name: "Broken", Current: 0, Target: 0},
			},
			Checklist: []models.ChecklistItem{{Task: "a", Completed: true}, {Task: "b"}},
		},
	}

	view := BuildRoadmapView(orgID, phases, false, 2)

	assert.Equal(t, orgID, view.OrganizationID)
	assert.Equal(t, 47, view.OverallProgress)
	require.NotNil(t, view.ActivePhaseNumber)
	assert.Equal(t, 2, *view.ActivePhaseNumber)
	assert.False(t, view.HasGeneratedOKRs)
	assert.False(t, view.AllowObjectiveProgress)

	require.Len(t, view.Phases, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{view.Phases[0].PhaseNumber, view.Phases[1].PhaseNumber, view.Phases[2].PhaseNumber})

	active := view.Phases[1]
	assert.False(t, active.CanActivate)
	assert.True(t, active.CanRegenerate)
	assert.Equal(t, 2, active.RegenerationsRemaining)
	assert.Equal(t, 1, active.CompletedChecklist)
	require.Len(t, active.Objectives, 2)
	assert.Equal(t, 50, active.Objectives[0].Percent)
	assert.False(t, active.Objectives[0].IsComplete)
	assert.True(t, active.Objectives[1].IsComplete)
	assert.True(t, active.Objectives[1].Degenerate)

	last := view.Phases[2]
	assert.True(t, last.CanActivate)
	assert.False(t, last.CanRegenerate)
	assert.Zero(t, last.RegenerationsRemaining)

	assert.Equal(t, 3, phases[0].PhaseNumber, "input order is untouched")
}

func TestBuildRoadmapViewEmpty(t *testing.T) {
	view := BuildRoadmapView(uuid.New(), nil, true, 2)

	assert.Empty(t, view.Phases)
	assert.NotNil(t, view.Phases)
	assert.Zero(t, view.OverallProgress)
	assert.Nil(t, view.ActivePhaseNumber)
	assert.True(t, view.AllowObjectiveProgress)
}
