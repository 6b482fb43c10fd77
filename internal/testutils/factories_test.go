package testutils

import (
	"testing"

	"growth-roadmap-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhaseFactoryRoadmap(t *testing.T) {
	orgID := uuid.New()

	phases := NewPhaseFactory().Roadmap(orgID, 3)

	require.Len(t, phases, 3)
	assert.Equal(t, models.PhaseStatusActive, phases[0].Status)
	assert.NotNil(t, phases[0].ActivatedAt)
	for i, p := range phases {
		assert.Equal(t, i+1, p.PhaseNumber)
		assert.Equal(t, orgID, p.OrganizationID)
		if i > 0 {
			assert.Equal(t, models.PhaseStatusPending, p.Status)
		}
	}
}

func TestTaskCompletionFactory(t *testing.T) {
	fs := NewFactorySet()
	task := fs.Task.WithKeyResult(uuid.New(), 2, uuid.New(), 5)

	pending := fs.TaskCompletion.Create(task, "user-1")
	validated := fs.TaskCompletion.Validated(task, "user-2")

	assert.Equal(t, task.ID, pending.TaskID)
	assert.Equal(t, 2, pending.Phase)
	assert.True(t, pending.CompletedByUser)
	assert.False(t, pending.ValidatedByLeader)
	assert.True(t, validated.ValidatedByLeader)
	assert.NotNil(t, validated.ValidatedAt)
}
