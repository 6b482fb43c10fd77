package progression

import (
	"errors"
	"testing"
	"time"

	"growth-roadmap-backend/internal/database/models"
	apperrors "growth-roadmap-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roadmap(statuses ...models.PhaseStatus) []models.Phase {
	phases := make([]models.Phase, len(statuses))
	for i, s := range statuses {
		phases[i] = models.Phase{PhaseNumber: i + 1, PhaseName: "Phase", Status: s}
	}
	return phases
}

func countActive(phases []models.Phase) int {
	n := 0
	for _, p := range phases {
		if p.Status == models.PhaseStatusActive {
			n++
		}
	}
	return n
}

func TestIsValidTransition(t *testing.T) {
	sm := NewStateMachine()

	tests := []struct {
		name     string
		from     models.PhaseStatus
		to       models.PhaseStatus
		expected bool
	}{
		{"pending → active", models.PhaseStatusPending, models.PhaseStatusActive, true},
		{"pending → skipped", models.PhaseStatusPending, models.PhaseStatusSkipped, true},
		{"active → completed", models.PhaseStatusActive, models.PhaseStatusCompleted, true},
		{"active → skipped", models.PhaseStatusActive, models.PhaseStatusSkipped, true},

		{"pending → completed", models.PhaseStatusPending, models.PhaseStatusCompleted, false},
		{"active → pending", models.PhaseStatusActive, models.PhaseStatusPending, false},
		{"completed → active", models.PhaseStatusCompleted, models.PhaseStatusActive, false},
		{"completed → pending", models.PhaseStatusCompleted, models.PhaseStatusPending, false},
		{"skipped → active", models.PhaseStatusSkipped, models.PhaseStatusActive, false},
		{"skipped → pending", models.PhaseStatusSkipped, models.PhaseStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, sm.IsValidTransition(tt.from, tt.to))
		})
	}
}

func TestGetAllowedTransitions(t *testing.T) {
	sm := NewStateMachine()

	assert.Equal(t, []models.PhaseStatus{models.PhaseStatusActive, models.PhaseStatusSkipped},
		sm.GetAllowedTransitions(models.PhaseStatusPending))
	assert.Equal(t, []models.PhaseStatus{models.PhaseStatusCompleted, models.PhaseStatusSkipped},
		sm.GetAllowedTransitions(models.PhaseStatusActive))
	assert.Empty(t, sm.GetAllowedTransitions(models.PhaseStatusCompleted))
	assert.Empty(t, sm.GetAllowedTransitions(models.PhaseStatusSkipped))
}

func TestValidateRejectsWrongAction(t *testing.T) {
	sm := NewStateMachine()
	phase := &models.Phase{PhaseNumber: 2, Status: models.PhaseStatusActive}

	err := sm.Validate(phase, models.PhaseStatusCompleted, ActionSkip)

	var transitionErr *TransitionError
	require.True(t, errors.As(err, &transitionErr))
	assert.Equal(t, 2, transitionErr.PhaseNumber)
	assert.True(t, apperrors.IsPrecondition(err))
	assert.NoError(t, sm.Validate(phase, models.PhaseStatusCompleted, ActionSupersede))
}

func TestPlanActivation(t *testing.T) {
	sm := NewStateMachine()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("supersedes the active phase", func(t *testing.T) {
		phases := roadmap(models.PhaseStatusCompleted, models.PhaseStatusActive, models.PhaseStatusPending, models.PhaseStatusPending)
		phases[1].ProgressPercent = 20

		plan, err := sm.PlanActivation(phases, 3)
		require.NoError(t, err)
		require.Len(t, plan.Superseded, 1)
		assert.Equal(t, 2, plan.Superseded[0].PhaseNumber)
		assert.Equal(t, 3, plan.Target.PhaseNumber)

		plan.Apply(now)

		assert.Equal(t, models.PhaseStatusCompleted, phases[0].Status)
		assert.Equal(t, models.PhaseStatusCompleted, phases[1].Status)
		assert.Equal(t, models.CompletionReasonSuperseded, phases[1].CompletionReason)
		assert.Equal(t, now, *phases[1].CompletedAt)
		assert.Equal(t, 20, phases[1].ProgressPercent, "progress is not touched by activation")
		assert.Equal(t, models.PhaseStatusActive, phases[2].Status)
		assert.Equal(t, now, *phases[2].ActivatedAt)
		assert.Equal(t, models.PhaseStatusPending, phases[3].Status)
		assert.Equal(t, 1, countActive(phases))
	})

	t.Run("activates when nothing is active", func(t *testing.T) {
		phases := roadmap(models.PhaseStatusCompleted, models.PhaseStatusPending)

		plan, err := sm.PlanActivation(phases, 2)
		require.NoError(t, err)
		assert.Empty(t, plan.Superseded)

		plan.Apply(now)
		assert.Equal(t, 1, countActive(phases))
	})

	t.Run("repairs multiple active phases", func(t *testing.T) {
		phases := roadmap(models.PhaseStatusActive, models.PhaseStatusActive, models.PhaseStatusPending)

		plan, err := sm.PlanActivation(phases, 3)
		require.NoError(t, err)
		require.Len(t, plan.Superseded, 2)
		assert.Equal(t, 1, plan.Superseded[0].PhaseNumber)

		plan.Apply(now)
		assert.Equal(t, 1, countActive(phases))
		assert.Equal(t, models.PhaseStatusActive, phases[2].Status)
	})

	t.Run("unknown phase", func(t *testing.T) {
		phases := roadmap(models.PhaseStatusActive, models.PhaseStatusPending)

		plan, err := sm.PlanActivation(phases, 9)
		assert.Nil(t, plan)
		assert.True(t, errors.Is(err, apperrors.ErrPhaseNotFound))
	})

	for _, status := range []models.PhaseStatus{models.PhaseStatusCompleted, models.PhaseStatusActive, models.PhaseStatusSkipped} {
		t.Run("rejects "+string(status)+" target", func(t *testing.T) {
			phases := roadmap(models.PhaseStatusActive, status)
			if status == models.PhaseStatusActive {
				phases[0].Status = models.PhaseStatusCompleted
			}
			before := append([]models.Phase(nil), phases...)

			plan, err := sm.PlanActivation(phases, 2)
			assert.Nil(t, plan)
			assert.True(t, errors.Is(err, apperrors.ErrPhaseNotPending))
			assert.True(t, apperrors.IsPrecondition(err))
			assert.Equal(t, before, phases, "no state mutation on rejection")
		})
	}
}

func TestPlanSkip(t *testing.T) {
	sm := NewStateMachine()
	now := time.Now()

	t.Run("skips pending phase", func(t *testing.T) {
		phases := roadmap(models.PhaseStatusActive, models.PhaseStatusPending)
		target, err := sm.PlanSkip(phases, 2)
		require.NoError(t, err)

		ApplySkip(target, now)
		assert.Equal(t, models.PhaseStatusSkipped, phases[1].Status)
		assert.Equal(t, models.CompletionReasonSkipped, phases[1].CompletionReason)
		assert.Equal(t, models.PhaseStatusActive, phases[0].Status)
	})

	t.Run("skips active phase leaving none active", func(t *testing.T) {
		phases := roadmap(models.PhaseStatusActive, models.PhaseStatusPending)
		target, err := sm.PlanSkip(phases, 1)
		require.NoError(t, err)

		ApplySkip(target, now)
		assert.Equal(t, 0, countActive(phases))
	})

	t.Run("rejects terminal phase", func(t *testing.T) {
		phases := roadmap(models.PhaseStatusCompleted, models.PhaseStatusActive)
		_, err := sm.PlanSkip(phases, 1)
		assert.True(t, errors.Is(err, apperrors.ErrPhaseNotSkippable))
	})

	t.Run("unknown phase", func(t *testing.T) {
		_, err := sm.PlanSkip(roadmap(models.PhaseStatusActive), 4)
		assert.True(t, apperrors.IsNotFound(err))
	})
}

func TestActivePhase(t *testing.T) {
	assert.Nil(t, ActivePhase(roadmap(models.PhaseStatusCompleted, models.PhaseStatusPending)))

	phases := roadmap(models.PhaseStatusCompleted, models.PhaseStatusActive, models.PhaseStatusPending)
	active := ActivePhase(phases)
	require.NotNil(t, active)
	assert.Equal(t, 2, active.PhaseNumber)
}
