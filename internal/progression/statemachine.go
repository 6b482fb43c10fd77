package progression

import (
	"fmt"
	"sort"
	"time"

	"growth-roadmap-backend/internal/database/models"
	apperrors "growth-roadmap-backend/internal/errors"
)

// Action names the operation that drives a status transition
type Action string

const (
	// ActionActivate moves a pending phase to active
	ActionActivate Action = "activate"
	// ActionSupersede completes the active phase when another one is activated
	ActionSupersede Action = "supersede"
	// ActionSkip is the administrative override to skipped
	ActionSkip Action = "skip"
)

// Transition defines a valid status transition and the action allowed to take it
type Transition struct {
	From   models.PhaseStatus
	To     models.PhaseStatus
	Action Action
}

// AllTransitions returns every transition of the phase lifecycle
func AllTransitions() []*Transition {
	return []*Transition{
		{From: models.PhaseStatusPending, To: models.PhaseStatusActive, Action: ActionActivate},
		{From: models.PhaseStatusActive, To: models.PhaseStatusCompleted, Action: ActionSupersede},
		{From: models.PhaseStatusPending, To: models.PhaseStatusSkipped, Action: ActionSkip},
		{From: models.PhaseStatusActive, To: models.PhaseStatusSkipped, Action: ActionSkip},
	}
}

// TransitionError is returned when a status change is not part of the lifecycle
type TransitionError struct {
	PhaseNumber int
	From        models.PhaseStatus
	To          models.PhaseStatus
	Action      Action
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("phase %d: %s not allowed from %s to %s", e.PhaseNumber, e.Action, e.From, e.To)
}

// Unwrap exposes the transition error as a precondition failure
func (e *TransitionError) Unwrap() error {
	return apperrors.NewPreconditionError(string(e.Action)+" phase", fmt.Sprintf("invalid transition from %s to %s", e.From, e.To))
}

// StateMachine manages phase status transitions
type StateMachine struct {
	transitions map[models.PhaseStatus]map[models.PhaseStatus]*Transition
}

// NewStateMachine creates a state machine with the phase lifecycle registered
func NewStateMachine() *StateMachine {
	sm := &StateMachine{
		transitions: make(map[models.PhaseStatus]map[models.PhaseStatus]*Transition),
	}
	for _, t := range AllTransitions() {
		if sm.transitions[t.From] == nil {
			sm.transitions[t.From] = make(map[models.PhaseStatus]*Transition)
		}
		sm.transitions[t.From][t.To] = t
	}
	return sm
}

// IsValidTransition checks if a transition exists in the state machine
func (sm *StateMachine) IsValidTransition(from, to models.PhaseStatus) bool {
	return sm.GetTransition(from, to) != nil
}

// GetTransition returns the transition definition if it exists
func (sm *StateMachine) GetTransition(from, to models.PhaseStatus) *Transition {
	if toMap, ok := sm.transitions[from]; ok {
		return toMap[to]
	}
	return nil
}

// GetAllowedTransitions returns all valid target statuses from a given status, sorted
func (sm *StateMachine) GetAllowedTransitions(from models.PhaseStatus) []models.PhaseStatus {
	var allowed []models.PhaseStatus
	for to := range sm.transitions[from] {
		allowed = append(allowed, to)
	}
	sort.Slice(allowed, func(i, j int) bool { return allowed[i] < allowed[j] })
	return allowed
}

// Validate checks that action may move phase to the given status
func (sm *StateMachine) Validate(phase *models.Phase, to models.PhaseStatus, action Action) error {
	t := sm.GetTransition(phase.Status, to)
	if t == nil || t.Action != action {
		return &TransitionError{PhaseNumber: phase.PhaseNumber, From: phase.Status, To: to, Action: action}
	}
	return nil
}

// ActivationPlan is the set of status changes one activation performs
type ActivationPlan struct {
	// Superseded holds the phases leaving the active state, in phase order.
	// Normally zero or one; more only when legacy data broke the invariant.
	Superseded []*models.Phase
	Target     *models.Phase
}

// PlanActivation validates activating phaseNumber against the organization's
// phases. The returned pointers reference elements of phases.
func (sm *StateMachine) PlanActivation(phases []models.Phase, phaseNumber int) (*ActivationPlan, error) {
	target := FindPhase(phases, phaseNumber)
	if target == nil {
		return nil, fmt.Errorf("phase %d: %w", phaseNumber, apperrors.ErrPhaseNotFound)
	}
	if target.Status != models.PhaseStatusPending {
		return nil, fmt.Errorf("phase %d is %s: %w", phaseNumber, target.Status, apperrors.ErrPhaseNotPending)
	}
	if err := sm.Validate(target, models.PhaseStatusActive, ActionActivate); err != nil {
		return nil, err
	}

	plan := &ActivationPlan{Target: target}
	for i := range phases {
		p := &phases[i]
		if p.Status != models.PhaseStatusActive {
			continue
		}
		if err := sm.Validate(p, models.PhaseStatusCompleted, ActionSupersede); err != nil {
			return nil, err
		}
		plan.Superseded = append(plan.Superseded, p)
	}
	sort.Slice(plan.Superseded, func(i, j int) bool {
		return plan.Superseded[i].PhaseNumber < plan.Superseded[j].PhaseNumber
	})
	return plan, nil
}

// Apply mutates the planned phases. The previous active phase is completed
// regardless of its progress.
func (p *ActivationPlan) Apply(now time.Time) {
	for _, prev := range p.Superseded {
		prev.Status = models.PhaseStatusCompleted
		prev.CompletionReason = models.CompletionReasonSuperseded
		prev.CompletedAt = &now
	}
	p.Target.Status = models.PhaseStatusActive
	p.Target.CompletionReason = models.CompletionReasonNone
	p.Target.ActivatedAt = &now
}

// PlanSkip validates the administrative skip of phaseNumber
func (sm *StateMachine) PlanSkip(phases []models.Phase, phaseNumber int) (*models.Phase, error) {
	target := FindPhase(phases, phaseNumber)
	if target == nil {
		return nil, fmt.Errorf("phase %d: %w", phaseNumber, apperrors.ErrPhaseNotFound)
	}
	if target.Status.IsTerminal() {
		return nil, fmt.Errorf("phase %d is %s: %w", phaseNumber, target.Status, apperrors.ErrPhaseNotSkippable)
	}
	if err := sm.Validate(target, models.PhaseStatusSkipped, ActionSkip); err != nil {
		return nil, err
	}
	return target, nil
}

// ApplySkip marks phase as skipped
func ApplySkip(phase *models.Phase, now time.Time) {
	phase.Status = models.PhaseStatusSkipped
	phase.CompletionReason = models.CompletionReasonSkipped
	phase.CompletedAt = &now
}

// FindPhase returns the phase with the given number, or nil
func FindPhase(phases []models.Phase, phaseNumber int) *models.Phase {
	for i := range phases {
		if phases[i].PhaseNumber == phaseNumber {
			return &phases[i]
		}
	}
	return nil
}

// ActivePhase returns the lowest-numbered active phase, or nil
func ActivePhase(phases []models.Phase) *models.Phase {
	var active *models.Phase
	for i := range phases {
		if phases[i].Status != models.PhaseStatusActive {
			continue
		}
		if active == nil || phases[i].PhaseNumber < active.PhaseNumber {
			active = &phases[i]
		}
	}
	return active
}
