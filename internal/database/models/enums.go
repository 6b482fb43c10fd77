package models

// PhaseStatus is the lifecycle state of a roadmap phase
type PhaseStatus string

const (
	PhaseStatusPending   PhaseStatus = "pending"
	PhaseStatusActive    PhaseStatus = "active"
	PhaseStatusCompleted PhaseStatus = "completed"
	PhaseStatusSkipped   PhaseStatus = "skipped"
)

// Methodology is the growth framework a roadmap was generated from
type Methodology string

const (
	MethodologyLeanStartup Methodology = "lean_startup"
	MethodologyScalingUp   Methodology = "scaling_up"
)

// CompletionReason records why a phase left the active state. The public
// status stays "completed" for activation; the reason keeps "superseded"
// apart from a phase that was actually finished.
type CompletionReason string

const (
	CompletionReasonNone       CompletionReason = ""
	CompletionReasonSuperseded CompletionReason = "superseded"
	CompletionReasonSkipped    CompletionReason = "skipped"
)

// IsValid checks if the PhaseStatus is valid
func (s PhaseStatus) IsValid() bool {
	switch s {
	case PhaseStatusPending, PhaseStatusActive, PhaseStatusCompleted, PhaseStatusSkipped:
		return true
	}
	return false
}

// IsTerminal reports whether no automatic transition leaves this status
func (s PhaseStatus) IsTerminal() bool {
	return s == PhaseStatusCompleted || s == PhaseStatusSkipped
}

// IsValid checks if the Methodology is valid
func (m Methodology) IsValid() bool {
	switch m {
	case MethodologyLeanStartup, MethodologyScalingUp:
		return true
	}
	return false
}
