// Package screen holds the submission lifecycle shared by the
// interactive screens. Every screen moves Idle through Submitting to a
// terminal Success or Failed.
package screen

// Phase tracks where a screen's submission is in its lifecycle
type Phase int

// Screen phases
const (
	PhaseIdle Phase = iota
	PhaseSubmitting
	PhaseSuccess
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSubmitting:
		return "submitting"
	case PhaseSuccess:
		return "success"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}
