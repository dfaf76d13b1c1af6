package pipeline

import "fmt"

// State is the execution state of a Run.
type State string

const (
	// StateIdle is the state of a run that has not started.
	StateIdle State = "IDLE"

	// StateReading is the state while the input file is loaded.
	StateReading State = "READING"

	// StateComputing is the state while results are derived in memory.
	StateComputing State = "COMPUTING"

	// StateReporting is the state while the results file is written.
	StateReporting State = "REPORTING"

	// StateTerminated is the final state, reached on success or failure.
	StateTerminated State = "TERMINATED"
)

// IsTerminal reports whether the state is final.
func IsTerminal(s State) bool {
	return s == StateTerminated
}

// isAllowedTransition reports whether a run may move from one state to another.
// Any non-terminal state may terminate; otherwise only the next state is allowed.
func isAllowedTransition(from, to State) bool {
	if to == StateTerminated {
		return !IsTerminal(from)
	}
	switch from {
	case StateIdle:
		return to == StateReading
	case StateReading:
		return to == StateComputing
	case StateComputing:
		return to == StateReporting
	default:
		return false
	}
}

// transitionError describes a rejected state change.
func transitionError(from, to State) error {
	return fmt.Errorf("disallowed transition: %s -> %s", from, to)
}
