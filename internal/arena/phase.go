// Package arena holds the pieces every mini-game session shares: the phase
// machine, positioned entities, high-score bookkeeping and the random source.
// Like core, it has no UI dependencies so session logic stays testable.
package arena

// Phase is the coarse lifecycle state of a session.
type Phase int

const (
	PhaseNotStarted Phase = iota // Created, waiting for Start
	PhaseRunning                 // Timers armed, accepting input
	PhaseOver                    // Terminal until the session is started again
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// CanStart reports whether Start is accepted from this phase.
func (p Phase) CanStart() bool {
	return p == PhaseNotStarted || p == PhaseOver
}
