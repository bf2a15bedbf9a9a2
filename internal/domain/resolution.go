package domain

// ResolutionState tracks where a pipeline session is in resolving nationalities.
type ResolutionState string

// Resolution states. Only Idle may move to Resolving, which keeps at most
// one lookup in flight per session.
const (
	ResolutionIdle      ResolutionState = "idle"
	ResolutionResolving ResolutionState = "resolving"
	ResolutionResolved  ResolutionState = "resolved"
	ResolutionFailed    ResolutionState = "failed"
)

// CanResolve reports whether a resolution may be started from this state.
func (s ResolutionState) CanResolve() bool {
	return s == ResolutionIdle
}

// Terminal reports whether the state holds the outcome of a finished run.
func (s ResolutionState) Terminal() bool {
	return s == ResolutionResolved || s == ResolutionFailed
}
