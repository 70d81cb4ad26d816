package settings

// State is the lifecycle position of a Controller.
type State int

const (
	StateUninitialized State = iota
	StateLoaded
	StateModified
	StateSaved
	StateReset
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoaded:
		return "loaded"
	case StateModified:
		return "modified"
	case StateSaved:
		return "saved"
	case StateReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Clean reports whether the state matches a persisted or default baseline.
func (s State) Clean() bool {
	return s == StateLoaded || s == StateSaved || s == StateReset
}
