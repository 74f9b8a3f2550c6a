package tunnel

// State is the tunnel state shown in the tray.
type State int

const (
	Closed State = iota
	Open
)

// Toggle returns the opposite state.
func (s State) Toggle() State {
	if s == Open {
		return Closed
	}
	return Open
}

func (s State) String() string {
	switch s {
	case Open:
		return "open"
	case Closed:
		return "closed"
	default:
		return "unknown"
	}
}
