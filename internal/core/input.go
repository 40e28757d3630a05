package core

// Action represents a semantic host action, abstracted from physical key presses.
type Action int

const (
	ActionNone        Action = iota
	ActionReset              // R - back to the start screen with a fresh board
	ActionToggleLight        // L - switch between light and default colors
	ActionToggleMusic        // M - play/pause background music
	ActionQuit               // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionReset:
		return "Reset"
	case ActionToggleLight:
		return "ToggleLight"
	case ActionToggleMusic:
		return "ToggleMusic"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// PointerKind distinguishes the three phases of a pointer gesture.
type PointerKind int

const (
	PointerDown PointerKind = iota
	PointerMove
	PointerUp
)

// String returns a human-readable name for the pointer phase.
func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "Down"
	case PointerMove:
		return "Move"
	case PointerUp:
		return "Up"
	default:
		return "Unknown"
	}
}

// PointerEvent is a normalized mouse or touch event in board-local units.
// Hosts translate device coordinates before building one.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// PointerHandler receives normalized pointer events.
type PointerHandler interface {
	PointerDown(x, y float64)
	PointerMove(x, y float64)
	PointerUp(x, y float64)
}

// Dispatch routes a pointer event to the matching handler method.
func Dispatch(h PointerHandler, ev PointerEvent) {
	switch ev.Kind {
	case PointerDown:
		h.PointerDown(ev.X, ev.Y)
	case PointerMove:
		h.PointerMove(ev.X, ev.Y)
	case PointerUp:
		h.PointerUp(ev.X, ev.Y)
	}
}
