package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // Up arrow - move north
	ActionDown            // Down arrow - move south
	ActionRight           // Right arrow - move east
	ActionLeft            // Left arrow - move west
	ActionJump            // Space - arm a double step for the next move
	ActionPause           // P - pause/unpause game
	ActionHint            // H - show the shortest safe route
	ActionZoomIn          // O - widen board cells
	ActionZoomOut         // Z - narrow board cells
	ActionViewOverhead    // A - overhead camera with cell indices
	ActionViewDefault     // S - default camera
	ActionQuit            // Q, Esc, Ctrl+C - exit game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionRight:
		return "Right"
	case ActionLeft:
		return "Left"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionHint:
		return "Hint"
	case ActionZoomIn:
		return "ZoomIn"
	case ActionZoomOut:
		return "ZoomOut"
	case ActionViewOverhead:
		return "ViewOverhead"
	case ActionViewDefault:
		return "ViewDefault"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsCamera reports whether the action only affects how the board is viewed.
func (a Action) IsCamera() bool {
	switch a {
	case ActionZoomIn, ActionZoomOut, ActionViewOverhead, ActionViewDefault:
		return true
	}
	return false
}

// InputFrame holds the actions triggered during one simulation tick.
// Actions keep their arrival order: a jump followed by a move in the same
// tick must be applied in that order.
type InputFrame struct {
	Actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Push appends an action. ActionNone is dropped.
func (f *InputFrame) Push(a Action) {
	if a == ActionNone {
		return
	}
	f.Actions = append(f.Actions, a)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.Actions = f.Actions[:0]
}
