package core

// Action is a semantic game action, abstracted from physical keys and buttons.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - steer left while held
	ActionRight          // Right arrow, D - steer right while held
	ActionFire           // Space - fire a bullet
	ActionConfirm        // Enter - activate the start button
	ActionPause          // P - start when idle, pause/resume while playing
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Point is a cell coordinate on the screen.
type Point struct {
	X, Y int
}

// InputFrame is the input for one simulation tick: actions pressed during the
// tick, actions released during the tick, and mouse clicks in cell coordinates.
type InputFrame struct {
	Actions  map[Action]bool
	Released map[Action]bool
	Clicks   []Point
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions:  make(map[Action]bool),
		Released: make(map[Action]bool),
	}
}

// Set marks an action as pressed this tick.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was pressed this tick.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Release marks a held action as released this tick.
func (f *InputFrame) Release(a Action) {
	if f.Released == nil {
		f.Released = make(map[Action]bool)
	}
	f.Released[a] = true
}

// WasReleased reports whether the action was released this tick.
func (f InputFrame) WasReleased(a Action) bool {
	return f.Released[a]
}

// Click records a mouse click at cell (x, y).
func (f *InputFrame) Click(x, y int) {
	f.Clicks = append(f.Clicks, Point{X: x, Y: y})
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	clear(f.Actions)
	clear(f.Released)
	f.Clicks = f.Clicks[:0]
}
