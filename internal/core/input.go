package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - steer left / move crosshair left
	ActionRight          // Right arrow, D - steer right / move crosshair right
	ActionUp             // Up arrow, W - move crosshair up
	ActionDown           // Down arrow, S - move crosshair down
	ActionFire           // Space - shoot at the crosshair
	ActionConfirm        // Enter - start a session
	ActionRestart        // R - play again after game over
	ActionBack           // B, Escape - leave the game for the menu
	ActionQuit           // Q, Ctrl+C - exit the arcade
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFire:
		return "Fire"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Point is a screen cell position.
type Point struct {
	X, Y int
}

// InputEvent is a single press or pointer click.
type InputEvent struct {
	Action Action // ActionNone for clicks
	Click  bool
	At     Point
}

// InputFrame collects the input delivered between two simulation ticks.
// Discrete presses are counted rather than flagged, so two quick taps of
// the same key inside one frame still produce two moves. Events keeps
// presses and clicks interleaved in arrival order for games that clamp
// or aim after each one.
type InputFrame struct {
	Actions map[Action]int
	Clicks  []Point // Primary-button presses in screen cells, in arrival order
	Events  []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]int),
	}
}

// Set records one press of an action.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]int)
	}
	f.Actions[a]++
	f.Events = append(f.Events, InputEvent{Action: a})
}

// Click records a pointer press at a screen cell.
func (f *InputFrame) Click(p Point) {
	f.Clicks = append(f.Clicks, p)
	f.Events = append(f.Events, InputEvent{Click: true, At: p})
}

// Has returns true if the action was pressed at least once this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Count(a) > 0
}

// Count returns how many times the action was pressed this frame.
func (f InputFrame) Count(a Action) int {
	if f.Actions == nil {
		return 0
	}
	return f.Actions[a]
}

// Empty reports whether nothing was pressed or clicked.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Clicks) == 0
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
	f.Events = f.Events[:0]
}
