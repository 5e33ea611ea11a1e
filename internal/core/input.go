package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionFire           // Space - fire a projectile
	ActionPause          // P - pause/unpause game
	ActionRestart        // R - restart game after game over
	ActionBack           // B, Escape - leave the game screen
	ActionQuit           // Q, Ctrl+C - exit game/session
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
	case ActionPause:
		return "Pause"
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

// InputEvent is a single key edge: a press or a release of an action.
type InputEvent struct {
	Action   Action
	Released bool
}

// InputFrame collects the key edges that arrived between two simulation ticks.
// Edges keep their arrival order so games can replay them exactly.
type InputFrame struct {
	Events []InputEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Events: make([]InputEvent, 0, 4)}
}

// Press records a key-down edge for the action.
func (f *InputFrame) Press(a Action) {
	f.Events = append(f.Events, InputEvent{Action: a})
}

// Release records a key-up edge for the action.
func (f *InputFrame) Release(a Action) {
	f.Events = append(f.Events, InputEvent{Action: a, Released: true})
}

// Has returns true if the action was pressed during this frame.
func (f InputFrame) Has(a Action) bool {
	for _, e := range f.Events {
		if e.Action == a && !e.Released {
			return true
		}
	}
	return false
}

// HasRelease returns true if the action was released during this frame.
func (f InputFrame) HasRelease(a Action) bool {
	for _, e := range f.Events {
		if e.Action == a && e.Released {
			return true
		}
	}
	return false
}

// Empty reports whether no edges were recorded.
func (f InputFrame) Empty() bool {
	return len(f.Events) == 0
}

// Clear resets the frame for the next tick, keeping capacity.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{Events: make([]InputEvent, len(f.Events))}
	copy(clone.Events, f.Events)
	return clone
}
