package core

// Action represents a semantic game action, abstracted from physical key presses.
// Shells translate keys and pointer buttons into actions; the game only sees
// the edges that happened during the current tick.
type Action int

const (
	ActionNone  Action = iota
	ActionJump         // W, Up arrow, Space, left mouse button
	ActionPause        // P
	ActionAny          // Any key or primary pointer button (dismisses the menu)
	ActionQuit         // Q, Ctrl+C - handled by the shell, never by the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionPause:
		return "Pause"
	case ActionAny:
		return "Any"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input edges for a single simulation tick.
// Edges are not queued: a frame is cleared after every tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(actions ...Action) InputFrame {
	f := InputFrame{Actions: make(map[Action]bool)}
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
