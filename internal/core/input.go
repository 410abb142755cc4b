package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, H - steer left while held
	ActionRight          // Right arrow, L - steer right while held
	ActionJump           // Up arrow, W, Space - single jump impulse
	ActionUp             // Menu navigation up
	ActionDown           // Menu navigation down
	ActionConfirm        // Enter - confirm selection in menu
	ActionRetry          // R key - retry after game over
	ActionQuit           // Q, Escape - leave the game after game over
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
	case ActionJump:
		return "Jump"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionRetry:
		return "Retry"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// KeyEvent is a single press or release of an action.
type KeyEvent struct {
	Action  Action
	Pressed bool // false means the key was released
}

// Press returns a key-down event for the action.
func Press(a Action) KeyEvent {
	return KeyEvent{Action: a, Pressed: true}
}

// Release returns a key-up event for the action.
func Release(a Action) KeyEvent {
	return KeyEvent{Action: a, Pressed: false}
}

// InputFrame is the "current input" record a game reads during a tick.
// Actions holds edge-triggered actions that fire once; Held holds level-triggered
// actions that stay set until released.
type InputFrame struct {
	Actions map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
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

// Take reports whether the action was triggered and consumes it.
func (f *InputFrame) Take(a Action) bool {
	if !f.Has(a) {
		return false
	}
	delete(f.Actions, a)
	return true
}

// Hold marks an action as held down.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Release clears a held action.
func (f *InputFrame) Release(a Action) {
	delete(f.Held, a)
}

// IsHeld returns true while the action is held down.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Apply records a key event: presses hold and trigger the action, releases
// clear the hold.
func (f *InputFrame) Apply(ev KeyEvent) {
	if ev.Pressed {
		f.Hold(ev.Action)
		f.Set(ev.Action)
		return
	}
	f.Release(ev.Action)
}

// Clear resets triggered actions for the next frame. Held actions survive.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Reset clears both triggered and held actions.
func (f *InputFrame) Reset() {
	f.Clear()
	for k := range f.Held {
		delete(f.Held, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}
