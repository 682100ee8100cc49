package core

// Action represents a semantic platform action, abstracted from physical key presses.
// Game moves travel as KeyEvents; actions cover what the platform itself handles.
type Action int

const (
	ActionNone  Action = iota
	ActionPause        // P - pause/unpause game
	ActionQuit         // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Key is a symbolic key code delivered by a host.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeyYes // Y on the game over screen
	KeyNo  // N on the game over screen
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyEnter:
		return "Enter"
	case KeyEscape:
		return "Escape"
	case KeyYes:
		return "Yes"
	case KeyNo:
		return "No"
	default:
		return "None"
	}
}

// IsArrow reports whether k is one of the four direction keys.
func (k Key) IsArrow() bool {
	return k == KeyUp || k == KeyDown || k == KeyLeft || k == KeyRight
}

// KeyEventType distinguishes key-down from key-up.
type KeyEventType int

const (
	KeyPressed KeyEventType = iota
	KeyReleased
)

// KeyEvent is a discrete key transition. Repeat is set for OS auto-repeat presses.
type KeyEvent struct {
	Key    Key
	Type   KeyEventType
	Repeat bool
}

// Press returns a key-down event.
func Press(k Key) KeyEvent {
	return KeyEvent{Key: k, Type: KeyPressed}
}

// Release returns a key-up event.
func Release(k Key) KeyEvent {
	return KeyEvent{Key: k, Type: KeyReleased}
}

// Tap returns a press immediately followed by its release.
// Terminals report no key-up, so hosts use this for discrete presses.
func Tap(k Key) []KeyEvent {
	return []KeyEvent{Press(k), Release(k)}
}

// InputFrame represents the input state for the player during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Keys holds key transitions in arrival order.
	Keys []KeyEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
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

// Push appends key events to the frame.
func (f *InputFrame) Push(events ...KeyEvent) {
	f.Keys = append(f.Keys, events...)
}

// Pressed reports whether k has a non-repeat press in this frame.
func (f InputFrame) Pressed(k Key) bool {
	for _, ev := range f.Keys {
		if ev.Key == k && ev.Type == KeyPressed && !ev.Repeat {
			return true
		}
	}
	return false
}

// Clear resets all actions and keys for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Keys = f.Keys[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Keys = append([]KeyEvent(nil), f.Keys...)
	return clone
}
