package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/frog-chase/internal/core"
)

// KeyMap defines the in-game key bindings.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Go         key.Binding
	Clear      key.Binding
	Yes        key.Binding
	No         key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Go, k.Clear, k.Pause, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Go, k.Clear, k.Yes, k.No},
		{k.Pause, k.Screenshot, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w"),
			key.WithHelp("←↑→↓/wasd", "hop"),
		),
		Down:  key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
		Left:  key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right: key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
		Go: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start/jump"),
		),
		Clear: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "clear plan"),
		),
		Yes:        key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "play again")),
		No:         key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "leave")),
		Pause:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pause")),
		Screenshot: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "screenshot")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// KeyInput is a key message translated for the game loop.
type KeyInput struct {
	Key        core.Key    // game key, KeyNone if the message is not one
	Action     core.Action // platform action, ActionNone if none
	Screenshot bool
	ToggleHelp bool
}

// KeyMapper translates Bubble Tea key messages to game input.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a key mapper for the given bindings.
func NewKeyMapper(keys KeyMap) *KeyMapper {
	return &KeyMapper{keys: keys}
}

// MapKey translates a key message.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) KeyInput {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return KeyInput{Action: core.ActionQuit}
	case key.Matches(msg, k.Pause):
		return KeyInput{Action: core.ActionPause}
	case key.Matches(msg, k.Screenshot):
		return KeyInput{Screenshot: true}
	case key.Matches(msg, k.Help):
		return KeyInput{ToggleHelp: true}
	case key.Matches(msg, k.Up):
		return KeyInput{Key: core.KeyUp}
	case key.Matches(msg, k.Down):
		return KeyInput{Key: core.KeyDown}
	case key.Matches(msg, k.Left):
		return KeyInput{Key: core.KeyLeft}
	case key.Matches(msg, k.Right):
		return KeyInput{Key: core.KeyRight}
	case key.Matches(msg, k.Go):
		return KeyInput{Key: core.KeyEnter}
	case key.Matches(msg, k.Clear):
		return KeyInput{Key: core.KeyEscape}
	case key.Matches(msg, k.Yes):
		return KeyInput{Key: core.KeyYes}
	case key.Matches(msg, k.No):
		return KeyInput{Key: core.KeyNo}
	}
	return KeyInput{}
}
