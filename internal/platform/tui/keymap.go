package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/floppy-dot/internal/core"
)

// KeyMap defines the terminal key bindings. Every key press also counts as
// ActionAny, which is what leaves the title screen.
type KeyMap struct {
	Jump       key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Jump, k.Pause, k.Screenshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Jump, k.Pause},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space/↑/w", "jump"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyResult tells the model what to do besides feeding the game.
type KeyResult int

const (
	KeyGame KeyResult = iota
	KeyQuit
	KeyScreenshot
)

// MapKey records the actions a key press triggers in frame.
// Quit and screenshot keys are handled by the shell and never reach the game.
func (k KeyMap) MapKey(msg tea.KeyMsg, frame *core.InputFrame) KeyResult {
	switch {
	case key.Matches(msg, k.Quit):
		return KeyQuit
	case key.Matches(msg, k.Screenshot):
		return KeyScreenshot
	}

	frame.Set(core.ActionAny)
	switch {
	case key.Matches(msg, k.Jump):
		frame.Set(core.ActionJump)
	case key.Matches(msg, k.Pause):
		frame.Set(core.ActionPause)
	}
	return KeyGame
}

// MapMouse records the actions of a pointer event. A left button press is
// both a jump and an "any key".
func MapMouse(msg tea.MouseMsg, frame *core.InputFrame) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		frame.Set(core.ActionAny)
		frame.Set(core.ActionJump)
	}
}
