package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/astro-arcade/internal/core"
)

// KeyMap holds the terminal key bindings.
// It implements help.KeyMap so the footer stays in sync with the bindings.
type KeyMap struct {
	RotateLeft  key.Binding
	RotateRight key.Binding
	Thrust      key.Binding
	Fire        key.Binding
	Pause       key.Binding
	Confirm     key.Binding
	Back        key.Binding
	Restart     key.Binding
	Quit        key.Binding
	Help        key.Binding
	Screenshot  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		RotateLeft: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "turn left"),
		),
		RotateRight: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "turn right"),
		),
		Thrust: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "thrust"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "f"),
			key.WithHelp("space", "fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "menu"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp returns the bindings shown in the one-line footer.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Thrust, km.RotateLeft, km.RotateRight, km.Fire, km.Pause, km.Quit, km.Help}
}

// FullHelp returns every binding grouped in columns.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Thrust, km.RotateLeft, km.RotateRight, km.Fire},
		{km.Pause, km.Confirm, km.Back, km.Restart},
		{km.Screenshot, km.Quit, km.Help},
	}
}

// Action translates a key message to a game action.
// Returns ActionNone for unbound keys and for host-only bindings.
func (km KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, km.Quit):
		return core.ActionQuit
	case key.Matches(msg, km.RotateLeft):
		return core.ActionRotateLeft
	case key.Matches(msg, km.RotateRight):
		return core.ActionRotateRight
	case key.Matches(msg, km.Thrust):
		return core.ActionThrust
	case key.Matches(msg, km.Fire):
		return core.ActionFire
	case key.Matches(msg, km.Pause):
		return core.ActionPause
	case key.Matches(msg, km.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, km.Back):
		return core.ActionBack
	case key.Matches(msg, km.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}
