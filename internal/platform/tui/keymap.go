package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rocket-arcade/internal/core"
)

// KeyMap defines the key bindings shared by the game and menu screens.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Jump   key.Binding
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Retry  key.Binding
	Quit   key.Binding
	Exit   key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Jump: key.NewBinding(
			key.WithKeys("up", "w", " "),
			key.WithHelp("↑/w/space", "jump"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k", "w"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j", "s"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q/esc", "quit"),
		),
		Exit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "exit"),
		),
	}
}

// GameKeys narrows the key map to the bindings a game reacts to, for help.
func (k KeyMap) GameKeys(actions []core.Action) GameHelp {
	var bindings []key.Binding
	for _, a := range actions {
		switch a {
		case core.ActionLeft:
			bindings = append(bindings, k.Left)
		case core.ActionRight:
			bindings = append(bindings, k.Right)
		case core.ActionJump:
			bindings = append(bindings, k.Jump)
		}
	}
	return GameHelp{bindings: append(bindings, k.Retry, k.Quit)}
}

// MenuKeys returns the menu subset of the key map, for help.
func (k KeyMap) MenuKeys() GameHelp {
	return GameHelp{bindings: []key.Binding{k.Up, k.Down, k.Select, k.Quit}}
}

// GameHelp is a help.KeyMap over a fixed list of bindings.
type GameHelp struct {
	bindings []key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (g GameHelp) ShortHelp() []key.Binding {
	return g.bindings
}

// FullHelp returns key bindings for the full help view.
func (g GameHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{g.bindings}
}

// GameAction translates a key to the gameplay action it triggers, limited to
// the actions the running game accepts. Retry and Quit are reported for any
// game.
func (k KeyMap) GameAction(msg tea.KeyMsg, accepts []core.Action) core.Action {
	switch {
	case key.Matches(msg, k.Retry):
		return core.ActionRetry
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}

	candidates := []struct {
		binding key.Binding
		action  core.Action
	}{
		{k.Left, core.ActionLeft},
		{k.Right, core.ActionRight},
		{k.Jump, core.ActionJump},
	}
	for _, c := range candidates {
		if key.Matches(msg, c.binding) && slices.Contains(accepts, c.action) {
			return c.action
		}
	}
	return core.ActionNone
}

// MenuAction translates a key to a menu action.
func (k KeyMap) MenuAction(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Select):
		return core.ActionConfirm
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	}
	return core.ActionNone
}
