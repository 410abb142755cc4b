package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rocket-arcade/internal/core"
	"github.com/vovakirdan/rocket-arcade/internal/registry"
)

// AppOptions configures the top-level arcade model.
type AppOptions struct {
	Runtime core.RuntimeConfig
	Logger  *log.Logger
	Context context.Context

	// GameID starts that game directly; leaving it exits the program instead
	// of returning to the menu.
	GameID string
}

// AppModel manages the arcade flow: menu -> game -> menu.
type AppModel struct {
	opts     AppOptions
	menu     MenuModel
	game     *GameModel
	quitting bool
	err      error
}

// NewAppModel creates the top-level model.
func NewAppModel(opts AppOptions) AppModel {
	return AppModel{
		opts: opts,
		menu: NewMenuModel(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
	}
}

// Init starts the direct game, or shows the menu.
func (m AppModel) Init() tea.Cmd {
	if m.opts.GameID == "" {
		return m.menu.Init()
	}
	return func() tea.Msg { return selectGameMsg{id: m.opts.GameID} }
}

// selectGameMsg starts the game with the given id.
type selectGameMsg struct {
	id string
}

// Update handles messages for the active screen.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Runtime.ScreenW = wsm.Width
		m.opts.Runtime.ScreenH = wsm.Height
	}

	switch msg := msg.(type) {
	case selectGameMsg:
		return m.startGame(msg.id)

	case gameLeftMsg:
		m.game = nil
		if msg.err != nil {
			m.err = msg.err
		}
		if msg.exit || m.opts.GameID != "" {
			m.quitting = true
			return m, tea.Quit
		}
		m.menu = NewMenuModel(m.opts.Runtime.ScreenW, m.opts.Runtime.ScreenH)
		return m, m.menu.Init()
	}

	if m.game != nil {
		updated, cmd := m.game.Update(msg)
		if gm, ok := updated.(GameModel); ok {
			m.game = &gm
		}
		return m, cmd
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m AppModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.menu.Update(msg)
	if mm, ok := updated.(MenuModel); ok {
		m.menu = mm
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if selected := m.menu.Selected(); selected != nil {
		return m.startGame(selected.ID)
	}
	return m, cmd
}

// startGame creates the game and its screen.
func (m AppModel) startGame(id string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		m.err = fmt.Errorf("tui: %w", err)
		m.quitting = true
		return m, tea.Quit
	}

	gm := NewGameModel(game, GameOptions{
		Runtime: m.opts.Runtime,
		Logger:  m.opts.Logger,
		Context: m.opts.Context,
	})
	m.game = &gm
	return m, gm.Init()
}

// View renders the current screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}

// Err returns the error that ended the program, if any.
func (m AppModel) Err() error {
	return m.err
}

// Stop tears down a game that is still running.
func (m AppModel) Stop() {
	if m.game != nil {
		m.game.Session().Stop()
	}
}

// Run runs the arcade on the local terminal until the player exits.
func Run(opts AppOptions) error {
	p := tea.NewProgram(NewAppModel(opts), tea.WithAltScreen())

	final, err := p.Run()
	app, ok := final.(AppModel)
	if ok {
		app.Stop()
	}
	if err != nil {
		return err
	}
	if ok {
		return app.Err()
	}
	return nil
}
