package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rocket-arcade/internal/core"
	"github.com/vovakirdan/rocket-arcade/internal/registry"
)

// MenuModel is the Bubble Tea model for the start screen game picker.
type MenuModel struct {
	items    []registry.GameInfo
	cursor   int
	width    int
	height   int
	keys     KeyMap
	help     help.Model
	quitting bool
	selected *registry.GameInfo
}

// NewMenuModel creates a menu listing every registered game.
func NewMenuModel(width, height int) MenuModel {
	return MenuModel{
		items:  registry.List(),
		width:  width,
		height: height,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}
	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Exit) {
		m.quitting = true
		return m, nil
	}

	switch m.keys.MenuAction(msg) {
	case core.ActionQuit:
		m.quitting = true

	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case core.ActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case core.ActionConfirm:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		titleStyle.Render("R O C K E T   A R C A D E"),
		"",
		subtitleStyle.Render("Select a game"),
		"",
	}
	for i, item := range m.items {
		if i == m.cursor {
			lines = append(lines, cursorStyle.Render("> "+item.Title))
			continue
		}
		lines = append(lines, "  "+item.Title)
	}
	lines = append(lines, "", m.help.View(m.keys.MenuKeys()))

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

// Selected returns the selected game, or nil if none was selected.
func (m MenuModel) Selected() *registry.GameInfo {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Cursor returns the index of the highlighted game.
func (m MenuModel) Cursor() int {
	return m.cursor
}
