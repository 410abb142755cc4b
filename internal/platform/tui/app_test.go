package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rocket-arcade/internal/core"
	_ "github.com/vovakirdan/rocket-arcade/internal/games/asteroids"
	_ "github.com/vovakirdan/rocket-arcade/internal/games/rocket"
)

func testOptions(gameID string) AppOptions {
	return AppOptions{
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 42},
		Context: context.Background(),
		GameID:  gameID,
	}
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	app, ok := updated.(AppModel)
	require.True(t, ok)
	return app, cmd
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel(80, 24)
	require.GreaterOrEqual(t, len(m.items), 2)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(MenuModel)
	assert.Equal(t, 1, m.Cursor())

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	updated, _ = updated.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(MenuModel)
	assert.Equal(t, 0, m.Cursor(), "cursor stops at the top")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(MenuModel)
	require.NotNil(t, m.Selected())
	assert.Equal(t, m.items[0].ID, m.Selected().ID)
}

func TestMenuViewListsGames(t *testing.T) {
	view := NewMenuModel(80, 24).View()
	assert.Contains(t, view, "Asteroid Dodge")
	assert.Contains(t, view, "Rocket Rocks")
}

func TestMenuQuit(t *testing.T) {
	updated, _ := NewMenuModel(80, 24).Update(runeKey('q'))
	assert.True(t, updated.(MenuModel).IsQuitting())
}

func TestAppDirectGameExitsOnLeave(t *testing.T) {
	app := NewAppModel(testOptions("rocket"))
	msg := app.Init()()
	require.IsType(t, selectGameMsg{}, msg)

	app, _ = update(t, app, msg)
	require.NotNil(t, app.game)
	t.Cleanup(app.Stop)

	app, cmd := update(t, app, runeKey('q'))
	require.NotNil(t, cmd)
	left := cmd()
	require.IsType(t, gameLeftMsg{}, left)

	app, cmd = update(t, app, left)
	assert.Nil(t, app.game)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestAppQuitReturnsToMenu(t *testing.T) {
	app := NewAppModel(testOptions(""))
	app, _ = update(t, app, selectGameMsg{id: "asteroids"})
	require.NotNil(t, app.game)
	sess := app.game.Session()
	t.Cleanup(app.Stop)

	app, cmd := update(t, app, runeKey('q'))
	app, _ = update(t, app, cmd())

	assert.Nil(t, app.game)
	assert.Contains(t, app.View(), "Select a game")

	select {
	case <-sess.Done():
	case <-time.After(time.Second):
		t.Fatal("session should stop when the player leaves")
	}
}

func TestAppCtrlCExits(t *testing.T) {
	app := NewAppModel(testOptions(""))
	app, _ = update(t, app, selectGameMsg{id: "asteroids"})
	t.Cleanup(app.Stop)

	app, cmd := update(t, app, tea.KeyMsg{Type: tea.KeyCtrlC})
	app, cmd = update(t, app, cmd())
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, app.View())
}

func TestAppUnknownGame(t *testing.T) {
	app := NewAppModel(testOptions("pinball"))
	app, cmd := update(t, app, selectGameMsg{id: "pinball"})
	require.Error(t, app.Err())
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestGameModelRendersFrames(t *testing.T) {
	app := NewAppModel(testOptions("rocket"))
	app, _ = update(t, app, selectGameMsg{id: "rocket"})
	t.Cleanup(app.Stop)

	msg := app.game.waitFrame()()
	require.IsType(t, frameMsg{}, msg)

	app, cmd := update(t, app, msg)
	assert.NotNil(t, cmd, "the model keeps listening for frames")
	view := app.View()
	assert.Contains(t, view, "Score")
	assert.True(t, strings.Contains(view, "jump"), "help lists the jump key")
}
