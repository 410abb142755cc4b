package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/rocket-arcade/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameAction(t *testing.T) {
	km := DefaultKeyMap()
	steer := []core.Action{core.ActionLeft, core.ActionRight}
	jump := []core.Action{core.ActionJump}

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		accepts []core.Action
		want    core.Action
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, steer, core.ActionLeft},
		{"h", runeKey('h'), steer, core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, steer, core.ActionRight},
		{"l", runeKey('l'), steer, core.ActionRight},
		{"space jumps", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, jump, core.ActionJump},
		{"up jumps", tea.KeyMsg{Type: tea.KeyUp}, jump, core.ActionJump},
		{"w jumps", runeKey('w'), jump, core.ActionJump},
		{"jump ignored when steering", tea.KeyMsg{Type: tea.KeyUp}, steer, core.ActionNone},
		{"left ignored when jumping", tea.KeyMsg{Type: tea.KeyLeft}, jump, core.ActionNone},
		{"retry", runeKey('r'), jump, core.ActionRetry},
		{"quit q", runeKey('q'), steer, core.ActionQuit},
		{"quit esc", tea.KeyMsg{Type: tea.KeyEsc}, steer, core.ActionQuit},
		{"unbound", runeKey('x'), steer, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, km.GameAction(tc.msg, tc.accepts))
		})
	}
}

func TestMenuAction(t *testing.T) {
	km := DefaultKeyMap()

	assert.Equal(t, core.ActionUp, km.MenuAction(tea.KeyMsg{Type: tea.KeyUp}))
	assert.Equal(t, core.ActionDown, km.MenuAction(runeKey('j')))
	assert.Equal(t, core.ActionConfirm, km.MenuAction(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, core.ActionQuit, km.MenuAction(runeKey('q')))
	assert.Equal(t, core.ActionNone, km.MenuAction(runeKey('x')))
}

func TestGameKeysHelp(t *testing.T) {
	km := DefaultKeyMap()

	steer := km.GameKeys([]core.Action{core.ActionLeft, core.ActionRight})
	assert.Len(t, steer.ShortHelp(), 4)

	jump := km.GameKeys([]core.Action{core.ActionJump})
	assert.Len(t, jump.ShortHelp(), 3)
	assert.Len(t, jump.FullHelp(), 1)
}
