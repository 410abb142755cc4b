package registry

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rocket-arcade/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string { return g.id }
func (g stubGame) Title() string { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig) {}
func (g stubGame) Timers() []core.Timer { return nil }
func (g stubGame) Fire(string, time.Time) core.StepResult { return core.StepResult{} }
func (g stubGame) Apply(core.KeyEvent) {}
func (g stubGame) Actions() []core.Action { return nil }
func (g stubGame) Snapshot() core.Frame { return nil }
func (g stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", func() Game { return stubGame{id: "zz-stub"} })
	Register("aa-stub", func() Game { return stubGame{id: "aa-stub"} })

	require.True(t, Exists("zz-stub"))
	assert.False(t, Exists("missing"))

	g, err := Create("aa-stub")
	require.NoError(t, err)
	assert.Equal(t, "aa-stub", g.ID())

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "zz-stub" {
			assert.Equal(t, "Stub zz-stub", info.Title)
		}
	}
	assert.IsIncreasing(t, ids)
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `registry: unknown game "no-such-game"`)
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func() Game { return stubGame{id: "dup-stub"} })
	assert.Panics(t, func() {
		Register("dup-stub", func() Game { return stubGame{id: "dup-stub"} })
	})
}
