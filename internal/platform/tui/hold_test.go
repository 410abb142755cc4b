package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rocket-arcade/internal/core"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestHoldPressOnce(t *testing.T) {
	h := NewHoldTracker(500*time.Millisecond, 100*time.Millisecond)

	assert.Equal(t, []core.KeyEvent{core.Press(core.ActionLeft)}, h.Press(core.ActionLeft, t0))
	assert.Empty(t, h.Press(core.ActionLeft, t0.Add(10*time.Millisecond)), "repeats are not forwarded")
	assert.True(t, h.Held(core.ActionLeft))
}

func TestHoldInitialDelayIsLonger(t *testing.T) {
	h := NewHoldTracker(500*time.Millisecond, 100*time.Millisecond)
	h.Press(core.ActionRight, t0)

	// No repeat yet: the key stays held through the keyboard repeat delay.
	assert.Empty(t, h.Expire(t0.Add(300*time.Millisecond)))
	assert.Equal(t,
		[]core.KeyEvent{core.Release(core.ActionRight)},
		h.Expire(t0.Add(500*time.Millisecond)),
	)
	assert.False(t, h.Any())
}

func TestHoldRepeatWindow(t *testing.T) {
	h := NewHoldTracker(500*time.Millisecond, 100*time.Millisecond)
	h.Press(core.ActionRight, t0)
	h.Press(core.ActionRight, t0.Add(450*time.Millisecond))

	assert.Empty(t, h.Expire(t0.Add(520*time.Millisecond)))
	assert.Equal(t,
		[]core.KeyEvent{core.Release(core.ActionRight)},
		h.Expire(t0.Add(550*time.Millisecond)),
	)
}

func TestHoldOppositeDirectionReleases(t *testing.T) {
	h := NewHoldTracker(0, 0)
	h.Press(core.ActionLeft, t0)

	events := h.Press(core.ActionRight, t0.Add(time.Millisecond))
	require.Len(t, events, 2)
	assert.Equal(t, core.Release(core.ActionLeft), events[0])
	assert.Equal(t, core.Press(core.ActionRight), events[1])
	assert.False(t, h.Held(core.ActionLeft))
	assert.True(t, h.Held(core.ActionRight))
}

func TestHoldReleaseAll(t *testing.T) {
	h := NewHoldTracker(0, 0)
	h.Press(core.ActionRight, t0)

	assert.Equal(t, []core.KeyEvent{core.Release(core.ActionRight)}, h.ReleaseAll())
	assert.Empty(t, h.ReleaseAll())
}

func TestHoldDefaults(t *testing.T) {
	h := NewHoldTracker(-1, 0)
	assert.Equal(t, DefaultHoldDelay, h.delay)
	assert.Equal(t, DefaultHoldRepeat, h.repeat)
}
