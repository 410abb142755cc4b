package tui

import (
	"time"

	"github.com/vovakirdan/rocket-arcade/internal/core"
)

// Terminals report repeated key-down events while a key is held but never a
// key-up. The first repeat arrives after the keyboard's repeat delay, later
// ones at the repeat rate, so a key counts as released when no event arrived
// within the matching window.
const (
	DefaultHoldDelay  = 550 * time.Millisecond
	DefaultHoldRepeat = 120 * time.Millisecond
)

type holdState struct {
	last     time.Time
	repeated bool
}

// HoldTracker infers key releases for level-triggered actions.
type HoldTracker struct {
	delay    time.Duration
	repeat   time.Duration
	held     map[core.Action]*holdState
	opposite map[core.Action]core.Action
}

// NewHoldTracker creates a tracker. Non-positive durations fall back to the
// defaults.
func NewHoldTracker(delay, repeat time.Duration) *HoldTracker {
	if delay <= 0 {
		delay = DefaultHoldDelay
	}
	if repeat <= 0 {
		repeat = DefaultHoldRepeat
	}
	return &HoldTracker{
		delay:  delay,
		repeat: repeat,
		held:   make(map[core.Action]*holdState),
		opposite: map[core.Action]core.Action{
			core.ActionLeft:  core.ActionRight,
			core.ActionRight: core.ActionLeft,
		},
	}
}

// Press records a key-down for a at now and returns the events to forward to
// the game: a release of the opposite direction if it was held, then a press
// if a was not already held.
func (h *HoldTracker) Press(a core.Action, now time.Time) []core.KeyEvent {
	var out []core.KeyEvent
	if opp, ok := h.opposite[a]; ok {
		if _, held := h.held[opp]; held {
			delete(h.held, opp)
			out = append(out, core.Release(opp))
		}
	}

	if st, ok := h.held[a]; ok {
		st.last = now
		st.repeated = true
		return out
	}
	h.held[a] = &holdState{last: now}
	return append(out, core.Press(a))
}

// Expire releases every action whose hold window has elapsed at now.
func (h *HoldTracker) Expire(now time.Time) []core.KeyEvent {
	var out []core.KeyEvent
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionJump} {
		st, ok := h.held[a]
		if !ok {
			continue
		}
		window := h.delay
		if st.repeated {
			window = h.repeat
		}
		if now.Sub(st.last) >= window {
			delete(h.held, a)
			out = append(out, core.Release(a))
		}
	}
	return out
}

// ReleaseAll releases every held action.
func (h *HoldTracker) ReleaseAll() []core.KeyEvent {
	var out []core.KeyEvent
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight, core.ActionJump} {
		if _, ok := h.held[a]; ok {
			delete(h.held, a)
			out = append(out, core.Release(a))
		}
	}
	return out
}

// Held reports whether a is currently considered held.
func (h *HoldTracker) Held(a core.Action) bool {
	_, ok := h.held[a]
	return ok
}

// Any reports whether any action is held.
func (h *HoldTracker) Any() bool {
	return len(h.held) > 0
}
