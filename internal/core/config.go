package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
}

// Timer describes a callback the session schedules on behalf of a game.
// Periodic timers run while the game is playing; one-shot timers outlive game over
// and are cancelled only by a retry or teardown.
type Timer struct {
	Name     string
	Interval time.Duration
	Once     bool
}

// Every returns a periodic timer.
func Every(name string, interval time.Duration) Timer {
	return Timer{Name: name, Interval: interval}
}

// After returns a one-shot timer.
func After(name string, delay time.Duration) Timer {
	return Timer{Name: name, Interval: delay, Once: true}
}

// StepResult is returned by every game callback.
type StepResult struct {
	State GameState

	// Schedule lists one-shot timers the game wants armed after this step.
	Schedule []Timer

	// Quit asks the enclosing screen to leave the game, as if the player quit.
	Quit bool
}

// Frame is an immutable snapshot of a game handed to the renderer.
// Implementations must not share mutable state with the live game.
type Frame interface {
	// Status returns score and game-over flag at the time of the snapshot.
	Status() GameState

	// Draw projects the snapshot onto the screen buffer.
	Draw(dst *Screen)
}
