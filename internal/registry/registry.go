// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/rocket-arcade/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic and never schedule anything themselves: they
// declare timers and the session calls Fire when one is due. Every method is
// called from a single goroutine.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "asteroids").
	// Used for CLI commands and config file names.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again on retry after game over.
	Reset(cfg core.RuntimeConfig)

	// Timers lists the periodic timers that drive the game while it is playing.
	Timers() []core.Timer

	// Fire runs the callback of the named timer. now is the fire time and
	// feeds elapsed-time gates.
	Fire(name string, now time.Time) core.StepResult

	// Apply records a key press or release in the game's input state.
	Apply(ev core.KeyEvent)

	// Actions lists the actions the game reacts to, for help and key mapping.
	Actions() []core.Action

	// Snapshot returns an immutable copy of the state for rendering.
	Snapshot() core.Frame

	// State returns the current game state (score, game over).
	State() core.GameState
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
