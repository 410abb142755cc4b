// Package asteroids implements Asteroid Dodge.
// A rocket near the bottom of the field slides left and right while the
// arrow keys are held, dodging asteroids that fall at random speeds.
package asteroids

import (
	"time"

	"github.com/vovakirdan/rocket-arcade/internal/config"
	"github.com/vovakirdan/rocket-arcade/internal/core"
	"github.com/vovakirdan/rocket-arcade/internal/registry"
)

// Timer names handled by Fire.
const (
	TimerFrame     = "frame"     // periodic frame callback, gated by the minimum tick interval
	TimerExplosion = "explosion" // one-shot, clears the explosion
	TimerExit      = "exit"      // one-shot, leaves the game after game over
)

// Game implements the Asteroid Dodge game logic.
type Game struct {
	cfg        config.AsteroidsConfig
	fixedCfg   *config.AsteroidsConfig // set by NewWithConfig, skips file loading
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	asteroids  *AsteroidManager
	input      core.InputFrame

	playerX   float64
	playerY   float64
	explosion *Explosion
	score     int
	gameOver  bool
	tickCount int
	lastTick  time.Time // zero until the first tick of a run
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var collisionOverride config.CollisionPolicy

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config default.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetCollisionPolicy overrides the configured collision policy.
// An empty or unknown value keeps the config value.
func SetCollisionPolicy(policy string) {
	p, err := config.ParseCollisionPolicy(policy)
	if err != nil {
		p = ""
	}
	collisionOverride = p
}

// New creates a new Asteroid Dodge game instance.
func New() *Game {
	return &Game{input: core.NewInputFrame()}
}

// NewWithConfig creates a game that always plays with cfg.
func NewWithConfig(cfg config.AsteroidsConfig) *Game {
	g := New()
	g.fixedCfg = &cfg
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroid Dodge"
}

func (g *Game) loadConfig() config.AsteroidsConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}

	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		cfg = config.DefaultAsteroidsConfig()
	}
	if difficultyPreset != "" {
		config.ApplyAsteroidsPreset(&cfg, difficultyPreset)
	}
	if collisionOverride != "" {
		cfg.Collision = collisionOverride
	}
	return cfg
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	p := g.cfg.Player
	g.playerX = g.cfg.Field.Width/2 - p.Width/2
	g.playerY = g.cfg.Field.Height - p.Height - p.BottomMargin
	g.explosion = nil
	g.score = 0
	g.gameOver = false
	g.tickCount = 0
	g.lastTick = time.Time{}
	g.input.Reset()

	if g.asteroids == nil {
		g.asteroids = NewAsteroidManager(runtime.Seed, &g.cfg, g.difficulty)
	} else {
		g.asteroids.UpdateConfig(&g.cfg, g.difficulty)
		g.asteroids.Reset(runtime.Seed)
	}
}

// Timers returns the frame driver.
func (g *Game) Timers() []core.Timer {
	return []core.Timer{core.Every(TimerFrame, g.cfg.Timing.Frame())}
}

// Fire runs the named timer callback.
func (g *Game) Fire(name string, now time.Time) core.StepResult {
	switch name {
	case TimerFrame:
		if g.gameOver {
			return g.result()
		}
		// Limit updates to the minimum tick interval
		if !g.lastTick.IsZero() && now.Sub(g.lastTick) < g.cfg.Timing.MinTick() {
			return g.result()
		}
		g.lastTick = now
		return g.Step(now)
	case TimerExplosion:
		g.explosion = nil
		return g.result()
	case TimerExit:
		res := g.result()
		res.Quit = g.gameOver
		return res
	default:
		return g.result()
	}
}

// Step advances the game by one tick.
func (g *Game) Step(now time.Time) core.StepResult {
	if g.gameOver {
		return g.result()
	}

	// 1) Move the rocket; right wins when both keys are held
	p := g.cfg.Player
	x := g.playerX
	if g.input.IsHeld(core.ActionLeft) {
		x = g.playerX - p.Speed
	}
	if g.input.IsHeld(core.ActionRight) {
		x = g.playerX + p.Speed
	}
	g.playerX = core.ClampF(x, 0, g.cfg.Field.Width-p.Width)

	// 2) Move asteroids and drop the ones below the field
	prev := g.asteroids.Asteroids()
	g.asteroids.Advance()

	// 3) Maybe spawn a new one
	g.asteroids.MaybeSpawn(g.score, g.tickCount)

	// 4) Score ticks survived
	g.score++
	g.tickCount++

	// 5) Collision
	player := g.playerRect()
	if _, hit := g.asteroids.Hit(player); hit {
		if g.cfg.Collision == config.CollisionFreeze {
			g.asteroids.restore(prev)
		}
		return g.end(player, now)
	}

	return g.result()
}

// end transitions to game over and schedules the game-over effects.
func (g *Game) end(player core.Rect, now time.Time) core.StepResult {
	g.gameOver = true
	g.input.Reset()

	e := newExplosion(player, g.cfg.Explosion.Size, now)
	g.explosion = &e

	res := g.result()
	res.Schedule = append(res.Schedule, core.After(TimerExplosion, g.cfg.Explosion.Duration()))
	if delay := g.cfg.GameOver.ExitDelay(); delay > 0 {
		res.Schedule = append(res.Schedule, core.After(TimerExit, delay))
	}
	return res
}

// Apply records held direction keys. Keys are ignored after game over.
func (g *Game) Apply(ev core.KeyEvent) {
	if g.gameOver {
		return
	}
	switch ev.Action {
	case core.ActionLeft, core.ActionRight:
		g.input.Apply(ev)
	}
}

// Actions returns the keys the rocket reacts to.
func (g *Game) Actions() []core.Action {
	return []core.Action{core.ActionLeft, core.ActionRight}
}

// playerRect returns the rocket's collision rectangle.
func (g *Game) playerRect() core.Rect {
	return core.NewRect(g.playerX, g.playerY, g.cfg.Player.Width, g.cfg.Player.Height)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
	}
}

// Register the game with the registry
func init() {
	registry.Register("asteroids", func() registry.Game {
		return New()
	})
}
