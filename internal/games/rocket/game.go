// Package rocket implements Rocket Rocks, a Flappy Bird-style game.
// The rocket falls under gravity and jumps on a key press, threading the
// gaps between rocks that scroll in from the right.
package rocket

import (
	"time"

	"github.com/vovakirdan/rocket-arcade/internal/config"
	"github.com/vovakirdan/rocket-arcade/internal/core"
	"github.com/vovakirdan/rocket-arcade/internal/registry"
)

// Timer names handled by Fire.
const (
	TimerPhysics = "physics"
	TimerRocks   = "rocks"
	TimerSpawn   = "spawn"
	TimerExit    = "exit"
)

// Game implements the Rocket Rocks game logic.
type Game struct {
	cfg        config.RocketConfig
	fixedCfg   *config.RocketConfig
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	rocks      *RockManager

	playerY   float64 // top of the rocket box
	playerVel float64 // positive is down
	score     int
	gameOver  bool
	tickCount int
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset
var collisionOverride config.CollisionPolicy

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = "" // Use config default
	}
	difficultyPreset = p
}

// SetCollisionPolicy overrides the configured collision policy.
func SetCollisionPolicy(policy string) {
	p, err := config.ParseCollisionPolicy(policy)
	if err != nil {
		p = ""
	}
	collisionOverride = p
}

// New creates a new Rocket Rocks game instance.
func New() *Game {
	return &Game{}
}

// NewWithConfig creates a game that always plays with cfg.
func NewWithConfig(cfg config.RocketConfig) *Game {
	return &Game{fixedCfg: &cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "rocket"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Rocket Rocks"
}

func (g *Game) loadConfig() config.RocketConfig {
	if g.fixedCfg != nil {
		return *g.fixedCfg
	}

	cfg, err := config.LoadRocket(configPath)
	if err != nil {
		cfg = config.DefaultRocketConfig()
	}
	if difficultyPreset != "" {
		config.ApplyRocketPreset(&cfg, difficultyPreset)
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

	g.playerY = g.cfg.Physics.StartY
	g.playerVel = 0
	g.score = 0
	g.gameOver = false
	g.tickCount = 0

	if g.rocks == nil {
		g.rocks = NewRockManager(runtime.Seed, &g.cfg, g.difficulty)
	} else {
		g.rocks.UpdateConfig(&g.cfg, g.difficulty)
		g.rocks.Reset(runtime.Seed)
	}
}

// Timers returns the gravity, rock movement and rock spawn timers.
func (g *Game) Timers() []core.Timer {
	t := g.cfg.Timing
	return []core.Timer{
		core.Every(TimerPhysics, t.Physics()),
		core.Every(TimerRocks, t.Rocks()),
		core.Every(TimerSpawn, t.Spawn()),
	}
}

// Fire runs the named timer callback.
func (g *Game) Fire(name string, _ time.Time) core.StepResult {
	if name == TimerExit {
		res := g.result()
		res.Quit = g.gameOver
		return res
	}
	if g.gameOver {
		return g.result()
	}

	switch name {
	case TimerPhysics:
		g.stepPhysics()
		return g.checkCollisions(nil)
	case TimerRocks:
		prev := g.rocks.Rocks()
		g.stepRocks()
		return g.checkCollisions(prev)
	case TimerSpawn:
		prev := g.rocks.Rocks()
		g.rocks.Spawn(g.score, g.tickCount)
		return g.checkCollisions(prev)
	default:
		return g.result()
	}
}

// stepPhysics applies gravity, then moves the rocket and clamps it.
func (g *Game) stepPhysics() {
	ph := g.cfg.Physics
	g.playerVel += ph.Gravity
	g.playerY += g.playerVel
	if g.playerY > ph.MaxY {
		g.playerY = ph.MaxY
	}
}

// stepRocks scrolls the rocks and scores the tick.
func (g *Game) stepRocks() {
	g.rocks.Advance(g.score, g.tickCount)
	g.score++
	g.tickCount++
}

// checkCollisions runs after every position change. prev is the rock list
// before the change, restored under the freeze policy.
func (g *Game) checkCollisions(prev []Rock) core.StepResult {
	if !g.collides() {
		return g.result()
	}
	if g.cfg.Collision == config.CollisionFreeze && prev != nil {
		g.rocks.restore(prev)
	}
	return g.end()
}

func (g *Game) collides() bool {
	if g.rocks.Hit(g.playerRect()) {
		return true
	}
	return g.outOfBounds()
}

// outOfBounds is checked independently of rock proximity.
func (g *Game) outOfBounds() bool {
	return g.playerY > g.cfg.Bounds.MaxY || g.playerY < g.cfg.Bounds.MinY
}

func (g *Game) end() core.StepResult {
	g.gameOver = true
	res := g.result()
	if delay := g.cfg.GameOver.ExitDelay(); delay > 0 {
		res.Schedule = append(res.Schedule, core.After(TimerExit, delay))
	}
	return res
}

// Apply handles the jump key. Only presses matter and only while playing.
func (g *Game) Apply(ev core.KeyEvent) {
	if g.gameOver || !ev.Pressed || ev.Action != core.ActionJump {
		return
	}
	g.playerVel = g.cfg.Physics.JumpImpulse
}

// Actions returns the keys the rocket reacts to.
func (g *Game) Actions() []core.Action {
	return []core.Action{core.ActionJump}
}

// playerRect returns the rocket's collision rectangle.
func (g *Game) playerRect() core.Rect {
	p := g.cfg.Player
	return core.NewRect(p.X, g.playerY, p.Width, p.Height)
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
	registry.Register("rocket", func() registry.Game {
		return New()
	})
}
