// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade.
package config

import (
	"fmt"
	"time"
)

// CollisionPolicy decides what happens to obstacle positions on the tick
// a collision is detected.
type CollisionPolicy string

const (
	// CollisionFreeze keeps obstacles where they were before the fatal tick.
	CollisionFreeze CollisionPolicy = "freeze"
	// CollisionImmediate ends the game with the obstacles already moved.
	CollisionImmediate CollisionPolicy = "immediate"
)

// Valid reports whether p is a known policy.
func (p CollisionPolicy) Valid() bool {
	return p == CollisionFreeze || p == CollisionImmediate
}

// ParseCollisionPolicy converts a flag or YAML value to a policy.
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	if p := CollisionPolicy(s); p.Valid() {
		return p, nil
	}
	return "", fmt.Errorf("config: unknown collision policy %q (want freeze or immediate)", s)
}

// Range is an inclusive-exclusive span sampled with a uniform [0,1) value.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// At maps t in [0,1) onto the range.
func (r Range) At(t float64) float64 {
	return r.Min + t*(r.Max-r.Min)
}

// Field is the logical play field the simulation runs in.
type Field struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GameOverConfig controls what happens after the game ends.
type GameOverConfig struct {
	// ExitDelayMs leaves the game automatically after this many milliseconds.
	// Zero keeps the game-over screen until the player retries or quits.
	ExitDelayMs int `yaml:"exit_delay_ms"`
}

// ExitDelay returns the auto-exit delay, zero when disabled.
func (g GameOverConfig) ExitDelay() time.Duration {
	return millis(g.ExitDelayMs)
}

// AsteroidsConfig contains all configuration for Asteroid Dodge.
type AsteroidsConfig struct {
	Field      Field            `yaml:"field"`
	Player     AsteroidsPlayer  `yaml:"player"`
	Asteroids  AsteroidsSpawn   `yaml:"asteroids"`
	Explosion  ExplosionConfig  `yaml:"explosion"`
	Timing     AsteroidsTiming  `yaml:"timing"`
	Collision  CollisionPolicy  `yaml:"collision"`
	GameOver   GameOverConfig   `yaml:"game_over"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// AsteroidsPlayer defines the rocket for Asteroid Dodge.
type AsteroidsPlayer struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	BottomMargin float64 `yaml:"bottom_margin"` // gap between rocket and field bottom
	Speed        float64 `yaml:"speed"`         // horizontal movement per tick while a key is held
}

// AsteroidsSpawn defines how asteroids are created.
type AsteroidsSpawn struct {
	SpawnChance float64 `yaml:"spawn_chance"` // probability per tick
	Size        Range   `yaml:"size"`
	Speed       Range   `yaml:"speed"`
	Rotation    Range   `yaml:"rotation"`
}

// ExplosionConfig defines the cosmetic explosion shown on game over.
type ExplosionConfig struct {
	Size       float64 `yaml:"size"`
	DurationMs int     `yaml:"duration_ms"`
}

// Duration returns how long the explosion stays visible.
func (e ExplosionConfig) Duration() time.Duration {
	return millis(e.DurationMs)
}

// AsteroidsTiming defines the frame driver cadence.
type AsteroidsTiming struct {
	FrameMs   int `yaml:"frame_ms"`    // period of the frame callback
	MinTickMs int `yaml:"min_tick_ms"` // minimum time between two ticks
}

// Frame returns the frame callback period.
func (t AsteroidsTiming) Frame() time.Duration { return millis(t.FrameMs) }

// MinTick returns the elapsed-time gate between ticks.
func (t AsteroidsTiming) MinTick() time.Duration { return millis(t.MinTickMs) }

// RocketConfig contains all configuration for Rocket Rocks.
type RocketConfig struct {
	Field      Field            `yaml:"field"`
	Physics    RocketPhysics    `yaml:"physics"`
	Player     RocketPlayer     `yaml:"player"`
	Rocks      RocketRocks      `yaml:"rocks"`
	Bounds     RocketBounds     `yaml:"bounds"`
	Timing     RocketTiming     `yaml:"timing"`
	Collision  CollisionPolicy  `yaml:"collision"`
	GameOver   GameOverConfig   `yaml:"game_over"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// RocketPhysics defines vertical motion for Rocket Rocks.
type RocketPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"`
	MaxY        float64 `yaml:"max_y"` // y is clamped to this value after every physics tick
	StartY      float64 `yaml:"start_y"`
}

// RocketPlayer defines the rocket box for Rocket Rocks.
type RocketPlayer struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// RocketRocks defines rock groups.
type RocketRocks struct {
	Width        float64 `yaml:"width"`
	Gap          float64 `yaml:"gap"`
	TopMin       float64 `yaml:"top_min"`    // smallest top rock height
	TopSpread    float64 `yaml:"top_spread"` // top height is floor(rand*spread + min)
	Speed        float64 `yaml:"speed"`
	SpawnX       float64 `yaml:"spawn_x"`
	DespawnX     float64 `yaml:"despawn_x"` // rocks at or left of this x are removed
	CenterChance float64 `yaml:"center_chance"`
	CenterTop    float64 `yaml:"center_top"`
	CenterBottom float64 `yaml:"center_bottom"`
}

// RocketBounds defines the out-of-bounds band for the rocket's y.
type RocketBounds struct {
	MinY float64 `yaml:"min_y"`
	MaxY float64 `yaml:"max_y"`
}

// RocketTiming defines the three independent timers.
type RocketTiming struct {
	PhysicsMs int `yaml:"physics_ms"`
	RocksMs   int `yaml:"rocks_ms"`
	SpawnMs   int `yaml:"spawn_ms"`
}

// Physics returns the gravity timer period.
func (t RocketTiming) Physics() time.Duration { return millis(t.PhysicsMs) }

// Rocks returns the rock movement timer period.
func (t RocketTiming) Rocks() time.Duration { return millis(t.RocksMs) }

// Spawn returns the rock spawn timer period.
func (t RocketTiming) Spawn() time.Duration { return millis(t.SpawnMs) }

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
	SpawnMultiplier float64 `yaml:"spawn_multiplier"` // Multiplier added to spawn chance at max difficulty
	GapReduction    float64 `yaml:"gap_reduction"`    // Gap size reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficultyPreset validates a preset name. The empty string means no preset.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

func applyPreset(d *DifficultyConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
	case IsFixedPreset(preset):
		d.Enabled = false
	default:
		d.Enabled = true
		d.InitialLevel = InitialLevelForPreset(preset)
	}
}

// ApplyAsteroidsPreset modifies the config based on a difficulty preset.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
}

// ApplyRocketPreset modifies the config based on a difficulty preset.
func ApplyRocketPreset(cfg *RocketConfig, preset DifficultyPreset) {
	applyPreset(&cfg.Difficulty, preset)
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}
