package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate reports the first unusable value in the config.
func (c AsteroidsConfig) Validate() error {
	if err := c.Field.validate(); err != nil {
		return err
	}
	p := c.Player
	if p.Width <= 0 || p.Height <= 0 {
		return invalid("player size must be positive, got %vx%v", p.Width, p.Height)
	}
	if p.Width > c.Field.Width || p.Height+p.BottomMargin > c.Field.Height {
		return invalid("player does not fit in the field")
	}
	if p.Speed < 0 {
		return invalid("player speed must not be negative")
	}
	a := c.Asteroids
	if err := probability("asteroids.spawn_chance", a.SpawnChance); err != nil {
		return err
	}
	if err := a.Size.validate("asteroids.size"); err != nil {
		return err
	}
	if a.Size.Min <= 0 || a.Size.Max >= c.Field.Width {
		return invalid("asteroids.size must lie in (0, field width)")
	}
	if err := a.Speed.validate("asteroids.speed"); err != nil {
		return err
	}
	if err := a.Rotation.validate("asteroids.rotation"); err != nil {
		return err
	}
	if c.Explosion.Size < 0 || c.Explosion.DurationMs <= 0 {
		return invalid("explosion needs a non-negative size and a positive duration")
	}
	if c.Timing.FrameMs <= 0 || c.Timing.MinTickMs < 0 {
		return invalid("timing.frame_ms must be positive and timing.min_tick_ms non-negative")
	}
	if !c.Collision.Valid() {
		return invalid("unknown collision policy %q", c.Collision)
	}
	if c.GameOver.ExitDelayMs < 0 {
		return invalid("game_over.exit_delay_ms must not be negative")
	}
	return c.Difficulty.validate()
}

// Validate reports the first unusable value in the config.
func (c RocketConfig) Validate() error {
	if err := c.Field.validate(); err != nil {
		return err
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return invalid("player size must be positive, got %vx%v", c.Player.Width, c.Player.Height)
	}
	r := c.Rocks
	if r.Width <= 0 || r.Gap <= 0 || r.Speed < 0 {
		return invalid("rocks need a positive width and gap and a non-negative speed")
	}
	if r.TopMin < 0 || r.TopSpread < 0 || r.TopMin+r.TopSpread+r.Gap > c.Field.Height {
		return invalid("rocks.top_min + rocks.top_spread + rocks.gap must fit in the field height")
	}
	if r.DespawnX >= r.SpawnX {
		return invalid("rocks.despawn_x must be left of rocks.spawn_x")
	}
	if err := probability("rocks.center_chance", r.CenterChance); err != nil {
		return err
	}
	if r.CenterTop > r.CenterBottom {
		return invalid("rocks.center_top must not exceed rocks.center_bottom")
	}
	if c.Bounds.MinY > c.Bounds.MaxY {
		return invalid("bounds.min_y must not exceed bounds.max_y")
	}
	t := c.Timing
	if t.PhysicsMs <= 0 || t.RocksMs <= 0 || t.SpawnMs <= 0 {
		return invalid("timing intervals must be positive")
	}
	if !c.Collision.Valid() {
		return invalid("unknown collision policy %q", c.Collision)
	}
	if c.GameOver.ExitDelayMs < 0 {
		return invalid("game_over.exit_delay_ms must not be negative")
	}
	return c.Difficulty.validate()
}

func (f Field) validate() error {
	if f.Width <= 0 || f.Height <= 0 {
		return invalid("field size must be positive, got %vx%v", f.Width, f.Height)
	}
	return nil
}

func (r Range) validate(name string) error {
	if r.Min > r.Max {
		return invalid("%s: min %v exceeds max %v", name, r.Min, r.Max)
	}
	return nil
}

func (d DifficultyConfig) validate() error {
	if d.InitialLevel < 0 || d.InitialLevel > 1 {
		return invalid("difficulty.initial_level must be in [0, 1]")
	}
	switch d.Progression.Type {
	case "score", "time", "none", "":
	default:
		return invalid("difficulty.progression.type %q (want score, time or none)", d.Progression.Type)
	}
	s := d.Scaling
	if s.SpeedMultiplier < 0 || s.SpawnMultiplier < 0 || s.GapReduction < 0 {
		return invalid("difficulty.scaling values must not be negative")
	}
	return nil
}

func probability(name string, p float64) error {
	if p < 0 || p > 1 {
		return invalid("%s must be in [0, 1], got %v", name, p)
	}
	return nil
}
