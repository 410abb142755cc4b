package config

import "math"

// DifficultyManager calculates dynamic game parameters based on score/time.
// A disabled manager returns every base value unchanged, so the default
// configs play with their exact constants.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty scaling is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.cfg.Enabled {
		return 0
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.initialLevel
	}

	// Clamp progress to [0, 1]
	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// Speed returns the current speed based on difficulty level.
func (d *DifficultyManager) Speed(baseSpeed float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	// Speed increases from base to base * (1 + speedMultiplier)
	return baseSpeed * (1.0 + level*d.cfg.Scaling.SpeedMultiplier)
}

// SpawnChance returns the per-tick spawn probability, capped at 1.
func (d *DifficultyManager) SpawnChance(base float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	return clampF(base*(1.0+level*d.cfg.Scaling.SpawnMultiplier), 0.0, 1.0)
}

// GapSize returns the current gap size based on difficulty level.
// The gap never shrinks below minGap.
func (d *DifficultyManager) GapSize(baseGap, minGap float64, score int, ticks int) float64 {
	level := d.Level(score, ticks)
	// Gap decreases as difficulty increases
	result := baseGap - level*d.cfg.Scaling.GapReduction
	return math.Max(result, math.Min(minGap, baseGap))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
