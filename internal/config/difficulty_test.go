package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scoreDifficulty(enabled bool, initial float64) DifficultyConfig {
	return DifficultyConfig{
		Enabled:      enabled,
		InitialLevel: initial,
		Progression:  ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling: ScalingConfig{
			SpeedMultiplier: 1.0,
			SpawnMultiplier: 1.0,
			GapReduction:    50,
		},
	}
}

func TestDisabledManagerKeepsBaseValues(t *testing.T) {
	d := NewDifficultyManager(scoreDifficulty(false, 0.7))

	assert.Zero(t, d.Level(5000, 5000))
	assert.Equal(t, 5.0, d.Speed(5, 5000, 0))
	assert.Equal(t, 0.03, d.SpawnChance(0.03, 5000, 0))
	assert.Equal(t, 150.0, d.GapSize(150, 100, 5000, 0))
}

func TestLevelInterpolatesFromInitial(t *testing.T) {
	d := NewDifficultyManager(scoreDifficulty(true, 0.5))

	assert.Equal(t, 0.5, d.Level(0, 0))
	assert.InDelta(t, 0.75, d.Level(50, 0), 1e-9)
	assert.Equal(t, 1.0, d.Level(100, 0))
	assert.Equal(t, 1.0, d.Level(1000, 0), "progress is clamped")
}

func TestLevelTimeProgression(t *testing.T) {
	cfg := scoreDifficulty(true, 0)
	cfg.Progression.Type = "time"
	d := NewDifficultyManager(cfg)

	assert.Zero(t, d.Level(100, 0))
	assert.InDelta(t, 0.5, d.Level(0, 50), 1e-9)
}

func TestLevelNoneProgression(t *testing.T) {
	cfg := scoreDifficulty(true, 0.3)
	cfg.Progression.Type = "none"
	d := NewDifficultyManager(cfg)

	assert.Equal(t, 0.3, d.Level(1000, 1000))
}

func TestScaledValues(t *testing.T) {
	d := NewDifficultyManager(scoreDifficulty(true, 0))

	assert.Equal(t, 10.0, d.Speed(5, 100, 0))
	assert.Equal(t, 1.0, d.SpawnChance(0.6, 100, 0), "spawn chance is capped at 1")
	assert.Equal(t, 100.0, d.GapSize(150, 90, 100, 0))
	assert.Equal(t, 120.0, d.GapSize(150, 120, 100, 0), "gap never drops below the minimum")
}

func TestSetters(t *testing.T) {
	d := NewDifficultyManager(scoreDifficulty(false, 0))
	assert.False(t, d.IsEnabled())

	d.SetEnabled(true)
	d.SetInitialLevel(2)
	assert.True(t, d.IsEnabled())
	assert.Equal(t, 1.0, d.Level(0, 0))
}
