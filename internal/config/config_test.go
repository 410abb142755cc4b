package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var a AsteroidsConfig
	require.NoError(t, yaml.Unmarshal(defaultAsteroidsYAML, &a))
	assert.Equal(t, DefaultAsteroidsConfig(), a)

	var r RocketConfig
	require.NoError(t, yaml.Unmarshal(defaultRocketYAML, &r))
	assert.Equal(t, DefaultRocketConfig(), r)
}

func TestDefaultsValidate(t *testing.T) {
	assert.NoError(t, DefaultAsteroidsConfig().Validate())
	assert.NoError(t, DefaultRocketConfig().Validate())
}

func TestDefaultCollisionPolicies(t *testing.T) {
	assert.Equal(t, CollisionFreeze, DefaultAsteroidsConfig().Collision)
	assert.Equal(t, CollisionImmediate, DefaultRocketConfig().Collision)
}

func TestLoadCustomPathOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "asteroids.yaml")
	require.NoError(t, os.WriteFile(path, []byte("collision: immediate\nasteroids:\n  spawn_chance: 0.5\n"), 0o644))

	cfg, err := LoadAsteroids(path)
	require.NoError(t, err)

	assert.Equal(t, CollisionImmediate, cfg.Collision)
	assert.Equal(t, 0.5, cfg.Asteroids.SpawnChance)
	// Untouched keys keep their defaults
	assert.Equal(t, Range{Min: 30, Max: 70}, cfg.Asteroids.Size)
	assert.Equal(t, 50.0, cfg.Player.Width)
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := LoadRocket(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "config: read")
}

func TestLoadCustomPathInvalid(t *testing.T) {
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("physics: [1, 2"), 0o644))
	_, err := LoadRocket(broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("collision: bounce\n"), 0o644))
	cfg, err := LoadRocket(bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalid)
	// The defaults are returned alongside the error
	assert.Equal(t, DefaultRocketConfig(), cfg)
}

func TestLoadWithoutFilesUsesEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := LoadAsteroids("")
	require.NoError(t, err)
	assert.Equal(t, DefaultAsteroidsConfig(), cfg)
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	require.NoError(t, os.MkdirAll(filepath.Join(work, "configs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(work, "configs", "rocket.yaml"), []byte("rocks:\n  gap: 170\n"), 0o644))

	cfg, err := LoadRocket("")
	require.NoError(t, err)
	assert.Equal(t, 170.0, cfg.Rocks.Gap, "local configs/ file should be used")

	userDir := filepath.Join(home, ".arcade", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "rocket.yaml"), []byte("rocks:\n  gap: 180\n"), 0o644))

	cfg, err = LoadRocket("")
	require.NoError(t, err)
	assert.Equal(t, 180.0, cfg.Rocks.Gap, "user config should win over local configs/")
}

func TestLoadSkipsBrokenUserConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(t.TempDir())

	userDir := filepath.Join(home, ".arcade", "configs")
	require.NoError(t, os.MkdirAll(userDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(userDir, "asteroids.yaml"), []byte("timing:\n  frame_ms: 0\n"), 0o644))

	cfg, err := LoadAsteroids("")
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Timing.FrameMs)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(a *AsteroidsConfig, r *RocketConfig)
	}{
		{"asteroid size range inverted", func(a *AsteroidsConfig, _ *RocketConfig) { a.Asteroids.Size = Range{Min: 70, Max: 30} }},
		{"spawn chance above one", func(a *AsteroidsConfig, _ *RocketConfig) { a.Asteroids.SpawnChance = 1.5 }},
		{"zero frame period", func(a *AsteroidsConfig, _ *RocketConfig) { a.Timing.FrameMs = 0 }},
		{"unknown asteroid policy", func(a *AsteroidsConfig, _ *RocketConfig) { a.Collision = "bounce" }},
		{"negative exit delay", func(a *AsteroidsConfig, _ *RocketConfig) { a.GameOver.ExitDelayMs = -1 }},
		{"zero spawn interval", func(_ *AsteroidsConfig, r *RocketConfig) { r.Timing.SpawnMs = 0 }},
		{"gap taller than field", func(_ *AsteroidsConfig, r *RocketConfig) { r.Rocks.Gap = 500 }},
		{"center chance negative", func(_ *AsteroidsConfig, r *RocketConfig) { r.Rocks.CenterChance = -0.1 }},
		{"bad progression type", func(_ *AsteroidsConfig, r *RocketConfig) { r.Difficulty.Progression.Type = "lunar" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, r := DefaultAsteroidsConfig(), DefaultRocketConfig()
			tc.mutate(&a, &r)

			errA, errR := a.Validate(), r.Validate()
			err := errA
			if err == nil {
				err = errR
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalid)
		})
	}
}

func TestParseCollisionPolicy(t *testing.T) {
	p, err := ParseCollisionPolicy("freeze")
	require.NoError(t, err)
	assert.Equal(t, CollisionFreeze, p)

	_, err = ParseCollisionPolicy("sticky")
	assert.Error(t, err)
}

func TestParseDifficultyPreset(t *testing.T) {
	for _, s := range []string{"", "easy", "normal", "hard", "fixed"} {
		_, err := ParseDifficultyPreset(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseDifficultyPreset("nightmare")
	assert.Error(t, err)
}

func TestApplyPresets(t *testing.T) {
	a := DefaultAsteroidsConfig()
	ApplyAsteroidsPreset(&a, DifficultyHard)
	assert.True(t, a.Difficulty.Enabled)
	assert.Equal(t, 0.7, a.Difficulty.InitialLevel)

	ApplyAsteroidsPreset(&a, DifficultyFixed)
	assert.False(t, a.Difficulty.Enabled)

	r := DefaultRocketConfig()
	ApplyRocketPreset(&r, "")
	assert.Equal(t, DefaultRocketConfig().Difficulty, r.Difficulty, "empty preset leaves config alone")
}

func TestDurations(t *testing.T) {
	a := DefaultAsteroidsConfig()
	assert.Equal(t, "16ms", a.Timing.MinTick().String())
	assert.Equal(t, "1s", a.Explosion.Duration().String())
	assert.Zero(t, a.GameOver.ExitDelay())

	r := DefaultRocketConfig()
	assert.Equal(t, "1.8s", r.Timing.Spawn().String())
}

func TestGetDefaultYAML(t *testing.T) {
	assert.NotEmpty(t, GetDefaultYAML("asteroids"))
	assert.NotEmpty(t, GetDefaultYAML("rocket"))
	assert.Nil(t, GetDefaultYAML("pong"))
}
