package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

//go:embed defaults/rocket.yaml
var defaultRocketYAML []byte

// DefaultAsteroidsConfig returns the default Asteroid Dodge configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Field: Field{Width: 800, Height: 600},
		Player: AsteroidsPlayer{
			Width:        50,
			Height:       80,
			BottomMargin: 20,
			Speed:        10,
		},
		Asteroids: AsteroidsSpawn{
			SpawnChance: 0.03,
			Size:        Range{Min: 30, Max: 70},
			Speed:       Range{Min: 4, Max: 7},
			Rotation:    Range{Min: 0, Max: 360},
		},
		Explosion: ExplosionConfig{
			Size:       100,
			DurationMs: 1000,
		},
		Timing: AsteroidsTiming{
			FrameMs:   8,
			MinTickMs: 16,
		},
		Collision: CollisionFreeze,
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 3000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SpawnMultiplier: 1.0,
			},
		},
	}
}

// DefaultRocketConfig returns the default Rocket Rocks configuration.
func DefaultRocketConfig() RocketConfig {
	return RocketConfig{
		Field: Field{Width: 800, Height: 600},
		Physics: RocketPhysics{
			Gravity:     0.6,
			JumpImpulse: -10,
			MaxY:        500,
			StartY:      250,
		},
		Player: RocketPlayer{
			X:      100,
			Width:  40,
			Height: 40,
		},
		Rocks: RocketRocks{
			Width:        50,
			Gap:          150,
			TopMin:       50,
			TopSpread:    200,
			Speed:        5,
			SpawnX:       800,
			DespawnX:     -60,
			CenterChance: 0.5,
			CenterTop:    250,
			CenterBottom: 300,
		},
		Bounds: RocketBounds{MinY: 0, MaxY: 560},
		Timing: RocketTiming{
			PhysicsMs: 20,
			RocksMs:   20,
			SpawnMs:   1800,
		},
		Collision: CollisionImmediate,
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.6,
				GapReduction:    40,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "asteroids":
		return defaultAsteroidsYAML
	case "rocket":
		return defaultRocketYAML
	default:
		return nil
	}
}
