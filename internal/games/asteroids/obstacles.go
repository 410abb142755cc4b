package asteroids

import (
	"math/rand"

	"github.com/vovakirdan/rocket-arcade/internal/config"
	"github.com/vovakirdan/rocket-arcade/internal/core"
)

// Asteroid is a falling rock drawn as a circle inscribed in its size box.
type Asteroid struct {
	ID       uint64
	X, Y     float64 // top-left corner of the bounding box
	Size     float64
	Speed    float64 // downward movement per tick
	Rotation float64 // degrees, render only
}

// Circle returns the collision circle of the asteroid.
func (a Asteroid) Circle() core.Circle {
	return core.NewCircle(a.X+a.Size/2, a.Y+a.Size/2, a.Size/2)
}

// randSource is the subset of *rand.Rand the manager needs.
type randSource interface {
	Float64() float64
}

// AsteroidManager handles spawning, movement, and removal of asteroids.
type AsteroidManager struct {
	asteroids  []Asteroid
	rng        randSource
	nextID     uint64
	cfg        *config.AsteroidsConfig
	difficulty *config.DifficultyManager
}

// NewAsteroidManager creates a new asteroid manager with the given RNG seed.
func NewAsteroidManager(seed int64, cfg *config.AsteroidsConfig, diff *config.DifficultyManager) *AsteroidManager {
	am := &AsteroidManager{
		asteroids:  make([]Asteroid, 0, 16),
		cfg:        cfg,
		difficulty: diff,
	}
	am.Reset(seed)
	return am
}

// UpdateConfig updates the configuration.
func (am *AsteroidManager) UpdateConfig(cfg *config.AsteroidsConfig, diff *config.DifficultyManager) {
	am.cfg = cfg
	am.difficulty = diff
}

// Reset clears all asteroids and reseeds the RNG.
func (am *AsteroidManager) Reset(seed int64) {
	am.asteroids = am.asteroids[:0]
	am.rng = rand.New(rand.NewSource(seed))
	am.nextID = 0
}

// Advance moves every asteroid down by its speed and drops the ones that
// have fully left the field.
func (am *AsteroidManager) Advance() {
	bottom := am.cfg.Field.Height
	kept := am.asteroids[:0]
	for _, a := range am.asteroids {
		a.Y += a.Speed
		if a.Y < bottom+a.Size {
			kept = append(kept, a)
		}
	}
	am.asteroids = kept
}

// MaybeSpawn rolls the per-tick spawn chance and appends a new asteroid above
// the field when it succeeds.
func (am *AsteroidManager) MaybeSpawn(score, ticks int) (Asteroid, bool) {
	spawn := am.cfg.Asteroids
	if am.rng.Float64() >= am.difficulty.SpawnChance(spawn.SpawnChance, score, ticks) {
		return Asteroid{}, false
	}

	size := spawn.Size.At(am.rng.Float64())
	x := am.rng.Float64() * (am.cfg.Field.Width - size)
	speed := am.difficulty.Speed(spawn.Speed.At(am.rng.Float64()), score, ticks)
	rotation := spawn.Rotation.At(am.rng.Float64())

	am.nextID++
	a := Asteroid{
		ID:       am.nextID,
		X:        x,
		Y:        -size,
		Size:     size,
		Speed:    speed,
		Rotation: rotation,
	}
	am.asteroids = append(am.asteroids, a)
	return a, true
}

// Hit returns the first asteroid overlapping the player, in insertion order.
func (am *AsteroidManager) Hit(player core.Rect) (Asteroid, bool) {
	for _, a := range am.asteroids {
		if player.IntersectsCircle(a.Circle()) {
			return a, true
		}
	}
	return Asteroid{}, false
}

// Asteroids returns a copy of the active asteroids.
func (am *AsteroidManager) Asteroids() []Asteroid {
	out := make([]Asteroid, len(am.asteroids))
	copy(out, am.asteroids)
	return out
}

// Len returns the number of active asteroids.
func (am *AsteroidManager) Len() int {
	return len(am.asteroids)
}

// restore replaces the active asteroids with an earlier copy.
func (am *AsteroidManager) restore(prev []Asteroid) {
	am.asteroids = append(am.asteroids[:0], prev...)
}

// add appends an asteroid with a fresh id.
func (am *AsteroidManager) add(a Asteroid) Asteroid {
	am.nextID++
	a.ID = am.nextID
	am.asteroids = append(am.asteroids, a)
	return a
}
