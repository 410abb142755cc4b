package rocket

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/rocket-arcade/internal/config"
	"github.com/vovakirdan/rocket-arcade/internal/core"
)

// Rock is a rock group: a top rock hanging from the ceiling, a bottom rock
// standing on the floor and an optional centre rock between them.
type Rock struct {
	ID     uint64
	X      float64 // left edge
	Top    float64 // height of the top rock
	Bottom float64 // height of the bottom rock
	Center bool
}

// Shapes returns the collision rectangles of the group.
func (r Rock) Shapes(rc config.RocketRocks, field config.Field) []core.Rect {
	shapes := []core.Rect{
		core.NewRect(r.X, 0, rc.Width, r.Top),
		core.NewRect(r.X, field.Height-r.Bottom, rc.Width, r.Bottom),
	}
	if r.Center {
		shapes = append(shapes, core.NewRect(r.X, rc.CenterTop, rc.Width, rc.CenterBottom-rc.CenterTop))
	}
	return shapes
}

type randSource interface {
	Float64() float64
}

// RockManager handles spawning, movement, and removal of rock groups.
type RockManager struct {
	rocks      []Rock
	rng        randSource
	nextID     uint64
	cfg        *config.RocketConfig
	difficulty *config.DifficultyManager
}

// NewRockManager creates a new rock manager with the given RNG seed.
func NewRockManager(seed int64, cfg *config.RocketConfig, diff *config.DifficultyManager) *RockManager {
	rm := &RockManager{
		rocks:      make([]Rock, 0, 8),
		cfg:        cfg,
		difficulty: diff,
	}
	rm.Reset(seed)
	return rm
}

// UpdateConfig updates the configuration.
func (rm *RockManager) UpdateConfig(cfg *config.RocketConfig, diff *config.DifficultyManager) {
	rm.cfg = cfg
	rm.difficulty = diff
}

// Reset clears all rocks and reseeds the RNG.
func (rm *RockManager) Reset(seed int64) {
	rm.rocks = rm.rocks[:0]
	rm.rng = rand.New(rand.NewSource(seed))
	rm.nextID = 0
}

// Advance moves every rock left and removes the ones at or past the despawn line.
func (rm *RockManager) Advance(score, ticks int) {
	speed := rm.difficulty.Speed(rm.cfg.Rocks.Speed, score, ticks)
	kept := rm.rocks[:0]
	for _, r := range rm.rocks {
		r.X -= speed
		if r.X > rm.cfg.Rocks.DespawnX {
			kept = append(kept, r)
		}
	}
	rm.rocks = kept
}

// Spawn appends a new rock group at the spawn line.
func (rm *RockManager) Spawn(score, ticks int) Rock {
	rc := rm.cfg.Rocks
	// The gap never closes below twice the rocket height
	gap := rm.difficulty.GapSize(rc.Gap, 2*rm.cfg.Player.Height, score, ticks)
	top := math.Floor(rm.rng.Float64()*rc.TopSpread + rc.TopMin)
	center := rm.rng.Float64() < rc.CenterChance

	return rm.add(Rock{
		X:      rc.SpawnX,
		Top:    top,
		Bottom: rm.cfg.Field.Height - top - gap,
		Center: center,
	})
}

// Hit reports whether the player box overlaps any rock.
func (rm *RockManager) Hit(player core.Rect) bool {
	for _, r := range rm.rocks {
		for _, shape := range r.Shapes(rm.cfg.Rocks, rm.cfg.Field) {
			if player.Intersects(shape) {
				return true
			}
		}
	}
	return false
}

// Rocks returns a copy of the active rocks.
func (rm *RockManager) Rocks() []Rock {
	out := make([]Rock, len(rm.rocks))
	copy(out, rm.rocks)
	return out
}

// Len returns the number of active rock groups.
func (rm *RockManager) Len() int {
	return len(rm.rocks)
}

func (rm *RockManager) restore(prev []Rock) {
	rm.rocks = append(rm.rocks[:0], prev...)
}

func (rm *RockManager) add(r Rock) Rock {
	rm.nextID++
	r.ID = rm.nextID
	rm.rocks = append(rm.rocks, r)
	return r
}
