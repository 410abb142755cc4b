package asteroids

import (
	"github.com/vovakirdan/rocket-arcade/internal/config"
	"github.com/vovakirdan/rocket-arcade/internal/core"
)

// Snapshot is an immutable copy of the game handed to renderers.
type Snapshot struct {
	Field     config.Field
	Player    core.Rect
	Asteroids []Asteroid // insertion order
	Explosion *Explosion // nil when no explosion is visible
	Score     int
	GameOver  bool
	Tick      int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() core.Frame {
	return g.snapshot()
}

func (g *Game) snapshot() Snapshot {
	s := Snapshot{
		Field:     g.cfg.Field,
		Player:    g.playerRect(),
		Asteroids: g.asteroids.Asteroids(),
		Score:     g.score,
		GameOver:  g.gameOver,
		Tick:      g.tickCount,
	}
	if g.explosion != nil {
		e := *g.explosion
		s.Explosion = &e
	}
	return s
}

// Status returns score and game-over flag.
func (s Snapshot) Status() core.GameState {
	return core.GameState{Score: s.Score, GameOver: s.GameOver}
}
