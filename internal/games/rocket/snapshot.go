package rocket

import (
	"fmt"

	"github.com/vovakirdan/rocket-arcade/internal/config"
	"github.com/vovakirdan/rocket-arcade/internal/core"
)

// Snapshot is an immutable copy of the game handed to renderers.
type Snapshot struct {
	Field    config.Field
	RockCfg  config.RocketRocks
	Player   core.Rect
	Velocity float64
	Rocks    []Rock
	Score    int
	GameOver bool
	Tick     int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() core.Frame {
	return g.snapshot()
}

func (g *Game) snapshot() Snapshot {
	return Snapshot{
		Field:    g.cfg.Field,
		RockCfg:  g.cfg.Rocks,
		Player:   g.playerRect(),
		Velocity: g.playerVel,
		Rocks:    g.rocks.Rocks(),
		Score:    g.score,
		GameOver: g.gameOver,
		Tick:     g.tickCount,
	}
}

// Status returns score and game-over flag.
func (s Snapshot) Status() core.GameState {
	return core.GameState{Score: s.Score, GameOver: s.GameOver}
}

// Visual characters for rendering
const (
	RocketChar = '█'
	NoseChar   = '▶'
	FlameChar  = '≈'
	RockChar   = '█'
	CenterChar = '▓'
)

// Draw renders the snapshot to the screen.
func (s Snapshot) Draw(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	vp := core.NewViewport(s.Field.Width, s.Field.Height, dst.Width(), dst.Height())

	for _, r := range s.Rocks {
		for i, shape := range r.Shapes(s.RockCfg, s.Field) {
			ch := RockChar
			if i == 2 {
				ch = CenterChar
			}
			vp.FillRect(dst, shape, ch, core.ColorRock)
		}
	}

	x, y, w, h := vp.RectCells(s.Player)
	dst.FillRect(x, y, w, h, RocketChar, core.ColorPlayer)
	dst.SetColored(x+w-1, y+h/2, NoseChar, core.ColorPlayer)
	// Exhaust while climbing
	if s.Velocity < 0 && !s.GameOver {
		dst.SetColored(x-1, y+h/2, FlameChar, core.ColorFlame)
	}

	// Draw HUD
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", s.Score), core.ColorHUD)

	if s.GameOver {
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d", s.Score), "R retry  Q quit")
	}
}
