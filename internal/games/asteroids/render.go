package asteroids

import (
	"fmt"

	"github.com/vovakirdan/rocket-arcade/internal/core"
)

// Visual characters for rendering
const (
	RocketChar    = '█'
	NoseChar      = '▲'
	FlameChar     = '▼'
	ExplosionChar = '*'
)

// asteroidGlyphs are picked by rotation so asteroids look a little different.
var asteroidGlyphs = []rune{'@', '#', '%', '&'}

func glyphFor(a Asteroid) rune {
	i := int(a.Rotation/90) % len(asteroidGlyphs)
	if i < 0 {
		i += len(asteroidGlyphs)
	}
	return asteroidGlyphs[i]
}

// Draw renders the snapshot to the screen.
func (s Snapshot) Draw(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	vp := core.NewViewport(s.Field.Width, s.Field.Height, dst.Width(), dst.Height())

	for _, a := range s.Asteroids {
		vp.FillCircle(dst, a.Circle(), glyphFor(a), core.ColorAsteroid)
	}

	s.drawRocket(dst, vp)

	if s.Explosion != nil {
		vp.FillCircle(dst, s.Explosion.Circle(), ExplosionChar, core.ColorExplosion)
	}

	// Draw HUD
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", s.Score), core.ColorHUD)

	if s.GameOver {
		dst.DrawMessage("GAME OVER", fmt.Sprintf("Score: %d", s.Score), "R retry  Q quit")
	}
}

func (s Snapshot) drawRocket(dst *core.Screen, vp core.Viewport) {
	x, y, w, h := vp.RectCells(s.Player)
	dst.FillRect(x, y, w, h, RocketChar, core.ColorPlayer)

	// Nose on the top row, flame on the bottom row when the sprite is tall enough
	mid := x + w/2
	dst.SetColored(mid, y, NoseChar, core.ColorPlayer)
	if h > 2 {
		dst.SetColored(mid, y+h-1, FlameChar, core.ColorFlame)
	}
}
