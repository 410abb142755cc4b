package asteroids

import (
	"time"

	"github.com/vovakirdan/rocket-arcade/internal/core"
)

// Explosion is the cosmetic burst shown where the rocket was hit.
// It never affects score or collision and is cleared by its own timer.
type Explosion struct {
	X, Y  float64
	Size  float64
	Start time.Time
}

func newExplosion(player core.Rect, size float64, at time.Time) Explosion {
	cx, cy := player.Center()
	return Explosion{
		X:     cx - size/2,
		Y:     cy - size/2,
		Size:  size,
		Start: at,
	}
}

// Rect returns the explosion's bounding box.
func (e Explosion) Rect() core.Rect {
	return core.NewRect(e.X, e.Y, e.Size, e.Size)
}

// Circle returns the disc the explosion is drawn as.
func (e Explosion) Circle() core.Circle {
	return core.NewCircle(e.X+e.Size/2, e.Y+e.Size/2, e.Size/2)
}
