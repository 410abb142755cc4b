package core

import "math"

// Viewport maps play-field coordinates (pixels of the logical field) onto
// screen cells. Both games simulate in a fixed field and render into whatever
// terminal size is available.
type Viewport struct {
	FieldW, FieldH float64
	Cols, Rows     int
}

// NewViewport creates a viewport for a field rendered into cols x rows cells.
func NewViewport(fieldW, fieldH float64, cols, rows int) Viewport {
	return Viewport{FieldW: fieldW, FieldH: fieldH, Cols: max(cols, 1), Rows: max(rows, 1)}
}

// col and row return fractional cell coordinates. Multiplying before dividing
// keeps whole-number inputs exact.
func (v Viewport) col(x float64) float64 { return x * float64(v.Cols) / v.FieldW }
func (v Viewport) row(y float64) float64 { return y * float64(v.Rows) / v.FieldH }

// ToCell converts a field point to the cell containing it.
func (v Viewport) ToCell(x, y float64) (int, int) {
	return int(math.Floor(v.col(x))), int(math.Floor(v.row(y)))
}

// ToField converts a cell to the field coordinate of its top-left corner.
func (v Viewport) ToField(col, row int) (float64, float64) {
	return float64(col) * v.FieldW / float64(v.Cols), float64(row) * v.FieldH / float64(v.Rows)
}

// RectCells returns the cell rectangle covering r. Any non-empty field rect
// covers at least one cell so small obstacles never vanish.
func (v Viewport) RectCells(r Rect) (x, y, w, h int) {
	x0, y0 := v.ToCell(r.X, r.Y)
	x1 := int(math.Ceil(v.col(r.Right())))
	y1 := int(math.Ceil(v.row(r.Bottom())))
	w, h = x1-x0, y1-y0
	if r.W > 0 {
		w = max(w, 1)
	}
	if r.H > 0 {
		h = max(h, 1)
	}
	return x0, y0, w, h
}

// FillRect paints a field rect onto the screen.
func (v Viewport) FillRect(dst *Screen, r Rect, fill rune, c Color) {
	x, y, w, h := v.RectCells(r)
	dst.FillRect(x, y, w, h, fill, c)
}

// FillCircle paints every cell whose centre lies inside the field circle.
// A circle smaller than a cell still paints the cell holding its centre.
func (v Viewport) FillCircle(dst *Screen, c Circle, fill rune, col Color) {
	x, y, w, h := v.RectCells(NewRect(c.X-c.R, c.Y-c.R, 2*c.R, 2*c.R))
	halfW, halfH := v.FieldW/float64(v.Cols)/2, v.FieldH/float64(v.Rows)/2
	painted := false
	for cy := y; cy < y+h; cy++ {
		for cx := x; cx < x+w; cx++ {
			fx, fy := v.ToField(cx, cy)
			dx, dy := fx+halfW-c.X, fy+halfH-c.Y
			if dx*dx+dy*dy <= c.R*c.R {
				dst.SetColored(cx, cy, fill, col)
				painted = true
			}
		}
	}
	if !painted {
		cx, cy := v.ToCell(c.X, c.Y)
		dst.SetColored(cx, cy, fill, col)
	}
}
