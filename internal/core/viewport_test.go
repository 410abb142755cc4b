package core

import "testing"

func TestViewportToCell(t *testing.T) {
	v := NewViewport(800, 600, 80, 30)

	tests := []struct {
		x, y     float64
		col, row int
	}{
		{0, 0, 0, 0},
		{9.9, 19.9, 0, 0},
		{10, 20, 1, 1},
		{799, 599, 79, 29},
		{-5, -5, -1, -1},
	}

	for _, tc := range tests {
		col, row := v.ToCell(tc.x, tc.y)
		if col != tc.col || row != tc.row {
			t.Errorf("ToCell(%v, %v) = (%d, %d), expected (%d, %d)", tc.x, tc.y, col, row, tc.col, tc.row)
		}
	}
}

func TestViewportToField(t *testing.T) {
	v := NewViewport(800, 600, 80, 30)

	x, y := v.ToField(4, 3)
	if x != 40 || y != 60 {
		t.Errorf("ToField(4, 3) = (%v, %v), expected (40, 60)", x, y)
	}
}

func TestViewportRectCells(t *testing.T) {
	v := NewViewport(800, 600, 80, 30)

	tests := []struct {
		name       string
		r          Rect
		x, y, w, h int
	}{
		{"aligned", NewRect(100, 40, 50, 80), 10, 2, 5, 4},
		{"partial cells round outwards", NewRect(105, 45, 10, 10), 10, 2, 2, 1},
		{"tiny rect keeps one cell", NewRect(101, 41, 1, 1), 10, 2, 1, 1},
		{"empty rect", NewRect(100, 40, 0, 0), 10, 2, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y, w, h := v.RectCells(tc.r)
			if x != tc.x || y != tc.y || w != tc.w || h != tc.h {
				t.Errorf("RectCells(%+v) = (%d, %d, %d, %d), expected (%d, %d, %d, %d)",
					tc.r, x, y, w, h, tc.x, tc.y, tc.w, tc.h)
			}
		})
	}
}

func TestViewportFillCircle(t *testing.T) {
	v := NewViewport(100, 100, 10, 10)
	s := NewScreen(10, 10)

	v.FillCircle(s, NewCircle(50, 50, 20), 'O', ColorAsteroid)

	if s.Get(5, 5) != 'O' {
		t.Error("circle centre cell should be painted")
	}
	if s.Get(0, 0) != ' ' || s.Get(9, 9) != ' ' {
		t.Error("cells outside the circle should stay blank")
	}
	if s.GetCell(5, 5).Color != ColorAsteroid {
		t.Error("circle should use the given color")
	}
}

func TestViewportFillCircleTiny(t *testing.T) {
	v := NewViewport(100, 100, 10, 10)
	s := NewScreen(10, 10)

	v.FillCircle(s, NewCircle(12, 12, 1), '*', ColorDefault)

	if s.Get(1, 1) != '*' {
		t.Error("a circle smaller than a cell should still paint its centre cell")
	}
}

func TestNewViewportMinimumSize(t *testing.T) {
	v := NewViewport(800, 600, 0, -2)
	if v.Cols != 1 || v.Rows != 1 {
		t.Errorf("viewport should have at least one cell, got %dx%d", v.Cols, v.Rows)
	}
}
