// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in field units.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	// No overlap if one rect is completely to the left, right, above, or below
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// ClosestPoint returns the point of the rectangle nearest to (x, y).
func (r Rect) ClosestPoint(x, y float64) (float64, float64) {
	return ClampF(x, r.X, r.Right()), ClampF(y, r.Y, r.Bottom())
}

// Circle is a disc described by its center and radius.
type Circle struct {
	X, Y float64
	R    float64
}

// NewCircle creates a circle centered at (x, y).
func NewCircle(x, y, r float64) Circle {
	return Circle{X: x, Y: y, R: r}
}

// IntersectsCircle reports whether the rectangle and circle overlap.
// The test is exact: the squared distance from the circle center to the closest
// point of the rectangle must be strictly less than the squared radius.
func (r Rect) IntersectsCircle(c Circle) bool {
	cx, cy := r.ClosestPoint(c.X, c.Y)
	dx := c.X - cx
	dy := c.Y - cy
	return dx*dx+dy*dy < c.R*c.R
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
