// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea or Ebiten)
// to keep game logic pure and testable.
package core

// Point is a position in logical screen pixels.
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X int `json:"x" yaml:"x"` // Top-left corner position
	Y int `json:"y" yaml:"y"`
	W int `json:"w"` // Width and height
	H int `json:"h"`
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Intersects reports whether the two rectangles overlap. Touching edges do
// not count.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Window is an inclusive coordinate range used for outcome checks.
// Unlike Rect, both bounds are part of the window.
type Window struct {
	MinX int `json:"min_x" yaml:"min_x"`
	MaxX int `json:"max_x" yaml:"max_x"`
	MinY int `json:"min_y" yaml:"min_y"`
	MaxY int `json:"max_y" yaml:"max_y"`
}

// WindowAround returns the window [p-tol, p+tol] on both axes.
// A zero tolerance matches p exactly.
func WindowAround(p Point, tol int) Window {
	if tol < 0 {
		tol = 0
	}
	return Window{MinX: p.X - tol, MaxX: p.X + tol, MinY: p.Y - tol, MaxY: p.Y + tol}
}

// Contains reports whether p lies inside the window, bounds included.
func (w Window) Contains(p Point) bool {
	return p.X >= w.MinX && p.X <= w.MaxX && p.Y >= w.MinY && p.Y <= w.MaxY
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 matching the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
