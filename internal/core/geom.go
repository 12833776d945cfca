// Package core provides fundamental types and utilities shared by the game
// logic and the shells. It contains no external dependencies (especially no
// Bubble Tea or ebiten) to keep game logic pure and testable.
package core

import "math"

// Vec2 is a point or displacement in world space.
type Vec2 struct {
	X, Y float64
}

// RectF is an axis-aligned rectangle in world space.
// Y grows downwards, matching screen coordinates.
type RectF struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Circle is a disc in world space.
type Circle struct {
	Center Vec2
	Radius float64
}

// Intersects reports whether the circle overlaps the rectangle.
// Touching edges count as an overlap.
func (c Circle) Intersects(r RectF) bool {
	// Closest point of the rectangle to the circle centre
	nx := ClampF(c.Center.X, r.X, r.Right())
	ny := ClampF(c.Center.Y, r.Y, r.Bottom())

	dx := c.Center.X - nx
	dy := c.Center.Y - ny
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Rect represents an axis-aligned box of screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
