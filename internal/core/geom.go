// Package core provides fundamental types and utilities for the runner.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"errors"
	"fmt"
)

// ErrInvalidGeometry is returned when a rectangle would have a non-positive size.
var ErrInvalidGeometry = errors.New("core: invalid geometry")

// Rect represents an axis-aligned bounding box in world units.
// The size is fixed at construction; only the position is expected to change.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
// Width and height must both be positive.
func NewRect(x, y, w, h float64) (Rect, error) {
	if w <= 0 || h <= 0 {
		return Rect{}, fmt.Errorf("%w: size %gx%g must be positive", ErrInvalidGeometry, w, h)
	}
	return Rect{X: x, Y: y, W: w, H: h}, nil
}

// MustRect is like NewRect but panics on invalid geometry.
// Intended for package-level fixtures and tests.
func MustRect(x, y, w, h float64) Rect {
	r, err := NewRect(x, y, w, h)
	if err != nil {
		panic(err)
	}
	return r
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects reports whether this rectangle overlaps with another.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Overlaps is the free-function form of Rect.Intersects.
func Overlaps(a, b Rect) bool {
	return a.Intersects(b)
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
