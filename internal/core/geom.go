// Package core provides fundamental types and utilities for the defender game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a point or direction in world units. Y grows upward.
type Vec2 struct {
	X, Y float64
}

// V returns the vector (x, y).
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale returns v * k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{v.X * k, v.Y * k}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return v.Sub(o).Len()
}

// Normalize returns v scaled to unit length.
// The second result is false for a zero (or non-finite) vector, in which case
// the zero vector is returned and callers pick their own fallback.
func (v Vec2) Normalize() (Vec2, bool) {
	l := v.Len()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec2{}, false
	}
	return Vec2{v.X / l, v.Y / l}, true
}

// NormalizeOr returns v normalized, or fallback when v has no direction.
func (v Vec2) NormalizeOr(fallback Vec2) Vec2 {
	if n, ok := v.Normalize(); ok {
		return n
	}
	return fallback
}

// Angle returns the signed angle of v from the +X axis in radians, in (-pi, pi].
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Clock returns the unit vector at the given fraction of a full turn
// (0 is +X, 0.25 is +Y, 0.5 is -X).
func Clock(turns float64) Vec2 {
	a := turns * 2 * math.Pi
	return Vec2{math.Cos(a), math.Sin(a)}
}

// Box is an axis-aligned box described by its center and full extents.
type Box struct {
	Center Vec2
	Size   Vec2
}

// NewBox creates a box centered at c with full size s.
func NewBox(c, s Vec2) Box {
	return Box{Center: c, Size: s}
}

// Min returns the lower-left corner.
func (b Box) Min() Vec2 {
	return b.Center.Sub(b.Size.Scale(0.5))
}

// Max returns the upper-right corner.
func (b Box) Max() Vec2 {
	return b.Center.Add(b.Size.Scale(0.5))
}

// BoxIntersection computes the overlap of two boxes.
// It reports false when either axis has zero or negative overlap, so boxes
// that only touch along an edge do not intersect.
func BoxIntersection(a, b Box) (Box, bool) {
	amin, amax := a.Min(), a.Max()
	bmin, bmax := b.Min(), b.Max()

	lo := Vec2{math.Max(amin.X, bmin.X), math.Max(amin.Y, bmin.Y)}
	hi := Vec2{math.Min(amax.X, bmax.X), math.Min(amax.Y, bmax.Y)}
	if !(lo.X < hi.X) || !(lo.Y < hi.Y) {
		return Box{}, false
	}
	return Box{
		Center: lo.Add(hi).Scale(0.5),
		Size:   hi.Sub(lo),
	}, true
}

// Intersects reports whether the boxes overlap with positive area.
func (b Box) Intersects(o Box) bool {
	_, ok := BoxIntersection(b, o)
	return ok
}

// Rect is an integer cell rectangle used for screen drawing.
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

// Sign returns -1, 0 or 1 matching the sign of x.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}

// Step moves start toward end by at most amount, landing exactly on end
// once the remaining distance is smaller than amount.
func Step(start, end, amount float64) float64 {
	d := end - start
	if math.Abs(d) < amount {
		return end
	}
	return start + Sign(d)*amount
}
