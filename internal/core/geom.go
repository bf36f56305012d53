// Package core provides fundamental types and utilities for the arcade platform.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to
// keep game logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns a vector of the given length pointing along angle (radians).
// Angle 0 points along +X; with screen coordinates (Y down), -Pi/2 points up.
func FromAngle(angle, length float64) Vec2 {
	return Vec2{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the Euclidean distance between v and o.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// ClampLen scales v down so its length does not exceed max.
// Direction is preserved; shorter vectors are returned unchanged.
func (v Vec2) ClampLen(max float64) Vec2 {
	l := v.Len()
	if l <= max || l == 0 {
		return v
	}
	return v.Scale(max / l)
}

// Wrap re-enters v into [0, w) x [0, h) from the opposite edge.
func (v Vec2) Wrap(w, h float64) Vec2 {
	return Vec2{X: WrapF(v.X, w), Y: WrapF(v.Y, h)}
}

// In reports whether v lies inside the closed box [0, w] x [0, h].
func (v Vec2) In(w, h float64) bool {
	return v.X >= 0 && v.X <= w && v.Y >= 0 && v.Y <= h
}

// WrapF maps val into [0, size). A non-positive size returns val unchanged.
func WrapF(val, size float64) float64 {
	if size <= 0 {
		return val
	}
	val = math.Mod(val, size)
	if val < 0 {
		val += size
	}
	// -tiny + size rounds to size in float64
	if val >= size {
		val = 0
	}
	return val
}

// CirclesOverlap reports whether two circles intersect, with the sum of radii
// reduced by margin. Touching circles do not overlap.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64, margin float64) bool {
	return a.Dist(b) < ra+rb-margin
}

// WrapAngle normalizes an angle in radians to [-Pi, Pi).
func WrapAngle(a float64) float64 {
	return WrapF(a+math.Pi, 2*math.Pi) - math.Pi
}

// DegToRad converts degrees to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// Rect represents an axis-aligned cell rectangle used for screen layout.
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
