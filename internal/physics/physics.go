// Package physics provides the 2D vector type and the per-frame kinematics
// shared by moving objects.
package physics

import "math"

// Per-frame constants.
const (
	Gravity  = 0.05  // Added to velocity.Y every frame for ship and bullets
	Friction = 0.985 // Ship velocity scale per frame
)

// Vector2 is a position or velocity. Owners mutate it in place.
type Vector2 struct {
	X, Y float64
}

// Vec returns the vector (x, y).
func Vec(x, y float64) Vector2 {
	return Vector2{X: x, Y: y}
}

// Heading returns a vector of the given magnitude pointing along angle (radians).
func Heading(angle, magnitude float64) Vector2 {
	return Vector2{X: math.Cos(angle) * magnitude, Y: math.Sin(angle) * magnitude}
}

// Translate moves pos by vel, then accelerates vel downward by gravity.
func Translate(pos, vel *Vector2, gravity float64) {
	pos.X += vel.X
	pos.Y += vel.Y
	vel.Y += gravity
}

// ApplyFriction scales both velocity components by factor.
func ApplyFriction(vel *Vector2, factor float64) {
	vel.X *= factor
	vel.Y *= factor
}

// Bounds is the visible canvas rectangle, anchored at the origin.
type Bounds struct {
	Width  float64
	Height float64
}

// Contains reports whether p lies inside the rectangle, edges included.
func (b Bounds) Contains(p Vector2) bool {
	return !(p.Y > b.Height || p.Y < 0 || p.X > b.Width || p.X < 0)
}

// Below reports whether p has dropped more than margin past the bottom edge.
func (b Bounds) Below(p Vector2, margin float64) bool {
	return p.Y > b.Height+margin
}
