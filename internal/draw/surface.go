// Package draw defines the immediate-mode drawing surface the simulation paints
// on, and the terminal implementation of it.
package draw

import (
	"image/color"
	"math"

	"golang.org/x/image/math/f64"
)

// Surface is a 2D immediate-mode drawing target with a fill color and a
// save/restore transform stack. Coordinates are logical canvas units.
type Surface interface {
	Width() float64
	Height() float64

	ClearRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)
	FillCircle(cx, cy, r float64)
	SetFillColor(c color.Color)

	Save()
	Restore()
	Translate(x, y float64)
	Rotate(angle float64)
}

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

var identity = f64.Aff3{1, 0, 0, 0, 1, 0}

// TransformStack is the current affine transform plus the stack of saved ones.
// The zero value is not ready; use NewTransformStack.
type TransformStack struct {
	cur   f64.Aff3
	saved []f64.Aff3
}

// NewTransformStack returns a stack holding the identity transform.
func NewTransformStack() TransformStack {
	return TransformStack{cur: identity}
}

// Save pushes the current transform.
func (t *TransformStack) Save() {
	t.saved = append(t.saved, t.cur)
}

// Restore pops the last saved transform. Restoring with nothing saved is a no-op.
func (t *TransformStack) Restore() {
	if len(t.saved) == 0 {
		return
	}
	t.cur = t.saved[len(t.saved)-1]
	t.saved = t.saved[:len(t.saved)-1]
}

// Reset drops all saved transforms and returns to identity.
func (t *TransformStack) Reset() {
	t.cur = identity
	t.saved = t.saved[:0]
}

// Depth returns the number of saved transforms.
func (t *TransformStack) Depth() int {
	return len(t.saved)
}

// Translate moves the origin by (x, y) in the current coordinate space.
func (t *TransformStack) Translate(x, y float64) {
	m := &t.cur
	m[2] += m[0]*x + m[1]*y
	m[5] += m[3]*x + m[4]*y
}

// Rotate turns the coordinate space clockwise (y down) by angle radians.
func (t *TransformStack) Rotate(angle float64) {
	sin, cos := math.Sincos(angle)
	m := &t.cur
	a, b, d, e := m[0], m[1], m[3], m[4]
	m[0] = a*cos + b*sin
	m[1] = b*cos - a*sin
	m[3] = d*cos + e*sin
	m[4] = e*cos - d*sin
}

// Apply maps a point from the current coordinate space to surface coordinates.
func (t *TransformStack) Apply(x, y float64) Point {
	m := &t.cur
	return Point{
		X: m[0]*x + m[1]*y + m[2],
		Y: m[3]*x + m[4]*y + m[5],
	}
}

// Rect returns the four transformed corners of an axis-aligned local rectangle.
func (t *TransformStack) Rect(x, y, w, h float64) [4]Point {
	return [4]Point{
		t.Apply(x, y),
		t.Apply(x+w, y),
		t.Apply(x+w, y+h),
		t.Apply(x, y+h),
	}
}
