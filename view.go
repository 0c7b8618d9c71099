package g2d

import "github.com/chewxy/math32"

// View is a 2D camera: the world point at Center is mapped to the middle
// of the target, scaled by Zoom and rotated by Angle degrees.
//
// View is a value type. Targets store a copy; modify a copy and pass it
// back with SetView to move the camera.
type View struct {
	center Vector2f
	zoom   Vector2f
	angle  float32

	matrix Matrix
	dirty  bool
}

// NewView returns a view centered on the world origin with unit zoom.
func NewView() View {
	return View{zoom: Vector2f{X: 1, Y: 1}, matrix: Identity()}
}

// DefaultView returns the view that maps world coordinates one-to-one onto
// a target of the given size.
func DefaultView(size Vector2f) View {
	v := NewView()
	v.SetCenter(size.Div(2))
	return v
}

// Center returns the world point shown at the middle of the target.
func (v *View) Center() Vector2f { return v.center }

// Zoom returns the zoom factors.
func (v *View) Zoom() Vector2f { return v.zoom }

// Angle returns the rotation in degrees, in [0, 360).
func (v *View) Angle() float32 { return v.angle }

// SetCenter sets the world point shown at the middle of the target.
func (v *View) SetCenter(c Vector2f) {
	if v.center == c {
		return
	}
	v.center = c
	v.dirty = true
}

// Move offsets the center by delta.
func (v *View) Move(delta Vector2f) {
	if delta.IsZero() {
		return
	}
	v.SetCenter(v.center.Add(delta))
}

// SetZoom sets the zoom factors. Negative factors are made positive.
func (v *View) SetZoom(z Vector2f) {
	z = Vector2f{X: math32.Abs(z.X), Y: math32.Abs(z.Y)}
	if v.zoom == z {
		return
	}
	v.zoom = z
	v.dirty = true
}

// SetUniformZoom sets both zoom factors to z.
func (v *View) SetUniformZoom(z float32) {
	v.SetZoom(Vector2f{X: z, Y: z})
}

// ZoomBy multiplies the zoom by factor.
func (v *View) ZoomBy(factor float32) {
	v.SetZoom(v.zoom.Mul(factor))
}

// SetAngle sets the rotation in degrees, normalized into [0, 360).
func (v *View) SetAngle(deg float32) {
	deg = normalizeAngle(deg)
	if v.angle == deg {
		return
	}
	v.angle = deg
	v.dirty = true
}

// Rotate adds delta degrees to the angle.
func (v *View) Rotate(delta float32) {
	if delta == 0 {
		return
	}
	v.SetAngle(v.angle + delta)
}

// Reset restores the origin-centered, unit-zoom, unrotated view.
func (v *View) Reset() {
	v.center = Vector2f{}
	v.zoom = Vector2f{X: 1, Y: 1}
	v.angle = 0
	v.dirty = true
}

// Equal reports whether both views have the same center, zoom and angle.
func (v View) Equal(o View) bool {
	return v.center == o.center && v.zoom == o.zoom && v.angle == o.angle
}

// Matrix returns the world-to-view matrix. The center maps to (0, 0); the
// target adds its own center offset afterwards.
func (v *View) Matrix() Matrix {
	if v.dirty {
		sin, cos := math32.Sincos(v.angle * radPerDeg)
		m := Matrix{
			A: cos * v.zoom.X,
			B: sin * v.zoom.X,
			C: -sin * v.zoom.Y,
			D: cos * v.zoom.Y,
		}
		m.Tx = -v.center.X*m.A - v.center.Y*m.C
		m.Ty = -v.center.X*m.B - v.center.Y*m.D
		v.matrix = m
		v.dirty = false
	}
	return v.matrix
}
