package g2d

import "github.com/chewxy/math32"

// Transformable holds the position, origin, scale and rotation of an
// object and derives its affine matrix on demand.
//
// Every setter compares the new value with the current one using exact
// equality and does nothing when they match. An effective change marks the
// matrix stale and increments Generation, which dependents compare to
// decide whether their cached world-space data must be rebuilt.
//
// Transformable is not safe for concurrent use.
type Transformable struct {
	position Vector2f
	origin   Vector2f
	scale    Vector2f
	rotation float32
	mirror   bool

	matrix     Matrix
	dirty      bool
	generation uint64
}

// NewTransformable returns an identity transform.
func NewTransformable() Transformable {
	return Transformable{scale: Vector2f{X: 1, Y: 1}, matrix: Identity()}
}

// Position returns the position of the origin in the parent space.
func (t *Transformable) Position() Vector2f { return t.position }

// Origin returns the local pivot point for rotation and scaling.
func (t *Transformable) Origin() Vector2f { return t.origin }

// Scale returns the scale factors.
func (t *Transformable) Scale() Vector2f { return t.scale }

// Rotation returns the rotation in degrees, in [0, 360).
func (t *Transformable) Rotation() float32 { return t.rotation }

// Generation returns a counter that increases on every effective change.
func (t *Transformable) Generation() uint64 { return t.generation }

// Mirroring reports whether negative scale factors are kept.
func (t *Transformable) Mirroring() bool { return t.mirror }

// SetMirroring controls how negative scale factors are treated. By default
// the sign is stripped; with mirroring enabled a negative factor flips the
// object along that axis. Changing the mode does not touch the current
// scale.
func (t *Transformable) SetMirroring(enabled bool) {
	t.mirror = enabled
}

// SetPosition sets the position.
func (t *Transformable) SetPosition(p Vector2f) {
	if t.position == p {
		return
	}
	t.position = p
	t.touch()
}

// Move offsets the position by delta.
func (t *Transformable) Move(delta Vector2f) {
	if delta.IsZero() {
		return
	}
	t.position = t.position.Add(delta)
	t.touch()
}

// SetOrigin sets the local pivot point. The object moves visually unless
// the origin was unchanged.
func (t *Transformable) SetOrigin(o Vector2f) {
	if t.origin == o {
		return
	}
	t.origin = o
	t.touch()
}

// SetOriginKeepPosition changes the pivot point and compensates the
// position so that no local point changes its transformed location.
func (t *Transformable) SetOriginKeepPosition(o Vector2f) {
	if t.origin == o {
		return
	}
	d := o.Sub(t.origin).MulVec(t.scale)
	t.position = t.position.Add(RotateDeg(d, t.rotation))
	t.origin = o
	t.touch()
}

// SetScale sets the scale factors.
func (t *Transformable) SetScale(s Vector2f) {
	s = t.clampScale(s)
	if t.scale == s {
		return
	}
	t.scale = s
	t.touch()
}

// SetUniformScale sets both scale factors to s.
func (t *Transformable) SetUniformScale(s float32) {
	t.SetScale(Vector2f{X: s, Y: s})
}

// ScaleBy multiplies the current scale by factor.
func (t *Transformable) ScaleBy(factor Vector2f) {
	t.SetScale(t.scale.MulVec(factor))
}

// UniformScaleBy multiplies both scale factors by factor.
func (t *Transformable) UniformScaleBy(factor float32) {
	t.ScaleBy(Vector2f{X: factor, Y: factor})
}

// SetRotation sets the rotation in degrees. The value is normalized into
// [0, 360).
func (t *Transformable) SetRotation(deg float32) {
	deg = normalizeAngle(deg)
	if t.rotation == deg {
		return
	}
	t.rotation = deg
	t.touch()
}

// Rotate adds delta degrees to the rotation.
func (t *Transformable) Rotate(delta float32) {
	if delta == 0 {
		return
	}
	t.SetRotation(t.rotation + delta)
}

// Reset restores the identity transform. It does nothing when the
// transform already is the identity.
func (t *Transformable) Reset() {
	if t.position.IsZero() && t.origin.IsZero() && t.scale == (Vector2f{X: 1, Y: 1}) && t.rotation == 0 {
		return
	}
	t.position = Vector2f{}
	t.origin = Vector2f{}
	t.scale = Vector2f{X: 1, Y: 1}
	t.rotation = 0
	t.touch()
}

// Matrix returns the object-to-parent matrix, recomputing it if any
// attribute changed since the last call.
//
// The matrix scales and rotates around the origin, then translates the
// origin to the position.
func (t *Transformable) Matrix() Matrix {
	if t.dirty {
		sin, cos := math32.Sincos(t.rotation * radPerDeg)
		sxc := t.scale.X * cos
		sxs := t.scale.X * sin
		syc := t.scale.Y * cos
		sys := t.scale.Y * sin

		t.matrix = Matrix{
			A:  sxc,
			B:  sxs,
			C:  -sys,
			D:  syc,
			Tx: -t.origin.X*sxc + t.origin.Y*sys + t.position.X,
			Ty: -t.origin.X*sxs - t.origin.Y*syc + t.position.Y,
		}
		t.dirty = false
	}
	return t.matrix
}

// InverseMatrix returns the parent-to-object matrix. The second result is
// false when the scale is zero on either axis.
func (t *Transformable) InverseMatrix() (Matrix, bool) {
	return t.Matrix().TryInvert()
}

func (t *Transformable) touch() {
	t.dirty = true
	t.generation++
}

func (t *Transformable) clampScale(s Vector2f) Vector2f {
	if t.mirror {
		return s
	}
	return Vector2f{X: math32.Abs(s.X), Y: math32.Abs(s.Y)}
}

// normalizeAngle maps deg into [0, 360).
func normalizeAngle(deg float32) float32 {
	deg = math32.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}
	return deg
}
