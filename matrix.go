package g2d

import "github.com/chewxy/math32"

const radPerDeg = math32.Pi / 180

// Matrix represents a 2D affine transformation matrix.
// It stores the six free entries of a 3x3 matrix whose bottom row is
// implicitly (0, 0, 1):
//
//	| A  C  Tx |
//	| B  D  Ty |
//	| 0  0  1  |
//
// This represents the transformation:
//
//	x' = A*x + C*y + Tx
//	y' = B*x + D*y + Ty
type Matrix struct {
	A, B, C, D float32
	Tx, Ty     float32
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{A: 1, D: 1}
}

// Translation creates a translation matrix.
func Translation(x, y float32) Matrix {
	return Matrix{A: 1, D: 1, Tx: x, Ty: y}
}

// Scaling creates a scaling matrix.
func Scaling(x, y float32) Matrix {
	return Matrix{A: x, D: y}
}

// Rotation creates a rotation matrix (angle in degrees).
func Rotation(deg float32) Matrix {
	sin, cos := math32.Sincos(deg * radPerDeg)
	return Matrix{A: cos, B: sin, C: -sin, D: cos}
}

// Multiply returns m * other: the result applies other first, then m.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A:  m.A*other.A + m.C*other.B,
		B:  m.B*other.A + m.D*other.B,
		C:  m.A*other.C + m.C*other.D,
		D:  m.B*other.C + m.D*other.D,
		Tx: m.A*other.Tx + m.C*other.Ty + m.Tx,
		Ty: m.B*other.Tx + m.D*other.Ty + m.Ty,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Vector2f) Vector2f {
	return Vector2f{
		X: m.A*p.X + m.C*p.Y + m.Tx,
		Y: m.B*p.X + m.D*p.Y + m.Ty,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(v Vector2f) Vector2f {
	return Vector2f{
		X: m.A*v.X + m.C*v.Y,
		Y: m.B*v.X + m.D*v.Y,
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix) Determinant() float32 {
	return m.A*m.D - m.B*m.C
}

// TryInvert returns the inverse matrix.
// The second result is false if the determinant is exactly zero; no
// tolerance is applied, so nearly singular matrices still invert.
func (m Matrix) TryInvert() (Matrix, bool) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, false
	}

	out := Matrix{
		A: m.D / det,
		B: -m.B / det,
		C: -m.C / det,
		D: m.A / det,
	}
	out.Tx = -(out.A*m.Tx + out.C*m.Ty)
	out.Ty = -(out.B*m.Tx + out.D*m.Ty)
	return out, true
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m == Identity()
}

// IsTranslation returns true if the matrix is only a translation.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 && m.D == 1
}
