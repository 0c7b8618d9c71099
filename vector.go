package g2d

import (
	"math"

	"github.com/chewxy/math32"
)

// Number is the set of scalar types a vector can be built over.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Vector2 represents a 2D point or displacement.
type Vector2[T Number] struct {
	X, Y T
}

// Vector3 represents a 3D point or displacement.
type Vector3[T Number] struct {
	X, Y, Z T
}

// Common instantiations.
type (
	Vector2f = Vector2[float32]
	Vector2i = Vector2[int32]
	Vector3f = Vector3[float32]
)

// Vec2 is a convenience function to create a Vector2f.
func Vec2(x, y float32) Vector2f {
	return Vector2f{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vector2[T]) Add(w Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vector2[T]) Sub(w Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by s.
func (v Vector2[T]) Mul(s T) Vector2[T] {
	return Vector2[T]{X: v.X * s, Y: v.Y * s}
}

// Div returns the vector divided by s.
func (v Vector2[T]) Div(s T) Vector2[T] {
	return Vector2[T]{X: v.X / s, Y: v.Y / s}
}

// MulVec multiplies two vectors componentwise.
func (v Vector2[T]) MulVec(w Vector2[T]) Vector2[T] {
	return Vector2[T]{X: v.X * w.X, Y: v.Y * w.Y}
}

// IsZero reports whether both components are zero.
func (v Vector2[T]) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Add returns the sum of two vectors.
func (v Vector3[T]) Add(w Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vector3[T]) Sub(w Vector3[T]) Vector3[T] {
	return Vector3[T]{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by s.
func (v Vector3[T]) Mul(s T) Vector3[T] {
	return Vector3[T]{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Div returns the vector divided by s.
func (v Vector3[T]) Div(s T) Vector3[T] {
	return Vector3[T]{X: v.X / s, Y: v.Y / s, Z: v.Z / s}
}

// ToFloat converts an integer vector to a float vector.
func ToFloat[T Number](v Vector2[T]) Vector2f {
	return Vector2f{X: float32(v.X), Y: float32(v.Y)}
}

// ToInt rounds a float vector to the nearest integer vector.
func ToInt(v Vector2f) Vector2i {
	return Vector2i{X: int32(math.Round(float64(v.X))), Y: int32(math.Round(float64(v.Y)))}
}

// Dot returns the dot product of two vectors.
func Dot(v, w Vector2f) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Length returns the length of v.
func Length(v Vector2f) float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Normalize returns a unit vector in the direction of v.
// The zero vector is returned unchanged.
func Normalize(v Vector2f) Vector2f {
	l := Length(v)
	if l > 0 {
		return Vector2f{X: v.X / l, Y: v.Y / l}
	}
	return Vector2f{}
}

// Perp returns the left perpendicular of v.
func Perp(v Vector2f) Vector2f {
	return Vector2f{X: -v.Y, Y: v.X}
}

// RotateDeg returns v rotated by deg degrees around the origin, using the
// same orientation as Matrix rotations.
func RotateDeg(v Vector2f, deg float32) Vector2f {
	s, c := math32.Sincos(deg * radPerDeg)
	return Vector2f{
		X: v.X*c - v.Y*s,
		Y: v.X*s + v.Y*c,
	}
}
