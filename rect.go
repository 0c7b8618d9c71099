package g2d

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect[T Number] struct {
	X, Y, W, H T
}

// Common instantiations.
type (
	FloatRect = Rect[float32]
	IntRect   = Rect[int32]
)

// Position returns the top-left corner.
func (r Rect[T]) Position() Vector2[T] {
	return Vector2[T]{X: r.X, Y: r.Y}
}

// Size returns the width and height.
func (r Rect[T]) Size() Vector2[T] {
	return Vector2[T]{X: r.W, Y: r.H}
}

// Center returns the center point.
func (r Rect[T]) Center() Vector2[T] {
	return Vector2[T]{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside r. The right and bottom edges are
// exclusive.
func (r Rect[T]) Contains(p Vector2[T]) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// IsEmpty reports whether the rectangle has no area.
func (r Rect[T]) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// boundsOf returns the smallest rectangle containing all points.
// pts must not be empty.
func boundsOf(pts []Vector2f) FloatRect {
	minX, maxX := pts[0].X, pts[0].X
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	return FloatRect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
