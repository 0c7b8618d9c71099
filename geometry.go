package g2d

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Default point counts used by the shape constructors.
const (
	DefaultCirclePoints  = 20
	DefaultEllipsePoints = 40
)

// Geometry is the outline of a shape in its local, untransformed space.
// The set of geometries is closed: Circle, Ellipse, Rectangle and Polygon.
// Use PointCount and PointAt to read the outline.
type Geometry interface {
	geometry()
}

// Circle is a regular polygon inscribed in a circle centered on the local
// origin. Point i sits at angle 2*pi*i/Points.
type Circle struct {
	Radius float32
	Points int
}

// Ellipse is like Circle with independent radii along x and y.
type Ellipse struct {
	Radii  Vector2f
	Points int
}

// Rectangle spans (0, 0) to Size.
type Rectangle struct {
	Size Vector2f
}

// Polygon is an explicit closed outline. The last point connects back to
// the first.
type Polygon struct {
	Points []Vector2f
}

func (Circle) geometry()    {}
func (Ellipse) geometry()   {}
func (Rectangle) geometry() {}
func (Polygon) geometry()   {}

// PointCount returns the number of outline points of g.
func PointCount(g Geometry) int {
	switch g := g.(type) {
	case Circle:
		return max(g.Points, 0)
	case Ellipse:
		return max(g.Points, 0)
	case Rectangle:
		return 4
	case Polygon:
		return len(g.Points)
	}
	return 0
}

// PointAt returns outline point i of g.
// It panics if i is not in [0, PointCount(g)).
func PointAt(g Geometry, i int) Vector2f {
	if n := PointCount(g); i < 0 || i >= n {
		panic(fmt.Sprintf("g2d: point index %d out of range [0, %d)", i, n))
	}
	switch g := g.(type) {
	case Circle:
		sin, cos := math32.Sincos(float32(i) * 2 * math32.Pi / float32(g.Points))
		return Vector2f{X: g.Radius * cos, Y: g.Radius * sin}
	case Ellipse:
		sin, cos := math32.Sincos(float32(i) * 2 * math32.Pi / float32(g.Points))
		return Vector2f{X: g.Radii.X * cos, Y: g.Radii.Y * sin}
	case Rectangle:
		switch i {
		case 0:
			return Vector2f{}
		case 1:
			return Vector2f{X: g.Size.X}
		case 2:
			return g.Size
		default:
			return Vector2f{Y: g.Size.Y}
		}
	case Polygon:
		return g.Points[i]
	}
	return Vector2f{}
}

// outlinePoints returns all points of g in order.
func outlinePoints(g Geometry, dst []Vector2f) []Vector2f {
	n := PointCount(g)
	dst = dst[:0]
	for i := 0; i < n; i++ {
		dst = append(dst, PointAt(g, i))
	}
	return dst
}

// cloneGeometry detaches g from slices owned by the caller.
func cloneGeometry(g Geometry) Geometry {
	if p, ok := g.(Polygon); ok {
		return Polygon{Points: append([]Vector2f(nil), p.Points...)}
	}
	return g
}
