package g2d

import (
	"errors"

	"github.com/chewxy/math32"
)

// DefaultMiterCutoff is the smallest cosine between a miter normal and its
// edge normal for which the miter is lengthened. Below it (joints close to
// a full turn) the plain thickness is used so the spike stays bounded.
const DefaultMiterCutoff = 0.1

// ErrEmptyGeometry is returned when bounds are requested for an outline
// without points.
var ErrEmptyGeometry = errors.New("g2d: geometry has no points")

// localBounds returns the axis-aligned bounding box of pts.
func localBounds(pts []Vector2f) (FloatRect, error) {
	if len(pts) == 0 {
		return FloatRect{}, ErrEmptyGeometry
	}
	return boundsOf(pts), nil
}

// fanMesh appends a triangle list covering the polygon pts: one triangle
// (center, pts[i], pts[i+1]) per point, 3*len(pts) vertices in total.
// The center is repeated per triangle so the list can be drawn without
// indices.
func fanMesh(dst, pts []Vector2f, center Vector2f) []Vector2f {
	n := len(pts)
	for i := 0; i < n; i++ {
		dst = append(dst, center, pts[i], pts[(i+1)%n])
	}
	return dst
}

// uvMapper maps local positions to normalized texture coordinates through
// the local bounding box and a texture rectangle in pixels.
type uvMapper struct {
	bounds FloatRect
	rect   FloatRect
	size   Vector2f
}

func (m uvMapper) uv(p Vector2f) Vector2f {
	var rx, ry float32
	if m.bounds.W != 0 {
		rx = (p.X - m.bounds.X) / m.bounds.W
	}
	if m.bounds.H != 0 {
		ry = (p.Y - m.bounds.Y) / m.bounds.H
	}
	return Vector2f{
		X: texelToUV(m.rect.X+rx*m.rect.W, m.size.X),
		Y: texelToUV(m.rect.Y+ry*m.rect.H, m.size.Y),
	}
}

// mapUVs appends one texture coordinate per vertex.
func (m uvMapper) mapUVs(dst, verts []Vector2f) []Vector2f {
	for _, v := range verts {
		dst = append(dst, m.uv(v))
	}
	return dst
}

// miterOffset returns the offset of the outer outline point at curr.
func miterOffset(prev, curr, next Vector2f, thickness, cutoff float32) Vector2f {
	n1 := Perp(Normalize(curr.Sub(prev)))
	n2 := Perp(Normalize(next.Sub(curr)))
	normal := Normalize(n1.Add(n2))

	length := thickness
	if dot := Dot(normal, n1); dot > cutoff {
		length = thickness / dot
	}
	return normal.Mul(length)
}

// signedArea2 returns twice the signed area of the polygon pts. It is
// positive when the points run clockwise on a y-down screen.
func signedArea2(pts []Vector2f) float32 {
	var a float32
	n := len(pts)
	for i := 0; i < n; i++ {
		p, q := pts[i], pts[(i+1)%n]
		a += p.X*q.Y - q.X*p.Y
	}
	return a
}

// outlineMesh appends a closed ribbon of the given thickness along pts as
// a triangle list of 6*len(pts) vertices. The inner edge of the ribbon is
// the outline itself; the outer edge is offset along the miter normals,
// away from the interior whatever the winding of pts and whatever the sign
// of thickness. Nothing is appended when thickness is zero or there are
// fewer than three points.
func outlineMesh(dst, pts []Vector2f, thickness, cutoff float32) []Vector2f {
	n := len(pts)
	if thickness == 0 || n < 3 {
		return dst
	}

	// Left normals point inside clockwise outlines.
	thickness = math32.Abs(thickness)
	if signedArea2(pts) > 0 {
		thickness = -thickness
	}

	outer := make([]Vector2f, n)
	for i := 0; i < n; i++ {
		prev := pts[(i+n-1)%n]
		next := pts[(i+1)%n]
		outer[i] = pts[i].Add(miterOffset(prev, pts[i], next, thickness, cutoff))
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		inner1, inner2 := pts[i], pts[j]
		outer1, outer2 := outer[i], outer[j]
		dst = append(dst,
			inner1, outer1, outer2,
			inner1, outer2, inner2,
		)
	}
	return dst
}
