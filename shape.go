package g2d

import "log/slog"

// Shape is a transformable outline drawn as a filled triangle fan plus an
// optional mitered outline ribbon.
//
// Local meshes are rebuilt when the geometry or outline thickness changes.
// World-space vertices are baked during Draw and reused until the shape's
// transform, its local meshes or the target's view change. Fill and
// outline are tracked independently.
//
// A shape with fewer than three points has empty meshes and draws nothing;
// IsEmpty reports this state.
//
// Shape is not safe for concurrent use.
type Shape struct {
	Transformable

	geom        Geometry
	fillColor   Color
	lineColor   Color
	thickness   float32
	miterCutoff float32
	texture     Texture
	textureRect FloatRect

	points       []Vector2f
	bounds       FloatRect
	localFill    []Vector2f
	uvs          []Vector2f
	localOutline []Vector2f

	fill    bakedMesh
	outline bakedMesh
}

// NewShape returns a shape with the given geometry, white fill and outline
// colours and no outline.
func NewShape(g Geometry) *Shape {
	s := &Shape{
		Transformable: NewTransformable(),
		fillColor:     White,
		lineColor:     White,
		miterCutoff:   DefaultMiterCutoff,
	}
	s.SetGeometry(g)
	return s
}

// NewCircleShape returns a circle of the given radius approximated by
// points vertices.
func NewCircleShape(radius float32, points int) *Shape {
	return NewShape(Circle{Radius: radius, Points: points})
}

// NewEllipseShape returns an ellipse with the given radii.
func NewEllipseShape(radii Vector2f, points int) *Shape {
	return NewShape(Ellipse{Radii: radii, Points: points})
}

// NewRectangleShape returns a rectangle spanning (0, 0) to size.
func NewRectangleShape(size Vector2f) *Shape {
	return NewShape(Rectangle{Size: size})
}

// NewPolygonShape returns a polygon through pts. The slice is copied.
func NewPolygonShape(pts []Vector2f) *Shape {
	return NewShape(Polygon{Points: pts})
}

// Geometry returns the current geometry.
func (s *Shape) Geometry() Geometry { return s.geom }

// SetGeometry replaces the geometry and rebuilds both local meshes.
// Polygon points are copied.
func (s *Shape) SetGeometry(g Geometry) {
	s.geom = cloneGeometry(g)
	s.points = outlinePoints(s.geom, s.points)
	s.updateLocalShape()
	s.updateLocalOutline()
}

// PointCount returns the number of outline points.
func (s *Shape) PointCount() int { return len(s.points) }

// Point returns outline point i in local space.
// It panics if i is out of range.
func (s *Shape) Point(i int) Vector2f { return PointAt(s.geom, i) }

// IsEmpty reports whether the shape has no fill geometry (fewer than three
// points).
func (s *Shape) IsEmpty() bool { return len(s.localFill) == 0 }

// FillColor returns the fill colour.
func (s *Shape) FillColor() Color { return s.fillColor }

// SetFillColor sets the fill colour. Geometry is not touched.
func (s *Shape) SetFillColor(c Color) { s.fillColor = c }

// OutlineColor returns the outline colour.
func (s *Shape) OutlineColor() Color { return s.lineColor }

// SetOutlineColor sets the outline colour. Geometry is not touched.
func (s *Shape) SetOutlineColor(c Color) { s.lineColor = c }

// OutlineThickness returns the outline thickness.
func (s *Shape) OutlineThickness() float32 { return s.thickness }

// SetOutlineThickness sets the outline thickness and rebuilds the local
// outline mesh. Zero disables the outline.
func (s *Shape) SetOutlineThickness(t float32) {
	if s.thickness == t {
		return
	}
	s.thickness = t
	s.updateLocalOutline()
}

// MiterCutoff returns the miter cutoff, see DefaultMiterCutoff.
func (s *Shape) MiterCutoff() float32 { return s.miterCutoff }

// SetMiterCutoff sets the miter cutoff and rebuilds the local outline.
func (s *Shape) SetMiterCutoff(c float32) {
	if s.miterCutoff == c {
		return
	}
	s.miterCutoff = c
	s.updateLocalOutline()
}

// Texture returns the fill texture, or nil.
func (s *Shape) Texture() Texture { return s.texture }

// TextureRect returns the texture sub-rectangle in pixels.
func (s *Shape) TextureRect() FloatRect { return s.textureRect }

// SetTexture sets the fill texture and resets the texture rectangle to the
// whole texture. A nil texture removes it and keeps the rectangle.
func (s *Shape) SetTexture(tex Texture) {
	if tex == nil {
		s.texture = nil
		s.updateTextureUVs()
		return
	}
	s.SetTextureWithRect(tex, fullRect(tex))
}

// SetTextureWithRect sets the fill texture and the sub-rectangle mapped
// onto the shape's bounding box.
func (s *Shape) SetTextureWithRect(tex Texture, rect FloatRect) {
	s.texture = tex
	s.textureRect = rect
	s.updateTextureUVs()
}

// SetTextureRect sets the sub-rectangle mapped onto the shape's bounding
// box. Only texture coordinates are recomputed.
func (s *Shape) SetTextureRect(rect FloatRect) {
	s.textureRect = rect
	s.updateTextureUVs()
}

// LocalBounds returns the bounding box of the outline points in local
// space.
func (s *Shape) LocalBounds() FloatRect { return s.bounds }

// GlobalBounds returns the bounding box of the transformed local bounds.
func (s *Shape) GlobalBounds() FloatRect {
	return transformRect(s.Matrix(), s.bounds)
}

// LocalVertices returns the local fill mesh (3 vertices per triangle).
func (s *Shape) LocalVertices() []Vector2f { return s.localFill }

// TextureUVs returns the texture coordinates parallel to LocalVertices.
func (s *Shape) TextureUVs() []Vector2f { return s.uvs }

// LocalOutline returns the local outline mesh (6 vertices per edge).
func (s *Shape) LocalOutline() []Vector2f { return s.localOutline }

// WorldVertices returns the fill vertices from the last bake.
func (s *Shape) WorldVertices() []Vector2f { return s.fill.world }

// WorldOutline returns the outline vertices from the last bake.
func (s *Shape) WorldOutline() []Vector2f { return s.outline.world }

// FillBakes returns how many times the fill mesh has been baked.
func (s *Shape) FillBakes() uint64 { return s.fill.bakes }

// OutlineBakes returns how many times the outline mesh has been baked.
func (s *Shape) OutlineBakes() uint64 { return s.outline.bakes }

// Draw bakes stale meshes against t and submits the fill and the outline.
// Empty meshes are not submitted.
func (s *Shape) Draw(t Target) {
	gen := s.Generation()
	viewID := t.ViewID()
	needFill := s.fill.stale(gen, viewID)
	needOutline := s.outline.stale(gen, viewID)

	if needFill || needOutline {
		m := t.Transform().Multiply(s.Matrix())
		if needFill {
			s.fill.bake(s.localFill, m, gen, viewID)
		}
		if needOutline {
			s.outline.bake(s.localOutline, m, gen, viewID)
		}
		Logger().Debug("g2d: shape baked",
			slog.Bool("fill", needFill),
			slog.Bool("outline", needOutline),
			slog.Uint64("view", viewID))
	}

	if len(s.fill.world) > 0 {
		t.DrawBatch(Batch{
			Texture:   s.texture,
			Positions: s.fill.world,
			UVs:       s.uvs,
			Color:     s.fillColor,
		})
	}
	if len(s.outline.world) > 0 {
		t.DrawBatch(Batch{
			Positions: s.outline.world,
			Color:     s.lineColor,
		})
	}
}

// updateLocalShape rebuilds the fill mesh and its texture coordinates.
func (s *Shape) updateLocalShape() {
	s.localFill = s.localFill[:0]
	s.uvs = s.uvs[:0]
	s.fill.dirty = true

	if b, err := localBounds(s.points); err == nil {
		s.bounds = b
	} else {
		s.bounds = FloatRect{}
	}

	if len(s.points) < 3 {
		s.localOutline = s.localOutline[:0]
		s.outline.dirty = true
		Logger().Warn("g2d: degenerate shape", slog.Int("points", len(s.points)))
		return
	}

	s.localFill = fanMesh(s.localFill, s.points, s.bounds.Center())
	s.uvs = s.uvMapper().mapUVs(s.uvs, s.localFill)
}

// updateLocalOutline rebuilds the outline mesh.
func (s *Shape) updateLocalOutline() {
	s.localOutline = outlineMesh(s.localOutline[:0], s.points, s.thickness, s.miterCutoff)
	s.outline.dirty = true
}

// updateTextureUVs recomputes texture coordinates for the current fill
// mesh. The baked positions stay valid.
func (s *Shape) updateTextureUVs() {
	if len(s.localFill) == 0 {
		return
	}
	s.uvs = s.uvMapper().mapUVs(s.uvs[:0], s.localFill)
}

func (s *Shape) uvMapper() uvMapper {
	return uvMapper{
		bounds: s.bounds,
		rect:   s.textureRect,
		size:   textureSize(s.texture),
	}
}

// bakedMesh caches a local mesh transformed into target pixel space.
type bakedMesh struct {
	world  []Vector2f
	dirty  bool
	baked  bool
	gen    uint64
	viewID uint64
	bakes  uint64
}

// stale reports whether the mesh must be baked again for the given
// transform generation and view ID.
func (m *bakedMesh) stale(gen, viewID uint64) bool {
	return !m.baked || m.dirty || m.gen != gen || m.viewID != viewID
}

func (m *bakedMesh) bake(local []Vector2f, mat Matrix, gen, viewID uint64) {
	m.world = m.world[:0]
	for _, v := range local {
		m.world = append(m.world, mat.TransformPoint(v))
	}
	m.dirty = false
	m.baked = true
	m.gen = gen
	m.viewID = viewID
	m.bakes++
}

// transformRect returns the bounding box of r's corners under m.
func transformRect(m Matrix, r FloatRect) FloatRect {
	corners := []Vector2f{
		m.TransformPoint(Vector2f{X: r.X, Y: r.Y}),
		m.TransformPoint(Vector2f{X: r.X + r.W, Y: r.Y}),
		m.TransformPoint(Vector2f{X: r.X + r.W, Y: r.Y + r.H}),
		m.TransformPoint(Vector2f{X: r.X, Y: r.Y + r.H}),
	}
	return boundsOf(corners)
}
