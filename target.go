package g2d

import "github.com/gogpu/gputypes"

// Target is anything drawables can be submitted to.
//
// ViewID must change whenever Transform would return a different matrix:
// on SetView with a view that is not Equal to the current one and on a
// change of the target center. Drawables compare it against the ID they
// baked with to decide whether their cached vertices are stale.
type Target interface {
	View() View
	SetView(v View)
	ViewID() uint64
	Center() Vector2f
	Transform() Matrix
	DrawBatch(b Batch)
}

// Drawable is implemented by objects that know how to submit themselves.
type Drawable interface {
	Draw(t Target)
}

// Draw submits drawables to t in order.
func Draw(t Target, ds ...Drawable) {
	for _, d := range ds {
		d.Draw(t)
	}
}

// Batch is one submission to a target: a triangle list in target pixel
// space with an optional texture and a colour applied to every vertex.
//
// When Indices is empty every three consecutive positions form a triangle;
// otherwise every three indices do. UVs is either empty or parallel to
// Positions. Slices are owned by the drawable and are only valid until its
// next Draw.
type Batch struct {
	Texture   Texture
	Positions []Vector2f
	UVs       []Vector2f
	Color     Color
	Indices   []uint16
}

// VertexCount returns the number of vertices the batch rasterizes.
func (b *Batch) VertexCount() int {
	if len(b.Indices) > 0 {
		return len(b.Indices)
	}
	return len(b.Positions)
}

// Triangle returns the vertex numbers of triangle i.
func (b *Batch) Triangle(i int) (int, int, int) {
	if len(b.Indices) > 0 {
		return int(b.Indices[3*i]), int(b.Indices[3*i+1]), int(b.Indices[3*i+2])
	}
	return 3 * i, 3*i + 1, 3*i + 2
}

// Topology returns the primitive topology of every batch.
func (b *Batch) Topology() gputypes.PrimitiveTopology {
	return gputypes.PrimitiveTopologyTriangleList
}

// batchVertexStride is the size of one interleaved position+uv vertex.
const batchVertexStride = 16

// VertexLayouts describes the batch as interleaved vertices for GPU
// backends: float32x2 position at location 0, float32x2 uv at location 1.
func (b *Batch) VertexLayouts() []gputypes.VertexBufferLayout {
	return []gputypes.VertexBufferLayout{
		{
			ArrayStride: batchVertexStride,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes: []gputypes.VertexAttribute{
				{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
				{Format: gputypes.VertexFormatFloat32x2, Offset: 8, ShaderLocation: 1}, // uv
			},
		},
	}
}

// Interleave writes position/uv pairs into dst following VertexLayouts and
// returns the extended slice. Missing UVs are written as zero.
func (b *Batch) Interleave(dst []float32) []float32 {
	for i, p := range b.Positions {
		var uv Vector2f
		if i < len(b.UVs) {
			uv = b.UVs[i]
		}
		dst = append(dst, p.X, p.Y, uv.X, uv.Y)
	}
	return dst
}

// TargetState implements the view bookkeeping shared by targets: the
// current view, its identity counter and the output size. Embed it and add
// DrawBatch to get a Target.
type TargetState struct {
	view    View
	viewID  uint64
	size    Vector2i
	logical Vector2i
}

// NewTargetState returns state for a target of the given pixel size with
// the default view for that size.
func NewTargetState(width, height int) TargetState {
	size := Vector2i{X: int32(width), Y: int32(height)}
	return TargetState{
		view:   DefaultView(ToFloat(size)),
		viewID: 1,
		size:   size,
	}
}

// View returns a copy of the current view.
func (s *TargetState) View() View { return s.view }

// SetView replaces the current view. The view ID only changes when v is
// not Equal to the current view.
func (s *TargetState) SetView(v View) {
	if s.view.Equal(v) {
		return
	}
	s.view = v
	s.viewID++
}

// ViewID returns the current view identity.
func (s *TargetState) ViewID() uint64 { return s.viewID }

// Size returns the output size in pixels.
func (s *TargetState) Size() Vector2i { return s.size }

// SetSize changes the output size.
func (s *TargetState) SetSize(width, height int) {
	size := Vector2i{X: int32(width), Y: int32(height)}
	if s.size == size {
		return
	}
	before := s.Center()
	s.size = size
	if s.Center() != before {
		s.viewID++
	}
}

// LogicalSize returns the logical presentation size, or zero when logical
// presentation is disabled.
func (s *TargetState) LogicalSize() Vector2i { return s.logical }

// SetLogicalSize enables a logical coordinate system of the given size.
// Pass zero to disable it.
func (s *TargetState) SetLogicalSize(width, height int) {
	logical := Vector2i{X: int32(width), Y: int32(height)}
	if s.logical == logical {
		return
	}
	before := s.Center()
	s.logical = logical
	if s.Center() != before {
		s.viewID++
	}
}

// Center returns half the output size, in logical units when logical
// presentation is enabled.
func (s *TargetState) Center() Vector2f {
	if s.logical.X > 0 && s.logical.Y > 0 {
		return ToFloat(s.logical).Div(2)
	}
	return ToFloat(s.size).Div(2)
}

// Transform returns the world-to-pixel matrix: the view matrix followed by
// the translation to the target center.
func (s *TargetState) Transform() Matrix {
	m := s.view.Matrix()
	c := s.Center()
	m.Tx += c.X
	m.Ty += c.Y
	return m
}

// MapCoordsToPixel converts a world point to target pixel coordinates.
func MapCoordsToPixel(t Target, world Vector2f) Vector2f {
	return t.Transform().TransformPoint(world)
}

// MapPixelToCoords converts target pixel coordinates to a world point.
// The second result is false when the view has zero zoom; callers should
// skip the event instead of using the result.
func MapPixelToCoords(t Target, pixel Vector2f) (Vector2f, bool) {
	inv, ok := t.Transform().TryInvert()
	if !ok {
		return Vector2f{}, false
	}
	return inv.TransformPoint(pixel), true
}

// MapPixelDelta converts a relative pixel movement (e.g. mouse motion) to
// a world-space displacement.
func MapPixelDelta(t Target, delta Vector2f) (Vector2f, bool) {
	inv, ok := t.Transform().TryInvert()
	if !ok {
		return Vector2f{}, false
	}
	return inv.TransformVector(delta), true
}
