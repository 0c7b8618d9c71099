// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/image/vector"

	"github.com/gogpu/g2d"
)

// ImageSurface is a CPU-based surface that renders to an *image.RGBA.
//
// It rasterizes submitted triangles with golang.org/x/image/vector, which
// provides anti-aliased coverage. Untextured batches are accumulated into a
// single coverage mask; textured batches are drawn one triangle at a time
// with an affine texture sampler. Textures other than *g2d.ImageTexture
// are drawn as solid colour.
//
// Example:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(g2d.White)
//	g2d.NewCircleShape(100, 40).Draw(s)
//
//	img := s.Snapshot()
type ImageSurface struct {
	g2d.TargetState

	width  int
	height int
	img    *image.RGBA

	// z accumulates triangle coverage
	z *vector.Rasterizer

	stats Stats

	// closed tracks if Close has been called
	closed bool
}

// NewImageSurface creates a new CPU-based surface with the given dimensions.
func NewImageSurface(width, height int, opts ...Option) *ImageSurface {
	o := DefaultOptions(width, height)
	for _, opt := range opts {
		opt(&o)
	}
	return newImageSurface(o)
}

func newImageSurface(o Options) *ImageSurface {
	if o.Width <= 0 {
		o.Width = 1
	}
	if o.Height <= 0 {
		o.Height = 1
	}

	s := &ImageSurface{
		TargetState: g2d.NewTargetState(o.Width, o.Height),
		width:       o.Width,
		height:      o.Height,
		img:         image.NewRGBA(image.Rect(0, 0, o.Width, o.Height)),
		z:           vector.NewRasterizer(o.Width, o.Height),
	}
	s.SetLogicalSize(o.LogicalWidth, o.LogicalHeight)
	if o.ClearColor != g2d.Transparent {
		s.Clear(o.ClearColor)
	}
	return s
}

// NewImageSurfaceFromImage creates a surface backed by an existing image.
// The surface will render into the provided image directly.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	b := img.Bounds()
	return &ImageSurface{
		TargetState: g2d.NewTargetState(b.Dx(), b.Dy()),
		width:       b.Dx(),
		height:      b.Dy(),
		img:         img,
		z:           vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Clear fills the entire surface with the given color.
func (s *ImageSurface) Clear(c g2d.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c.NRGBA()), image.Point{}, draw.Src)
}

// DrawBatch rasterizes the triangles of b.
func (s *ImageSurface) DrawBatch(b g2d.Batch) {
	if s.closed {
		return
	}
	n := b.VertexCount() / 3
	if n == 0 {
		return
	}
	s.stats.Batches++

	if tex, ok := b.Texture.(*g2d.ImageTexture); ok && len(b.UVs) == len(b.Positions) {
		s.drawTextured(&b, tex, n)
		return
	}
	s.drawSolid(&b, n)
}

// drawSolid accumulates all triangles into one coverage mask so that
// shared edges do not show seams.
func (s *ImageSurface) drawSolid(b *g2d.Batch, n int) {
	bounds := image.Rectangle{}
	s.z.Reset(s.width, s.height)
	for i := 0; i < n; i++ {
		p0, p1, p2, ok := s.triangle(b, i)
		if !ok {
			continue
		}
		addTriangle(s.z, p0, p1, p2, image.Point{})
		bounds = bounds.Union(triangleBounds(p0, p1, p2))
		s.stats.Triangles++
	}
	bounds = bounds.Intersect(s.img.Bounds())
	if bounds.Empty() {
		return
	}
	src := image.NewUniform(b.Color.NRGBA())
	s.z.Draw(s.img, s.img.Bounds(), src, image.Point{})
}

// drawTextured accumulates the batch into one coverage mask, like
// drawSolid, and fills it through a sampler that maps every pixel with the
// texture coordinates of its own triangle.
func (s *ImageSurface) drawTextured(b *g2d.Batch, tex *g2d.ImageTexture, n int) {
	src := newBatchSampler(tex, b.Color)
	bounds := image.Rectangle{}
	var corners [][3]g2d.Vector2f
	for i := 0; i < n; i++ {
		i0, i1, i2 := b.Triangle(i)
		p0, p1, p2, ok := s.triangle(b, i)
		if !ok {
			continue
		}
		if !src.add([3]g2d.Vector2f{p0, p1, p2}, [3]g2d.Vector2f{b.UVs[i0], b.UVs[i1], b.UVs[i2]}) {
			s.stats.Skipped++
			continue
		}
		corners = append(corners, [3]g2d.Vector2f{p0, p1, p2})
		bounds = bounds.Union(triangleBounds(p0, p1, p2))
		s.stats.Triangles++
	}
	r := bounds.Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}

	s.z.Reset(r.Dx(), r.Dy())
	for _, c := range corners {
		addTriangle(s.z, c[0], c[1], c[2], r.Min)
	}
	s.z.Draw(s.img, r, src, r.Min)
}

// triangle returns the corners of triangle i. Triangles referencing
// missing vertices or without area are skipped.
func (s *ImageSurface) triangle(b *g2d.Batch, i int) (p0, p1, p2 g2d.Vector2f, ok bool) {
	i0, i1, i2 := b.Triangle(i)
	if i0 >= len(b.Positions) || i1 >= len(b.Positions) || i2 >= len(b.Positions) {
		s.stats.Skipped++
		g2d.Logger().Warn("surface: batch index out of range",
			slog.Int("triangle", i), slog.Int("vertices", len(b.Positions)))
		return p0, p1, p2, false
	}
	p0, p1, p2 = b.Positions[i0], b.Positions[i1], b.Positions[i2]
	if signedArea(p0, p1, p2) == 0 {
		s.stats.Skipped++
		return p0, p1, p2, false
	}
	return p0, p1, p2, true
}

// Stats returns counters of the work done so far.
func (s *ImageSurface) Stats() Stats {
	return s.stats
}

// Resize changes the surface dimensions and discards its content.
func (s *ImageSurface) Resize(width, height int) error {
	if s.closed {
		return ErrClosed
	}
	if width <= 0 || height <= 0 {
		return &InvalidSizeError{Width: width, Height: height}
	}
	s.width = width
	s.height = height
	s.img = image.NewRGBA(image.Rect(0, 0, width, height))
	s.z.Reset(width, height)
	s.SetSize(width, height)
	return nil
}

// Flush ensures all pending operations are complete.
// For ImageSurface, this is a no-op.
func (s *ImageSurface) Flush() error {
	return nil
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}

	result := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	draw.Draw(result, result.Bounds(), s.img, s.img.Bounds().Min, draw.Src)
	return result
}

// Image returns the underlying image.RGBA.
// This is a direct reference, not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// EncodePNG writes the surface contents as PNG.
func (s *ImageSurface) EncodePNG(w io.Writer) error {
	if s.closed {
		return ErrClosed
	}
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("surface: encode PNG: %w", err)
	}
	return nil
}

// SavePNG saves the surface contents as a PNG file.
func (s *ImageSurface) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("surface: create file: %w", err)
	}

	if err := s.EncodePNG(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// Close releases resources associated with the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	s.z = nil
	return nil
}

// addTriangle adds a closed triangle to z, translated by -off. All
// triangles are added with the same winding so overlapping coverage adds
// up instead of cancelling.
func addTriangle(z *vector.Rasterizer, p0, p1, p2 g2d.Vector2f, off image.Point) {
	if signedArea(p0, p1, p2) < 0 {
		p1, p2 = p2, p1
	}
	ox, oy := float32(off.X), float32(off.Y)
	z.MoveTo(p0.X-ox, p0.Y-oy)
	z.LineTo(p1.X-ox, p1.Y-oy)
	z.LineTo(p2.X-ox, p2.Y-oy)
	z.ClosePath()
}

func signedArea(p0, p1, p2 g2d.Vector2f) float32 {
	return (p1.X-p0.X)*(p2.Y-p0.Y) - (p2.X-p0.X)*(p1.Y-p0.Y)
}

// triangleBounds returns the integer rectangle covering the triangle.
func triangleBounds(p0, p1, p2 g2d.Vector2f) image.Rectangle {
	minX := min(p0.X, p1.X, p2.X)
	minY := min(p0.Y, p1.Y, p2.Y)
	maxX := max(p0.X, p1.X, p2.X)
	maxY := max(p0.Y, p1.Y, p2.Y)
	return image.Rect(floor(minX), floor(minY), ceil(maxX), ceil(maxY))
}

func floor(v float32) int {
	i := int(v)
	if float32(i) > v {
		i--
	}
	return i
}

func ceil(v float32) int {
	i := int(v)
	if float32(i) < v {
		i++
	}
	return i
}
