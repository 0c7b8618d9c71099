// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"github.com/gogpu/g2d"
)

// batchSampler is an image.Image that looks up texels for the triangles of
// one textured batch. Each pixel center is assigned to the triangle that
// contains it, or to the nearest one for edge pixels that only the
// antialiased coverage reaches, and mapped to texel space through that
// triangle's affine transform. Sampling is nearest with clamp-to-edge
// addressing.
type batchSampler struct {
	tex    *image.RGBA
	size   g2d.Vector2f
	tint   [4]uint32 // 0..0xffff, alpha premultiplied into rgb
	tris   []texturedTriangle
	last   int
	bounds image.Rectangle
}

type texturedTriangle struct {
	// toLocal maps screen space to the triangle's edge basis, where the
	// triangle is u >= 0, v >= 0, u+v <= 1.
	toLocal g2d.Matrix
	toTex   g2d.Matrix
}

func newBatchSampler(tex *g2d.ImageTexture, tint g2d.Color) *batchSampler {
	t := tint.NRGBA()
	a := uint32(t.A) * 0x101
	return &batchSampler{
		tex:  tex.Image(),
		size: g2d.ToFloat(tex.Size()),
		tint: [4]uint32{
			uint32(t.R) * 0x101 * a / 0xffff,
			uint32(t.G) * 0x101 * a / 0xffff,
			uint32(t.B) * 0x101 * a / 0xffff,
			a,
		},
		bounds: image.Rect(-1<<20, -1<<20, 1<<20, 1<<20),
	}
}

// add registers the triangle with screen corners pos and texture
// coordinates uv. It reports false for a degenerate triangle.
func (s *batchSampler) add(pos, uv [3]g2d.Vector2f) bool {
	var texel [3]g2d.Vector2f
	for i := range uv {
		texel[i] = uv[i].MulVec(s.size)
	}
	inv, ok := basis(pos).TryInvert()
	if !ok {
		return false
	}
	s.tris = append(s.tris, texturedTriangle{
		toLocal: inv,
		toTex:   basis(texel).Multiply(inv),
	})
	return true
}

// basis maps (1,0) and (0,1) to the triangle's two edges from p[0].
func basis(p [3]g2d.Vector2f) g2d.Matrix {
	return g2d.Matrix{
		A: p[1].X - p[0].X, B: p[1].Y - p[0].Y,
		C: p[2].X - p[0].X, D: p[2].Y - p[0].Y,
		Tx: p[0].X, Ty: p[0].Y,
	}
}

// inside returns the smallest barycentric coordinate of p in the triangle:
// non-negative inside, more negative the farther p lies outside.
func (t *texturedTriangle) inside(p g2d.Vector2f) float32 {
	l := t.toLocal.TransformPoint(p)
	return min(l.X, l.Y, 1-l.X-l.Y)
}

// pick returns the triangle that owns p.
func (s *batchSampler) pick(p g2d.Vector2f) *texturedTriangle {
	if s.tris[s.last].inside(p) >= 0 {
		return &s.tris[s.last]
	}
	best, bestScore := 0, float32(0)
	for i := range s.tris {
		score := s.tris[i].inside(p)
		if score >= 0 {
			best = i
			break
		}
		if i == 0 || score > bestScore {
			best, bestScore = i, score
		}
	}
	s.last = best
	return &s.tris[best]
}

func (s *batchSampler) ColorModel() color.Model { return color.RGBA64Model }

func (s *batchSampler) Bounds() image.Rectangle { return s.bounds }

func (s *batchSampler) At(x, y int) color.Color {
	center := g2d.Vec2(float32(x)+0.5, float32(y)+0.5)
	p := s.pick(center).toTex.TransformPoint(center)
	b := s.tex.Rect
	tx := clamp(floor(p.X), b.Min.X, b.Max.X-1)
	ty := clamp(floor(p.Y), b.Min.Y, b.Max.Y-1)

	c := s.tex.RGBAAt(tx, ty)
	return color.RGBA64{
		R: uint16(uint32(c.R) * 0x101 * s.tint[0] / 0xffff),
		G: uint16(uint32(c.G) * 0x101 * s.tint[1] / 0xffff),
		B: uint16(uint32(c.B) * 0x101 * s.tint[2] / 0xffff),
		A: uint16(uint32(c.A) * 0x101 * s.tint[3] / 0xffff),
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
