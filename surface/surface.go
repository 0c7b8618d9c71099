// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"

	"github.com/gogpu/g2d"
)

// Surface is a render target backed by pixels.
//
// A Surface accepts g2d batches through the g2d.Target contract and keeps
// the result until it is cleared. Implementations may rasterize on the
// CPU, forward to a GPU, or only record what they receive.
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine, or external synchronization must be used.
//
// Example usage:
//
//	s := surface.NewImageSurface(800, 600)
//	defer s.Close()
//
//	s.Clear(g2d.White)
//	g2d.Draw(s, shapes...)
//	img := s.Snapshot()
type Surface interface {
	g2d.Target

	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Clear fills the entire surface with the given color.
	Clear(c g2d.Color)

	// Flush ensures all pending drawing operations are complete.
	// For CPU surfaces, this is typically a no-op.
	Flush() error

	// Snapshot returns the current surface contents as an RGBA image.
	// The returned image is a copy; modifications to it do not affect the surface.
	Snapshot() *image.RGBA

	// Close releases all resources associated with the surface.
	// After Close, the surface must not be used.
	// Close is idempotent; multiple calls are safe.
	Close() error
}

// ResizableSurface is an optional interface for surfaces that support resizing.
type ResizableSurface interface {
	Surface

	// Resize changes the surface dimensions.
	// Existing content is discarded. Resizing moves the target center, so
	// drawables rebake on their next Draw.
	Resize(width, height int) error
}

// Stats counts what a surface has received since it was created.
type Stats struct {
	Batches   int
	Triangles int
	Skipped   int
}
