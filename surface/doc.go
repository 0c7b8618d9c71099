// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides render targets for g2d drawables.
//
// A Surface is a g2d.Target with pixels behind it. Drawables bake their
// vertices against the surface's view and submit g2d.Batch values; the
// surface decides how those triangles become pixels.
//
// # Surface Types
//
//   - ImageSurface: CPU rasterization to *image.RGBA using
//     golang.org/x/image/vector, with nearest-sampled textures
//   - Recorder: keeps copies of the submitted batches for inspection and
//     later Playback to another surface
//
// # Registry
//
// Backends are selected through an explicit Registry. DefaultRegistry
// holds the built-in backends; applications add their own (for example a
// GPU backend consuming Batch.Interleave output):
//
//	r := surface.DefaultRegistry()
//	r.Register("gpu", 100, newGPUSurface, gpuAvailable)
//	s, err := r.NewSurface(surface.DefaultOptions(800, 600))
//
// # Usage
//
//	s := surface.NewImageSurface(800, 600, surface.WithClearColor(g2d.White))
//	defer s.Close()
//
//	c := g2d.NewCircleShape(50, 32)
//	c.SetFillColor(g2d.Red)
//	c.Draw(s)
//
//	_ = s.SavePNG("out.png")
//
// # Thread Safety
//
// Surfaces are NOT thread-safe. Each surface should be used from a single
// goroutine. The Registry is safe for concurrent use.
package surface
