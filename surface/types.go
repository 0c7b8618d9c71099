// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "github.com/gogpu/g2d"

// Options configures surface creation.
type Options struct {
	// Width is the surface width in pixels.
	Width int

	// Height is the surface height in pixels.
	Height int

	// ClearColor is the initial background color.
	// Default: transparent
	ClearColor g2d.Color

	// LogicalWidth and LogicalHeight enable logical presentation: the
	// target center is computed from them instead of the pixel size.
	LogicalWidth  int
	LogicalHeight int

	// Custom options for specific backends.
	Custom map[string]any
}

// DefaultOptions returns Options with default values.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:  width,
		Height: height,
	}
}

// Option configures an ImageSurface during creation.
type Option func(*Options)

// WithClearColor sets the initial background color.
func WithClearColor(c g2d.Color) Option {
	return func(o *Options) {
		o.ClearColor = c
	}
}

// WithLogicalSize enables logical presentation with the given size.
func WithLogicalSize(width, height int) Option {
	return func(o *Options) {
		o.LogicalWidth = width
		o.LogicalHeight = height
	}
}
