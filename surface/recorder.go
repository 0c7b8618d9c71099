// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/draw"

	"github.com/gogpu/g2d"
)

// Command is one operation captured by a Recorder: a ClearCommand or a
// BatchCommand.
type Command interface {
	command()
}

// ClearCommand records a call to Clear.
type ClearCommand struct {
	Color g2d.Color
}

// BatchCommand records a submitted batch together with the view ID that
// was current when it arrived. Slices are owned by the command.
type BatchCommand struct {
	Batch  g2d.Batch
	ViewID uint64
}

func (ClearCommand) command() {}
func (BatchCommand) command() {}

// Recorder is a Surface that keeps the operations it receives instead of
// rasterizing them. Batches are copied, so drawables may reuse their
// buffers after Draw returns.
//
// A Recording can be replayed to any other surface:
//
//	rec := surface.NewRecorder(800, 600)
//	shape.Draw(rec)
//	rec.Finish().Playback(surface.NewImageSurface(800, 600))
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	g2d.TargetState

	width, height int
	clear         g2d.Color
	commands      []Command
	stats         Stats
	closed        bool
}

// NewRecorder creates a new Recorder for the given dimensions.
func NewRecorder(width, height int, opts ...Option) *Recorder {
	o := DefaultOptions(width, height)
	for _, opt := range opts {
		opt(&o)
	}
	return newRecorder(o)
}

func newRecorder(o Options) *Recorder {
	r := &Recorder{
		TargetState: g2d.NewTargetState(o.Width, o.Height),
		width:       o.Width,
		height:      o.Height,
		clear:       o.ClearColor,
		commands:    make([]Command, 0, 64),
	}
	r.SetLogicalSize(o.LogicalWidth, o.LogicalHeight)
	return r
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// Clear records a clear and remembers c as the background for Snapshot.
func (r *Recorder) Clear(c g2d.Color) {
	if r.closed {
		return
	}
	r.clear = c
	r.commands = append(r.commands, ClearCommand{Color: c})
}

// DrawBatch records a deep copy of b.
func (r *Recorder) DrawBatch(b g2d.Batch) {
	if r.closed {
		return
	}
	r.stats.Batches++
	r.stats.Triangles += b.VertexCount() / 3

	c := b
	c.Positions = append([]g2d.Vector2f(nil), b.Positions...)
	if len(b.UVs) > 0 {
		c.UVs = append([]g2d.Vector2f(nil), b.UVs...)
	}
	if len(b.Indices) > 0 {
		c.Indices = append([]uint16(nil), b.Indices...)
	}
	r.commands = append(r.commands, BatchCommand{Batch: c, ViewID: r.ViewID()})
}

// Commands returns the operations recorded so far.
func (r *Recorder) Commands() []Command {
	return r.commands
}

// Batches returns the recorded batches in submission order.
func (r *Recorder) Batches() []g2d.Batch {
	var out []g2d.Batch
	for _, c := range r.commands {
		if bc, ok := c.(BatchCommand); ok {
			out = append(out, bc.Batch)
		}
	}
	return out
}

// Reset drops all recorded commands and counters. The view is kept.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
	r.stats = Stats{}
}

// Stats returns counters of the work recorded so far.
func (r *Recorder) Stats() Stats {
	return r.stats
}

// Flush is a no-op.
func (r *Recorder) Flush() error {
	return nil
}

// Snapshot returns an image filled with the last clear colour. The
// recorder does not rasterize; replay the recording to an ImageSurface to
// get pixels.
func (r *Recorder) Snapshot() *image.RGBA {
	if r.closed {
		return nil
	}
	img := image.NewRGBA(image.Rect(0, 0, r.width, r.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.clear.NRGBA()), image.Point{}, draw.Src)
	return img
}

// Finish returns an immutable Recording of all recorded commands.
// After calling Finish, the Recorder should not be used again.
func (r *Recorder) Finish() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.commands,
	}
}

// Close releases the recorded commands.
func (r *Recorder) Close() error {
	r.closed = true
	r.commands = nil
	return nil
}

// Recording is an immutable list of recorded commands.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Playback replays the recording to s. Batches are already in pixel space,
// so the view of s is not applied.
func (r *Recording) Playback(s Surface) error {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case ClearCommand:
			s.Clear(c.Color)
		case BatchCommand:
			s.DrawBatch(c.Batch)
		}
	}
	return s.Flush()
}
