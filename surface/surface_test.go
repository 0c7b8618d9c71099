// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"testing"

	"github.com/gogpu/g2d"
)

var (
	_ ResizableSurface = (*ImageSurface)(nil)
	_ Surface          = (*Recorder)(nil)
	_ g2d.Target       = (*Recorder)(nil)
)

func TestRecorderCopiesBatches(t *testing.T) {
	rec := NewRecorder(100, 100)
	defer rec.Close()

	pos := []g2d.Vector2f{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}}
	rec.DrawBatch(g2d.Batch{Positions: pos, Color: g2d.Red})
	pos[0] = g2d.Vec2(99, 99)

	batches := rec.Batches()
	if len(batches) != 1 {
		t.Fatalf("len(Batches) = %d, want 1", len(batches))
	}
	if batches[0].Positions[0] != (g2d.Vector2f{}) {
		t.Error("recorded positions must not alias the drawable's buffer")
	}
	if st := rec.Stats(); st.Batches != 1 || st.Triangles != 1 {
		t.Errorf("Stats = %+v", st)
	}
}

func TestRecorderShapeBatches(t *testing.T) {
	rec := NewRecorder(200, 200)

	c := g2d.NewCircleShape(10, 12)
	c.SetOutlineThickness(2)
	c.SetFillColor(g2d.Yellow)
	c.SetOutlineColor(g2d.Blue)
	c.Draw(rec)

	batches := rec.Batches()
	if len(batches) != 2 {
		t.Fatalf("circle with outline should submit 2 batches, got %d", len(batches))
	}
	if n := len(batches[0].Positions); n != 3*12 {
		t.Errorf("fill vertices = %d, want 36", n)
	}
	if n := len(batches[1].Positions); n != 6*12 {
		t.Errorf("outline vertices = %d, want 72", n)
	}
	if batches[0].Color != g2d.Yellow || batches[1].Color != g2d.Blue {
		t.Error("batch colours should be fill then outline")
	}
	if batches[1].Texture != nil {
		t.Error("outline batch must not carry a texture")
	}
}

func TestRecorderViewIDs(t *testing.T) {
	rec := NewRecorder(100, 100)
	s := g2d.NewRectangleShape(g2d.Vec2(5, 5))

	s.Draw(rec)
	v := rec.View()
	v.Move(g2d.Vec2(10, 0))
	rec.SetView(v)
	s.Draw(rec)

	cmds := rec.Commands()
	first := cmds[0].(BatchCommand)
	second := cmds[1].(BatchCommand)
	if first.ViewID == second.ViewID {
		t.Error("moving the view should change the recorded view ID")
	}
	if got, want := second.Batch.Positions[1].X, first.Batch.Positions[1].X-10; got != want {
		t.Errorf("x after moving view = %v, want %v", got, want)
	}
}

func TestRecordingPlayback(t *testing.T) {
	rec := NewRecorder(20, 20)
	rec.Clear(g2d.Black)
	r := g2d.NewRectangleShape(g2d.Vec2(10, 10))
	r.SetPosition(g2d.Vec2(5, 5))
	r.SetFillColor(g2d.Green)
	r.Draw(rec)

	if c := rec.Snapshot().RGBAAt(10, 10); c.G != 0 || c.A != 255 {
		t.Errorf("recorder snapshot should only show the clear colour, got %v", c)
	}

	dst := NewImageSurface(20, 20)
	defer dst.Close()
	if err := rec.Finish().Playback(dst); err != nil {
		t.Fatalf("Playback: %v", err)
	}

	img := dst.Image()
	if c := img.RGBAAt(10, 10); c.G != 255 {
		t.Errorf("pixel inside = %v, want green", c)
	}
	if c := img.RGBAAt(1, 1); c.G != 0 || c.A != 255 {
		t.Errorf("pixel outside = %v, want black", c)
	}
}

func TestRecorderReset(t *testing.T) {
	rec := NewRecorder(10, 10)
	rec.Clear(g2d.White)
	rec.Reset()
	if len(rec.Commands()) != 0 || rec.Stats() != (Stats{}) {
		t.Error("Reset should drop commands and stats")
	}
	if err := rec.Close(); err != nil {
		t.Fatal(err)
	}
	if rec.Snapshot() != nil {
		t.Error("Snapshot after Close should return nil")
	}
}
