package g2d

import (
	"image"
	"testing"
)

const epsilon = 1e-4

func near(a, b float32) bool {
	d := a - b
	return d < epsilon && d > -epsilon
}

func vecNear(a, b Vector2f) bool {
	return near(a.X, b.X) && near(a.Y, b.Y)
}

func matNear(a, b Matrix) bool {
	return near(a.A, b.A) && near(a.B, b.B) && near(a.C, b.C) &&
		near(a.D, b.D) && near(a.Tx, b.Tx) && near(a.Ty, b.Ty)
}

// testTarget records submitted batches.
type testTarget struct {
	TargetState
	batches []Batch
}

func newTestTarget(w, h int) *testTarget {
	return &testTarget{TargetState: NewTargetState(w, h)}
}

func (t *testTarget) DrawBatch(b Batch) {
	b.Positions = append([]Vector2f(nil), b.Positions...)
	b.UVs = append([]Vector2f(nil), b.UVs...)
	t.batches = append(t.batches, b)
}

func (t *testTarget) reset() { t.batches = nil }

func testTexture(w, h int) *ImageTexture {
	return NewImageTexture(image.NewRGBA(image.Rect(0, 0, w, h)))
}

func assertVec(t *testing.T, what string, got, want Vector2f) {
	t.Helper()
	if !vecNear(got, want) {
		t.Errorf("%s = %v, want %v", what, got, want)
	}
}
