package g2d

import (
	"errors"
	"testing"
)

var (
	squareCW  = []Vector2f{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}}
	squareCCW = []Vector2f{{X: 0, Y: 0}, {X: 0, Y: 10}, {X: 10, Y: 10}, {X: 10, Y: 0}}
)

func TestFanMesh(t *testing.T) {
	for n := 3; n <= 8; n++ {
		pts := outlinePoints(Circle{Radius: 5, Points: n}, nil)
		mesh := fanMesh(nil, pts, Vector2f{})
		if len(mesh) != 3*n {
			t.Errorf("fanMesh(%d points) has %d vertices, want %d", n, len(mesh), 3*n)
		}
	}

	center := Vec2(5, 5)
	mesh := fanMesh(nil, squareCW, center)
	for i := 0; i < len(squareCW); i++ {
		a, b, c := mesh[3*i], mesh[3*i+1], mesh[3*i+2]
		if a != center || b != squareCW[i] || c != squareCW[(i+1)%4] {
			t.Errorf("triangle %d = %v %v %v", i, a, b, c)
		}
	}
}

func TestOutlineMeshCounts(t *testing.T) {
	tests := []struct {
		name      string
		pts       []Vector2f
		thickness float32
		want      int
	}{
		{"square", squareCW, 2, 24},
		{"triangle", squareCW[:3], 1, 18},
		{"zero thickness", squareCW, 0, 0},
		{"two points", squareCW[:2], 1, 0},
		{"no points", nil, 1, 0},
		{"negative thickness", squareCW, -1, 24},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mesh := outlineMesh(nil, tt.pts, tt.thickness, DefaultMiterCutoff)
			if len(mesh) != tt.want {
				t.Errorf("len = %d, want %d", len(mesh), tt.want)
			}
		})
	}
}

// outerPoints extracts the offset vertex of each outline point.
func outerPoints(mesh []Vector2f) []Vector2f {
	var out []Vector2f
	for i := 1; i < len(mesh); i += 6 {
		out = append(out, mesh[i])
	}
	return out
}

func TestOutlineMeshGrowsOutward(t *testing.T) {
	for _, tt := range []struct {
		name string
		pts  []Vector2f
	}{
		{"clockwise", squareCW},
		{"counter-clockwise", squareCCW},
	} {
		t.Run(tt.name, func(t *testing.T) {
			mesh := outlineMesh(nil, tt.pts, 1, DefaultMiterCutoff)
			inner := FloatRect{X: 0, Y: 0, W: 10, H: 10}
			for i, p := range outerPoints(mesh) {
				// Square corners get a full miter: one unit out on both axes.
				want := tt.pts[i]
				if want.X == 0 {
					want.X = -1
				} else {
					want.X = 11
				}
				if want.Y == 0 {
					want.Y = -1
				} else {
					want.Y = 11
				}
				assertVec(t, "outer corner", p, want)
				if inner.Contains(p) {
					t.Errorf("outer point %v lies inside the fill", p)
				}
			}
			// Inner edge is the outline itself.
			for i := 0; i < len(tt.pts); i++ {
				if mesh[6*i] != tt.pts[i] {
					t.Errorf("inner vertex %d = %v, want %v", i, mesh[6*i], tt.pts[i])
				}
			}
		})
	}
}

func TestOutlineMeshIgnoresThicknessSign(t *testing.T) {
	for _, pts := range [][]Vector2f{squareCW, squareCCW} {
		pos := outlineMesh(nil, pts, 1, DefaultMiterCutoff)
		neg := outlineMesh(nil, pts, -1, DefaultMiterCutoff)
		for i := range pos {
			assertVec(t, "vertex", neg[i], pos[i])
		}
	}
	assertVec(t, "first outer", outerPoints(outlineMesh(nil, squareCW, -1, DefaultMiterCutoff))[0], Vec2(-1, -1))
}

func TestOutlineMeshMiterCutoff(t *testing.T) {
	// A thin spike: the joint at (100, 1) nearly reverses direction.
	spike := []Vector2f{{X: 0, Y: 0}, {X: 100, Y: 1}, {X: 0, Y: 2}}

	tip := outerPoints(outlineMesh(nil, spike, 2, DefaultMiterCutoff))[1]
	if d := Length(tip.Sub(spike[1])); !near(d, 2) {
		t.Errorf("cut-off miter length = %v, want the plain thickness 2", d)
	}
	if tip.X <= spike[1].X {
		t.Errorf("tip %v should point away from the spike", tip)
	}

	tip = outerPoints(outlineMesh(nil, spike, 2, 0.001))[1]
	if d := Length(tip.Sub(spike[1])); d < 150 {
		t.Errorf("miter length with a low cutoff = %v, want about 200", d)
	}
}

func TestSignedArea2(t *testing.T) {
	if got := signedArea2(squareCW); got != 200 {
		t.Errorf("clockwise area = %v, want 200", got)
	}
	if got := signedArea2(squareCCW); got != -200 {
		t.Errorf("counter-clockwise area = %v, want -200", got)
	}
}

func TestLocalBounds(t *testing.T) {
	if _, err := localBounds(nil); !errors.Is(err, ErrEmptyGeometry) {
		t.Errorf("localBounds(nil) err = %v, want ErrEmptyGeometry", err)
	}
	b, err := localBounds(squareCW)
	if err != nil || b != (FloatRect{W: 10, H: 10}) {
		t.Errorf("localBounds = %+v, %v", b, err)
	}
}

func TestUVMapper(t *testing.T) {
	m := uvMapper{
		bounds: FloatRect{X: -5, Y: -5, W: 10, H: 10},
		rect:   FloatRect{X: 10, Y: 0, W: 20, H: 10},
		size:   Vec2(40, 20),
	}
	tests := []struct {
		p, want Vector2f
	}{
		{Vec2(-5, -5), Vec2(0.25, 0)},
		{Vec2(5, 5), Vec2(0.75, 0.5)},
		{Vec2(0, 0), Vec2(0.5, 0.25)},
	}
	for _, tt := range tests {
		assertVec(t, "uv", m.uv(tt.p), tt.want)
	}

	// Zero extents map to the rectangle's top-left instead of dividing by
	// zero.
	flat := uvMapper{
		bounds: FloatRect{X: 3, Y: 3},
		rect:   FloatRect{X: 4, Y: 2, W: 8, H: 8},
		size:   Vec2(16, 16),
	}
	assertVec(t, "flat uv", flat.uv(Vec2(3, 3)), Vec2(0.25, 0.125))

	// An empty texture yields zero coordinates, not NaN or Inf.
	empty := uvMapper{
		bounds: FloatRect{W: 10, H: 10},
		rect:   FloatRect{W: 4, H: 4},
		size:   Vec2(0, 0),
	}
	assertVec(t, "empty texture uv", empty.uv(Vec2(10, 10)), Vec2(0, 0))
}
