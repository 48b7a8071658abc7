package geom

import (
	"math"
	"testing"
)

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func vec2AlmostEqual(a, b Vec2) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y)
}

func TestBoxPointsCornerOrder(t *testing.T) {
	size := V3(2, 4, 6)
	center := V3(10, -3, 0.5)
	pts := BoxPoints(size, center)

	// Signed half-offsets per corner, in the fixed generation order:
	// z+ face then z- face, each (-x-y, +x-y, +x+y, -x+y).
	signs := [8][3]float64{
		{-1, -1, +1}, {+1, -1, +1}, {+1, +1, +1}, {-1, +1, +1},
		{-1, -1, -1}, {+1, -1, -1}, {+1, +1, -1}, {-1, +1, -1},
	}
	for i, s := range signs {
		want := V3(
			center.X+s[0]*size.X/2,
			center.Y+s[1]*size.Y/2,
			center.Z+s[2]*size.Z/2,
		)
		got := pts[i]
		if !almostEqual(got.X, want.X) || !almostEqual(got.Y, want.Y) || !almostEqual(got.Z, want.Z) {
			t.Errorf("corner %d: got %v, want %v", i, got, want)
		}
	}
}

func TestBoxPointsStable(t *testing.T) {
	size := V3(1, 1, 1)
	center := V3(-2, 0, 3)
	a := BoxPoints(size, center)
	b := BoxPoints(size, center)
	if a != b {
		t.Fatalf("repeated calls differ: %v vs %v", a, b)
	}
}

func TestProjectDeterministic(t *testing.T) {
	p := V3(1.5, -0.25, 2)
	angle := V3(0.3, 1.1, 0)
	a := Project(p, angle, 50, 320, 240)
	b := Project(p, angle, 50, 320, 240)
	if a != b {
		t.Fatalf("projection not deterministic: %v vs %v", a, b)
	}
}

func TestProjectIdentity(t *testing.T) {
	// With no rotation the projection is just drop-Z, scale, translate.
	got := Project(V3(2, -1, 7), V3(0, 0, 0), 50, 320, 240)
	want := Vec2{X: 2*50 + 320, Y: -1*50 + 240}
	if !vec2AlmostEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestProjectFullYawTurn(t *testing.T) {
	points := []Vec3{
		{1, 0, 0},
		{0, 1, 0},
		{0.5, -2, 3},
		{-1.25, 0.75, -0.5},
	}
	for _, p := range points {
		base := Project(p, V3(0.4, 0, 0), 50, 320, 240)
		turned := Project(p, V3(0.4, 2*math.Pi, 0), 50, 320, 240)
		if !vec2AlmostEqual(base, turned) {
			t.Errorf("point %v: full turn moved projection from %v to %v", p, base, turned)
		}
	}
}

func TestEdgeAndFaceIndexShape(t *testing.T) {
	if len(EdgeIndex) != 12 {
		t.Fatalf("EdgeIndex has %d edges", len(EdgeIndex))
	}
	if len(FaceIndex) != 6 {
		t.Fatalf("FaceIndex has %d faces", len(FaceIndex))
	}
	// Every vertex index must be in range, and every vertex must appear in
	// exactly 3 edges and 3 faces.
	edgeCount := [8]int{}
	for _, e := range EdgeIndex {
		for _, i := range e {
			if i < 0 || i > 7 {
				t.Fatalf("edge index %d out of range", i)
			}
			edgeCount[i]++
		}
	}
	faceCount := [8]int{}
	for _, f := range FaceIndex {
		for _, i := range f {
			if i < 0 || i > 7 {
				t.Fatalf("face index %d out of range", i)
			}
			faceCount[i]++
		}
	}
	for v := 0; v < 8; v++ {
		if edgeCount[v] != 3 {
			t.Errorf("vertex %d appears in %d edges, want 3", v, edgeCount[v])
		}
		if faceCount[v] != 3 {
			t.Errorf("vertex %d appears in %d faces, want 3", v, faceCount[v])
		}
	}
}

func TestPointInQuad(t *testing.T) {
	quad := [4]Vec2{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	testCases := []struct {
		name string
		p    Vec2
		want bool
	}{
		{"center", Vec2{5, 5}, true},
		{"edge", Vec2{0, 5}, true},
		{"corner", Vec2{10, 10}, true},
		{"outside right", Vec2{11, 5}, false},
		{"outside diagonal", Vec2{-1, -1}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := PointInQuad(tc.p, quad); got != tc.want {
				t.Errorf("PointInQuad(%v) = %v, want %v", tc.p, got, tc.want)
			}
		})
	}

	// Winding direction must not matter.
	reversed := [4]Vec2{{0, 10}, {10, 10}, {10, 0}, {0, 0}}
	if !PointInQuad(Vec2{5, 5}, reversed) {
		t.Error("center rejected for clockwise winding")
	}
}
