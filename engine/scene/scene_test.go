package scene

import (
	"testing"

	"github.com/BenjaminWootten/Growth-Matrix/engine/geom"
)

func TestNewWorldBase(t *testing.T) {
	w := NewWorld(5, 7)
	if w.Base == nil {
		t.Fatal("world has no ground slab")
	}
	if w.Base.Size != geom.V3(5, 1, 7) {
		t.Errorf("slab size %v, want (5,1,7)", w.Base.Size)
	}
	if w.Base.Center != geom.V3(0, 1, 0) {
		t.Errorf("slab center %v, want (0,1,0)", w.Base.Center)
	}
	if w.Count() != 0 {
		t.Errorf("fresh world counts %d boxes", w.Count())
	}
}

func TestBoxAt(t *testing.T) {
	w := NewWorld(7, 7)
	red := NewBox(Red, geom.V3(1, 1, 1), geom.V3(1, 0, 2))
	green := NewBox(Green, geom.V3(1, 1, 1), geom.V3(-1, 0, 0))
	w.Add(GroupRed, red)
	w.Add(GroupGreen, green)

	if got := w.BoxAt(1, 2); got != red {
		t.Errorf("BoxAt(1,2) = %v", got)
	}
	if got := w.BoxAt(0, 0); got != nil {
		t.Errorf("empty cell returned %v", got)
	}
	// Targets are floor markers, not occupants.
	if got := w.BoxAt(-1, 0); got != nil {
		t.Errorf("green target reported as occupant: %v", got)
	}
	// Slightly off-grid centers still match their cell.
	red.Center.X = 1 + 1e-9
	if got := w.BoxAt(1, 2); got != red {
		t.Error("epsilon-off center not matched")
	}
}

func TestInBounds(t *testing.T) {
	w := NewWorld(5, 3)
	testCases := []struct {
		x, z float64
		want bool
	}{
		{0, 0, true},
		{2, 1, true},
		{-2.5, 0, true}, // slab edge counts as on
		{3, 0, false},
		{0, 2, false},
	}
	for _, tc := range testCases {
		if got := w.InBounds(tc.x, tc.z); got != tc.want {
			t.Errorf("InBounds(%v,%v) = %v, want %v", tc.x, tc.z, got, tc.want)
		}
	}
}

func TestEachVisitsAllGroups(t *testing.T) {
	w := NewWorld(5, 5)
	w.Add(GroupRed, NewBox(Red, geom.V3(1, 1, 1), geom.V3(0, 0, 0)))
	w.Add(GroupBlue, NewBox(Blue, geom.V3(1, 1, 1), geom.V3(1, 0, 0)))
	w.Add(GroupGreen, NewBox(Green, geom.V3(1, 1, 1), geom.V3(2, 0, 0)))

	visited := 0
	w.Each(func(b *Box) {
		if b == w.Base {
			t.Fatal("Each visited the base")
		}
		visited++
	})
	if visited != w.Count() {
		t.Errorf("visited %d, count %d", visited, w.Count())
	}
}

func TestRefreshFillsDrawables(t *testing.T) {
	b := NewBox(Blue, geom.V3(1, 1, 1), geom.V3(2, 0, -1))
	b.Refresh(geom.V3(0.3, 0.7, 0), 50, 480, 320)

	if b.Drawables.Vertices != b.Projected {
		t.Error("vertex slots do not mirror projected points")
	}
	for i, e := range geom.EdgeIndex {
		if b.Drawables.Edges[i][0] != b.Projected[e[0]] || b.Drawables.Edges[i][1] != b.Projected[e[1]] {
			t.Fatalf("edge slot %d stale", i)
		}
	}
	for i, f := range geom.FaceIndex {
		for j, idx := range f {
			if b.Drawables.Faces[i][j] != b.Projected[idx] {
				t.Fatalf("face slot %d corner %d stale", i, j)
			}
		}
	}

	// Mutating and refreshing again must move every projected point.
	before := b.Projected
	b.Center.X += 1
	b.Refresh(geom.V3(0.3, 0.7, 0), 50, 480, 320)
	for i := range before {
		if before[i] == b.Projected[i] {
			t.Fatalf("point %d did not move after center change", i)
		}
	}
}

func TestColorString(t *testing.T) {
	testCases := []struct {
		c    Color
		want string
	}{
		{White, "white"},
		{Red, "red"},
		{Blue, "blue"},
		{Green, "green"},
		{Purple, "purple"},
		{Color(99), "unknown"},
	}
	for _, tc := range testCases {
		if got := tc.c.String(); got != tc.want {
			t.Errorf("Color(%d).String() = %q, want %q", tc.c, got, tc.want)
		}
	}
}
