package scene

import (
	"github.com/BenjaminWootten/Growth-Matrix/engine/geom"
)

// Color identifies what a box is made of, which doubles as its role:
// red boxes grow, blue boxes get pushed, green boxes are targets, purple
// boxes are blue boxes that reached a target.
type Color uint8

const (
	White Color = iota
	Red
	Blue
	Green
	Purple
)

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Red:
		return "red"
	case Blue:
		return "blue"
	case Green:
		return "green"
	case Purple:
		return "purple"
	}
	return "unknown"
}

// Drawables holds the fixed per-box drawing slots: 8 vertex dots, 12 edge
// segments and 6 face quads, all in screen space. The slots are overwritten
// in place every frame, which stands in for destroying and recreating the
// primitives without the allocation churn.
type Drawables struct {
	Vertices [8]geom.Vec2
	Edges    [12][2]geom.Vec2
	Faces    [6][4]geom.Vec2
}

// Box is a single axis-aligned cube (or grown cuboid) in grid space.
type Box struct {
	Color     Color
	Size      geom.Vec3
	Center    geom.Vec3
	Points    [8]geom.Vec3
	Projected [8]geom.Vec2
	Drawables Drawables

	// Push state. Movement is nonzero only while Moving.
	Moving   bool
	Movement geom.Vec3
}

func NewBox(c Color, size, center geom.Vec3) *Box {
	return &Box{Color: c, Size: size, Center: center}
}

// Refresh regenerates the box geometry from its current size and center and
// reprojects it. Must run after any size/center mutation in a frame so no
// stale geometry is ever drawn or hit-tested.
func (b *Box) Refresh(angle geom.Vec3, scale, cx, cy float64) {
	b.Points = geom.BoxPoints(b.Size, b.Center)
	for i, p := range b.Points {
		b.Projected[i] = geom.Project(p, angle, scale, cx, cy)
	}
	b.Drawables.Vertices = b.Projected
	for i, e := range geom.EdgeIndex {
		b.Drawables.Edges[i][0] = b.Projected[e[0]]
		b.Drawables.Edges[i][1] = b.Projected[e[1]]
	}
	for i, f := range geom.FaceIndex {
		for j, idx := range f {
			b.Drawables.Faces[i][j] = b.Projected[idx]
		}
	}
}
