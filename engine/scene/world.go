package scene

import (
	"math"

	"github.com/BenjaminWootten/Growth-Matrix/engine/geom"
)

// Box group indices into World.Boxes.
const (
	GroupRed = iota
	GroupWhite
	GroupBlue
	GroupGreen
	GroupCount
)

const centerEpsilon = 1e-6

// World owns every box in a level plus the camera state. It is rebuilt
// wholesale when a level starts or restarts.
type World struct {
	Base  *Box
	Boxes [GroupCount][]*Box

	// RenderOrder is rebuilt every frame by the renderer, far to near.
	RenderOrder []*Box

	// Angle is (pitch, yaw, roll). Roll is carried through the projection
	// but nothing ever sets it.
	Angle geom.Vec3

	// Pan bookkeeping.
	ClickX, ClickY int
	Panning        bool

	// At most one red box grows at a time; the previously grown one may
	// still be animating back to a unit cube.
	ScaledUp     *Box
	PrevScaledUp *Box

	BaseX, BaseZ int
}

// NewWorld creates a world with a ground slab of the given grid dimensions,
// sitting one unit below the cube layer.
func NewWorld(baseX, baseZ int) *World {
	return &World{
		Base:  NewBox(White, geom.V3(float64(baseX), 1, float64(baseZ)), geom.V3(0, 1, 0)),
		BaseX: baseX,
		BaseZ: baseZ,
	}
}

// Add places a box into one of the four color groups.
func (w *World) Add(group int, b *Box) {
	w.Boxes[group] = append(w.Boxes[group], b)
}

// Each visits every box except the base, in group order.
func (w *World) Each(fn func(*Box)) {
	for g := 0; g < GroupCount; g++ {
		for _, b := range w.Boxes[g] {
			fn(b)
		}
	}
}

// Count returns the number of boxes excluding the base.
func (w *World) Count() int {
	n := 0
	for g := 0; g < GroupCount; g++ {
		n += len(w.Boxes[g])
	}
	return n
}

// BoxAt returns the box whose center sits at the given horizontal cell, or
// nil. Green targets are markers on the floor, not obstacles, so they are
// not reported.
func (w *World) BoxAt(x, z float64) *Box {
	for g := 0; g < GroupCount; g++ {
		if g == GroupGreen {
			continue
		}
		for _, b := range w.Boxes[g] {
			if math.Abs(b.Center.X-x) < centerEpsilon && math.Abs(b.Center.Z-z) < centerEpsilon {
				return b
			}
		}
	}
	return nil
}

// InBounds reports whether a horizontal cell lies on the ground slab.
func (w *World) InBounds(x, z float64) bool {
	return math.Abs(x) <= float64(w.BaseX)/2+centerEpsilon &&
		math.Abs(z) <= float64(w.BaseZ)/2+centerEpsilon
}
