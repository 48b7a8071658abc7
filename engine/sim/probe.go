package sim

import (
	"github.com/BenjaminWootten/Growth-Matrix/engine/geom"
	"github.com/BenjaminWootten/Growth-Matrix/engine/scene"
)

// Axis selects a horizontal grid axis.
type Axis uint8

const (
	AxisX Axis = iota
	AxisZ
)

// Probe walks outward from the cell at `from`, one grid cell at a time along
// the axis, and reports whether growth in that direction is unblocked.
// White, red and purple boxes block immediately. Blue boxes are pushable, so
// the walk continues through them. Running past the edge of the ground slab
// counts as clear.
func Probe(w *scene.World, from geom.Vec3, axis Axis, dir int) bool {
	x, z := from.X, from.Z
	for {
		if axis == AxisX {
			x += float64(dir)
		} else {
			z += float64(dir)
		}
		if !w.InBounds(x, z) {
			return true
		}
		b := w.BoxAt(x, z)
		if b == nil {
			return true
		}
		if b.Color != scene.Blue {
			return false
		}
	}
}
