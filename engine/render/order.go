package render

import (
	"math"

	"github.com/BenjaminWootten/Growth-Matrix/engine/scene"
)

// octantRule is the sort rule for one 45-degree yaw band: which axis to
// compare first, and which direction counts as nearer on each axis. The
// primary axis alternates every 90 degrees; the secondary direction flips at
// the midpoint of each primary span. This approximates a back-to-front order
// for yaw-only rotation; it is not a true depth sort and extreme pitch can
// mis-order overlapping silhouettes, which matches the intended look.
type octantRule struct {
	primaryZ   bool
	primLarger bool
	secLarger  bool
}

var octantRules = [8]octantRule{
	{primaryZ: true, primLarger: true, secLarger: false},
	{primaryZ: false, primLarger: false, secLarger: true},
	{primaryZ: false, primLarger: false, secLarger: false},
	{primaryZ: true, primLarger: false, secLarger: false},
	{primaryZ: true, primLarger: false, secLarger: true},
	{primaryZ: false, primLarger: true, secLarger: false},
	{primaryZ: false, primLarger: true, secLarger: true},
	{primaryZ: true, primLarger: true, secLarger: true},
}

func yawOctant(yaw float64) int {
	y := math.Mod(yaw, 2*math.Pi)
	if y < 0 {
		y += 2 * math.Pi
	}
	return int(y/(math.Pi/4)) % 8
}

// nearer reports whether box a paints over box b under the current yaw band.
func nearer(a, b *scene.Box, yaw float64) bool {
	rule := octantRules[yawOctant(yaw)]
	pa, pb := a.Center.X, b.Center.X
	sa, sb := a.Center.Z, b.Center.Z
	if rule.primaryZ {
		pa, pb, sa, sb = sa, sb, pa, pb
	}
	if pa != pb {
		return (pa > pb) == rule.primLarger
	}
	if sa != sb {
		return (sa > sb) == rule.secLarger
	}
	return false
}

// ComputeOrder rebuilds w.RenderOrder far-to-near via insertion sort: each
// box is inserted after every already-placed box that sits farther from the
// camera. The ground slab goes first or last depending on pitch, so cubes
// paint on top of it when seen from above.
func ComputeOrder(w *scene.World) {
	order := w.RenderOrder[:0]
	w.Each(func(b *scene.Box) {
		i := 0
		for _, placed := range order {
			if nearer(b, placed, w.Angle.Y) {
				i++
			}
		}
		order = append(order, nil)
		copy(order[i+1:], order[i:])
		order[i] = b
	})

	if math.Sin(w.Angle.X) > 0 {
		order = append(order, w.Base)
	} else {
		order = append(order, nil)
		copy(order[1:], order)
		order[0] = w.Base
	}
	w.RenderOrder = order
}
