package level

import (
	"github.com/BenjaminWootten/Growth-Matrix/engine/scene"
)

// CheckWin reports whether every green target is covered by a pushed box.
// A blue box whose center exactly matches a target's center is recolored
// purple, permanently: purple boxes are frozen in place and no longer
// pushable. Centers are compared exactly, so only snapped (integral) boxes
// can fill a target; boxes still in motion are skipped.
func CheckWin(w *scene.World) bool {
	greens := w.Boxes[scene.GroupGreen]
	if len(greens) == 0 {
		return false
	}
	filled := 0
	for _, g := range greens {
		for _, b := range w.Boxes[scene.GroupBlue] {
			if b.Moving {
				continue
			}
			if b.Center == g.Center {
				if b.Color == scene.Blue {
					b.Color = scene.Purple
				}
				filled++
				break
			}
		}
	}
	return filled == len(greens)
}
