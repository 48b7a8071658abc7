package sim

import (
	"github.com/BenjaminWootten/Growth-Matrix/engine/core"
	"github.com/BenjaminWootten/Growth-Matrix/engine/geom"
	"github.com/BenjaminWootten/Growth-Matrix/engine/scene"
)

// propagate starts push chains. A blue box exactly one cell from the grower
// along an axis the grower expanded this frame starts moving away from it;
// each moving box then recruits the blue box in front of it, taking the same
// velocity, until the chain runs out. The traversal is an explicit work list
// with a visited set: a box only ever pushes in the direction it is itself
// moving, so the chain cannot cycle, but the guard makes that explicit.
func (s *Simulator) propagate(w *scene.World, grower *scene.Box, grewX, grewZ bool) {
	type push struct {
		axis Axis
		dir  int
	}

	visited := map[*scene.Box]bool{grower: true}
	queue := []*scene.Box{grower}

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		var pushes []push
		if p == grower {
			if grewX {
				pushes = append(pushes, push{AxisX, +1}, push{AxisX, -1})
			}
			if grewZ {
				pushes = append(pushes, push{AxisZ, +1}, push{AxisZ, -1})
			}
		} else {
			// A chain member only pushes the cell it is moving into.
			switch {
			case p.Movement.X > 0:
				pushes = []push{{AxisX, +1}}
			case p.Movement.X < 0:
				pushes = []push{{AxisX, -1}}
			case p.Movement.Z > 0:
				pushes = []push{{AxisZ, +1}}
			case p.Movement.Z < 0:
				pushes = []push{{AxisZ, -1}}
			}
		}

		for _, pu := range pushes {
			nx, nz := p.Center.X, p.Center.Z
			if pu.axis == AxisX {
				nx += float64(pu.dir)
			} else {
				nz += float64(pu.dir)
			}
			nb := w.BoxAt(nx, nz)
			if nb == nil || visited[nb] || nb.Color != scene.Blue {
				continue
			}
			visited[nb] = true
			if !nb.Moving {
				nb.Moving = true
				if pu.axis == AxisX {
					nb.Movement = geom.V3(float64(pu.dir)*PushStep, 0, 0)
				} else {
					nb.Movement = geom.V3(0, 0, float64(pu.dir)*PushStep)
				}
				s.bus.Emit(core.Event{Type: core.EvtBoxPushed, Payload: nb})
			}
			queue = append(queue, nb)
		}
	}
}
