package sim

import (
	"math"

	"github.com/BenjaminWootten/Growth-Matrix/engine/core"
	"github.com/BenjaminWootten/Growth-Matrix/engine/geom"
	"github.com/BenjaminWootten/Growth-Matrix/engine/scene"
)

const (
	// ScaleMax caps red-box growth on every axis.
	ScaleMax = 3.0
	// GrowStep is the per-frame size delta while growing or shrinking.
	GrowStep = 0.05
	// PushStep is the per-frame speed of a pushed box: half the growth
	// delta, matching how fast a growing face advances on one side.
	PushStep = GrowStep / 2
)

// Simulator runs the click-driven growth state machine and the push
// propagation once per frame. All mutation happens on the update thread.
type Simulator struct {
	bus *core.EventBus

	// lastGrower detects a grower swap between frames so movers pushed by
	// the demoted box stop instead of coasting.
	lastGrower *scene.Box
}

func New(bus *core.EventBus) *Simulator {
	return &Simulator{bus: bus}
}

// Click resolves a pointer click on a box. Only red boxes react: the clicked
// box becomes the grower and any previous grower is demoted to shrinking.
// While a demoted box is still shrinking no new selection is accepted, which
// keeps at most one box in each of the growing and shrinking states.
func (s *Simulator) Click(w *scene.World, b *scene.Box) {
	if b == nil || b.Color != scene.Red {
		return
	}
	if w.ScaledUp == b || w.PrevScaledUp != nil {
		return
	}
	if w.ScaledUp != nil {
		w.PrevScaledUp = w.ScaledUp
	}
	w.ScaledUp = b
	s.bus.Emit(core.Event{Type: core.EvtBoxSelected, Payload: b})
}

// Step advances the simulation one frame: grow, shrink, propagate pushes,
// integrate movement, then stop and snap movers once nothing is growing.
func (s *Simulator) Step(w *scene.World) {
	if w.ScaledUp != s.lastGrower {
		s.stopMovers(w)
	}

	grower := w.ScaledUp
	var grewX, grewZ bool
	growing := grower != nil && grower.Size.Y < ScaleMax
	if growing {
		grewX, grewZ = s.grow(w, grower)
	}
	s.shrink(w)

	if growing {
		s.propagate(w, grower, grewX, grewZ)
	}
	for _, b := range w.Boxes[scene.GroupBlue] {
		if b.Moving {
			b.Center = b.Center.Add(b.Movement)
		}
	}

	if grower == nil || grower.Size.Y >= ScaleMax {
		s.stopMovers(w)
	}
	s.lastGrower = w.ScaledUp
}

// grow advances the grower by one step. A horizontal axis only grows when
// both of its directions probe clear; the vertical axis always grows, with
// the center shifted by half the delta so the bottom face stays on the slab
// (screen y increases downward, so up is -y).
func (s *Simulator) grow(w *scene.World, g *scene.Box) (grewX, grewZ bool) {
	if Probe(w, g.Center, AxisX, +1) && Probe(w, g.Center, AxisX, -1) {
		g.Size.X += GrowStep
		grewX = true
	}
	if Probe(w, g.Center, AxisZ, +1) && Probe(w, g.Center, AxisZ, -1) {
		g.Size.Z += GrowStep
		grewZ = true
	}
	dy := GrowStep
	if g.Size.Y+dy > ScaleMax {
		dy = ScaleMax - g.Size.Y
	}
	g.Size.Y += dy
	g.Center.Y -= dy / 2
	return grewX, grewZ
}

// shrink eases the previously grown box back toward the unit cube and clears
// the reference once every axis is back at 1.
func (s *Simulator) shrink(w *scene.World) {
	p := w.PrevScaledUp
	if p == nil {
		return
	}
	if p.Size.Y > 1 {
		dy := GrowStep
		if p.Size.Y-dy < 1 {
			dy = p.Size.Y - 1
		}
		p.Size.Y -= dy
		p.Center.Y += dy / 2
	}
	if p.Size.X > 1 {
		p.Size.X = math.Max(1, p.Size.X-GrowStep)
	}
	if p.Size.Z > 1 {
		p.Size.Z = math.Max(1, p.Size.Z-GrowStep)
	}
	if p.Size.X <= 1 && p.Size.Y <= 1 && p.Size.Z <= 1 {
		w.PrevScaledUp = nil
	}
}

// stopMovers halts every moving box and snaps it to the nearest grid cell.
func (s *Simulator) stopMovers(w *scene.World) {
	for _, b := range w.Boxes[scene.GroupBlue] {
		if !b.Moving {
			continue
		}
		b.Moving = false
		b.Movement = geom.Vec3{}
		b.Center.X = math.Round(b.Center.X)
		b.Center.Z = math.Round(b.Center.Z)
		s.bus.Emit(core.Event{Type: core.EvtBoxSnapped, Payload: b})
	}
}
