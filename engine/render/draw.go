package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/BenjaminWootten/Growth-Matrix/engine/geom"
	"github.com/BenjaminWootten/Growth-Matrix/engine/scene"
)

const (
	// PixelsPerUnit is the fixed orthographic scale: screen pixels per grid
	// unit at projection time.
	PixelsPerUnit = 50.0

	vertexRadius = 5.0
	edgeWidth    = 1.0
)

var faceColors = map[scene.Color]color.RGBA{
	scene.White:  {235, 235, 235, 255},
	scene.Red:    {220, 60, 60, 255},
	scene.Blue:   {70, 110, 230, 255},
	scene.Green:  {70, 190, 90, 255},
	scene.Purple: {160, 80, 200, 255},
}

var lineColor = color.RGBA{15, 15, 15, 255}

// Renderer repaints the whole scene every frame: order, reproject, draw.
type Renderer struct {
	ScreenW, ScreenH int
	Scale            float64

	whiteImg *ebiten.Image
}

func NewRenderer(screenW, screenH int) *Renderer {
	r := &Renderer{
		ScreenW: screenW,
		ScreenH: screenH,
		Scale:   PixelsPerUnit,
	}
	// Small white image shared by every colored triangle draw.
	r.whiteImg = ebiten.NewImage(3, 3)
	r.whiteImg.Fill(color.White)
	return r
}

// Draw recomputes the paint order, refreshes every box's geometry from its
// current size and center, and paints back to front.
func (r *Renderer) Draw(screen *ebiten.Image, w *scene.World) {
	ComputeOrder(w)
	cx := float64(r.ScreenW) / 2
	cy := float64(r.ScreenH) / 2
	for _, b := range w.RenderOrder {
		b.Refresh(w.Angle, r.Scale, cx, cy)
		r.paintBox(screen, b)
	}
}

func (r *Renderer) paintBox(screen *ebiten.Image, b *scene.Box) {
	clr := faceColors[b.Color]
	cr := float32(clr.R) / 255
	cg := float32(clr.G) / 255
	cb := float32(clr.B) / 255

	vertices := make([]ebiten.Vertex, 0, 6*4)
	indices := make([]uint16, 0, 6*6)
	for _, q := range b.Drawables.Faces {
		base := uint16(len(vertices))
		for _, p := range q {
			vertices = append(vertices, ebiten.Vertex{
				DstX: float32(p.X), DstY: float32(p.Y),
				SrcX: 1, SrcY: 1,
				ColorR: cr, ColorG: cg, ColorB: cb, ColorA: 1,
			})
		}
		indices = append(indices,
			base, base+1, base+2,
			base, base+2, base+3)
	}
	screen.DrawTriangles(vertices, indices, r.whiteImg, &ebiten.DrawTrianglesOptions{})

	for _, e := range b.Drawables.Edges {
		vector.StrokeLine(screen,
			float32(e[0].X), float32(e[0].Y),
			float32(e[1].X), float32(e[1].Y),
			edgeWidth, lineColor, true)
	}
	for _, v := range b.Drawables.Vertices {
		vector.DrawFilledCircle(screen, float32(v.X), float32(v.Y), vertexRadius, lineColor, true)
	}
}

// HitTest returns the frontmost box whose projected silhouette contains the
// screen point, scanning the current paint order near to far. The base never
// hit-tests.
func HitTest(w *scene.World, x, y float64) *scene.Box {
	p := geom.Vec2{X: x, Y: y}
	for i := len(w.RenderOrder) - 1; i >= 0; i-- {
		b := w.RenderOrder[i]
		if b == w.Base {
			continue
		}
		for _, q := range b.Drawables.Faces {
			if geom.PointInQuad(p, q) {
				return b
			}
		}
	}
	return nil
}
