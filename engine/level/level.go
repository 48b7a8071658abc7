package level

import (
	"errors"
	"fmt"

	"github.com/BenjaminWootten/Growth-Matrix/engine/geom"
	"github.com/BenjaminWootten/Growth-Matrix/engine/scene"
)

// ErrLevelFormat reports a level whose grid does not match its declared
// dimensions.
var ErrLevelFormat = errors.New("level: malformed grid")

// Level is one puzzle layout: a rectangular character grid plus the ground
// slab dimensions. Recognized cells are 'r' (red), 'w' (white), 'b' (blue)
// and 'g' (green target); anything else is an empty cell. Rows are authored
// top-down and placed bottom-to-top.
type Level struct {
	Name  string   `json:"name"`
	Grid  []string `json:"grid"`
	BaseX int      `json:"base_x"`
	BaseZ int      `json:"base_z"`
}

// Validate checks the grid against the declared base dimensions.
func (l Level) Validate() error {
	if l.BaseX < 1 || l.BaseZ < 1 {
		return fmt.Errorf("%w: base %dx%d", ErrLevelFormat, l.BaseX, l.BaseZ)
	}
	if len(l.Grid) != l.BaseZ {
		return fmt.Errorf("%w: %d rows, want %d", ErrLevelFormat, len(l.Grid), l.BaseZ)
	}
	for i, row := range l.Grid {
		if len(row) != l.BaseX {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrLevelFormat, i, len(row), l.BaseX)
		}
	}
	return nil
}

// Build creates a fresh world for the level. Cell (col, row) lands at
// (col - baseX/2, 0, row - baseZ/2) with the authored rows reversed so the
// last row is the front of the grid.
func Build(l Level) (*scene.World, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	w := scene.NewWorld(l.BaseX, l.BaseZ)
	for r, row := range l.Grid {
		z := float64((l.BaseZ - 1 - r) - l.BaseZ/2)
		for c, ch := range row {
			x := float64(c - l.BaseX/2)
			center := geom.V3(x, 0, z)
			switch ch {
			case 'r':
				w.Add(scene.GroupRed, scene.NewBox(scene.Red, unitSize, center))
			case 'w':
				w.Add(scene.GroupWhite, scene.NewBox(scene.White, unitSize, center))
			case 'b':
				w.Add(scene.GroupBlue, scene.NewBox(scene.Blue, unitSize, center))
			case 'g':
				w.Add(scene.GroupGreen, scene.NewBox(scene.Green, unitSize, center))
			}
		}
	}
	return w, nil
}

var unitSize = geom.V3(1, 1, 1)

// BuiltIn returns the shipped level set, in play order.
func BuiltIn() []Level {
	return []Level{
		{
			Name:  "Nudge",
			BaseX: 5, BaseZ: 5,
			Grid: []string{
				".....",
				".....",
				".rbg.",
				".....",
				".....",
			},
		},
		{
			Name:  "Tandem",
			BaseX: 7, BaseZ: 5,
			Grid: []string{
				".......",
				".......",
				"..rbbg.",
				".......",
				".......",
			},
		},
		{
			Name:  "Corridor",
			BaseX: 5, BaseZ: 5,
			Grid: []string{
				".....",
				"..g..",
				"..b..",
				".wrw.",
				".....",
			},
		},
		{
			Name:  "Crossfire",
			BaseX: 7, BaseZ: 5,
			Grid: []string{
				".......",
				".......",
				".gbrbg.",
				".......",
				".......",
			},
		},
		{
			Name:  "Junction",
			BaseX: 7, BaseZ: 5,
			Grid: []string{
				".......",
				"...g...",
				"...b...",
				".gbr...",
				".......",
			},
		},
		{
			Name:  "Blockade",
			BaseX: 7, BaseZ: 5,
			Grid: []string{
				".......",
				"..g.w..",
				"..b....",
				".wr..r.",
				".......",
			},
		},
	}
}
