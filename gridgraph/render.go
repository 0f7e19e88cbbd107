package gridgraph

import (
	"strings"

	"github.com/katalvlaran/stepsearch/core"
)

// Render draws the grid one character per cell, rows separated by '\n'.
// Walls are '#'; every other cell is whatever glyph returns for it.
func (gg *GridGraph) Render(glyph func(core.Point) rune) string {
	var b strings.Builder
	b.Grow((gg.Width + 1) * gg.Height)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p := core.Point{X: x, Y: y}
			if gg.CellValues[y][x] == Wall {
				b.WriteRune('#')
				continue
			}
			b.WriteRune(glyph(p))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
