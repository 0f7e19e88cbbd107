package gridgraph

import "github.com/katalvlaran/stepsearch/core"

// ConnectedComponents finds all contiguous regions of walkable cells
// according to the grid's connectivity. Components are ordered by their
// first cell in row-major order; cells inside a component are in BFS order
// from that first cell.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for labels and output.
func (gg *GridGraph) ConnectedComponents() [][]core.Point {
	comps, _ := gg.components()

	return comps
}

// ComponentOf returns the component index of p, or -1 for walls and
// points outside the grid. Indices match ConnectedComponents.
func (gg *GridGraph) ComponentOf(p core.Point) int {
	if !gg.Walkable(p) {
		return -1
	}
	_, labels := gg.components()

	return labels[gg.index(p.X, p.Y)]
}

// Connected reports whether a and b lie in the same component.
func (gg *GridGraph) Connected(a, b core.Point) bool {
	if !gg.Walkable(a) || !gg.Walkable(b) {
		return false
	}
	_, labels := gg.components()

	return labels[gg.index(a.X, a.Y)] == labels[gg.index(b.X, b.Y)]
}

// components labels every walkable cell with its component index (walls
// get -1) and collects the cells per component.
func (gg *GridGraph) components() (comps [][]core.Point, labels []int) {
	labels = make([]int, gg.Width*gg.Height)
	for i := range labels {
		labels[i] = -1
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			i0 := gg.index(x, y)
			if gg.CellValues[y][x] == Wall || labels[i0] >= 0 {
				continue
			}
			// BFS to collect component
			id := len(comps)
			queue := []int{i0}
			labels[i0] = id
			var comp []core.Point
			for qi := 0; qi < len(queue); qi++ {
				ux, uy := gg.Coordinate(queue[qi])
				comp = append(comp, core.Point{X: ux, Y: uy})
				for _, d := range gg.neighborOffsets {
					vx, vy := ux+d[0], uy+d[1]
					if !gg.InBounds(vx, vy) || gg.CellValues[vy][vx] == Wall {
						continue
					}
					vi := gg.index(vx, vy)
					if labels[vi] < 0 {
						labels[vi] = id
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}

	return comps, labels
}
