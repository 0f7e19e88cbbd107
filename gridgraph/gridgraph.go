// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a search world. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Conversion to a *core.Graph[core.Point]
//   - Identification of connected components of walkable cells
//   - Minimal wall carving between two points
//
// Cells equal to Wall (0) are blocked; cells with any other value are walkable.
package gridgraph

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/stepsearch/core"
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	if opts.DiagonalWeight <= 0 {
		opts.DiagonalWeight = DefaultGridOptions().DiagonalWeight
	}
	// Orthogonal offsets first so Conn8 prefers straight moves on ties
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}, {1, -1}, {1, 1}, {-1, 1}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		opts:            opts,
		neighborOffsets: offsets,
	}, nil
}

// From2D is NewGridGraph with default options and the given connectivity.
func From2D(values [][]int, conn Connectivity) (*GridGraph, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn

	return NewGridGraph(values, opts)
}

// ParseRows reads one string per row: '0'-'9' are cell values, '#' is a
// wall and '.' is a plain walkable cell (value 1). Spaces are ignored.
func ParseRows(rows []string) ([][]int, error) {
	values := make([][]int, 0, len(rows))
	for y, row := range rows {
		row = strings.ReplaceAll(row, " ", "")
		cells := make([]int, 0, len(row))
		for x, r := range row {
			switch {
			case r >= '0' && r <= '9':
				cells = append(cells, int(r-'0'))
			case r == '#':
				cells = append(cells, Wall)
			case r == '.':
				cells = append(cells, 1)
			default:
				return nil, fmt.Errorf("%w: %q at %d,%d", ErrBadCell, r, x, y)
			}
		}
		values = append(values, cells)
	}

	return values, nil
}

// Options returns the conversion options.
func (gg *GridGraph) Options() GridOptions { return gg.opts }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Walkable reports whether p is inside the grid and not a wall.
func (gg *GridGraph) Walkable(p core.Point) bool {
	return gg.InBounds(p.X, p.Y) && gg.CellValues[p.Y][p.X] != Wall
}

// Value returns the cell value at p.
func (gg *GridGraph) Value(p core.Point) (int, error) {
	if !gg.InBounds(p.X, p.Y) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}

	return gg.CellValues[p.Y][p.X], nil
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// ToCoreGraph converts the walkable cells into a *core.Graph[core.Point].
// Cells become nodes in row-major order; neighbouring walkable cells are
// joined by undirected edges of weight 1 (orthogonal) or DiagonalWeight.
// With ExtraCostFromValue each node's extra cost is value-1.
// Complexity: O(W×H×d) time, Memory: O(W×H + E).
func (gg *GridGraph) ToCoreGraph() *core.Graph[core.Point] {
	g := core.NewGraph[core.Point]()
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p := core.Point{X: x, Y: y}
			if !gg.Walkable(p) {
				continue
			}
			g.AddNode(p)
			g.SetExtraCost(p, gg.extraCost(p))
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p := core.Point{X: x, Y: y}
			if !gg.Walkable(p) {
				continue
			}
			for _, d := range gg.neighborOffsets {
				q := core.Point{X: x + d[0], Y: y + d[1]}
				if !gg.Walkable(q) || g.HasEdge(p, q) {
					continue
				}
				w := 1.0
				if d[0] != 0 && d[1] != 0 {
					w = gg.opts.DiagonalWeight
				}
				g.AddEdge(p, q, false, gg.extraCost(p), gg.extraCost(q), core.WithWeight(w))
			}
		}
	}

	return g
}

func (gg *GridGraph) extraCost(p core.Point) float64 {
	if !gg.opts.ExtraCostFromValue {
		return 0
	}

	return float64(gg.CellValues[p.Y][p.X] - 1)
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
