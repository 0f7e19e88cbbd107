package gridgraph

import (
	"errors"
	"math"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadCell indicates a row character that is not a cell value.
	ErrBadCell = errors.New("gridgraph: invalid cell character")
	// ErrOutOfBounds indicates a point outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: point outside the grid")
	// ErrNoPath indicates no carving path exists between two points.
	ErrNoPath = errors.New("gridgraph: no path between specified points")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Wall is the cell value that blocks movement.
const Wall = 0

// GridOptions contains tunable parameters for grid conversion.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// DiagonalWeight is the edge weight of diagonal moves under Conn8.
	DiagonalWeight float64
	// ExtraCostFromValue sets a node's extra cost to value-1, so a cell of
	// value 3 carries extra cost 2.
	ExtraCostFromValue bool
}

// DefaultGridOptions returns Conn4, diagonal weight √2 and no extra costs.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:           Conn4,
		DiagonalWeight: math.Sqrt2,
	}
}

// GridGraph treats a 2D integer grid as a walkable world. It is immutable once built.
// Width and Height define dimensions; CellValues[y][x] holds the original input value.
// Cells equal to Wall are blocked; any other value is walkable.
type GridGraph struct {
	Width, Height   int
	CellValues      [][]int
	opts            GridOptions
	neighborOffsets [][2]int
}
