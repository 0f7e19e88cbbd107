package search

import (
	"fmt"
	"strings"
)

// Algorithm tags a search strategy.
type Algorithm int

const (
	// DepthFirst expands the most recently discovered node (stack frontier).
	DepthFirst Algorithm = iota
	// BreadthFirst expands the earliest discovered node (queue frontier).
	BreadthFirst
	// Dijkstra expands the node with the lowest g-score.
	Dijkstra
	// AStar expands the node with the lowest g+h.
	AStar
)

// Algorithms lists every supported tag in menu order.
var Algorithms = []Algorithm{DepthFirst, BreadthFirst, Dijkstra, AStar}

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case DepthFirst:
		return "depth-first"
	case BreadthFirst:
		return "breadth-first"
	case Dijkstra:
		return "dijkstra"
	case AStar:
		return "a*"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// Valid reports whether a is a known tag.
func (a Algorithm) Valid() bool {
	return a >= DepthFirst && a <= AStar
}

// ParseAlgorithm maps a case-insensitive name to its tag.
// Accepted: "dfs", "depth-first", "bfs", "breadth-first", "dijkstra",
// "astar", "a*", "a-star".
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dfs", "depth-first", "depthfirst":
		return DepthFirst, nil
	case "bfs", "breadth-first", "breadthfirst":
		return BreadthFirst, nil
	case "dijkstra":
		return Dijkstra, nil
	case "astar", "a*", "a-star":
		return AStar, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = parsed

	return nil
}
