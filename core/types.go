// File: types.go
// Role: Node, Graph, edge options and sentinel errors.
//
// Concurrency:
//   - A single sync.RWMutex (mu) guards the node catalog, the insertion-order
//     slice and every successor list. Search code reads under RLock only.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrBadPoint indicates a textual point could not be parsed as "x,y".
	ErrBadPoint = errors.New("core: malformed point")
)

// DefaultWeight is the declared weight of an edge added without WithWeight.
const DefaultWeight = 1.0

// Node is a single vertex of the world graph.
//
// Identity is Key alone: two nodes with equal keys are the same node, and the
// Graph never stores two of them. Score and ExtraCost are payload, never
// identity.
type Node[K comparable] struct {
	// Key uniquely identifies this Node within its Graph.
	Key K

	// ExtraCost is the per-node extra cost set by AddEdge.
	ExtraCost float64

	// Score caches the last evaluation score (f = g + h) written by a search.
	Score float64

	// successors holds outgoing neighbor keys in insertion order.
	successors []K

	// weights maps a successor key to the declared weight of the link.
	weights map[K]float64
}

// Successors returns a copy of the node's successor keys in insertion order.
// Complexity: O(d).
func (n *Node[K]) Successors() []K {
	out := make([]K, len(n.successors))
	copy(out, n.successors)

	return out
}

// Degree returns the number of outgoing links.
func (n *Node[K]) Degree() int { return len(n.successors) }

// EdgeSpec carries per-edge properties configured by EdgeOption.
type EdgeSpec struct {
	// Weight is the declared traversal weight; DefaultWeight when unset.
	Weight float64
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*EdgeSpec)

// WithWeight sets the declared weight of the edge (in both directions for
// undirected edges).
func WithWeight(w float64) EdgeOption {
	return func(e *EdgeSpec) { e.Weight = w }
}

// Graph is a keyed, arena-style adjacency structure.
//
// Nodes never point at each other: every link is a successor key resolved by
// lookup in the nodes map, so A→B→A cycles carry no ownership.
// order preserves first-insertion order of keys, which keeps FIFO/LIFO search
// over Keys() and Successors() reproducible.
type Graph[K comparable] struct {
	mu sync.RWMutex // guards nodes, order, links

	nodes map[K]*Node[K] // key → Node
	order []K            // keys in first-insertion order
	links int            // number of directed successor links
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph[K comparable]() *Graph[K] {
	return &Graph[K]{
		nodes: make(map[K]*Node[K]),
	}
}
