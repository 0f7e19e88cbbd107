// Package core provides the keyed world graph searched by the engine.
//
// The Graph G = (V,E) is generic over a comparable key type K:
//
//   - Node identity is the key only; Score and ExtraCost are payload.
//   - Adjacency is arena-style: each Node keeps successor *keys*, never
//     pointers to other nodes, so mutual neighbors form no ownership cycle.
//   - Directed and undirected links share one store: an undirected edge is
//     two directed links with the same declared weight.
//   - Keys() and Successors() preserve insertion order, which is what makes
//     FIFO (BFS) and LIFO (DFS) traversals reproducible.
//   - A single sync.RWMutex protects the structure.
//
// Core Methods:
//
//	// Node lifecycle
//	AddNode(key) *Node                           // O(1), idempotent
//	HasNode(key) bool                            // O(1)
//	Node(key) (*Node, bool)                      // O(1)
//	RemoveNode(key) bool                         // O(V+E)
//
//	// Edge lifecycle
//	AddEdge(k1, k2, directed, cost1, cost2, opts...) // O(1), idempotent, auto-creates endpoints
//	RemoveEdge(k1, k2) bool                      // removes whichever direction(s) exist
//	HasEdge(from, to) bool                       // O(1)
//	Weight(from, to) (float64, bool)             // declared weight, DefaultWeight if unset
//
//	// Query
//	Successors(key) []K                          // insertion order
//	Keys() []K                                   // insertion order
//	Len() int, EdgeCount() int
//
// Reads of missing keys never fail: HasNode is false, Successors is nil,
// ExtraCost is zero. Writes that reference missing keys create them.
//
// Point is the conventional key for grid worlds; it implements Locator so
// distance heuristics can place it in the plane.
package core
