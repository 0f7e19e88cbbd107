// File: methods_edges.go
// Role: Edge lifecycle & adjacency queries.
//
// Determinism:
//   - Successors() preserves link insertion order.
//
// Concurrency:
//   - Same single RWMutex as the node catalog.
package core

// AddEdge links key1 and key2, creating missing endpoints.
//
// Implementation:
//   - Stage 1: Resolve options (weight defaults to DefaultWeight).
//   - Stage 2: Ensure both endpoints exist; refresh their extra costs
//     (cost1 on key1, cost2 on key2).
//   - Stage 3: Add key1→key2, and key2→key1 unless directed.
//
// Behavior highlights:
//   - Idempotent on structure: an existing link is never duplicated, only its
//     weight is refreshed.
//   - Writing to missing keys creates them; this is a documented side effect.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[K]) AddEdge(key1, key2 K, directed bool, cost1, cost2 float64, opts ...EdgeOption) {
	spec := EdgeSpec{Weight: DefaultWeight}
	for _, opt := range opts {
		opt(&spec)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	n1 := g.ensureNode(key1)
	n2 := g.ensureNode(key2)
	n1.ExtraCost = cost1
	n2.ExtraCost = cost2

	if g.link(n1, key2, spec.Weight) {
		g.links++
	}
	if !directed && key1 != key2 {
		if g.link(n2, key1, spec.Weight) {
			g.links++
		}
	}
}

// RemoveEdge removes the link(s) between key1 and key2 in whichever
// direction(s) exist. Returns true if at least one link was removed.
// Complexity: O(d(key1) + d(key2)).
func (g *Graph[K]) RemoveEdge(key1, key2 K) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	removed := false
	if n, ok := g.nodes[key1]; ok && g.unlink(n, key2) {
		g.links--
		removed = true
	}
	if n, ok := g.nodes[key2]; ok && key1 != key2 && g.unlink(n, key1) {
		g.links--
		removed = true
	}

	return removed
}

// HasEdge reports whether the directed link from→to exists.
// Complexity: O(1).
func (g *Graph[K]) HasEdge(from, to K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[from]
	if !ok {
		return false
	}
	_, ok = n.weights[to]

	return ok
}

// Weight returns the declared weight of from→to.
// Complexity: O(1).
func (g *Graph[K]) Weight(from, to K) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[from]
	if !ok {
		return 0, false
	}
	w, ok := n.weights[to]

	return w, ok
}

// Successors returns the successor keys of key in link insertion order,
// or nil for an unknown key.
// Complexity: O(d).
func (g *Graph[K]) Successors(key K) []K {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[key]
	if !ok {
		return nil
	}

	return n.Successors()
}

// EdgeCount returns the number of directed links; an undirected edge counts twice.
func (g *Graph[K]) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.links
}

// link adds or refreshes n→to. Reports whether a new link was created.
// Must be called under the write lock.
func (g *Graph[K]) link(n *Node[K], to K, w float64) bool {
	_, exists := n.weights[to]
	n.weights[to] = w
	if exists {
		return false
	}
	n.successors = append(n.successors, to)

	return true
}

// unlink removes n→to. Reports whether a link existed.
// Must be called under the write lock.
func (g *Graph[K]) unlink(n *Node[K], to K) bool {
	if _, ok := n.weights[to]; !ok {
		return false
	}
	delete(n.weights, to)
	for i, k := range n.successors {
		if k == to {
			n.successors = append(n.successors[:i], n.successors[i+1:]...)
			break
		}
	}

	return true
}
