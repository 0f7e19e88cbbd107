// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - Keys() returns keys in first-insertion order.
//
// Concurrency:
//   - Mutators take the write lock, queries the read lock.
package core

// AddNode inserts a node if missing and returns it (idempotent).
//
// Implementation:
//   - Stage 1: Under the write lock, look the key up.
//   - Stage 2: If missing, allocate the Node and append the key to order.
//
// Behavior highlights:
//   - Re-adding an existing key returns the live node unchanged.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph[K]) AddNode(key K) *Node[K] {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.ensureNode(key)
}

// HasNode reports whether key exists.
// Complexity: O(1).
func (g *Graph[K]) HasNode(key K) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[key]

	return ok
}

// Node returns the live node stored under key.
//
// The returned pointer is shared with the graph; only Score and ExtraCost may
// be written by callers, and only from the goroutine that owns the search.
// Complexity: O(1).
func (g *Graph[K]) Node(key K) (*Node[K], bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	n, ok := g.nodes[key]

	return n, ok
}

// RemoveNode deletes key and every link pointing at it.
// Returns false when key is absent.
//
// Implementation:
//   - Stage 1: Under the write lock, verify presence.
//   - Stage 2: Drop incoming links from every other node.
//   - Stage 3: Drop the node, its outgoing links and its order slot.
//
// Complexity:
//   - Time O(V + E), Space O(1) extra.
func (g *Graph[K]) RemoveNode(key K) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	n, ok := g.nodes[key]
	if !ok {
		return false
	}
	for _, other := range g.nodes {
		if other.Key == key {
			continue
		}
		if g.unlink(other, key) {
			g.links--
		}
	}
	g.links -= len(n.successors)
	delete(g.nodes, key)
	for i, k := range g.order {
		if k == key {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}

	return true
}

// Keys returns all node keys in first-insertion order.
// Complexity: O(V).
func (g *Graph[K]) Keys() []K {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]K, len(g.order))
	copy(out, g.order)

	return out
}

// Len returns the number of nodes.
func (g *Graph[K]) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// ExtraCost returns the extra cost of key (0 for unknown keys).
func (g *Graph[K]) ExtraCost(key K) float64 {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if n, ok := g.nodes[key]; ok {
		return n.ExtraCost
	}

	return 0
}

// SetExtraCost refreshes the extra cost of key, creating the node if needed.
func (g *Graph[K]) SetExtraCost(key K, cost float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.ensureNode(key).ExtraCost = cost
}

// SetScore caches an evaluation score on key. Unknown keys are ignored.
func (g *Graph[K]) SetScore(key K, score float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if n, ok := g.nodes[key]; ok {
		n.Score = score
	}
}

// ensureNode returns the node for key, allocating it when missing.
// Must be called under the write lock.
func (g *Graph[K]) ensureNode(key K) *Node[K] {
	if n, ok := g.nodes[key]; ok {
		return n
	}
	n := &Node[K]{Key: key, weights: make(map[K]float64)}
	g.nodes[key] = n
	g.order = append(g.order, key)

	return n
}
