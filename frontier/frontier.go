// Package frontier provides the pending-set variants used by the search
// engine: a LIFO stack (depth-first), a FIFO queue (breadth-first) and a
// min-priority queue (Dijkstra, A*).
//
// All variants share one contract. A key is held at most once: Add of a key
// already present is a no-op that reports false. Peek returns the canonical
// next choice without removing it; Take removes and returns it.
//
// Complexity (n = |frontier|):
//
//   - Stack/Queue: Add, Contains, Peek, Take O(1) amortized.
//   - Priority:    Add, Take, Update O(log n); Contains, Peek O(1).
package frontier

// Kind names a frontier variant.
type Kind int

const (
	// KindStack is last-in, first-out.
	KindStack Kind = iota
	// KindQueue is first-in, first-out.
	KindQueue
	// KindPriority pops the minimum score, ties by insertion order.
	KindPriority
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindStack:
		return "stack"
	case KindQueue:
		return "queue"
	case KindPriority:
		return "priority"
	default:
		return "unknown"
	}
}

// Frontier is an ordered set of discovered-but-unexpanded keys.
type Frontier[K comparable] interface {
	// Add inserts k; reports false when k is already present.
	Add(k K) bool
	// Contains reports whether k is pending.
	Contains(k K) bool
	// Peek returns the next key Take would return.
	Peek() (K, bool)
	// Take removes and returns the next key in traversal order.
	Take() (K, bool)
	// IsEmpty reports whether no key is pending.
	IsEmpty() bool
	// Len returns the number of pending keys.
	Len() int
	// Keys returns the pending keys in the order Take would yield them.
	Keys() []K
	// Kind reports the ordering policy.
	Kind() Kind
}

// Updater is implemented by frontiers whose order depends on a mutable score.
// Update re-reads the score of k after a decrease-key and reports whether k
// was pending.
type Updater[K comparable] interface {
	Update(k K) bool
}
