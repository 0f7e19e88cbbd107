package frontier

import (
	"container/heap"
	"sort"
)

// ScoreFunc evaluates the priority of a key; lower pops first.
type ScoreFunc[K comparable] func(k K) float64

// item pairs a key with its cached score, insertion sequence and heap index.
type item[K comparable] struct {
	key   K
	score float64
	seq   uint64
	index int
}

// itemHeap implements heap.Interface ordered by (score, seq).
type itemHeap[K comparable] []*item[K]

func (h itemHeap[K]) Len() int { return len(h) }

func (h itemHeap[K]) Less(i, j int) bool {
	if h[i].score != h[j].score {
		return h[i].score < h[j].score
	}

	return h[i].seq < h[j].seq
}

func (h itemHeap[K]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *itemHeap[K]) Push(x any) {
	it := x.(*item[K])
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *itemHeap[K]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]

	return it
}

// Priority is a min-priority frontier. Equal scores pop in insertion order,
// which keeps Dijkstra and A* runs reproducible.
type Priority[K comparable] struct {
	score ScoreFunc[K]
	heap  itemHeap[K]
	items map[K]*item[K]
	next  uint64
}

// NewPriority returns an empty Priority ordered by score.
// The score of a key is read on Add and on Update only.
func NewPriority[K comparable](score ScoreFunc[K]) *Priority[K] {
	return &Priority[K]{
		score: score,
		items: make(map[K]*item[K]),
	}
}

// Add inserts k with its current score.
func (p *Priority[K]) Add(k K) bool {
	if _, ok := p.items[k]; ok {
		return false
	}
	it := &item[K]{key: k, score: p.score(k), seq: p.next}
	p.next++
	p.items[k] = it
	heap.Push(&p.heap, it)

	return true
}

// Update re-reads the score of a pending key and restores heap order.
// The original insertion sequence is kept for tie-breaking.
func (p *Priority[K]) Update(k K) bool {
	it, ok := p.items[k]
	if !ok {
		return false
	}
	it.score = p.score(k)
	heap.Fix(&p.heap, it.index)

	return true
}

// Contains reports membership.
func (p *Priority[K]) Contains(k K) bool {
	_, ok := p.items[k]

	return ok
}

// Peek returns the minimum-score key.
func (p *Priority[K]) Peek() (K, bool) {
	if len(p.heap) == 0 {
		var zero K
		return zero, false
	}

	return p.heap[0].key, true
}

// Take removes and returns the minimum-score key.
func (p *Priority[K]) Take() (K, bool) {
	if len(p.heap) == 0 {
		var zero K
		return zero, false
	}
	it := heap.Pop(&p.heap).(*item[K])
	delete(p.items, it.key)

	return it.key, true
}

// IsEmpty reports whether the frontier is empty.
func (p *Priority[K]) IsEmpty() bool { return len(p.heap) == 0 }

// Len returns the number of pending keys.
func (p *Priority[K]) Len() int { return len(p.heap) }

// Keys returns pending keys in pop order.
// Complexity: O(n log n).
func (p *Priority[K]) Keys() []K {
	sorted := make(itemHeap[K], len(p.heap))
	copy(sorted, p.heap)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].score != sorted[j].score {
			return sorted[i].score < sorted[j].score
		}
		return sorted[i].seq < sorted[j].seq
	})
	out := make([]K, len(sorted))
	for i, it := range sorted {
		out[i] = it.key
	}

	return out
}

// Kind returns KindPriority.
func (p *Priority[K]) Kind() Kind { return KindPriority }
