package frontier

// linear backs both Stack and Queue: a slice plus a membership set.
// Queue pops from head, Stack from the tail.
type linear[K comparable] struct {
	items   []K
	head    int
	members map[K]struct{}
}

func newLinear[K comparable]() linear[K] {
	return linear[K]{members: make(map[K]struct{})}
}

func (l *linear[K]) add(k K) bool {
	if _, ok := l.members[k]; ok {
		return false
	}
	l.members[k] = struct{}{}
	l.items = append(l.items, k)

	return true
}

func (l *linear[K]) contains(k K) bool {
	_, ok := l.members[k]

	return ok
}

func (l *linear[K]) len() int { return len(l.items) - l.head }

// compact drops the consumed prefix once it dominates the backing array.
func (l *linear[K]) compact() {
	if l.head > 32 && l.head*2 > len(l.items) {
		n := copy(l.items, l.items[l.head:])
		var zero K
		for i := n; i < len(l.items); i++ {
			l.items[i] = zero
		}
		l.items = l.items[:n]
		l.head = 0
	}
}

// Stack is the LIFO frontier used by depth-first search.
type Stack[K comparable] struct {
	linear[K]
}

// NewStack returns an empty Stack.
func NewStack[K comparable]() *Stack[K] {
	return &Stack[K]{linear: newLinear[K]()}
}

// Add pushes k on top.
func (s *Stack[K]) Add(k K) bool { return s.add(k) }

// Contains reports membership.
func (s *Stack[K]) Contains(k K) bool { return s.contains(k) }

// Peek returns the most recently added key.
func (s *Stack[K]) Peek() (K, bool) {
	if s.len() == 0 {
		var zero K
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

// Take pops the most recently added key.
func (s *Stack[K]) Take() (K, bool) {
	k, ok := s.Peek()
	if !ok {
		return k, false
	}
	var zero K
	s.items[len(s.items)-1] = zero
	s.items = s.items[:len(s.items)-1]
	delete(s.members, k)

	return k, true
}

// IsEmpty reports whether the stack is empty.
func (s *Stack[K]) IsEmpty() bool { return s.len() == 0 }

// Len returns the number of pending keys.
func (s *Stack[K]) Len() int { return s.len() }

// Keys returns keys top first.
func (s *Stack[K]) Keys() []K {
	out := make([]K, 0, s.len())
	for i := len(s.items) - 1; i >= s.head; i-- {
		out = append(out, s.items[i])
	}

	return out
}

// Kind returns KindStack.
func (s *Stack[K]) Kind() Kind { return KindStack }

// Queue is the FIFO frontier used by breadth-first search.
type Queue[K comparable] struct {
	linear[K]
}

// NewQueue returns an empty Queue.
func NewQueue[K comparable]() *Queue[K] {
	return &Queue[K]{linear: newLinear[K]()}
}

// Add enqueues k at the back.
func (q *Queue[K]) Add(k K) bool { return q.add(k) }

// Contains reports membership.
func (q *Queue[K]) Contains(k K) bool { return q.contains(k) }

// Peek returns the earliest added key.
func (q *Queue[K]) Peek() (K, bool) {
	if q.len() == 0 {
		var zero K
		return zero, false
	}

	return q.items[q.head], true
}

// Take dequeues the earliest added key.
func (q *Queue[K]) Take() (K, bool) {
	k, ok := q.Peek()
	if !ok {
		return k, false
	}
	var zero K
	q.items[q.head] = zero
	q.head++
	delete(q.members, k)
	q.compact()

	return k, true
}

// IsEmpty reports whether the queue is empty.
func (q *Queue[K]) IsEmpty() bool { return q.len() == 0 }

// Len returns the number of pending keys.
func (q *Queue[K]) Len() int { return q.len() }

// Keys returns keys front first.
func (q *Queue[K]) Keys() []K {
	out := make([]K, q.len())
	copy(out, q.items[q.head:])

	return out
}

// Kind returns KindQueue.
func (q *Queue[K]) Kind() Kind { return KindQueue }
