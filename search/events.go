package search

import (
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// EventKind names a state transition reported to subscribers.
type EventKind int

const (
	EventStarted EventKind = iota
	EventExpanded
	EventDiscovered
	EventRelaxed
	EventSucceeded
	EventFailed
	EventPaused
	EventResumed
	EventReset
)

// String implements fmt.Stringer.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventExpanded:
		return "expanded"
	case EventDiscovered:
		return "discovered"
	case EventRelaxed:
		return "relaxed"
	case EventSucceeded:
		return "succeeded"
	case EventFailed:
		return "failed"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is a typed record emitted on every state transition.
// RunID lets consumers drop records of a run that was restarted.
type Event[K comparable] struct {
	RunID  uuid.UUID
	Kind   EventKind
	Key    K // node concerned; zero for lifecycle events
	Step   int
	Status Status
}

// Listener receives events synchronously on the control goroutine.
type Listener[K comparable] func(Event[K])

type subscription[K comparable] struct {
	id int
	fn Listener[K]
}

// Subscribe registers fn and returns a function that removes it.
// Listeners are invoked in registration order and must not call back into
// mutating Ticker methods.
func (t *Ticker[K]) Subscribe(fn Listener[K]) (cancel func()) {
	t.nextSub++
	id := t.nextSub
	t.subs = append(t.subs, subscription[K]{id: id, fn: fn})

	return func() {
		// lo.Reject builds a new slice; emit may be ranging over the old one
		t.subs = lo.Reject(t.subs, func(s subscription[K], _ int) bool { return s.id == id })
	}
}

func (t *Ticker[K]) emit(kind EventKind, key K) {
	if len(t.subs) == 0 {
		return
	}
	ev := Event[K]{Kind: kind, Key: key}
	if t.st != nil {
		ev.RunID = t.st.runID
		ev.Step = t.st.steps
		ev.Status = t.st.status
	}
	for _, s := range t.subs {
		s.fn(ev)
	}
}
