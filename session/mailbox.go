package session

import "sync"

// Message is a background world event handed to the control loop.
type Message struct {
	Topic   string
	Payload any
}

// Mailbox is a thread-safe FIFO of messages. Any goroutine may Post; only
// the control loop drains it.
type Mailbox struct {
	mu    sync.Mutex
	queue []Message
}

// NewMailbox returns an empty mailbox.
func NewMailbox() *Mailbox { return &Mailbox{} }

// Post enqueues m.
func (b *Mailbox) Post(m Message) {
	b.mu.Lock()
	b.queue = append(b.queue, m)
	b.mu.Unlock()
}

// Len returns the number of pending messages.
func (b *Mailbox) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.queue)
}

// Drain removes and returns every pending message in posting order.
func (b *Mailbox) Drain() []Message {
	b.mu.Lock()
	out := b.queue
	b.queue = nil
	b.mu.Unlock()

	return out
}
