package session

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/samber/lo"

	"github.com/katalvlaran/stepsearch/practice"
	"github.com/katalvlaran/stepsearch/search"
)

// Handler consumes world messages on the control goroutine.
type Handler func(Message)

type options struct {
	log      *slog.Logger
	mailbox  *Mailbox
	practice []practice.Option
}

// Option configures a Session.
type Option func(*options)

// WithLogger routes session logs to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithMailbox shares an existing mailbox with background producers.
func WithMailbox(m *Mailbox) Option {
	return func(o *options) {
		if m != nil {
			o.mailbox = m
		}
	}
}

// WithPractice passes options to the session's tutor.
func WithPractice(opts ...practice.Option) Option {
	return func(o *options) { o.practice = append(o.practice, opts...) }
}

// Session is the single control loop around one ticker and its tutor.
//
// Submit and the mailbox may be used from any goroutine. Everything else,
// Tick included, belongs to the control goroutine: commands queue until the
// next Tick and are applied there in submission order, so the search state
// only ever changes at tick boundaries.
type Session[K comparable] struct {
	mu    sync.Mutex
	inbox []Command[K]

	tk       *search.Ticker[K]
	tutor    *practice.Tutor[K]
	params   *search.Params[K]
	mailbox  *Mailbox
	handlers map[string][]Handler
	events   []search.Event[K]
	log      *slog.Logger
}

// New builds a session over tk. params is the template used by OpStart and
// OpPractice; OpSetAlgorithm updates it.
func New[K comparable](tk *search.Ticker[K], params *search.Params[K], opts ...Option) (*Session[K], error) {
	if tk == nil {
		return nil, ErrNilTicker
	}
	if params == nil {
		return nil, ErrNilParams
	}
	o := options{
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		mailbox: NewMailbox(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	tutor, err := practice.New(tk, append([]practice.Option{practice.WithLogger(o.log)}, o.practice...)...)
	if err != nil {
		return nil, err
	}

	s := &Session[K]{
		tk:       tk,
		tutor:    tutor,
		params:   params.Clone(),
		mailbox:  o.mailbox,
		handlers: make(map[string][]Handler),
		log:      o.log,
	}
	tk.Subscribe(func(ev search.Event[K]) { s.events = append(s.events, ev) })

	return s, nil
}

// Submit queues cmd for the next Tick. Safe for concurrent use.
func (s *Session[K]) Submit(cmd Command[K]) {
	s.mu.Lock()
	s.inbox = append(s.inbox, cmd)
	s.mu.Unlock()
}

// Pending returns the number of queued commands. Safe for concurrent use.
func (s *Session[K]) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.inbox)
}

// Mailbox returns the world message queue.
func (s *Session[K]) Mailbox() *Mailbox { return s.mailbox }

// Handle registers fn for messages posted under topic.
func (s *Session[K]) Handle(topic string, fn Handler) {
	s.handlers[topic] = append(s.handlers[topic], fn)
}

// Ticker returns the controlled ticker for read-only queries.
func (s *Session[K]) Ticker() *search.Ticker[K] { return s.tk }

// Tutor returns the practice tutor.
func (s *Session[K]) Tutor() *practice.Tutor[K] { return s.tutor }

// Tick is called once per frame with the time since the previous frame.
// It applies queued commands, dispatches world messages, advances the step
// clock and returns what happened. Events of runs replaced during the tick
// are dropped.
func (s *Session[K]) Tick(elapsed time.Duration) Report[K] {
	s.mu.Lock()
	cmds := s.inbox
	s.inbox = nil
	s.mu.Unlock()

	var rep Report[K]
	for _, cmd := range cmds {
		out := s.apply(cmd)
		if out.Err != nil {
			s.log.Debug("command failed", slog.String("op", cmd.Op.String()), slog.Any("err", out.Err))
		}
		rep.Outcomes = append(rep.Outcomes, out)
	}

	for _, m := range s.mailbox.Drain() {
		for _, h := range s.handlers[m.Topic] {
			h(m)
		}
		rep.Messages++
	}

	rep.Stepped, rep.StepErr = s.tk.Advance(elapsed)

	run := s.tk.RunID()
	rep.Events = lo.Filter(s.events, func(ev search.Event[K], _ int) bool { return ev.RunID == run })
	s.events = nil
	rep.Status = s.tk.State()

	return rep
}

func (s *Session[K]) apply(cmd Command[K]) Outcome[K] {
	out := Outcome[K]{Command: cmd}
	switch cmd.Op {
	case OpStart:
		out.Err = s.tk.Start(cmd.Origin, cmd.Goal, s.params)
	case OpPractice:
		out.Err = s.tutor.Begin(cmd.Origin, cmd.Goal, s.params)
	case OpRestart:
		out.Err = s.tk.Restart()
	case OpStep:
		if !s.tk.Started() {
			out.Err = search.ErrNotStarted
			break
		}
		_, out.Err = s.tk.Step()
	case OpPause:
		s.tk.Pause()
	case OpResume:
		s.tk.Resume()
	case OpReset:
		s.tk.Reset()
	case OpSetInterval:
		s.tk.SetStepInterval(cmd.Interval)
	case OpSetAlgorithm:
		if out.Err = s.params.SetAlgorithm(cmd.Algorithm); out.Err != nil {
			break
		}
		// an exercise restarts as an exercise, paused with fresh hints
		if s.tutor.Active() {
			origin, goal, _ := s.tk.Endpoints()
			out.Err = s.tutor.Begin(origin, goal, s.params)
			break
		}
		out.Err = s.tk.SetAlgorithm(cmd.Algorithm)
	case OpPropose:
		out.Feedback, out.Err = s.tutor.Propose(cmd.Key)
	default:
		out.Err = fmt.Errorf("%w: %d", ErrUnknownOp, int(cmd.Op))
	}

	return out
}
