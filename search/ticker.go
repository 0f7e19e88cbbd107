package search

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/stepsearch/core"
)

// Ticker owns one live search over a graph and advances it one expansion
// per Step. It is not safe for concurrent use: every call must come from the
// single control goroutine (see package session).
type Ticker[K comparable] struct {
	graph *core.Graph[K]
	st    *state[K]

	interval    time.Duration
	minInterval time.Duration
	maxInterval time.Duration
	elapsed     time.Duration

	log     *slog.Logger
	subs    []subscription[K]
	nextSub int
}

// NewTicker builds a Ticker over g.
// Returns ErrGraphNil for a nil graph and ErrOptionViolation for bad options.
func NewTicker[K comparable](g *core.Graph[K], opts ...Option) (*Ticker[K], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	t := &Ticker[K]{
		graph:       g,
		minInterval: o.MinInterval,
		maxInterval: o.MaxInterval,
		log:         o.Logger,
	}
	t.interval = t.clamp(o.StepInterval)

	return t, nil
}

// Graph returns the searched graph.
func (t *Ticker[K]) Graph() *core.Graph[K] { return t.graph }

// Start loads a fresh search from origin to goal and sets it Running.
//
// Unknown endpoints are rejected with ErrNodeNotFound and leave any current
// search untouched. params is cloned, so later changes by the caller do not
// leak into the run.
func (t *Ticker[K]) Start(origin, goal K, params *Params[K]) error {
	if params == nil {
		return ErrNilParams
	}
	if !t.graph.HasNode(origin) {
		return fmt.Errorf("%w: origin %v", ErrNodeNotFound, origin)
	}
	if !t.graph.HasNode(goal) {
		return fmt.Errorf("%w: goal %v", ErrNodeNotFound, goal)
	}

	st := newState(origin, goal, params.Clone())
	st.g[origin] = 0
	st.f[origin] = st.params.heuristic(origin, goal)
	st.frontier.Add(origin)
	t.graph.SetScore(origin, st.f[origin])

	t.st = st
	t.elapsed = 0
	t.log.Debug("search started",
		slog.String("run", st.runID.String()),
		slog.String("algorithm", st.params.algorithm.String()),
		slog.Any("origin", origin),
		slog.Any("goal", goal))
	var zero K
	t.emit(EventStarted, zero)

	return nil
}

// Restart reruns the current search from scratch with the same endpoints
// and params. Returns ErrNotStarted when nothing was started.
func (t *Ticker[K]) Restart() error {
	if t.st == nil {
		return ErrNotStarted
	}

	return t.Start(t.st.origin, t.st.goal, t.st.params)
}

// SetAlgorithm validates alg and, if a search is loaded, replaces it with a
// fresh run of alg over the same endpoints. Custom heuristic/distance
// overrides are reset to alg's defaults; the extra-cost flag is kept.
func (t *Ticker[K]) SetAlgorithm(alg Algorithm) error {
	if !alg.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	if t.st == nil {
		return nil
	}
	params := t.st.params.Clone()
	if err := params.SetAlgorithm(alg); err != nil {
		return err
	}

	return t.Start(t.st.origin, t.st.goal, params)
}

// Reset discards the search and returns to StatusReady.
func (t *Ticker[K]) Reset() {
	if t.st == nil {
		return
	}
	var zero K
	t.emit(EventReset, zero)
	t.st = nil
	t.elapsed = 0
}

// Pause holds a running search. Reports whether the status changed.
func (t *Ticker[K]) Pause() bool {
	if t.st == nil || t.st.status != StatusRunning {
		return false
	}
	t.st.status = StatusPaused
	var zero K
	t.emit(EventPaused, zero)

	return true
}

// Resume continues a paused search. Reports whether the status changed.
func (t *Ticker[K]) Resume() bool {
	if t.st == nil || t.st.status != StatusPaused {
		return false
	}
	t.st.status = StatusRunning
	t.elapsed = 0
	var zero K
	t.emit(EventResumed, zero)

	return true
}

// Step performs exactly one expansion.
//
// Step before Start is a programmer error and panics with ErrNotStarted.
// In a terminal status it returns ErrSearchComplete. Paused searches may be
// single-stepped. If a manual expansion is in progress, Step completes it by
// discovering the remaining candidates in canonical order.
//
// Complexity: O(d log n) for the expanded node's degree d.
func (t *Ticker[K]) Step() (StepResult[K], error) {
	t.mustStarted()
	st := t.st
	if st.status.Terminal() {
		return StepResult[K]{Status: st.status}, ErrSearchComplete
	}

	if !st.expanding {
		n, done, err := t.BeginExpansion()
		if err != nil || done {
			return StepResult[K]{Expanded: n, Status: st.status}, err
		}
	}
	for _, s := range t.Candidates() {
		t.discover(s)
	}
	if err := t.FinishExpansion(); err != nil {
		return StepResult[K]{Expanded: st.current, Status: st.status}, err
	}

	return StepResult[K]{
		Expanded:   st.current,
		Discovered: append([]K(nil), st.newlyList...),
		Status:     st.status,
	}, nil
}

// Run steps until the search is terminal and returns the final snapshot.
// Returns ErrNotStarted when nothing was started.
func (t *Ticker[K]) Run() (Snapshot[K], error) {
	if t.st == nil {
		return Snapshot[K]{}, ErrNotStarted
	}
	for !t.st.status.Terminal() {
		if _, err := t.Step(); err != nil {
			return t.Snapshot(), err
		}
	}

	return t.Snapshot(), nil
}

// State returns the ticker status.
func (t *Ticker[K]) State() Status {
	if t.st == nil {
		return StatusReady
	}

	return t.st.status
}

// Started reports whether a search is loaded.
func (t *Ticker[K]) Started() bool { return t.st != nil }

// RunID identifies the loaded run; uuid.Nil when none.
func (t *Ticker[K]) RunID() uuid.UUID {
	if t.st == nil {
		return uuid.Nil
	}

	return t.st.runID
}

// Params returns a copy of the loaded params, or nil.
func (t *Ticker[K]) Params() *Params[K] {
	if t.st == nil {
		return nil
	}

	return t.st.params.Clone()
}

// Endpoints returns the loaded origin and goal.
func (t *Ticker[K]) Endpoints() (origin, goal K, ok bool) {
	if t.st == nil {
		return origin, goal, false
	}

	return t.st.origin, t.st.goal, true
}

// Status classifies key for rendering. Precedence, highest first:
// path, just-expanded, new-frontier, frontier, visited.
func (t *Ticker[K]) Status(key K) NodeStatus {
	st := t.st
	if st == nil {
		return NodeNone
	}
	if _, ok := st.pathSet[key]; ok {
		return NodeOnPath
	}
	if st.has && st.current == key {
		return NodeJustExpanded
	}
	if st.frontier.Contains(key) {
		if _, ok := st.newly[key]; ok {
			return NodeNewFrontier
		}
		return NodeFrontier
	}
	if st.isVisited(key) {
		return NodeVisited
	}

	return NodeNone
}

// Scores returns g, h and f of a discovered key.
func (t *Ticker[K]) Scores(key K) (Scores, bool) {
	st := t.st
	if st == nil {
		return Scores{}, false
	}
	g, ok := st.g[key]
	if !ok {
		return Scores{}, false
	}

	return Scores{G: g, H: st.params.heuristic(key, st.goal), F: st.f[key]}, true
}

// InFrontier reports whether key is pending.
func (t *Ticker[K]) InFrontier(key K) bool {
	return t.st != nil && t.st.frontier.Contains(key)
}

// Visited reports whether key has been expanded.
func (t *Ticker[K]) Visited(key K) bool {
	return t.st != nil && t.st.isVisited(key)
}

// Path returns a copy of the final path, nil until success.
func (t *Ticker[K]) Path() []K {
	if t.st == nil || t.st.path == nil {
		return nil
	}

	return append([]K(nil), t.st.path...)
}

// Cost returns the g-score of the goal once the search succeeded.
func (t *Ticker[K]) Cost() (float64, bool) {
	if t.st == nil || t.st.status != StatusSucceeded {
		return 0, false
	}

	return t.st.g[t.st.goal], true
}

// Snapshot copies the observable state.
func (t *Ticker[K]) Snapshot() Snapshot[K] {
	st := t.st
	if st == nil {
		return Snapshot[K]{Status: StatusReady}
	}
	snap := Snapshot[K]{
		RunID:      st.runID,
		Status:     st.status,
		Algorithm:  st.params.algorithm,
		Origin:     st.origin,
		Goal:       st.goal,
		Steps:      st.steps,
		Current:    st.current,
		HasCurrent: st.has,
		Frontier:   st.frontier.Keys(),
		Visited:    append([]K(nil), st.order...),
		Discovered: append([]K(nil), st.newlyList...),
		Path:       t.Path(),
	}
	if st.status == StatusSucceeded {
		snap.Cost = st.g[st.goal]
	}

	return snap
}

func (t *Ticker[K]) mustStarted() {
	if t.st == nil {
		panic(ErrNotStarted)
	}
}
