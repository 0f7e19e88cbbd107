package search

import (
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/frontier"
)

// Implementation:
//   - Stage 1: BeginExpansion takes the canonical next key. The goal ends the
//     search; any other key becomes current and its successors already in the
//     frontier are relaxed (decrease-key).
//   - Stage 2: Discover relaxes one undiscovered successor and pushes it.
//   - Stage 3: FinishExpansion moves current to visited once no candidate is
//     left and fails the search when the frontier ran dry.
//
// Step runs the three stages back to back; practice mode drives them one
// proposal at a time so both share one code path.

// PeekNext returns the canonical next key to expand without removing it.
// ok is false when no search is loaded, it is terminal, or an expansion is
// already in progress.
func (t *Ticker[K]) PeekNext() (key K, ok bool) {
	st := t.st
	if st == nil || st.status.Terminal() || st.expanding {
		return key, false
	}

	return st.frontier.Peek()
}

// Expanding reports whether BeginExpansion was called without a matching
// FinishExpansion.
func (t *Ticker[K]) Expanding() bool { return t.st != nil && t.st.expanding }

// Current returns the key of the latest expansion.
func (t *Ticker[K]) Current() (key K, ok bool) {
	if t.st == nil || !t.st.has {
		return key, false
	}

	return t.st.current, true
}

// BeginExpansion takes the next key from the frontier and makes it current.
// done reports that the search ended: the goal was taken (success) or the
// frontier was empty (failure).
func (t *Ticker[K]) BeginExpansion() (key K, done bool, err error) {
	if err = t.checkActive(); err != nil {
		return key, false, err
	}
	st := t.st
	if st.expanding {
		return key, false, ErrExpansionInProgress
	}

	n, ok := st.frontier.Take()
	if !ok {
		t.fail()
		return key, true, nil
	}
	st.steps++
	st.current, st.has = n, true
	st.newly = make(map[K]struct{})
	st.newlyList = nil

	if n == st.goal {
		return n, true, t.succeed()
	}

	st.expanding = true
	t.log.Debug("expand", slog.Any("key", n), slog.Int("step", st.steps))
	t.emit(EventExpanded, n)

	for _, s := range t.graph.Successors(n) {
		if s == n || !st.frontier.Contains(s) {
			continue
		}
		if !t.relax(n, s) {
			continue
		}
		if u, ok := st.frontier.(frontier.Updater[K]); ok {
			u.Update(s)
		}
		t.emit(EventRelaxed, s)
	}

	return n, false, nil
}

// Candidates lists the successors of the node being expanded that are in
// neither the frontier nor the visited set, in the order Step would push
// them. Nil when no expansion is in progress.
func (t *Ticker[K]) Candidates() []K {
	st := t.st
	if st == nil || !st.expanding {
		return nil
	}
	cands := lo.Filter(t.graph.Successors(st.current), func(s K, _ int) bool {
		return s != st.current && !st.isVisited(s) && !st.frontier.Contains(s)
	})
	if st.frontier.Kind() == frontier.KindStack {
		// pushed in reverse so the first declared successor pops first
		cands = lo.Reverse(cands)
	}

	return cands
}

// Discover relaxes key through the current node and pushes it to the
// frontier. key must be one of Candidates.
func (t *Ticker[K]) Discover(key K) error {
	if err := t.checkActive(); err != nil {
		return err
	}
	if !t.st.expanding {
		return ErrNoExpansion
	}
	if !lo.Contains(t.Candidates(), key) {
		return fmt.Errorf("%w: %v", ErrNotCandidate, key)
	}
	t.discover(key)

	return nil
}

// FinishExpansion moves the current node to visited. It refuses while
// candidates remain. An empty frontier afterwards fails the search.
func (t *Ticker[K]) FinishExpansion() error {
	if err := t.checkActive(); err != nil {
		return err
	}
	st := t.st
	if !st.expanding {
		return ErrNoExpansion
	}
	if rest := t.Candidates(); len(rest) > 0 {
		return fmt.Errorf("%w: %d left", ErrCandidatesPending, len(rest))
	}

	st.expanding = false
	st.visited[st.current] = struct{}{}
	st.order = append(st.order, st.current)
	if st.frontier.IsEmpty() {
		t.fail()
	}

	return nil
}

// PathCost sums the traversal cost along the final path; 0 before success.
func (t *Ticker[K]) PathCost() float64 {
	if t.st == nil || t.st.path == nil {
		return 0
	}

	return PathCost(t.st.path, t.distance)
}

func (t *Ticker[K]) checkActive() error {
	if t.st == nil {
		return ErrNotStarted
	}
	if t.st.status.Terminal() {
		return ErrSearchComplete
	}

	return nil
}

func (t *Ticker[K]) discover(s K) {
	st := t.st
	t.relax(st.current, s)
	st.frontier.Add(s)
	st.newly[s] = struct{}{}
	st.newlyList = append(st.newlyList, s)
	t.emit(EventDiscovered, s)
}

// relax applies g[s] = g[n] + d(n,s) [- extraCost(s)] when s is new or the
// candidate is strictly cheaper. Reports whether g[s] changed.
func (t *Ticker[K]) relax(n, s K) bool {
	st := t.st
	cand := st.g[n] + t.distance(n, s)
	if st.params.extraCostIncentive {
		cand -= t.graph.ExtraCost(s)
	}
	if old, seen := st.g[s]; seen && cand >= old {
		return false
	}
	st.pred[s] = n
	st.g[s] = cand
	st.f[s] = cand + st.params.heuristic(s, st.goal)
	t.graph.SetScore(s, st.f[s])

	return true
}

func (t *Ticker[K]) distance(from, to K) float64 {
	if d := t.st.params.distance; d != nil {
		return d(from, to)
	}
	if w, ok := t.graph.Weight(from, to); ok {
		return w
	}

	return core.DefaultWeight
}

func (t *Ticker[K]) succeed() error {
	st := t.st
	path, err := ReconstructPath(st.pred, st.origin, st.goal, len(st.visited)+1)
	if err != nil {
		t.fail()
		return err
	}
	st.path = path
	st.pathSet = make(map[K]struct{}, len(path))
	for _, k := range path {
		st.pathSet[k] = struct{}{}
	}
	st.status = StatusSucceeded
	t.log.Debug("search succeeded",
		slog.String("run", st.runID.String()),
		slog.Int("steps", st.steps),
		slog.Int("hops", len(path)-1),
		slog.Float64("cost", st.g[st.goal]))
	t.emit(EventSucceeded, st.goal)

	return nil
}

func (t *Ticker[K]) fail() {
	st := t.st
	st.status = StatusFailed
	st.expanding = false
	t.log.Debug("search exhausted",
		slog.String("run", st.runID.String()),
		slog.Int("steps", st.steps),
		slog.Int("visited", len(st.visited)))
	var zero K
	t.emit(EventFailed, zero)
}
