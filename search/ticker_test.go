package search_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/search"
)

// diamond builds the undirected unit graph A–B, A–C, B–D, C–D.
func diamond() *core.Graph[string] {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", false, 0, 0)
	g.AddEdge("A", "C", false, 0, 0)
	g.AddEdge("B", "D", false, 0, 0)
	g.AddEdge("C", "D", false, 0, 0)

	return g
}

func params(t *testing.T, alg search.Algorithm) *search.Params[string] {
	t.Helper()
	p, err := search.NewParams[string](alg)
	require.NoError(t, err)

	return p
}

func started(t *testing.T, g *core.Graph[string], alg search.Algorithm, origin, goal string) *search.Ticker[string] {
	t.Helper()
	tk, err := search.NewTicker(g)
	require.NoError(t, err)
	require.NoError(t, tk.Start(origin, goal, params(t, alg)))

	return tk
}

func TestBFS_DiamondScenario(t *testing.T) {
	tk := started(t, diamond(), search.BreadthFirst, "A", "D")

	res, err := tk.Step()
	require.NoError(t, err)
	assert.Equal(t, "A", res.Expanded)
	assert.Equal(t, []string{"B", "C"}, res.Discovered)
	snap := tk.Snapshot()
	assert.Equal(t, []string{"B", "C"}, snap.Frontier)
	assert.Equal(t, []string{"A"}, snap.Visited)

	res, err = tk.Step()
	require.NoError(t, err)
	assert.Equal(t, "B", res.Expanded)
	assert.Equal(t, []string{"D"}, res.Discovered)

	snap, err = tk.Run()
	require.NoError(t, err)
	assert.Equal(t, search.StatusSucceeded, snap.Status)
	assert.Equal(t, []string{"A", "B", "D"}, snap.Path)
	assert.Equal(t, 2.0, snap.Cost)
	assert.Equal(t, 2.0, tk.PathCost())
}

func TestDFS_FollowsInsertionOrder(t *testing.T) {
	tk := started(t, diamond(), search.DepthFirst, "A", "D")

	_, err := tk.Step()
	require.NoError(t, err)
	next, ok := tk.PeekNext()
	require.True(t, ok)
	assert.Equal(t, "B", next, "B pops before C")
	assert.Equal(t, []string{"B", "C"}, tk.Snapshot().Frontier)

	res, err := tk.Step()
	require.NoError(t, err)
	assert.Equal(t, "B", res.Expanded)
	next, _ = tk.PeekNext()
	assert.Equal(t, "D", next, "B's successors come before backtracking to C")

	snap, err := tk.Run()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D"}, snap.Path)
	assert.Equal(t, []string{"C"}, snap.Frontier)
}

func TestVisitedAndFrontierAreDisjoint(t *testing.T) {
	for _, alg := range search.Algorithms {
		g := uniformGrid(6, 6, nil)
		tk, err := search.NewTicker(g)
		require.NoError(t, err)
		p, err := search.NewParams[core.Point](alg)
		require.NoError(t, err)
		require.NoError(t, tk.Start(core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 5}, p))

		for !tk.State().Terminal() {
			_, err := tk.Step()
			require.NoError(t, err)
			snap := tk.Snapshot()
			seen := make(map[core.Point]bool, len(snap.Visited))
			for _, k := range snap.Visited {
				seen[k] = true
			}
			for _, k := range snap.Frontier {
				require.False(t, seen[k], "%s: %v both visited and pending", alg, k)
			}
		}
		require.Equal(t, search.StatusSucceeded, tk.State(), alg.String())
	}
}

func TestPathEdgesExist(t *testing.T) {
	g := uniformGrid(5, 4, map[core.Point]bool{{X: 2, Y: 0}: true, {X: 2, Y: 1}: true, {X: 2, Y: 2}: true})
	for _, alg := range search.Algorithms {
		tk, err := search.NewTicker(g)
		require.NoError(t, err)
		p, err := search.NewParams[core.Point](alg)
		require.NoError(t, err)
		origin, goal := core.Point{X: 0, Y: 0}, core.Point{X: 4, Y: 0}
		require.NoError(t, tk.Start(origin, goal, p))
		snap, err := tk.Run()
		require.NoError(t, err)

		path := snap.Path
		require.NotEmpty(t, path)
		assert.Equal(t, origin, path[0])
		assert.Equal(t, goal, path[len(path)-1])
		for i := 1; i < len(path); i++ {
			assert.True(t, g.HasEdge(path[i-1], path[i]), "%s: %v→%v", alg, path[i-1], path[i])
		}
	}
}

func TestDecreaseKey(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", true, 0, 0)
	g.AddEdge("A", "C", true, 0, 0, core.WithWeight(5))
	g.AddEdge("B", "C", true, 0, 0)
	g.AddEdge("C", "D", true, 0, 0)

	tk := started(t, g, search.Dijkstra, "A", "D")
	var relaxed []string
	tk.Subscribe(func(ev search.Event[string]) {
		if ev.Kind == search.EventRelaxed {
			relaxed = append(relaxed, ev.Key)
		}
	})

	_, err := tk.Step()
	require.NoError(t, err)
	sc, ok := tk.Scores("C")
	require.True(t, ok)
	assert.Equal(t, 5.0, sc.G)

	_, err = tk.Step()
	require.NoError(t, err)
	sc, _ = tk.Scores("C")
	assert.Equal(t, 2.0, sc.G)
	assert.Equal(t, []string{"C"}, relaxed)

	snap, err := tk.Run()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, snap.Path)
	assert.Equal(t, 3.0, snap.Cost)
}

func TestExtraCostIncentive(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", false, 0, 0.5)

	plain := started(t, g, search.Dijkstra, "A", "B")
	_, err := plain.Step()
	require.NoError(t, err)
	sc, _ := plain.Scores("B")
	assert.Equal(t, 1.0, sc.G)

	tk, err := search.NewTicker(g)
	require.NoError(t, err)
	p, err := search.NewParams(search.Dijkstra, search.WithExtraCostIncentive[string](true))
	require.NoError(t, err)
	require.NoError(t, tk.Start("A", "B", p))
	_, err = tk.Step()
	require.NoError(t, err)
	sc, _ = tk.Scores("B")
	assert.Equal(t, 0.5, sc.G)
}

func TestCustomDistance(t *testing.T) {
	tk, err := search.NewTicker(diamond())
	require.NoError(t, err)
	p, err := search.NewParams(search.Dijkstra,
		search.WithDistance(func(from, to string) float64 {
			if from == "B" || to == "B" {
				return 10
			}
			return 1
		}))
	require.NoError(t, err)
	require.NoError(t, tk.Start("A", "D", p))
	snap, err := tk.Run()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, snap.Path)
	assert.Equal(t, 2.0, tk.PathCost())
}

func TestExhaustedFrontierFails(t *testing.T) {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", false, 0, 0)
	g.AddNode("C")

	tk := started(t, g, search.BreadthFirst, "A", "C")
	snap, err := tk.Run()
	require.NoError(t, err, "exhaustion is a status, not an error")
	assert.Equal(t, search.StatusFailed, snap.Status)
	assert.Nil(t, snap.Path)
	_, ok := tk.Cost()
	assert.False(t, ok)

	_, err = tk.Step()
	require.ErrorIs(t, err, search.ErrSearchComplete)
}

func TestOriginIsGoal(t *testing.T) {
	tk := started(t, diamond(), search.AStar, "A", "A")
	res, err := tk.Step()
	require.NoError(t, err)
	assert.True(t, res.Done())
	assert.Equal(t, []string{"A"}, tk.Path())
}

func TestNodeStatus(t *testing.T) {
	tk := started(t, diamond(), search.BreadthFirst, "A", "D")
	assert.Equal(t, search.NodeFrontier, tk.Status("A"))
	assert.Equal(t, search.NodeNone, tk.Status("B"))

	_, err := tk.Step()
	require.NoError(t, err)
	assert.Equal(t, search.NodeJustExpanded, tk.Status("A"))
	assert.Equal(t, search.NodeNewFrontier, tk.Status("B"))
	assert.Equal(t, search.NodeNewFrontier, tk.Status("C"))
	assert.Equal(t, search.NodeNone, tk.Status("D"))

	_, err = tk.Step()
	require.NoError(t, err)
	assert.Equal(t, search.NodeVisited, tk.Status("A"))
	assert.Equal(t, search.NodeFrontier, tk.Status("C"))
	assert.True(t, tk.InFrontier("C"))
	assert.True(t, tk.Visited("A"))

	_, err = tk.Run()
	require.NoError(t, err)
	for _, k := range []string{"A", "B", "D"} {
		assert.Equal(t, search.NodeOnPath, tk.Status(k), k)
	}
	assert.Equal(t, search.NodeVisited, tk.Status("C"))
}

func TestEvents(t *testing.T) {
	tk, err := search.NewTicker(diamond())
	require.NoError(t, err)
	type rec struct {
		kind search.EventKind
		key  string
	}
	var got []rec
	cancel := tk.Subscribe(func(ev search.Event[string]) {
		got = append(got, rec{ev.Kind, ev.Key})
	})
	require.NoError(t, tk.Start("A", "D", params(t, search.BreadthFirst)))
	_, err = tk.Run()
	require.NoError(t, err)

	want := []rec{
		{search.EventStarted, ""},
		{search.EventExpanded, "A"},
		{search.EventDiscovered, "B"},
		{search.EventDiscovered, "C"},
		{search.EventExpanded, "B"},
		{search.EventDiscovered, "D"},
		{search.EventExpanded, "C"},
		{search.EventSucceeded, "D"},
	}
	assert.Equal(t, want, got)

	cancel()
	require.NoError(t, tk.Restart())
	assert.Len(t, got, len(want), "cancelled listener must stay silent")
}

func TestSubscribe_CancelDuringEmit(t *testing.T) {
	tk, err := search.NewTicker(diamond())
	require.NoError(t, err)
	counts := make([]int, 3)
	var cancel func()
	cancel = tk.Subscribe(func(search.Event[string]) {
		counts[0]++
		cancel()
	})
	tk.Subscribe(func(search.Event[string]) { counts[1]++ })
	tk.Subscribe(func(search.Event[string]) { counts[2]++ })

	require.NoError(t, tk.Start("A", "D", params(t, search.BreadthFirst)))
	assert.Equal(t, []int{1, 1, 1}, counts, "every listener sees the event once")

	require.NoError(t, tk.Restart())
	assert.Equal(t, []int{1, 2, 2}, counts)
}

func TestEventsCarryRunID(t *testing.T) {
	tk, err := search.NewTicker(diamond())
	require.NoError(t, err)
	var last search.Event[string]
	tk.Subscribe(func(ev search.Event[string]) { last = ev })

	require.NoError(t, tk.Start("A", "D", params(t, search.BreadthFirst)))
	first := tk.RunID()
	assert.Equal(t, first, last.RunID)

	require.NoError(t, tk.Restart())
	assert.NotEqual(t, first, tk.RunID())
	assert.Equal(t, tk.RunID(), last.RunID)
}

type LifecycleSuite struct {
	suite.Suite
	tk *search.Ticker[string]
}

func (s *LifecycleSuite) SetupTest() {
	tk, err := search.NewTicker(diamond(), search.WithStepInterval(100*time.Millisecond))
	s.Require().NoError(err)
	s.tk = tk
}

func (s *LifecycleSuite) start(alg search.Algorithm) {
	p, err := search.NewParams[string](alg)
	s.Require().NoError(err)
	s.Require().NoError(s.tk.Start("A", "D", p))
}

func (s *LifecycleSuite) TestStepBeforeStartPanics() {
	s.Equal(search.StatusReady, s.tk.State())
	s.PanicsWithError(search.ErrNotStarted.Error(), func() { _, _ = s.tk.Step() })
	s.ErrorIs(s.tk.Restart(), search.ErrNotStarted)
	_, err := s.tk.Run()
	s.ErrorIs(err, search.ErrNotStarted)
}

func (s *LifecycleSuite) TestStartRejectsUnknownEndpoints() {
	s.start(search.BreadthFirst)
	_, err := s.tk.Step()
	s.Require().NoError(err)
	before := s.tk.Snapshot()

	err = s.tk.Start("A", "Z", s.tk.Params())
	s.ErrorIs(err, search.ErrNodeNotFound)
	s.ErrorIs(err, core.ErrNodeNotFound)
	err = s.tk.Start("Z", "D", s.tk.Params())
	s.ErrorIs(err, search.ErrNodeNotFound)
	s.ErrorIs(s.tk.Start("A", "D", nil), search.ErrNilParams)

	s.Equal(before, s.tk.Snapshot(), "rejected Start must not touch the search")
}

func (s *LifecycleSuite) TestPauseResume() {
	s.False(s.tk.Pause(), "nothing to pause")
	s.start(search.BreadthFirst)
	s.True(s.tk.Pause())
	s.False(s.tk.Pause())
	s.Equal(search.StatusPaused, s.tk.State())

	fired, err := s.tk.Advance(time.Second)
	s.NoError(err)
	s.False(fired, "paused clock is frozen")

	res, err := s.tk.Step()
	s.Require().NoError(err, "manual step while paused")
	s.Equal("A", res.Expanded)
	s.Equal(search.StatusPaused, s.tk.State())

	s.True(s.tk.Resume())
	s.False(s.tk.Resume())
	s.Equal(search.StatusRunning, s.tk.State())
}

func (s *LifecycleSuite) TestAdvanceFiresOncePerExceededInterval() {
	s.start(search.BreadthFirst)

	fired, _ := s.tk.Advance(60 * time.Millisecond)
	s.False(fired)
	fired, _ = s.tk.Advance(40 * time.Millisecond)
	s.False(fired, "equal to the interval does not fire")
	fired, err := s.tk.Advance(time.Millisecond)
	s.Require().NoError(err)
	s.True(fired)
	s.Equal(1, s.tk.Snapshot().Steps)

	fired, _ = s.tk.Advance(time.Second)
	s.True(fired, "a long frame still fires one step")
	s.Equal(2, s.tk.Snapshot().Steps)
	fired, _ = s.tk.Advance(50 * time.Millisecond)
	s.False(fired, "accumulator restarts at zero")
}

func (s *LifecycleSuite) TestSetStepIntervalClamps() {
	s.Equal(100*time.Millisecond, s.tk.StepInterval())
	s.Equal(search.DefaultMinInterval, s.tk.SetStepInterval(time.Nanosecond))
	s.Equal(search.DefaultMaxInterval, s.tk.SetStepInterval(time.Hour))
	s.Equal(500*time.Millisecond, s.tk.SetStepInterval(500*time.Millisecond))
	lo, hi := s.tk.IntervalBounds()
	s.Equal(search.DefaultMinInterval, lo)
	s.Equal(search.DefaultMaxInterval, hi)
}

func (s *LifecycleSuite) TestRestartDiscardsState() {
	s.start(search.BreadthFirst)
	_, err := s.tk.Run()
	s.Require().NoError(err)
	s.Require().Equal(search.StatusSucceeded, s.tk.State())

	s.Require().NoError(s.tk.Restart())
	snap := s.tk.Snapshot()
	s.Equal(search.StatusRunning, snap.Status)
	s.Zero(snap.Steps)
	s.Empty(snap.Visited)
	s.Nil(snap.Path)
	s.Equal([]string{"A"}, snap.Frontier)
}

func (s *LifecycleSuite) TestSetAlgorithm() {
	s.NoError(s.tk.SetAlgorithm(search.Dijkstra), "valid tag without a search")
	s.Equal(search.StatusReady, s.tk.State())
	s.ErrorIs(s.tk.SetAlgorithm(search.Algorithm(9)), search.ErrUnknownAlgorithm)

	s.start(search.BreadthFirst)
	_, err := s.tk.Step()
	s.Require().NoError(err)
	s.Require().NoError(s.tk.SetAlgorithm(search.DepthFirst))

	snap := s.tk.Snapshot()
	s.Equal(search.DepthFirst, snap.Algorithm)
	s.Zero(snap.Steps)
	s.Equal("A", snap.Origin)
	s.Equal("D", snap.Goal)
}

func (s *LifecycleSuite) TestReset() {
	s.start(search.AStar)
	s.tk.Reset()
	s.Equal(search.StatusReady, s.tk.State())
	s.False(s.tk.Started())
	s.Nil(s.tk.Params())
	s.Equal(search.NodeNone, s.tk.Status("A"))
	s.Panics(func() { _, _ = s.tk.Step() })
}

func (s *LifecycleSuite) TestManualExpansion() {
	s.start(search.DepthFirst)
	_, err := s.tk.Step()
	s.Require().NoError(err)

	n, done, err := s.tk.BeginExpansion()
	s.Require().NoError(err)
	s.False(done)
	s.Equal("B", n)
	_, _, err = s.tk.BeginExpansion()
	s.ErrorIs(err, search.ErrExpansionInProgress)
	_, ok := s.tk.PeekNext()
	s.False(ok, "no canonical next while expanding")

	s.Equal([]string{"D"}, s.tk.Candidates())
	s.ErrorIs(s.tk.Discover("C"), search.ErrNotCandidate)
	s.ErrorIs(s.tk.FinishExpansion(), search.ErrCandidatesPending)

	// Step completes the pending expansion
	res, err := s.tk.Step()
	s.Require().NoError(err)
	s.Equal("B", res.Expanded)
	s.Equal([]string{"D"}, res.Discovered)
	s.False(s.tk.Expanding())
	s.ErrorIs(s.tk.FinishExpansion(), search.ErrNoExpansion)
	s.ErrorIs(s.tk.Discover("D"), search.ErrNoExpansion)
}

func (s *LifecycleSuite) TestNewTickerValidation() {
	_, err := search.NewTicker[string](nil)
	s.ErrorIs(err, search.ErrGraphNil)
	_, err = search.NewTicker(diamond(), search.WithStepInterval(0))
	s.ErrorIs(err, search.ErrOptionViolation)
	_, err = search.NewTicker(diamond(), search.WithIntervalBounds(time.Second, time.Millisecond))
	s.ErrorIs(err, search.ErrOptionViolation)

	tk, err := search.NewTicker(diamond(),
		search.WithIntervalBounds(time.Millisecond, 50*time.Millisecond),
		search.WithStepInterval(time.Second))
	s.Require().NoError(err)
	s.Equal(50*time.Millisecond, tk.StepInterval())
}

func TestLifecycleSuite(t *testing.T) {
	suite.Run(t, new(LifecycleSuite))
}
