package search

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/stepsearch/frontier"
)

// Status is the lifecycle state of a Ticker.
//
//	Ready → Running ⇄ Paused → Succeeded | Failed
//
// Succeeded and Failed are terminal; a new Start is needed to search again.
type Status int

const (
	// StatusReady means no search is loaded.
	StatusReady Status = iota
	// StatusRunning means the clock may fire steps.
	StatusRunning
	// StatusPaused holds the search; only explicit single steps advance it.
	StatusPaused
	// StatusSucceeded means the goal was expanded and a path exists.
	StatusSucceeded
	// StatusFailed means the frontier was exhausted without reaching the goal.
	StatusFailed
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusSucceeded:
		return "succeeded"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether s is Succeeded or Failed.
func (s Status) Terminal() bool { return s == StatusSucceeded || s == StatusFailed }

// NodeStatus classifies a node for rendering.
type NodeStatus int

const (
	// NodeNone is an undiscovered node.
	NodeNone NodeStatus = iota
	// NodeFrontier is pending in the frontier.
	NodeFrontier
	// NodeJustExpanded is the node taken by the latest expansion.
	NodeJustExpanded
	// NodeNewFrontier entered the frontier during the latest expansion.
	NodeNewFrontier
	// NodeVisited has been expanded.
	NodeVisited
	// NodeOnPath lies on the final path.
	NodeOnPath
)

// String implements fmt.Stringer.
func (s NodeStatus) String() string {
	switch s {
	case NodeNone:
		return "none"
	case NodeFrontier:
		return "frontier"
	case NodeJustExpanded:
		return "just-expanded"
	case NodeNewFrontier:
		return "new-frontier"
	case NodeVisited:
		return "visited"
	case NodeOnPath:
		return "path"
	default:
		return "unknown"
	}
}

// Scores are the numeric values shown by an inspector view.
type Scores struct {
	G float64 // best known cost from the origin
	H float64 // heuristic estimate to the goal
	F float64 // G + H
}

// StepResult describes one expansion.
type StepResult[K comparable] struct {
	// Expanded is the key taken from the frontier.
	Expanded K
	// Discovered lists keys that entered the frontier, in insertion order.
	Discovered []K
	// Status is the ticker status after the step.
	Status Status
}

// Done reports whether the step ended the search.
func (r StepResult[K]) Done() bool { return r.Status.Terminal() }

// Snapshot is a detached copy of the search state for rendering and tests.
type Snapshot[K comparable] struct {
	RunID      uuid.UUID
	Status     Status
	Algorithm  Algorithm
	Origin     K
	Goal       K
	Steps      int
	Current    K    // latest expanded key
	HasCurrent bool // false before the first expansion
	Frontier   []K  // pending keys in pop order
	Visited    []K  // expanded keys in expansion order
	Discovered []K  // keys that entered the frontier in the latest expansion
	Path       []K  // final path, origin first; nil until success
	Cost       float64
}

// state is the aggregate owned by one search run. It is replaced wholesale
// on Start, Restart and SetAlgorithm, and dropped on Reset.
type state[K comparable] struct {
	runID  uuid.UUID
	origin K
	goal   K
	params *Params[K]
	status Status

	frontier frontier.Frontier[K]
	visited  map[K]struct{}
	order    []K // visited keys in expansion order
	pred     map[K]K
	g        map[K]float64
	f        map[K]float64

	steps     int
	current   K
	has       bool
	expanding bool // current is taken but not yet moved to visited
	newly     map[K]struct{}
	newlyList []K

	path    []K
	pathSet map[K]struct{}
}

func newState[K comparable](origin, goal K, params *Params[K]) *state[K] {
	st := &state[K]{
		runID:   uuid.New(),
		origin:  origin,
		goal:    goal,
		params:  params,
		status:  StatusRunning,
		visited: make(map[K]struct{}),
		pred:    make(map[K]K),
		g:       make(map[K]float64),
		f:       make(map[K]float64),
		newly:   make(map[K]struct{}),
	}
	st.frontier = params.CreateFrontier(func(k K) float64 { return st.g[k] }, goal)

	return st
}

func (st *state[K]) isVisited(k K) bool {
	_, ok := st.visited[k]

	return ok
}

func (st *state[K]) isDiscovered(k K) bool {
	_, ok := st.g[k]

	return ok
}
