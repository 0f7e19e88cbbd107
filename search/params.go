package search

import (
	"fmt"
	"math"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/frontier"
)

// HeuristicFunc estimates the remaining cost from a node to the goal.
type HeuristicFunc[K comparable] func(from, goal K) float64

// DistanceFunc returns the cost of traversing from→to.
type DistanceFunc[K comparable] func(from, to K) float64

// Zero is the constant-zero heuristic used by every uninformed algorithm.
func Zero[K comparable](K, K) float64 { return 0 }

// Euclidean is the straight-line heuristic for keys implementing core.Locator.
// Keys without a position estimate 0, which keeps the heuristic admissible.
func Euclidean[K comparable](from, goal K) float64 {
	a, ok := any(from).(core.Locator)
	if !ok {
		return 0
	}
	b, ok := any(goal).(core.Locator)
	if !ok {
		return 0
	}
	ax, ay := a.Position()
	bx, by := b.Position()

	return math.Hypot(ax-bx, ay-by)
}

// Params binds an algorithm to its heuristic and edge-cost function.
type Params[K comparable] struct {
	algorithm Algorithm
	heuristic HeuristicFunc[K]
	distance  DistanceFunc[K]

	// extraCostIncentive subtracts the successor's extra cost from the
	// traversal cost: g[s] = g[n] + d(n,s) - extraCost(s).
	extraCostIncentive bool
}

// ParamsOption customizes Params.
type ParamsOption[K comparable] func(*Params[K])

// WithHeuristic overrides the algorithm's default heuristic.
func WithHeuristic[K comparable](h HeuristicFunc[K]) ParamsOption[K] {
	return func(p *Params[K]) {
		if h != nil {
			p.heuristic = h
		}
	}
}

// WithDistance overrides the declared edge weight as traversal cost.
func WithDistance[K comparable](d DistanceFunc[K]) ParamsOption[K] {
	return func(p *Params[K]) {
		if d != nil {
			p.distance = d
		}
	}
}

// WithExtraCostIncentive toggles subtraction of the successor's extra cost
// from every traversal cost. Off by default.
func WithExtraCostIncentive[K comparable](on bool) ParamsOption[K] {
	return func(p *Params[K]) { p.extraCostIncentive = on }
}

// NewParams validates alg and builds Params with its default pairing:
// Euclidean for AStar, Zero otherwise, and declared edge weights as distance.
// An unknown tag is a configuration error (ErrUnknownAlgorithm).
func NewParams[K comparable](alg Algorithm, opts ...ParamsOption[K]) (*Params[K], error) {
	p := &Params[K]{}
	if err := p.SetAlgorithm(alg); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		opt(p)
	}

	return p, nil
}

// SetAlgorithm switches the algorithm and resets the heuristic/distance
// pairing to the new algorithm's defaults. The extra-cost flag is kept.
func (p *Params[K]) SetAlgorithm(alg Algorithm) error {
	if !alg.Valid() {
		return fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(alg))
	}
	p.algorithm = alg
	p.distance = nil
	if alg == AStar {
		p.heuristic = Euclidean[K]
	} else {
		p.heuristic = Zero[K]
	}

	return nil
}

// Algorithm returns the bound algorithm tag.
func (p *Params[K]) Algorithm() Algorithm { return p.algorithm }

// Heuristic returns the bound heuristic.
func (p *Params[K]) Heuristic() HeuristicFunc[K] { return p.heuristic }

// Distance returns the custom distance, or nil when declared edge weights apply.
func (p *Params[K]) Distance() DistanceFunc[K] { return p.distance }

// ExtraCostIncentive reports whether extra costs are subtracted.
func (p *Params[K]) ExtraCostIncentive() bool { return p.extraCostIncentive }

// Clone returns an independent copy.
func (p *Params[K]) Clone() *Params[K] {
	c := *p

	return &c
}

// CreateFrontier builds the frontier variant matching the algorithm.
// g reads the live g-score of a key; priorities are g for Dijkstra and
// g + h(k, goal) for AStar.
func (p *Params[K]) CreateFrontier(g frontier.ScoreFunc[K], goal K) frontier.Frontier[K] {
	switch p.algorithm {
	case DepthFirst:
		return frontier.NewStack[K]()
	case BreadthFirst:
		return frontier.NewQueue[K]()
	case Dijkstra:
		return frontier.NewPriority(g)
	default:
		h := p.heuristic
		return frontier.NewPriority(func(k K) float64 { return g(k) + h(k, goal) })
	}
}
