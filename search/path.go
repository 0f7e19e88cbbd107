package search

import "fmt"

// ReconstructPath walks pred backward from goal to origin and returns the
// route origin first.
//
// The walk is bounded by maxHops links; a missing predecessor or an
// exhausted bound (a cycle in a malformed map) yields ErrReconstruction
// instead of looping. A ticker passes |visited|+1.
func ReconstructPath[K comparable](pred map[K]K, origin, goal K, maxHops int) ([]K, error) {
	path := []K{goal}
	cur := goal
	for hops := 0; cur != origin; hops++ {
		if hops >= maxHops {
			return nil, fmt.Errorf("%w: no origin within %d hops of %v", ErrReconstruction, maxHops, goal)
		}
		prev, ok := pred[cur]
		if !ok {
			return nil, fmt.Errorf("%w: %v has no predecessor", ErrReconstruction, cur)
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get origin → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// PathCost sums d over consecutive pairs of path.
func PathCost[K comparable](path []K, d DistanceFunc[K]) float64 {
	total := 0.0
	for i := 1; i < len(path); i++ {
		total += d(path[i-1], path[i])
	}

	return total
}
