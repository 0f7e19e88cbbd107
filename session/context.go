package session

import (
	"math/rand"

	"github.com/samber/lo"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/gridgraph"
)

// Context carries the collaborators shared by the control loop. The random
// source is injected so tests can be deterministic.
type Context struct {
	Rand *rand.Rand
}

// NewContext seeds a fresh random source.
func NewContext(seed int64) *Context {
	return &Context{Rand: rand.New(rand.NewSource(seed))}
}

// RandomEndpoints picks two distinct cells of one connected component, so
// a search between them can succeed. Components are chosen with probability
// proportional to their size. Returns ErrNoEndpoints when no component has
// two cells.
func (c *Context) RandomEndpoints(gg *gridgraph.GridGraph) (origin, goal core.Point, err error) {
	comps := lo.Filter(gg.ConnectedComponents(), func(comp []core.Point, _ int) bool {
		return len(comp) >= 2
	})
	if len(comps) == 0 {
		return origin, goal, ErrNoEndpoints
	}
	total := lo.SumBy(comps, func(comp []core.Point) int { return len(comp) })
	pick := c.Rand.Intn(total)
	var comp []core.Point
	for _, cc := range comps {
		if pick < len(cc) {
			comp = cc
			break
		}
		pick -= len(cc)
	}

	i := c.Rand.Intn(len(comp))
	j := c.Rand.Intn(len(comp) - 1)
	if j >= i {
		j++
	}

	return comp[i], comp[j], nil
}
