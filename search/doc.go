// Package search runs depth-first, breadth-first, Dijkstra and A* searches
// one expansion at a time so a caller can render, pause and inspect every
// intermediate state.
//
// Overview:
//
//   - Params binds an Algorithm to its heuristic and edge-cost function and
//     builds the matching frontier (stack, queue or priority queue).
//   - Ticker owns the live search. Start loads it, Step performs exactly one
//     expansion, Advance drives Step from an accumulator clock, and
//     Pause/Resume/Restart/SetAlgorithm/Reset control the lifecycle.
//   - Status, Scores and Snapshot expose per-node classification and g/h/f
//     values for a renderer. Subscribe delivers typed Events.
//   - PeekNext, BeginExpansion, Candidates, Discover and FinishExpansion split
//     one expansion into user-sized pieces for practice mode. Step uses the
//     same functions.
//
// Expansion rule:
//
//	n := frontier.take()
//	if n == goal: path = reconstruct(pred, origin, goal); Succeeded
//	for s in successors(n), s not visited:
//	    cand := g[n] + d(n, s) [- extraCost(s) when the incentive flag is on]
//	    if s undiscovered or cand < g[s]:
//	        pred[s], g[s], f[s] = n, cand, cand + h(s, goal)
//	        push s if undiscovered, otherwise re-sort it
//	visited += n
//	if frontier empty: Failed
//
// Depth-first pushes successors in reverse so the first declared successor
// is explored first.
//
// Error handling:
//
//   - ErrUnknownAlgorithm: configuration error, raised at setup only.
//   - ErrNodeNotFound: Start with an absent origin or goal; no state change.
//   - ErrNotStarted: panic value of Step before Start.
//   - ErrSearchComplete: Step or expansion call after Succeeded/Failed.
//   - ErrReconstruction: predecessor chain does not reach the origin.
//
// An exhausted frontier is StatusFailed, not an error.
//
// Concurrency:
//
// A Ticker is confined to one control goroutine. Background producers talk
// to it through package session.
//
// Complexity:
//
//   - Step: O(d log n) for priority frontiers, O(d) otherwise.
//   - Memory: O(V) for g, f, predecessor and visited maps.
package search
