package search

import (
	"errors"

	"github.com/katalvlaran/stepsearch/core"
)

// Sentinel errors for search setup and execution.
var (
	// ErrUnknownAlgorithm is the configuration error for an unrecognized
	// algorithm tag. It is raised at setup, never by Step.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrNodeNotFound rejects Start when origin or goal is absent from the
	// graph. It is core.ErrNodeNotFound, so either can be matched.
	ErrNodeNotFound = core.ErrNodeNotFound

	// ErrReconstruction reports a predecessor chain that does not reach the
	// origin within the hop bound.
	ErrReconstruction = errors.New("search: path reconstruction failed")

	// ErrNotStarted is the panic value of Step before Start, and the error of
	// control calls that need an existing search.
	ErrNotStarted = errors.New("search: no search started")

	// ErrSearchComplete is returned by Step and the expansion API once the
	// search reached a terminal status.
	ErrSearchComplete = errors.New("search: search already complete")

	// ErrNilParams rejects Start without parameters.
	ErrNilParams = errors.New("search: params are nil")

	// ErrGraphNil rejects NewTicker without a graph.
	ErrGraphNil = errors.New("search: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrExpansionInProgress rejects BeginExpansion while a node is still
	// being expanded.
	ErrExpansionInProgress = errors.New("search: expansion already in progress")

	// ErrNoExpansion rejects Discover/FinishExpansion with no node being expanded.
	ErrNoExpansion = errors.New("search: no expansion in progress")

	// ErrNotCandidate rejects Discover of a key that is not an undiscovered
	// successor of the node being expanded.
	ErrNotCandidate = errors.New("search: key is not a frontier candidate")

	// ErrCandidatesPending rejects FinishExpansion while candidates remain.
	ErrCandidatesPending = errors.New("search: frontier candidates still pending")
)
