package session

import (
	"time"

	"github.com/katalvlaran/stepsearch/practice"
	"github.com/katalvlaran/stepsearch/search"
)

// Op names a control request.
type Op int

const (
	// OpStart loads a search from Origin to Goal with the session params.
	OpStart Op = iota
	// OpPractice begins a hand-driven exercise from Origin to Goal.
	OpPractice
	// OpRestart reruns the current search from scratch.
	OpRestart
	// OpStep performs one expansion.
	OpStep
	// OpPause holds the clock.
	OpPause
	// OpResume releases the clock.
	OpResume
	// OpReset discards the search.
	OpReset
	// OpSetInterval changes the clock interval to Interval.
	OpSetInterval
	// OpSetAlgorithm switches to Algorithm, restarting a loaded search.
	OpSetAlgorithm
	// OpPropose submits Key to the practice tutor.
	OpPropose
)

// String implements fmt.Stringer.
func (o Op) String() string {
	switch o {
	case OpStart:
		return "start"
	case OpPractice:
		return "practice"
	case OpRestart:
		return "restart"
	case OpStep:
		return "step"
	case OpPause:
		return "pause"
	case OpResume:
		return "resume"
	case OpReset:
		return "reset"
	case OpSetInterval:
		return "set-interval"
	case OpSetAlgorithm:
		return "set-algorithm"
	case OpPropose:
		return "propose"
	default:
		return "unknown"
	}
}

// Command is one queued control request. Only the fields its Op reads
// matter.
type Command[K comparable] struct {
	Op        Op
	Origin    K
	Goal      K
	Key       K
	Algorithm search.Algorithm
	Interval  time.Duration
}

// Start requests a search from origin to goal.
func Start[K comparable](origin, goal K) Command[K] {
	return Command[K]{Op: OpStart, Origin: origin, Goal: goal}
}

// Practice requests a practice exercise from origin to goal.
func Practice[K comparable](origin, goal K) Command[K] {
	return Command[K]{Op: OpPractice, Origin: origin, Goal: goal}
}

// Propose forwards a user click to the tutor.
func Propose[K comparable](key K) Command[K] {
	return Command[K]{Op: OpPropose, Key: key}
}

// Outcome records how the control loop applied one command.
type Outcome[K comparable] struct {
	Command  Command[K]
	Err      error
	Feedback practice.Feedback[K] // set for OpPropose
}

// Report summarises one Tick.
type Report[K comparable] struct {
	Outcomes []Outcome[K]
	Messages int               // world messages dispatched
	Stepped  bool              // the clock fired a step
	StepErr  error             // error of that step
	Events   []search.Event[K] // events of the current run, oldest first
	Status   search.Status
}
