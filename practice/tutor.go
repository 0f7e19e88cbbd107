package practice

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/katalvlaran/stepsearch/search"
)

// Stage is the kind of proposal the tutor expects next.
type Stage int

const (
	// StageSelectCurrent expects the node the frontier hands out next.
	StageSelectCurrent Stage = iota
	// StageAddFrontier expects an undiscovered successor of the current node.
	StageAddFrontier
	// StageDone means the search ended; proposals are refused.
	StageDone
)

const stageCount = int(StageDone)

// String implements fmt.Stringer.
func (s Stage) String() string {
	switch s {
	case StageSelectCurrent:
		return "select-current"
	case StageAddFrontier:
		return "add-frontier"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// Feedback describes the outcome of one proposal.
type Feedback[K comparable] struct {
	Key      K
	Accepted bool
	Stage    Stage         // stage after the proposal
	Status   search.Status // ticker status after the proposal
	Hint     string        // set only on the first rejection of a stage
	Tutorial string        // message of a script step fired by this proposal
}

// Tutor validates manual expansions against the canonical algorithm.
//
// It drives the ticker's expansion API itself, so an accepted proposal
// mutates the search exactly as Step would and a rejected one leaves it
// untouched. The ticker is paused when the exercise begins. Steps taken
// by the ticker itself in the meantime complete the expansion in progress;
// the stage is read from the ticker, so the exercise continues from there.
type Tutor[K comparable] struct {
	tk     *search.Ticker[K]
	active bool
	run    uuid.UUID
	done   bool // finish already logged for this run

	hinted  [stageCount]bool
	flagged K
	hasFlag bool

	rejections int

	hints  Hints
	script *Script
	log    *slog.Logger
}

// New wraps tk. Returns ErrNilTicker for a nil ticker.
func New[K comparable](tk *search.Ticker[K], opts ...Option) (*Tutor[K], error) {
	if tk == nil {
		return nil, ErrNilTicker
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Tutor[K]{
		tk:     tk,
		hints:  o.hints,
		script: o.script,
		log:    o.log,
	}, nil
}

// Begin starts a fresh exercise from origin to goal and pauses the ticker
// so only proposals advance it. Hints are re-armed.
func (t *Tutor[K]) Begin(origin, goal K, params *search.Params[K]) error {
	if err := t.tk.Start(origin, goal, params); err != nil {
		return err
	}
	t.tk.Pause()
	t.reset()
	t.log.Debug("practice started", slog.Any("origin", origin), slog.Any("goal", goal))

	return nil
}

// Propose submits key for the current stage.
//
// A wrong key returns ErrInvalidSelection and flags it; the search is
// unchanged. Only the first rejection of each stage carries a hint.
func (t *Tutor[K]) Propose(key K) (Feedback[K], error) {
	if !t.Active() {
		return Feedback[K]{Key: key, Stage: t.Stage(), Status: t.tk.State()}, ErrNotActive
	}

	var ok bool
	var err error
	stage := t.Stage()
	switch stage {
	case StageSelectCurrent:
		ok, err = t.selectCurrent(key)
	case StageAddFrontier:
		ok, err = t.addFrontier(key)
	}
	t.checkFinished()
	if err != nil {
		return Feedback[K]{Key: key, Stage: t.Stage(), Status: t.tk.State()}, err
	}
	if !ok {
		return t.reject(key, stage)
	}

	t.hasFlag = false
	fb := Feedback[K]{Key: key, Accepted: true, Stage: t.Stage(), Status: t.tk.State()}
	fb.Tutorial = t.evaluate(true)

	return fb, nil
}

// Active reports whether proposals are accepted: Begin was called, the
// search has not ended and the ticker still runs the exercise's search.
func (t *Tutor[K]) Active() bool {
	return t.active && t.tk.RunID() == t.run && !t.tk.State().Terminal()
}

// Stage returns the expected kind of proposal. It is derived from the
// ticker: AddFrontier while an expansion is in progress, Done once the
// exercise is no longer active.
func (t *Tutor[K]) Stage() Stage {
	switch {
	case !t.Active():
		return StageDone
	case t.tk.Expanding():
		return StageAddFrontier
	default:
		return StageSelectCurrent
	}
}

// Flagged returns the latest rejected key until a proposal is accepted.
func (t *Tutor[K]) Flagged() (key K, ok bool) { return t.flagged, t.hasFlag }

// Ticker returns the driven ticker.
func (t *Tutor[K]) Ticker() *search.Ticker[K] { return t.tk }

// Script returns the attached tutorial, or nil.
func (t *Tutor[K]) Script() *Script { return t.script }

// Progress summarises the exercise for tutorial conditions.
func (t *Tutor[K]) Progress() Progress {
	st := t.tk.State()

	return Progress{
		Stage:      t.Stage(),
		Expansions: t.expansions(),
		Rejections: t.rejections,
		Finished:   st.Terminal(),
		Succeeded:  st == search.StatusSucceeded,
	}
}

func (t *Tutor[K]) reset() {
	t.active = true
	t.run = t.tk.RunID()
	t.done = false
	t.hinted = [stageCount]bool{}
	var zero K
	t.flagged, t.hasFlag = zero, false
	t.rejections = 0
}

// expansions counts completed expansions of the exercise's run, whoever
// completed them.
func (t *Tutor[K]) expansions() int {
	if t.tk.RunID() != t.run {
		return 0
	}

	return len(t.tk.Snapshot().Visited)
}

func (t *Tutor[K]) selectCurrent(key K) (bool, error) {
	next, ok := t.tk.PeekNext()
	if !ok || next != key {
		return false, nil
	}
	_, done, err := t.tk.BeginExpansion()
	if err != nil {
		return false, err
	}
	if !done && len(t.tk.Candidates()) == 0 {
		return true, t.tk.FinishExpansion()
	}

	return true, nil
}

func (t *Tutor[K]) addFrontier(key K) (bool, error) {
	if !lo.Contains(t.tk.Candidates(), key) {
		return false, nil
	}
	if err := t.tk.Discover(key); err != nil {
		return false, err
	}
	if len(t.tk.Candidates()) == 0 {
		return true, t.tk.FinishExpansion()
	}

	return true, nil
}

// checkFinished logs the end of the exercise once, however the search of
// its run reached a terminal status.
func (t *Tutor[K]) checkFinished() {
	if t.done || t.tk.RunID() != t.run || !t.tk.State().Terminal() {
		return
	}
	t.done = true
	t.log.Debug("practice finished",
		slog.String("status", t.tk.State().String()),
		slog.Int("expansions", t.expansions()),
		slog.Int("rejections", t.rejections))
}

func (t *Tutor[K]) reject(key K, stage Stage) (Feedback[K], error) {
	t.rejections++
	t.flagged, t.hasFlag = key, true
	fb := Feedback[K]{Key: key, Stage: stage, Status: t.tk.State()}
	if i := int(stage); !t.hinted[i] {
		t.hinted[i] = true
		fb.Hint = t.hintFor(stage)
	}
	fb.Tutorial = t.evaluate(false)
	t.log.Debug("proposal rejected", slog.Any("key", key), slog.String("stage", stage.String()))

	return fb, fmt.Errorf("%w: %v during %s", ErrInvalidSelection, key, stage)
}

func (t *Tutor[K]) hintFor(s Stage) string {
	if s == StageAddFrontier {
		return t.hints.AddFrontier
	}

	return t.hints.SelectCurrent
}

func (t *Tutor[K]) evaluate(accepted bool) string {
	if t.script == nil {
		return ""
	}
	p := t.Progress()
	p.Accepted = accepted
	msg, _ := t.script.Advance(p)

	return msg
}
