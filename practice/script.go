package practice

// Progress is what a tutorial condition can observe after a proposal.
type Progress struct {
	Stage      Stage
	Accepted   bool // last proposal was accepted
	Expansions int  // expansions completed in this exercise
	Rejections int  // rejected proposals in this exercise
	Finished   bool // the search reached a terminal status
	Succeeded  bool
}

// ScriptStep pairs a condition with the message shown once it holds.
type ScriptStep struct {
	Condition func(Progress) bool
	Message   string
}

// Script is an ordered tutorial. Its index only moves forward and each step
// fires at most once.
type Script struct {
	steps []ScriptStep
	idx   int
}

// NewScript builds a script from steps. Steps with a nil Condition fire on
// the first evaluation that reaches them.
func NewScript(steps ...ScriptStep) *Script {
	return &Script{steps: append([]ScriptStep(nil), steps...)}
}

// Advance evaluates the current step against p. When its condition holds
// the index moves on and the step's message is returned with fired=true;
// otherwise nothing changes.
func (s *Script) Advance(p Progress) (msg string, fired bool) {
	if s.Done() {
		return "", false
	}
	step := s.steps[s.idx]
	if step.Condition != nil && !step.Condition(p) {
		return "", false
	}
	s.idx++

	return step.Message, true
}

// Current returns the step waiting for its condition.
func (s *Script) Current() (ScriptStep, bool) {
	if s.Done() {
		return ScriptStep{}, false
	}

	return s.steps[s.idx], true
}

// Index is the number of steps already fired.
func (s *Script) Index() int { return s.idx }

// Done reports whether every step fired.
func (s *Script) Done() bool { return s.idx >= len(s.steps) }

// Rewind starts the script over.
func (s *Script) Rewind() { s.idx = 0 }
