package practice_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/practice"
	"github.com/katalvlaran/stepsearch/search"
)

func diamond() *core.Graph[string] {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", false, 0, 0)
	g.AddEdge("A", "C", false, 0, 0)
	g.AddEdge("B", "D", false, 0, 0)
	g.AddEdge("C", "D", false, 0, 0)

	return g
}

type TutorSuite struct {
	suite.Suite
	tk    *search.Ticker[string]
	tutor *practice.Tutor[string]
}

func (s *TutorSuite) SetupTest() {
	tk, err := search.NewTicker(diamond())
	s.Require().NoError(err)
	tutor, err := practice.New(tk, practice.WithHints(practice.Hints{SelectCurrent: "pick next"}))
	s.Require().NoError(err)
	s.tk, s.tutor = tk, tutor
}

func (s *TutorSuite) begin(alg search.Algorithm) {
	p, err := search.NewParams[string](alg)
	s.Require().NoError(err)
	s.Require().NoError(s.tutor.Begin("A", "D", p))
}

func (s *TutorSuite) TestNotActiveBeforeBegin() {
	_, err := s.tutor.Propose("A")
	s.ErrorIs(err, practice.ErrNotActive)
	s.Equal(practice.StageDone, s.tutor.Stage())
}

func (s *TutorSuite) TestBeginPausesTicker() {
	s.begin(search.BreadthFirst)
	s.Equal(search.StatusPaused, s.tk.State())
	s.Equal(practice.StageSelectCurrent, s.tutor.Stage())
}

func (s *TutorSuite) TestWrongSelectionLeavesStateAndHintsOnce() {
	s.begin(search.BreadthFirst)
	before := s.tk.Snapshot()

	fb, err := s.tutor.Propose("B")
	s.ErrorIs(err, practice.ErrInvalidSelection)
	s.False(fb.Accepted)
	s.Equal("pick next", fb.Hint)
	s.Equal(before, s.tk.Snapshot())
	flagged, ok := s.tutor.Flagged()
	s.True(ok)
	s.Equal("B", flagged)

	fb, err = s.tutor.Propose("B")
	s.ErrorIs(err, practice.ErrInvalidSelection)
	s.Empty(fb.Hint, "only the first rejection of a stage carries a hint")
	fb, err = s.tutor.Propose("C")
	s.ErrorIs(err, practice.ErrInvalidSelection)
	s.Empty(fb.Hint)
	s.Equal(before, s.tk.Snapshot())
}

func (s *TutorSuite) TestFullExercise() {
	s.begin(search.BreadthFirst)

	fb, err := s.tutor.Propose("A")
	s.Require().NoError(err)
	s.True(fb.Accepted)
	s.Equal(practice.StageAddFrontier, fb.Stage)
	_, ok := s.tutor.Flagged()
	s.False(ok)

	// wrong frontier proposal: D is not a successor of A
	fb, err = s.tutor.Propose("D")
	s.ErrorIs(err, practice.ErrInvalidSelection)
	s.Equal(practice.DefaultFrontierHint, fb.Hint)

	// successors may be added in any order
	_, err = s.tutor.Propose("C")
	s.Require().NoError(err)
	fb, err = s.tutor.Propose("B")
	s.Require().NoError(err)
	s.Equal(practice.StageSelectCurrent, fb.Stage)
	s.Equal([]string{"C", "B"}, s.tk.Snapshot().Frontier)
	s.True(s.tk.Visited("A"))

	_, err = s.tutor.Propose("C")
	s.Require().NoError(err)
	fb, err = s.tutor.Propose("D")
	s.Require().NoError(err)
	s.Equal(practice.StageSelectCurrent, fb.Stage)

	// B has no undiscovered successor left: selection completes it at once
	fb, err = s.tutor.Propose("B")
	s.Require().NoError(err)
	s.Equal(practice.StageSelectCurrent, fb.Stage)

	fb, err = s.tutor.Propose("D")
	s.Require().NoError(err)
	s.Equal(practice.StageDone, fb.Stage)
	s.Equal(search.StatusSucceeded, fb.Status)
	s.Equal([]string{"A", "C", "D"}, s.tk.Path())

	_, err = s.tutor.Propose("A")
	s.ErrorIs(err, practice.ErrNotActive)
}

func (s *TutorSuite) TestBeginRearmsHints() {
	s.begin(search.DepthFirst)
	fb, _ := s.tutor.Propose("D")
	s.NotEmpty(fb.Hint)
	fb, _ = s.tutor.Propose("D")
	s.Empty(fb.Hint)

	s.begin(search.DepthFirst)
	fb, _ = s.tutor.Propose("D")
	s.NotEmpty(fb.Hint)
}

func (s *TutorSuite) TestBeginRejectsUnknownEndpoint() {
	p, err := search.NewParams[string](search.AStar)
	s.Require().NoError(err)
	s.ErrorIs(s.tutor.Begin("A", "Z", p), search.ErrNodeNotFound)
	s.Equal(practice.StageDone, s.tutor.Stage())
}

func (s *TutorSuite) TestFailureEndsExercise() {
	g := core.NewGraph[string]()
	g.AddEdge("A", "B", true, 0, 0)
	g.AddNode("Z")
	tk, err := search.NewTicker(g)
	s.Require().NoError(err)
	tutor, err := practice.New(tk)
	s.Require().NoError(err)
	p, err := search.NewParams[string](search.Dijkstra)
	s.Require().NoError(err)
	s.Require().NoError(tutor.Begin("A", "Z", p))

	_, err = tutor.Propose("A")
	s.Require().NoError(err)
	_, err = tutor.Propose("B")
	s.Require().NoError(err)
	fb, err := tutor.Propose("B")
	s.Require().NoError(err)
	s.Equal(practice.StageDone, fb.Stage)
	s.Equal(search.StatusFailed, fb.Status)
	s.True(tutor.Progress().Finished)
	s.False(tutor.Progress().Succeeded)
}

func (s *TutorSuite) TestExternalRestartDeactivates() {
	s.begin(search.BreadthFirst)
	s.True(s.tutor.Active())
	s.Require().NoError(s.tk.Restart())
	s.False(s.tutor.Active())
	_, err := s.tutor.Propose("A")
	s.ErrorIs(err, practice.ErrNotActive)
}

func (s *TutorSuite) TestTickerStepCompletesExpansion() {
	s.begin(search.BreadthFirst)
	_, err := s.tutor.Propose("A")
	s.Require().NoError(err)
	s.Equal(practice.StageAddFrontier, s.tutor.Stage())

	// a single step while paused finishes A with the canonical order
	_, err = s.tk.Step()
	s.Require().NoError(err)
	s.Equal(practice.StageSelectCurrent, s.tutor.Stage())
	s.True(s.tutor.Active())
	s.Equal(1, s.tutor.Progress().Expansions)

	fb, err := s.tutor.Propose("B")
	s.Require().NoError(err)
	s.True(fb.Accepted)
	s.Equal(practice.StageAddFrontier, fb.Stage)
	fb, err = s.tutor.Propose("D")
	s.Require().NoError(err)
	s.Equal(practice.StageSelectCurrent, fb.Stage)

	// the ticker takes C on its own, the user finishes with D
	_, err = s.tk.Step()
	s.Require().NoError(err)
	fb, err = s.tutor.Propose("D")
	s.Require().NoError(err)
	s.Equal(practice.StageDone, fb.Stage)
	s.Equal([]string{"A", "B", "D"}, s.tk.Path())
}

func (s *TutorSuite) TestTickerFinishingSearchEndsExercise() {
	s.begin(search.DepthFirst)
	_, err := s.tutor.Propose("A")
	s.Require().NoError(err)

	_, err = s.tk.Run()
	s.Require().NoError(err)
	s.Equal(practice.StageDone, s.tutor.Stage())
	s.False(s.tutor.Active())
	s.True(s.tutor.Progress().Succeeded)

	fb, err := s.tutor.Propose("B")
	s.ErrorIs(err, practice.ErrNotActive)
	s.Equal(practice.StageDone, fb.Stage)
}

func (s *TutorSuite) TestNilTicker() {
	_, err := practice.New[string](nil)
	s.ErrorIs(err, practice.ErrNilTicker)
}

func TestTutorSuite(t *testing.T) {
	suite.Run(t, new(TutorSuite))
}
