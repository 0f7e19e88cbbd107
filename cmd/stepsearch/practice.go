package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/practice"
	"github.com/katalvlaran/stepsearch/session"
)

var (
	practiceConfig  string
	practiceAlgo    string
	practiceVerbose bool
)

func practiceCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       doPractice,
		UsageLine: "practice [-config world.yaml] [-algo name] [-v] < clicks",
		Short:     "expand a search by hand, one cell per input line",
		Long: `
practice starts a paused exercise and reads cells as "x,y" lines from stdin.
First name the cell the frontier hands out next, then every undiscovered
neighbour of it, in any order; the order you add them is the order the
frontier receives them. Wrong picks leave the search unchanged. Empty lines and lines starting with ';' are skipped.

ex:
 $ printf '0,0\n1,0\n0,1\n' | stepsearch practice -algo bfs
`,
		Flag: *flag.NewFlagSet("practice", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&practiceConfig, "config", "", "world file (built-in demo when empty)")
	cmd.Flag.StringVar(&practiceAlgo, "algo", "", "algorithm override: dfs, bfs, dijkstra or astar")
	cmd.Flag.BoolVar(&practiceVerbose, "v", false, "debug logging on stderr")

	return cmd
}

func doPractice(cmd *commander.Command, args []string) error {
	w, err := loadWorld(practiceConfig, newLogger(os.Stderr, practiceVerbose))
	if err != nil {
		return err
	}

	return practiceSearch(os.Stdin, os.Stdout, w, practiceAlgo)
}

// tutorial is the walkthrough shown during an exercise.
func tutorial() *practice.Script {
	return practice.NewScript(
		practice.ScriptStep{
			Condition: func(p practice.Progress) bool { return p.Accepted },
			Message:   "Good. Now add the neighbours the algorithm would discover.",
		},
		practice.ScriptStep{
			Condition: func(p practice.Progress) bool { return p.Expansions >= 1 },
			Message:   "First expansion done. Keep going until the goal is taken.",
		},
		practice.ScriptStep{
			Condition: func(p practice.Progress) bool { return p.Finished },
			Message:   "Search complete.",
		},
	)
}

// practiceSearch runs an exercise over w, reading proposals from in and
// writing feedback to out. It stops at the end of input or of the search.
func practiceSearch(in io.Reader, out io.Writer, w *world, algo string) error {
	params, err := w.params(algo)
	if err != nil {
		return err
	}
	tk, err := w.ticker()
	if err != nil {
		return err
	}
	s, err := session.New(tk, params,
		session.WithLogger(w.log),
		session.WithPractice(practice.WithHints(w.cfg.Hints), practice.WithScript(tutorial())))
	if err != nil {
		return err
	}

	s.Submit(session.Practice(w.origin, w.goal))
	if rep := s.Tick(0); rep.Outcomes[0].Err != nil {
		return rep.Outcomes[0].Err
	}
	fmt.Fprintf(out, "%v from %v to %v\n%s\n", params.Algorithm(), w.origin, w.goal, w.frame(tk))

	sc := bufio.NewScanner(in)
	for sc.Scan() && s.Tutor().Active() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		p, err := core.ParsePoint(line)
		if err != nil {
			fmt.Fprintf(out, "? %v\n", err)
			continue
		}

		s.Submit(session.Propose(p))
		rep := s.Tick(0)
		report(out, rep.Outcomes[0])
		if rep.Outcomes[0].Feedback.Accepted {
			fmt.Fprint(out, w.frame(tk))
		}
	}
	if err := sc.Err(); err != nil {
		return err
	}

	return summarize(out, tk)
}

func report(out io.Writer, o session.Outcome[core.Point]) {
	fb := o.Feedback
	switch {
	case fb.Accepted:
		fmt.Fprintf(out, "ok %v -> %v\n", fb.Key, fb.Stage)
	case errors.Is(o.Err, practice.ErrInvalidSelection):
		fmt.Fprintf(out, "no %v\n", fb.Key)
	default:
		fmt.Fprintf(out, "error: %v\n", o.Err)
	}
	if fb.Hint != "" {
		fmt.Fprintf(out, "hint: %s\n", fb.Hint)
	}
	if fb.Tutorial != "" {
		fmt.Fprintf(out, "> %s\n", fb.Tutorial)
	}
}
