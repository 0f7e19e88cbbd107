package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/search"
	"github.com/katalvlaran/stepsearch/session"
)

var (
	traceConfig  string
	traceAlgo    string
	traceFrame   time.Duration
	traceDelay   time.Duration
	traceVerbose bool
)

// maxTicks bounds a trace whose frame time never reaches the step interval.
const maxTicks = 1 << 20

func traceCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       doTrace,
		UsageLine: "trace [-config world.yaml] [-algo name] [-frame 16ms] [-delay 0s] [-v]",
		Short:     "print an ASCII frame after every step of a search",
		Long: `
trace drives a search through the session loop at a fixed frame time and
prints the grid after every step:

  S origin  G goal  @ just expanded  + newly discovered
  o frontier  x visited  * path  # wall

ex:
 $ stepsearch trace -config world.yaml -algo bfs -delay 100ms
`,
		Flag: *flag.NewFlagSet("trace", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&traceConfig, "config", "", "world file (built-in demo when empty)")
	cmd.Flag.StringVar(&traceAlgo, "algo", "", "algorithm override: dfs, bfs, dijkstra or astar")
	cmd.Flag.DurationVar(&traceFrame, "frame", 16*time.Millisecond, "simulated time per tick")
	cmd.Flag.DurationVar(&traceDelay, "delay", 0, "wall-clock pause after each printed frame")
	cmd.Flag.BoolVar(&traceVerbose, "v", false, "debug logging on stderr")

	return cmd
}

func doTrace(cmd *commander.Command, args []string) error {
	w, err := loadWorld(traceConfig, newLogger(os.Stderr, traceVerbose))
	if err != nil {
		return err
	}

	return traceSearch(os.Stdout, w, traceAlgo, traceFrame, traceDelay)
}

// traceSearch ticks a session with a constant frame time and writes a frame
// to out every time the clock fires a step.
func traceSearch(out io.Writer, w *world, algo string, frame, delay time.Duration) error {
	if frame <= 0 {
		return fmt.Errorf("trace: frame time %v must be positive", frame)
	}
	params, err := w.params(algo)
	if err != nil {
		return err
	}
	tk, err := w.ticker()
	if err != nil {
		return err
	}
	s, err := session.New(tk, params, session.WithLogger(w.log))
	if err != nil {
		return err
	}

	s.Submit(session.Start(w.origin, w.goal))
	rep := s.Tick(0)
	if err = rep.Outcomes[0].Err; err != nil {
		return err
	}
	fmt.Fprintf(out, "%v from %v to %v\n%s\n", params.Algorithm(), w.origin, w.goal, w.frame(tk))

	for i := 0; i < maxTicks && !rep.Status.Terminal(); i++ {
		rep = s.Tick(frame)
		for _, ev := range rep.Events {
			w.log.Debug("event", slog.String("kind", ev.Kind.String()), slog.String("key", ev.Key.String()))
		}
		if rep.StepErr != nil {
			return rep.StepErr
		}
		if !rep.Stepped {
			continue
		}
		fmt.Fprintf(out, "step %d (%v)\n%s\n", tk.Snapshot().Steps, rep.Status, w.frame(tk))
		if delay > 0 {
			time.Sleep(delay)
		}
	}

	return summarize(out, tk)
}

func summarize(out io.Writer, tk *search.Ticker[core.Point]) error {
	cost, ok := tk.Cost()
	if !ok {
		_, err := fmt.Fprintf(out, "%v: no path\n", tk.State())
		return err
	}
	_, err := fmt.Fprintf(out, "%v: cost %.3f, %d nodes\n", tk.State(), cost, len(tk.Path()))

	return err
}
