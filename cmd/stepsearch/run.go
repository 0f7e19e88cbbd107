package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/stepsearch/search"
)

var (
	runConfig  string
	runAlgo    string
	runVerbose bool
)

func runCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       doRun,
		UsageLine: "run [-config world.yaml] [-algo name] [-v]",
		Short:     "run a search to completion and print the path",
		Long: `
run loads a world, searches from origin to goal and prints the final path,
its cost and the number of expansions.

ex:
 $ stepsearch run -config world.yaml -algo dijkstra
`,
		Flag: *flag.NewFlagSet("run", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&runConfig, "config", "", "world file (built-in demo when empty)")
	cmd.Flag.StringVar(&runAlgo, "algo", "", "algorithm override: dfs, bfs, dijkstra or astar")
	cmd.Flag.BoolVar(&runVerbose, "v", false, "debug logging on stderr")

	return cmd
}

func doRun(cmd *commander.Command, args []string) error {
	w, err := loadWorld(runConfig, newLogger(os.Stderr, runVerbose))
	if err != nil {
		return err
	}

	return runSearch(os.Stdout, w, runAlgo)
}

// runSearch runs one search over w and writes a summary to out. A non-empty
// algo overrides the configured algorithm.
func runSearch(out io.Writer, w *world, algo string) error {
	params, err := w.params(algo)
	if err != nil {
		return err
	}
	tk, err := w.ticker()
	if err != nil {
		return err
	}
	if err = tk.Start(w.origin, w.goal, params); err != nil {
		return err
	}
	snap, err := tk.Run()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "algorithm:  %v\n", snap.Algorithm)
	fmt.Fprintf(out, "from %v to %v\n", snap.Origin, snap.Goal)
	fmt.Fprintf(out, "expansions: %d\n", snap.Steps)
	if snap.Status != search.StatusSucceeded {
		fmt.Fprintln(out, "no path")
		return nil
	}
	fmt.Fprintf(out, "cost:       %.3f\n", snap.Cost)
	fmt.Fprintf(out, "path:       %v\n", snap.Path)
	fmt.Fprint(out, w.frame(tk))

	return nil
}
