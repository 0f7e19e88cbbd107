// Command stepsearch runs and inspects step-wise graph searches over a grid
// world described in YAML.
//
//	$ stepsearch run -config world.yaml -algo dijkstra
//	$ stepsearch trace -config world.yaml
//	$ stepsearch practice -config world.yaml < clicks.txt
package main

import (
	"fmt"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

func rootCmd() *commander.Command {
	return &commander.Command{
		UsageLine: "stepsearch <command> [options]",
		Short:     "step-wise DFS, BFS, Dijkstra and A* over grid worlds",
		Subcommands: []*commander.Command{
			runCmd(),
			traceCmd(),
			practiceCmd(),
		},
		Flag: *flag.NewFlagSet("stepsearch", flag.ExitOnError),
	}
}

func main() {
	if err := rootCmd().Dispatch(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "**err**: %v\n", err)
		os.Exit(1)
	}
}
