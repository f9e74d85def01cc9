// Command bestfirst runs best-first search on road networks and puzzles.
//
//	$ bestfirst route [-segments f] [-gps f] START END segments|distance|time|delivery
//	$ bestfirst birds FILE
//	$ bestfirst tiles [-rows 5] [-cols 5] FILE
//
// Every command accepts -v, -json, -metrics FILE and -max-expansions N.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

func newRootCmd() *commander.Command {
	root := &commander.Command{
		UsageLine: "bestfirst <command> [arguments]",
		Short:     "best-first search over road networks and puzzles",
		Subcommands: []*commander.Command{
			routeCmd(),
			birdsCmd(),
			tilesCmd(),
		},
		Flag: *flag.NewFlagSet("bestfirst", flag.ExitOnError),
	}
	for _, sub := range root.Subcommands {
		addGlobalFlags(&sub.Flag)
	}

	return root
}

func run(args []string) error {
	return newRootCmd().Dispatch(args)
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(stderr, "**err**: %v\n", err)
		os.Exit(1)
	}
}
