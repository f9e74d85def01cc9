package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"

	"github.com/katalvlaran/bestfirst/birds"
	"github.com/katalvlaran/bestfirst/roadmap"
	"github.com/katalvlaran/bestfirst/route"
	"github.com/katalvlaran/bestfirst/tiles"
)

// errUsage is returned when a command gets the wrong number of arguments.
var errUsage = errors.New("bestfirst: wrong number of arguments")

var (
	segmentsPath string
	gpsPath      string
	rows, cols   int
)

func routeCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runRoute,
		UsageLine: "route [options] START END COST",
		Short:     "find a driving route between two cities",
		Long: `
find the cheapest driving route between two cities under one cost model

	$ bestfirst route -segments road-segments.txt -gps city-gps.txt Bloomington,_Indiana Indianapolis,_Indiana time

COST is one of segments, distance, time, delivery.
Input files ending in .gz, .zst or .lz4 are decompressed on the fly.
`,
		Flag: *flag.NewFlagSet("route", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&segmentsPath, "segments", "road-segments.txt", "road segments file")
	cmd.Flag.StringVar(&gpsPath, "gps", "city-gps.txt", "city coordinates file (empty: no heuristic)")

	return cmd
}

func runRoute(cmd *commander.Command, args []string) error {
	if len(args) != 3 {
		cmd.Usage()
		return fmt.Errorf("%w: route wants START END COST, got %d", errUsage, len(args))
	}
	start, end, selector := args[0], args[1], args[2]

	s := newSession("route")
	defer s.stop()

	g, err := roadmap.Load(s.ctx, segmentsPath, gpsPath, roadmap.WithLogger(s.log.Logger))
	if err != nil {
		return err
	}

	began := time.Now()
	r, err := route.FindBySelector(g, start, end, selector, s.options()...)
	s.log.LogSolve(start+" to "+end, len(r.Legs), r.Expanded, time.Since(began), err)
	if err != nil {
		return err
	}
	printRoute(r)

	return s.close()
}

func printRoute(r route.Route) {
	fmt.Fprintf(stdout, "Start in %s\n", r.Start)
	for _, l := range r.Legs {
		fmt.Fprintf(stdout, "   Then go to %s via %s\n", l.City, l.Info)
	}
	fmt.Fprintf(stdout, "\n          Total segments: %4d\n", r.Segments)
	fmt.Fprintf(stdout, "             Total miles: %8.3f\n", r.Miles)
	fmt.Fprintf(stdout, "             Total hours: %8.3f\n", r.Hours)
	fmt.Fprintf(stdout, "Total hours for delivery: %8.3f\n", r.DeliveryHours)
}

func birdsCmd() *commander.Command {
	return &commander.Command{
		Run:       runBirds,
		UsageLine: "birds [options] FILE",
		Short:     "sort rows of birds with the fewest adjacent swaps",
		Long: `
sort each row of FILE (one permutation of 1..N per line) with adjacent swaps

	$ bestfirst birds test-cases.txt
`,
		Flag: *flag.NewFlagSet("birds", flag.ExitOnError),
	}
}

func runBirds(cmd *commander.Command, args []string) error {
	if len(args) != 1 {
		cmd.Usage()
		return fmt.Errorf("%w: birds wants FILE", errUsage)
	}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	cases, err := birds.ReadRows(f)
	if err != nil {
		return err
	}

	s := newSession("birds")
	defer s.stop()
	for _, row := range cases {
		began := time.Now()
		sol, err := birds.Solve(birds.Config{N: len(row)}, row, s.options()...)
		s.log.LogSolve(fmt.Sprint(row), sol.Swaps(), sol.Expanded, time.Since(began), err)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "From state %v found goal state by taking path: %v\n", row, sol.Path)
	}

	return s.close()
}

func tilesCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       runTiles,
		UsageLine: "tiles [options] FILE",
		Short:     "solve the row/column/ring rotation puzzle",
		Long: `
solve the rotation puzzle read from FILE (Rows*Cols integers, row-major)

	$ bestfirst tiles -rows 5 -cols 5 board.txt

Moves: R/L slide a row right/left, D/U slide a column down/up,
Oc/Occ and Ic/Icc rotate the outer and inner ring (counter-)clockwise.
`,
		Flag: *flag.NewFlagSet("tiles", flag.ExitOnError),
	}
	def := tiles.DefaultConfig()
	cmd.Flag.IntVar(&rows, "rows", def.Rows, "board rows")
	cmd.Flag.IntVar(&cols, "cols", def.Cols, "board columns")

	return cmd
}

func runTiles(cmd *commander.Command, args []string) error {
	if len(args) != 1 {
		cmd.Usage()
		return fmt.Errorf("%w: tiles wants FILE", errUsage)
	}
	cfg := tiles.Config{Rows: rows, Cols: cols}
	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	b, err := tiles.ReadBoard(f, cfg)
	if err != nil {
		return err
	}

	s := newSession("tiles")
	defer s.stop()
	fmt.Fprintf(stdout, "Start state: \n%s", b)
	fmt.Fprintln(stdout, "Solving...")

	began := time.Now()
	sol, err := tiles.Solve(cfg, b, s.options()...)
	elapsed := time.Since(began)
	s.log.LogSolve("board", len(sol.Moves), sol.Expanded, elapsed, err)
	if err != nil {
		return err
	}
	fmt.Fprintln(stdout, "Time: ", elapsed.Seconds())
	fmt.Fprintf(stdout, "Solution found in %d moves:\n%s\n", len(sol.Moves), strings.Join(sol.Moves, " "))

	return s.close()
}
