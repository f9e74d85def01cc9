// Package birds sorts a row of numbered birds with the fewest adjacent swaps.
//
// N birds sit on a wire in some order; in one step two neighbours trade
// places. The goal is the order 1..N. Each swap costs 1 and the search is
// guided by half the total displacement Σ|s[i]-(i+1)|: a swap moves exactly
// two birds by one position each, so the estimate never overshoots.
package birds

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/bestfirst/search"
)

// Sentinel errors.
var (
	// ErrBadSize indicates a non-positive Config.N or a row of the wrong length.
	ErrBadSize = errors.New("birds: row size does not match configuration")

	// ErrNotPermutation indicates a row that is not a permutation of 1..N.
	ErrNotPermutation = errors.New("birds: row is not a permutation of 1..N")
)

// Config fixes the number of birds on the wire.
type Config struct {
	N int
}

// DefaultConfig returns the five-bird puzzle.
func DefaultConfig() Config { return Config{N: 5} }

// State is one arrangement of the birds, left to right.
type State []int

// String renders the state as "[a b c]".
func (s State) String() string {
	return fmt.Sprint([]int(s))
}

// key is the comparable identity of a state.
func (s State) key() string {
	var b strings.Builder
	for i, v := range s {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// Solution is a shortest swap sequence.
//
//	Path  – every arrangement from the initial row to the sorted one, inclusive.
//	Moves – swap labels "i-j" (1-based positions), len(Path)-1 entries.
type Solution struct {
	Path     []State
	Moves    []string
	Expanded int
}

// Swaps returns the number of swaps in the solution.
func (s Solution) Swaps() int { return len(s.Moves) }

// Validate checks that initial is a permutation of 1..cfg.N.
func (cfg Config) Validate(initial []int) error {
	if cfg.N < 1 || len(initial) != cfg.N {
		return fmt.Errorf("%w: N=%d, row has %d", ErrBadSize, cfg.N, len(initial))
	}
	seen := make([]bool, cfg.N+1)
	for _, v := range initial {
		if v < 1 || v > cfg.N || seen[v] {
			return fmt.Errorf("%w: %v", ErrNotPermutation, initial)
		}
		seen[v] = true
	}

	return nil
}

// Solve returns a minimum-swap sequence that sorts initial.
// Search options (limits, observers, loggers) are forwarded to search.Search.
func Solve(cfg Config, initial []int, opts ...search.Option) (Solution, error) {
	if err := cfg.Validate(initial); err != nil {
		return Solution{}, err
	}

	start := make(State, len(initial))
	copy(start, initial)
	res, err := search.Search(Problem(start), opts...)
	if err != nil {
		return Solution{}, err
	}

	sol := Solution{
		Path:     res.States(),
		Moves:    res.Labels(),
		Expanded: res.Expanded,
	}

	return sol, nil
}

// Problem builds the search problem for start. The caller owns validation;
// Solve is the checked entry point.
func Problem(start State) search.Problem[State, string] {
	return search.Problem[State, string]{
		Initial:    start,
		IsGoal:     IsSorted,
		Successors: Successors,
		Heuristic:  Heuristic,
		Key:        State.key,
	}
}

// IsSorted reports whether s is 1..N.
func IsSorted(s State) bool {
	for i, v := range s {
		if v != i+1 {
			return false
		}
	}

	return true
}

// Successors returns the N-1 arrangements reachable by one adjacent swap,
// left to right. Each costs 1.
func Successors(s State) []search.Transition[State] {
	if len(s) < 2 {
		return nil
	}
	out := make([]search.Transition[State], 0, len(s)-1)
	for i := 0; i < len(s)-1; i++ {
		next := make(State, len(s))
		copy(next, s)
		next[i], next[i+1] = next[i+1], next[i]
		out = append(out, search.Transition[State]{
			To:    next,
			Label: strconv.Itoa(i+1) + "-" + strconv.Itoa(i+2),
			Cost:  1,
		})
	}

	return out
}

// Heuristic is half the summed displacement of every bird from its home seat.
func Heuristic(s State) float64 {
	var d int
	for i, v := range s {
		diff := v - (i + 1)
		if diff < 0 {
			diff = -diff
		}
		d += diff
	}

	return float64(d) / 2
}

// ReadRows parses one whitespace-separated row of integers per non-blank line.
func ReadRows(r io.Reader) ([][]int, error) {
	var rows [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, fmt.Errorf("birds: line %d: %w", line, err)
			}
			row[i] = v
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return rows, nil
}
