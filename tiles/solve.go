package tiles

import (
	"math"

	"github.com/katalvlaran/bestfirst/search"
)

// Solution is a move sequence that turns the initial board into the goal.
type Solution struct {
	Moves    []string
	Expanded int
}

// Solve searches for a move sequence that solves b.
// Search options (limits, observers, loggers) are forwarded to search.Search.
func Solve(cfg Config, b Board, opts ...search.Option) (Solution, error) {
	if err := cfg.Validate(); err != nil {
		return Solution{}, err
	}
	if b.cfg != cfg || len(b.cells) != cfg.Size() {
		return Solution{}, ErrBadBoard
	}

	res, err := search.Search(Problem(b), opts...)
	if err != nil {
		return Solution{}, err
	}

	return Solution{Moves: res.Labels(), Expanded: res.Expanded}, nil
}

// Problem builds the search problem starting from b.
func Problem(b Board) search.Problem[Board, string] {
	t := newMoveTable(b.cfg)

	return search.Problem[Board, string]{
		Initial: b,
		IsGoal:  Board.IsGoal,
		Successors: func(s Board) []search.Transition[Board] {
			out := make([]search.Transition[Board], len(t.moves))
			for i, m := range t.moves {
				out[i] = search.Transition[Board]{
					To:    Board{cfg: s.cfg, cells: m.apply(s.cells)},
					Label: m.name,
					Cost:  1,
				}
			}
			return out
		},
		Heuristic: Heuristic,
		Key:       Board.key,
	}
}

// Heuristic is floor(Σ wrapped Manhattan distance / max(Rows, Cols)).
// Each axis distance is the shorter of the direct and the wrap-around way.
func Heuristic(b Board) float64 {
	rows, cols := b.cfg.Rows, b.cfg.Cols
	sum := 0
	for i, v := range b.cells {
		r, c := i/cols, i%cols
		hr, hc := (v-1)/cols, (v-1)%cols
		sum += wrap(r-hr, rows) + wrap(c-hc, cols)
	}

	return math.Floor(float64(sum) / float64(max(rows, cols)))
}

// wrap returns the shorter distance between two positions d apart on a cycle of length n.
func wrap(d, n int) int {
	if d < 0 {
		d = -d
	}

	return min(d, n-d)
}
