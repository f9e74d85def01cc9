package tiles

import (
	"fmt"
	"strconv"
)

// move is a named cyclic shift: the tile at path[i] goes to path[i+1]
// (forward) or path[i-1] (backward), wrapping around.
type move struct {
	name    string
	path    []int
	forward bool
}

// apply returns a new cell slice with the shift applied.
func (m move) apply(cells []int) []int {
	out := make([]int, len(cells))
	copy(out, cells)
	n := len(m.path)
	for i, from := range m.path {
		var to int
		if m.forward {
			to = m.path[(i+1)%n]
		} else {
			to = m.path[(i+n-1)%n]
		}
		out[to] = cells[from]
	}

	return out
}

// moveTable lists every legal move on a board shape, in successor order:
// R1 L1 R2 L2 …, D1 U1 D2 U2 …, Oc Occ, then Ic Icc when an inner ring exists.
type moveTable struct {
	moves  []move
	byName map[string]int
}

func newMoveTable(cfg Config) *moveTable {
	t := &moveTable{byName: make(map[string]int)}

	for r := 0; r < cfg.Rows; r++ {
		path := make([]int, cfg.Cols)
		for c := range path {
			path[c] = r*cfg.Cols + c
		}
		label := strconv.Itoa(r + 1)
		t.add(move{name: "R" + label, path: path, forward: true})
		t.add(move{name: "L" + label, path: path, forward: false})
	}
	for c := 0; c < cfg.Cols; c++ {
		path := make([]int, cfg.Rows)
		for r := range path {
			path[r] = r*cfg.Cols + c
		}
		label := strconv.Itoa(c + 1)
		t.add(move{name: "D" + label, path: path, forward: true})
		t.add(move{name: "U" + label, path: path, forward: false})
	}

	outer := ring(cfg, 0, 0, cfg.Rows-1, cfg.Cols-1)
	t.add(move{name: "Oc", path: outer, forward: true})
	t.add(move{name: "Occ", path: outer, forward: false})
	if cfg.Rows-2 >= 2 && cfg.Cols-2 >= 2 {
		inner := ring(cfg, 1, 1, cfg.Rows-2, cfg.Cols-2)
		t.add(move{name: "Ic", path: inner, forward: true})
		t.add(move{name: "Icc", path: inner, forward: false})
	}

	return t
}

func (t *moveTable) add(m move) {
	t.byName[m.name] = len(t.moves)
	t.moves = append(t.moves, m)
}

func (t *moveTable) lookup(name string) (move, bool) {
	i, ok := t.byName[name]
	if !ok {
		return move{}, false
	}

	return t.moves[i], true
}

// ring returns the border of the rectangle [top..bottom]×[left..right]
// clockwise from its top-left corner. The rectangle must be at least 2×2.
func ring(cfg Config, top, left, bottom, right int) []int {
	at := func(r, c int) int { return r*cfg.Cols + c }
	path := make([]int, 0, 2*(bottom-top+right-left))
	for c := left; c <= right; c++ {
		path = append(path, at(top, c))
	}
	for r := top + 1; r <= bottom; r++ {
		path = append(path, at(r, right))
	}
	for c := right - 1; c >= left; c-- {
		path = append(path, at(bottom, c))
	}
	for r := bottom - 1; r > top; r-- {
		path = append(path, at(r, left))
	}

	return path
}

// Moves returns the names of every move available on cfg, in successor order.
func Moves(cfg Config) []string {
	t := newMoveTable(cfg)
	out := make([]string, len(t.moves))
	for i, m := range t.moves {
		out[i] = m.name
	}

	return out
}

// Apply returns the board obtained by making the named move on b.
// b itself is left unchanged.
func Apply(b Board, name string) (Board, error) {
	m, ok := newMoveTable(b.cfg).lookup(name)
	if !ok {
		return Board{}, fmt.Errorf("%w: %q on %dx%d board", ErrUnknownMove, name, b.cfg.Rows, b.cfg.Cols)
	}

	return Board{cfg: b.cfg, cells: m.apply(b.cells)}, nil
}

// ApplyAll applies moves in order.
func ApplyAll(b Board, names ...string) (Board, error) {
	t := newMoveTable(b.cfg)
	for _, name := range names {
		m, ok := t.lookup(name)
		if !ok {
			return Board{}, fmt.Errorf("%w: %q", ErrUnknownMove, name)
		}
		b = Board{cfg: b.cfg, cells: m.apply(b.cells)}
	}

	return b, nil
}
