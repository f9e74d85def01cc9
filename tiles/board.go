// Package tiles solves the rotation puzzle: an R×C board holding the numbers
// 1..R*C, rearranged by sliding whole rows or columns with wrap-around and by
// rotating the outer ring (and, on boards large enough to have one, the inner
// ring) one cell clockwise or counter-clockwise. The goal is row-major order.
//
// Every move costs 1. The heuristic sums, per tile, the Manhattan distance to
// its home cell measured the short way around each axis, and divides by the
// longer board side because one move shifts up to that many tiles at once.
// Ring rotations shift more tiles than that, so the estimate is not admissible
// and solutions are short but not guaranteed shortest.
package tiles

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Sentinel errors.
var (
	// ErrBadBoard indicates a board that is not a permutation of 1..Rows*Cols,
	// or a Config smaller than 2×2.
	ErrBadBoard = errors.New("tiles: invalid board")

	// ErrUnknownMove indicates a move name not available on the board.
	ErrUnknownMove = errors.New("tiles: unknown move")
)

// Config fixes the board shape.
type Config struct {
	Rows, Cols int
}

// DefaultConfig returns the classic 5×5 board.
func DefaultConfig() Config { return Config{Rows: 5, Cols: 5} }

// Validate reports ErrBadBoard for boards smaller than 2×2.
func (cfg Config) Validate() error {
	if cfg.Rows < 2 || cfg.Cols < 2 {
		return fmt.Errorf("%w: %dx%d board", ErrBadBoard, cfg.Rows, cfg.Cols)
	}

	return nil
}

// Size returns Rows*Cols.
func (cfg Config) Size() int { return cfg.Rows * cfg.Cols }

// Board is an immutable tile arrangement. The zero value is not usable;
// build boards with NewBoard, Goal or Apply.
type Board struct {
	cfg   Config
	cells []int // row-major, never mutated after construction
}

// NewBoard validates cells as a row-major permutation of 1..Rows*Cols and
// returns a Board holding a private copy.
func NewBoard(cfg Config, cells []int) (Board, error) {
	if err := cfg.Validate(); err != nil {
		return Board{}, err
	}
	n := cfg.Size()
	if len(cells) != n {
		return Board{}, fmt.Errorf("%w: want %d tiles, got %d", ErrBadBoard, n, len(cells))
	}
	seen := make([]bool, n+1)
	for _, v := range cells {
		if v < 1 || v > n || seen[v] {
			return Board{}, fmt.Errorf("%w: tile %d repeated or out of range", ErrBadBoard, v)
		}
		seen[v] = true
	}
	own := make([]int, n)
	copy(own, cells)

	return Board{cfg: cfg, cells: own}, nil
}

// Goal returns the solved board 1..Rows*Cols.
func Goal(cfg Config) Board {
	cells := make([]int, cfg.Size())
	for i := range cells {
		cells[i] = i + 1
	}

	return Board{cfg: cfg, cells: cells}
}

// Config returns the board shape.
func (b Board) Config() Config { return b.cfg }

// At returns the tile at row r, column c (0-based).
func (b Board) At(r, c int) int { return b.cells[r*b.cfg.Cols+c] }

// Cells returns a row-major copy of the tiles.
func (b Board) Cells() []int {
	out := make([]int, len(b.cells))
	copy(out, b.cells)

	return out
}

// IsGoal reports whether the tiles are in row-major order.
func (b Board) IsGoal() bool {
	for i, v := range b.cells {
		if v != i+1 {
			return false
		}
	}

	return true
}

// Equal reports whether two boards have the same shape and tiles.
func (b Board) Equal(o Board) bool {
	if b.cfg != o.cfg || len(b.cells) != len(o.cells) {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}

	return true
}

// key packs the tiles into a comparable string.
func (b Board) key() string {
	buf := make([]byte, 0, len(b.cells)*2)
	for _, v := range b.cells {
		buf = binary.AppendUvarint(buf, uint64(v))
	}

	return string(buf)
}

// String renders the board one row per line, each tile right-aligned in 3 columns.
func (b Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.cfg.Rows; r++ {
		for c := 0; c < b.cfg.Cols; c++ {
			fmt.Fprintf(&sb, "%3d ", b.At(r, c))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// ReadBoard reads Rows*Cols whitespace-separated integers in row-major order.
// Line breaks are not significant.
func ReadBoard(r io.Reader, cfg Config) (Board, error) {
	var cells []int
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	for sc.Scan() {
		v, err := strconv.Atoi(sc.Text())
		if err != nil {
			return Board{}, fmt.Errorf("%w: %v", ErrBadBoard, err)
		}
		cells = append(cells, v)
	}
	if err := sc.Err(); err != nil {
		return Board{}, err
	}

	return NewBoard(cfg, cells)
}
