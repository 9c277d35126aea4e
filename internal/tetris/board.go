package tetris

import (
	"fmt"
	"strings"
)

// Board is the occupancy grid of settled cells, indexed [row][col] with row 0
// at the bottom. A cell is occupied iff a fixed cell sits on it.
//
// Indexing outside the stored area is a programming error and panics;
// callers bound-check with InBounds or Visible first.
type Board struct {
	rows [][]bool
}

// NewBoard returns an empty board with Height visible rows plus HiddenRows.
func NewBoard() *Board {
	b := &Board{rows: make([][]bool, Height+HiddenRows)}
	for y := range b.rows {
		b.rows[y] = make([]bool, Width)
	}
	return b
}

// InBounds reports whether (x, y) is stored by the board, hidden rows included.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < len(b.rows)
}

func (b *Board) check(x, y int) {
	if !b.InBounds(x, y) {
		panic(fmt.Sprintf("tetris: board index (%d, %d) out of range", x, y))
	}
}

// Occupied reports whether a fixed cell sits at (x, y).
func (b *Board) Occupied(x, y int) bool {
	b.check(x, y)
	return b.rows[y][x]
}

// Set marks (x, y) as occupied or empty.
func (b *Board) Set(x, y int, occupied bool) {
	b.check(x, y)
	b.rows[y][x] = occupied
}

// Reset marks every cell empty, hidden rows included.
func (b *Board) Reset() {
	for y := range b.rows {
		clear(b.rows[y])
	}
}

// RowFull reports whether every column of visible row y is occupied.
func (b *Board) RowFull(y int) bool {
	b.check(0, y)
	for _, occupied := range b.rows[y] {
		if !occupied {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all full visible rows, bottom first.
func (b *Board) FullRows() []int {
	var full []int
	for y := range Height {
		if b.RowFull(y) {
			full = append(full, y)
		}
	}
	return full
}

// Count returns the number of occupied cells in the whole stored area.
func (b *Board) Count() int {
	n := 0
	for _, row := range b.rows {
		for _, occupied := range row {
			if occupied {
				n++
			}
		}
	}
	return n
}

// String draws the visible rows top-down, '#' for occupied and '.' for empty.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((Width + 1) * Height)
	for y := Height - 1; y >= 0; y-- {
		for _, occupied := range b.rows[y] {
			if occupied {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		if y > 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
