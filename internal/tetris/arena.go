package tetris

import (
	"github.com/kamstrup/intmap"
)

// CellState discriminates the player-controlled piece from settled cells.
type CellState uint8

const (
	// Free cells belong to the active piece and are not recorded in the Board.
	Free CellState = iota
	// Fixed cells are locked and mirrored by Board occupancy.
	Fixed
)

// String returns a human-readable name for the state.
func (s CellState) String() string {
	switch s {
	case Free:
		return "free"
	case Fixed:
		return "fixed"
	default:
		return "unknown"
	}
}

// CellID identifies a cell for its whole lifetime.
type CellID uint64

// Cell is one square of a tetromino.
type Cell struct {
	ID    CellID
	Pos   Point     // Absolute board position
	Rel   Point     // Offset from the piece's rotation anchor; changed only by rotation
	State CellState // Free while controllable, Fixed once locked
	Color int       // Palette index, cosmetic
	Shape string    // Name of the shape the cell was spawned with
}

// Arena owns every live cell in spawn order, with an id index for lookups.
// Pointers returned by InState stay valid until the next Spawn, Destroy or
// Clear.
type Arena struct {
	next  CellID
	cells []Cell
	slots *intmap.Map[CellID, int]
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{
		cells: make([]Cell, 0, Width*Height),
		slots: intmap.New[CellID, int](Width * Height),
	}
}

// Spawn adds a free cell and returns its id.
func (a *Arena) Spawn(pos, rel Point, color int, shape string) CellID {
	a.next++
	id := a.next
	a.slots.Put(id, len(a.cells))
	a.cells = append(a.cells, Cell{
		ID:    id,
		Pos:   pos,
		Rel:   rel,
		State: Free,
		Color: color,
		Shape: shape,
	})
	return id
}

// get returns a copy of the cell with the given id.
func (a *Arena) get(id CellID) (Cell, bool) {
	slot, ok := a.slots.Get(id)
	if !ok {
		return Cell{}, false
	}
	return a.cells[slot], true
}

// Len returns the number of live cells.
func (a *Arena) Len() int {
	return len(a.cells)
}

// InState returns pointers to every cell in the given state, in spawn order.
func (a *Arena) InState(state CellState) []*Cell {
	var out []*Cell
	for i := range a.cells {
		if a.cells[i].State == state {
			out = append(out, &a.cells[i])
		}
	}
	return out
}

// All returns a copy of every live cell in spawn order.
func (a *Arena) All() []Cell {
	out := make([]Cell, len(a.cells))
	copy(out, a.cells)
	return out
}

// Destroy removes the cells with the given ids and returns how many existed.
func (a *Arena) Destroy(ids ...CellID) int {
	if len(ids) == 0 {
		return 0
	}

	drop := make([]bool, len(a.cells))
	removed := 0
	for _, id := range ids {
		if slot, ok := a.slots.Get(id); ok && !drop[slot] {
			drop[slot] = true
			removed++
		}
	}
	if removed == 0 {
		return 0
	}

	kept := a.cells[:0]
	for i, c := range a.cells {
		if !drop[i] {
			kept = append(kept, c)
		}
	}
	clear(a.cells[len(kept):])
	a.cells = kept
	a.reindex()
	return removed
}

// Clear removes every cell. Ids are never reused.
func (a *Arena) Clear() {
	a.cells = a.cells[:0]
	a.slots.Clear()
}

func (a *Arena) reindex() {
	a.slots.Clear()
	for i, c := range a.cells {
		a.slots.Put(c.ID, i)
	}
}
