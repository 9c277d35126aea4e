package tetris

// Snapshot captures the simulation state for determinism testing and debugging.
type Snapshot struct {
	Tick       uint64
	Shape      string  // Shape of the active piece, empty between lock and spawn
	Piece      []Point // Active piece positions in spawn order
	FixedCells int
	Board      string // Visible rows as drawn by Board.String
}

// Snapshot returns the current simulation snapshot.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:  s.tick,
		Board: s.board.String(),
	}
	for _, c := range s.cells.All() {
		switch c.State {
		case Free:
			snap.Shape = c.Shape
			snap.Piece = append(snap.Piece, c.Pos)
		case Fixed:
			snap.FixedCells++
		}
	}
	return snap
}
