package tetris

import "slices"

// Fall lowers the active piece by one row, or locks it when any of its cells
// rests on the floor or on a fixed cell. It reports whether a lock happened.
func (s *Simulation) Fall() bool {
	free := s.cells.InState(Free)
	if len(free) == 0 {
		return false
	}

	if slices.ContainsFunc(free, s.grounded) {
		s.lock(free)
		return true
	}

	for _, c := range free {
		c.Pos.Y--
	}
	return false
}

func (s *Simulation) grounded(c *Cell) bool {
	if c.Pos.Y == 0 {
		return true
	}
	below := c.Pos.Y - 1
	return s.board.InBounds(c.Pos.X, below) && s.board.Occupied(c.Pos.X, below)
}

// lock fixes the given cells into the board and requests the next piece.
func (s *Simulation) lock(free []*Cell) {
	for _, c := range free {
		c.State = Fixed
		s.board.Set(c.Pos.X, c.Pos.Y, true)
	}
	s.spawns.Send(SpawnRequested{})
}
