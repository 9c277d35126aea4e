package tetris

// ClearLines removes every full row and moves the rows above it down. If a
// fixed cell sits above the visible rows the board has overflowed: a GameOver
// event is sent and nothing is changed. It returns the cleared rows, bottom
// first.
func (s *Simulation) ClearLines() []int {
	full := s.board.FullRows()
	fixed := s.cells.InState(Fixed)

	for _, c := range fixed {
		if c.Pos.Y >= Height {
			s.gameOvers.Send(GameOver{})
			return nil
		}
	}

	if len(full) == 0 {
		return nil
	}

	isFull := make([]bool, Height)
	for _, y := range full {
		isFull[y] = true
	}
	target := collapseTargets(full)

	// Clear every old position before writing any new one so a cell moving
	// into a row never has its flag erased by a cell leaving it.
	var doomed []CellID
	for _, c := range fixed {
		s.board.Set(c.Pos.X, c.Pos.Y, false)
		if isFull[c.Pos.Y] {
			doomed = append(doomed, c.ID)
		}
	}
	for _, c := range fixed {
		if isFull[c.Pos.Y] {
			continue
		}
		c.Pos.Y = target[c.Pos.Y]
		s.board.Set(c.Pos.X, c.Pos.Y, true)
	}

	s.cells.Destroy(doomed...)
	return full
}

// collapseTargets maps each visible row to its row after the given full rows
// are removed: y minus the number of full rows below it.
func collapseTargets(full []int) []int {
	target := make([]int, Height)
	for y := range Height {
		down := 0
		for _, f := range full {
			if f < y {
				down++
			}
		}
		target[y] = y - down
	}
	return target
}
