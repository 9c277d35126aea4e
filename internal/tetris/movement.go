package tetris

// rotation is the fixed quarter-turn applied to offsets: (x, y) -> (y, -x).
var rotation = [2][2]int{{0, 1}, {-1, 0}}

func rotate(rel Point) Point {
	return Point{
		X: rotation[0][0]*rel.X + rotation[0][1]*rel.Y,
		Y: rotation[1][0]*rel.X + rotation[1][1]*rel.Y,
	}
}

// MoveLeft shifts the active piece one column left if every cell can move.
func (s *Simulation) MoveLeft() bool {
	return s.shift(-1)
}

// MoveRight shifts the active piece one column right if every cell can move.
func (s *Simulation) MoveRight() bool {
	return s.shift(1)
}

// shift moves all free cells by dx columns, or none of them. Rows above the
// board are always open; only the side walls constrain them.
func (s *Simulation) shift(dx int) bool {
	free := s.cells.InState(Free)
	if len(free) == 0 {
		return false
	}

	for _, c := range free {
		nx := c.Pos.X + dx
		if nx < 0 || nx >= Width {
			return false
		}
		if c.Pos.Y < Height && s.board.Occupied(nx, c.Pos.Y) {
			return false
		}
	}

	for _, c := range free {
		c.Pos.X += dx
	}
	return true
}

// Drop slams the active piece straight down to the lowest position it can
// reach without passing through the floor or a fixed cell. It reports false
// when the piece cannot move at all.
func (s *Simulation) Drop() bool {
	free := s.cells.InState(Free)
	if len(free) == 0 {
		return false
	}

	d := 0
	for s.canDescend(free, d+1) {
		d++
	}
	if d == 0 {
		return false
	}

	for _, c := range free {
		c.Pos.Y -= d
	}
	return true
}

func (s *Simulation) canDescend(free []*Cell, d int) bool {
	for _, c := range free {
		y := c.Pos.Y - d
		if y < 0 || s.board.Occupied(c.Pos.X, y) {
			return false
		}
	}
	return true
}

// Rotate turns the active piece a quarter around its anchor. Every rotated
// cell must land inside the visible board on an empty cell, otherwise nothing
// changes.
func (s *Simulation) Rotate() bool {
	free := s.cells.InState(Free)
	if len(free) == 0 {
		return false
	}

	for _, c := range free {
		next := c.Pos.Sub(c.Rel).Add(rotate(c.Rel))
		if !Visible(next) || s.board.Occupied(next.X, next.Y) {
			return false
		}
	}

	for _, c := range free {
		origin := c.Pos.Sub(c.Rel)
		c.Rel = rotate(c.Rel)
		c.Pos = origin.Add(c.Rel)
	}
	return true
}
