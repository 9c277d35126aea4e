// Package tetris implements the falling-block rules simulation: board
// occupancy, the active piece, movement and rotation legality, gravity and
// locking, line clearing and game-over reset. It has no terminal or timing
// dependencies; hosts drive it through Simulation.Tick or the Game adapter.
package tetris

import "time"

// Board dimensions in cells.
const (
	Width  = 10
	Height = 18

	// HiddenRows are stored above the visible area so a piece that locks while
	// partly above the board is recorded before the overflow check fires.
	HiddenRows = 4
)

// Pixel size of one cell for graphical hosts. The simulation never uses these.
const (
	UnitWidth    = 40
	UnitHeight   = 40
	ScreenWidth  = UnitWidth * Width
	ScreenHeight = UnitHeight * Height
)

// Default cadence and palette size.
const (
	DefaultFallInterval  = 400 * time.Millisecond
	DefaultInputInterval = 100 * time.Millisecond
	DefaultColors        = 6
)

// Point is an integer board coordinate or offset. Y grows upwards: row 0 is
// the floor.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Visible reports whether p lies inside the playable Width x Height area.
func Visible(p Point) bool {
	return p.X >= 0 && p.X < Width && p.Y >= 0 && p.Y < Height
}
