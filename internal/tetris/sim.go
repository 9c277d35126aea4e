package tetris

import (
	"math/rand"
	"time"
)

// Options configures a Simulation.
type Options struct {
	FallInterval  time.Duration // Gravity, lock and line-clear cadence
	InputInterval time.Duration // Horizontal auto-repeat cadence
	Colors        int           // Palette size; each piece gets a random index below it
	Seed          int64         // RNG seed for shapes and colors
	Catalog       Catalog       // Shapes to draw from; nil means DefaultCatalog
}

// DefaultOptions returns the standard cadence with seed 0.
func DefaultOptions() Options {
	return Options{
		FallInterval:  DefaultFallInterval,
		InputInterval: DefaultInputInterval,
		Colors:        DefaultColors,
		Catalog:       DefaultCatalog(),
	}
}

// Intents are the player commands for one tick. Left and Right are held
// states sampled whenever the input timer fires; Drop and Rotate are
// one-shot presses.
type Intents struct {
	Left   bool
	Right  bool
	Drop   bool
	Rotate bool
}

// TickResult reports what happened during one Tick.
type TickResult struct {
	Shifted     bool  // A horizontal move was applied
	Dropped     bool  // The piece was slammed down
	Rotated     bool  // The piece was rotated
	Locked      bool  // The piece was fixed into the board
	ClearedRows []int // Rows removed, bottom first
	GameOver    bool  // The board overflowed and was reset
	Spawned     bool  // A new piece appeared
}

// Simulation owns the board, every cell, both timers and the event queues.
// It is not safe for concurrent use.
type Simulation struct {
	opts  Options
	board *Board
	cells *Arena
	rng   *rand.Rand
	fall  *Timer
	input *Timer

	spawns    Queue[SpawnRequested]
	gameOvers Queue[GameOver]

	tick uint64
}

// NewSimulation creates a simulation with an empty board and a pending spawn
// request, so the first Tick brings in the first piece.
func NewSimulation(opts Options) *Simulation {
	if len(opts.Catalog) == 0 {
		opts.Catalog = DefaultCatalog()
	}
	if opts.Colors <= 0 {
		opts.Colors = 1
	}

	s := &Simulation{
		opts:  opts,
		board: NewBoard(),
		cells: NewArena(),
		rng:   rand.New(rand.NewSource(opts.Seed)),
		fall:  NewTimer(opts.FallInterval),
		input: NewTimer(opts.InputInterval),
	}
	s.Reset()
	return s
}

// Reset empties the board, destroys every cell and requests a new piece. The
// RNG stream continues, so successive games differ.
func (s *Simulation) Reset() {
	s.clearBoard()
	s.fall.Reset()
	s.input.Reset()
	s.spawns.Drain()
	s.gameOvers.Drain()
	s.tick = 0
	s.spawns.Send(SpawnRequested{})
}

// Tick advances the simulation by dt. Steps run in a fixed order so later
// steps observe what earlier ones did in the same tick:
//
//  1. advance the fall and input timers
//  2. horizontal move (input timer), drop, rotate
//  3. gravity and lock (fall timer)
//  4. line clearing (fall timer)
//  5. game-over reset
//  6. spawn, resetting the board first if the new piece would overlap it
func (s *Simulation) Tick(dt time.Duration, in Intents) TickResult {
	s.tick++
	var res TickResult

	fall := s.fall.Advance(dt)
	repeat := s.input.Advance(dt)

	if repeat {
		if in.Left && s.MoveLeft() {
			res.Shifted = true
		}
		if in.Right && s.MoveRight() {
			res.Shifted = true
		}
	}
	if in.Drop {
		res.Dropped = s.Drop()
	}
	if in.Rotate {
		res.Rotated = s.Rotate()
	}

	if fall {
		res.Locked = s.Fall()
		res.ClearedRows = s.ClearLines()
	}

	res.GameOver = s.handleGameOver()
	spawned, blocked := s.handleSpawn()
	res.Spawned = spawned
	res.GameOver = res.GameOver || blocked
	return res
}

func (s *Simulation) handleGameOver() bool {
	if len(s.gameOvers.Drain()) == 0 {
		return false
	}
	s.clearBoard()
	s.spawns.Send(SpawnRequested{})
	return true
}

// handleSpawn brings in the next piece. A piece that would appear on top of
// fixed cells has nowhere to go, so the board is reset before it spawns.
func (s *Simulation) handleSpawn() (spawned, blocked bool) {
	if len(s.spawns.Drain()) == 0 {
		return false, false
	}
	shape := s.opts.Catalog.Next(s.rng)
	color := s.rng.Intn(s.opts.Colors)
	if s.blocked(shape) {
		s.clearBoard()
		blocked = true
	}
	s.Spawn(shape, color)
	return true, blocked
}

func (s *Simulation) blocked(shape Shape) bool {
	origin := SpawnOrigin()
	for _, off := range shape.Offsets {
		if s.Occupied(origin.Add(off)) {
			return true
		}
	}
	return false
}

func (s *Simulation) clearBoard() {
	s.board.Reset()
	s.cells.Clear()
}

// Spawn places a new free piece with its anchor at SpawnOrigin. Cells may
// start above the visible rows.
func (s *Simulation) Spawn(shape Shape, color int) {
	origin := SpawnOrigin()
	for _, off := range shape.Offsets {
		s.cells.Spawn(origin.Add(off), off, color, shape.Name)
	}
}

// Cells returns a copy of every live cell, free and fixed, in spawn order.
func (s *Simulation) Cells() []Cell {
	return s.cells.All()
}

// ActivePiece returns a copy of the free cells.
func (s *Simulation) ActivePiece() []Cell {
	free := s.cells.InState(Free)
	out := make([]Cell, len(free))
	for i, c := range free {
		out[i] = *c
	}
	return out
}

// Occupied reports whether a fixed cell sits at the visible position p.
// Positions outside the visible board report false.
func (s *Simulation) Occupied(p Point) bool {
	return Visible(p) && s.board.Occupied(p.X, p.Y)
}

// Ticks returns the number of ticks since the last Reset.
func (s *Simulation) Ticks() uint64 {
	return s.tick
}

// Board returns the occupancy grid. Callers must not modify it.
func (s *Simulation) Board() *Board {
	return s.board
}
