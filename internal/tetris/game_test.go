package tetris

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%40 == 0:
			inputs[i].Set(core.ActionDrop)
		case i%7 == 0:
			inputs[i].Set(core.ActionRotate)
		case i%5 < 2:
			inputs[i].Set(core.ActionLeft)
		default:
			inputs[i].Set(core.ActionRight)
		}
	}

	run := func() Snapshot {
		g := New(DefaultOptions())
		g.Reset(testConfig())
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	assert.Equal(t, run(), run())
}

func TestGameFirstStepSpawns(t *testing.T) {
	g := New(DefaultOptions())
	g.Reset(testConfig())

	res := g.Step(core.NewInputFrame())
	assert.Equal(t, uint64(1), res.State.Tick)
	assert.Len(t, g.Simulation().ActivePiece(), 4)
	assert.NotEmpty(t, g.Snapshot().Shape)
}

func TestGamePause(t *testing.T) {
	g := New(DefaultOptions())
	g.Reset(testConfig())
	g.Step(core.NewInputFrame())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	res := g.Step(pause)
	require.True(t, res.State.Paused)
	tick := res.State.Tick
	piece := g.Simulation().ActivePiece()

	for range 100 {
		in := core.NewInputFrame()
		in.Set(core.ActionDrop)
		res = g.Step(in)
	}
	assert.Equal(t, tick, res.State.Tick)
	assert.Equal(t, piece, g.Simulation().ActivePiece())

	res = g.Step(pause)
	assert.False(t, res.State.Paused)
	assert.Equal(t, tick+1, res.State.Tick)
}

func TestGameReportsShifts(t *testing.T) {
	g := New(DefaultOptions())
	g.Reset(testConfig())
	g.Step(core.NewInputFrame())

	left := core.NewInputFrame()
	left.Set(core.ActionLeft)

	// 10 frames at 60 FPS span one input interval.
	shifts := 0
	for range 10 {
		if g.Step(left).Shifted {
			shifts++
		}
	}
	assert.Equal(t, 1, shifts)

	res := g.Step(core.NewInputFrame())
	assert.False(t, res.Shifted)
}

func TestGameRestart(t *testing.T) {
	g := New(DefaultOptions())
	g.Reset(testConfig())

	drop := core.NewInputFrame()
	drop.Set(core.ActionDrop)
	for range 120 {
		g.Step(drop)
	}
	require.NotZero(t, g.State().Tick)

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	res := g.Step(restart)

	assert.True(t, res.Restarted)
	assert.Zero(t, res.State.Tick)
	assert.Empty(t, g.Simulation().Cells())

	g.Step(core.NewInputFrame())
	assert.Len(t, g.Simulation().Cells(), 4)
}

func TestGameReportsLocks(t *testing.T) {
	g := New(DefaultOptions())
	g.Reset(testConfig())
	g.Step(core.NewInputFrame())

	drop := core.NewInputFrame()
	drop.Set(core.ActionDrop)

	// The fall timer fires roughly every 24 frames at 60 FPS.
	locked := false
	for range 30 {
		if g.Step(drop).Locked {
			locked = true
			break
		}
	}
	assert.True(t, locked)
	assert.Equal(t, 4, g.Snapshot().FixedCells)
}

func TestRenderDrawsWellAndPiece(t *testing.T) {
	g := New(DefaultOptions())
	g.Reset(testConfig())
	g.Step(core.NewInputFrame())
	for range 8 {
		g.Simulation().Fall()
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.True(t, strings.HasPrefix(screen.Row(0), " Blockfall | Piece: "))

	left := (80 - boardCols) / 2
	assert.Equal(t, '┌', screen.Get(left, hudHeight))
	assert.Equal(t, '┘', screen.Get(left+boardCols-1, hudHeight+boardRows-1))

	// Anchor at (5, 9).
	x, y := left+1+5*cellCols, hudHeight+1+(Height-1-9)
	cell := screen.GetCell(x, y)
	assert.Equal(t, '█', cell.Rune)
	assert.GreaterOrEqual(t, cell.Color, core.PaletteBase)
	assert.Equal(t, '█', screen.Get(x+1, y))

	assert.Equal(t, '·', screen.Get(left+1, hudHeight+1))
}

func TestRenderSkipsHiddenRows(t *testing.T) {
	g := New(DefaultOptions())
	g.Reset(testConfig())
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	blocks := strings.Count(screen.String(), "█")
	visible := 0
	for _, c := range g.Simulation().Cells() {
		if Visible(c.Pos) {
			visible++
		}
	}
	assert.Equal(t, visible*cellCols, blocks)
}

func TestRenderTooSmall(t *testing.T) {
	g := New(DefaultOptions())
	g.Reset(testConfig())

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")
}

func TestRenderPausedOverlay(t *testing.T) {
	g := New(DefaultOptions())
	g.Reset(testConfig())
	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Paused")
	assert.Contains(t, screen.String(), "Press pause to continue")

	g.SetPauseKey("f5")
	g.Render(screen)
	assert.Contains(t, screen.String(), "Press f5 to continue")
	assert.NotContains(t, screen.String(), "Press P")
}
