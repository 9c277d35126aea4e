package tetris

import (
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// bannerTicks is how long the reset banner stays up after an overflow
// (~1.5 seconds at 60 FPS).
const bannerTicks = 90

// Game adapts a Simulation to the platform's fixed-rate step loop: it turns
// input frames into intents, converts the tick rate into a frame duration and
// adds pause and restart.
type Game struct {
	opts     Options
	sim      *Simulation
	dt       time.Duration
	paused   bool
	banner   int
	pauseKey string // Shown in the pause overlay; empty for generic wording
}

// New creates a game with the given simulation options, ready to Step with
// the default runtime config.
func New(opts Options) *Game {
	g := &Game{opts: opts}
	g.Reset(core.DefaultConfig())
	return g
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "blockfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Blockfall"
}

// Reset starts a fresh board for the given runtime config.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	opts := g.opts
	opts.Seed = cfg.Seed
	g.sim = NewSimulation(opts)

	rate := cfg.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	g.dt = time.Second / time.Duration(rate)
	g.paused = false
	g.banner = 0
}

// SetPauseKey sets the key name the pause overlay tells the player to press.
func (g *Game) SetPauseKey(name string) {
	g.pauseKey = name
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionRestart) {
		g.sim.Reset()
		g.paused = false
		g.banner = 0
		return core.StepResult{State: g.State(), Restarted: true}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.banner > 0 {
		g.banner--
	}

	res := g.sim.Tick(g.dt, Intents{
		Left:   in.Has(core.ActionLeft),
		Right:  in.Has(core.ActionRight),
		Drop:   in.Has(core.ActionDrop),
		Rotate: in.Has(core.ActionRotate),
	})
	if res.GameOver {
		g.banner = bannerTicks
	}

	return core.StepResult{
		State:        g.State(),
		Shifted:      res.Shifted,
		Locked:       res.Locked,
		LinesCleared: len(res.ClearedRows),
		GameOver:     res.GameOver,
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Tick:   g.sim.Ticks(),
		Paused: g.paused,
	}
}

// Simulation exposes the underlying simulation for queries.
func (g *Game) Simulation() *Simulation {
	return g.sim
}

// Snapshot returns the simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	return g.sim.Snapshot()
}
