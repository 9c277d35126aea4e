package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
)

// Game is the contract between the terminal host and a game. Games contain
// pure logic; the host handles input mapping, timing and rendering.
type Game interface {
	ID() string
	Title() string

	// Reset starts over with the given runtime config.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a cleared screen buffer.
	Render(dst *core.Screen)

	State() core.GameState
}

// Options configures the terminal host.
type Options struct {
	Keys       KeyMap
	HoldWindow time.Duration
	Styles     Styles
	Logger     *log.Logger
}

// OptionsFromConfig builds host options from a loaded config.
func OptionsFromConfig(cfg config.Config, logger *log.Logger) Options {
	return Options{
		Keys:       NewKeyMap(cfg),
		HoldWindow: cfg.HoldWindow(),
		Styles:     NewStyles(cfg.Palette),
		Logger:     logger,
	}
}

// Model is the Bubble Tea model running a game.
type Model struct {
	game       Game
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	hold       *HoldTracker
	styles     Styles
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	quitting   bool
}

// pauseKeySetter is implemented by games whose pause screen names the key
// that resumes play.
type pauseKeySetter interface {
	SetPauseKey(name string)
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	styles := opts.Styles
	if styles == nil {
		styles = colorStyles
	}

	if g, ok := game.(pauseKeySetter); ok {
		g.SetPauseKey(opts.Keys.Pause.Help().Key)
	}

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:     cfg,
		keys:       opts.Keys,
		help:       help.New(),
		hold:       NewHoldTracker(opts.HoldWindow),
		styles:     styles,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "fps", m.config.TickRate)

	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Left and right become held states;
// everything else is latched until the next tick.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit requested", "tick", m.gameState.Tick)
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionLeft:
		m.hold.Press(core.ActionLeft, now)
		m.hold.Release(core.ActionRight)
	case core.ActionRight:
		m.hold.Press(core.ActionRight, now)
		m.hold.Release(core.ActionLeft)
	case core.ActionNone:
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The board has a fixed size,
// so the game keeps running; only the layout changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.logger.Debug("window resized", "width", msg.Width, "height", msg.Height)

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, a := range []core.Action{core.ActionLeft, core.ActionRight} {
		if m.hold.Held(a, now) {
			m.inputFrame.Set(a)
		}
	}

	wasPaused := m.gameState.Paused
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logResult(result, wasPaused)

	if result.Shifted || result.Restarted || result.GameOver {
		m.hold.Reset()
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logResult(result core.StepResult, wasPaused bool) {
	tick := result.State.Tick
	if result.Locked {
		m.logger.Debug("piece locked", "tick", tick)
	}
	if result.LinesCleared > 0 {
		m.logger.Debug("lines cleared", "tick", tick, "rows", result.LinesCleared)
	}
	if result.GameOver {
		m.logger.Info("board overflowed, resetting", "tick", tick)
	}
	if result.Restarted {
		m.logger.Info("board restarted")
	}
	if result.State.Paused != wasPaused {
		m.logger.Info("pause toggled", "paused", result.State.Paused, "tick", tick)
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.help.View(m.keys)
	m.screen.Resize(m.width, max(m.height-strings.Count(footer, "\n")-1, 0))

	// Render game to screen buffer
	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen, m.styles) + "\n" + footer
}

// Run starts the Bubble Tea program for the given game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: run %s: %w", game.ID(), err)
	}
	return nil
}
