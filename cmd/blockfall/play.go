package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play blockfall",
	Long: `Start a game in the terminal.

Controls (default bindings, see 'blockfall config'):
  Left/A, Right/D   - Move (hold to repeat)
  Up/W              - Rotate
  Down/S/Space      - Drop
  P                 - Pause
  R                 - Restart
  ?                 - More keys
  Q/Ctrl+C          - Quit

Examples:
  blockfall play
  blockfall play --seed 42 --fps 30
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The TUI owns the terminal, so logs are dropped unless --log-file is set
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close on exit

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", cfg.Source)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	tickRate := cfg.Timing.TickRate
	if cmd.Flags().Changed("fps") {
		tickRate = flagFPS
	}
	if tickRate <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", tickRate)
	}

	rtCfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: tickRate,
		Seed:     flagSeed,
	}

	game := tetris.New(tetris.Options{
		FallInterval:  cfg.FallInterval(),
		InputInterval: cfg.InputInterval(),
		Colors:        len(cfg.Palette),
		Catalog:       tetris.DefaultCatalog(),
	})

	return tui.Run(game, rtCfg, tui.OptionsFromConfig(cfg, logger))
}
