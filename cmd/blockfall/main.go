// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall play              - Play in the terminal
//	blockfall shapes            - Show the piece catalog
//	blockfall config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible games
//	--config <path>       - Use a custom config YAML
//	--log-file <path>     - Write logs to a file while playing
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "Blockfall - falling blocks in your terminal",
	Long: `Blockfall is a falling-block puzzle game for the terminal. Pieces fall
onto a 10x18 board; complete rows disappear and the stack above moves down.
When the stack overflows the top, the board is cleared and play goes on.

Available commands:
  play     - Start a game
  shapes   - Show the pieces
  config   - Print the effective configuration

Examples:
  blockfall play
  blockfall play --seed 42
  blockfall play --config ./blockfall.yaml --log-file blockfall.log --log-level debug
  blockfall config --default > ~/.blockfall/blockfall.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second), overrides config")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(shapesCmd)
	rootCmd.AddCommand(configCmd)
}
