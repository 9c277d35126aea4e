package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes [name...]",
	Short: "Show the piece catalog",
	Long: `Shows pieces with their offsets from the rotation anchor, drawn in the configured palette.
With no arguments every piece is shown; otherwise only the named ones (case-insensitive).`,
	Example: "  blockfall shapes\n  blockfall shapes t i",
	RunE:    runShapes,
}

// selectShapes resolves piece names against the catalog. No names selects
// the whole catalog.
func selectShapes(catalog tetris.Catalog, names []string) (tetris.Catalog, error) {
	if len(names) == 0 {
		return catalog, nil
	}
	selected := make(tetris.Catalog, 0, len(names))
	for _, name := range names {
		shape, ok := catalog.Lookup(name)
		if !ok {
			return nil, fmt.Errorf("unknown piece %q", name)
		}
		selected = append(selected, shape)
	}
	return selected, nil
}

func runShapes(cmd *cobra.Command, args []string) error {
	catalog := tetris.DefaultCatalog()
	shapes, err := selectShapes(catalog, args)
	if err != nil {
		return err
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Pieces:")
	fmt.Fprintln(out)

	for _, shape := range shapes {
		i := slices.Index(catalog, shape)
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(cfg.Palette[i%len(cfg.Palette)]))

		offsets := make([]string, len(shape.Offsets))
		for j, o := range shape.Offsets {
			offsets[j] = fmt.Sprintf("(%d,%d)", o.X, o.Y)
		}
		fmt.Fprintf(out, "  %s  %s\n", shape.Name, strings.Join(offsets, " "))

		for _, line := range shape.Lines("██") {
			fmt.Fprintf(out, "     %s\n", style.Render(line))
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Board: %dx%d, pieces spawn with their anchor at (%d,%d).\n",
		tetris.Width, tetris.Height, tetris.SpawnOrigin().X, tetris.SpawnOrigin().Y)
	return nil
}
