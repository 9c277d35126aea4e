package tetris

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

const (
	cellCols  = 2 // Terminal columns per board cell, to keep cells roughly square
	hudHeight = 2
	boardCols = Width*cellCols + 2
	boardRows = Height + 2
)

// Render draws the HUD, the well and every visible cell.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < boardCols || h < boardRows+hudHeight {
		dst.DrawTextCentered(h/2, "Window too small")
		dst.DrawTextCentered(h/2+1, fmt.Sprintf("need %dx%d", boardCols, boardRows+hudHeight))
		return
	}

	g.renderHUD(dst)

	well := core.NewRect(core.Clamp((w-boardCols)/2, 0, w), hudHeight, boardCols, boardRows)
	dst.DrawBox(well)
	for y := range Height {
		for x := range Width {
			sx, sy := cellOrigin(well, Point{X: x, Y: y})
			dst.SetColored(sx, sy, '·', core.ColorGray)
		}
	}

	for _, c := range g.sim.Cells() {
		if !Visible(c.Pos) {
			continue
		}
		sx, sy := cellOrigin(well, c.Pos)
		color := core.PaletteColor(c.Color)
		for i := range cellCols {
			dst.SetColored(sx+i, sy, '█', color)
		}
	}

	switch {
	case g.paused:
		renderOverlay(dst, "Paused", g.pauseHint())
	case g.banner > 0:
		renderOverlay(dst, "Game Over", "Board reset")
	}
}

func (g *Game) pauseHint() string {
	if g.pauseKey == "" {
		return "Press pause to continue"
	}
	return fmt.Sprintf("Press %s to continue", g.pauseKey)
}

// cellOrigin maps a board position to the left screen column of its cell.
// Board rows grow upwards, screen rows downwards.
func cellOrigin(well core.Rect, p Point) (int, int) {
	return well.X + 1 + p.X*cellCols, well.Y + 1 + (Height - 1 - p.Y)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	snap := g.sim.Snapshot()
	piece := snap.Shape
	if piece == "" {
		piece = "-"
	}
	hud := fmt.Sprintf(" %s | Piece: %s  Settled: %d", g.Title(), piece, snap.FixedCells)
	dst.DrawText(0, 0, hud)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderOverlay draws a centered two-line message box.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w, h := dst.Width(), dst.Height()

	boxW := max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
