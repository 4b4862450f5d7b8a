package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.engine == nil {
		return
	}
	if g.TooSmall() {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", g.columns+2, g.rows+2+hudHeight))
		return
	}

	frame := core.CenteredRect(dst.Width(), dst.Height()-hudHeight, g.columns+2, g.rows+2)
	frame.Y += hudHeight
	dst.DrawBox(frame, core.ColorGray)

	ox, oy := frame.X+1, frame.Y+1
	if apple := g.engine.ApplePosition(); apple != core.NoPosition {
		dst.SetColored(ox+apple.X, oy+apple.Y, '*', core.ColorRed)
	}
	for i, seg := range g.engine.body {
		if i == 0 {
			dst.SetColored(ox+seg.X, oy+seg.Y, 'O', core.ColorBrightGreen)
		} else {
			dst.SetColored(ox+seg.X, oy+seg.Y, 'o', core.ColorGreen)
		}
	}

	switch {
	case g.engine.Won():
		g.renderOverlay(dst, "Board cleared!", fmt.Sprintf("Final Score: %d", g.engine.Score()))
	case g.engine.IsGameOver():
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake  Score: %d  Board: %s", g.Score(), g.ID())
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := core.Clamp(max(len([]rune(line1)), len([]rune(line2)))+4, 0, dst.Width())
	box := core.CenteredRect(dst.Width(), dst.Height(), w, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorYellow)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
