package snake

import (
	"fmt"

	"github.com/vovakirdan/gridsnake/internal/core"
)

const hudHeight = 2 // HUD line plus separator

// layout is where the board lands on screen for the current viewport.
type layout struct {
	offsetX int
	offsetY int
	cellW   int // Terminal columns per grid cell
	fits    bool
}

// computeLayout centers the board under the HUD. Cells are two columns wide
// when there is room so the board looks roughly square.
func computeLayout(screenW, screenH int, g Grid) layout {
	for _, cellW := range []int{2, 1} {
		boxW := g.Cols*cellW + 2
		boxH := g.Rows + 2
		if screenW >= boxW && screenH >= hudHeight+boxH {
			return layout{
				offsetX: (screenW - boxW) / 2,
				offsetY: hudHeight,
				cellW:   cellW,
				fits:    true,
			}
		}
	}
	return layout{}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.Snapshot()

	g.renderHUD(dst, snap)

	l := computeLayout(dst.Width(), dst.Height(), g.world.Grid())
	if !l.fits {
		renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	renderBoard(dst, l, snap)

	switch snap.State {
	case StateGameOver:
		renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d", snap.Score))
	case StatePaused:
		renderOverlay(dst, "Paused", "Space: play  R: restart")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, snap Snapshot) {
	hud := fmt.Sprintf(" Snake | Score: %d  Best: %d  Length: %d", snap.Score, max(snap.HighScore, snap.Score), len(snap.Trail))
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the frame, the empty cells, the food and the snake.
func renderBoard(dst *core.Screen, l layout, snap Snapshot) {
	box := core.NewRect(l.offsetX, l.offsetY, snap.Cols*l.cellW+2, snap.Rows+2)
	dst.DrawBox(box, core.ColorGreen)

	cell := func(p Point, r rune, c core.Color) {
		x := l.offsetX + 1 + p.X*l.cellW
		y := l.offsetY + 1 + p.Y
		for i := 0; i < l.cellW; i++ {
			dst.SetColored(x+i, y, r, c)
		}
	}

	for y := 0; y < snap.Rows; y++ {
		for x := 0; x < snap.Cols; x++ {
			sx := l.offsetX + 1 + x*l.cellW
			dst.SetColored(sx, l.offsetY+1+y, '·', core.ColorGray)
		}
	}

	for _, f := range snap.Food {
		x := l.offsetX + 1 + f.X*l.cellW
		dst.SetColored(x, l.offsetY+1+f.Y, '●', core.ColorBrightRed)
	}

	for i, p := range snap.Trail {
		if i == len(snap.Trail)-1 {
			cell(p, '█', core.ColorBrightGreen)
		} else {
			cell(p, '▓', core.ColorGreen)
		}
	}
}

// renderOverlay draws a centered box with two lines of text.
func renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	boxW := maxLen + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorYellow)

	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}
