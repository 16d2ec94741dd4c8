package t2048

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/vovakirdan/tilt2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 2 // Height of each cell (including top border)
	hudHeight  = 3
)

// tileColors walks up the palette as tiles grow; values past the end reuse
// the last color.
var tileColors = []core.Color{
	core.ColorGray,          // 2
	core.ColorWhite,         // 4
	core.ColorYellow,        // 8
	core.ColorOrange,        // 16
	core.ColorRed,           // 32
	core.ColorMagenta,       // 64
	core.ColorBlue,          // 128
	core.ColorCyan,          // 256
	core.ColorGreen,         // 512
	core.ColorBrightYellow,  // 1024
	core.ColorBrightRed,     // 2048
	core.ColorBrightMagenta, // 4096+
}

// TileColor returns the display color for a tile value.
func TileColor(value int) core.Color {
	if value <= 0 {
		return core.ColorDefault
	}
	i := bits.TrailingZeros(uint(value)) - 1
	if i < 0 {
		i = 0
	}
	if i >= len(tileColors) {
		i = len(tileColors) - 1
	}
	return tileColors[i]
}

// boardDims returns the drawn board size in characters, borders included.
func boardDims(size int) (w, h int) {
	return size*cellWidth + 1, size*cellHeight + 1
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(g.screenH/2, "Window too small")
		dst.DrawTextCentered(g.screenH/2+1, "Please resize terminal")
		return
	}

	boardW, boardH := boardDims(g.model.Size())
	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX, boardW)
	renderBoard(dst, g.model, boardX, boardY)

	if g.model.GameOver() {
		g.renderOverlay(dst, boardX+boardW/2, boardY+boardH/2)
	}
}

// renderHUD draws the title and the score line.
func (g *Game) renderHUD(dst *core.Screen, boardX, boardW int) {
	title := g.Title()
	dst.DrawText(boardX+(boardW-len(title))/2, 0, title)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.model.Score()))

	best := fmt.Sprintf("Best: %d", g.model.MaxScore())
	dst.DrawText(boardX+boardW-len(best), 1, best)

	goal := fmt.Sprintf("Goal: %d", g.model.MaxPiece())
	dst.DrawText(boardX+(boardW-len(goal))/2, 2, goal)
}

// renderBoard draws the grid lines and the tiles, top row first.
func renderBoard(dst *core.Screen, m *Model, boardX, boardY int) {
	n := m.Size()
	for y, yEnd := 0, n+1; y < yEnd; y++ {
		for x, xEnd := 0, n+1; x < xEnd; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.Set(px, py, corner(x, y, n))

			if x < n {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < n {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	for y, yEnd := 0, n; y < yEnd; y++ {
		row := n - 1 - y
		for col, colEnd := 0, n; col < colEnd; col++ {
			t, ok := m.Tile(col, row)
			if !ok {
				continue
			}
			text := strconv.Itoa(t.Value())
			pad := max((cellWidth-1-len(text))/2, 0)
			dst.DrawTextColored(boardX+col*cellWidth+1+pad, boardY+y*cellHeight+1, text, TileColor(t.Value()))
		}
	}
}

func corner(x, y, n int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == n:
		return '┐'
	case y == n && x == 0:
		return '└'
	case y == n && x == n:
		return '┘'
	case y == 0:
		return '┬'
	case y == n:
		return '┴'
	case x == 0:
		return '├'
	case x == n:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlay draws the end-of-game box centered on the board.
func (g *Game) renderOverlay(dst *core.Screen, centerX, centerY int) {
	headline := "GAME OVER"
	if g.State().Won {
		headline = fmt.Sprintf("%d REACHED!", g.model.MaxPiece())
	}
	lines := []string{
		headline,
		fmt.Sprintf("Score: %d", g.model.Score()),
		"Press R to restart",
	}

	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD: Tilt | R: Restart | Q: Quit"
}
