package course

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/pitcourse/internal/board"
	"github.com/vovakirdan/pitcourse/internal/core"
)

// Tile is how one kind of board element is drawn.
type Tile struct {
	Glyph rune
	Color core.Color
}

// Theme holds the glyphs and colors used to draw the course.
type Theme struct {
	Safe     Tile
	Pit      Tile
	Obstacle Tile
	Goal     Tile
	Hint     Tile
	Player   Tile
	Fallen   Tile
	Life     Tile
	LifeLost Tile
	Label    core.Color // overhead index labels
	HUD      core.Color
}

// DefaultTheme returns the built-in look.
func DefaultTheme() Theme {
	return Theme{
		Safe:     Tile{Glyph: '·', Color: core.ColorGray},
		Pit:      Tile{Glyph: '○', Color: core.ColorRed},
		Obstacle: Tile{Glyph: '█', Color: core.ColorOrange},
		Goal:     Tile{Glyph: '★', Color: core.ColorBrightGreen},
		Hint:     Tile{Glyph: '•', Color: core.ColorYellow},
		Player:   Tile{Glyph: '@', Color: core.ColorBrightYellow},
		Fallen:   Tile{Glyph: '_', Color: core.ColorBrightRed},
		Life:     Tile{Glyph: '♥', Color: core.ColorBrightRed},
		LifeLost: Tile{Glyph: '♡', Color: core.ColorGray},
		Label:    core.ColorGray,
		HUD:      core.ColorCyan,
	}
}

const hudHeight = 2

// BoardOrigin returns the top-left corner of the board frame for a screen of
// the given size, and whether the board fits at all.
func BoardOrigin(screenW, screenH int, cam core.Camera) (x, y int, fits bool) {
	boardW := board.Size*cam.CellWidth() + 2
	boardH := board.Size + 2
	if screenW < boardW || screenH < hudHeight+boardH+1 {
		return 0, 0, false
	}
	return (screenW - boardW) / 2, hudHeight, true
}

// CellOrigin returns the screen position of the first column of a board
// cell. East is to the right, so column 0 is drawn last.
func CellOrigin(boardX, boardY int, c board.Coord, cam core.Camera) (x, y int) {
	return boardX + 1 + (board.Size-1-c.Col)*cam.CellWidth(), boardY + 1 + c.Row
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen, cam core.Camera) {
	dst.Clear()
	scene := g.Scene()

	g.renderHUD(dst, scene)

	bx, by, fits := BoardOrigin(dst.Width(), dst.Height(), cam)
	if !fits {
		g.renderOverlay(dst, "Window too small", "Resize or zoom out (z)")
		return
	}

	g.renderBoard(dst, scene, cam, bx, by)

	if scene.Message != "" {
		dst.DrawTextCentered(by+board.Size+2, scene.Message)
	}

	switch scene.Phase {
	case PhaseWon:
		g.renderOverlay(dst, "YOU WON THE GAME", fmt.Sprintf("Lives left: %d", scene.Lives))
	case PhaseLost:
		g.renderOverlay(dst, "LOST THE GAME", fmt.Sprintf("Last block: %d", scene.Index))
	case PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, scene Scene) {
	x := 0
	title := " " + g.Title() + " | Lives: "
	dst.DrawTextColored(x, 0, title, g.theme.HUD)
	x += len([]rune(title))

	for i := 0; i < StartLives; i++ {
		tile := g.theme.Life
		if i >= scene.Lives {
			tile = g.theme.LifeLost
		}
		dst.SetColored(x, 0, tile.Glyph, tile.Color)
		x++
	}

	jump := "ready"
	if scene.JumpArmed {
		jump = "ARMED"
	}
	dst.DrawTextColored(x, 0, fmt.Sprintf("  Block: %02d  Jump: %s", scene.Index, jump), g.theme.HUD)

	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the frame, tiles, hint trail and player.
func (g *Game) renderBoard(dst *core.Screen, scene Scene, cam core.Camera, bx, by int) {
	w := cam.CellWidth()
	dst.DrawBox(core.NewRect(bx, by, board.Size*w+2, board.Size+2))

	onHint := make(map[board.Coord]bool, len(scene.Hint))
	for _, c := range scene.Hint {
		onHint[c] = true
	}

	for _, cell := range board.Cells() {
		x, y := CellOrigin(bx, by, cell.Coord, cam)

		switch {
		case cell.Coord == scene.Coord:
			tile := g.theme.Player
			if scene.Height == Fallen {
				tile = g.theme.Fallen
			}
			drawCentered(dst, x, y, w, tile)
		case cell.Index == board.GoalIndex:
			drawCentered(dst, x, y, w, g.theme.Goal)
		case onHint[cell.Coord]:
			drawCentered(dst, x, y, w, g.theme.Hint)
		case cell.Kind == board.Pit:
			drawFilled(dst, x, y, w, g.theme.Pit)
		case cell.Kind == board.Obstacle:
			drawFilled(dst, x, y, w, g.theme.Obstacle)
		case cam.Overhead:
			dst.DrawTextColored(x, y, fmt.Sprintf("%*d", w, cell.Index), g.theme.Label)
		default:
			drawCentered(dst, x, y, w, g.theme.Safe)
		}
	}
}

func drawCentered(dst *core.Screen, x, y, w int, t Tile) {
	dst.DrawText(x, y, strings.Repeat(" ", w))
	dst.SetColored(x+(w-1)/2, y, t.Glyph, t.Color)
}

func drawFilled(dst *core.Screen, x, y, w int, t Tile) {
	for i := 0; i < w; i++ {
		dst.SetColored(x+i, y, t.Glyph, t.Color)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().Centered(width, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
