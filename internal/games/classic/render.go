package classic

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

const hudHeight = 1

// Layout maps board cells to screen cells. Every board cell becomes a tile of
// TileW columns: the glyph plus an optional gutter column.
type Layout struct {
	Board core.Rect // board frame, border included
	TileW int
}

// NewLayout centers the board on a w×h screen. ok is false when the screen
// cannot fit the board.
func NewLayout(w, h int, rc config.RenderConfig) (Layout, bool) {
	tileW := 1
	if rc.Gutter {
		tileW = 2
	}
	bw := snake.GridWidth*tileW + 2
	bh := snake.GridHeight + 2
	if w < bw || h < bh+hudHeight {
		return Layout{TileW: tileW}, false
	}
	x := (w - bw) / 2
	return Layout{Board: core.NewRect(x, hudHeight, bw, bh), TileW: tileW}, true
}

// Cell returns the screen coordinates of board position p.
func (l Layout) Cell(p snake.Position) (int, int) {
	return l.Board.X + 1 + p.X*l.TileW, l.Board.Y + 1 + p.Y
}

// Render draws the current state to dst.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot(), g.cfg.Render, g.title)
}

// RenderSnapshot draws s to dst. It only reads the snapshot.
func RenderSnapshot(dst *core.Screen, s Snapshot, rc config.RenderConfig, title string) {
	dst.Clear()

	layout, ok := NewLayout(dst.Width(), dst.Height(), rc)
	if !ok {
		renderOverlay(dst, core.ColorYellow, "Window too small",
			fmt.Sprintf("Need %dx%d", snake.GridWidth*layout.TileW+2, snake.GridHeight+2+hudHeight))
		return
	}

	renderHUD(dst, s, title)
	dst.DrawBox(layout.Board, core.ColorGray)

	tile, head, apple := glyph(rc.TileGlyph), glyph(rc.HeadGlyph), glyph(rc.AppleGlyph)

	if s.Apple.InBounds() {
		x, y := layout.Cell(s.Apple)
		dst.SetColor(x, y, apple, core.ColorRed)
	}

	// Tail first so the head wins when segments overlap.
	for i := len(s.Body) - 1; i >= 0; i-- {
		p := s.Body[i]
		if !p.InBounds() {
			continue
		}
		x, y := layout.Cell(p)
		if i == 0 {
			dst.SetColor(x, y, head, core.ColorBrightGreen)
		} else {
			dst.SetColor(x, y, tile, core.ColorGreen)
		}
	}

	switch s.Status {
	case snake.StatusPaused:
		renderOverlay(dst, core.ColorCyan, "Paused", "Space/P to continue")
	case snake.StatusLost:
		renderOverlay(dst, core.ColorBrightRed, "Game Over",
			fmt.Sprintf("Score %d  |  R to restart  |  Q to quit", s.Score))
	}
}

func renderHUD(dst *core.Screen, s Snapshot, title string) {
	hud := fmt.Sprintf(" %s  Score: %d  Length: %d  Speed: %.1f/s",
		title, s.Score, len(s.Body), s.TicksPerSecond)
	dst.DrawText(0, 0, hud, core.ColorBrightWhite)
}

func renderOverlay(dst *core.Screen, c core.Color, line1, line2 string) {
	w := max(utf8.RuneCountInString(line1), utf8.RuneCountInString(line2)) + 4
	box := dst.Bounds().Centered(w, 5)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, line1, c)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}

func glyph(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return '#'
	}
	return r
}
