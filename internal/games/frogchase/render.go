package frogchase

import (
	"fmt"

	"github.com/vovakirdan/frog-chase/internal/config"
	"github.com/vovakirdan/frog-chase/internal/core"
)

// Terminal scale: one character cell covers CellW×CellH logical pixels, so a
// tile is 4 cells wide and 2 rows tall.
const (
	CellW     = 20
	CellH     = 40
	HUDHeight = 2
)

var (
	frogSprite    = [2]string{"@..@", "(__)"}
	pelicanSprite = [2]string{"=<v>", " vv "}
	houseSprite   = [2]string{"/^^\\", "|⌂ |"}
)

// BoardSize returns the terminal size needed to draw the full level.
func (g *Game) BoardSize() (w, h int) {
	w = (g.cfg.Screen.Width + CellW - 1) / CellW
	h = (g.cfg.Screen.Height+CellH-1)/CellH + HUDHeight
	return w, h
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if w, h := g.BoardSize(); dst.Width() < w || dst.Height() < h {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d, resize to continue", w, h))
		return
	}

	g.renderHUD(dst)
	g.renderBoard(dst)

	if title, lines := g.Banner(); title != "" {
		g.renderOverlay(dst, title, lines...)
	}
}

// Banner returns the message box for the current phase, or an empty title
// when the board should be shown bare.
func (g *Game) Banner() (title string, lines []string) {
	switch {
	case g.paused:
		return "Paused", []string{"Press P to continue"}
	case g.phase == PhaseIntro:
		hint := "Arrows plan hops, Enter jumps, Esc clears"
		if g.cfg.Movement.Mode != config.ModePlanned {
			hint = "Arrows hop the frog"
		}
		return "FROG CHASE", []string{hint, "Get home before the pelican does", "Press Enter to start"}
	case g.phase == PhaseHazardHit:
		return "Trapdoor!", []string{"Back you go"}
	case g.phase == PhaseWon:
		return "Home sweet home!", []string{fmt.Sprintf("Score: %d", g.round.Score)}
	case g.phase == PhaseLost:
		line := "The pelican caught you"
		if g.round.Trigger == TriggerBird {
			line = "A pelican was behind that door"
		}
		return "Gulp!", []string{line}
	case g.phase == PhaseGameOver:
		return "Game Over", []string{fmt.Sprintf("Score: %d", g.round.Score), "Play again? (Y/N)"}
	}
	return "", nil
}

// HUD returns the status line drawn above the board.
func (g *Game) HUD() string {
	r := g.round
	hud := fmt.Sprintf(" %s | Round %d | Steps %d | Trapdoors %d", g.Title(), r.Number, r.Steps, r.Hazards)
	if g.cfg.Movement.Mode == config.ModePlanned && g.phase == PhasePlaying {
		state := "planning"
		if g.executing {
			state = "jumping"
		}
		hud += fmt.Sprintf(" | Plan %d (%s)", len(g.plan), state)
	}
	return hud
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(0, 0, g.HUD(), core.ColorWhite)

	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderBoard draws back to front: tile dots, rocks, doors, house, sprites.
func (g *Game) renderBoard(dst *core.Screen) {
	tile := g.cfg.Screen.TileSize
	for y := 0; y < g.cfg.Screen.Height; y += tile {
		for x := 0; x < g.cfg.Screen.Width; x += tile {
			cx, cy := toCell(core.Pt(x, y))
			dst.SetColored(cx, cy, '·', core.ColorGray)
		}
	}

	for _, p := range g.round.Obstacles.All() {
		dst.DrawRect(g.tileCells(p), '▓', core.ColorGray)
	}

	for _, m := range g.round.Markers {
		cells := g.tileCells(m.Tile)
		dst.DrawRect(cells, '▒', core.ColorRed)
		dst.SetColored(cells.X+cells.W/2-1, cells.Y, '?', core.ColorYellow)
	}

	g.drawSprite(dst, g.cfg.Outcome.House, houseSprite, core.ColorOrange)
	g.drawSprite(dst, g.round.Frog.Position(), frogSprite, core.ColorGreen)
	g.drawSprite(dst, g.round.Pelican.Position(), pelicanSprite, core.ColorMagenta)
}

func (g *Game) tileCells(p GridPosition) core.Rect {
	cx, cy := toCell(p.Origin(g.cfg.Screen.TileSize))
	return core.NewRect(cx, cy, g.cfg.Screen.TileSize/CellW, g.cfg.Screen.TileSize/CellH)
}

func (g *Game) drawSprite(dst *core.Screen, p core.Point, sprite [2]string, c core.Color) {
	cx, cy := toCell(p)
	for i, line := range sprite {
		dst.DrawTextColored(cx, cy+i, line, c)
	}
}

func toCell(p core.Point) (int, int) {
	return p.X / CellW, p.Y/CellH + HUDHeight
}

// renderOverlay draws a centered box with the title on top and the
// remaining lines below it.
func (g *Game) renderOverlay(dst *core.Screen, title string, lines ...string) {
	w := len([]rune(title))
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	boxW := w + 4
	boxH := len(lines) + 4
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorYellow)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+3+i, l, core.ColorDefault)
	}
}
