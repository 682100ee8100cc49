// Package desktop hosts Frog Chase in an Ebiten window at the level's
// native pixel size.
package desktop

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/frog-chase/internal/core"
	"github.com/vovakirdan/frog-chase/internal/games/frogchase"
	"github.com/vovakirdan/frog-chase/internal/platform/record"
	"github.com/vovakirdan/frog-chase/internal/storage"
)

// hudHeight is the strip above the level used for the status line.
const hudHeight = 20

var (
	colorWater   = color.RGBA{24, 64, 96, 255}
	colorRock    = color.RGBA{120, 120, 120, 255}
	colorDoor    = color.RGBA{170, 40, 40, 255}
	colorHouse   = color.RGBA{230, 130, 30, 255}
	colorFrog    = color.RGBA{60, 190, 60, 255}
	colorPelican = color.RGBA{200, 60, 200, 255}
	colorGoal    = color.RGBA{250, 220, 80, 255}
	colorBanner  = color.RGBA{0, 0, 0, 200}
)

// Options configures the desktop host.
type Options struct {
	Store    *storage.Store
	Logger   *log.Logger
	Observer func(*frogchase.Game)
}

// App adapts a game to ebiten.Game.
type App struct {
	game     *frogchase.Game
	rc       core.RuntimeConfig
	opts     Options
	logger   *log.Logger
	recorder *record.Recorder

	keys  []ebiten.Key
	input core.InputFrame
	rearm bool // re-send held arrows on the next tick
}

// New creates the desktop host for g. The game is reset with rc.
func New(g *frogchase.Game, rc core.RuntimeConfig, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger = logger.WithPrefix("desktop")

	g.Reset(rc)
	return &App{
		game:     g,
		rc:       rc,
		opts:     opts,
		logger:   logger,
		recorder: &record.Recorder{Store: opts.Store, Logger: logger, Seed: rc.Seed},
		input:    core.NewInputFrame(),
	}
}

// Update runs one simulation tick.
func (a *App) Update() error {
	a.input.Clear()

	a.keys = inpututil.AppendJustPressedKeys(a.keys[:0])
	for _, k := range a.keys {
		switch k {
		case ebiten.KeyP:
			a.input.Set(core.ActionPause)
		case ebiten.KeyQ:
			a.input.Set(core.ActionQuit)
		}
		if ck := MapKey(k); ck != core.KeyNone {
			a.input.Push(core.Press(ck))
		}
	}
	a.keys = inpututil.AppendJustReleasedKeys(a.keys[:0])
	for _, k := range a.keys {
		if ck := MapKey(k); ck != core.KeyNone {
			a.input.Push(core.Release(ck))
		}
	}

	if a.rearm {
		a.rearm = false
		a.keys = inpututil.AppendPressedKeys(a.keys[:0])
		for _, k := range a.keys {
			if ck := MapKey(k); ck.IsArrow() {
				a.input.Push(core.Press(ck))
			}
		}
	}

	stopped := a.game.Phase() != frogchase.PhasePlaying
	res := a.game.Step(a.input)
	// The frog drops its keys when play stops; hand back the ones still held.
	a.rearm = stopped && a.game.Phase() == frogchase.PhasePlaying
	if cue := a.game.Cue(); cue != frogchase.CueNone {
		a.logger.Debug("cue", "cue", cue)
	}
	a.recorder.Observe(a.game, res.State)
	if a.opts.Observer != nil {
		a.opts.Observer(a.game)
	}

	if res.State.Quit {
		return ebiten.Termination
	}
	return nil
}

// MapKey maps a physical key to a game key. Numpad arrows and WASD
// count as arrows.
func MapKey(k ebiten.Key) core.Key {
	switch k {
	case ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyNumpad8:
		return core.KeyUp
	case ebiten.KeyArrowDown, ebiten.KeyS, ebiten.KeyNumpad2:
		return core.KeyDown
	case ebiten.KeyArrowLeft, ebiten.KeyA, ebiten.KeyNumpad4:
		return core.KeyLeft
	case ebiten.KeyArrowRight, ebiten.KeyD, ebiten.KeyNumpad6:
		return core.KeyRight
	case ebiten.KeyEnter, ebiten.KeyNumpadEnter, ebiten.KeySpace:
		return core.KeyEnter
	case ebiten.KeyEscape, ebiten.KeyBackspace:
		return core.KeyEscape
	case ebiten.KeyY:
		return core.KeyYes
	case ebiten.KeyN:
		return core.KeyNo
	}
	return core.KeyNone
}

// Draw paints the level back to front, then the HUD and any banner.
func (a *App) Draw(screen *ebiten.Image) {
	f := a.game.Frame()
	screen.Fill(colorWater)

	tile := float32(f.TileSize)
	for _, p := range f.Obstacles {
		o := p.Origin(f.TileSize)
		fillRect(screen, float32(o.X), float32(o.Y), tile, tile, colorRock)
	}
	for _, m := range f.Markers {
		o := m.Tile.Origin(f.TileSize)
		fillRect(screen, float32(o.X), float32(o.Y), tile, tile, colorDoor)
		ebitenutil.DebugPrintAt(screen, "?", o.X+f.TileSize/2-3, o.Y+f.TileSize/2-8+hudHeight)
	}

	g := f.Goal
	vector.StrokeRect(screen, float32(g.MinX), float32(g.MinY+hudHeight),
		float32(g.MaxX-g.MinX+1), float32(g.MaxY-g.MinY+1), 2, colorGoal, false)
	fillRect(screen, float32(f.House.X), float32(f.House.Y), tile, tile, colorHouse)
	drawSprite(screen, f.Player, colorFrog)
	drawSprite(screen, f.Pursuer, colorPelican)

	ebitenutil.DebugPrintAt(screen, a.game.HUD(), 4, 2)

	if title, lines := a.game.Banner(); title != "" {
		drawBanner(screen, title, lines)
	}
}

// Layout keeps the level at its configured pixel size.
func (a *App) Layout(_, _ int) (int, int) {
	s := a.game.Config().Screen
	return s.Width, s.Height + hudHeight
}

func fillRect(dst *ebiten.Image, x, y, w, h float32, c color.Color) {
	vector.DrawFilledRect(dst, x, y+hudHeight, w, h, c, false)
}

func drawSprite(dst *ebiten.Image, s frogchase.SpriteFrame, c color.Color) {
	b := s.Box
	fillRect(dst, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), c)
}

func drawBanner(dst *ebiten.Image, title string, lines []string) {
	w, h := dst.Bounds().Dx(), dst.Bounds().Dy()
	boxW, boxH := 360, 40+16*len(lines)
	x, y := (w-boxW)/2, (h-boxH)/2

	vector.DrawFilledRect(dst, float32(x), float32(y), float32(boxW), float32(boxH), colorBanner, false)
	ebitenutil.DebugPrintAt(dst, title, x+16, y+8)
	for i, l := range lines {
		ebitenutil.DebugPrintAt(dst, l, x+16, y+32+16*i)
	}
}

// Run opens the window and blocks until the player quits or closes it.
func Run(g *frogchase.Game, rc core.RuntimeConfig, opts Options) error {
	app := New(g, rc, opts)

	s := g.Config().Screen
	ebiten.SetWindowSize(s.Width, s.Height+hudHeight)
	ebiten.SetWindowTitle(g.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if rc.TickRate > 0 {
		ebiten.SetTPS(rc.TickRate)
	}

	app.logger.Info("window opened", "game", g.ID(), "seed", rc.Seed, "tps", ebiten.TPS())
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("%w: desktop: %w", core.ErrSubsystemInit, err)
	}
	return nil
}
