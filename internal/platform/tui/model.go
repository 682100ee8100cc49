package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/frog-chase/internal/config"
	"github.com/vovakirdan/frog-chase/internal/core"
	"github.com/vovakirdan/frog-chase/internal/games/frogchase"
	"github.com/vovakirdan/frog-chase/internal/platform/record"
	"github.com/vovakirdan/frog-chase/internal/registry"
	"github.com/vovakirdan/frog-chase/internal/storage"
)

// Options configures a terminal host.
type Options struct {
	Store  *storage.Store // optional, scores are not saved without it
	Logger *log.Logger    // optional

	// HoldTicks is how long a key stays held after its last press in
	// realtime mode. Zero picks half a second.
	HoldTicks int

	// Observer is called after every simulation tick.
	Observer func(registry.Game)

	// ScreenshotDir defaults to ~/.frogchase/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model hosting one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	opts       Options
	logger     *log.Logger
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keys       KeyMap
	mapper     *KeyMapper
	help       help.Model
	hold       *HoldTracker // nil in planned mode
	showHelp   bool
	quitting   bool
	recorder   *record.Recorder
	lastSignal frogchase.Signal
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	}

	keys := DefaultKeyMap()
	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(1, cfg.ScreenH-1)),
		opts:       opts,
		logger:     logger.WithPrefix("tui"),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keys:       keys,
		mapper:     NewKeyMapper(keys),
		help:       help.New(),
		showHelp:   true,
		lastSignal: -1,
	}
	m.recorder = &record.Recorder{Store: opts.Store, Logger: m.logger, Seed: cfg.Seed}

	if fg, ok := game.(*frogchase.Game); ok && fg.Config().Movement.Mode == config.ModeRealtime {
		ttl := opts.HoldTicks
		if ttl <= 0 {
			ttl = cfg.TickRate / 2
		}
		m.hold = NewHoldTracker(ttl)
	}
	return m
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	rc := m.config
	rc.ScreenH = m.screen.Height()
	m.game.Reset(rc)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "tps", m.config.TickRate)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	in := m.mapper.MapKey(msg)

	switch {
	case in.Action == core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "game", m.game.ID())
		return m, tea.Quit
	case in.Action != core.ActionNone:
		m.inputFrame.Set(in.Action)
	case in.Screenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	case in.ToggleHelp:
		m.showHelp = !m.showHelp
	case in.Key == core.KeyNone:
	case m.hold != nil && in.Key.IsArrow():
		m.inputFrame.Push(m.hold.Press(in.Key)...)
	default:
		m.inputFrame.Push(core.Tap(in.Key)...)
	}

	return m, nil
}

// handleResize only resizes the buffer; the game shows its own
// overlay while the terminal is too small.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(1, msg.Height-1))
	m.help.Width = msg.Width
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.hold != nil {
		m.inputFrame.Push(m.hold.Tick()...)
	}

	fg, isFrog := m.game.(*frogchase.Game)
	stopped := false
	if isFrog {
		stopped = fg.Phase() != frogchase.PhasePlaying
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if isFrog {
		m.traceSignals(fg)
		// The frog drops its keys when play stops; hand back the ones still held.
		if stopped && fg.Phase() == frogchase.PhasePlaying && m.hold != nil {
			m.inputFrame.Push(m.hold.Rearm()...)
		}
	}

	m.recorder.Observe(m.game, m.gameState)

	if m.opts.Observer != nil {
		m.opts.Observer(m.game)
	}

	if m.gameState.Quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

func (m *Model) traceSignals(g *frogchase.Game) {
	if cue := g.Cue(); cue != frogchase.CueNone {
		m.logger.Debug("cue", "cue", cue)
	}
	sig := g.Signal()
	if sig == m.lastSignal {
		return
	}
	m.lastSignal = sig
	if sig == frogchase.SignalRestartRequested && m.hold != nil {
		m.hold.ReleaseAll()
	}
	m.logger.Debug("signal", "signal", sig, "round", g.Round().Number)
}

// saveScreenshot writes the current board as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, ".frogchase", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	out := RenderScreen(m.screen)
	if m.showHelp {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// Run starts the Bubble Tea program for the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, cfg, opts),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("%w: tui: %w", core.ErrSubsystemInit, err)
	}
	return nil
}
