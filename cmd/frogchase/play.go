package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/frog-chase/internal/games/frogchase"
	"github.com/vovakirdan/frog-chase/internal/platform/desktop"
	"github.com/vovakirdan/frog-chase/internal/platform/tui"
	"github.com/vovakirdan/frog-chase/internal/registry"
	"github.com/vovakirdan/frog-chase/internal/spectate"
)

var (
	flagRealtime bool
	flagSpectate string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a round in the terminal.

Controls (planned mode):
  Arrows/WASD - Queue hops
  Enter       - Jump through the queued hops
  Esc         - Clear the queue
  P           - Pause
  Y/N         - Play again / leave on the game over screen
  Ctrl+S      - Save a text screenshot
  ?           - Toggle key help
  Q/Ctrl+C    - Quit

With --realtime the frog hops while an arrow is held.
With --spectate <addr> watchers can follow the round at ws://<addr>/ws.

Logs go to ~/.frogchase/frogchase.log unless --log-file is given.

Examples:
  frogchase play
  frogchase play --difficulty hard
  frogchase play --realtime
  frogchase play --seed 42 --spectate :8080`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

var desktopCmd = &cobra.Command{
	Use:   "desktop",
	Short: "Play in a desktop window",
	Long: `Open a window at the level's native size and play there.
Keys are the same as in the terminal; in realtime mode key releases
are real, so the frog stops as soon as the arrow is let go.

Examples:
  frogchase desktop
  frogchase desktop --realtime --fps 30`,
	Args: cobra.NoArgs,
	Run:  runDesktop,
}

func init() {
	for _, c := range []*cobra.Command{playCmd, desktopCmd} {
		c.Flags().BoolVar(&flagRealtime, "realtime", false, "Move while arrows are held instead of planning hops")
		c.Flags().StringVar(&flagSpectate, "spectate", "", "Serve a spectator feed on this address (e.g. :8080)")
	}
}

func modeID() string {
	if flagRealtime {
		return frogchase.GameIDRealtime
	}
	return frogchase.GameID
}

// startSpectator starts the feed if --spectate is set. The returned
// observer is nil without a feed.
func startSpectator(logger *log.Logger) (func(registry.Game), func(), error) {
	if flagSpectate == "" {
		return nil, func() {}, nil
	}
	srv, err := spectate.Listen(flagSpectate, spectate.NewHub(logger))
	if err != nil {
		return nil, nil, err
	}
	stop := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(ctx)
	}
	return srv.Hub.Observe, stop, nil
}

func runPlay(_ *cobra.Command, _ []string) {
	if flagLogFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			flagLogFile = filepath.Join(home, ".frogchase", "frogchase.log")
		}
	}
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fatal("setting up logging", err)
	}
	defer closeLog()

	cfg, err := loadGameConfig()
	if err != nil {
		fatal("loading config", err)
	}

	game, err := registry.Create(modeID(), cfg)
	if err != nil {
		fatal("creating game", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	rc := runtimeConfig(width, height)

	observer, stopFeed, err := startSpectator(logger)
	if err != nil {
		fatal("starting spectator feed", err)
	}
	defer stopFeed()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	if err := tui.Run(game, rc, tui.Options{
		Store:    store,
		Logger:   logger,
		Observer: observer,
	}); err != nil {
		fatal("running game", err)
	}
}

func runDesktop(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fatal("setting up logging", err)
	}
	defer closeLog()

	cfg, err := loadGameConfig()
	if err != nil {
		fatal("loading config", err)
	}

	game, err := registry.Create(modeID(), cfg)
	if err != nil {
		fatal("creating game", err)
	}
	fg, ok := game.(*frogchase.Game)
	if !ok {
		fatal("creating game", errors.New("desktop host needs a Frog Chase game"))
	}

	observer, stopFeed, err := startSpectator(logger)
	if err != nil {
		fatal("starting spectator feed", err)
	}
	defer stopFeed()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	opts := desktop.Options{Store: store, Logger: logger}
	if observer != nil {
		opts.Observer = func(g *frogchase.Game) { observer(g) }
	}
	s := cfg.Screen
	if err := desktop.Run(fg, runtimeConfig(s.Width, s.Height), opts); err != nil {
		fatal("running desktop window", err)
	}
}
