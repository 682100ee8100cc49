package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/frog-chase/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Frog Chase SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game seeded from the clock.
Scores are stored per-server (all users share the same leaderboard).

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.frogchase/host_key

Examples:
  frogchase serve                           # Listen on :23234 with auto-generated key
  frogchase serve --ssh :2222               # Listen on port 2222
  frogchase serve --host-key ./my_host_key  # Use specific host key
  frogchase serve --difficulty hard         # Every session plays hard

Users can connect with:
  ssh localhost -p 23234
  ssh -t localhost -p 23234 realtime`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fatal("setting up logging", err)
	}
	defer closeLog()

	game, err := loadGameConfig()
	if err != nil {
		fatal("loading config", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		Game:        game,
		TickRate:    flagFPS,
		Store:       store,
		Logger:      logger,
	})
	if err != nil {
		fatal("creating server", err)
	}

	fmt.Printf("Starting Frog Chase SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fatal("serving", err)
	}
}
