// frogchase is a grid-based arcade game: hop the frog home across a pond of
// rocks and mystery doors before the pelican gets you.
//
// Usage:
//
//	frogchase play              - Play in the terminal
//	frogchase desktop           - Play in a window
//	frogchase serve             - Start SSH server for remote play
//	frogchase scores [mode]     - Show high scores and round stats
//	frogchase config            - Print the effective configuration
//	frogchase list              - List game modes
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible rounds
//	--db <path>           - Set database path (default: ~/.frogchase/scores.db)
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal or hard
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/frog-chase/internal/config"
	"github.com/vovakirdan/frog-chase/internal/core"
	"github.com/vovakirdan/frog-chase/internal/storage"

	// Register game modes
	_ "github.com/vovakirdan/frog-chase/internal/games/frogchase"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "frogchase",
	Short: "Frog Chase - get the frog home before the pelican does",
	Long: `Frog Chase is a grid-based arcade game. Plan the frog's hops across a
pond of rocks and mystery doors, then jump. Some doors hide trapdoors,
one hides a pelican, and the pelican in the sky is always watching.

Available commands:
  play     - Play in the terminal
  desktop  - Play in a desktop window
  serve    - Start SSH server for remote play
  scores   - View high scores and round stats
  config   - Print the effective configuration
  list     - List game modes

Examples:
  frogchase play
  frogchase play --realtime --difficulty easy
  frogchase play --spectate :8080
  frogchase desktop --seed 42
  frogchase serve --ssh :2222
  frogchase scores --interactive`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.frogchase/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file instead of stderr")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(desktopCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// fatal reports err and exits.
func fatal(context string, err error) {
	fmt.Fprintf(os.Stderr, "Error %s: %v\n", context, err)
	os.Exit(1)
}

// newLogger builds the logger from --log-level. Logs go to --log-file when
// set, otherwise to fallback. The returned func closes the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, err
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		if err := os.MkdirAll(filepath.Dir(flagLogFile), 0o755); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
	return logger, closeFn, nil
}

// loadGameConfig loads --config, applies --difficulty and validates.
func loadGameConfig() (config.FrogChaseConfig, error) {
	cfg, err := config.LoadFrogChase(flagConfig)
	if err != nil {
		return cfg, err
	}
	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, cfg.Validate()
}

// runtimeConfig picks a time-based seed when --seed is 0 so the round can
// be replayed from the logged seed.
func runtimeConfig(w, h int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// openStore opens the score database. Play continues without one.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}
