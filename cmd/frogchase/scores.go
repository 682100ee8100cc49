package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/frog-chase/internal/games/frogchase"
	"github.com/vovakirdan/frog-chase/internal/platform/tui"
	"github.com/vovakirdan/frog-chase/internal/registry"
	"github.com/vovakirdan/frog-chase/internal/storage"
)

var (
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show high scores and round stats",
	Long: `Display the top 10 high scores and round statistics for a mode
(default: frogchase). Run 'frogchase list' for mode IDs.

Examples:
  frogchase scores
  frogchase scores frogchase_realtime
  frogchase scores --interactive
  frogchase scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores and rounds for the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := frogchase.GameID
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'frogchase list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fatal("opening scores database", err)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fatal("running scoreboard", err)
		}
		return
	}

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fatal("clearing scores", err)
		}
		fmt.Printf("Cleared scores for %s\n", gameID)
		return
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fatal("retrieving scores", err)
	}

	fmt.Printf("High Scores - %s\n\n", gameID)
	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
	} else {
		fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
		fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")
		for i, entry := range scores {
			fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, entry.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil || stats.Rounds == 0 {
		return
	}
	fmt.Println()
	fmt.Printf("Rounds: %d  Won: %d  Lost: %d  Win rate: %.0f%%\n",
		stats.Rounds, stats.Wins, stats.Losses, stats.WinRate()*100)

	triggers := make([]string, 0, len(stats.Triggers))
	for t := range stats.Triggers {
		triggers = append(triggers, t)
	}
	sort.Strings(triggers)
	for _, t := range triggers {
		fmt.Printf("  %-8s %d\n", t, stats.Triggers[t])
	}
}
