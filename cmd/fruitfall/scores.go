package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruitfall/internal/registry"
	"github.com/vovakirdan/fruitfall/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs of a mode",
	Long: `Display the best runs of a mode (default: fruitfall).
--difficulty filters by preset.

Examples:
  fruitfall scores
  fruitfall scores fruitfall_levels --difficulty hard
  fruitfall scores --limit 25`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete every stored run of the mode")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := defaultMode
	if len(args) == 1 {
		gameID = args[0]
	}

	info, ok := registry.Info(gameID)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'fruitfall list' to see available modes.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRuns(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		logger.Info("runs cleared", "game", gameID)
		fmt.Printf("Cleared all runs of %s.\n", info.Title)
		return
	}

	runs, err := store.TopRuns(gameID, flagDifficulty, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", info.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'fruitfall play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-8s  %-5s  %-10s  %-6s  %s\n", "Rank", "Score", "Level", "Difficulty", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-5s  %-10s  %-6s  %s\n", "----", "-----", "-----", "----------", "----", "----")
	for i, r := range runs {
		d := r.Duration.Truncate(time.Second)
		fmt.Printf("  %-4d  %-8d  %-5d  %-10s  %-6s  %s\n",
			i+1, r.Score, r.Level, r.Difficulty,
			fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.AllStats(); err == nil {
		if st, ok := stats[gameID]; ok {
			fmt.Println()
			fmt.Printf("Best: %d  Runs: %d  Avg: %.0f  Best level: %d  Played: %s\n",
				st.HighScore, st.Runs, st.AvgScore, st.BestLevel, st.TotalTime.Truncate(time.Second))
		}
	}
}
