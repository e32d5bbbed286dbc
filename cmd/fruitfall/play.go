package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruitfall/internal/platform/tui"
	"github.com/vovakirdan/fruitfall/internal/registry"
)

const defaultMode = "fruitfall"

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start playing the given mode (default: fruitfall).

Modes:
  fruitfall         - The fall speeds up smoothly with play time
  fruitfall_levels  - Every level drops a fixed step faster

Controls:
  A/D, Left/Right   - Move the column
  W, Up, Space      - Rotate the column
  S, Down           - Drop
  1-4               - Switch difficulty preset
  P                 - Pause
  R                 - Restart
  Esc               - Back
  Ctrl+S            - Screenshot
  Q/Ctrl+C          - Quit

Examples:
  fruitfall play
  fruitfall play fruitfall_levels --difficulty easy
  fruitfall play --seed 42 --config ./my-fruitfall.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := defaultMode
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'fruitfall list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	_, runErr := tui.Run(game, store, runtimeConfig(), logger)
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game loop", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
