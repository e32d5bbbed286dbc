package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruitfall/internal/config"
	"github.com/vovakirdan/fruitfall/internal/games/fruitfall"
	"github.com/vovakirdan/fruitfall/internal/platform/tui"
	"github.com/vovakirdan/fruitfall/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a mode and difficulty interactively",
	Long: `Start fruitfall with a mode picker.

Use arrow keys or j/k to pick a mode, left/right to change the
difficulty and Enter to play. Esc in a game returns to the menu.

Controls:
  Up/Down/j/k      - Pick mode
  Left/Right/h/l   - Change difficulty
  Enter/Space      - Play
  Tab              - Scoreboard
  Q                - Quit`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	if store != nil {
		defer store.Close()
	}

	fc, err := config.Load(flagConfig)
	if err != nil {
		logger.Warn("using default config", "path", flagConfig, "error", err)
		fc = config.DefaultFruitfallConfig()
	}
	difficulty := flagDifficulty
	if difficulty == "" {
		difficulty = fc.Difficulty.Default
	}

	cfg := runtimeConfig()
	for {
		res, err := tui.RunMenu(store, cfg, fc.PresetNames(), difficulty)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}
		cfg = res.Config

		if res.Quit {
			return
		}

		if res.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			return
		}

		difficulty = res.Difficulty
		fruitfall.SetDifficultyPreset(difficulty)

		game, err := registry.Create(res.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		back, err := tui.Run(game, store, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !back {
			return
		}
	}
}
