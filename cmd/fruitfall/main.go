// fruitfall is a falling-column match-3 puzzle for the terminal.
//
// Usage:
//
//	fruitfall list              - List game modes
//	fruitfall play [mode]       - Play a mode (default: fruitfall)
//	fruitfall menu              - Pick a mode and difficulty interactively
//	fruitfall scores [mode]     - Show the best runs
//	fruitfall config            - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Tick rate (default: 30)
//	--seed <value>        - RNG seed for reproducible games
//	--db <path>           - Database path (default: ~/.fruitfall/scores.db)
//	--config <path>       - Custom config YAML
//	--difficulty <name>   - Difficulty preset
//	--log-file <path>     - Write logs to a file (the terminal belongs to the game)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/fruitfall/internal/core"
	"github.com/vovakirdan/fruitfall/internal/games/fruitfall"
	"github.com/vovakirdan/fruitfall/internal/storage"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogFile    string
	flagLogLevel   string

	logger  = log.New(io.Discard)
	logFile *os.File
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fruitfall",
	Short: "Fruitfall - match falling fruit in your terminal",
	Long: `Fruitfall drops columns of three fruits into a well. Line up three
or more of a kind in any direction to clear them. Specials and hazards
show up as you level up.

Available commands:
  list     - Show the game modes
  play     - Play a mode directly
  menu     - Interactive mode and difficulty picker
  scores   - View the best runs
  config   - Print the effective configuration

Examples:
  fruitfall play
  fruitfall play fruitfall_levels --difficulty hard
  fruitfall menu --log-file /tmp/fruitfall.log --log-level debug
  fruitfall config > ~/.fruitfall/configs/fruitfall.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		if logFile != nil {
			logFile.Close()
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.fruitfall/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, expert")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// setup builds the logger and hands the shared flags to the game package.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		logFile = f
		logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Prefix:          "fruitfall",
			Level:           level,
		})
	}

	fruitfall.SetLogger(logger)
	fruitfall.SetConfigPath(flagConfig)
	fruitfall.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig sizes the screen from the terminal, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database. A failure is logged and play goes
// on without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("scores database unavailable", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
