// Package fruitfall adapts the falling-column match-3 engine to the
// platform's Game interface: it maps actions to engine commands, advances
// the engine clock once per tick, logs engine events and draws the board.
package fruitfall

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruitfall/internal/config"
	"github.com/vovakirdan/fruitfall/internal/core"
	"github.com/vovakirdan/fruitfall/internal/games/fruitfall/engine"
	"github.com/vovakirdan/fruitfall/internal/registry"
)

// Mode selects the fall speed curve.
type Mode int

const (
	ModeTimed  Mode = iota // Logistic curve over elapsed time
	ModeLevels             // Linear decrement per level
)

const (
	idTimed  = "fruitfall"
	idLevels = "fruitfall_levels"

	bannerTicks = 45
)

var (
	configPath       string
	difficultyPreset string
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the preset used by the next Reset.
// Empty selects the configured default.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// SetLogger replaces the event logger. The default discards everything.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

func init() {
	registry.Register(registry.GameInfo{
		ID:          idTimed,
		Title:       "Fruitfall",
		Description: "Match three fruits; the fall speeds up over time",
	}, func() registry.Game { return New() })

	registry.Register(registry.GameInfo{
		ID:          idLevels,
		Title:       "Fruitfall (Levels)",
		Description: "Match three fruits; every level drops faster",
	}, func() registry.Game { return NewLevels() })
}

// Game implements registry.Game on top of engine.Engine.
type Game struct {
	mode    Mode
	cfg     config.FruitfallConfig
	eng     *engine.Engine
	runtime core.RuntimeConfig

	tick   uint64
	paused bool

	banner      string
	bannerColor core.Color
	bannerLeft  int
}

// New creates a game whose fall speed follows elapsed time.
func New() *Game {
	return &Game{mode: ModeTimed}
}

// NewLevels creates a game whose fall speed follows the level.
func NewLevels() *Game {
	return &Game{mode: ModeLevels}
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	if g.mode == ModeLevels {
		return idLevels
	}
	return idTimed
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeLevels {
		return "Fruitfall (Levels)"
	}
	return "Fruitfall"
}

func (g *Game) curve() engine.Curve {
	if g.mode == ModeLevels {
		return engine.CurveLinear
	}
	return engine.CurveLogistic
}

// Reset loads the configuration and starts a fresh engine. Broken
// configuration falls back to the defaults with a warning.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.tick = 0
	g.paused = false
	g.banner = ""
	g.bannerLeft = 0

	fc, err := config.Load(configPath)
	if err != nil {
		logger.Warn("using default config", "path", configPath, "error", err)
		fc = config.DefaultFruitfallConfig()
	}

	ec, err := fc.Engine(g.curve(), difficultyPreset)
	if err != nil {
		logger.Warn("unusable difficulty, using default", "preset", difficultyPreset, "error", err)
		fc = config.DefaultFruitfallConfig()
		ec, _ = fc.Engine(g.curve(), "")
	}

	g.cfg = fc
	g.eng = engine.New(ec, cfg.Seed)
	logger.Info("game started",
		"mode", g.ID(),
		"seed", cfg.Seed,
		"difficulty", fc.PresetName(ec.Difficulty),
		"board", fmt.Sprintf("%dx%d", ec.Width, ec.Height))
}

// Step applies this tick's input and advances the engine by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.bannerLeft > 0 {
		g.bannerLeft--
	}

	for _, a := range in.Actions {
		g.apply(a)
	}

	if !g.paused && !g.eng.GameOver() {
		g.eng.Tick(g.runtime.TickDuration())
	}
	g.handleEvents(g.eng.DrainEvents())

	return core.StepResult{State: g.State()}
}

// apply maps one action to an engine command. Movement is ignored while
// paused; restart and difficulty changes always go through.
func (g *Game) apply(a core.Action) {
	if idx, ok := a.PresetIndex(); ok {
		if idx < len(g.cfg.Difficulty.Presets) {
			g.eng.Apply(engine.Command{Type: engine.CmdSetDifficulty, Difficulty: idx})
		}
		return
	}

	switch a {
	case core.ActionPause:
		if !g.eng.GameOver() {
			g.paused = !g.paused
		}
		return
	case core.ActionRestart:
		g.paused = false
		g.eng.Apply(engine.Command{Type: engine.CmdRestart})
		return
	}

	if g.paused {
		return
	}
	switch a {
	case core.ActionLeft:
		g.eng.Apply(engine.Command{Type: engine.CmdMoveLeft})
	case core.ActionRight:
		g.eng.Apply(engine.Command{Type: engine.CmdMoveRight})
	case core.ActionRotate:
		g.eng.Apply(engine.Command{Type: engine.CmdRotate})
	case core.ActionDrop:
		g.eng.Apply(engine.Command{Type: engine.CmdHardDrop})
	}
}

func (g *Game) handleEvents(events []engine.Event) {
	for _, ev := range events {
		switch ev.Type {
		case engine.EventSpawned:
			logger.Debug("spawned", "x", ev.At.X)
		case engine.EventMatchCleared:
			logger.Debug("cleared", "cells", ev.Count, "points", ev.Points, "score", g.eng.Score())
		case engine.EventBigClear:
			logger.Info("big clear", "cells", ev.Count, "points", ev.Points)
			g.showBanner(fmt.Sprintf("BIG CLEAR x%d!", ev.Count), core.ColorBrightYellow)
		case engine.EventLevelUp:
			logger.Info("level up", "level", ev.Level, "drop", g.eng.DropInterval())
			g.showBanner(fmt.Sprintf("LEVEL %d!", ev.Level), core.ColorGreen)
		case engine.EventHazardArmed:
			logger.Debug("hazard armed", "kind", ev.Kind, "at", ev.At)
		case engine.EventHazardResolved:
			logger.Info("hazard resolved", "kind", ev.Kind, "at", ev.At, "cells", ev.Count)
		case engine.EventDifficultyChanged:
			name := g.cfg.PresetName(ev.Level)
			logger.Info("difficulty changed", "preset", name)
			g.showBanner("DIFFICULTY: "+name, core.ColorCyan)
		case engine.EventGameOver:
			logger.Info("game over", "score", g.eng.Score(), "level", g.eng.Level(), "elapsed", g.eng.Elapsed())
		case engine.EventRestarted:
			logger.Info("restarted", "mode", g.ID())
		}
	}
}

func (g *Game) showBanner(text string, c core.Color) {
	g.banner = text
	g.bannerColor = c
	g.bannerLeft = bannerTicks
}

// State returns the current summary.
func (g *Game) State() core.GameState {
	if g.eng == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:      g.eng.Score(),
		Level:      g.eng.Level(),
		Difficulty: g.cfg.PresetName(g.eng.Difficulty()),
		Elapsed:    g.eng.Elapsed(),
		GameOver:   g.eng.GameOver(),
		Paused:     g.paused,
	}
}
