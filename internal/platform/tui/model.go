package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruitfall/internal/core"
	"github.com/vovakirdan/fruitfall/internal/registry"
	"github.com/vovakirdan/fruitfall/internal/storage"
)

// Model is the Bubble Tea model that drives one game at a fixed tick rate.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keyMapper  *KeyMapper
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	back       bool
	scoreSaved bool // Whether the current game over has been recorded
}

// NewModel creates a new Bubble Tea model for the given game.
// A nil logger discards output.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     logger,
		keyMapper:  NewKeyMapper(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		m.saveRun()
		return m, tea.Quit
	case action == core.ActionBack:
		m.back = true
		m.saveRun()
		return m, tea.Quit
	}

	m.inputFrame.Set(action)
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	wasOver := m.gameState.GameOver
	m.gameState = result.State

	switch {
	case m.gameState.GameOver && !wasOver:
		m.saveRun()
	case !m.gameState.GameOver && wasOver:
		m.scoreSaved = false
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the current game once. Runs without points are skipped.
func (m *Model) saveRun() {
	if m.scoreSaved || m.store == nil || m.gameState.Score <= 0 {
		return
	}
	m.scoreSaved = true

	run := storage.Run{
		GameID:     m.game.ID(),
		Difficulty: m.gameState.Difficulty,
		Score:      m.gameState.Score,
		Level:      m.gameState.Level,
		Duration:   m.gameState.Elapsed,
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Error("save run", "error", err)
		return
	}
	m.logger.Info("run saved", "game", run.GameID, "score", run.Score, "level", run.Level)
}

// saveScreenshot writes the current screen as plain text under
// ~/.fruitfall/screenshots.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot", "error", err)
		return
	}
	dir := filepath.Join(home, ".fruitfall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot", "error", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the last reported game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run plays a game until the player quits or backs out.
// back reports that the player asked to return to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) (back bool, err error) {
	p := tea.NewProgram(
		NewModel(game, store, cfg, logger),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.back, nil
}
