// Package registry maps game mode IDs to factories.
// Modes register themselves from init() so the CLI and menus can list and
// create them without importing game packages directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/fruitfall/internal/core"
)

// Game is what the platform drives: a fixed-step simulation that renders
// into a screen buffer. Implementations must not depend on the terminal.
type Game interface {
	// ID returns the mode identifier (e.g. "fruitfall"), also used as the
	// score table key.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset starts a fresh game with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick of cfg.TickDuration().
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state. The screen is cleared by the game.
	Render(dst *core.Screen)

	// State returns the current summary (score, level, game over, paused).
	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory creates a new instance of a game.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a mode. Panics if the ID is already taken.
func Register(info GameInfo, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[info.ID]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", info.ID))
	}
	entries[info.ID] = entry{info: info, factory: f}
}

// List returns every registered mode, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for _, e := range entries {
		result = append(result, e.info)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Info returns the metadata of a registered mode.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create instantiates a mode by its ID.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	_, ok := Info(id)
	return ok
}
