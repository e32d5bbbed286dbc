package fruitfall

import (
	"time"

	"github.com/vovakirdan/fruitfall/internal/games/fruitfall/engine"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick       uint64
	Mode       string
	Score      int
	Level      int
	Difficulty string
	Elapsed    time.Duration
	Board      [][]engine.Kind
	Column     [engine.ColumnLen]engine.Kind
	ColumnAt   engine.Coord
	HasColumn  bool
	Hazards    int
	State      GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	if g.eng == nil {
		return Snapshot{Mode: g.ID()}
	}
	es := g.eng.Snapshot()

	state := StatePlaying
	switch {
	case es.GameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Tick:       g.tick,
		Mode:       g.ID(),
		Score:      es.Score,
		Level:      es.Level,
		Difficulty: g.cfg.PresetName(es.Difficulty),
		Elapsed:    es.Elapsed,
		Board:      es.Grid.Rows(),
		Hazards:    len(es.Hazards),
		State:      state,
	}
	if es.Column != nil {
		s.Column = es.Column.Cells
		s.ColumnAt = engine.C(es.Column.X, es.Column.TopY)
		s.HasColumn = true
	}
	return s
}
