package engine

import (
	"math/rand"
	"time"
)

// Phase is the controller state visible between ticks.
// Spawning and locking complete inside a single call and are never observed.
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseFalling
	PhaseResolving
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseFalling:
		return "falling"
	case PhaseResolving:
		return "resolving"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Engine owns the grid, the falling column, progression and every pending
// deferred task. It is not safe for concurrent use; a single caller drives
// it through Tick and Apply.
type Engine struct {
	cfg Config
	rng *rand.Rand

	grid  *Grid
	col   *Column
	lastX int
	phase Phase

	score         int
	level         int
	difficulty    int
	elapsed       time.Duration
	fallAcc       time.Duration
	nextSpecialAt time.Duration
	resolving     bool

	sched     scheduler
	hazards   *hazardTable
	hazardSeq uint64

	events []Event
}

// New creates an engine. cfg is assumed valid (see Config.Validate); an
// out-of-range difficulty is clamped.
func New(cfg Config, seed int64) *Engine {
	e := &Engine{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(seed)),
		grid:    NewGrid(cfg.Width, cfg.Height),
		hazards: newHazardTable(),
	}
	e.difficulty = e.clampDifficulty(cfg.Difficulty)
	e.reset()
	return e
}

func (e *Engine) reset() {
	e.sched.reset()
	e.hazards.reset()
	e.grid.Clear()
	e.col = nil
	e.lastX = -1
	e.phase = PhaseIdle
	e.score = 0
	e.level = 1
	e.elapsed = 0
	e.fallAcc = 0
	e.resolving = false
	e.scheduleSpecial(0)
}

func (e *Engine) clampDifficulty(d int) int {
	switch {
	case d < 0:
		return 0
	case d >= len(e.cfg.PaletteSizes):
		return len(e.cfg.PaletteSizes) - 1
	}
	return d
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

// DrainEvents returns the events raised since the previous call.
func (e *Engine) DrainEvents() []Event {
	out := e.events
	e.events = nil
	return out
}

// Tick advances the game clock by dt: due deferred tasks run first, then the
// column spawns or falls. Ticks are ignored after game over.
func (e *Engine) Tick(dt time.Duration) {
	if e.phase == PhaseGameOver {
		return
	}
	if dt > 0 {
		e.elapsed += dt
	}

	e.runDue()

	if e.col == nil {
		if !e.resolving {
			e.spawn()
		}
		return
	}

	if dt > 0 {
		e.fallAcc += dt
	}
	for e.col != nil {
		interval := e.DropInterval()
		if e.fallAcc < interval {
			break
		}
		e.fallAcc -= interval
		e.stepDown()
	}
}

// runDue executes every task due by now. Hazard triggers that come due
// during a cascade wait until the board is stable.
func (e *Engine) runDue() {
	var postponed []task

	for {
		t, ok := e.sched.popDue(e.elapsed)
		if !ok {
			break
		}
		switch t.kind {
		case taskClear:
			e.finishClear()
		case taskArm:
			e.armHazard(t.hazard)
		case taskTrigger:
			if e.resolving {
				postponed = append(postponed, t)
				continue
			}
			e.triggerHazard(t.hazard)
		}
	}

	for _, t := range postponed {
		e.sched.requeue(t)
	}
}

// Apply executes a player command. Movement commands are no-ops without a
// falling column or after game over.
func (e *Engine) Apply(cmd Command) {
	switch cmd.Type {
	case CmdRestart:
		e.Restart()
		return
	case CmdSetDifficulty:
		e.SetDifficulty(cmd.Difficulty)
		return
	}

	if e.col == nil || e.phase == PhaseGameOver {
		return
	}

	switch cmd.Type {
	case CmdMoveLeft:
		if e.col.CanMoveLeft(e.grid) {
			e.col.X--
			e.emit(Event{Type: EventMoved, At: e.col.Coord(ColumnLen - 1)})
		}
	case CmdMoveRight:
		if e.col.CanMoveRight(e.grid) {
			e.col.X++
			e.emit(Event{Type: EventMoved, At: e.col.Coord(ColumnLen - 1)})
		}
	case CmdRotate:
		*e.col = e.col.Rotate()
		e.emit(Event{Type: EventRotated})
	case CmdHardDrop:
		for e.col.CanMoveDown(e.grid) {
			e.col.TopY++
		}
		e.emit(Event{Type: EventDropped, At: e.col.Coord(ColumnLen - 1)})
		e.lock()
	}
}

// spawn creates the next column, or ends the game when its cells are taken.
func (e *Engine) spawn() {
	x := e.lastX
	if !e.cfg.ReuseColumnX || x < 0 {
		x = e.rng.Intn(e.grid.W)
	}

	for y := 0; y < ColumnLen; y++ {
		if e.grid.Occupied(C(x, y)) {
			e.gameOver()
			return
		}
	}

	col := Column{X: x, TopY: -1}
	for i := range col.Cells {
		col.Cells[i] = e.randomFruit()
	}
	if e.cfg.SpecialsEnabled && e.elapsed >= e.nextSpecialAt {
		col.Cells[e.rng.Intn(ColumnLen)] = e.pickSpecial()
		e.scheduleSpecial(e.elapsed)
	}

	e.col = &col
	e.fallAcc = 0
	e.phase = PhaseFalling
	e.emit(Event{Type: EventSpawned, At: C(x, 0)})
}

func (e *Engine) stepDown() {
	if e.col.CanMoveDown(e.grid) {
		e.col.TopY++
		return
	}
	e.lock()
}

// lock commits the column to the grid, then hands any special to the
// dispatcher and runs the resolution loop.
func (e *Engine) lock() {
	col := *e.col
	e.col = nil
	e.lastX = col.X
	e.fallAcc = 0

	for i, k := range col.Cells {
		e.grid.Set(col.Coord(i), k)
	}
	e.emit(Event{Type: EventLocked, At: col.Coord(ColumnLen - 1)})

	if col.TopY < 0 {
		e.gameOver()
		return
	}

	cleared := NewCoordSet(16)
	for i := ColumnLen - 1; i >= 0; i-- {
		if col.Cells[i].IsSpecial() {
			cleared.AddAll(e.dispatch(col.Coord(i)))
		}
	}

	if cleared.Len() > 0 {
		e.beginClear(cleared)
		return
	}
	// A pending clear rescans the board once it finishes.
	if e.resolving {
		return
	}
	e.phase = PhaseIdle
	e.resolve()
}

func (e *Engine) gameOver() {
	e.col = nil
	e.phase = PhaseGameOver
	e.emit(Event{Type: EventGameOver})
}

// Restart cancels every pending task and hazard and starts a fresh game at
// the current difficulty.
func (e *Engine) Restart() {
	e.reset()
	e.emit(Event{Type: EventRestarted})
}

// SetDifficulty switches the fruit palette. Settled fruit outside the new
// palette is removed and gravity runs once; disallowed column tokens are
// resampled.
func (e *Engine) SetDifficulty(d int) {
	e.difficulty = e.clampDifficulty(d)

	for i, k := range e.grid.Cells {
		if !e.allowed(k) {
			e.grid.Cells[i] = KindEmpty
		}
	}
	if e.col != nil {
		for i, k := range e.col.Cells {
			if !e.allowed(k) {
				e.col.Cells[i] = e.randomFruit()
			}
		}
	}
	e.settle()

	e.emit(Event{Type: EventDifficultyChanged, Level: e.difficulty})
}

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Level returns the current level.
func (e *Engine) Level() int { return e.level }

// Elapsed returns the game clock.
func (e *Engine) Elapsed() time.Duration { return e.elapsed }

// GameOver reports whether the game has ended.
func (e *Engine) GameOver() bool { return e.phase == PhaseGameOver }

// Difficulty returns the current difficulty index.
func (e *Engine) Difficulty() int { return e.difficulty }

// Config returns the configuration the engine runs with.
func (e *Engine) Config() Config { return e.cfg }

// Snapshot is a read-only copy of everything a renderer needs.
type Snapshot struct {
	Grid          *Grid
	Column        *Column
	Score         int
	Level         int
	Elapsed       time.Duration
	GameOver      bool
	Phase         Phase
	Difficulty    int
	Palette       []Kind
	DropInterval  time.Duration
	NextSpecialAt time.Duration
	Hazards       []HazardView
}

// Snapshot copies the current state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Grid:          e.grid.Clone(),
		Score:         e.score,
		Level:         e.level,
		Elapsed:       e.elapsed,
		GameOver:      e.phase == PhaseGameOver,
		Phase:         e.phase,
		Difficulty:    e.difficulty,
		Palette:       append([]Kind(nil), e.palette()...),
		DropInterval:  e.DropInterval(),
		NextSpecialAt: e.nextSpecialAt,
		Hazards:       e.hazards.views(),
	}
	if e.col != nil {
		col := *e.col
		s.Column = &col
	}
	return s
}
