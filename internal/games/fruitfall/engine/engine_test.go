package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.SpecialsEnabled = false
	return cfg
}

// drain runs pending clears until the cascade is over.
func drain(t *testing.T, e *Engine) {
	t.Helper()
	for i := 0; e.resolving; i++ {
		require.Less(t, i, e.grid.W*e.grid.H, "cascade did not settle")
		e.elapsed += e.cfg.ExplodeDelay
		e.runDue()
	}
}

func eventsOfType(events []Event, typ EventType) []Event {
	var out []Event
	for _, ev := range events {
		if ev.Type == typ {
			out = append(out, ev)
		}
	}
	return out
}

func TestLockedTripleClears(t *testing.T) {
	e := New(testConfig(), 1)
	e.col = &Column{X: 0, TopY: 0, Cells: [ColumnLen]Kind{A, A, A}}
	e.phase = PhaseFalling

	e.lock()
	assert.Equal(t, PhaseResolving, e.phase)
	assert.Equal(t, KindExploding, e.grid.Get(C(0, 1)))

	drain(t, e)

	assert.Equal(t, 0, e.grid.FilledCount())
	assert.Equal(t, 3, e.Score())
	assert.Equal(t, PhaseIdle, e.phase)

	cleared := eventsOfType(e.DrainEvents(), EventMatchCleared)
	require.Len(t, cleared, 1)
	assert.Equal(t, 3, cleared[0].Count)
	assert.Equal(t, 3, cleared[0].Points)
}

func TestBombClearsMatchingKind(t *testing.T) {
	e := New(testConfig(), 1)
	for _, x := range []int{0, 2, 4, 6, 8} {
		e.grid.Set(C(x, 17), B)
	}
	e.grid.Set(C(9, 17), A)
	e.grid.Set(C(9, 16), B)

	e.col = &Column{X: 0, TopY: -1, Cells: [ColumnLen]Kind{G, P, KindBomb}}
	e.phase = PhaseFalling
	e.Apply(Command{Type: CmdHardDrop})

	assert.Equal(t, KindBigExploding, e.grid.Get(C(0, 16)))
	assert.Equal(t, KindBigExploding, e.grid.Get(C(9, 16)))

	drain(t, e)

	// 7 cells: 16 points plus the same again for the big clear.
	assert.Equal(t, 32, e.Score())
	assert.Equal(t, 3, e.grid.FilledCount())
	assert.Equal(t, G, e.grid.Get(C(0, 16)))
	assert.Equal(t, P, e.grid.Get(C(0, 17)))
	assert.Equal(t, A, e.grid.Get(C(9, 17)))

	events := e.DrainEvents()
	big := eventsOfType(events, EventBigClear)
	require.Len(t, big, 1)
	assert.Equal(t, 7, big[0].Count)
	require.Len(t, eventsOfType(events, EventDropped), 1)
}

func TestBombOverNonFruitOnlyRemovesItself(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(C(1, 3), KindSkull)
	g.Set(C(2, 3), A)

	set := bombTargets(g, C(1, 2))
	assert.Equal(t, []Coord{C(1, 2)}, set.Coords())
}

func TestGunStopsAtGapsAndHazards(t *testing.T) {
	g := GridFromRows([][]Kind{
		{A, B, o, G, P, KindGun},
		{A, KindSkull, B, G, KindGun, o},
	})

	got := gunTargets(g, C(5, 0), DirLeft)
	assert.Equal(t, []Coord{C(5, 0), C(4, 0), C(3, 0)}, got.Coords())

	got = gunTargets(g, C(4, 1), DirLeft)
	assert.Equal(t, []Coord{C(4, 1), C(3, 1), C(2, 1)}, got.Coords())

	got = gunTargets(g, C(4, 1), DirRight)
	assert.Equal(t, []Coord{C(4, 1)}, got.Coords())
}

func TestArrowSkipsHazardsAndGaps(t *testing.T) {
	g := GridFromRows([][]Kind{
		{o, o, o, KindArrow},
		{o, o, o, o},
		{o, KindFrozen, o, o},
		{A, o, o, o},
	})
	// The ray passes (2,1) empty and (1,2) frozen before reaching (0,3).
	got := arrowTargets(g, C(3, 0), DirDownLeft)
	assert.Equal(t, []Coord{C(3, 0), C(0, 3)}, got.Coords())
}

func TestFireBurnsPlainNeighbors(t *testing.T) {
	g := GridFromRows([][]Kind{
		{A, B, KindSkull},
		{G, KindFire, o},
		{P, KindSoiled, A},
	})
	got := sortedCoords(fireTargets(g, C(1, 1)).Coords())
	want := sortedCoords([]Coord{C(1, 1), C(0, 0), C(1, 0), C(0, 1), C(0, 2), C(2, 2)})
	assert.Equal(t, want, got)
}

func TestClownScramblesNeighbors(t *testing.T) {
	e := New(testConfig(), 5)
	before := map[Coord]Kind{
		C(4, 17): A,
		C(5, 17): B,
		C(6, 17): G,
		C(4, 16): B,
		C(6, 16): P,
	}
	for c, k := range before {
		e.grid.Set(c, k)
	}
	e.grid.Set(C(5, 16), KindClown)

	e.dispatch(C(5, 16))

	for c, k := range before {
		got := e.grid.Get(c)
		assert.True(t, got.IsFruit(), "%v should hold fruit", c)
		assert.NotEqual(t, k, got, "%v kept its kind", c)
	}
	assert.True(t, e.grid.Get(C(5, 16)).IsFruit())
}

func TestSkullHazardLifecycle(t *testing.T) {
	e := New(testConfig(), 1)
	e.col = &Column{X: 0, TopY: -1, Cells: [ColumnLen]Kind{A, B, KindSkull}}
	e.phase = PhaseFalling
	e.Apply(Command{Type: CmdHardDrop})

	require.Equal(t, KindSkull, e.grid.Get(C(0, 17)))
	require.Equal(t, 1, e.hazards.len())

	timing := e.cfg.Hazards[KindSkull]
	e.elapsed = timing.Arm
	e.runDue()
	snap := e.Snapshot()
	require.Len(t, snap.Hazards, 1)
	assert.True(t, snap.Hazards[0].Armed)

	e.elapsed = timing.Trigger
	e.runDue()

	assert.Equal(t, B, e.grid.Get(C(0, 17)))
	assert.Equal(t, A, e.grid.Get(C(0, 16)))
	assert.Equal(t, 0, e.hazards.len())
	assert.Equal(t, 0, e.Score())

	events := e.DrainEvents()
	assert.Len(t, eventsOfType(events, EventHazardArmed), 1)
	assert.Len(t, eventsOfType(events, EventHazardResolved), 1)
}

func TestRestartCancelsHazards(t *testing.T) {
	e := New(testConfig(), 1)
	e.col = &Column{X: 0, TopY: -1, Cells: [ColumnLen]Kind{A, B, KindSkull}}
	e.phase = PhaseFalling
	e.Apply(Command{Type: CmdHardDrop})
	require.Equal(t, 1, e.hazards.len())

	e.Apply(Command{Type: CmdRestart})
	assert.Equal(t, 0, e.hazards.len())
	assert.Equal(t, 0, e.sched.pending())
	assert.Equal(t, 0, e.grid.FilledCount())

	// Rebuild the same board: a stale trigger must not touch it.
	e.grid.Set(C(0, 17), KindSkull)
	e.elapsed = time.Minute
	e.runDue()
	assert.Equal(t, KindSkull, e.grid.Get(C(0, 17)))

	events := e.DrainEvents()
	assert.Empty(t, eventsOfType(events, EventHazardResolved))
	assert.Len(t, eventsOfType(events, EventRestarted), 1)
}

func TestHazardReplacedAtSameAnchor(t *testing.T) {
	e := New(testConfig(), 1)
	e.grid.Set(C(3, 17), KindSkull)
	e.addHazard(C(3, 17), KindSkull, nil, nil)

	e.elapsed = 2 * time.Second
	e.addHazard(C(3, 17), KindSkull, nil, nil)
	require.Equal(t, 1, e.hazards.len())

	// The first record would have triggered at 6s.
	e.elapsed = 6 * time.Second
	e.runDue()
	assert.Equal(t, KindSkull, e.grid.Get(C(3, 17)))

	e.elapsed = 8 * time.Second
	e.runDue()
	assert.Equal(t, KindEmpty, e.grid.Get(C(3, 17)))
	assert.Nil(t, e.hazards.lookup(1))
	assert.Nil(t, e.hazards.lookup(2))
}

func TestHazardFollowsGravity(t *testing.T) {
	e := New(testConfig(), 1)
	e.grid.Set(C(0, 17), A)
	e.grid.Set(C(0, 16), KindSkull)
	e.addHazard(C(0, 16), KindSkull, nil, nil)

	e.grid.Set(C(0, 17), KindEmpty)
	e.settle()
	require.Equal(t, KindSkull, e.grid.Get(C(0, 17)))
	require.NotNil(t, e.hazards.at(C(0, 17)))

	e.elapsed = e.cfg.Hazards[KindSkull].Trigger
	e.runDue()
	assert.Equal(t, 0, e.grid.FilledCount())
}

func TestHazardCancelsWhenAnchorChanges(t *testing.T) {
	e := New(testConfig(), 1)
	e.grid.Set(C(2, 17), KindSkull)
	e.addHazard(C(2, 17), KindSkull, nil, nil)
	e.grid.Set(C(2, 17), A)

	e.elapsed = e.cfg.Hazards[KindSkull].Trigger
	e.runDue()

	assert.Equal(t, A, e.grid.Get(C(2, 17)))
	assert.Equal(t, 0, e.hazards.len())
	assert.Empty(t, eventsOfType(e.DrainEvents(), EventHazardResolved))
}

func TestHazardTriggerWaitsForCascade(t *testing.T) {
	e := New(testConfig(), 1)
	e.grid.Set(C(2, 17), KindSkull)
	e.addHazard(C(2, 17), KindSkull, nil, nil)

	e.resolving = true
	e.elapsed = e.cfg.Hazards[KindSkull].Trigger
	e.runDue()
	assert.Equal(t, KindSkull, e.grid.Get(C(2, 17)))

	e.resolving = false
	e.runDue()
	assert.Equal(t, KindEmpty, e.grid.Get(C(2, 17)))
}

func TestLockDuringPendingClearWaitsForCascade(t *testing.T) {
	e := New(testConfig(), 1)
	for x := 0; x < 3; x++ {
		e.grid.Set(C(x, 17), A)
	}
	e.beginClear(FindMatches(e.grid))
	e.col = &Column{X: 7, TopY: -1, Cells: [ColumnLen]Kind{B, G, P}}
	e.phase = PhaseFalling

	e.Apply(Command{Type: CmdHardDrop})
	assert.True(t, e.resolving)
	assert.Equal(t, PhaseResolving, e.phase)
	assert.Equal(t, KindExploding, e.grid.Get(C(0, 17)))

	e.Tick(10 * time.Millisecond)
	assert.Nil(t, e.col, "no spawn while cells are exploding")

	drain(t, e)
	assert.Equal(t, KindEmpty, e.grid.Get(C(0, 17)))
	assert.Equal(t, P, e.grid.Get(C(7, 17)))
	assert.Equal(t, PhaseIdle, e.phase)
	assert.Equal(t, 3, e.Score())

	e.Tick(0)
	assert.NotNil(t, e.col)
}

func TestPoopSoilsAndRestores(t *testing.T) {
	e := New(testConfig(), 1)
	before := map[Coord]Kind{
		C(0, 17): A,
		C(1, 17): B,
		C(2, 17): G,
		C(0, 16): G,
		C(2, 16): A,
	}
	for c, k := range before {
		e.grid.Set(c, k)
	}
	e.grid.Set(C(1, 16), KindPoop)

	e.dispatch(C(1, 16))
	assert.Equal(t, 5, e.grid.Count(func(k Kind) bool { return k == KindSoiled }))

	e.elapsed = e.cfg.Hazards[KindPoop].Trigger
	e.runDue()

	for c, k := range before {
		assert.Equal(t, k, e.grid.Get(c), "%v not restored", c)
	}
	assert.Equal(t, KindEmpty, e.grid.Get(C(1, 16)))
}

func TestFreezeCoversRowsBelowAndClears(t *testing.T) {
	e := New(testConfig(), 1)
	e.grid.Set(C(0, 17), A)
	e.grid.Set(C(1, 17), B)
	e.grid.Set(C(0, 16), G)
	e.grid.Set(C(5, 17), KindFreeze)

	e.dispatch(C(5, 17))
	assert.Equal(t, e.grid.W-1, e.grid.Count(func(k Kind) bool { return k == KindFrozen }))
	assert.Equal(t, G, e.grid.Get(C(0, 16)))

	e.elapsed = e.cfg.Hazards[KindFreeze].Trigger
	e.runDue()

	assert.Equal(t, 1, e.grid.FilledCount())
	assert.Equal(t, G, e.grid.Get(C(0, 17)))
	assert.Equal(t, 0, e.Score())
}

func TestSetDifficultyPurgesPalette(t *testing.T) {
	cfg := testConfig()
	cfg.Difficulty = 1
	e := New(cfg, 1)
	e.grid.Set(C(0, 17), P)
	e.grid.Set(C(0, 16), A)
	e.grid.Set(C(1, 17), B)
	e.grid.Set(C(2, 17), KindSkull)
	e.col = &Column{X: 5, TopY: 2, Cells: [ColumnLen]Kind{P, P, A}}
	e.phase = PhaseFalling

	e.Apply(Command{Type: CmdSetDifficulty, Difficulty: 0})

	assert.Equal(t, 0, e.Difficulty())
	assert.Equal(t, []Kind{A, B, G}, e.palette())
	assert.Equal(t, A, e.grid.Get(C(0, 17)))
	assert.Equal(t, KindEmpty, e.grid.Get(C(0, 16)))
	assert.Equal(t, B, e.grid.Get(C(1, 17)))
	assert.Equal(t, KindSkull, e.grid.Get(C(2, 17)))
	for _, k := range e.col.Cells {
		assert.NotEqual(t, P, k)
	}
	assert.Equal(t, 0, e.Score())
}

func TestLockAboveGridIsGameOver(t *testing.T) {
	e := New(testConfig(), 1)
	e.col = &Column{X: 0, TopY: -1, Cells: [ColumnLen]Kind{A, B, G}}
	e.phase = PhaseFalling

	e.lock()
	assert.True(t, e.GameOver())
	assert.Len(t, eventsOfType(e.DrainEvents(), EventGameOver), 1)

	elapsed := e.Elapsed()
	e.Tick(time.Second)
	assert.Equal(t, elapsed, e.Elapsed(), "ticks must be ignored after game over")
}

func TestBlockedSpawnIsGameOver(t *testing.T) {
	e := New(testConfig(), 1)
	for x := 0; x < e.grid.W; x++ {
		e.grid.Set(C(x, 2), A)
	}

	e.Tick(0)
	require.True(t, e.GameOver())
	assert.Nil(t, e.Snapshot().Column)

	e.Apply(Command{Type: CmdRestart})
	assert.False(t, e.GameOver())
	assert.Equal(t, 0, e.grid.FilledCount())
	assert.Equal(t, 0, e.Score())
	assert.Equal(t, 1, e.Level())
}

func TestCommandsWithoutColumnAreNoops(t *testing.T) {
	e := New(testConfig(), 1)
	for _, typ := range []CommandType{CmdMoveLeft, CmdMoveRight, CmdRotate, CmdHardDrop} {
		e.Apply(Command{Type: typ})
	}
	assert.Empty(t, e.DrainEvents())
}

func TestTickSpawnsAndFalls(t *testing.T) {
	e := New(testConfig(), 1)

	e.Tick(0)
	require.NotNil(t, e.col)
	assert.Equal(t, -1, e.col.TopY)
	assert.Equal(t, PhaseFalling, e.phase)

	e.Tick(e.cfg.BaseDrop)
	assert.Equal(t, 0, e.col.TopY)

	e.col.X = 0
	e.Apply(Command{Type: CmdMoveLeft})
	assert.Equal(t, 0, e.col.X)
	e.Apply(Command{Type: CmdMoveRight})
	assert.Equal(t, 1, e.col.X)

	cells := e.col.Cells
	e.Apply(Command{Type: CmdRotate})
	assert.Equal(t, [ColumnLen]Kind{cells[2], cells[0], cells[1]}, e.col.Cells)
}

func TestCascadeTerminates(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		cfg := testConfig()
		cfg.Difficulty = 0
		e := New(cfg, seed)
		for y := 8; y < e.grid.H; y++ {
			for x := 0; x < e.grid.W; x++ {
				e.grid.Set(C(x, y), e.randomFruit())
			}
		}

		e.resolve()
		drain(t, e)

		assert.Equal(t, 0, FindMatches(e.grid).Len(), "seed %d", seed)
		assert.False(t, ApplyGravity(e.grid), "seed %d left gaps", seed)
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	e := New(DefaultConfig(), 11)
	prev := 0
	for i := 0; i < 4000 && !e.GameOver(); i++ {
		e.Tick(50 * time.Millisecond)
		if i%9 == 0 {
			e.Apply(Command{Type: CmdHardDrop})
		}
		require.GreaterOrEqual(t, e.Score(), prev)
		prev = e.Score()
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	play := func() Snapshot {
		e := New(DefaultConfig(), 42)
		for i := 0; i < 3000; i++ {
			e.Tick(50 * time.Millisecond)
			switch {
			case i%37 == 0:
				e.Apply(Command{Type: CmdHardDrop})
			case i%13 == 0:
				e.Apply(Command{Type: CmdMoveRight})
			case i%11 == 0:
				e.Apply(Command{Type: CmdMoveLeft})
			case i%7 == 0:
				e.Apply(Command{Type: CmdRotate})
			}
			if e.GameOver() {
				e.Apply(Command{Type: CmdRestart})
			}
		}
		return e.Snapshot()
	}

	assert.Equal(t, play(), play())
}
