package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreFor(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{0, 0},
		{3, 3},
		{4, 5},
		{5, 8},
		{6, 12},
		{7, 16},
		{10, 33},
	}

	for _, tt := range tests {
		if got := ScoreFor(tt.n); got != tt.want {
			t.Errorf("ScoreFor(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestLevelForScore(t *testing.T) {
	th := [2]int{50, 150}
	tests := []struct {
		score int
		want  int
	}{
		{0, 1},
		{49, 1},
		{50, 2},
		{149, 2},
		{150, 3},
		{299, 3},
		{300, 4},
		{599, 4},
		{600, 5},
		{1200, 6},
	}

	for _, tt := range tests {
		if got := LevelForScore(tt.score, th); got != tt.want {
			t.Errorf("LevelForScore(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestLevelIsMonotonic(t *testing.T) {
	th := [2]int{50, 150}
	prev := LevelForScore(0, th)
	for s := 1; s < 5000; s++ {
		l := LevelForScore(s, th)
		require.GreaterOrEqual(t, l, prev, "score %d", s)
		require.LessOrEqual(t, l-prev, 1, "score %d skipped a level", s)
		prev = l
	}
}

func TestLevelUpFiresOncePerThreshold(t *testing.T) {
	e := New(testConfig(), 1)

	e.addScore(60)
	assert.Equal(t, 2, e.Level())
	assert.Equal(t, []Event{{Type: EventLevelUp, Level: 2}}, e.DrainEvents())

	e.addScore(1)
	assert.Empty(t, e.DrainEvents())

	// 61 + 500 crosses 150 and 300 but not 600.
	e.addScore(500)
	assert.Equal(t, 4, e.Level())
	assert.Equal(t, []Event{
		{Type: EventLevelUp, Level: 3},
		{Type: EventLevelUp, Level: 4},
	}, e.DrainEvents())
}

func TestDropIntervalLogistic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Curve = CurveLogistic

	assert.Equal(t, cfg.BaseDrop, DropInterval(cfg, 0, 1))

	prev := DropInterval(cfg, 0, 1)
	for s := 1; s <= 1200; s++ {
		d := DropInterval(cfg, time.Duration(s)*time.Second, 1)
		require.LessOrEqual(t, d, prev, "interval grew at %ds", s)
		require.GreaterOrEqual(t, d, cfg.MinDrop)
		prev = d
	}
	assert.InDelta(t, float64(cfg.MinDrop), float64(prev), float64(5*time.Millisecond))
}

func TestDropIntervalLinear(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Curve = CurveLinear
	cfg.BaseDrop = time.Second
	cfg.LevelStep = 100 * time.Millisecond
	cfg.MinDrop = 250 * time.Millisecond

	tests := []struct {
		level int
		want  time.Duration
	}{
		{1, time.Second},
		{2, 900 * time.Millisecond},
		{8, 300 * time.Millisecond},
		{9, 250 * time.Millisecond},
		{40, 250 * time.Millisecond},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DropInterval(cfg, time.Hour, tt.level), "level %d", tt.level)
	}
}

func TestScheduleSpecialBounds(t *testing.T) {
	cfg := testConfig()
	e := New(cfg, 7)

	for i := 0; i < 200; i++ {
		from := time.Duration(i) * time.Second
		e.scheduleSpecial(from)
		delay := e.nextSpecialAt - from
		require.GreaterOrEqual(t, delay, cfg.SpecialMinGap)
		require.LessOrEqual(t, delay, cfg.SpecialMaxDelay)
	}

	// A fast drop shortens the cadence but never below the minimum gap.
	e.cfg.SpecialMinGap = 10 * time.Second
	e.elapsed = time.Hour
	e.scheduleSpecial(e.elapsed)
	assert.Equal(t, e.cfg.SpecialMinGap, e.nextSpecialAt-e.elapsed)

	e.cfg.SpecialMinGap = cfg.SpecialMinGap
	e.scheduleSpecial(e.elapsed)
	assert.Less(t, e.nextSpecialAt-e.elapsed, cfg.SpecialMinDelay)
}

func TestSpawnInsertsSpecialWhenDue(t *testing.T) {
	tests := []struct {
		name     string
		nextAt   time.Duration
		specials int
	}{
		{"due", 0, 1},
		{"not yet", time.Hour, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.SpecialsEnabled = true
			e := New(cfg, 5)
			e.elapsed = 10 * time.Second
			e.nextSpecialAt = tt.nextAt

			e.spawn()
			require.NotNil(t, e.col)

			n := 0
			for _, k := range e.col.Cells {
				if k.IsSpecial() {
					n++
				} else {
					assert.True(t, k.IsFruit())
				}
			}
			assert.Equal(t, tt.specials, n)

			if tt.specials > 0 {
				assert.Greater(t, e.nextSpecialAt, e.elapsed)
			} else {
				assert.Equal(t, tt.nextAt, e.nextSpecialAt)
			}
		})
	}
}

func TestPickSpecialRespectsUnlockLevel(t *testing.T) {
	e := New(testConfig(), 3)
	e.level = 1

	for i := 0; i < 500; i++ {
		k := e.pickSpecial()
		assert.Contains(t, []Kind{KindSkull, KindBomb, KindGun}, k)
	}

	e.level = 10
	seen := map[Kind]bool{}
	for i := 0; i < 2000; i++ {
		seen[e.pickSpecial()] = true
	}
	for _, k := range []Kind{KindArrow, KindFire, KindClown, KindPoop, KindFreeze} {
		assert.True(t, seen[k], "%s never picked at level 10", k)
	}
}

func TestSkullChanceCapped(t *testing.T) {
	e := New(testConfig(), 1)
	e.level = 1
	assert.InDelta(t, 0.10, e.skullChance(), 1e-9)
	e.level = 3
	assert.InDelta(t, 0.16, e.skullChance(), 1e-9)
	e.level = 50
	assert.InDelta(t, 0.35, e.skullChance(), 1e-9)
}

func TestConfigValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"gun not horizontal", func(c *Config) { c.GunDir = DirDown }},
		{"arrow not diagonal", func(c *Config) { c.ArrowDir = DirLeft }},
		{"min above base", func(c *Config) { c.MinDrop = 2 * c.BaseDrop }},
		{"palette too small", func(c *Config) { c.PaletteSizes = []int{9} }},
		{"special in palette", func(c *Config) { c.Palette = []Kind{KindBomb} }},
		{"thresholds not increasing", func(c *Config) { c.LevelThresholds = [2]int{100, 50} }},
		{"missing hazard", func(c *Config) { delete(c.Hazards, KindPoop) }},
		{"tiny board", func(c *Config) { c.Width = 2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
