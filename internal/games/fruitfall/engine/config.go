package engine

import (
	"errors"
	"fmt"
	"time"
)

// Curve selects how the drop interval shrinks over a game.
type Curve uint8

const (
	// CurveLogistic eases from BaseDrop toward MinDrop as elapsed time grows.
	CurveLogistic Curve = iota
	// CurveLinear subtracts LevelStep per level above the first.
	CurveLinear
)

// String returns the configuration name of the curve.
func (c Curve) String() string {
	switch c {
	case CurveLogistic:
		return "logistic"
	case CurveLinear:
		return "linear"
	default:
		return "unknown"
	}
}

// SpecialWeight describes when a special becomes available at spawn time
// and how likely it is once unlocked.
type SpecialWeight struct {
	Kind        Kind
	UnlockLevel int
	Weight      int
}

// HazardTiming holds the arm and trigger delays of a delayed hazard,
// both measured from the moment the hazard locks.
type HazardTiming struct {
	Arm     time.Duration
	Trigger time.Duration
}

// Config holds every tunable of the engine.
type Config struct {
	Width        int
	Height       int
	ReuseColumnX bool // Spawn at the previous column's x instead of a random one

	BaseDrop       time.Duration
	MinDrop        time.Duration
	Curve          Curve
	CurveMidpoint  time.Duration // Logistic: elapsed time at the steepest point
	CurveSteepness time.Duration // Logistic: larger values flatten the curve
	LevelStep      time.Duration // Linear: reduction per level
	ExplodeDelay   time.Duration

	BigClearSize    int    // Sets with at least this many cells are big clears
	LevelThresholds [2]int // Score below [0] is level 1, below [1] is level 2, then doubling

	Palette      []Kind // Ordered fruit palette
	PaletteSizes []int  // Palette prefix length per difficulty, easiest first
	Difficulty   int    // Index into PaletteSizes

	SpecialsEnabled bool
	SpecialMinGap   time.Duration
	SpecialMinDelay time.Duration
	SpecialMaxDelay time.Duration
	SkullBaseChance float64
	SkullPerLevel   float64
	SkullMaxChance  float64
	Specials        []SpecialWeight

	GunDir   Dir
	ArrowDir Dir
	Hazards  map[Kind]HazardTiming
}

// DefaultConfig returns the stock tuning for a 10×18 board.
func DefaultConfig() Config {
	return Config{
		Width:  10,
		Height: 18,

		BaseDrop:       1000 * time.Millisecond,
		MinDrop:        120 * time.Millisecond,
		Curve:          CurveLogistic,
		CurveMidpoint:  180 * time.Second,
		CurveSteepness: 45 * time.Second,
		LevelStep:      80 * time.Millisecond,
		ExplodeDelay:   300 * time.Millisecond,

		BigClearSize:    7,
		LevelThresholds: [2]int{50, 150},

		Palette:      Fruits(),
		PaletteSizes: []int{3, 4, 5, 6},
		Difficulty:   1,

		SpecialsEnabled: true,
		SpecialMinGap:   5 * time.Second,
		SpecialMinDelay: 30 * time.Second,
		SpecialMaxDelay: 45 * time.Second,
		SkullBaseChance: 0.10,
		SkullPerLevel:   0.03,
		SkullMaxChance:  0.35,
		Specials: []SpecialWeight{
			{Kind: KindBomb, UnlockLevel: 1, Weight: 3},
			{Kind: KindGun, UnlockLevel: 1, Weight: 2},
			{Kind: KindArrow, UnlockLevel: 2, Weight: 2},
			{Kind: KindFire, UnlockLevel: 3, Weight: 2},
			{Kind: KindClown, UnlockLevel: 3, Weight: 1},
			{Kind: KindPoop, UnlockLevel: 4, Weight: 1},
			{Kind: KindFreeze, UnlockLevel: 5, Weight: 1},
		},

		GunDir:   DirLeft,
		ArrowDir: DirDownLeft,
		Hazards: map[Kind]HazardTiming{
			KindSkull:  {Arm: 3 * time.Second, Trigger: 6 * time.Second},
			KindPoop:   {Arm: 2 * time.Second, Trigger: 5 * time.Second},
			KindFreeze: {Arm: 2 * time.Second, Trigger: 4 * time.Second},
		},
	}
}

// Validate reports the first inconsistency in the configuration.
func (c Config) Validate() error {
	switch {
	case c.Width < MinRun || c.Height < 3:
		return fmt.Errorf("engine: board %dx%d is too small", c.Width, c.Height)
	case c.Width > 0xFFFF || c.Height > 0xFFFF:
		return fmt.Errorf("engine: board %dx%d is too large", c.Width, c.Height)
	case c.BaseDrop <= 0 || c.MinDrop <= 0:
		return errors.New("engine: drop intervals must be positive")
	case c.MinDrop > c.BaseDrop:
		return fmt.Errorf("engine: min drop %v exceeds base drop %v", c.MinDrop, c.BaseDrop)
	case c.Curve == CurveLogistic && c.CurveSteepness <= 0:
		return errors.New("engine: logistic steepness must be positive")
	case c.ExplodeDelay < 0:
		return errors.New("engine: explode delay must not be negative")
	case c.BigClearSize < MinRun:
		return fmt.Errorf("engine: big clear size %d is below %d", c.BigClearSize, MinRun)
	case c.LevelThresholds[0] <= 0 || c.LevelThresholds[1] <= c.LevelThresholds[0]:
		return fmt.Errorf("engine: level thresholds %v must be positive and increasing", c.LevelThresholds)
	case len(c.PaletteSizes) == 0:
		return errors.New("engine: at least one difficulty is required")
	case c.SpecialMaxDelay < c.SpecialMinDelay:
		return errors.New("engine: special max delay is below min delay")
	case !c.GunDir.IsHorizontal():
		return fmt.Errorf("engine: gun direction %s is not horizontal", c.GunDir)
	case !c.ArrowDir.IsDiagonal():
		return fmt.Errorf("engine: arrow direction %s is not diagonal", c.ArrowDir)
	}

	for _, k := range c.Palette {
		if !k.IsFruit() {
			return fmt.Errorf("engine: palette entry %s is not a fruit", k)
		}
	}
	for i, n := range c.PaletteSizes {
		if n < 1 || n > len(c.Palette) {
			return fmt.Errorf("engine: difficulty %d uses %d fruits, palette has %d", i, n, len(c.Palette))
		}
	}
	for _, s := range c.Specials {
		if !s.Kind.IsSpecial() || s.Kind == KindSkull {
			return fmt.Errorf("engine: %s cannot be weighted as a special", s.Kind)
		}
		if s.UnlockLevel < 1 || s.Weight < 0 {
			return fmt.Errorf("engine: invalid weighting for %s", s.Kind)
		}
	}
	for _, k := range []Kind{KindSkull, KindPoop, KindFreeze} {
		t, ok := c.Hazards[k]
		if !ok {
			return fmt.Errorf("engine: missing hazard timing for %s", k)
		}
		if t.Arm < 0 || t.Trigger < t.Arm {
			return fmt.Errorf("engine: hazard %s must arm before it triggers", k)
		}
	}
	return nil
}
