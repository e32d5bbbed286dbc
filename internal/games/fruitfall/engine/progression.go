package engine

import (
	"math"
	"time"
)

// ScoreFor returns the points for clearing n cells: floor(n*n/3).
func ScoreFor(n int) int {
	if n <= 0 {
		return 0
	}
	return n * n / 3
}

// LevelForScore maps a cumulative score to a level. Scores below t[0] are
// level 1, below t[1] level 2; after that every doubling of t[1] adds one.
func LevelForScore(score int, t [2]int) int {
	switch {
	case score < t[0]:
		return 1
	case score < t[1]:
		return 2
	}
	level := 3
	for next := t[1] * 2; score >= next; next *= 2 {
		level++
	}
	return level
}

// DropInterval returns the fall period for the given elapsed time and level.
// Both curves are non-increasing and never go below cfg.MinDrop.
func DropInterval(cfg Config, elapsed time.Duration, level int) time.Duration {
	var d time.Duration

	switch cfg.Curve {
	case CurveLinear:
		d = cfg.BaseDrop - time.Duration(level-1)*cfg.LevelStep
	default:
		// Logistic, rescaled so that f(0) == BaseDrop.
		m := cfg.CurveMidpoint.Seconds()
		s := cfg.CurveSteepness.Seconds()
		t := elapsed.Seconds()
		norm := (1 + math.Exp(-m/s)) / (1 + math.Exp((t-m)/s))
		span := float64(cfg.BaseDrop - cfg.MinDrop)
		d = cfg.MinDrop + time.Duration(span*norm)
	}

	if d < cfg.MinDrop {
		return cfg.MinDrop
	}
	if d > cfg.BaseDrop {
		return cfg.BaseDrop
	}
	return d
}

// DropInterval returns the current fall period.
func (e *Engine) DropInterval() time.Duration {
	return DropInterval(e.cfg, e.elapsed, e.level)
}

// addScore awards points and raises one LevelUp per threshold crossed.
func (e *Engine) addScore(points int) {
	if points <= 0 {
		return
	}
	e.score += points

	next := LevelForScore(e.score, e.cfg.LevelThresholds)
	for l := e.level + 1; l <= next; l++ {
		e.emit(Event{Type: EventLevelUp, Level: l})
	}
	if next > e.level {
		e.level = next
	}
}

// palette returns the fruit kinds allowed at the current difficulty.
func (e *Engine) palette() []Kind {
	return e.cfg.Palette[:e.cfg.PaletteSizes[e.difficulty]]
}

// allowed reports whether k may stay on the board at the current difficulty.
// Specials and markers are difficulty-independent.
func (e *Engine) allowed(k Kind) bool {
	if !k.IsFruit() {
		return true
	}
	for _, p := range e.palette() {
		if p == k {
			return true
		}
	}
	return false
}

func (e *Engine) randomFruit() Kind {
	p := e.palette()
	return p[e.rng.Intn(len(p))]
}

// randomFruitExcept draws a fruit different from prev when the palette
// leaves any choice.
func (e *Engine) randomFruitExcept(prev Kind) Kind {
	p := e.palette()
	choices := make([]Kind, 0, len(p))
	for _, k := range p {
		if k != prev {
			choices = append(choices, k)
		}
	}
	if len(choices) == 0 {
		return prev
	}
	return choices[e.rng.Intn(len(choices))]
}

// skullChance is the probability that a special spawn is a skull.
func (e *Engine) skullChance() float64 {
	c := e.cfg.SkullBaseChance + e.cfg.SkullPerLevel*float64(e.level-1)
	return math.Min(c, e.cfg.SkullMaxChance)
}

// pickSpecial chooses the special for a spawn. Unlocked specials are
// weighted by their base weight times their unlock level, so late unlocks
// show up more once available.
func (e *Engine) pickSpecial() Kind {
	if e.rng.Float64() < e.skullChance() {
		return KindSkull
	}

	total := 0
	for _, s := range e.cfg.Specials {
		if s.UnlockLevel <= e.level {
			total += s.Weight * s.UnlockLevel
		}
	}
	if total == 0 {
		return KindSkull
	}

	r := e.rng.Intn(total)
	for _, s := range e.cfg.Specials {
		if s.UnlockLevel > e.level {
			continue
		}
		r -= s.Weight * s.UnlockLevel
		if r < 0 {
			return s.Kind
		}
	}
	return KindSkull
}

// scheduleSpecial sets the next special spawn time relative to from. The
// delay shrinks with the drop interval and never goes below SpecialMinGap.
func (e *Engine) scheduleSpecial(from time.Duration) {
	delay := e.cfg.SpecialMinDelay
	if span := e.cfg.SpecialMaxDelay - e.cfg.SpecialMinDelay; span > 0 {
		delay += time.Duration(e.rng.Int63n(int64(span)))
	}
	ratio := float64(e.DropInterval()) / float64(e.cfg.BaseDrop)
	delay = time.Duration(float64(delay) * ratio)
	if delay < e.cfg.SpecialMinGap {
		delay = e.cfg.SpecialMinGap
	}
	e.nextSpecialAt = from + delay
}
