package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/fruitfall/internal/games/fruitfall/engine"
)

// DifficultyPreset is a named palette size.
type DifficultyPreset string

const (
	PresetEasy   DifficultyPreset = "easy"
	PresetNormal DifficultyPreset = "normal"
	PresetHard   DifficultyPreset = "hard"
	PresetExpert DifficultyPreset = "expert"
)

// PresetNames returns the configured preset names, easiest first.
func (c FruitfallConfig) PresetNames() []string {
	names := make([]string, len(c.Difficulty.Presets))
	for i, p := range c.Difficulty.Presets {
		names[i] = p.Name
	}
	return names
}

// PresetIndex resolves a preset name. An empty name selects the default.
func (c FruitfallConfig) PresetIndex(name string) (int, error) {
	if name == "" {
		name = c.Difficulty.Default
	}
	for i, p := range c.Difficulty.Presets {
		if strings.EqualFold(p.Name, name) {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%w: %q (have %s)", ErrUnknownPreset, name, strings.Join(c.PresetNames(), ", "))
}

// PresetName returns the name of preset i, or "" when out of range.
func (c FruitfallConfig) PresetName(i int) string {
	if i < 0 || i >= len(c.Difficulty.Presets) {
		return ""
	}
	return c.Difficulty.Presets[i].Name
}

// Engine converts the document into engine settings for the given fall
// curve and difficulty preset.
func (c FruitfallConfig) Engine(curve engine.Curve, preset string) (engine.Config, error) {
	var ec engine.Config

	palette, err := parseKinds(c.Difficulty.Palette)
	if err != nil {
		return ec, err
	}
	if len(c.Scoring.LevelThresholds) != 2 {
		return ec, fmt.Errorf("%w: level_thresholds needs 2 values, got %d", ErrInvalid, len(c.Scoring.LevelThresholds))
	}
	gunDir, err := engine.ParseDir(c.Specials.GunDirection)
	if err != nil {
		return ec, fmt.Errorf("%w: gun_direction: %v", ErrInvalid, err)
	}
	arrowDir, err := engine.ParseDir(c.Specials.ArrowDirection)
	if err != nil {
		return ec, fmt.Errorf("%w: arrow_direction: %v", ErrInvalid, err)
	}
	difficulty, err := c.PresetIndex(preset)
	if err != nil {
		return ec, err
	}

	weights := make([]engine.SpecialWeight, 0, len(c.Specials.Weights))
	for _, w := range c.Specials.Weights {
		k, err := parseKind(w.Kind)
		if err != nil {
			return ec, err
		}
		weights = append(weights, engine.SpecialWeight{Kind: k, UnlockLevel: w.UnlockLevel, Weight: w.Weight})
	}

	sizes := make([]int, len(c.Difficulty.Presets))
	for i, p := range c.Difficulty.Presets {
		sizes[i] = p.Fruits
	}

	ec = engine.Config{
		Width:        c.Board.Width,
		Height:       c.Board.Height,
		ReuseColumnX: c.Board.ReuseColumnX,

		BaseDrop:       c.Timing.BaseDrop,
		MinDrop:        c.Timing.MinDrop,
		Curve:          curve,
		CurveMidpoint:  c.Timing.CurveMidpoint,
		CurveSteepness: c.Timing.CurveSteepness,
		LevelStep:      c.Timing.LevelStep,
		ExplodeDelay:   c.Timing.ExplodeDelay,

		BigClearSize:    c.Scoring.BigClearSize,
		LevelThresholds: [2]int{c.Scoring.LevelThresholds[0], c.Scoring.LevelThresholds[1]},

		Palette:      palette,
		PaletteSizes: sizes,
		Difficulty:   difficulty,

		SpecialsEnabled: c.Specials.Enabled,
		SpecialMinGap:   c.Specials.MinGap,
		SpecialMinDelay: c.Specials.MinDelay,
		SpecialMaxDelay: c.Specials.MaxDelay,
		SkullBaseChance: c.Specials.Skull.Base,
		SkullPerLevel:   c.Specials.Skull.PerLevel,
		SkullMaxChance:  c.Specials.Skull.Max,
		Specials:        weights,

		GunDir:   gunDir,
		ArrowDir: arrowDir,
		Hazards: map[engine.Kind]engine.HazardTiming{
			engine.KindSkull:  engine.HazardTiming(c.Hazards.Skull),
			engine.KindPoop:   engine.HazardTiming(c.Hazards.Poop),
			engine.KindFreeze: engine.HazardTiming(c.Hazards.Freeze),
		},
	}

	if err := ec.Validate(); err != nil {
		return ec, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return ec, nil
}

// Validate checks that the document converts into a valid engine
// configuration with its default preset.
func (c FruitfallConfig) Validate() error {
	_, err := c.Engine(engine.CurveLogistic, "")
	return err
}

func parseKind(name string) (engine.Kind, error) {
	k, err := engine.ParseKind(name)
	if err != nil {
		return k, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return k, nil
}

func parseKinds(names []string) ([]engine.Kind, error) {
	kinds := make([]engine.Kind, len(names))
	for i, n := range names {
		k, err := parseKind(n)
		if err != nil {
			return nil, err
		}
		kinds[i] = k
	}
	return kinds, nil
}
