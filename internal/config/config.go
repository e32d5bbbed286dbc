// Package config loads the fruitfall YAML configuration and maps difficulty
// presets onto engine settings.
package config

import (
	"errors"
	"time"
)

var (
	// ErrUnknownPreset is returned for a difficulty name with no preset.
	ErrUnknownPreset = errors.New("config: unknown difficulty preset")
	// ErrUnknownKind is returned for a token name the engine does not know.
	ErrUnknownKind = errors.New("config: unknown token kind")
	// ErrInvalid wraps every other validation failure.
	ErrInvalid = errors.New("config: invalid configuration")
)

// FruitfallConfig is the full YAML document.
type FruitfallConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Specials   SpecialsConfig   `yaml:"specials"`
	Hazards    HazardsConfig    `yaml:"hazards"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig sets the grid size and spawn placement.
type BoardConfig struct {
	Width        int  `yaml:"width"`
	Height       int  `yaml:"height"`
	ReuseColumnX bool `yaml:"reuse_column_x"`
}

// TimingConfig holds the fall curves and the explosion delay.
// The mode picks the curve: fruitfall uses the logistic one,
// fruitfall_levels the linear per-level one.
type TimingConfig struct {
	BaseDrop       time.Duration `yaml:"base_drop"`
	MinDrop        time.Duration `yaml:"min_drop"`
	CurveMidpoint  time.Duration `yaml:"curve_midpoint"`
	CurveSteepness time.Duration `yaml:"curve_steepness"`
	LevelStep      time.Duration `yaml:"level_step"`
	ExplodeDelay   time.Duration `yaml:"explode_delay"`
}

// ScoringConfig holds the big clear size and the level thresholds.
type ScoringConfig struct {
	BigClearSize    int   `yaml:"big_clear_size"`
	LevelThresholds []int `yaml:"level_thresholds"`
}

// SpecialsConfig controls the special token cadence and weighting.
type SpecialsConfig struct {
	Enabled        bool            `yaml:"enabled"`
	MinGap         time.Duration   `yaml:"min_gap"`
	MinDelay       time.Duration   `yaml:"min_delay"`
	MaxDelay       time.Duration   `yaml:"max_delay"`
	Skull          SkullChance     `yaml:"skull"`
	Weights        []SpecialWeight `yaml:"weights"`
	GunDirection   string          `yaml:"gun_direction"`
	ArrowDirection string          `yaml:"arrow_direction"`
}

// SkullChance is the level-scaled probability of a skull.
type SkullChance struct {
	Base     float64 `yaml:"base"`
	PerLevel float64 `yaml:"per_level"`
	Max      float64 `yaml:"max"`
}

// SpecialWeight gates one special by level and weights it once unlocked.
type SpecialWeight struct {
	Kind        string `yaml:"kind"`
	UnlockLevel int    `yaml:"unlock_level"`
	Weight      int    `yaml:"weight"`
}

// HazardsConfig holds the arm and trigger delays of each delayed hazard.
type HazardsConfig struct {
	Skull  HazardTiming `yaml:"skull"`
	Poop   HazardTiming `yaml:"poop"`
	Freeze HazardTiming `yaml:"freeze"`
}

// HazardTiming is measured from the moment the hazard locks.
type HazardTiming struct {
	Arm     time.Duration `yaml:"arm"`
	Trigger time.Duration `yaml:"trigger"`
}

// DifficultyConfig lists the ordered fruit palette and the presets that
// select a prefix of it.
type DifficultyConfig struct {
	Palette []string       `yaml:"palette"`
	Presets []PresetConfig `yaml:"presets"`
	Default string         `yaml:"default"`
}

// PresetConfig names a palette prefix length.
type PresetConfig struct {
	Name   string `yaml:"name"`
	Fruits int    `yaml:"fruits"`
}
