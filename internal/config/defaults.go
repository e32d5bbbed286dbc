package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/fruitfall.yaml
var defaultFruitfallYAML []byte

// DefaultFruitfallConfig returns the hardcoded configuration. It matches the
// embedded defaults/fruitfall.yaml and is the last fallback of the loader.
func DefaultFruitfallConfig() FruitfallConfig {
	return FruitfallConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 18,
		},
		Timing: TimingConfig{
			BaseDrop:       time.Second,
			MinDrop:        120 * time.Millisecond,
			CurveMidpoint:  3 * time.Minute,
			CurveSteepness: 45 * time.Second,
			LevelStep:      80 * time.Millisecond,
			ExplodeDelay:   300 * time.Millisecond,
		},
		Scoring: ScoringConfig{
			BigClearSize:    7,
			LevelThresholds: []int{50, 150},
		},
		Specials: SpecialsConfig{
			Enabled:  true,
			MinGap:   5 * time.Second,
			MinDelay: 30 * time.Second,
			MaxDelay: 45 * time.Second,
			Skull: SkullChance{
				Base:     0.10,
				PerLevel: 0.03,
				Max:      0.35,
			},
			Weights: []SpecialWeight{
				{Kind: "bomb", UnlockLevel: 1, Weight: 3},
				{Kind: "gun", UnlockLevel: 1, Weight: 2},
				{Kind: "arrow", UnlockLevel: 2, Weight: 2},
				{Kind: "fire", UnlockLevel: 3, Weight: 2},
				{Kind: "clown", UnlockLevel: 3, Weight: 1},
				{Kind: "poop", UnlockLevel: 4, Weight: 1},
				{Kind: "freeze", UnlockLevel: 5, Weight: 1},
			},
			GunDirection:   "left",
			ArrowDirection: "down_left",
		},
		Hazards: HazardsConfig{
			Skull:  HazardTiming{Arm: 3 * time.Second, Trigger: 6 * time.Second},
			Poop:   HazardTiming{Arm: 2 * time.Second, Trigger: 5 * time.Second},
			Freeze: HazardTiming{Arm: 2 * time.Second, Trigger: 4 * time.Second},
		},
		Difficulty: DifficultyConfig{
			Palette: []string{"strawberry", "banana", "grape", "pineapple", "apple", "cherry", "peach"},
			Presets: []PresetConfig{
				{Name: string(PresetEasy), Fruits: 3},
				{Name: string(PresetNormal), Fruits: 4},
				{Name: string(PresetHard), Fruits: 5},
				{Name: string(PresetExpert), Fruits: 6},
			},
			Default: string(PresetNormal),
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFruitfallYAML
}
