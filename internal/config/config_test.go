package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/fruitfall/internal/games/fruitfall/engine"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg := DefaultFruitfallConfig()
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultFruitfallConfig(), cfg)
}

func TestDefaultConfigMatchesEngineDefaults(t *testing.T) {
	ec, err := DefaultFruitfallConfig().Engine(engine.CurveLogistic, "")
	require.NoError(t, err)
	assert.Equal(t, engine.DefaultConfig(), ec)
}

func TestLoadCustomPathOverridesSomeKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("board:\n  width: 8\ntiming:\n  explode_delay: 150ms\ndifficulty:\n  default: hard\n")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Board.Width)
	assert.Equal(t, 18, cfg.Board.Height, "unset keys keep their default")
	assert.Equal(t, 150*time.Millisecond, cfg.Timing.ExplodeDelay)

	idx, err := cfg.PresetIndex("")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board: [unclosed"), 0o600))
	_, err = Load(path)
	assert.Error(t, err)

	path = filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(path, []byte("specials:\n  gun_direction: up\n"), 0o600))
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadWithoutFilesUsesDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultFruitfallConfig(), cfg)
}

func TestPresetIndex(t *testing.T) {
	cfg := DefaultFruitfallConfig()

	tests := []struct {
		name string
		want int
	}{
		{"easy", 0},
		{"normal", 1},
		{"HARD", 2},
		{"expert", 3},
		{"", 1},
	}
	for _, tt := range tests {
		got, err := cfg.PresetIndex(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := cfg.PresetIndex("nightmare")
	assert.ErrorIs(t, err, ErrUnknownPreset)
	assert.Equal(t, "hard", cfg.PresetName(2))
	assert.Equal(t, "", cfg.PresetName(9))
}

func TestEngineConversion(t *testing.T) {
	cfg := DefaultFruitfallConfig()

	ec, err := cfg.Engine(engine.CurveLinear, "easy")
	require.NoError(t, err)
	assert.Equal(t, engine.CurveLinear, ec.Curve)
	assert.Equal(t, 0, ec.Difficulty)
	assert.Equal(t, 3, ec.PaletteSizes[ec.Difficulty])
	assert.Equal(t, engine.DirLeft, ec.GunDir)
	assert.Equal(t, 6*time.Second, ec.Hazards[engine.KindSkull].Trigger)
}

func TestEngineConversionErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FruitfallConfig)
		target error
	}{
		{"unknown fruit", func(c *FruitfallConfig) { c.Difficulty.Palette[0] = "durian" }, ErrUnknownKind},
		{"unknown special", func(c *FruitfallConfig) { c.Specials.Weights[0].Kind = "laser" }, ErrUnknownKind},
		{"bad direction", func(c *FruitfallConfig) { c.Specials.ArrowDirection = "sideways" }, ErrInvalid},
		{"one threshold", func(c *FruitfallConfig) { c.Scoring.LevelThresholds = []int{10} }, ErrInvalid},
		{"unknown default", func(c *FruitfallConfig) { c.Difficulty.Default = "insane" }, ErrUnknownPreset},
		{"preset too large", func(c *FruitfallConfig) { c.Difficulty.Presets[3].Fruits = 12 }, ErrInvalid},
		{"trigger before arm", func(c *FruitfallConfig) { c.Hazards.Poop.Trigger = time.Second }, ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultFruitfallConfig()
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.target)
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	out, err := DefaultFruitfallConfig().Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(out), "explode_delay: 300ms")

	var back FruitfallConfig
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, DefaultFruitfallConfig(), back)
}
