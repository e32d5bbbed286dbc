package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in every search directory.
const FileName = "fruitfall.yaml"

// Load reads the fruitfall configuration.
// Search order: customPath -> ~/.fruitfall/configs -> ./configs -> embedded
// default -> DefaultFruitfallConfig. Files are decoded over the defaults, so
// they only need the keys they change. An explicit customPath must exist
// and parse; the other locations are skipped when missing or broken.
func Load(customPath string) (FruitfallConfig, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return cfg, cfg.Validate()
	}

	candidates := []string{filepath.Join("configs", FileName)}
	if p := userConfigPath(FileName); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, path := range candidates {
		if cfg, err := loadFile(path); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg := DefaultFruitfallConfig()
	if err := yaml.Unmarshal(defaultFruitfallYAML, &cfg); err != nil {
		return DefaultFruitfallConfig(), nil
	}
	return cfg, nil
}

func loadFile(path string) (FruitfallConfig, error) {
	cfg := DefaultFruitfallConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Marshal renders the configuration as YAML.
func (c FruitfallConfig) Marshal() ([]byte, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return out, nil
}

// userConfigPath returns the per-user config path, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fruitfall", "configs", filename)
}
