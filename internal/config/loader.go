package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadFruitBox loads Fruit Box configuration.
// Search order: customPath -> ~/.fruitbox/configs/fruitbox.yaml -> ./configs/fruitbox.yaml -> embedded default.
// Files are applied on top of the defaults, so a file only needs the keys it changes.
func LoadFruitBox(customPath string) (FruitBoxConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FruitBoxConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return FruitBoxConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath("fruitbox.yaml"), filepath.Join("configs", "fruitbox.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultFruitBoxYAML)
	if err != nil {
		return DefaultFruitBoxConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the default configuration and validates the result.
func Parse(data []byte) (FruitBoxConfig, error) {
	cfg := DefaultFruitBoxConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FruitBoxConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return FruitBoxConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes a configuration as YAML.
func Marshal(cfg FruitBoxConfig) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// ApplyFruitBoxPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config unchanged.
func ApplyFruitBoxPreset(cfg *FruitBoxConfig, preset DifficultyPreset) {
	if d := DurationForPreset(preset); d > 0 {
		cfg.Clock.Duration = d
	}
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".fruitbox", "configs", filename)
}
