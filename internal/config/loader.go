package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Source names where a loaded config came from, for logging.
type Source string

const (
	SourceCustom   Source = "custom"
	SourceUser     Source = "user"
	SourceLocal    Source = "local"
	SourceEmbedded Source = "embedded"
	SourceBuiltin  Source = "builtin"
)

const configFile = "bikerush.yaml"

// LoadBikeRush loads the level tuning.
// Search order: customPath -> ~/.arcade/configs/bikerush.yaml -> ./configs/bikerush.yaml -> embedded default.
// A custom path that cannot be read, parsed or validated is an error; the other
// locations are skipped silently when unusable.
func LoadBikeRush(customPath string) (BikeRushConfig, Source, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, SourceCustom, err
		}
		return cfg, SourceCustom, nil
	}

	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, SourceUser, nil
		}
	}

	if cfg, err := loadFile(filepath.Join("configs", configFile)); err == nil {
		return cfg, SourceLocal, nil
	}

	cfg, err := Parse(defaultBikeRushYAML)
	if err != nil {
		return DefaultBikeRushConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed is broken
	}
	return cfg, SourceEmbedded, nil
}

// Parse decodes YAML on top of the built-in defaults and validates the result.
// Keys missing from data keep their default values.
func Parse(data []byte) (BikeRushConfig, error) {
	cfg := DefaultBikeRushConfig()
	// Maps and pools replace rather than merge.
	cfg.Pedal.GearMultipliers = nil
	cfg.Obstacles.Kinds = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}

	defaults := DefaultBikeRushConfig()
	if cfg.Pedal.GearMultipliers == nil {
		cfg.Pedal.GearMultipliers = defaults.Pedal.GearMultipliers
	}
	if cfg.Obstacles.Kinds == nil {
		cfg.Obstacles.Kinds = defaults.Obstacles.Kinds
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func loadFile(path string) (BikeRushConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BikeRushConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
