package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file searched for in the config directories.
const FileName = "boulderdash.yaml"

// LoadBoulder loads the cave runner configuration.
// Search order: customPath -> ~/.arcade/configs/boulderdash.yaml -> ./configs/boulderdash.yaml -> embedded default
// Keys missing from a file keep their default values.
func LoadBoulder(customPath string) (BoulderConfig, error) {
	cfg := DefaultBoulderConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(FileName), filepath.Join("configs", FileName)} {
		if path == "" {
			continue
		}
		if parsed, ok := tryFile(path); ok {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBoulderYAML, &cfg); err != nil {
		return DefaultBoulderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryFile parses an optional config file. Unreadable or invalid files are
// skipped so a broken user file never blocks the embedded default.
func tryFile(path string) (BoulderConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BoulderConfig{}, false
	}
	cfg := DefaultBoulderConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BoulderConfig{}, false
	}
	if cfg.Validate() != nil {
		return BoulderConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyBoulderPreset modifies the config based on a difficulty preset.
func ApplyBoulderPreset(cfg *BoulderConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
