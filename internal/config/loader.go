package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const t2048File = "t2048.yaml"

// LoadT2048 loads the 2048 configuration.
// Search order: customPath -> ~/.tilt2048/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default
//
// Missing keys in a file keep their default values. A custom path that
// cannot be read or parsed is an error; the other locations are skipped.
func LoadT2048(customPath string) (T2048Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return T2048Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseT2048(data)
		if err != nil {
			return T2048Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(t2048File); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseT2048(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", t2048File)); err == nil {
		if cfg, err := parseT2048(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseT2048(defaultT2048YAML)
	if err != nil {
		return DefaultT2048Config(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseT2048 decodes data over the defaults and validates the result.
func parseT2048(data []byte) (T2048Config, error) {
	cfg := DefaultT2048Config()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return T2048Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return T2048Config{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tilt2048", "configs", filename)
}
