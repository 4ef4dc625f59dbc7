package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadDefender loads the defender configuration.
// Search order: customPath -> ~/.defender/configs/defender.yaml ->
// ./configs/defender.yaml -> embedded default.
// Files are applied on top of the built-in defaults, so a partial file only
// overrides the keys it names.
func LoadDefender(customPath string) (DefenderConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultDefenderConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseDefender(data)
		if err != nil {
			return DefaultDefenderConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("defender.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseDefender(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "defender.yaml")); err == nil {
		if cfg, err := parseDefender(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseDefender(defaultDefenderYAML)
	if err != nil {
		return DefaultDefenderConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseDefender(data []byte) (DefenderConfig, error) {
	cfg := DefaultDefenderConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c DefenderConfig) Validate() error {
	var errs []error
	if c.World.Segments <= 0 || c.World.SegmentLength <= 0 {
		errs = append(errs, errors.New("world size must be positive"))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, errors.New("window size must be positive"))
	}
	if c.Window.MinimapHeight < 0 || c.Window.MinimapHeight >= 1 {
		errs = append(errs, fmt.Errorf("minimap_height %v out of [0, 1)", c.Window.MinimapHeight))
	}
	if 2*c.Window.BorderOffset >= c.PlayfieldTop() {
		errs = append(errs, errors.New("border_offset leaves no playfield"))
	}
	if c.Wave.MinEnemies <= 0 || c.Wave.MaxEnemies <= 0 {
		errs = append(errs, errors.New("wave enemy counts must be positive"))
	}
	if c.Projectile.SparkCount == 1 {
		errs = append(errs, errors.New("spark_count must be 0 or at least 2"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to a user config file.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".defender", "configs", filename)
}

// ApplyDefenderPreset modifies the config based on a difficulty preset.
func ApplyDefenderPreset(cfg *DefenderConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}
}
