package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parseDefender(defaultDefenderYAML)
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if cfg != DefaultDefenderConfig() {
		t.Errorf("embedded defaults differ from DefaultDefenderConfig():\n%+v\n%+v", cfg, DefaultDefenderConfig())
	}
}

func TestDerivedValues(t *testing.T) {
	cfg := DefaultDefenderConfig()

	if got := cfg.WorldSize(); got != 4990 {
		t.Errorf("WorldSize() = %v, expected 4990", got)
	}
	if got := cfg.PlayfieldTop(); got != 630 {
		t.Errorf("PlayfieldTop() = %v, expected 630", got)
	}
	if got := cfg.GroundY(); got < 24.71 || got > 24.73 {
		t.Errorf("GroundY() = %v, expected 24.72", got)
	}
}

func TestLoadDefenderCustomPathOverridesPartially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("wave:\n  max_enemies: 3\nscoring:\n  rescue: 500\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadDefender(path)
	if err != nil {
		t.Fatalf("LoadDefender() error = %v", err)
	}
	if cfg.Wave.MaxEnemies != 3 || cfg.Scoring.Rescue != 500 {
		t.Errorf("overrides not applied: %+v %+v", cfg.Wave, cfg.Scoring)
	}
	if cfg.Wave.MinEnemies != 5 {
		t.Errorf("unspecified keys should keep defaults, min_enemies = %d", cfg.Wave.MinEnemies)
	}
}

func TestLoadDefenderErrors(t *testing.T) {
	if _, err := LoadDefender(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("window:\n  width: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadDefender(path); err == nil {
		t.Error("expected validation error for negative window width")
	}
}

func TestApplyDefenderPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
	}{
		{DifficultyEasy, true, 0.0},
		{DifficultyNormal, true, 0.3},
		{DifficultyHard, true, 0.7},
		{DifficultyFixed, false, 0.0},
		{"", false, 0.0},
	}
	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultDefenderConfig()
			ApplyDefenderPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled || cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("preset %q: enabled=%v level=%v", tc.preset, cfg.Difficulty.Enabled, cfg.Difficulty.InitialLevel)
			}
		})
	}

	if ParsePreset("hard") != DifficultyHard || ParsePreset("insane") != "" {
		t.Error("ParsePreset returned wrong preset")
	}
}

func TestDifficultyManager(t *testing.T) {
	cfg := DefaultDefenderConfig().Difficulty

	d := NewDifficultyManager(cfg)
	if got := d.EnemySpeed(100, 10, 0); got != 100 {
		t.Errorf("disabled difficulty should keep base speed, got %v", got)
	}

	cfg.Enabled = true
	d = NewDifficultyManager(cfg)
	if got := d.Level(10, 0); got != 0.5 {
		t.Errorf("Level(10) = %v, expected 0.5", got)
	}
	if got := d.Level(40, 0); got != 1 {
		t.Errorf("Level past max_at = %v, expected 1", got)
	}
	if got := d.EnemySpeed(100, 20, 0); got != 200 {
		t.Errorf("EnemySpeed at max = %v, expected 200", got)
	}
	if got := d.ShotDelay(1.0, 20, 0); got != 0.5 {
		t.Errorf("ShotDelay at max = %v, expected 0.5", got)
	}

	d.SetInitialLevel(2)
	if got := d.Level(0, 0); got != 1 {
		t.Errorf("initial level should clamp to 1, got %v", got)
	}
}
