package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultRedBlockConfig().Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(defaultRedBlockYAML)
	if err != nil {
		t.Fatalf("embedded defaults should parse: %v", err)
	}
	if cfg != DefaultRedBlockConfig() {
		t.Errorf("embedded defaults differ from DefaultRedBlockConfig():\n%+v\n%+v", cfg, DefaultRedBlockConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("switch:\n  countdown_ms: 30000\nscoring:\n  win_bonus: 5\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Switch.CountdownMs != 30000 {
		t.Errorf("countdown_ms = %d, expected 30000", cfg.Switch.CountdownMs)
	}
	if cfg.Scoring.WinBonus != 5 {
		t.Errorf("win_bonus = %d, expected 5", cfg.Scoring.WinBonus)
	}
	// Untouched keys keep defaults
	if cfg.Switch.Size != 30 || cfg.Scoring.PerSecond != 10 || cfg.Arena.Width != 1200 {
		t.Errorf("missing keys should keep defaults, got %+v", cfg)
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("arena: [unclosed")); err == nil {
		t.Error("expected a parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*RedBlockConfig)
		errHas string
	}{
		{"zero arena width", func(c *RedBlockConfig) { c.Arena.Width = 0 }, "arena.width"},
		{"zero cell size", func(c *RedBlockConfig) { c.Arena.CellSize = 0 }, "arena.cell_size"},
		{"negative hazard speed", func(c *RedBlockConfig) { c.Hazards.Speed = -1 }, "hazards.speed"},
		{"obstacle count range", func(c *RedBlockConfig) { c.Level.MinObstacles = 40 }, "min_obstacles"},
		{"obstacle length range", func(c *RedBlockConfig) { c.Level.ObstacleMinLength = 300 }, "obstacle_min_length"},
		{"obstacle longer than arena", func(c *RedBlockConfig) { c.Arena.Height = 200 }, "does not fit"},
		{"target does not fit", func(c *RedBlockConfig) { c.Level.TargetMargin = 600 }, "target"},
		{"agent outside arena", func(c *RedBlockConfig) { c.Agent.StartX = 1180 }, "agent start"},
		{"deadzone too large", func(c *RedBlockConfig) { c.Input.Deadzone = 1 }, "deadzone"},
		{"zero countdown", func(c *RedBlockConfig) { c.Switch.CountdownMs = 0 }, "countdown_ms"},
		{"agent standing still", func(c *RedBlockConfig) { c.Agent.VelocityX, c.Agent.VelocityY = 0, 0 }, "agent velocity"},
		{"player larger than arena", func(c *RedBlockConfig) { c.Player.Size = 1000 }, "player.size"},
		{"switch larger than arena", func(c *RedBlockConfig) { c.Switch.Size = 5000 }, "switch.size"},
		{"hazard larger than arena", func(c *RedBlockConfig) { c.Hazards.Diameter = 1200 }, "hazards.diameter"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultRedBlockConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tc.errHas) {
				t.Errorf("error %q should mention %q", err, tc.errHas)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  speed: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadRedBlock(path)
	if err != nil {
		t.Fatalf("LoadRedBlock: %v", err)
	}
	if cfg.Player.Speed != 6 {
		t.Errorf("player.speed = %v, expected 6", cfg.Player.Speed)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadRedBlock(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  size: -3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadRedBlock(invalid); err == nil {
		t.Error("invalid custom file should be an error")
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	// Nothing on disk: embedded defaults
	cfg, err := LoadRedBlock("")
	if err != nil {
		t.Fatalf("LoadRedBlock: %v", err)
	}
	if cfg != DefaultRedBlockConfig() {
		t.Errorf("expected defaults, got %+v", cfg)
	}

	// User config wins once present
	dir := filepath.Join(home, ".redblock", "configs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("hazards:\n  initial: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadRedBlock("")
	if err != nil {
		t.Fatalf("LoadRedBlock: %v", err)
	}
	if cfg.Hazards.Initial != 4 {
		t.Errorf("hazards.initial = %d, expected 4 from the user config", cfg.Hazards.Initial)
	}

	// An invalid user config falls through to defaults
	if err := os.WriteFile(filepath.Join(dir, ConfigFile), []byte("arena:\n  width: -1\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err = LoadRedBlock("")
	if err != nil {
		t.Fatalf("LoadRedBlock: %v", err)
	}
	if cfg.Arena.Width != 1200 {
		t.Errorf("arena.width = %v, expected the default", cfg.Arena.Width)
	}
}

func TestDefaultYAMLIsCopy(t *testing.T) {
	a := DefaultYAML()
	a[0] = 'X'
	if DefaultYAML()[0] == 'X' {
		t.Error("DefaultYAML should return a copy")
	}
}
