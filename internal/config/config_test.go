package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// isolate points the user and local search locations at empty directories.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestEmbeddedMatchesDefaults(t *testing.T) {
	var cfg SnakeConfig
	if err := yaml.Unmarshal(defaultSnakeYAML, &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("embedded config = %+v, expected %+v", cfg, DefaultSnakeConfig())
	}
}

func TestDefaultConfigMatchesEngine(t *testing.T) {
	got := DefaultSnakeConfig().WorldConfig()
	if got != snake.DefaultConfig() {
		t.Errorf("WorldConfig() = %+v, expected %+v", got, snake.DefaultConfig())
	}
	if d := DefaultSnakeConfig().BoostHold(); d != 150*time.Millisecond {
		t.Errorf("BoostHold() = %v, expected 150ms", d)
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	isolate(t)

	cfg, src, err := LoadWithSource("")
	if err != nil {
		t.Fatalf("LoadWithSource() error = %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected %q", src, SourceEmbedded)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("cfg = %+v, expected defaults", cfg)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := isolate(t)
	local := filepath.Join(home, "configs", "snake.yaml")
	user := filepath.Join(home, ".snake", "configs", "snake.yaml")

	writeFile(t, local, "grid:\n  cols: 30\n")
	cfg, src, err := LoadWithSource("")
	if err != nil {
		t.Fatalf("LoadWithSource() error = %v", err)
	}
	if cfg.Grid.Cols != 30 || src != Source(filepath.Join("configs", "snake.yaml")) {
		t.Errorf("local config not used: cols=%d src=%q", cfg.Grid.Cols, src)
	}

	writeFile(t, user, "grid:\n  cols: 40\n")
	cfg, src, err = LoadWithSource("")
	if err != nil {
		t.Fatalf("LoadWithSource() error = %v", err)
	}
	if cfg.Grid.Cols != 40 || src != Source(user) {
		t.Errorf("user config not preferred: cols=%d src=%q", cfg.Grid.Cols, src)
	}

	custom := filepath.Join(home, "custom.yaml")
	writeFile(t, custom, "grid:\n  cols: 50\n")
	cfg, err = Load(custom)
	if err != nil {
		t.Fatalf("Load(custom) error = %v", err)
	}
	if cfg.Grid.Cols != 50 {
		t.Errorf("custom config not preferred: cols=%d", cfg.Grid.Cols)
	}
}

func TestLoadPartialKeepsDefaults(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "partial.yaml")
	writeFile(t, path, "snake:\n  direction: down\n  move_interval_ms: 100\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Snake.Direction != "down" || cfg.MoveInterval() != 100*time.Millisecond {
		t.Errorf("overrides not applied: %+v", cfg.Snake)
	}
	if cfg.Grid != DefaultSnakeConfig().Grid {
		t.Errorf("Grid = %+v, expected defaults", cfg.Grid)
	}
	if wc := cfg.WorldConfig(); wc.Direction != snake.DirDown {
		t.Errorf("WorldConfig().Direction = %v, expected down", wc.Direction)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := isolate(t)

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "grid: [unclosed\n")
	if _, err := Load(bad); err == nil || !strings.Contains(err.Error(), bad) {
		t.Errorf("parse error = %v, expected it to name %s", err, bad)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	writeFile(t, invalid, "grid:\n  cols: 0\n")
	if _, err := Load(invalid); err == nil {
		t.Error("expected validation error for zero columns")
	}
}

func TestLoadSkipsInvalidUserConfig(t *testing.T) {
	home := isolate(t)
	writeFile(t, filepath.Join(home, ".snake", "configs", "snake.yaml"), "snake:\n  direction: sideways\n")

	_, src, err := LoadWithSource("")
	if err != nil {
		t.Fatalf("LoadWithSource() error = %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("source = %q, expected invalid user config to be skipped", src)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*SnakeConfig)
		valid  bool
	}{
		{"defaults", func(c *SnakeConfig) {}, true},
		{"zero cols", func(c *SnakeConfig) { c.Grid.Cols = 0 }, false},
		{"negative rows", func(c *SnakeConfig) { c.Grid.Rows = -1 }, false},
		{"no food", func(c *SnakeConfig) { c.Grid.Food = 0 }, true},
		{"negative food", func(c *SnakeConfig) { c.Grid.Food = -1 }, false},
		{"zero interval", func(c *SnakeConfig) { c.Snake.MoveIntervalMs = 0 }, false},
		{"zero queue", func(c *SnakeConfig) { c.Snake.QueueCapacity = 0 }, false},
		{"negative boost hold", func(c *SnakeConfig) { c.Controls.BoostHoldMs = -5 }, false},
		{"unknown direction", func(c *SnakeConfig) { c.Snake.Direction = "north" }, false},
		{"uppercase direction", func(c *SnakeConfig) { c.Snake.Direction = "LEFT" }, true},
		{"start outside", func(c *SnakeConfig) { c.Snake.StartX = 20 }, false},
		{"start at corner", func(c *SnakeConfig) { c.Snake.StartX, c.Snake.StartY = 19, 19 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err == nil) != tt.valid {
				t.Errorf("Validate() = %v, expected valid=%v", err, tt.valid)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Grid.Cols = 32
	cfg.Snake.Direction = "up"

	data, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(data), "move_interval_ms: 160") {
		t.Errorf("Marshal() output missing move_interval_ms:\n%s", data)
	}

	got, err := parse(data)
	if err != nil {
		t.Fatalf("parse() error = %v", err)
	}
	if got != cfg {
		t.Errorf("round trip = %+v, expected %+v", got, cfg)
	}
}
