package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(DefaultYAML()) failed: %v", err)
	}

	if cfg != DefaultCrossingConfig() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultCrossingConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("player:\n  lives: 5\nobstacles:\n  count: 1\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if cfg.Player.Lives != 5 {
		t.Errorf("Player.Lives = %d, expected 5", cfg.Player.Lives)
	}
	if cfg.Obstacles.Count != 1 {
		t.Errorf("Obstacles.Count = %d, expected 1", cfg.Obstacles.Count)
	}
	// Untouched keys keep their defaults
	if cfg.Player.StartCol != 2 || cfg.Player.StartRow != 5 {
		t.Errorf("start cell = (%d, %d), expected (2, 5)", cfg.Player.StartCol, cfg.Player.StartRow)
	}
	if cfg.Enemies.MaxSpeed != 500 {
		t.Errorf("Enemies.MaxSpeed = %g, expected 500", cfg.Enemies.MaxSpeed)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero lives", "player:\n  lives: 0\n"},
		{"start column off board", "player:\n  start_col: 5\n"},
		{"start row off board", "player:\n  start_row: -1\n"},
		{"inverted lanes", "enemies:\n  min_row: 3\n  max_row: 1\n"},
		{"non-positive speed", "enemies:\n  min_speed: 0\n"},
		{"inverted speed range", "enemies:\n  min_speed: 600\n"},
		{"zero sweep interval", "enemies:\n  sweep_interval_ms: 0\n"},
		{"obstacle row off board", "obstacles:\n  row: 6\n"},
		{"zero tick rate", "loop:\n  tick_rate: 0\n"},
		{"negative clamp", "loop:\n  max_delta_ms: -1\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.yaml))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Parse() error = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := Parse([]byte("player: [unclosed"))
	if err == nil {
		t.Fatal("Parse() should fail on malformed YAML")
	}
	if errors.Is(err, ErrInvalid) {
		t.Error("syntax errors should not be reported as ErrInvalid")
	}
}

func TestLoadCrossingCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("player:\n  lives: 7\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := LoadCrossing(path)
	if err != nil {
		t.Fatalf("LoadCrossing() failed: %v", err)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("Player.Lives = %d, expected 7", cfg.Player.Lives)
	}
}

func TestLoadCrossingMissingCustomPath(t *testing.T) {
	_, err := LoadCrossing(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatal("LoadCrossing() should fail for a missing custom file")
	}
	if !strings.Contains(err.Error(), "failed to read config") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadCrossingSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(work); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// Nothing on disk: embedded default
	cfg, err := LoadCrossing("")
	if err != nil {
		t.Fatalf("LoadCrossing() failed: %v", err)
	}
	if cfg.Player.Lives != 3 {
		t.Errorf("default Player.Lives = %d, expected 3", cfg.Player.Lives)
	}

	// Local configs directory
	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(work, "configs", "crossing.yaml"), []byte("player:\n  lives: 4\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadCrossing("")
	if cfg.Player.Lives != 4 {
		t.Errorf("local Player.Lives = %d, expected 4", cfg.Player.Lives)
	}

	// User directory wins over local directory
	userDir := filepath.Join(home, ".crossing", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "crossing.yaml"), []byte("player:\n  lives: 6\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, _ = LoadCrossing("")
	if cfg.Player.Lives != 6 {
		t.Errorf("user Player.Lives = %d, expected 6", cfg.Player.Lives)
	}
}

func TestMarshalUsesYAMLKeys(t *testing.T) {
	data, err := Marshal(DefaultCrossingConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	if !strings.Contains(string(data), "sweep_interval_ms: 1000") {
		t.Errorf("Marshal() output missing sweep interval:\n%s", data)
	}
}
