package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg BoulderConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if cfg != DefaultBoulderConfig() {
		t.Errorf("embedded default = %+v\nhardcoded = %+v", cfg, DefaultBoulderConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadBoulderCustomPathMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "timing:\n  turn_ms: 100\n  max_frame_ms: 200\nsession:\n  lives: 5\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBoulder(path)
	if err != nil {
		t.Fatalf("LoadBoulder: %v", err)
	}
	if cfg.Timing.TurnMs != 100 || cfg.Session.Lives != 5 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Rules.PushChance != 8 || cfg.Cover.RevealTurns != 20 {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
}

func TestLoadBoulderErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("timing: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("session:\n  lives: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want string
	}{
		{"missing file", filepath.Join(dir, "nope.yaml"), "failed to read config"},
		{"bad yaml", bad, "failed to parse config"},
		{"invalid values", invalid, "session.lives"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadBoulder(tt.path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, expected it to mention %q", err, tt.want)
			}
		})
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultBoulderConfig()
	cfg.Timing.TurnMs = 0
	cfg.Rules.PushChance = 0
	cfg.Difficulty.InitialLevel = 9

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"turn_ms", "push_chance", "initial_level"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestPresets(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   int
	}{
		{DifficultyEasy, true, 1},
		{DifficultyNormal, true, 2},
		{DifficultyHard, true, 4},
		{DifficultyFixed, false, 1},
	}

	for _, tt := range tests {
		t.Run(string(tt.preset), func(t *testing.T) {
			cfg := DefaultBoulderConfig()
			ApplyBoulderPreset(&cfg, tt.preset)
			if cfg.Difficulty.Enabled != tt.enabled || cfg.Difficulty.InitialLevel != tt.level {
				t.Errorf("difficulty = %+v, expected enabled=%v level=%d", cfg.Difficulty, tt.enabled, tt.level)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, err := ParsePreset(""); err != nil || p != DifficultyNormal {
		t.Errorf("ParsePreset(\"\") = %q, %v", p, err)
	}
	if p, err := ParsePreset("hard"); err != nil || p != DifficultyHard {
		t.Errorf("ParsePreset(hard) = %q, %v", p, err)
	}
	if _, err := ParsePreset("insane"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		name  string
		cfg   DifficultyConfig
		loops int
		want  int
	}{
		{"first pass", DifficultyConfig{Enabled: true, InitialLevel: 1, Progression: ProgressionConfig{Type: "loops", MaxAt: 5}}, 0, 0},
		{"second pass", DifficultyConfig{Enabled: true, InitialLevel: 1, Progression: ProgressionConfig{Type: "loops", MaxAt: 5}}, 1, 1},
		{"capped at max_at", DifficultyConfig{Enabled: true, InitialLevel: 2, Progression: ProgressionConfig{Type: "loops", MaxAt: 3}}, 7, 2},
		{"start above max_at", DifficultyConfig{Enabled: true, InitialLevel: 4, Progression: ProgressionConfig{Type: "loops", MaxAt: 3}}, 2, 3},
		{"disabled", DifficultyConfig{Enabled: false, InitialLevel: 3, Progression: ProgressionConfig{Type: "loops", MaxAt: 5}}, 4, 2},
		{"progression none", DifficultyConfig{Enabled: true, InitialLevel: 2, Progression: ProgressionConfig{Type: "none"}}, 4, 1},
		{"clamped to five", DifficultyConfig{Enabled: true, InitialLevel: 5, Progression: ProgressionConfig{Type: "loops", MaxAt: 9}}, 3, 4},
		{"initial out of range", DifficultyConfig{InitialLevel: 0}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDifficultyManager(tt.cfg)
			if got := d.Level(tt.loops); got != tt.want {
				t.Errorf("Level(%d) = %d, expected %d", tt.loops, got, tt.want)
			}
		})
	}
}
