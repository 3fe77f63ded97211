// Package config provides YAML-based game configuration loading and
// difficulty management for the cave runner.
package config

import (
	"errors"
	"fmt"
)

// BoulderConfig contains all configuration for a cave run.
type BoulderConfig struct {
	Timing     BoulderTiming    `yaml:"timing"`
	Session    BoulderSession   `yaml:"session"`
	Rules      BoulderRules     `yaml:"rules"`
	Cover      BoulderCover     `yaml:"cover"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoulderTiming defines the turn clock.
type BoulderTiming struct {
	TurnMs     int `yaml:"turn_ms"`      // Duration of one turn
	MaxFrameMs int `yaml:"max_frame_ms"` // Frame deltas above this are clamped
	TickRate   int `yaml:"tick_rate"`    // Platform ticks per second hint
}

// BoulderSession defines lives, bonuses and cave transition pacing.
type BoulderSession struct {
	Lives            int `yaml:"lives"`
	BonusLifeEvery   int `yaml:"bonus_life_every"`    // Points per extra life, 0 disables
	DeathDelayTurns  int `yaml:"death_delay_turns"`   // Turns the cave keeps running after a death
	ExitBonusPerTurn int `yaml:"exit_bonus_per_turn"` // Remaining seconds converted per turn
}

// BoulderRules defines the turn engine constants.
type BoulderRules struct {
	BirthDelayTurns  int `yaml:"birth_delay_turns"`
	PushChance       int `yaml:"push_chance"` // A push succeeds with probability 1/push_chance
	AmoebaSlowFactor int `yaml:"amoeba_slow_factor"`
	AmoebaFastFactor int `yaml:"amoeba_fast_factor"`
	AmoebaMaxSize    int `yaml:"amoeba_max_size"`
}

// BoulderCover defines the cosmetic cover shown while a cave starts.
type BoulderCover struct {
	RevealTurns int `yaml:"reveal_turns"`
}

// DifficultyConfig defines the difficulty progression system.
// Levels are 1-based as shown to the player (1..5).
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel int               `yaml:"initial_level"`
	Progression  ProgressionConfig `yaml:"progression"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "loops" or "none"
	MaxAt int    `yaml:"max_at"` // Highest level progression may reach
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// MaxLevel is the number of difficulty levels a cave defines.
const MaxLevel = 5

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 1
	case DifficultyNormal:
		return 2
	case DifficultyHard:
		return 4
	default:
		return 1
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ParsePreset validates a preset name. An empty name is "normal".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// Validate reports the first setting that would make a run unplayable.
func (c BoulderConfig) Validate() error {
	var errs []error
	if c.Timing.TurnMs <= 0 {
		errs = append(errs, fmt.Errorf("timing.turn_ms must be positive, got %d", c.Timing.TurnMs))
	}
	if c.Timing.MaxFrameMs < c.Timing.TurnMs {
		errs = append(errs, fmt.Errorf("timing.max_frame_ms (%d) must be at least turn_ms (%d)", c.Timing.MaxFrameMs, c.Timing.TurnMs))
	}
	if c.Session.Lives < 1 {
		errs = append(errs, fmt.Errorf("session.lives must be at least 1, got %d", c.Session.Lives))
	}
	if c.Session.ExitBonusPerTurn < 1 {
		errs = append(errs, fmt.Errorf("session.exit_bonus_per_turn must be at least 1, got %d", c.Session.ExitBonusPerTurn))
	}
	if c.Rules.PushChance < 1 {
		errs = append(errs, fmt.Errorf("rules.push_chance must be at least 1, got %d", c.Rules.PushChance))
	}
	if c.Rules.AmoebaMaxSize < 1 {
		errs = append(errs, fmt.Errorf("rules.amoeba_max_size must be at least 1, got %d", c.Rules.AmoebaMaxSize))
	}
	if c.Difficulty.InitialLevel < 1 || c.Difficulty.InitialLevel > MaxLevel {
		errs = append(errs, fmt.Errorf("difficulty.initial_level must be in 1..%d, got %d", MaxLevel, c.Difficulty.InitialLevel))
	}
	switch c.Difficulty.Progression.Type {
	case "loops", "none", "":
	default:
		errs = append(errs, fmt.Errorf("difficulty.progression.type %q is not loops or none", c.Difficulty.Progression.Type))
	}
	return errors.Join(errs...)
}
