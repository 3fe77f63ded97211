package config

import (
	_ "embed"
)

//go:embed defaults/boulderdash.yaml
var defaultBoulderYAML []byte

// DefaultBoulderConfig returns the default configuration.
func DefaultBoulderConfig() BoulderConfig {
	return BoulderConfig{
		Timing: BoulderTiming{
			TurnMs:     150,
			MaxFrameMs: 250,
			TickRate:   60,
		},
		Session: BoulderSession{
			Lives:            3,
			BonusLifeEvery:   500,
			DeathDelayTurns:  24,
			ExitBonusPerTurn: 4,
		},
		Rules: BoulderRules{
			BirthDelayTurns:  12,
			PushChance:       8,
			AmoebaSlowFactor: 127,
			AmoebaFastFactor: 15,
			AmoebaMaxSize:    200,
		},
		Cover: BoulderCover{
			RevealTurns: 20,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 1,
			Progression: ProgressionConfig{
				Type:  "loops",
				MaxAt: MaxLevel,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBoulderYAML
}
