package config

import (
	_ "embed"
)

//go:embed defaults/crossing.yaml
var defaultCrossingYAML []byte

// DefaultCrossingConfig returns the built-in crossing configuration.
func DefaultCrossingConfig() CrossingConfig {
	return CrossingConfig{
		Player: PlayerConfig{
			StartCol: 2,
			StartRow: 5,
			Lives:    3,
		},
		Enemies: EnemyConfig{
			StartX:            -70,
			MinRow:            1,
			MaxRow:            3,
			MinSpeed:          200,
			MaxSpeed:          500,
			InitialSpawnDelay: 3000,
			SpawnDelay:        2000,
			RemoveBeyondX:     606,
			SweepInterval:     1000,
			Width:             70,
			Reach:             70,
		},
		Obstacles: ObstacleConfig{
			Count: 3,
			Row:   4,
		},
		Messages: MessageConfig{
			Start:    "Start!",
			Won:      "You won!",
			Lost:     "You lost!",
			GameOver: "GAME OVER",
			Duration: 2000,
		},
		Loop: LoopConfig{
			TickRate: 60,
			MaxDelta: 0,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCrossingYAML
}
