// Package config provides YAML-based game configuration loading for the
// crossing game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// CrossingConfig contains all tunable parameters of the crossing game.
type CrossingConfig struct {
	Player    PlayerConfig   `yaml:"player"`
	Enemies   EnemyConfig    `yaml:"enemies"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Messages  MessageConfig  `yaml:"messages"`
	Loop      LoopConfig     `yaml:"loop"`
}

// PlayerConfig defines the player's start cell and session lives.
type PlayerConfig struct {
	StartCol int `yaml:"start_col"`
	StartRow int `yaml:"start_row"`
	Lives    int `yaml:"lives"`
}

// EnemyConfig defines enemy spawning, movement, removal and hit extents.
type EnemyConfig struct {
	StartX            float64 `yaml:"start_x"`   // Spawn x, off-screen left
	MinRow            int     `yaml:"min_row"`   // First lane (inclusive)
	MaxRow            int     `yaml:"max_row"`   // Last lane (inclusive)
	MinSpeed          float64 `yaml:"min_speed"` // Pixels per second (inclusive)
	MaxSpeed          float64 `yaml:"max_speed"` // Pixels per second (exclusive)
	InitialSpawnDelay int     `yaml:"initial_spawn_delay_ms"`
	SpawnDelay        int     `yaml:"spawn_delay_ms"`
	RemoveBeyondX     float64 `yaml:"remove_beyond_x"`
	SweepInterval     int     `yaml:"sweep_interval_ms"`
	Width             float64 `yaml:"width"` // Hit extent to the right of x
	Reach             float64 `yaml:"reach"` // Hit extent on both sides of the player
}

// ObstacleConfig defines the rock layout generated each round.
type ObstacleConfig struct {
	Count int `yaml:"count"`
	Row   int `yaml:"row"`
}

// MessageConfig defines the status overlay texts.
type MessageConfig struct {
	Start    string `yaml:"start"`
	Won      string `yaml:"won"`
	Lost     string `yaml:"lost"`
	GameOver string `yaml:"game_over"`
	Duration int    `yaml:"duration_ms"`
}

// LoopConfig defines frame scheduling parameters.
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"`
	MaxDelta int `yaml:"max_delta_ms"` // 0 disables dt clamping
}

// InitialSpawnDelayDuration returns the upper bound of the first spawn delay.
func (e EnemyConfig) InitialSpawnDelayDuration() time.Duration {
	return time.Duration(e.InitialSpawnDelay) * time.Millisecond
}

// SpawnDelayDuration returns the upper bound of the delay between spawns.
func (e EnemyConfig) SpawnDelayDuration() time.Duration {
	return time.Duration(e.SpawnDelay) * time.Millisecond
}

// SweepIntervalDuration returns the period of the off-screen cleanup sweep.
func (e EnemyConfig) SweepIntervalDuration() time.Duration {
	return time.Duration(e.SweepInterval) * time.Millisecond
}

// DurationValue returns how long a status message stays visible.
func (m MessageConfig) DurationValue() time.Duration {
	return time.Duration(m.Duration) * time.Millisecond
}

// MaxDeltaDuration returns the dt clamp, or 0 when clamping is disabled.
func (l LoopConfig) MaxDeltaDuration() time.Duration {
	return time.Duration(l.MaxDelta) * time.Millisecond
}

// Validate checks the configuration against the fixed 5×6 board.
func (c CrossingConfig) Validate() error {
	switch {
	case c.Player.StartCol < 0 || c.Player.StartCol > 4:
		return fmt.Errorf("%w: player.start_col %d outside 0..4", ErrInvalid, c.Player.StartCol)
	case c.Player.StartRow < 0 || c.Player.StartRow > 5:
		return fmt.Errorf("%w: player.start_row %d outside 0..5", ErrInvalid, c.Player.StartRow)
	case c.Player.Lives <= 0:
		return fmt.Errorf("%w: player.lives must be positive, got %d", ErrInvalid, c.Player.Lives)
	case c.Enemies.MinRow < 0 || c.Enemies.MaxRow > 5 || c.Enemies.MinRow > c.Enemies.MaxRow:
		return fmt.Errorf("%w: enemies rows %d..%d", ErrInvalid, c.Enemies.MinRow, c.Enemies.MaxRow)
	case c.Enemies.MinSpeed <= 0 || c.Enemies.MaxSpeed < c.Enemies.MinSpeed:
		return fmt.Errorf("%w: enemies speed range [%g, %g)", ErrInvalid, c.Enemies.MinSpeed, c.Enemies.MaxSpeed)
	case c.Enemies.InitialSpawnDelay < 0 || c.Enemies.SpawnDelay < 0:
		return fmt.Errorf("%w: spawn delays must not be negative", ErrInvalid)
	case c.Enemies.SweepInterval <= 0:
		return fmt.Errorf("%w: enemies.sweep_interval_ms must be positive, got %d", ErrInvalid, c.Enemies.SweepInterval)
	case c.Enemies.Width < 0 || c.Enemies.Reach < 0:
		return fmt.Errorf("%w: enemy hit extents must not be negative", ErrInvalid)
	case c.Obstacles.Count < 0:
		return fmt.Errorf("%w: obstacles.count must not be negative, got %d", ErrInvalid, c.Obstacles.Count)
	case c.Obstacles.Row < 0 || c.Obstacles.Row > 5:
		return fmt.Errorf("%w: obstacles.row %d outside 0..5", ErrInvalid, c.Obstacles.Row)
	case c.Messages.Duration < 0:
		return fmt.Errorf("%w: messages.duration_ms must not be negative", ErrInvalid)
	case c.Loop.TickRate <= 0:
		return fmt.Errorf("%w: loop.tick_rate must be positive, got %d", ErrInvalid, c.Loop.TickRate)
	case c.Loop.MaxDelta < 0:
		return fmt.Errorf("%w: loop.max_delta_ms must not be negative", ErrInvalid)
	}
	return nil
}
