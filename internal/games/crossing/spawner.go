package crossing

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/config"
)

// Spawner creates enemies on a randomized schedule and removes the ones
// that ran off the right edge. It is the only writer of the enemy slice.
type Spawner struct {
	cfg       config.EnemyConfig
	rng       Rand
	logger    *log.Logger
	enemies   []*Enemy
	lastSpawn time.Time
	nextDelay time.Duration
}

// NewSpawner creates a spawner. Call Reset before the first Tick.
func NewSpawner(cfg config.EnemyConfig, rng Rand, logger *log.Logger) *Spawner {
	return &Spawner{
		cfg:     cfg,
		rng:     rng,
		logger:  logger,
		enemies: make([]*Enemy, 0, 8),
	}
}

// Reset discards every enemy and restarts the spawn schedule at now.
// The first delay of a round is drawn from the wider initial range.
func (s *Spawner) Reset(now time.Time) {
	s.enemies = make([]*Enemy, 0, 8)
	s.lastSpawn = now
	s.nextDelay = s.randomDelay(s.cfg.InitialSpawnDelayDuration())
}

// Tick spawns one enemy when the current delay has elapsed.
// Returns the new enemy and true if one was created.
func (s *Spawner) Tick(now time.Time) (*Enemy, bool) {
	if now.Before(s.lastSpawn.Add(s.nextDelay)) {
		return nil, false
	}

	lanes := s.cfg.MaxRow - s.cfg.MinRow + 1
	enemy := &Enemy{
		X:      s.cfg.StartX,
		Row:    s.cfg.MinRow + s.rng.Intn(lanes),
		Speed:  s.cfg.MinSpeed + s.rng.Float64()*(s.cfg.MaxSpeed-s.cfg.MinSpeed),
		Sprite: SpriteEnemy,
	}
	s.enemies = append(s.enemies, enemy)

	s.lastSpawn = now
	s.nextDelay = s.randomDelay(s.cfg.SpawnDelayDuration())

	s.logger.Debug("enemy spawned", "row", enemy.Row, "speed", enemy.Speed, "next", s.nextDelay)
	return enemy, true
}

// Sweep removes every enemy whose x is beyond the right boundary and
// returns how many were removed. Enemies exactly on the boundary stay.
func (s *Spawner) Sweep() int {
	kept := s.enemies[:0]
	for _, e := range s.enemies {
		if e.X <= s.cfg.RemoveBeyondX {
			kept = append(kept, e)
		}
	}
	// Drop references held past the new length
	for i := len(kept); i < len(s.enemies); i++ {
		s.enemies[i] = nil
	}
	removed := len(s.enemies) - len(kept)
	s.enemies = kept

	if removed > 0 {
		s.logger.Debug("enemies swept", "removed", removed, "live", len(kept))
	}
	return removed
}

// Enemies returns the live enemies. Callers must not retain the slice
// across a Tick, Sweep or Reset.
func (s *Spawner) Enemies() []*Enemy {
	return s.enemies
}

// randomDelay draws a delay uniformly from [0, max).
func (s *Spawner) randomDelay(max time.Duration) time.Duration {
	if max <= 0 {
		return 0
	}
	return time.Duration(s.rng.Float64() * float64(max))
}
