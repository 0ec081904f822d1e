package crossing

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// RoundState is the outcome of the lifecycle check for one tick.
type RoundState int

const (
	StatePlaying  RoundState = iota // Round in progress
	StateWon                        // Player reached the water this tick
	StateLost                       // Player was hit this tick, lives remain
	StateGameOver                   // No lives left; absorbing
)

// String returns a human-readable name for the state.
func (s RoundState) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Session aggregates everything one game session mutates: the player, the
// round's obstacles and enemies, and the status overlay. Lives and wins
// persist across rounds; everything else is rebuilt by each round reset.
type Session struct {
	cfg       config.CrossingConfig
	rng       Rand
	logger    *log.Logger
	start     Position
	player    *Player
	obstacles Obstacles
	spawner   *Spawner
	status    StatusMessage
	state     RoundState
	round     int
}

// NewSession creates a session with fresh lives and no wins.
// Call Start before the first Update.
func NewSession(cfg config.CrossingConfig, rng Rand, logger *log.Logger) *Session {
	start := Position{Col: cfg.Player.StartCol, Row: cfg.Player.StartRow}
	return &Session{
		cfg:     cfg,
		rng:     rng,
		logger:  logger,
		start:   start,
		player:  NewPlayer(start, cfg.Player.Lives),
		spawner: NewSpawner(cfg.Enemies, rng, logger),
		state:   StatePlaying,
	}
}

// Start prepares the first round and greets the player.
func (s *Session) Start(now time.Time) {
	s.resetRound(now)
	s.setMessage(s.cfg.Messages.Start, now)
	s.logger.Info("session started", "lives", s.player.Lives)
}

// Update runs the update phase of one tick: spawning, movement, the goal
// check and collision detection. It does nothing once the game is over.
func (s *Session) Update(dt float64, now time.Time) {
	if s.state == StateGameOver {
		return
	}

	s.spawner.Tick(now)
	for _, e := range s.spawner.Enemies() {
		e.Update(dt)
	}
	s.player.Update()

	DetectCollisions(s.player, s.spawner.Enemies(), s.cfg.Enemies.Width, s.cfg.Enemies.Reach)
}

// Resolve consumes the player's won/lost flags and performs the round
// transition they call for. It must run once per tick, after Update.
func (s *Session) Resolve(now time.Time) RoundState {
	if s.state == StateGameOver {
		return s.state
	}

	switch {
	case s.player.Won:
		s.player.Wins++
		s.setMessage(s.cfg.Messages.Won, now)
		s.logger.Info("round won", "round", s.round, "wins", s.player.Wins)
		s.resetRound(now)
		s.state = StateWon

	case s.player.Lost:
		s.player.Lives--
		if s.player.Lives <= 0 {
			s.player.Lives = 0
			s.setMessage(s.cfg.Messages.GameOver, now)
			s.logger.Info("game over", "rounds", s.round, "wins", s.player.Wins)
			s.state = StateGameOver
			return s.state
		}
		s.setMessage(s.cfg.Messages.Lost, now)
		s.logger.Info("round lost", "round", s.round, "lives", s.player.Lives)
		s.resetRound(now)
		s.state = StateLost

	default:
		s.state = StatePlaying
	}
	return s.state
}

// HandleInput forwards a direction to the player. Input after game over
// is ignored.
func (s *Session) HandleInput(d core.Direction) bool {
	if s.state == StateGameOver {
		return false
	}
	return s.player.HandleInput(d, s.obstacles)
}

// Sweep removes enemies that left the board.
func (s *Session) Sweep() int {
	if s.state == StateGameOver {
		return 0
	}
	return s.spawner.Sweep()
}

// State returns the result of the latest lifecycle check.
func (s *Session) State() RoundState {
	return s.state
}

// Lives returns the remaining lives.
func (s *Session) Lives() int {
	return s.player.Lives
}

// Wins returns how many rounds were won this session.
func (s *Session) Wins() int {
	return s.player.Wins
}

// Round returns the 1-based number of the round in progress.
func (s *Session) Round() int {
	return s.round
}

// resetRound puts the player back on the start cell, clears the round
// flags and rebuilds obstacles, enemies and the spawn schedule.
func (s *Session) resetRound(now time.Time) {
	s.round++
	s.player.Pos = s.start
	s.player.Won = false
	s.player.Lost = false
	s.obstacles = GenerateObstacles(s.rng, s.cfg.Obstacles.Count, s.cfg.Obstacles.Row)
	s.spawner.Reset(now)
	s.logger.Debug("round reset", "round", s.round, "obstacles", len(s.obstacles))
}

// setMessage replaces the status overlay.
func (s *Session) setMessage(text string, now time.Time) {
	s.status = StatusMessage{
		Text:     text,
		Start:    now,
		Duration: s.cfg.Messages.DurationValue(),
	}
}
