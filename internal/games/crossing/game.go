package crossing

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/config"
	"github.com/vovakirdan/tui-crossing/internal/core"
)

// New builds a session from cfg with an RNG seeded by seed and wraps it in
// a loop that draws with res.
func New(cfg config.CrossingConfig, seed int64, res core.ResourceProvider, logger *log.Logger) *Loop {
	rng := rand.New(rand.NewSource(seed))
	session := NewSession(cfg, rng, logger)
	return NewLoop(session, res, cfg.Loop.MaxDeltaDuration(), logger)
}
