package crossing

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/core"
)

// Loop drives a session one frame at a time. The host scheduler (a Bubble
// Tea tick or an Ebitengine update) calls Frame once per display refresh
// and Sweep on its own coarser timer; both must be called from the same
// goroutine.
type Loop struct {
	session  *Session
	res      core.ResourceProvider
	logger   *log.Logger
	maxDelta time.Duration
	start    time.Time
	last     time.Time
	frames   uint64
	started  bool
	stopped  bool
}

// NewLoop creates a loop for session drawing with res. A positive maxDelta
// caps the per-frame time step; zero leaves it unclamped.
func NewLoop(session *Session, res core.ResourceProvider, maxDelta time.Duration, logger *log.Logger) *Loop {
	return &Loop{
		session:  session,
		res:      res,
		logger:   logger,
		maxDelta: maxDelta,
	}
}

// Start begins the session at now. It runs once; later calls are ignored.
func (l *Loop) Start(now time.Time) {
	if l.started {
		return
	}
	l.started = true
	l.start = now
	l.last = now
	l.session.Start(now)
}

// Frame runs one iteration: update, round transition, render. It returns
// false once the game is over, after rendering that final frame; from then
// on it does nothing and the caller must stop scheduling frames.
func (l *Loop) Frame(now time.Time, dst core.Surface) bool {
	if l.stopped {
		return false
	}
	if !l.started {
		l.Start(now)
	}

	dt := now.Sub(l.last)
	if dt < 0 {
		dt = 0
	}
	if l.maxDelta > 0 && dt > l.maxDelta {
		dt = l.maxDelta
	}
	elapsed := now.Sub(l.start)

	l.session.Update(dt.Seconds(), now)
	state := l.session.Resolve(now)
	l.session.Render(dst, l.res, now, elapsed)

	l.last = now
	l.frames++

	if state == StateGameOver {
		l.stopped = true
		l.logger.Info("loop stopped", "frames", l.frames, "duration", elapsed.Round(time.Millisecond), "wins", l.session.Wins())
		return false
	}
	return true
}

// Sweep runs the off-screen enemy cleanup. It is a no-op once stopped.
func (l *Loop) Sweep() int {
	if l.stopped {
		return 0
	}
	return l.session.Sweep()
}

// HandleInput forwards a direction to the session while the loop runs.
func (l *Loop) HandleInput(d core.Direction) bool {
	if l.stopped || !l.started {
		return false
	}
	return l.session.HandleInput(d)
}

// Running reports whether the loop still wants frames.
func (l *Loop) Running() bool {
	return !l.stopped
}

// Frames returns how many frames have run.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Session returns the session driven by the loop.
func (l *Loop) Session() *Session {
	return l.session
}
