package gui

import (
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

// Options configures the window front-end.
type Options struct {
	TickRate      int           // Frames per second
	SweepInterval time.Duration // Period of the off-screen enemy cleanup
	Scale         int           // Window size multiplier
	Logger        *log.Logger
}

// keyDirections maps keys to moves. Moves fire on key release.
var keyDirections = map[ebiten.Key]core.Direction{
	ebiten.KeyArrowUp:    core.DirUp,
	ebiten.KeyArrowDown:  core.DirDown,
	ebiten.KeyArrowLeft:  core.DirLeft,
	ebiten.KeyArrowRight: core.DirRight,
	ebiten.KeyW:          core.DirUp,
	ebiten.KeyS:          core.DirDown,
	ebiten.KeyA:          core.DirLeft,
	ebiten.KeyD:          core.DirRight,
}

var quitKeys = []ebiten.Key{ebiten.KeyQ, ebiten.KeyEscape}

// Game implements ebiten.Game for one crossing session. Ebitengine calls
// Update and Draw from a single goroutine; the sweep ticker is polled from
// Update so the loop is never touched concurrently.
type Game struct {
	loop    *crossing.Loop
	canvas  *ebiten.Image
	surface *Surface
	sweep   *time.Ticker
	logger  *log.Logger
	running bool
}

// NewGame creates a game driving loop.
func NewGame(loop *crossing.Loop, opts Options) *Game {
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	canvas := ebiten.NewImage(crossing.CanvasWidth, crossing.CanvasHeight)
	return &Game{
		loop:    loop,
		canvas:  canvas,
		surface: NewSurface(canvas),
		sweep:   time.NewTicker(opts.SweepInterval),
		logger:  logger,
		running: true,
	}
}

// Update handles input, the sweep timer and one frame of the loop. After
// the final frame the canvas keeps the game-over picture.
func (g *Game) Update() error {
	for _, k := range quitKeys {
		if inpututil.IsKeyJustPressed(k) {
			g.sweep.Stop()
			return ebiten.Termination
		}
	}
	if !g.running {
		return nil
	}

	for k, d := range keyDirections {
		if inpututil.IsKeyJustReleased(k) {
			g.loop.HandleInput(d)
		}
	}

	select {
	case <-g.sweep.C:
		if n := g.loop.Sweep(); n > 0 {
			g.logger.Debug("swept enemies", "removed", n)
		}
	default:
	}

	g.canvas.Clear()
	if !g.loop.Frame(time.Now(), g.surface) {
		g.running = false
		g.sweep.Stop()
	}
	return nil
}

// Draw copies the canvas to the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas, nil)
}

// Layout fixes the logical screen to the canvas size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return crossing.CanvasWidth, crossing.CanvasHeight
}

// Run opens the window for loop and blocks until it is closed.
func Run(loop *crossing.Loop, opts Options) error {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}
	ebiten.SetWindowSize(crossing.CanvasWidth*opts.Scale, crossing.CanvasHeight*opts.Scale)
	ebiten.SetWindowTitle("Crossing")

	game := NewGame(loop, opts)
	loop.Start(time.Now())
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
