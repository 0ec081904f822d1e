package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-crossing/internal/core"
	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
)

// Options configures the terminal front-end.
type Options struct {
	TickRate      int           // Frames per second
	SweepInterval time.Duration // Period of the off-screen enemy cleanup
	Logger        *log.Logger
}

// Model is the Bubble Tea model running one crossing session. Frame ticks,
// sweep ticks and key presses all arrive as messages, so the loop is only
// ever touched from the Bubble Tea goroutine.
type Model struct {
	loop       *crossing.Loop
	screen     *core.Screen
	surface    *CellSurface
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	tickRate   int
	sweepEvery time.Duration
	width      int
	height     int
	quitting   bool
}

// NewModel creates a model driving loop.
func NewModel(loop *crossing.Loop, opts Options) Model {
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	if opts.SweepInterval <= 0 {
		opts.SweepInterval = time.Second
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	screen := core.NewScreen(BoardWidth, BoardHeight)
	return Model{
		loop:       loop,
		screen:     screen,
		surface:    NewCellSurface(screen),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		tickRate:   opts.TickRate,
		sweepEvery: opts.SweepInterval,
	}
}

// Init starts the session and both timers.
func (m Model) Init() tea.Cmd {
	m.loop.Start(time.Now())
	return tea.Batch(tickCmd(m.tickRate), sweepCmd(m.sweepEvery))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))

	case SweepMsg:
		return m.handleSweep()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if d := m.keys.Direction(msg); d != core.DirNone {
		m.loop.HandleInput(d)
	}
	return m, nil
}

// handleTick runs one frame. After the final frame no tick is scheduled,
// so the board stays frozen on the game-over overlay.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.screen.Clear()
	if !m.loop.Frame(now, m.surface) {
		return m, nil
	}
	return m, tickCmd(m.tickRate)
}

func (m Model) handleSweep() (tea.Model, tea.Cmd) {
	if !m.loop.Running() {
		return m, nil
	}
	if n := m.loop.Sweep(); n > 0 {
		m.logger.Debug("swept enemies", "removed", n)
	}
	return m, sweepCmd(m.sweepEvery)
}

// saveScreenshot writes the current board as plain text.
func (m Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".crossing", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("crossing_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the board with a status line and key help below it.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	boardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))
	footerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	session := m.loop.Session()
	status := fmt.Sprintf("Round %d  Lives %d  Won %d", session.Round(), session.Lives(), session.Wins())
	if !m.loop.Running() {
		status = "Game over. Press q to quit."
	}

	var b strings.Builder
	b.WriteString(boardStyle.Render(RenderScreen(m.screen)))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(status))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(m.help.View(m.keys)))

	if m.width == 0 || m.height == 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Run starts the Bubble Tea program for loop and blocks until it exits.
func Run(loop *crossing.Loop, opts Options) error {
	p := tea.NewProgram(
		NewModel(loop, opts),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
