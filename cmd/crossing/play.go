package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-crossing/internal/platform/tui"
)

// Space the terminal needs around the board: border plus status and help.
const (
	chromeW = 2
	chromeH = 4
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Arrows/WASD/hjkl  - Move one cell
  Ctrl+S            - Save a text screenshot to ~/.crossing/screenshots
  Q/Esc/Ctrl+C      - Quit

Examples:
  crossing play
  crossing play --fps 30
  crossing play --seed 42`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	if width < tui.BoardWidth+chromeW || height < tui.BoardHeight+chromeH {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n",
			width, height, tui.BoardWidth+chromeW, tui.BoardHeight+chromeH)
	}

	s, err := newSession(cmd.Context(), tui.DecodeGlyph, width, height)
	if err != nil {
		return err
	}
	defer s.Close()

	return tui.Run(s.loop, tui.Options{
		TickRate:      s.runtime.TickRate,
		SweepInterval: s.game.Enemies.SweepIntervalDuration(),
		Logger:        s.logger,
	})
}
