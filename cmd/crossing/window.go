package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-crossing/internal/games/crossing"
	"github.com/vovakirdan/tui-crossing/internal/platform/gui"
)

var flagScale int

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a game in a desktop window.

Controls:
  Arrows/WASD  - Move one cell (on key release)
  Q/Esc        - Quit`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().IntVar(&flagScale, "scale", 1, "Window size multiplier")
}

func runWindow(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd.Context(), gui.DecodeSprite,
		crossing.CanvasWidth*flagScale, crossing.CanvasHeight*flagScale)
	if err != nil {
		return err
	}
	defer s.Close()

	return gui.Run(s.loop, gui.Options{
		TickRate:      s.runtime.TickRate,
		SweepInterval: s.game.Enemies.SweepIntervalDuration(),
		Scale:         flagScale,
		Logger:        s.logger,
	})
}
