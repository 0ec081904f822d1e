// crossing is a bug-dodging arcade game: walk the player from the grass,
// across three lanes of enemies, to the water.
//
// Usage:
//
//	crossing play            - Play in the terminal
//	crossing window          - Play in a desktop window
//	crossing config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: from config, 60)
//	--seed <value>   - Set RNG seed for reproducible gameplay
//	--config <path>  - Path to a custom crossing.yaml
//	--log <path>     - Append logs to a file (default: discarded)
//	--debug          - Log spawn and sweep events
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagConfig  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "crossing",
	Short: "Crossing - Dodge the bugs and reach the water",
	Long: `Crossing is an arcade game: walk your character from the grass,
across three lanes of bugs, to the water. Reaching the water wins a round,
touching a bug costs a life. The game ends when the last life is gone.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  config   - Print the effective configuration

Examples:
  crossing play
  crossing play --seed 42
  crossing window --scale 2
  crossing config > my-crossing.yaml
  crossing play --config ./my-crossing.yaml --log crossing.log --debug`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = loop.tick_rate from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom crossing config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Append logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(configCmd)
}
