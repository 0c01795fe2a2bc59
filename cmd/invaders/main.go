// invaders is a terminal fixed-formation shooter.
//
// Usage:
//
//	invaders play            - Play in the local terminal
//	invaders serve           - Start SSH server for remote play
//	invaders stats           - Print recorded runs and a summary
//	invaders history         - Browse recorded runs interactively
//	invaders frontends       - List available terminal frontends
//	invaders config          - Print the default game configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Reserved for frontends that use randomness
//	--db <path>          - Set database path (default: ~/.arcade/invaders.db)
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file while playing
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import frontends to register them
	_ "github.com/vovakirdan/tui-invaders/internal/platform/tcellui"
	_ "github.com/vovakirdan/tui-invaders/internal/platform/tui"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Invaders - clear the formation from your terminal",
	Long: `Invaders is a fixed-formation shooter for the terminal. A grid of
enemies sweeps side to side and drops a row at each wall; shoot them all
to win.

Available commands:
  play       - Play in the local terminal
  serve      - Start SSH server for remote play
  stats      - Print recorded runs
  history    - Browse recorded runs
  frontends  - List terminal frontends
  config     - Print the default configuration

Examples:
  invaders play
  invaders play --frontend tcell
  invaders serve --ssh :2222
  invaders stats --limit 20`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed for frontends (the simulation itself is deterministic)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/invaders.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file for play (logs are discarded if empty)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(configCmd)
}
