// fruitbox is the "add to 10" puzzle for the terminal, a desktop window or
// an SSH server.
//
// Usage:
//
//	fruitbox play            - Play in this terminal
//	fruitbox play --gui      - Play in a desktop window
//	fruitbox serve           - Start SSH server for remote play
//	fruitbox config          - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fruitbox",
	Short: "Fruit Box - drag boxes around numbers that add up to 10",
	Long: `Fruit Box is a timed puzzle: drag a rectangle over numbered tokens
and clear them when they sum to exactly ten. Every cleared token is a
point; the round ends when the clock runs out.

Available commands:
  play     - Play in the terminal or a desktop window
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  fruitbox play
  fruitbox play --gui --sprite apple.png
  fruitbox serve --ssh :2222
  fruitbox config --difficulty hard`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
