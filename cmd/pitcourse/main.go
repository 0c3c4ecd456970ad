// pitcourse is a terminal obstacle course on a 10x10 board of pits and
// obstacles.
//
// Usage:
//
//	pitcourse play               - Play interactively
//	pitcourse board              - Print the cell-kind table
//	pitcourse solve              - Print the shortest safe route
//	pitcourse replay <commands>  - Run a command script headlessly
//
// Global flags:
//
//	--log-file <path>   - Write a rotating log (default: no logging)
//	--log-level <lvl>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pitcourse/internal/logging"
)

var (
	// Global flags
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pitcourse",
	Short: "Pit Course - cross a board of pits and obstacles",
	Long: `Pit Course is a terminal game on a 10x10 board. Start in the far
corner with three lives and reach block 0. Pits cost a life and send you
back to the start; obstacles block the way. A jump doubles your next step
and carries you over whatever lies between.

Available commands:
  play     - Play interactively
  board    - Print the board layout
  solve    - Print the shortest safe route
  replay   - Run a command script without the TUI

Examples:
  pitcourse play
  pitcourse play --config ./my-course.yaml --log-file pitcourse.log
  pitcourse solve
  pitcourse replay "N J E E"`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to log file (empty = no logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(replayCmd)
}

// openLog opens the session logger configured by the global flags.
func openLog() (*logging.Session, error) {
	opts := logging.DefaultOptions(flagLogFile)
	opts.Level = flagLogLevel
	sess, err := logging.New(opts)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	return sess, nil
}
