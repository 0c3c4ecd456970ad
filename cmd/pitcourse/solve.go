package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pitcourse/internal/board"
	"github.com/vovakirdan/pitcourse/internal/course"
)

var flagFrom int

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Print the shortest safe route to the goal",
	Long: `Searches for the shortest command sequence that reaches block 0
without entering a pit, and prints it in the form replay accepts.

Examples:
  pitcourse solve
  pitcourse solve --from 64`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	solveCmd.Flags().IntVar(&flagFrom, "from", board.StartIndex, "Block to start from")
}

func runSolve(cmd *cobra.Command, args []string) error {
	if !board.ValidIndex(flagFrom) {
		return fmt.Errorf("block %d is not on the board (0-%d)", flagFrom, board.CellCount-1)
	}
	if k := board.KindOf(flagFrom); k != board.Safe {
		return fmt.Errorf("block %d is a %s", flagFrom, k)
	}

	start := course.At(flagFrom)
	route, ok := course.Route(start)
	if !ok {
		return fmt.Errorf("no safe route from block %d", flagFrom)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, course.FormatScript(route))
	fmt.Fprintf(out, "%d commands\n", len(route))

	trail := course.Trail(start, route)
	blocks := make([]string, 0, len(trail)+1)
	blocks = append(blocks, fmt.Sprint(flagFrom))
	for _, c := range trail {
		blocks = append(blocks, fmt.Sprint(board.IndexOf(c)))
	}
	fmt.Fprintf(out, "Blocks: %s\n", strings.Join(blocks, " -> "))
	return nil
}
