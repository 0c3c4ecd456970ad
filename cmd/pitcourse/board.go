package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pitcourse/internal/board"
)

var flagWorld bool

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print the board layout",
	Long: `Prints the cell-kind table: one row per board row, P for a pit,
O for an obstacle and . for a safe cell. Block numbers run row by row from
0 (the goal) to 99 (the start).

With --world, also lists the world position of every pit and obstacle.`,
	Args: cobra.NoArgs,
	Run:  runBoard,
}

func init() {
	boardCmd.Flags().BoolVar(&flagWorld, "world", false, "List world positions of pits and obstacles")
}

func runBoard(cmd *cobra.Command, args []string) {
	out := cmd.OutOrStdout()
	pits, obstacles := board.Pits(), board.Obstacles()

	fmt.Fprint(out, board.Table())
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Start: block %d  Goal: block %d\n", board.StartIndex, board.GoalIndex)
	fmt.Fprintf(out, "Pits: %d  Obstacles: %d\n", len(pits), len(obstacles))

	if !flagWorld {
		return
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-8s  %5s  %6s  %6s\n", "Kind", "Block", "X", "Z")
	fmt.Fprintf(out, "  %-8s  %5s  %6s  %6s\n", "----", "-----", "-", "-")
	for _, group := range [][]board.Cell{pits, obstacles} {
		for _, c := range group {
			fmt.Fprintf(out, "  %-8s  %5d  %6.1f  %6.1f\n", c.Kind, c.Index, c.World.X, c.World.Z)
		}
	}
}
