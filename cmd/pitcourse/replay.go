package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pitcourse/internal/core"
	"github.com/vovakirdan/pitcourse/internal/course"
)

var replayCmd = &cobra.Command{
	Use:   "replay <commands>",
	Short: "Run a command script without the TUI",
	Long: `Applies a script of commands from the start and prints the block
after each one, followed by the final state.

Commands are separated by spaces or commas:
  N, north, up      S, south, down
  E, east, right    W, west, left
  J, jump, space

Commands after the game ends are ignored.

Examples:
  pitcourse replay "N J E E"
  pitcourse replay N J E E
  pitcourse replay "$(pitcourse solve | head -1)"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runReplay,
}

func runReplay(cmd *cobra.Command, args []string) error {
	cmds, err := course.ParseScript(strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("parse script: %w", err)
	}

	sess, err := openLog()
	if err != nil {
		return err
	}
	defer sess.Close()

	game := course.New(course.WithLogger(sess.Logger))
	game.Reset(core.DefaultConfig())

	out := cmd.OutOrStdout()
	for i, c := range cmds {
		ev := game.Apply(c)
		game.Step(core.NewInputFrame())
		s := game.Rules()
		fmt.Fprintf(out, "%3d  %s  block %02d  lives %d  %s\n", i+1, c, s.Index, s.Lives, ev)
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, game.DebugState())
	switch game.Rules().Outcome {
	case course.Won:
		fmt.Fprintln(out, "YOU WON THE GAME")
	case course.Lost:
		fmt.Fprintln(out, "LOST THE GAME")
	}
	return nil
}
