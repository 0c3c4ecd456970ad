package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/pitcourse/internal/config"
	"github.com/vovakirdan/pitcourse/internal/course"
	"github.com/vovakirdan/pitcourse/internal/platform/tui"
)

var (
	flagConfig string
	flagFPS    int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the course",
	Long: `Start an interactive game.

Controls (defaults, remappable in the config file):
  Arrows     - Move north/south/east/west
  Space      - Jump: the next move covers two cells
  H          - Show the shortest safe route
  P          - Pause
  O/Z        - Zoom in/out
  A/S        - Overhead view with block numbers / default view
  Q/Esc      - Quit
  Ctrl+S     - Save a screenshot to ~/.pitcourse/screenshots

Config search order:
  --config path, ~/.pitcourse/configs/course.yaml,
  ./configs/course.yaml, built-in defaults

Examples:
  pitcourse play
  pitcourse play --fps 60
  pitcourse play --config ./my-course.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	sess, err := openLog()
	if err != nil {
		return err
	}
	defer sess.Close()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	theme, err := cfg.Theme.Resolve()
	if err != nil {
		return fmt.Errorf("config theme: %w", err)
	}

	rc := cfg.RuntimeConfig()
	if flagFPS > 0 {
		rc.TickRate = flagFPS
	}
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	sess.Info("starting session", "tick_rate", rc.TickRate, "width", rc.ScreenW, "height", rc.ScreenH)

	game := course.New(course.WithLogger(sess.Logger), course.WithTheme(theme))
	state, err := tui.Run(game, tui.Options{
		Config: rc,
		Camera: cfg.CameraSettings(),
		Keys:   tui.NewKeyMap(cfg.Keys),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case state.Won:
		fmt.Fprintln(out, "YOU WON THE GAME")
	case state.GameOver:
		fmt.Fprintln(out, "LOST THE GAME")
	default:
		fmt.Fprintf(out, "Left the course at block %d with %d lives.\n", game.Rules().Index, state.Lives)
	}
	sess.Info("session ended", "won", state.Won, "game_over", state.GameOver, "lives", state.Lives)
	return nil
}
