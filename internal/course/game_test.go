package course

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pitcourse/internal/board"
	"github.com/vovakirdan/pitcourse/internal/core"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.DefaultConfig())
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Push(a)
	}
	return in
}

func TestGameIdentity(t *testing.T) {
	g := New()
	assert.Equal(t, "pitcourse", g.ID())
	assert.Equal(t, "Pit Course", g.Title())
	assert.Equal(t, PhasePlaying, g.Phase())
}

func TestGameAppliesActionsInOrder(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(frame(core.ActionUp, core.ActionJump, core.ActionRight))

	assert.Equal(t, 87, g.Rules().Index)
	assert.False(t, g.Rules().JumpArmed)
	assert.False(t, res.State.GameOver)
	assert.Equal(t, uint64(1), g.Snapshot().Tick)
}

func TestGameJumpCarriesAcrossTicks(t *testing.T) {
	g := newTestGame(t)
	g.state = At(64)

	g.Step(frame(core.ActionJump))
	assert.True(t, g.Rules().JumpArmed)
	assert.Equal(t, "Jump armed", g.Scene().Message)

	g.Step(frame(core.ActionUp))
	assert.Equal(t, 44, g.Rules().Index)
}

func TestGamePause(t *testing.T) {
	g := newTestGame(t)

	res := g.Step(frame(core.ActionPause))
	require.True(t, res.State.Paused)
	assert.Equal(t, PhasePaused, g.Phase())

	g.Step(frame(core.ActionUp, core.ActionHint))
	assert.Equal(t, board.StartIndex, g.Rules().Index, "moves are ignored while paused")
	assert.Zero(t, g.Snapshot().HintLen)

	res = g.Step(frame(core.ActionPause))
	assert.False(t, res.State.Paused)

	g.Step(frame(core.ActionUp))
	assert.Equal(t, 89, g.Rules().Index)
}

func TestGameFallCue(t *testing.T) {
	var buf bytes.Buffer
	g := New(WithLogger(log.New(&buf)))
	g.Reset(core.DefaultConfig())
	g.state = At(94)

	g.Step(frame(core.ActionRight))

	require.Equal(t, Fallen, g.Rules().Height)
	assert.Equal(t, StartLives-1, g.Rules().Lives)
	assert.Equal(t, board.StartIndex, g.Rules().Index)
	assert.Equal(t, board.FallenHeight, g.Scene().Player.Y)
	assert.Contains(t, buf.String(), "fallen into pit")

	for i := 1; i < fallCueTicks; i++ {
		require.Equal(t, Fallen, g.Rules().Height, "tick %d", i)
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, Grounded, g.Rules().Height)
	assert.Equal(t, board.GroundHeight, g.Scene().Player.Y)
}

func TestGameWin(t *testing.T) {
	g := newTestGame(t)
	cmds, err := ParseScript(winningScript)
	require.NoError(t, err)

	for _, c := range cmds {
		g.Apply(c)
	}
	res := g.Step(core.NewInputFrame())

	assert.True(t, res.State.GameOver)
	assert.True(t, res.State.Won)
	assert.Equal(t, PhaseWon, g.Phase())
	assert.Equal(t, "YOU WON THE GAME", g.Scene().Message)

	g.Step(frame(core.ActionDown, core.ActionPause))
	assert.Equal(t, board.GoalIndex, g.Rules().Index, "a won game ignores input")
	assert.Equal(t, PhaseWon, g.Phase())
}

func TestGameLose(t *testing.T) {
	g := newTestGame(t)
	g.state = At(94)
	g.state.Lives = 1

	res := g.Step(frame(core.ActionRight))

	assert.True(t, res.State.GameOver)
	assert.False(t, res.State.Won)
	assert.Equal(t, 0, res.State.Lives)
	assert.Equal(t, PhaseLost, g.Phase())
	assert.Equal(t, "LOST THE GAME", g.Scene().Message)
	assert.Equal(t, EventIgnored, g.Apply(MoveNorth))
}

func TestGamePauseAfterFinalMove(t *testing.T) {
	tests := []struct {
		name  string
		index int
		lives int
		move  core.Action
		phase string
		won   bool
	}{
		{"winning move", 10, StartLives, core.ActionUp, PhaseWon, true},
		{"losing fall", 94, 1, core.ActionRight, PhaseLost, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTestGame(t)
			g.state = At(tc.index)
			g.state.Lives = tc.lives

			res := g.Step(frame(tc.move, core.ActionPause))

			assert.Equal(t, tc.phase, g.Phase())
			assert.True(t, res.State.GameOver)
			assert.Equal(t, tc.won, res.State.Won)
			assert.False(t, res.State.Paused)

			res = g.Step(frame(core.ActionPause))
			assert.Equal(t, tc.phase, g.Phase(), "a finished game cannot be paused")
			assert.True(t, res.State.GameOver)
		})
	}
}

func TestGameHint(t *testing.T) {
	g := newTestGame(t)

	g.Step(frame(core.ActionHint))
	assert.Equal(t, 18, g.Snapshot().HintLen)
	assert.True(t, strings.HasPrefix(g.Scene().Message, "Route: "))
	assert.NotEmpty(t, g.Scene().Hint)

	g.Step(frame(core.ActionUp))
	assert.Zero(t, g.Snapshot().HintLen, "moving clears the hint")
	assert.Empty(t, g.Scene().Hint)
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t)
	g.Step(frame(core.ActionUp, core.ActionPause))

	g.Reset(core.DefaultConfig())

	assert.Equal(t, NewState(), g.Rules())
	assert.Equal(t, PhasePlaying, g.Phase())
	assert.Zero(t, g.Snapshot().Tick)
}

func TestGameDeterminism(t *testing.T) {
	inputs := []core.InputFrame{
		frame(core.ActionUp),
		frame(core.ActionJump, core.ActionRight),
		frame(core.ActionRight),
		frame(),
		frame(core.ActionLeft, core.ActionDown),
	}

	run := func() Snapshot {
		g := newTestGame(t)
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Snapshot()
	}

	assert.Equal(t, run(), run())
}

func TestDebugState(t *testing.T) {
	g := newTestGame(t)
	out := g.DebugState()

	assert.Contains(t, out, "Block: 99 (9,9)")
	assert.Contains(t, out, "Lives: 3")
}

func TestRenderBoard(t *testing.T) {
	g := newTestGame(t)
	cam := core.DefaultCamera()
	scr := core.NewScreen(80, 24)

	g.Render(scr, cam)

	assert.Contains(t, scr.Row(0), "Pit Course")
	assert.Contains(t, scr.Row(0), "Block: 99")

	bx, by, fits := BoardOrigin(80, 24, cam)
	require.True(t, fits)

	x, y := CellOrigin(bx, by, board.Start(), cam)
	assert.Equal(t, g.theme.Player.Glyph, scr.GetCell(x, y).Rune)
	assert.Equal(t, g.theme.Player.Color, scr.GetCell(x, y).Color)

	x, y = CellOrigin(bx, by, board.CoordOf(board.GoalIndex), cam)
	assert.Equal(t, g.theme.Goal.Glyph, scr.GetCell(x, y).Rune)

	x, y = CellOrigin(bx, by, board.CoordOf(93), cam)
	assert.Equal(t, g.theme.Pit.Glyph, scr.GetCell(x, y).Rune)

	x, y = CellOrigin(bx, by, board.CoordOf(97), cam)
	assert.Equal(t, g.theme.Obstacle.Glyph, scr.GetCell(x, y).Rune)
}

func TestRenderOverheadLabels(t *testing.T) {
	g := newTestGame(t)
	cam := core.Camera{Zoom: 1, Overhead: true}
	scr := core.NewScreen(80, 24)

	g.Render(scr, cam)

	bx, by, fits := BoardOrigin(80, 24, cam)
	require.True(t, fits)
	x, y := CellOrigin(bx, by, board.CoordOf(64), cam)
	assert.Equal(t, "64", string([]rune(scr.Row(y))[x:x+2]))
}

func TestRenderOutcomeOverlay(t *testing.T) {
	g := newTestGame(t)
	g.state = At(10)
	g.Step(frame(core.ActionUp))
	require.Equal(t, PhaseWon, g.Phase())

	scr := core.NewScreen(80, 24)
	g.Render(scr, core.DefaultCamera())
	assert.Contains(t, scr.String(), "YOU WON THE GAME")
	assert.Contains(t, scr.String(), "Lives left: 3")
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t)
	scr := core.NewScreen(20, 10)

	g.Render(scr, core.DefaultCamera())

	assert.Contains(t, scr.String(), "Window too small")
}
