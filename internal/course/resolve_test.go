package course

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/pitcourse/internal/board"
)

// winningScript is a shortest pit-free route from the start corner.
const winningScript = "N J E E J N J N J N J N J E J E J E"

func place(s State, index int) State {
	s.Pos = board.CoordOf(index)
	s.Index = index
	return s
}

func TestNewState(t *testing.T) {
	s := NewState()

	assert.Equal(t, board.StartIndex, s.Index)
	assert.Equal(t, board.C(9, 9), s.Pos)
	assert.Equal(t, StartLives, s.Lives)
	assert.False(t, s.JumpArmed)
	assert.Equal(t, InProgress, s.Outcome)
	assert.Equal(t, Grounded, s.Height)
	assert.True(t, s.Consistent())
	assert.Equal(t, board.World{X: -4.5, Y: 1, Z: -4.5}, s.World())
}

func TestMoveNorthFromStart(t *testing.T) {
	s := NewState()
	require.Equal(t, board.Safe, board.KindOf(89))

	next := Resolve(s, MoveNorth)

	assert.Equal(t, s.Index-10, next.Index)
	assert.Equal(t, StartLives, next.Lives)
	assert.Equal(t, InProgress, next.Outcome)
	assert.True(t, next.Consistent())
}

func TestDirections(t *testing.T) {
	tests := []struct {
		name string
		cmd  Command
		jump bool
		want int
	}{
		{"north", MoveNorth, false, 54},
		{"south", MoveSouth, false, 74},
		{"east", MoveEast, false, 63},
		{"west", MoveWest, false, 65},
		{"jump north", MoveNorth, true, 44},
		{"jump south", MoveSouth, true, 84},
		{"jump east", MoveEast, true, 62},
		{"jump west", MoveWest, true, 66},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := At(64)
			if tc.jump {
				s = Resolve(s, Jump)
			}
			next, ev := Step(s, tc.cmd)

			require.Equal(t, EventMoved, ev)
			assert.Equal(t, tc.want, next.Index)
			assert.False(t, next.JumpArmed)
			assert.True(t, next.Consistent())
		})
	}
}

func TestJumpArmsWithoutMoving(t *testing.T) {
	s := At(89)
	next, ev := Step(s, Jump)

	assert.Equal(t, EventArmed, ev)
	assert.True(t, next.JumpArmed)
	assert.Equal(t, s.Index, next.Index)
	assert.Equal(t, s.Lives, next.Lives)
}

func TestJumpThenEast(t *testing.T) {
	s := Resolve(At(89), Jump)
	next := Resolve(s, MoveEast)

	assert.Equal(t, 87, next.Index, "jump should move two cells east")
	assert.False(t, next.JumpArmed)
}

func TestBoundaryClamp(t *testing.T) {
	tests := []struct {
		name  string
		index int
		jump  bool
		cmd   Command
	}{
		{"south edge", 99, false, MoveSouth},
		{"west edge", 99, false, MoveWest},
		{"north edge", 9, false, MoveNorth},
		{"east edge", 90, false, MoveEast},
		{"jump past north edge", 10, true, MoveNorth},
		{"jump past east edge", 81, true, MoveEast},
		{"jump past south edge", 89, true, MoveSouth},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := At(tc.index)
			if tc.jump {
				s = Resolve(s, Jump)
			}
			next, ev := Step(s, tc.cmd)

			assert.Equal(t, EventClamped, ev)
			assert.Equal(t, s.Index, next.Index)
			assert.Equal(t, s.Pos, next.Pos)
			assert.Equal(t, s.Lives, next.Lives)
			assert.Equal(t, s.Outcome, next.Outcome)
			assert.False(t, next.JumpArmed, "a clamped move still consumes the jump")
		})
	}
}

func TestSingleStepFitsWhereJumpDoesNot(t *testing.T) {
	s := At(10)

	_, ev := Step(Resolve(s, Jump), MoveNorth)
	assert.Equal(t, EventClamped, ev)

	next := Resolve(s, MoveNorth)
	assert.Equal(t, board.GoalIndex, next.Index)
}

func TestPitFall(t *testing.T) {
	tests := []struct {
		name  string
		index int
		jump  bool
		cmd   Command
		pit   int
	}{
		{"step into pit", 94, false, MoveEast, 93},
		{"jump into pit", 95, true, MoveEast, 93},
		{"pit that also matches the obstacle rule", 86, false, MoveEast, 85},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, board.Pit, board.KindOf(tc.pit))
			s := At(tc.index)
			if tc.jump {
				s = Resolve(s, Jump)
			}
			next, ev := Step(s, tc.cmd)

			assert.Equal(t, EventFell, ev)
			assert.Equal(t, s.Lives-1, next.Lives)
			assert.Equal(t, board.Start(), next.Pos)
			assert.Equal(t, board.StartIndex, next.Index)
			assert.Equal(t, Fallen, next.Height)
			assert.Equal(t, board.FallenHeight, next.World().Y)
			assert.False(t, next.JumpArmed)
			assert.True(t, next.Consistent())
		})
	}
}

func TestObstacleReverts(t *testing.T) {
	s := At(98)
	next, ev := Step(s, MoveEast)

	assert.Equal(t, EventBlocked, ev)
	assert.Equal(t, s.Pos, next.Pos)
	assert.Equal(t, s.Index, next.Index)
	assert.Equal(t, s.Lives, next.Lives)

	// A doubled step is undone as a whole.
	armed := Resolve(NewState(), Jump)
	next, ev = Step(armed, MoveEast)

	assert.Equal(t, EventBlocked, ev)
	assert.Equal(t, board.StartIndex, next.Index)
	assert.False(t, next.JumpArmed)
}

func TestJumpPassesOverObstacle(t *testing.T) {
	require.Equal(t, board.Obstacle, board.KindOf(97))
	require.Equal(t, board.Safe, board.KindOf(96))

	s := Resolve(At(98), Jump)
	next, ev := Step(s, MoveEast)

	assert.Equal(t, EventMoved, ev)
	assert.Equal(t, 96, next.Index, "only the landing cell is checked")
}

func TestLivesRunOut(t *testing.T) {
	s := NewState()
	for fall := 1; fall <= StartLives; fall++ {
		s = place(s, 94)
		var ev Event
		s, ev = Step(s, MoveEast)

		require.Equal(t, EventFell, ev)
		assert.Equal(t, StartLives-fall, s.Lives)
		assert.Equal(t, board.StartIndex, s.Index, "teleport happens even on the losing fall")
		if fall < StartLives {
			assert.Equal(t, InProgress, s.Outcome)
		}
	}

	assert.Equal(t, 0, s.Lives)
	assert.Equal(t, Lost, s.Outcome)
}

func TestLivesNeverNegative(t *testing.T) {
	s := At(94)
	s.Lives = 0

	next := Resolve(s, MoveEast)
	assert.Equal(t, 0, next.Lives)
	assert.Equal(t, Lost, next.Outcome)
}

func TestWinningScript(t *testing.T) {
	cmds, err := ParseScript(winningScript)
	require.NoError(t, err)

	s := NewState()
	for i, c := range cmds {
		var ev Event
		s, ev = Step(s, c)
		require.NotEqual(t, EventFell, ev, "command %d (%s)", i, c)
		require.NotEqual(t, EventBlocked, ev, "command %d (%s)", i, c)
	}

	assert.Equal(t, board.GoalIndex, s.Index)
	assert.Equal(t, Won, s.Outcome)
	assert.Equal(t, StartLives, s.Lives)
}

func TestTerminalStateIsFrozen(t *testing.T) {
	won := Resolve(At(10), MoveNorth)
	require.Equal(t, Won, won.Outcome)

	lost := At(94)
	lost.Lives = 1
	lost = Resolve(lost, MoveEast)
	require.Equal(t, Lost, lost.Outcome)

	for _, s := range []State{won, lost} {
		for _, c := range Commands {
			next, ev := Step(s, c)
			assert.Equal(t, EventIgnored, ev)
			assert.Equal(t, s, next)
		}
	}
}

func TestUnknownCommandIsNoOp(t *testing.T) {
	s := Resolve(At(64), Jump)
	for _, c := range []Command{0, Command(42), -1} {
		next, ev := Step(s, c)
		assert.Equal(t, EventIgnored, ev)
		assert.Equal(t, s, next)
	}
}

func TestRandomWalkInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for game := 0; game < 200; game++ {
		s := NewState()
		for i := 0; i < 300 && !s.Terminal(); i++ {
			c := Commands[rng.Intn(len(Commands))]
			next, ev := Step(s, c)

			require.True(t, next.Consistent(), "index out of sync after %s", c)
			require.GreaterOrEqual(t, next.Lives, 0)

			if ev == EventFell {
				require.Equal(t, s.Lives-1, next.Lives)
			} else {
				require.Equal(t, s.Lives, next.Lives)
			}
			if c != Jump {
				require.False(t, next.JumpArmed)
			}
			s = next
		}
	}
}
