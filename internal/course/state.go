// Package course implements the obstacle-course rules: the player state,
// the movement resolver, the route planner and the playable session that
// the terminal platform drives.
package course

import "github.com/vovakirdan/pitcourse/internal/board"

// StartLives is the number of lives a new game begins with.
const StartLives = 3

// Height tells whether the player stands on the board or has just fallen.
type Height int

const (
	Grounded Height = iota
	Fallen
)

func (h Height) String() string {
	if h == Fallen {
		return "fallen"
	}
	return "grounded"
}

// Outcome classifies a game. Won and Lost are terminal.
type Outcome int

const (
	InProgress Outcome = iota
	Won
	Lost
)

func (o Outcome) String() string {
	switch o {
	case InProgress:
		return "in_progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

// State is the complete mutable record of one game.
// Index always equals board.IndexOf(Pos).
type State struct {
	Pos       board.Coord
	Height    Height
	Index     int
	JumpArmed bool
	Lives     int
	Outcome   Outcome
}

// NewState returns the state at game start: start corner, three lives.
func NewState() State {
	start := board.Start()
	return State{
		Pos:     start,
		Height:  Grounded,
		Index:   board.IndexOf(start),
		Lives:   StartLives,
		Outcome: InProgress,
	}
}

// At returns a fresh in-progress state with the player placed on cell index.
func At(index int) State {
	s := NewState()
	s.Pos = board.CoordOf(index)
	s.Index = index
	return s
}

// Terminal reports whether the game has ended.
func (s State) Terminal() bool {
	return s.Outcome != InProgress
}

// Consistent reports whether Index matches Pos.
func (s State) Consistent() bool {
	return board.InBounds(s.Pos) && s.Index == board.IndexOf(s.Pos)
}

// World returns the player's world position, lowered while fallen.
func (s State) World() board.World {
	w := board.WorldOf(s.Pos)
	if s.Height == Fallen {
		w.Y = board.FallenHeight
	}
	return w
}

func outcomeOf(s State) Outcome {
	switch {
	case s.Lives == 0:
		return Lost
	case s.Index == board.GoalIndex:
		return Won
	default:
		return InProgress
	}
}
