package course

import "github.com/vovakirdan/pitcourse/internal/board"

// Event describes what a command did to the state.
type Event int

const (
	EventIgnored Event = iota // terminal state or unknown command
	EventArmed                // jump armed for the next move
	EventMoved                // player moved onto a safe cell
	EventClamped              // destination off the board
	EventBlocked              // destination is an obstacle
	EventFell                 // destination is a pit
)

func (e Event) String() string {
	switch e {
	case EventIgnored:
		return "ignored"
	case EventArmed:
		return "armed"
	case EventMoved:
		return "moved"
	case EventClamped:
		return "clamped"
	case EventBlocked:
		return "blocked"
	case EventFell:
		return "fell"
	default:
		return "unknown"
	}
}

// Resolve applies cmd to s and returns the next state.
func Resolve(s State, cmd Command) State {
	next, _ := Step(s, cmd)
	return next
}

// Step applies cmd to s and reports what happened.
//
// Jump arms a double step. A directional command moves one cell, or two when
// armed, and always disarms the jump. Moves off the board change nothing
// else. Landing in a pit costs a life and sends the player back to the start
// corner; landing on an obstacle undoes the whole step. Only the destination
// cell is checked, so a double step passes over whatever lies between.
// Once the game has ended every command is ignored.
func Step(s State, cmd Command) (State, Event) {
	if s.Terminal() || !cmd.Valid() {
		return s, EventIgnored
	}
	if cmd == Jump {
		s.JumpArmed = true
		return s, EventArmed
	}

	dr, dc := cmd.delta()

	stride := 1
	if s.JumpArmed {
		stride = 2
	}
	s.JumpArmed = false

	dest := s.Pos.Add(dr*stride, dc*stride)
	if !board.InBounds(dest) {
		return s, EventClamped
	}

	var ev Event
	switch board.KindOf(board.IndexOf(dest)) {
	case board.Pit:
		s.Lives = max(s.Lives-1, 0)
		s.Pos = board.Start()
		s.Index = board.IndexOf(s.Pos)
		s.Height = Fallen
		ev = EventFell
	case board.Obstacle:
		ev = EventBlocked
	default:
		s.Pos = dest
		s.Index = board.IndexOf(dest)
		s.Height = Grounded
		ev = EventMoved
	}

	s.Outcome = outcomeOf(s)
	return s, ev
}

// Run applies cmds in order starting from s.
func Run(s State, cmds []Command) State {
	for _, c := range cmds {
		s = Resolve(s, c)
	}
	return s
}
