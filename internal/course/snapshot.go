package course

import (
	"fmt"
	"strings"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Block     int
	Row       int
	Col       int
	Height    Height
	Lives     int
	JumpArmed bool
	Outcome   Outcome
	Phase     string
	HintLen   int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Block:     g.state.Index,
		Row:       g.state.Pos.Row,
		Col:       g.state.Pos.Col,
		Height:    g.state.Height,
		Lives:     g.state.Lives,
		JumpArmed: g.state.JumpArmed,
		Outcome:   g.state.Outcome,
		Phase:     g.Phase(),
		HintLen:   len(g.hint),
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Phase: %s, Outcome: %s\n", s.Tick, s.Phase, s.Outcome))
	b.WriteString(fmt.Sprintf("Block: %d (%d,%d), Height: %s\n", s.Block, s.Row, s.Col, s.Height))
	b.WriteString(fmt.Sprintf("Lives: %d, JumpArmed: %v\n", s.Lives, s.JumpArmed))
	return b.String()
}
