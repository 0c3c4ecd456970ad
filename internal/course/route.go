package course

import "github.com/vovakirdan/pitcourse/internal/board"

// routeNode is a search state: where the player stands and whether a jump
// is armed. Lives do not matter because pit transitions are never taken.
type routeNode struct {
	pos   board.Coord
	armed bool
}

type routeStep struct {
	from routeNode
	cmd  Command
}

// Route returns the shortest command sequence that takes s to the goal
// without entering a pit. It reports false when no such sequence exists or
// the game is already lost. A won state yields an empty route.
func Route(s State) ([]Command, bool) {
	switch {
	case s.Outcome == Lost:
		return nil, false
	case s.Outcome == Won, s.Index == board.GoalIndex:
		return nil, true
	}

	start := routeNode{pos: s.Pos, armed: s.JumpArmed}
	prev := map[routeNode]routeStep{start: {}}
	queue := []routeNode{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		for _, cmd := range Commands {
			if cmd == Jump && cur.armed {
				continue
			}
			cand := State{
				Pos:       cur.pos,
				Index:     board.IndexOf(cur.pos),
				JumpArmed: cur.armed,
				Lives:     StartLives,
			}
			next, ev := Step(cand, cmd)
			if ev == EventFell {
				continue
			}

			node := routeNode{pos: next.Pos, armed: next.JumpArmed}
			if _, seen := prev[node]; seen {
				continue
			}
			prev[node] = routeStep{from: cur, cmd: cmd}

			if next.Index == board.GoalIndex {
				return unwind(prev, start, node), true
			}
			queue = append(queue, node)
		}
	}
	return nil, false
}

func unwind(prev map[routeNode]routeStep, start, end routeNode) []Command {
	var cmds []Command
	for n := end; n != start; {
		step := prev[n]
		cmds = append(cmds, step.cmd)
		n = step.from
	}
	for i, j := 0, len(cmds)-1; i < j; i, j = i+1, j-1 {
		cmds[i], cmds[j] = cmds[j], cmds[i]
	}
	return cmds
}

// Trail returns the cells visited when cmds are applied to s, excluding the
// starting cell. Commands that do not move the player add nothing.
func Trail(s State, cmds []Command) []board.Coord {
	var out []board.Coord
	for _, c := range cmds {
		next, ev := Step(s, c)
		if ev == EventMoved {
			out = append(out, next.Pos)
		}
		s = next
	}
	return out
}
