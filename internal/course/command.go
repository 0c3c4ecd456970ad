package course

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/pitcourse/internal/core"
)

// Command is one player instruction. The zero value is not a valid command.
type Command int

const (
	MoveNorth Command = iota + 1
	MoveSouth
	MoveEast
	MoveWest
	Jump
)

// Commands lists the full command vocabulary in a fixed order.
var Commands = []Command{MoveNorth, MoveSouth, MoveEast, MoveWest, Jump}

func (c Command) String() string {
	switch c {
	case MoveNorth:
		return "N"
	case MoveSouth:
		return "S"
	case MoveEast:
		return "E"
	case MoveWest:
		return "W"
	case Jump:
		return "J"
	default:
		return fmt.Sprintf("Command(%d)", int(c))
	}
}

// Valid reports whether c belongs to the command vocabulary.
func (c Command) Valid() bool {
	return c >= MoveNorth && c <= Jump
}

// delta returns the unit grid offset of a directional command.
// North lowers the row, east lowers the column.
func (c Command) delta() (dr, dc int) {
	switch c {
	case MoveNorth:
		return -1, 0
	case MoveSouth:
		return 1, 0
	case MoveEast:
		return 0, -1
	case MoveWest:
		return 0, 1
	default:
		return 0, 0
	}
}

// CommandFor translates a platform action into a game command.
// Actions that are not game commands report false.
func CommandFor(a core.Action) (Command, bool) {
	switch a {
	case core.ActionUp:
		return MoveNorth, true
	case core.ActionDown:
		return MoveSouth, true
	case core.ActionRight:
		return MoveEast, true
	case core.ActionLeft:
		return MoveWest, true
	case core.ActionJump:
		return Jump, true
	default:
		return 0, false
	}
}

var commandWords = map[string]Command{
	"n": MoveNorth, "north": MoveNorth, "up": MoveNorth,
	"s": MoveSouth, "south": MoveSouth, "down": MoveSouth,
	"e": MoveEast, "east": MoveEast, "right": MoveEast,
	"w": MoveWest, "west": MoveWest, "left": MoveWest,
	"j": Jump, "jump": Jump, "space": Jump,
}

// ParseCommand parses a single command word such as "N", "north" or "jump".
func ParseCommand(word string) (Command, error) {
	if c, ok := commandWords[strings.ToLower(strings.TrimSpace(word))]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("unknown command %q", word)
}

// ParseScript parses a whitespace or comma separated list of commands.
func ParseScript(script string) ([]Command, error) {
	fields := strings.FieldsFunc(script, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
	cmds := make([]Command, 0, len(fields))
	for i, f := range fields {
		c, err := ParseCommand(f)
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", i+1, err)
		}
		cmds = append(cmds, c)
	}
	return cmds, nil
}

// FormatScript renders commands in the form ParseScript accepts.
func FormatScript(cmds []Command) string {
	parts := make([]string, len(cmds))
	for i, c := range cmds {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
