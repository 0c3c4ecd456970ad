// Package board describes the fixed 10×10 obstacle course.
//
// Cells are identified by a linear index in row-major order:
// index = row*Size + col. A cell's kind is derived from its index and never
// stored, so every caller sees the same rules.
package board

import (
	"fmt"
	"strings"
)

// Board dimensions and well-known cells.
const (
	Size      = 10
	CellCount = Size * Size

	StartIndex = CellCount - 1 // player spawns and respawns here
	GoalIndex  = 0             // reaching this cell wins
)

// Kind is the semantic type of a cell.
type Kind int

const (
	Safe Kind = iota
	Pit
	Obstacle
)

func (k Kind) String() string {
	switch k {
	case Safe:
		return "safe"
	case Pit:
		return "pit"
	case Obstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// Glyph returns the single character used for the kind in text tables.
func (k Kind) Glyph() rune {
	switch k {
	case Pit:
		return 'P'
	case Obstacle:
		return 'O'
	default:
		return '.'
	}
}

// Coord is a grid coordinate. Row 0 holds the goal, row Size-1 the start.
type Coord struct {
	Row int
	Col int
}

// C is a convenience constructor for Coord.
func C(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Add returns a new Coord offset by (dr, dc).
func (c Coord) Add(dr, dc int) Coord {
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// Start returns the start corner.
func Start() Coord {
	return CoordOf(StartIndex)
}

// InBounds reports whether c lies on the board.
func InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

// ValidIndex reports whether i identifies a cell.
func ValidIndex(i int) bool {
	return i >= 0 && i < CellCount
}

// KindOf returns the kind of the cell at index i.
// Pit is checked first, so indices matching both rules are pits.
// It panics if i is not a valid index.
func KindOf(i int) Kind {
	mustIndex(i)
	switch {
	case i%8 == 5:
		return Pit
	case i%6 == 1:
		return Obstacle
	default:
		return Safe
	}
}

// CoordOf converts an index to its grid coordinate.
// It panics if i is not a valid index.
func CoordOf(i int) Coord {
	mustIndex(i)
	return Coord{Row: i / Size, Col: i % Size}
}

// IndexOf converts a grid coordinate to its index.
// It panics if c is off the board.
func IndexOf(c Coord) int {
	if !InBounds(c) {
		panic(fmt.Sprintf("board: coordinate %v off the %dx%d board", c, Size, Size))
	}
	return c.Row*Size + c.Col
}

func mustIndex(i int) {
	if !ValidIndex(i) {
		panic(fmt.Sprintf("board: cell index %d out of range [0,%d]", i, CellCount-1))
	}
}

// Table renders the kind of every cell as a Size×Size text grid,
// row 0 first, cells separated by spaces.
func Table() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < Size; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteRune(KindOf(IndexOf(C(row, col))).Glyph())
		}
	}
	return sb.String()
}
