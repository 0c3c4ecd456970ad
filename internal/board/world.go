package board

import "math"

// Extent is the world coordinate of the outermost cell centres on each
// ground axis. Cells are one world unit apart.
const Extent = 4.5

// Player heights in world units.
const (
	GroundHeight = 1.0
	FallenHeight = 0.0
)

// World is a position in the renderer's world space. X and Z span the
// ground plane, Y is height.
type World struct {
	X, Y, Z float64
}

// WorldOf maps a grid coordinate to the world position of the cell centre
// at ground level. Row grows as X falls and Col grows as Z falls, so the
// start corner sits at (-4.5, -4.5).
func WorldOf(c Coord) World {
	return World{
		X: Extent - float64(c.Row),
		Y: GroundHeight,
		Z: Extent - float64(c.Col),
	}
}

// CoordOfWorld maps a ground position back to the nearest grid coordinate.
// The result may be off the board; check it with InBounds.
func CoordOfWorld(w World) Coord {
	return Coord{
		Row: int(math.Round(Extent - w.X)),
		Col: int(math.Round(Extent - w.Z)),
	}
}

// Cell is the static description of one board cell.
type Cell struct {
	Index int
	Coord Coord
	World World
	Kind  Kind
}

var cells = buildCells()

func buildCells() []Cell {
	out := make([]Cell, CellCount)
	for i := range out {
		c := CoordOf(i)
		out[i] = Cell{
			Index: i,
			Coord: c,
			World: WorldOf(c),
			Kind:  KindOf(i),
		}
	}
	return out
}

// Cells returns the geometry of all cells in index order.
// The returned slice is a copy.
func Cells() []Cell {
	out := make([]Cell, len(cells))
	copy(out, cells)
	return out
}

// Obstacles returns the obstacle cells in index order.
func Obstacles() []Cell {
	return cellsOfKind(Obstacle)
}

// Pits returns the pit cells in index order.
func Pits() []Cell {
	return cellsOfKind(Pit)
}

func cellsOfKind(k Kind) []Cell {
	var out []Cell
	for _, c := range cells {
		if c.Kind == k {
			out = append(out, c)
		}
	}
	return out
}
