package wator

import "fmt"

// Pos is a grid position. Row increases downward, Col to the right.
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Grid is the toroidal ocean.
// Cells are stored in row-major order: index = row*Cols + col.
type Grid struct {
	Rows  int
	Cols  int
	Cells []Cell
}

// NewGrid creates a grid with every cell empty.
func NewGrid(rows, cols int) *Grid {
	return &Grid{
		Rows:  rows,
		Cols:  cols,
		Cells: make([]Cell, rows*cols),
	}
}

// Size returns the number of cells in the grid.
func (g *Grid) Size() int {
	return g.Rows * g.Cols
}

// Wrap maps any position onto the torus.
func (g *Grid) Wrap(p Pos) Pos {
	return Pos{Row: mod(p.Row, g.Rows), Col: mod(p.Col, g.Cols)}
}

func (g *Grid) index(p Pos) int {
	p = g.Wrap(p)
	return p.Row*g.Cols + p.Col
}

func (g *Grid) pos(idx int) Pos {
	return Pos{Row: idx / g.Cols, Col: idx % g.Cols}
}

// Get returns the cell at p. Positions wrap around the edges.
func (g *Grid) Get(p Pos) Cell {
	return g.Cells[g.index(p)]
}

// Set stores cell at p. Positions wrap around the edges.
func (g *Grid) Set(p Pos, cell Cell) {
	g.Cells[g.index(p)] = cell
}

// Neighbors returns the four orthogonal neighbors of p with toroidal wraparound,
// ordered down, right, up, left.
func (g *Grid) Neighbors(p Pos) [4]Pos {
	return [4]Pos{
		g.Wrap(Pos{Row: p.Row + 1, Col: p.Col}),
		g.Wrap(Pos{Row: p.Row, Col: p.Col + 1}),
		g.Wrap(Pos{Row: p.Row - 1, Col: p.Col}),
		g.Wrap(Pos{Row: p.Row, Col: p.Col - 1}),
	}
}

// neighborIndices is Neighbors expressed as flat indices.
func (g *Grid) neighborIndices(idx int) [4]int {
	row, col := idx/g.Cols, idx%g.Cols
	down := mod(row+1, g.Rows)*g.Cols + col
	right := row*g.Cols + mod(col+1, g.Cols)
	up := mod(row-1, g.Rows)*g.Cols + col
	left := row*g.Cols + mod(col-1, g.Cols)
	return [4]int{down, right, up, left}
}

// Count returns the number of cells of the given kind.
func (g *Grid) Count(kind Kind) int {
	count := 0
	for _, cell := range g.Cells {
		if cell.Kind == kind {
			count++
		}
	}
	return count
}

// FishCount returns the number of fish.
func (g *Grid) FishCount() int {
	return g.Count(KindFish)
}

// SharkCount returns the number of sharks.
func (g *Grid) SharkCount() int {
	return g.Count(KindShark)
}

// Occupied returns the number of cells holding a creature.
func (g *Grid) Occupied() int {
	return g.Size() - g.Count(KindEmpty)
}

// IsExtinct returns true if no creature of either species is left.
func (g *Grid) IsExtinct() bool {
	return g.Occupied() == 0
}

// IsFishSaturated returns true if every cell holds a fish.
func (g *Grid) IsFishSaturated() bool {
	return g.FishCount() == g.Size()
}

// Positions returns the positions holding the given kind, in row-major order.
func (g *Grid) Positions(kind Kind) []Pos {
	positions := make([]Pos, 0)
	for idx, cell := range g.Cells {
		if cell.Kind == kind {
			positions = append(positions, g.pos(idx))
		}
	}
	return positions
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{
		Rows:  g.Rows,
		Cols:  g.Cols,
		Cells: cells,
	}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if g.Rows != other.Rows || g.Cols != other.Cols {
		return false
	}
	for i, cell := range g.Cells {
		if cell != other.Cells[i] {
			return false
		}
	}
	return true
}

// reset empties every cell in place.
func (g *Grid) reset() {
	clear(g.Cells)
}

func mod(a, n int) int {
	a %= n
	if a < 0 {
		a += n
	}
	return a
}
