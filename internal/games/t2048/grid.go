package t2048

import "fmt"

// slot is one board cell. ok is false for an empty cell.
type slot struct {
	tile Tile
	ok   bool
}

// Grid is a size x size board of optional tiles in canonical (north)
// coordinates. Column 0, row 0 is the bottom-left corner.
//
// Perspective-relative access goes through TileAt and Move, which take the
// side explicitly; the grid itself never stores an orientation.
type Grid struct {
	size  int
	cells []slot // row-major, index row*size+col
}

// NewGrid creates an empty grid. Sizes below 2 are rejected.
func NewGrid(size int) (*Grid, error) {
	if size < 2 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	return &Grid{
		size:  size,
		cells: make([]slot, size*size),
	}, nil
}

// Size returns the number of cells on one side of the grid.
func (g *Grid) Size() int {
	return g.size
}

// InBounds reports whether (col, row) lies on the grid.
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.size && row >= 0 && row < g.size
}

func (g *Grid) index(col, row int) int {
	if !g.InBounds(col, row) {
		panic(fmt.Sprintf("t2048: cell (%d, %d) outside %dx%d grid", col, row, g.size, g.size))
	}
	return row*g.size + col
}

// Tile returns the tile at canonical (col, row).
// Out-of-range coordinates panic.
func (g *Grid) Tile(col, row int) (Tile, bool) {
	s := g.cells[g.index(col, row)]
	return s.tile, s.ok
}

// TileAt returns the tile at (col, row) as seen with side at the top.
func (g *Grid) TileAt(side Side, col, row int) (Tile, bool) {
	c, r := side.Canonical(col, row, g.size)
	return g.Tile(c, r)
}

// AddTile places t on its (empty) cell.
func (g *Grid) AddTile(t Tile) error {
	if !g.InBounds(t.col, t.row) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, t)
	}
	if !validValue(t.value) {
		return fmt.Errorf("%w: %v", ErrInvalidValue, t)
	}
	i := t.row*g.size + t.col
	if g.cells[i].ok {
		return fmt.Errorf("%w: %v on %v", ErrCellOccupied, t, g.cells[i].tile)
	}
	g.cells[i] = slot{tile: t, ok: true}
	return nil
}

// Move relocates t to (col, row) as seen with side at the top and clears
// t's old cell. If the destination already holds a tile, the two merge
// into a new tile of twice t's value and merged is true. The caller
// guarantees the values are equal in that case.
//
// Moving a tile onto its own cell is a no-op.
func (g *Grid) Move(side Side, col, row int, t Tile) (result Tile, merged bool) {
	c, r := side.Canonical(col, row, g.size)
	if c == t.col && r == t.row {
		return t, false
	}

	dst := g.index(c, r)
	src := g.index(t.col, t.row)

	result = t.at(c, r)
	if g.cells[dst].ok {
		result.value = 2 * t.value
		merged = true
	}

	g.cells[src] = slot{}
	g.cells[dst] = slot{tile: result, ok: true}
	return result, merged
}

// Clear empties every cell.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = slot{}
	}
}

// Count returns the number of occupied cells.
func (g *Grid) Count() int {
	n := 0
	for _, s := range g.cells {
		if s.ok {
			n++
		}
	}
	return n
}

// Tiles returns every tile in row-major order, bottom row first.
func (g *Grid) Tiles() []Tile {
	tiles := make([]Tile, 0, len(g.cells))
	for _, s := range g.cells {
		if s.ok {
			tiles = append(tiles, s.tile)
		}
	}
	return tiles
}

// Cell is a canonical board coordinate.
type Cell struct {
	Col, Row int
}

// EmptyCells returns every empty cell in row-major order, bottom row first.
func (g *Grid) EmptyCells() []Cell {
	var cells []Cell
	for i, s := range g.cells {
		if !s.ok {
			cells = append(cells, Cell{Col: i % g.size, Row: i / g.size})
		}
	}
	return cells
}

// Values returns the board as a value matrix, top row first, 0 for empty
// cells. This matches how boards are written out in fixtures.
func (g *Grid) Values() [][]int {
	values := make([][]int, g.size)
	for y, yEnd := 0, g.size; y < yEnd; y++ {
		values[y] = make([]int, g.size)
		row := g.size - 1 - y
		for col, colEnd := 0, g.size; col < colEnd; col++ {
			if t, ok := g.Tile(col, row); ok {
				values[y][col] = t.value
			}
		}
	}
	return values
}
