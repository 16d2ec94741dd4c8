package t2048

import "fmt"

// Tile is a numbered piece at a canonical board position.
// Tiles are values: a merge produces a new Tile rather than changing one.
type Tile struct {
	value int
	col   int
	row   int
}

// NewTile returns a tile with the given value at (col, row).
func NewTile(value, col, row int) Tile {
	return Tile{value: value, col: col, row: row}
}

// Value returns the tile's number.
func (t Tile) Value() int { return t.value }

// Col returns the tile's canonical column.
func (t Tile) Col() int { return t.col }

// Row returns the tile's canonical row (0 is the bottom row).
func (t Tile) Row() int { return t.row }

// at returns a copy of t placed at (col, row).
func (t Tile) at(col, row int) Tile {
	return Tile{value: t.value, col: col, row: row}
}

// String renders the tile as value@(col, row).
func (t Tile) String() string {
	return fmt.Sprintf("%d@(%d, %d)", t.value, t.col, t.row)
}

// validValue reports whether v is a positive power of two.
func validValue(v int) bool {
	return v > 0 && v&(v-1) == 0
}
