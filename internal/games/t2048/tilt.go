package t2048

// TileMove records one tile relocation during a tilt, in canonical
// coordinates. Merged is true when the tile landed on an equal tile.
type TileMove struct {
	From   Cell
	To     Cell
	Value  int // value before the merge
	Merged bool
}

// TiltResult summarises one tilt of the whole board.
type TiltResult struct {
	Changed bool
	Score   int // sum of the values of all tiles created by merges
	Merges  int
	Moves   []TileMove
}

// tilt slides every tile toward side, merging equal neighbours.
//
// Each perspective-relative column is handled independently. Whether a
// column changes is decided from its pre-tilt contents before it is
// mutated.
func tilt(g *Grid, side Side) TiltResult {
	var res TiltResult
	for col, colEnd := 0, g.size; col < colEnd; col++ {
		if columnChanged(g, side, col) {
			res.Changed = true
		}
		tiltColumn(g, side, col, &res)
	}
	return res
}

// tiltColumn moves the tiles of one column toward its top row.
//
// pos is the highest row that may still receive a tile. After a merge pos
// drops below the merged cell, sealing it for the rest of the pass; that is
// what stops a merged tile from merging again and makes the leading pair of
// three equal tiles merge while the trailing one only slides.
func tiltColumn(g *Grid, side Side, col int, res *TiltResult) {
	pos := g.size - 1
	for row := g.size - 2; row >= 0; row-- {
		t, ok := g.TileAt(side, col, row)
		if !ok {
			continue
		}

		top, occupied := g.TileAt(side, col, pos)
		switch {
		case !occupied:
			move(g, side, col, pos, t, res)
		case top.value == t.value:
			move(g, side, col, pos, t, res)
			pos--
		default:
			pos--
			move(g, side, col, pos, t, res)
		}
	}
}

func move(g *Grid, side Side, col, row int, t Tile, res *TiltResult) {
	moved, merged := g.Move(side, col, row, t)
	if moved == t {
		return
	}
	res.Moves = append(res.Moves, TileMove{
		From:   Cell{Col: t.col, Row: t.row},
		To:     Cell{Col: moved.col, Row: moved.row},
		Value:  t.value,
		Merged: merged,
	})
	if merged {
		res.Score += moved.value
		res.Merges++
	}
}

// columnChanged reports whether tilting the column toward its top row
// would change it. It only reads the grid.
func columnChanged(g *Grid, side Side, col int) bool {
	remaining := 0
	for row, rowEnd := 0, g.size; row < rowEnd; row++ {
		if _, ok := g.TileAt(side, col, row); ok {
			remaining++
		}
	}
	if remaining == 0 {
		return false
	}

	above, ok := g.TileAt(side, col, g.size-1)
	if !ok {
		return true
	}
	remaining--

	for row := g.size - 2; row >= 0; row-- {
		if remaining == 0 {
			return false
		}
		t, ok := g.TileAt(side, col, row)
		if !ok {
			// a gap with tiles still below it
			return true
		}
		remaining--
		if t.value == above.value {
			return true
		}
		above = t
	}
	return false
}
