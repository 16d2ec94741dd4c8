package t2048

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// columnGrid builds a grid whose column 0 holds vals, listed bottom row
// first; 0 is an empty cell.
func columnGrid(t *testing.T, vals []int) *Grid {
	t.Helper()
	g, err := NewGrid(len(vals))
	require.NoError(t, err)
	for row, v := range vals {
		if v != 0 {
			require.NoError(t, g.AddTile(NewTile(v, 0, row)))
		}
	}
	return g
}

// column reads column 0 bottom row first.
func column(g *Grid) []int {
	vals := make([]int, g.Size())
	for row, rowEnd := 0, g.Size(); row < rowEnd; row++ {
		if t, ok := g.Tile(0, row); ok {
			vals[row] = t.Value()
		}
	}
	return vals
}

// referenceTilt is the declarative formulation: pair equal neighbours from
// the leading end, then compact toward the top. vals are bottom row first.
func referenceTilt(vals []int) (out []int, score int) {
	var tiles []int
	for i := len(vals) - 1; i >= 0; i-- {
		if vals[i] != 0 {
			tiles = append(tiles, vals[i])
		}
	}

	var packed []int
	for i := 0; i < len(tiles); {
		if i+1 < len(tiles) && tiles[i] == tiles[i+1] {
			packed = append(packed, 2*tiles[i])
			score += 2 * tiles[i]
			i += 2
			continue
		}
		packed = append(packed, tiles[i])
		i++
	}

	out = make([]int, len(vals))
	for i, v := range packed {
		out[len(vals)-1-i] = v
	}
	return out, score
}

func TestTiltColumn(t *testing.T) {
	tests := []struct {
		name    string
		in      []int // bottom row first
		want    []int
		score   int
		changed bool
	}{
		{"triple: leading pair merges, trailing slides", []int{2, 2, 2, 0}, []int{0, 0, 2, 4}, 4, true},
		{"four equal merge as two pairs", []int{2, 2, 2, 2}, []int{0, 0, 4, 4}, 8, true},
		{"simple merge", []int{2, 2, 0, 0}, []int{0, 0, 0, 4}, 4, true},
		{"merge across gap", []int{2, 0, 0, 2}, []int{0, 0, 0, 4}, 4, true},
		{"merged tile does not merge again", []int{4, 2, 2, 0}, []int{0, 0, 4, 4}, 4, true},
		{"no merge possible", []int{16, 8, 4, 2}, []int{16, 8, 4, 2}, 0, false},
		{"already packed", []int{0, 0, 2, 4}, []int{0, 0, 2, 4}, 0, false},
		{"empty column", []int{0, 0, 0, 0}, []int{0, 0, 0, 0}, 0, false},
		{"single tile slides", []int{0, 4, 0, 0}, []int{0, 0, 0, 4}, 0, true},
		{"gap below top tile", []int{2, 0, 4, 8}, []int{0, 2, 4, 8}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := columnGrid(t, tt.in)
			res := tilt(g, North)
			assert.Equal(t, tt.want, column(g))
			assert.Equal(t, tt.score, res.Score)
			assert.Equal(t, tt.changed, res.Changed)
		})
	}
}

// TestTiltMatchesReference checks the single-pass engine against the
// pair-then-compact formulation for every column over {_, 2, 4, 8}.
func TestTiltMatchesReference(t *testing.T) {
	alphabet := []int{0, 2, 4, 8}
	for size := 3; size <= 5; size++ {
		total := 1
		for rangeIdx, rangeIdxEnd := 0, size; rangeIdx < rangeIdxEnd; rangeIdx++ {
			total *= len(alphabet)
		}
		for code, codeEnd := 0, total; code < codeEnd; code++ {
			vals := make([]int, size)
			for i, c := 0, code; i < size; i, c = i+1, c/len(alphabet) {
				vals[i] = alphabet[c%len(alphabet)]
			}

			g := columnGrid(t, vals)
			res := tilt(g, North)
			got := column(g)

			want, score := referenceTilt(vals)
			require.Equal(t, want, got, "column %v", vals)
			require.Equal(t, score, res.Score, "score for %v", vals)
			require.Equal(t, !slices.Equal(vals, want), res.Changed, "changed for %v", vals)
		}
	}
}

func TestTiltAllSides(t *testing.T) {
	board := [][]int{
		{2, 2, 0, 0},
		{4, 0, 4, 0},
		{2, 2, 2, 2},
		{0, 0, 0, 2},
	}

	tests := []struct {
		side  Side
		want  [][]int
		score int
	}{
		{West, [][]int{
			{4, 0, 0, 0},
			{8, 0, 0, 0},
			{4, 4, 0, 0},
			{2, 0, 0, 0},
		}, 20},
		{East, [][]int{
			{0, 0, 0, 4},
			{0, 0, 0, 8},
			{0, 0, 4, 4},
			{0, 0, 0, 2},
		}, 20},
		{North, [][]int{
			{2, 4, 4, 4},
			{4, 0, 2, 0},
			{2, 0, 0, 0},
			{0, 0, 0, 0},
		}, 8},
		{South, [][]int{
			{0, 0, 0, 0},
			{2, 0, 0, 0},
			{4, 0, 4, 0},
			{2, 4, 2, 4},
		}, 8},
	}

	for _, tt := range tests {
		t.Run(tt.side.String(), func(t *testing.T) {
			m, err := NewModelFromValues(board, 0, 0)
			require.NoError(t, err)

			assert.True(t, m.Tilt(tt.side))
			assert.Equal(t, tt.want, m.Values())
			assert.Equal(t, tt.score, m.Score())
		})
	}
}

func TestTiltEndToEnd(t *testing.T) {
	m, err := NewModel(4)
	require.NoError(t, err)
	require.NoError(t, m.AddTile(NewTile(2, 0, 0)))
	require.NoError(t, m.AddTile(NewTile(2, 0, 1)))

	require.True(t, m.Tilt(North))

	got, ok := m.Tile(0, 3)
	require.True(t, ok)
	assert.Equal(t, 4, got.Value())
	assert.Equal(t, 4, m.Score())
	assert.Len(t, m.EmptyCells(), 15)
}

func TestTiltKeepsCanonicalCoordinates(t *testing.T) {
	m, err := NewModel(4)
	require.NoError(t, err)
	require.NoError(t, m.AddTile(NewTile(2, 0, 0)))

	steps := []struct {
		side     Side
		col, row int
	}{
		{East, 3, 0},
		{South, 3, 0},
		{West, 0, 0},
		{North, 0, 3},
		{East, 3, 3},
	}
	for _, s := range steps {
		m.Tilt(s.side)
		got, ok := m.Tile(s.col, s.row)
		require.True(t, ok, "after %v expected tile at (%d, %d)\n%s", s.side, s.col, s.row, m)
		assert.Equal(t, NewTile(2, s.col, s.row), got)
	}
}

func TestTiltNoMoveBoardUnchanged(t *testing.T) {
	board := [][]int{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	for _, side := range Sides {
		m, err := NewModelFromValues(board, 0, 0)
		require.NoError(t, err)

		res := tilt(m.grid, side)
		assert.False(t, res.Changed, side.String())
		assert.Zero(t, res.Score)
		assert.Empty(t, res.Moves)
		assert.Equal(t, board, m.Values())

		assert.False(t, m.Tilt(side))
		assert.Equal(t, board, m.Values())
	}
}

func randomModel(t *testing.T, rng *rand.Rand, size int) *Model {
	t.Helper()
	values := make([][]int, size)
	for y := range values {
		values[y] = make([]int, size)
		for x := range values[y] {
			if rng.Intn(3) > 0 {
				values[y][x] = 1 << (1 + rng.Intn(4))
			}
		}
	}
	m, err := NewModelFromValues(values, 0, 0)
	require.NoError(t, err)
	return m
}

func TestTiltProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i, iEnd := 0, 300; i < iEnd; i++ {
		size := 3 + i%3
		for _, side := range Sides {
			m := randomModel(t, rng, size)
			before := m.grid.Count()
			beforeValues := m.Values()

			res := tilt(m.grid, side)
			after := m.grid.Count()

			// conservation
			require.LessOrEqual(t, after, before)
			require.Equal(t, before-res.Merges, after)

			// each destination takes at most one merge
			merged := make(map[Cell]int)
			for _, mv := range res.Moves {
				if mv.Merged {
					merged[mv.To]++
					got, ok := m.grid.Tile(mv.To.Col, mv.To.Row)
					require.True(t, ok)
					require.Equal(t, 2*mv.Value, got.Value())
				}
			}
			for cell, n := range merged {
				require.Equal(t, 1, n, "cell %v merged %d times", cell, n)
			}
			require.Len(t, merged, res.Merges)

			// changed agrees with a before/after comparison
			require.Equal(t, !slices.EqualFunc(beforeValues, m.Values(), slices.Equal[[]int]), res.Changed)

			// total value is conserved
			require.Equal(t, sum(beforeValues), sum(m.Values()))
		}
	}
}

func sum(values [][]int) int {
	total := 0
	for _, row := range values {
		for _, v := range row {
			total += v
		}
	}
	return total
}
