package t2048

import (
	"fmt"
	"strings"
)

// DefaultMaxPiece is the tile value that ends a classic game.
const DefaultMaxPiece = 2048

// Model is the state of one 2048 game: the grid, the score, the best score
// seen so far and whether the game has ended.
//
// A Model is not safe for concurrent use; callers serialize moves.
type Model struct {
	grid     *Grid
	score    int
	maxScore int
	gameOver bool
	maxPiece int
}

// NewModel returns an empty game on a size x size board that ends when a
// DefaultMaxPiece tile appears.
func NewModel(size int) (*Model, error) {
	return NewModelWithMaxPiece(size, DefaultMaxPiece)
}

// NewModelWithMaxPiece is NewModel with a custom winning tile value.
func NewModelWithMaxPiece(size, maxPiece int) (*Model, error) {
	if !validValue(maxPiece) || maxPiece < 4 {
		return nil, fmt.Errorf("%w: max piece %d", ErrInvalidValue, maxPiece)
	}
	g, err := NewGrid(size)
	if err != nil {
		return nil, err
	}
	return &Model{grid: g, maxPiece: maxPiece}, nil
}

// NewModelFromValues builds a game from a square value matrix written top
// row first, as boards are usually drawn; 0 marks an empty cell.
func NewModelFromValues(values [][]int, score, maxScore int) (*Model, error) {
	size := len(values)
	m, err := NewModel(size)
	if err != nil {
		return nil, err
	}
	for y, line := range values {
		if len(line) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidSize, y, len(line), size)
		}
		row := size - 1 - y
		for col, v := range line {
			if v == 0 {
				continue
			}
			if err := m.grid.AddTile(NewTile(v, col, row)); err != nil {
				return nil, err
			}
		}
	}
	m.score = score
	m.maxScore = maxScore
	m.checkGameOver()
	return m, nil
}

// Tile returns the tile at canonical (col, row).
func (m *Model) Tile(col, row int) (Tile, bool) {
	return m.grid.Tile(col, row)
}

// Size returns the number of cells on one side of the board.
func (m *Model) Size() int {
	return m.grid.Size()
}

// Score returns the current score.
func (m *Model) Score() int {
	return m.score
}

// MaxScore returns the best score, updated when a game is seen to be over.
func (m *Model) MaxScore() int {
	return m.maxScore
}

// MaxPiece returns the tile value that ends the game.
func (m *Model) MaxPiece() int {
	return m.maxPiece
}

// EmptyCells returns the empty cells of the board.
func (m *Model) EmptyCells() []Cell {
	return m.grid.EmptyCells()
}

// Values returns the board as a top-row-first value matrix.
func (m *Model) Values() [][]int {
	return m.grid.Values()
}

// MaxTile returns the largest tile value on the board, or 0 when empty.
func (m *Model) MaxTile() int {
	best := 0
	for _, t := range m.grid.Tiles() {
		if t.value > best {
			best = t.value
		}
	}
	return best
}

// GameOver reports whether the game has ended: a max piece tile exists or
// no move is possible. Once over, the best score is raised to the current
// score if that is higher.
func (m *Model) GameOver() bool {
	m.checkGameOver()
	if m.gameOver && m.score > m.maxScore {
		m.maxScore = m.score
	}
	return m.gameOver
}

// Clear empties the board and resets the score. The best score is kept.
func (m *Model) Clear() {
	m.score = 0
	m.gameOver = false
	m.grid.Clear()
}

// AddTile places t on the board. The cell must be empty.
func (m *Model) AddTile(t Tile) error {
	if err := m.grid.AddTile(t); err != nil {
		return err
	}
	m.checkGameOver()
	return nil
}

// Tilt slides all tiles toward side and reports whether the board changed.
// An ended game does not move.
func (m *Model) Tilt(side Side) bool {
	return m.TiltDetail(side).Changed
}

// TiltDetail is Tilt returning the full result of the move, including the
// individual tile moves.
func (m *Model) TiltDetail(side Side) TiltResult {
	if m.gameOver || !side.Valid() {
		return TiltResult{}
	}
	res := tilt(m.grid, side)
	m.score += res.Score
	m.checkGameOver()
	return res
}

// checkGameOver moves the game to the ended state when warranted. The
// transition is one-way; only Clear starts a new game.
func (m *Model) checkGameOver() {
	if m.gameOver {
		return
	}
	m.gameOver = maxTileExists(m.grid, m.maxPiece) || !atLeastOneMoveExists(m.grid)
}

// raiseMaxScore lifts the best score to at least v.
func (m *Model) raiseMaxScore(v int) {
	if v > m.maxScore {
		m.maxScore = v
	}
}

func maxTileExists(g *Grid, maxPiece int) bool {
	for _, t := range g.Tiles() {
		if t.value == maxPiece {
			return true
		}
	}
	return false
}

// atLeastOneMoveExists reports whether the board has an empty cell or two
// orthogonally adjacent tiles of equal value.
func atLeastOneMoveExists(g *Grid) bool {
	if g.Count() < g.size*g.size {
		return true
	}
	for row, rowEnd := 0, g.size; row < rowEnd; row++ {
		for col, colEnd := 0, g.size; col < colEnd; col++ {
			if adjacentEqualExists(g, col, row) {
				return true
			}
		}
	}
	return false
}

var neighbours = [4]Cell{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

func adjacentEqualExists(g *Grid, col, row int) bool {
	t, ok := g.Tile(col, row)
	if !ok {
		return false
	}
	for _, d := range neighbours {
		c, r := col+d.Col, row+d.Row
		if !g.InBounds(c, r) {
			continue
		}
		if n, ok := g.Tile(c, r); ok && n.value == t.value {
			return true
		}
	}
	return false
}

// String renders the board top row first followed by the score line.
// It is meant for debugging and test fixtures, not as a stable format.
func (m *Model) String() string {
	var sb strings.Builder
	sb.WriteString("\n[\n")
	for row := m.Size() - 1; row >= 0; row-- {
		for col, colEnd := 0, m.Size(); col < colEnd; col++ {
			if t, ok := m.Tile(col, row); ok {
				fmt.Fprintf(&sb, "|%4d", t.value)
			} else {
				sb.WriteString("|    ")
			}
		}
		sb.WriteString("|\n")
	}
	over := "not over"
	if m.GameOver() {
		over = "over"
	}
	fmt.Fprintf(&sb, "] %d (max: %d) (game is %s) \n", m.score, m.maxScore, over)
	return sb.String()
}

// Equal reports whether two games render identically: same cells, score,
// best score and game-over status.
func (m *Model) Equal(other *Model) bool {
	if m == nil || other == nil {
		return m == other
	}
	return m.String() == other.String()
}
