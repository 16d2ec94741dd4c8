package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateGameOver    GameStateType = "game_over"
	StateWin         GameStateType = "win"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Variant  string
	Size     int
	MaxPiece int
	Score    int
	MaxScore int
	Board    [][]int // top row first, 0 for empty
	MaxTile  int
	State    GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	st := g.State()
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case st.Won:
		state = StateWin
	case st.GameOver:
		state = StateGameOver
	}

	return Snapshot{
		Tick:     g.tick,
		Variant:  g.variant.ID,
		Size:     g.model.Size(),
		MaxPiece: g.model.MaxPiece(),
		Score:    st.Score,
		MaxScore: st.MaxScore,
		Board:    g.model.Values(),
		MaxTile:  g.model.MaxTile(),
		State:    state,
	}
}
