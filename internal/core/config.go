package core

// Rules holds the board parameters a game session is started with.
type Rules struct {
	BoardSize       int     // Cells per side
	MaxPiece        int     // Tile value that ends the game
	InitialTiles    int     // Tiles spawned on reset
	FourProbability float64 // Chance a spawned tile is a 4
}

// DefaultRules returns the classic 4x4 rules.
func DefaultRules() Rules {
	return Rules{
		BoardSize:       4,
		MaxPiece:        2048,
		InitialTiles:    2,
		FourProbability: 0.10,
	}
}

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Simulation ticks per second
	Seed      int64 // RNG seed for deterministic gameplay
	Rules     Rules // Board parameters
	HighScore int   // Best stored score, seeds the game's max score
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
		Rules:    DefaultRules(),
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	MaxScore int  // Best score including earlier games
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended by reaching the max piece
	MaxTile  int  // Largest tile on the board
	Moves    int  // Tilts that changed the board
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State   GameState
	Changed bool // Whether the board changed this tick
}
