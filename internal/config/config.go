// Package config provides YAML-based board configuration loading and
// size presets for tilt2048.
package config

import (
	"fmt"
	"math/bits"

	"github.com/vovakirdan/tilt2048/internal/core"
)

// T2048Config contains all configuration for a 2048 game.
type T2048Config struct {
	Board   BoardConfig   `yaml:"board"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Display DisplayConfig `yaml:"display"`
}

// BoardConfig defines the board geometry and the winning tile.
type BoardConfig struct {
	Size     int `yaml:"size"`
	MaxPiece int `yaml:"max_piece"`
}

// SpawnConfig defines how new tiles appear.
type SpawnConfig struct {
	InitialTiles    int     `yaml:"initial_tiles"`
	FourProbability float64 `yaml:"four_probability"`
}

// DisplayConfig defines platform display parameters.
type DisplayConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// Validate checks the configuration for values a game cannot start with.
func (c T2048Config) Validate() error {
	if c.Board.Size < 2 {
		return fmt.Errorf("board.size must be at least 2, got %d", c.Board.Size)
	}
	if c.Board.MaxPiece < 4 || bits.OnesCount(uint(c.Board.MaxPiece)) != 1 {
		return fmt.Errorf("board.max_piece must be a power of two >= 4, got %d", c.Board.MaxPiece)
	}
	if c.Spawn.InitialTiles < 0 || c.Spawn.InitialTiles > c.Board.Size*c.Board.Size {
		return fmt.Errorf("spawn.initial_tiles must be in [0, %d], got %d", c.Board.Size*c.Board.Size, c.Spawn.InitialTiles)
	}
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		return fmt.Errorf("spawn.four_probability must be in [0, 1], got %g", c.Spawn.FourProbability)
	}
	if c.Display.TickRate < 0 {
		return fmt.Errorf("display.tick_rate must not be negative, got %d", c.Display.TickRate)
	}
	return nil
}

// Rules converts the board and spawn sections to game rules.
func (c T2048Config) Rules() core.Rules {
	return core.Rules{
		BoardSize:       c.Board.Size,
		MaxPiece:        c.Board.MaxPiece,
		InitialTiles:    c.Spawn.InitialTiles,
		FourProbability: c.Spawn.FourProbability,
	}
}
