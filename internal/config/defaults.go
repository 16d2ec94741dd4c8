package config

import (
	_ "embed"
	"fmt"
	"sort"
)

//go:embed defaults/t2048.yaml
var defaultT2048YAML []byte

// DefaultT2048Config returns the classic 4x4 configuration.
func DefaultT2048Config() T2048Config {
	return T2048Config{
		Board: BoardConfig{
			Size:     4,
			MaxPiece: 2048,
		},
		Spawn: SpawnConfig{
			InitialTiles:    2,
			FourProbability: 0.1,
		},
		Display: DisplayConfig{
			TickRate: 30,
		},
	}
}

// Preset is a named board geometry.
type Preset struct {
	Name     string
	Size     int
	MaxPiece int
}

var presets = map[string]Preset{
	"small":   {Name: "small", Size: 3, MaxPiece: 512},
	"classic": {Name: "classic", Size: 4, MaxPiece: 2048},
	"large":   {Name: "large", Size: 5, MaxPiece: 4096},
	"huge":    {Name: "huge", Size: 6, MaxPiece: 8192},
}

// PresetNames returns the preset names in alphabetical order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset overrides the board section with the named preset.
// An empty name leaves cfg untouched.
func ApplyPreset(cfg *T2048Config, name string) error {
	if name == "" {
		return nil
	}
	p, ok := presets[name]
	if !ok {
		return fmt.Errorf("unknown preset %q (available: %v)", name, PresetNames())
	}
	cfg.Board.Size = p.Size
	cfg.Board.MaxPiece = p.MaxPiece
	return nil
}
