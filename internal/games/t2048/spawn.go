package t2048

import "math/rand"

// DefaultFourProbability is the chance that a spawned tile is a 4 instead of a 2.
const DefaultFourProbability = 0.10

// Spawner drops new tiles onto random empty cells. It sits outside the
// move rules: a Model never spawns on its own.
type Spawner struct {
	rng      *rand.Rand
	fourProb float64
}

// NewSpawner returns a spawner seeded with seed. fourProb is clamped to [0, 1].
func NewSpawner(seed int64, fourProb float64) *Spawner {
	switch {
	case fourProb < 0:
		fourProb = 0
	case fourProb > 1:
		fourProb = 1
	}
	return &Spawner{
		rng:      rand.New(rand.NewSource(seed)),
		fourProb: fourProb,
	}
}

// Spawn adds a 2 (or, with the configured probability, a 4) to a random
// empty cell of m. It returns false when the board is full.
func (s *Spawner) Spawn(m *Model) (Tile, bool) {
	empty := m.EmptyCells()
	if len(empty) == 0 {
		return Tile{}, false
	}

	cell := empty[s.rng.Intn(len(empty))]
	value := 2
	if s.rng.Float64() < s.fourProb {
		value = 4
	}

	t := NewTile(value, cell.Col, cell.Row)
	if err := m.AddTile(t); err != nil {
		// the cell came from EmptyCells, so this cannot happen
		panic(err)
	}
	return t, true
}
