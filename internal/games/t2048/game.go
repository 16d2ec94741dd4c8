// Package t2048 implements the 2048 sliding-tile puzzle: the board model
// and tilt rules, plus a platform-facing game session with random spawns.
package t2048

import (
	"github.com/vovakirdan/tilt2048/internal/core"
	"github.com/vovakirdan/tilt2048/internal/registry"
)

// Variant describes one registered board flavour. Zero Size or MaxPiece
// means "take it from the runtime rules".
type Variant struct {
	ID       string
	Title    string
	Size     int
	MaxPiece int
}

// Variants lists the registered board flavours.
var Variants = []Variant{
	{ID: "2048", Title: "2048"},
	{ID: "2048_small", Title: "2048 (3x3)", Size: 3, MaxPiece: 512},
	{ID: "2048_large", Title: "2048 (5x5)", Size: 5, MaxPiece: 4096},
}

func init() {
	for _, v := range Variants {
		v := v
		registry.Register(v.ID, func() registry.Game {
			return NewGame(v)
		})
	}
}

// Game is a playable 2048 session: a Model, a tile spawner and the
// bookkeeping the platform needs.
type Game struct {
	variant Variant
	rules   core.Rules
	model   *Model
	spawner *Spawner
	tick    uint64
	moves   int

	lastMove TiltResult

	// Screen dimensions
	screenW  int
	screenH  int
	tooSmall bool
}

// NewGame creates a session for the given variant. Call Reset before use.
func NewGame(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Model exposes the underlying board model.
func (g *Game) Model() *Model {
	return g.model
}

// LastMove returns the result of the most recent tilt.
func (g *Game) LastMove() TiltResult {
	return g.lastMove
}

// Rules returns the rules the current game was started with.
func (g *Game) Rules() core.Rules {
	return g.rules
}

// Reset starts a new game. The best score carries over from the previous
// game and from cfg.HighScore.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rules = g.resolveRules(cfg.Rules)

	best := cfg.HighScore
	if g.model != nil && g.model.MaxScore() > best {
		best = g.model.MaxScore()
	}

	m, err := NewModelWithMaxPiece(g.rules.BoardSize, g.rules.MaxPiece)
	if err != nil {
		g.rules = core.DefaultRules()
		m, _ = NewModel(g.rules.BoardSize)
	}
	m.raiseMaxScore(best)

	g.model = m
	g.spawner = NewSpawner(cfg.Seed, g.rules.FourProbability)
	g.tick = 0
	g.moves = 0
	g.lastMove = TiltResult{}
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	for rangeIdx, rangeIdxEnd := 0, g.rules.InitialTiles; rangeIdx < rangeIdxEnd; rangeIdx++ {
		g.spawner.Spawn(g.model)
	}

	g.checkScreenSize()
}

// resolveRules applies the variant overrides and fills unset fields.
func (g *Game) resolveRules(r core.Rules) core.Rules {
	def := core.DefaultRules()
	if g.variant.Size > 0 {
		r.BoardSize = g.variant.Size
	}
	if g.variant.MaxPiece > 0 {
		r.MaxPiece = g.variant.MaxPiece
	}
	if r.BoardSize < 2 {
		r.BoardSize = def.BoardSize
	}
	if r.MaxPiece == 0 {
		r.MaxPiece = def.MaxPiece
	}
	if r.InitialTiles <= 0 {
		r.InitialTiles = def.InitialTiles
	}
	return r
}

// checkScreenSize checks if the screen is large enough for the board.
// A zero-sized screen means a headless session, which never pauses.
func (g *Game) checkScreenSize() {
	if g.screenW == 0 && g.screenH == 0 {
		g.tooSmall = false
		return
	}
	w, h := boardDims(g.rules.BoardSize)
	g.tooSmall = g.screenW < w+2 || g.screenH < h+hudHeight+2
}

// Resize updates the screen dimensions without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// Step applies at most one tilt from the frame's input. A tile is spawned
// only when the tilt changed the board.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.model.GameOver() {
		return core.StepResult{State: g.State()}
	}

	side, ok := sideFor(in)
	if !ok {
		return core.StepResult{State: g.State()}
	}

	g.lastMove = g.model.TiltDetail(side)
	if g.lastMove.Changed {
		g.moves++
		if !g.model.GameOver() {
			g.spawner.Spawn(g.model)
		}
	}

	return core.StepResult{State: g.State(), Changed: g.lastMove.Changed}
}

// sideFor maps directional input to a side. Up wins over the others when
// several are pressed in one frame.
func sideFor(in core.InputFrame) (Side, bool) {
	switch {
	case in.Has(core.ActionUp):
		return North, true
	case in.Has(core.ActionDown):
		return South, true
	case in.Has(core.ActionLeft):
		return West, true
	case in.Has(core.ActionRight):
		return East, true
	}
	return North, false
}

// ActionFor is the inverse of sideFor: the input that tilts toward s.
func ActionFor(s Side) core.Action {
	switch s {
	case North:
		return core.ActionUp
	case East:
		return core.ActionRight
	case South:
		return core.ActionDown
	case West:
		return core.ActionLeft
	}
	return core.ActionNone
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	over := g.model.GameOver()
	return core.GameState{
		Score:    g.model.Score(),
		MaxScore: g.model.MaxScore(),
		GameOver: over,
		Won:      over && g.model.MaxTile() >= g.model.MaxPiece(),
		MaxTile:  g.model.MaxTile(),
		Moves:    g.moves,
	}
}
