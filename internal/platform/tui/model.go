package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilt2048/internal/core"
	"github.com/vovakirdan/tilt2048/internal/registry"
	"github.com/vovakirdan/tilt2048/internal/storage"
)

// helpHeight is the number of rows reserved below the game screen.
const helpHeight = 1

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// resizer is implemented by games that can adapt to a new screen size
// without restarting.
type resizer interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       GameKeyMap
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	quitting   bool
	scoreSaved bool // Whether score has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game and starts it.
// store and logger may be nil.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.Default()
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpHeight, 0)),
		store:      store,
		logger:     logger,
		keys:       DefaultGameKeyMap(),
		help:       h,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
	}
	m.start()
	return m
}

// start resets the game with the current config.
func (m *Model) start() {
	cfg := m.config
	cfg.ScreenH = m.screen.Height()
	m.game.Reset(cfg)
	m.gameState = m.game.State()
	m.scoreSaved = false
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed, "best", m.gameState.MaxScore)
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.inputFrame) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpHeight, 0))
	m.help.Width = msg.Width

	if r, ok := m.game.(resizer); ok {
		r.Resize(m.screen.Width(), m.screen.Height())
	} else if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) {
		if !m.gameState.GameOver {
			m.logger.Debug("game abandoned", "score", m.gameState.Score)
		}
		m.config.Seed = time.Now().UnixNano()
		m.start()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if result.Changed {
		m.logger.Debug("tilt", "score", result.State.Score, "moves", result.State.Moves)
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.recordScore()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// recordScore saves the finished game once. Saving is best-effort: a
// storage failure is logged and the game carries on.
func (m *Model) recordScore() {
	m.scoreSaved = true
	st := m.gameState
	m.logger.Info("game over", "score", st.Score, "max", st.MaxScore, "tile", st.MaxTile, "won", st.Won)

	if m.store == nil || st.Score == 0 {
		return
	}
	_, err := m.store.SaveScore(storage.Result{
		GameID:  m.game.ID(),
		Score:   st.Score,
		MaxTile: st.MaxTile,
		Moves:   st.Moves,
		Won:     st.Won,
	})
	if err != nil {
		m.logger.Warn("cannot save score", "err", err)
		return
	}
	m.logger.Info("score saved", "game", m.game.ID(), "score", st.Score)
}

// saveScreenshot writes the current screen as plain text under
// ~/.tilt2048/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot find home directory: %w", err)
	}
	dir := filepath.Join(home, ".tilt2048", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create %s: %w", dir, err)
	}

	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// State returns the game state as of the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
