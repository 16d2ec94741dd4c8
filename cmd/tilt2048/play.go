package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilt2048/internal/core"
	"github.com/vovakirdan/tilt2048/internal/platform/tui"
	"github.com/vovakirdan/tilt2048/internal/registry"
	"github.com/vovakirdan/tilt2048/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal UI",
	Long: `Start a game in the terminal UI. Without a variant a menu lets you
pick a board or browse high scores; after a game you return to the menu.

Controls:
  Arrows/WASD/hjkl  - Tilt the board
  R                 - New game
  Ctrl+S            - Save a text screenshot
  ?                 - Toggle full help
  Q/Esc/Ctrl+C      - Quit

Log output goes to ~/.tilt2048/tilt2048.log while the UI is running.

Examples:
  tilt2048 play
  tilt2048 play 2048_large
  tilt2048 --config ./my-board.yaml play 2048`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	if len(args) == 1 && !registry.Exists(args[0]) {
		return fmt.Errorf("unknown variant %q; run 'tilt2048 list' to see available boards", args[0])
	}

	if closeLog := redirectLog(); closeLog != nil {
		defer closeLog()
	}

	store, err := openStore()
	if err != nil {
		logger.Warn("playing without scores", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	cfg := runtimeConfig()

	if len(args) == 1 {
		return playGame(args[0], store, cfg)
	}

	for {
		res, err := tui.RunMenu(store, cfg)
		if err != nil {
			return err
		}
		cfg = res.Config

		switch {
		case res.Quit:
			return nil
		case res.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, "")
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
		default:
			if err := playGame(res.GameID, store, cfg); err != nil {
				return err
			}
		}
	}
}

// playGame runs one variant until the player quits.
func playGame(id string, store *storage.Store, cfg core.RuntimeConfig) error {
	game, err := registry.Create(id)
	if err != nil {
		return err
	}
	cfg.HighScore = highScore(store, id)

	if err := tui.Run(game, store, cfg, logger); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

// runtimeConfig builds the TUI config from the terminal size, flags and
// the loaded board config.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = appCfg.Display.TickRate
	cfg.Seed = flagSeed
	cfg.Rules = appCfg.Rules()
	return cfg
}

// redirectLog points the logger at a file so log lines do not tear the
// alternate screen. It returns a func that closes the file, or nil when
// the file cannot be opened and logging is switched off instead.
func redirectLog() func() {
	home, err := os.UserHomeDir()
	if err == nil {
		dir := filepath.Join(home, ".tilt2048")
		if err = os.MkdirAll(dir, 0o755); err == nil {
			var f *os.File
			f, err = os.OpenFile(filepath.Join(dir, "tilt2048.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
			if err == nil {
				logger.SetOutput(f)
				return func() { f.Close() }
			}
		}
	}
	logger.SetOutput(io.Discard)
	return nil
}
