// tilt2048 plays the 2048 sliding-tile puzzle in the terminal.
//
// Usage:
//
//	tilt2048 list              - List board variants
//	tilt2048 play [variant]    - Play in the TUI (menu when no variant is given)
//	tilt2048 cli               - Play line by line over stdin/stdout
//	tilt2048 replay <moves>    - Apply a move string headlessly and print the board
//	tilt2048 scores [variant]  - Show high scores
//
// Global flags:
//
//	--seed <value>      - Set RNG seed for reproducible games
//	--db <path>         - Set database path (default: ~/.tilt2048/scores.db)
//	--config <path>     - Use a custom board config YAML
//	--preset <name>     - Board preset: small, classic, large, huge
//	--log-level <lvl>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt2048/internal/config"
	"github.com/vovakirdan/tilt2048/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/tilt2048/internal/games/t2048"
)

var (
	// Global flags
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagPreset   string
	flagLogLevel string

	// Set up by the root command before any subcommand runs
	logger *log.Logger
	appCfg config.T2048Config
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tilt2048",
	Short: "tilt2048 - the 2048 sliding-tile puzzle in your terminal",
	Long: `tilt2048 is a terminal version of 2048. Tilt the board to slide every
tile toward one edge; equal tiles that meet merge into their sum.

Available commands:
  list     - Show board variants
  play     - Play in the terminal UI
  cli      - Play line by line
  replay   - Apply moves headlessly and print the board
  scores   - View high scores

Examples:
  tilt2048 play
  tilt2048 play 2048_small
  tilt2048 --preset huge play
  tilt2048 --seed 7 replay "l u r d"
  tilt2048 scores 2048`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Board preset: small, classic, large, huge")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(cliCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setup creates the logger and loads the board config.
func setup(cmd *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "tilt2048",
		Level:           level,
	})

	cfg, err := config.LoadT2048(flagConfig)
	if err != nil {
		return err
	}
	if err := config.ApplyPreset(&cfg, flagPreset); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	appCfg = cfg

	logger.Debug("config loaded", "size", cfg.Board.Size, "max_piece", cfg.Board.MaxPiece, "command", cmd.Name())
	return nil
}

// openStore opens the scores database. Callers that can play without
// scores treat an error as a warning.
func openStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("could not open scores database: %w", err)
	}
	return store, nil
}

// highScore returns the stored best for gameID, or 0 without a store.
func highScore(store *storage.Store, gameID string) int {
	if store == nil {
		return 0
	}
	best, err := store.HighScore(gameID)
	if err != nil {
		logger.Warn("cannot read high score", "game", gameID, "err", err)
		return 0
	}
	return best
}
