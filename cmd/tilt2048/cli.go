package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt2048/internal/games/t2048"
	"github.com/vovakirdan/tilt2048/internal/platform/line"
	"github.com/vovakirdan/tilt2048/internal/registry"
	"github.com/vovakirdan/tilt2048/internal/storage"
)

var flagCLIVariant string

var cliCmd = &cobra.Command{
	Use:   "cli",
	Short: "Play line by line over stdin/stdout",
	Long: `Play without the terminal UI: the board is printed as text and each
input line is one move (w/a/s/d or up/left/down/right, r to restart,
q to quit). Works with pipes, so a move script can be fed on stdin.

Examples:
  tilt2048 cli
  tilt2048 cli --variant 2048_small
  printf 'a\nw\nd\n' | tilt2048 --seed 3 cli`,
	Args: cobra.NoArgs,
	RunE: runCLI,
}

func init() {
	cliCmd.Flags().StringVar(&flagCLIVariant, "variant", "2048", "Board variant to play")
}

func runCLI(cmd *cobra.Command, _ []string) error {
	created, err := registry.Create(flagCLIVariant)
	if err != nil {
		return err
	}
	game, ok := created.(*t2048.Game)
	if !ok {
		return fmt.Errorf("variant %q cannot be played line by line", flagCLIVariant)
	}

	store, err := openStore()
	if err != nil {
		logger.Warn("playing without scores", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	cfg := line.HeadlessConfig(appCfg.Rules(), seed)
	cfg.HighScore = highScore(store, game.ID())
	game.Reset(cfg)
	logger.Info("game started", "game", game.ID(), "seed", seed)

	session := line.NewSession(game, cmd.InOrStdin(), cmd.OutOrStdout(), logger)
	st, err := session.Run(cmd.Context())
	if err != nil {
		return err
	}

	if !st.GameOver || st.Score == 0 || store == nil {
		return nil
	}
	logger.Info("game over", "score", st.Score, "max", st.MaxScore, "tile", st.MaxTile)
	if _, err := store.SaveScore(storage.Result{
		GameID:  game.ID(),
		Score:   st.Score,
		MaxTile: st.MaxTile,
		Moves:   st.Moves,
		Won:     st.Won,
	}); err != nil {
		logger.Warn("cannot save score", "err", err)
	}
	return nil
}
