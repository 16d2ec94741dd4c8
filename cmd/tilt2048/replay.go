package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt2048/internal/core"
	"github.com/vovakirdan/tilt2048/internal/games/t2048"
	"github.com/vovakirdan/tilt2048/internal/platform/line"
	"github.com/vovakirdan/tilt2048/internal/registry"
)

var (
	flagReplayVariant string
	flagReplayVerbose bool
)

var replayCmd = &cobra.Command{
	Use:   "replay <moves>",
	Short: "Apply a move string headlessly and print the board",
	Long: `Start a seeded game, apply the given moves and print the final board.
Moves are side letters or words separated by spaces or commas:
n/north/u/up, e/east/r/right, s/south/d/down, w/west/l/left.

The same seed and moves always give the same board, which makes replay
handy for bug reports and test fixtures.

Examples:
  tilt2048 --seed 42 replay "u l d r"
  tilt2048 --seed 42 replay --verbose n,e,s,w
  tilt2048 --seed 1 replay --variant 2048_small "up up left"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		moves, err := t2048.ParseMoves(args[0])
		if err != nil {
			return err
		}
		return replay(cmd.OutOrStdout(), flagReplayVariant, flagSeed, appCfg.Rules(), moves, flagReplayVerbose)
	},
}

func init() {
	replayCmd.Flags().StringVar(&flagReplayVariant, "variant", "2048", "Board variant")
	replayCmd.Flags().BoolVarP(&flagReplayVerbose, "verbose", "v", false, "Print the board after every move")
}

// replay plays moves on a fresh seeded game and writes the result to w.
func replay(w io.Writer, variant string, seed int64, rules core.Rules, moves []t2048.Side, verbose bool) error {
	created, err := registry.Create(variant)
	if err != nil {
		return err
	}
	game, ok := created.(*t2048.Game)
	if !ok {
		return fmt.Errorf("variant %q cannot be replayed", variant)
	}
	game.Reset(line.HeadlessConfig(rules, seed))

	for i, side := range moves {
		frame := core.NewInputFrame()
		frame.Set(t2048.ActionFor(side))
		res := game.Step(frame)

		if verbose {
			fmt.Fprintf(w, "#%d %s changed=%t score=%d\n", i+1, side, res.Changed, res.State.Score)
			fmt.Fprint(w, line.FormatBoard(game.Model().Values()))
		}
		if res.State.GameOver {
			fmt.Fprintf(w, "game over after %d of %d moves\n", i+1, len(moves))
			break
		}
	}

	fmt.Fprint(w, game.Model())
	return nil
}
