package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt2048/internal/platform/tui"
	"github.com/vovakirdan/tilt2048/internal/registry"
	"github.com/vovakirdan/tilt2048/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresTUI   bool
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show high scores",
	Long: `Display the top scores for a board variant (default: 2048).

Examples:
  tilt2048 scores
  tilt2048 scores 2048_small --limit 20
  tilt2048 scores --tui
  tilt2048 scores 2048_large --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse all variants in an interactive table")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete all scores of the variant")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := "2048"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q; run 'tilt2048 list' to see available boards", gameID)
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		if err := store.ClearScores(gameID); err != nil {
			return err
		}
		logger.Info("scores cleared", "game", gameID)
		fmt.Fprintf(cmd.OutOrStdout(), "Scores for %s cleared.\n", gameID)
		return nil
	case flagScoresTUI:
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH, gameID)
		return err
	}

	return printScores(cmd.OutOrStdout(), store, gameID, flagScoresLimit)
}

// printScores writes the top scores and aggregate stats of one variant.
func printScores(w io.Writer, store *storage.Store, gameID string, limit int) error {
	scores, err := store.TopScores(gameID, limit)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "High Scores - %s\n", gameID)
	fmt.Fprintln(w)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'tilt2048 play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "Tile", "Moves", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "----", "-----", "----")
	for i, e := range scores {
		tile := fmt.Sprint(e.MaxTile)
		if e.Won {
			tile += "*"
		}
		fmt.Fprintf(w, "  %-4d  %-8d  %-6s  %-6d  %s\n", i+1, e.Score, tile, e.Moves, e.CreatedAt.Local().Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Games: %d  Wins: %d  Best: %d  Best tile: %d  Average: %.0f\n",
		stats.GamesCount, stats.Wins, stats.HighScore, stats.BestTile, stats.AvgScore)
	return nil
}
