package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt2048/internal/games/t2048"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List board variants",
	Long:  `Shows every registered board variant with its size and winning tile.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		printVariants(cmd.OutOrStdout(), appCfg.Rules().BoardSize, appCfg.Rules().MaxPiece)
	},
}

// printVariants writes the variant table. Variants without their own size
// use the configured board.
func printVariants(w io.Writer, size, maxPiece int) {
	maxIDLen := len("ID")
	for _, v := range t2048.Variants {
		maxIDLen = max(maxIDLen, len(v.ID))
	}

	fmt.Fprintln(w, "Available boards:")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-*s  %-5s  %-6s  %s\n", maxIDLen, "ID", "Size", "Goal", "Title")
	fmt.Fprintf(w, "  %-*s  %-5s  %-6s  %s\n", maxIDLen, "--", "----", "----", "-----")

	for _, v := range t2048.Variants {
		s, goal := v.Size, v.MaxPiece
		if s == 0 {
			s = size
		}
		if goal == 0 {
			goal = maxPiece
		}
		fmt.Fprintf(w, "  %-*s  %-5s  %-6d  %s\n", maxIDLen, v.ID, fmt.Sprintf("%dx%d", s, s), goal, v.Title)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'tilt2048 play <id>' to play a board.")
}
