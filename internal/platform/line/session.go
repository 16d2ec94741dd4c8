// Package line runs a game over plain text streams: one command per line in,
// the board as text out. It backs the cli subcommand and scripted play.
package line

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilt2048/internal/core"
	"github.com/vovakirdan/tilt2048/internal/games/t2048"
)

// Session plays one game reading commands from in and writing to out.
type Session struct {
	game   *t2048.Game
	in     *bufio.Reader
	out    io.Writer
	logger *log.Logger
}

// NewSession wraps a game that has already been Reset. logger may be nil.
func NewSession(game *t2048.Game, in io.Reader, out io.Writer, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		game:   game,
		in:     bufio.NewReader(in),
		out:    out,
		logger: logger,
	}
}

// Run plays until the game ends, the player quits, input runs out or ctx
// is cancelled. It returns the final game state.
func (s *Session) Run(ctx context.Context) (core.GameState, error) {
	fmt.Fprintf(s.out, "=== %s ===\n", s.game.Title())
	fmt.Fprintln(s.out, "Controls: w=Up, s=Down, a=Left, d=Right, r=Restart, q=Quit")
	fmt.Fprintln(s.out)

	for {
		if err := ctx.Err(); err != nil {
			return s.game.State(), err
		}

		st := s.game.State()
		fmt.Fprint(s.out, FormatBoard(s.game.Model().Values()))
		fmt.Fprintf(s.out, "Score: %d  Best: %d\n", st.Score, st.MaxScore)

		if st.GameOver {
			if st.Won {
				fmt.Fprintf(s.out, "%d reached!\n", s.game.Model().MaxPiece())
			} else {
				fmt.Fprintln(s.out, "Game Over!")
			}
			return st, nil
		}

		fmt.Fprint(s.out, "Move: ")
		input, err := s.in.ReadString('\n')
		if err != nil && (input == "" || !errors.Is(err, io.EOF)) {
			fmt.Fprintln(s.out)
			if errors.Is(err, io.EOF) {
				return st, nil
			}
			return st, fmt.Errorf("read move: %w", err)
		}

		action, ok := ParseAction(input)
		switch {
		case !ok:
			fmt.Fprintln(s.out, "Invalid input. Use w/a/s/d, r to restart or q to quit.")
			continue
		case action == core.ActionQuit:
			fmt.Fprintln(s.out, "Quit.")
			return st, nil
		case action == core.ActionRestart:
			s.logger.Debug("restart requested", "score", st.Score)
			s.game.Reset(s.restartConfig())
			fmt.Fprintln(s.out)
			continue
		}

		frame := core.NewInputFrame()
		frame.Set(action)
		if res := s.game.Step(frame); !res.Changed {
			fmt.Fprintln(s.out, "Cannot move in that direction.")
		}
		fmt.Fprintln(s.out)
	}
}

// restartConfig keeps the rules of the running game for the next one.
// The seed is derived from the tick count so scripted sessions replay
// identically.
func (s *Session) restartConfig() core.RuntimeConfig {
	return HeadlessConfig(s.game.Rules(), int64(s.game.Snapshot().Tick)+1)
}

// HeadlessConfig returns a runtime config without a screen, so the game
// never pauses for a small window.
func HeadlessConfig(rules core.Rules, seed int64) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW, cfg.ScreenH = 0, 0
	cfg.Rules = rules
	cfg.Seed = seed
	return cfg
}

// ParseAction maps one line of input to a game action. Both wasd letters and
// direction words are accepted, case-insensitively.
func ParseAction(input string) (core.Action, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "w", "up", "k":
		return core.ActionUp, true
	case "s", "down", "j":
		return core.ActionDown, true
	case "a", "left", "h":
		return core.ActionLeft, true
	case "d", "right", "l":
		return core.ActionRight, true
	case "r", "restart":
		return core.ActionRestart, true
	case "q", "quit", "exit":
		return core.ActionQuit, true
	}
	return core.ActionNone, false
}

// FormatBoard draws a top-row-first value matrix as an aligned text grid,
// with "." for empty cells.
func FormatBoard(values [][]int) string {
	width := 1
	for _, row := range values {
		for _, v := range row {
			width = max(width, len(strconv.Itoa(v)))
		}
	}

	var sb strings.Builder
	for _, row := range values {
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			cell := "."
			if v != 0 {
				cell = strconv.Itoa(v)
			}
			fmt.Fprintf(&sb, "%*s", width, cell)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
