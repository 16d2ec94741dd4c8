package line

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tilt2048/internal/core"
	"github.com/vovakirdan/tilt2048/internal/games/t2048"
)

func newGame(t *testing.T, seed int64) *t2048.Game {
	t.Helper()
	g := t2048.NewGame(t2048.Variants[0])
	g.Reset(HeadlessConfig(core.DefaultRules(), seed))
	return g
}

func TestParseAction(t *testing.T) {
	tests := []struct {
		in   string
		want core.Action
		ok   bool
	}{
		{"w\n", core.ActionUp, true},
		{"  UP ", core.ActionUp, true},
		{"s", core.ActionDown, true},
		{"a", core.ActionLeft, true},
		{"Right", core.ActionRight, true},
		{"r", core.ActionRestart, true},
		{"q", core.ActionQuit, true},
		{"exit", core.ActionQuit, true},
		{"x", core.ActionNone, false},
		{"", core.ActionNone, false},
	}
	for _, tt := range tests {
		got, ok := ParseAction(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestFormatBoard(t *testing.T) {
	got := FormatBoard([][]int{
		{2, 0, 0},
		{0, 128, 0},
		{0, 0, 4},
	})
	want := "  2   .   .\n" +
		"  . 128   .\n" +
		"  .   .   4\n"
	assert.Equal(t, want, got)

	assert.Equal(t, ". .\n. .\n", FormatBoard([][]int{{0, 0}, {0, 0}}))
}

func TestSessionQuit(t *testing.T) {
	var out bytes.Buffer
	s := NewSession(newGame(t, 1), strings.NewReader("q\n"), &out, nil)

	st, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.False(t, st.GameOver)
	assert.Contains(t, out.String(), "=== 2048 ===")
	assert.Contains(t, out.String(), "Quit.")
}

func TestSessionEOF(t *testing.T) {
	var out bytes.Buffer
	g := newGame(t, 1)
	s := NewSession(g, strings.NewReader("a\nd\nw"), &out, nil)

	st, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), g.Snapshot().Tick, "the last line is played even without a newline")
	assert.Equal(t, g.State(), st)
}

func TestSessionInvalidInput(t *testing.T) {
	var out bytes.Buffer
	g := newGame(t, 1)
	s := NewSession(g, strings.NewReader("x\nq\n"), &out, nil)

	_, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Invalid input")
	assert.Zero(t, g.Snapshot().Tick)
}

func TestSessionDeterministic(t *testing.T) {
	moves := strings.Repeat("a\nw\nd\ns\n", 20) + "q\n"

	play := func() string {
		var out bytes.Buffer
		s := NewSession(newGame(t, 99), strings.NewReader(moves), &out, nil)
		_, err := s.Run(context.Background())
		require.NoError(t, err)
		return out.String()
	}
	assert.Equal(t, play(), play())
}

func TestSessionRestart(t *testing.T) {
	var out bytes.Buffer
	g := newGame(t, 5)
	s := NewSession(g, strings.NewReader("a\nd\nr\nq\n"), &out, nil)

	_, err := s.Run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, g.State().Moves)
	assert.Zero(t, g.State().Score)
	assert.Len(t, g.Model().EmptyCells(), 14)
}

func TestSessionCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	s := NewSession(newGame(t, 1), strings.NewReader("a\n"), &out, nil)
	_, err := s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
