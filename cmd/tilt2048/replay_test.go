package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tilt2048/internal/core"
	"github.com/vovakirdan/tilt2048/internal/games/t2048"
	"github.com/vovakirdan/tilt2048/internal/storage"
)

func TestReplayDeterministic(t *testing.T) {
	moves, err := t2048.ParseMoves("u l d r u l d r")
	require.NoError(t, err)

	run := func() string {
		var out bytes.Buffer
		require.NoError(t, replay(&out, "2048", 42, core.DefaultRules(), moves, true))
		return out.String()
	}

	first := run()
	assert.Equal(t, first, run())
	assert.Contains(t, first, "#1 north")
	assert.Contains(t, first, "#8 east")
	assert.Contains(t, first, "(game is not over)")
}

func TestReplayVariant(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, replay(&out, "2048_small", 1, core.DefaultRules(), nil, false))

	// header line, three board rows, score line
	assert.Contains(t, out.String(), "\n|")
	assert.Equal(t, 3, bytes.Count(out.Bytes(), []byte("|\n")))
}

func TestReplayUnknownVariant(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, replay(&out, "tetris", 1, core.DefaultRules(), nil, false))
}

func TestPrintVariants(t *testing.T) {
	var out bytes.Buffer
	printVariants(&out, 6, 8192)

	assert.Contains(t, out.String(), "2048_small")
	assert.Contains(t, out.String(), "6x6")
	assert.Contains(t, out.String(), "3x3")
	assert.Contains(t, out.String(), "8192")
}

func TestPrintScores(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer store.Close()

	var out bytes.Buffer
	require.NoError(t, printScores(&out, store, "2048", 10))
	assert.Contains(t, out.String(), "No scores recorded yet.")

	_, err = store.SaveScore(storage.Result{GameID: "2048", Score: 2500, MaxTile: 2048, Moves: 950, Won: true})
	require.NoError(t, err)
	_, err = store.SaveScore(storage.Result{GameID: "2048", Score: 700, MaxTile: 128, Moves: 210})
	require.NoError(t, err)

	out.Reset()
	require.NoError(t, printScores(&out, store, "2048", 10))
	assert.Contains(t, out.String(), "2048*")
	assert.Contains(t, out.String(), "Games: 2  Wins: 1  Best: 2500")
}
