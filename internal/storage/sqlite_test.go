package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)

	_, err = os.Stat(dbPath)
	assert.NoError(t, err, "database file should be created with its parents")
	assert.NoError(t, store.Close())
}

func TestStoreReopenKeepsScores(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	require.NoError(t, err)
	_, err = store.SaveScore(Result{GameID: "2048", Score: 1234})
	require.NoError(t, err)
	require.NoError(t, store.Close())

	store, err = Open(dbPath)
	require.NoError(t, err)
	defer store.Close()

	high, err := store.HighScore("2048")
	require.NoError(t, err)
	assert.Equal(t, 1234, high)
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	for _, r := range []Result{
		{GameID: "2048", Score: 100, MaxTile: 64, Moves: 40},
		{GameID: "2048", Score: 50, MaxTile: 32, Moves: 20},
		{GameID: "2048", Score: 2200, MaxTile: 2048, Moves: 900, Won: true},
		{GameID: "2048_small", Score: 500, MaxTile: 128, Moves: 60},
	} {
		id, err := store.SaveScore(r)
		require.NoError(t, err)
		assert.Positive(t, id)
	}

	scores, err := store.TopScores("2048", 10)
	require.NoError(t, err)
	require.Len(t, scores, 3)

	assert.Equal(t, []int{2200, 100, 50}, []int{scores[0].Score, scores[1].Score, scores[2].Score})
	assert.True(t, scores[0].Won)
	assert.Equal(t, 2048, scores[0].MaxTile)
	assert.Equal(t, 900, scores[0].Moves)
	assert.False(t, scores[1].Won)
	assert.WithinDuration(t, time.Now().UTC(), scores[0].CreatedAt, time.Hour)

	small, err := store.TopScores("2048_small", 10)
	require.NoError(t, err)
	require.Len(t, small, 1)
	assert.Equal(t, "2048_small", small[0].GameID)
}

func TestStoreSaveRequiresGameID(t *testing.T) {
	store := openTestStore(t)
	_, err := store.SaveScore(Result{Score: 10})
	assert.Error(t, err)
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)

	for i, iEnd := 0, 15; i < iEnd; i++ {
		_, err := store.SaveScore(Result{GameID: "2048", Score: i * 10})
		require.NoError(t, err)
	}

	scores, err := store.TopScores("2048", 5)
	require.NoError(t, err)
	assert.Len(t, scores, 5)
	assert.Equal(t, 140, scores[0].Score)

	scores, err = store.TopScores("2048", 0)
	require.NoError(t, err)
	assert.Len(t, scores, 10, "non-positive limit falls back to 10")
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("2048")
	require.NoError(t, err)
	assert.Zero(t, high)

	for _, s := range []int{100, 300, 200} {
		_, err := store.SaveScore(Result{GameID: "2048", Score: s})
		require.NoError(t, err)
	}

	high, err = store.HighScore("2048")
	require.NoError(t, err)
	assert.Equal(t, 300, high)
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore(Result{GameID: "2048", Score: 100})
	require.NoError(t, err)
	_, err = store.SaveScore(Result{GameID: "2048_large", Score: 200})
	require.NoError(t, err)

	require.NoError(t, store.ClearScores("2048"))

	scores, err := store.TopScores("2048", 10)
	require.NoError(t, err)
	assert.Empty(t, scores)

	scores, err = store.TopScores("2048_large", 10)
	require.NoError(t, err)
	assert.Len(t, scores, 1)
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.GetGameStats("2048")
	require.NoError(t, err)
	assert.Zero(t, stats.GamesCount)
	assert.True(t, stats.LastPlayed.IsZero())

	for _, r := range []Result{
		{GameID: "2048", Score: 100, MaxTile: 64},
		{GameID: "2048", Score: 300, MaxTile: 2048, Won: true},
	} {
		_, err := store.SaveScore(r)
		require.NoError(t, err)
	}

	stats, err = store.GetGameStats("2048")
	require.NoError(t, err)
	assert.Equal(t, "2048", stats.GameID)
	assert.Equal(t, 2, stats.GamesCount)
	assert.Equal(t, 1, stats.Wins)
	assert.Equal(t, 300, stats.HighScore)
	assert.Equal(t, 2048, stats.BestTile)
	assert.InDelta(t, 200.0, stats.AvgScore, 0.001)
	assert.False(t, stats.LastPlayed.IsZero())
}

func TestExpandHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := expandHome("~/.tilt2048/scores.db")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".tilt2048", "scores.db"), got)

	got, err = expandHome("/tmp/x.db")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.db", got)
}

func TestParseTime(t *testing.T) {
	want := time.Date(2024, 5, 6, 7, 8, 9, 0, time.UTC)
	assert.Equal(t, want, parseTime("2024-05-06 07:08:09"))
	assert.Equal(t, want, parseTime(want))
	assert.True(t, parseTime(nil).IsZero())
	assert.True(t, parseTime("garbage").IsZero())
}
