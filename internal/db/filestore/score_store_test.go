package filestore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Evasive-6/TriviaSwift/internal/score"
)

func seedScores(t *testing.T, store *ScoreStore, entries ...score.Score) {
	t.Helper()
	for _, entry := range entries {
		_, err := store.Save(context.Background(), entry)
		require.NoError(t, err)
	}
}

func TestScoreStoreSaveAndList(t *testing.T) {
	store, err := NewScoreStore(t.TempDir())
	require.NoError(t, err)

	seedScores(t, store,
		score.Score{PlayerName: "alice", Score: 50},
		score.Score{PlayerName: "bob", Score: 90},
		score.Score{PlayerName: "carol", Score: 70},
	)

	listed, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, 90, listed[0].Score)
	assert.Equal(t, 70, listed[1].Score)
	assert.Equal(t, 50, listed[2].Score)
	assert.NotEmpty(t, listed[0].ID)
}

func TestScoreStoreTopTieBreaksOnTime(t *testing.T) {
	store, err := NewScoreStore(t.TempDir())
	require.NoError(t, err)

	seedScores(t, store,
		score.Score{PlayerName: "slow", Score: 80, TimeTaken: 60},
		score.Score{PlayerName: "fast", Score: 80, TimeTaken: 30},
		score.Score{PlayerName: "third", Score: 40, TimeTaken: 10},
	)

	top, err := store.Top(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "fast", top[0].PlayerName)
	assert.Equal(t, "slow", top[1].PlayerName)
}

func TestScoreStoreByPlayerSubstring(t *testing.T) {
	store, err := NewScoreStore(t.TempDir())
	require.NoError(t, err)

	seedScores(t, store,
		score.Score{PlayerName: "Alice", Score: 10},
		score.Score{PlayerName: "alicia", Score: 20},
		score.Score{PlayerName: "bob", Score: 30},
	)

	matched, err := store.ByPlayer(context.Background(), "ali")
	require.NoError(t, err)
	assert.Len(t, matched, 2)
}

func TestScoreStoreCountGreaterThan(t *testing.T) {
	store, err := NewScoreStore(t.TempDir())
	require.NoError(t, err)

	seedScores(t, store,
		score.Score{PlayerName: "a", Score: 100},
		score.Score{PlayerName: "b", Score: 80},
		score.Score{PlayerName: "c", Score: 80},
	)

	greater, err := store.CountGreaterThan(context.Background(), 80)
	require.NoError(t, err)
	assert.Equal(t, 1, greater)
}

func TestScoreStoreStats(t *testing.T) {
	store, err := NewScoreStore(t.TempDir())
	require.NoError(t, err)

	empty, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, score.Stats{}, empty)

	seedScores(t, store,
		score.Score{PlayerName: "alice", Score: 100},
		score.Score{PlayerName: "alice", Score: 50},
		score.Score{PlayerName: "bob", Score: 60},
	)

	stats, err := store.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalGames)
	assert.Equal(t, 2, stats.TotalPlayers)
	assert.Equal(t, 100, stats.HighestScore)
	assert.Equal(t, 70, stats.AverageScore)
}

func TestScoreStorePersistsAcrossReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewScoreStore(dir)
	require.NoError(t, err)
	seedScores(t, store, score.Score{PlayerName: "alice", Score: 42})

	reopened, err := NewScoreStore(dir)
	require.NoError(t, err)
	listed, err := reopened.List(context.Background())
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, 42, listed[0].Score)
}
