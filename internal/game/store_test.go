package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLifecycle(t *testing.T) {
	store := NewStore()

	session := Session{ID: "g1", PlayerName: "alice", Status: StatusActive}
	require.NoError(t, store.Create(session))
	assert.Equal(t, 1, store.Len())

	got, err := store.Get("g1")
	require.NoError(t, err)
	assert.Equal(t, "alice", got.PlayerName)

	got.Score = 30
	require.NoError(t, store.Update("g1", got))

	updated, err := store.Get("g1")
	require.NoError(t, err)
	assert.Equal(t, 30, updated.Score)

	require.NoError(t, store.Delete("g1"))
	assert.Equal(t, 0, store.Len())

	_, err = store.Get("g1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestStoreDuplicateCreate(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Create(Session{ID: "g1"}))
	assert.ErrorIs(t, store.Create(Session{ID: "g1"}), ErrSessionExists)
}

func TestStoreUpdateUnknownSession(t *testing.T) {
	store := NewStore()
	assert.ErrorIs(t, store.Update("missing", Session{ID: "missing"}), ErrSessionNotFound)
	assert.ErrorIs(t, store.Delete("missing"), ErrSessionNotFound)
}

func TestStoreReadsAreCopies(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Create(Session{ID: "g1", Score: 10}))

	got, err := store.Get("g1")
	require.NoError(t, err)
	got.Score = 999

	unchanged, err := store.Get("g1")
	require.NoError(t, err)
	assert.Equal(t, 10, unchanged.Score, "mutating a returned session must not affect the store")
}
