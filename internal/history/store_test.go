// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package history persists submitted form entries.
package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T, maxEntries int) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"), maxEntries)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// at builds a fixed timestamp n seconds after a base instant, so ordering
// in tests never depends on wall-clock resolution.
func at(n int) time.Time {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	return base.Add(time.Duration(n) * time.Second)
}

// =============================================================================
// APPEND / GET
// =============================================================================

func TestStore_AppendAndGet(t *testing.T) {
	store := openTestStore(t, 0)

	stored, err := store.Append(Entry{
		Field:     "message",
		Content:   "hello world",
		Via:       "basic",
		CreatedAt: at(0),
	})
	require.NoError(t, err)
	require.NotEmpty(t, stored.ID, "append should assign an ID")

	got, err := store.Get(stored.ID)
	require.NoError(t, err)
	require.Equal(t, "hello world", got.Content)
	require.Equal(t, "message", got.Field)
	require.Equal(t, "basic", got.Via)
	require.Equal(t, at(0).UnixMilli(), got.CreatedAt.UnixMilli())
}

func TestStore_AppendDefaults(t *testing.T) {
	store := openTestStore(t, 0)

	stored, err := store.Append(Entry{Field: "message", Content: "x"})
	require.NoError(t, err)
	require.Equal(t, "programmatic", stored.Via)
	require.False(t, stored.CreatedAt.IsZero())
}

func TestStore_GetMissing(t *testing.T) {
	store := openTestStore(t, 0)

	_, err := store.Get("no-such-id")
	require.ErrorIs(t, err, ErrNotFound)
}

// =============================================================================
// RECENT / SEARCH
// =============================================================================

func TestStore_RecentOrder(t *testing.T) {
	store := openTestStore(t, 0)

	for i, content := range []string{"first", "second", "third"} {
		_, err := store.Append(Entry{Field: "message", Content: content, CreatedAt: at(i)})
		require.NoError(t, err)
	}

	entries, err := store.Recent(2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, "third", entries[0].Content)
	require.Equal(t, "second", entries[1].Content)
}

func TestStore_Search(t *testing.T) {
	store := openTestStore(t, 0)

	for i, content := range []string{"deploy the service", "рестарт", "Deploy again", "unrelated"} {
		_, err := store.Append(Entry{Field: "message", Content: content, CreatedAt: at(i)})
		require.NoError(t, err)
	}

	entries, err := store.Search("deploy", 10)
	require.NoError(t, err)
	require.Len(t, entries, 2, "search should be case-insensitive")
	require.Equal(t, "Deploy again", entries[0].Content)
}

// =============================================================================
// LIMITS / LIFECYCLE
// =============================================================================

func TestStore_EnforcesMaxEntries(t *testing.T) {
	store := openTestStore(t, 3)

	for i := 0; i < 5; i++ {
		_, err := store.Append(Entry{Field: "message", Content: "entry", CreatedAt: at(i)})
		require.NoError(t, err)
	}

	count, err := store.Count()
	require.NoError(t, err)
	require.Equal(t, 3, count)

	// The survivors are the most recent three
	entries, err := store.Recent(10)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	require.Equal(t, at(4).UnixMilli(), entries[0].CreatedAt.UnixMilli())
}

func TestStore_Clear(t *testing.T) {
	store := openTestStore(t, 0)

	_, err := store.Append(Entry{Field: "message", Content: "x", CreatedAt: at(0)})
	require.NoError(t, err)
	require.NoError(t, store.Clear())

	count, err := store.Count()
	require.NoError(t, err)
	require.Zero(t, count)
}

func TestStore_ClosedOperationsFail(t *testing.T) {
	store := openTestStore(t, 0)
	require.NoError(t, store.Close())

	_, err := store.Append(Entry{Content: "x"})
	require.ErrorIs(t, err, ErrClosed)
	_, err = store.Recent(5)
	require.ErrorIs(t, err, ErrClosed)
	_, err = store.Get("id")
	require.ErrorIs(t, err, ErrClosed)
}
