package database

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creatiq-server/modules/common/model"
)

func TestMemoryStoreQueryRecentNewestFirst(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Append(ctx, model.HistoryEntry{
			ID:        fmt.Sprintf("id-%d", i),
			Feature:   model.FeatureCaption,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	entries, err := store.QueryRecent(ctx, model.FeatureCaption, 3)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "id-4", entries[0].ID)
	assert.Equal(t, "id-3", entries[1].ID)
	assert.Equal(t, "id-2", entries[2].ID)

	all, err := store.QueryRecent(ctx, model.FeatureCaption, 0)
	require.NoError(t, err)
	assert.Len(t, all, 5, "limit 0 returns everything")
}

func TestMemoryStoreQueryRecentFiltersFeature(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, store.Append(ctx, model.HistoryEntry{ID: "c", Feature: model.FeatureCaption, CreatedAt: now}))
	require.NoError(t, store.Append(ctx, model.HistoryEntry{ID: "s", Feature: model.FeatureScript, CreatedAt: now}))

	entries, err := store.QueryRecent(ctx, model.FeatureScript, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "s", entries[0].ID)
}

func TestMemoryStoreTimestampTies(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	same := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	// Equal timestamps: the later insert is the newer entry
	require.NoError(t, store.Append(ctx, model.HistoryEntry{ID: "first", Feature: model.FeatureCaption, CreatedAt: same}))
	require.NoError(t, store.Append(ctx, model.HistoryEntry{ID: "second", Feature: model.FeatureCaption, CreatedAt: same}))

	entries, err := store.QueryRecent(ctx, model.FeatureCaption, 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "second", entries[0].ID)
	assert.Equal(t, "first", entries[1].ID)
}

func TestMemoryStoreQueryExact(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.Append(ctx, model.HistoryEntry{
		ID: "a", Feature: model.FeatureCaption, PrimaryText: "sunset glow", CreatedAt: base,
	}))
	require.NoError(t, store.Append(ctx, model.HistoryEntry{
		ID: "b", Feature: model.FeatureCaption, PrimaryText: "other", CreatedAt: base.Add(time.Minute),
	}))
	require.NoError(t, store.Append(ctx, model.HistoryEntry{
		ID: "c", Feature: model.FeatureCaption, PrimaryText: "sunset glow", CreatedAt: base.Add(2 * time.Minute),
	}))

	entries, err := store.QueryExact(ctx, model.FeatureCaption, "sunset glow")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "c", entries[0].ID)
	assert.Equal(t, "a", entries[1].ID)

	none, err := store.QueryExact(ctx, model.FeatureCaption, "Sunset glow")
	require.NoError(t, err)
	assert.Empty(t, none, "matching is exact, not case-insensitive")
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, store.Append(ctx, model.HistoryEntry{ID: "a", Feature: model.FeatureCaption, CreatedAt: now}))
	require.NoError(t, store.Append(ctx, model.HistoryEntry{ID: "b", Feature: model.FeatureCaption, CreatedAt: now}))

	require.NoError(t, store.Delete(ctx, model.FeatureCaption, "a"))

	entries, err := store.QueryRecent(ctx, model.FeatureCaption, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "b", entries[0].ID)

	// Deleting a missing or wrong-feature id is a no-op
	require.NoError(t, store.Delete(ctx, model.FeatureCaption, "missing"))
	require.NoError(t, store.Delete(ctx, model.FeatureScript, "b"))

	entries, err = store.QueryRecent(ctx, model.FeatureCaption, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestMemoryStoreConcurrentAccess(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = store.Append(ctx, model.HistoryEntry{
				ID:        fmt.Sprintf("id-%d", i),
				Feature:   model.FeatureCaption,
				CreatedAt: time.Now().UTC(),
			})
		}(i)
		go func() {
			defer wg.Done()
			_, _ = store.QueryRecent(ctx, model.FeatureCaption, 5)
		}()
	}
	wg.Wait()

	entries, err := store.QueryRecent(ctx, model.FeatureCaption, 0)
	require.NoError(t, err)
	assert.Len(t, entries, 20)
}
