package posts

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creatiq-server/modules/common/database"
	"creatiq-server/modules/common/model"
)

func TestCreateAndList(t *testing.T) {
	store := database.NewMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	scheduled := time.Date(2026, 9, 15, 18, 30, 0, 0, time.UTC)
	id, err := svc.Create(ctx, "Golden hour glow", scheduled)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	posts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, id, posts[0].ID)
	assert.Equal(t, "Golden hour glow", posts[0].Caption)
	assert.True(t, posts[0].ScheduledAt.Equal(scheduled))
}

func TestCreateNormalizesScheduledDateToUTC(t *testing.T) {
	svc := NewService(database.NewMemoryStore())
	ctx := context.Background()

	loc := time.FixedZone("KST", 9*60*60)
	local := time.Date(2026, 9, 16, 3, 30, 0, 0, loc)

	_, err := svc.Create(ctx, "Night market haul", local)
	require.NoError(t, err)

	posts, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.Equal(t, time.UTC, posts[0].ScheduledAt.Location())
	assert.True(t, posts[0].ScheduledAt.Equal(local))
}

func TestListFallsBackToCreatedAt(t *testing.T) {
	store := database.NewMemoryStore()
	createdAt := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	// An entry with an unreadable date still shows up, scheduled at creation
	require.NoError(t, store.Append(context.Background(), model.HistoryEntry{
		ID:            "legacy",
		Feature:       model.FeaturePost,
		PrimaryText:   "old post",
		SecondaryText: "not a date",
		CreatedAt:     createdAt,
	}))

	svc := NewService(store)
	posts, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 1)
	assert.True(t, posts[0].ScheduledAt.Equal(createdAt))
}

func TestDeletePost(t *testing.T) {
	svc := NewService(database.NewMemoryStore())
	ctx := context.Background()

	id, err := svc.Create(ctx, "Golden hour glow", time.Now())
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, id))

	posts, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)
}
