package boltdb

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/models"
)

func TestStorage_SaveGetSnapshot(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.GetSnapshot(ctx, "doc1")
	assert.ErrorIs(t, err, storage.ErrSnapshotNotFound)

	snap := &models.Snapshot{
		DocumentID: "doc1",
		Content:    "<p>hello</p>",
		Revision:   3,
		SavedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, store.SaveSnapshot(ctx, snap))

	got, err := store.GetSnapshot(ctx, "doc1")
	require.NoError(t, err)
	assert.Equal(t, snap.DocumentID, got.DocumentID)
	assert.Equal(t, snap.Content, got.Content)
	assert.Equal(t, snap.Revision, got.Revision)
	assert.True(t, snap.SavedAt.Equal(got.SavedAt))
}

func TestStorage_SaveSnapshot_Overwrites(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)
	now := time.Now()

	require.NoError(t, store.SaveSnapshot(ctx, &models.Snapshot{
		DocumentID: "doc1", Content: "stale", Revision: 50, SavedAt: now,
	}))

	// меньшая ревизия тоже заменяет снимок
	require.NoError(t, store.SaveSnapshot(ctx, &models.Snapshot{
		DocumentID: "doc1", Content: "fresh", Revision: 11, SavedAt: now.Add(time.Minute),
	}))

	got, err := store.GetSnapshot(ctx, "doc1")
	require.NoError(t, err)
	assert.Equal(t, "fresh", got.Content)
	assert.Equal(t, int64(11), got.Revision)
}

func TestStorage_ListAndDeleteSnapshots(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	list, err := store.ListSnapshots(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	for _, id := range []string{"b-doc", "a-doc", "c-doc"} {
		require.NoError(t, store.SaveSnapshot(ctx, &models.Snapshot{DocumentID: id, Content: id, Revision: 1}))
	}

	list, err = store.ListSnapshots(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "a-doc", list[0].DocumentID)
	assert.Equal(t, "b-doc", list[1].DocumentID)
	assert.Equal(t, "c-doc", list[2].DocumentID)

	require.NoError(t, store.DeleteSnapshot(ctx, "b-doc"))
	assert.ErrorIs(t, store.DeleteSnapshot(ctx, "b-doc"), storage.ErrSnapshotNotFound)

	list, err = store.ListSnapshots(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
