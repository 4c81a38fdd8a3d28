package postgres

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/server/storage"
)

// setupTestStorage подключается к DATABASE_URL, без него тесты пропускаются
func setupTestStorage(t *testing.T) *Storage {
	t.Helper()
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		t.Skip("DATABASE_URL is not set")
	}

	s, err := New(context.Background(), databaseURL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestUserStorage(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)

	now := time.Now().UTC().Truncate(time.Millisecond)
	user := &models.User{
		ID:           uuid.New().String(),
		Username:     "pg_" + uuid.New().String()[:8],
		PasswordHash: "$2a$10$hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.CreateUser(ctx, user))

	got, err := s.GetUserByUsername(ctx, user.Username)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.True(t, now.Equal(got.CreatedAt))

	got, err = s.GetUserByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Username, got.Username)

	dup := *user
	dup.ID = uuid.New().String()
	assert.ErrorIs(t, s.CreateUser(ctx, &dup), storage.ErrUserAlreadyExists)

	_, err = s.GetUserByUsername(ctx, "missing_"+uuid.New().String()[:8])
	assert.ErrorIs(t, err, storage.ErrUserNotFound)
}

func TestDocumentStorage(t *testing.T) {
	ctx := context.Background()
	s := setupTestStorage(t)
	documentID := "doc-" + uuid.New().String()

	_, err := s.LoadDocument(ctx, documentID)
	assert.ErrorIs(t, err, storage.ErrDocumentNotFound)

	const writers = 10
	var wg sync.WaitGroup
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.SaveDocument(ctx, documentID, fmt.Sprintf("v%d", i), "user-1")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	doc, err := s.LoadDocument(ctx, documentID)
	require.NoError(t, err)
	assert.Equal(t, int64(writers), doc.Revision)
	assert.Equal(t, "user-1", doc.UpdatedBy)
}
