package storage

import (
	"context"

	"github.com/iudanet/docsync/internal/models"
)

//go:generate moq -out snapshotstorage_mock.go . SnapshotStorage

// SnapshotStorage кеш последних известных версий документов.
// Используется для просмотра документа без соединения и для
// отображения до получения init.
type SnapshotStorage interface {
	// SaveSnapshot сохраняет снимок, если он не старше сохраненного
	SaveSnapshot(ctx context.Context, snapshot *models.Snapshot) error

	// GetSnapshot возвращает ErrSnapshotNotFound, если снимка нет
	GetSnapshot(ctx context.Context, documentID string) (*models.Snapshot, error)

	// ListSnapshots возвращает все снимки, отсортированные по DocumentID
	ListSnapshots(ctx context.Context) ([]*models.Snapshot, error)

	// DeleteSnapshot удаляет снимок документа
	DeleteSnapshot(ctx context.Context, documentID string) error
}
