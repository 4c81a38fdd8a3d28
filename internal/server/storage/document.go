package storage

import (
	"context"

	"github.com/iudanet/docsync/internal/models"
)

//go:generate moq -out documentstorage_mock.go . DocumentStorage

// DocumentStorage хранилище канонических копий документов.
// Конфликты не разрешаются: каждое сохранение перезаписывает содержимое
// (last-writer-wins в порядке поступления).
type DocumentStorage interface {
	// LoadDocument возвращает ErrDocumentNotFound, если документ не сохранялся
	LoadDocument(ctx context.Context, documentID string) (*models.Document, error)

	// SaveDocument перезаписывает содержимое и увеличивает ревизию на единицу.
	// Отсутствующий документ создается с ревизией 1.
	SaveDocument(ctx context.Context, documentID, content, userID string) (*models.Document, error)
}
