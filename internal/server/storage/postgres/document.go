package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/server/storage"
)

// LoadDocument возвращает сохраненную копию документа
func (s *Storage) LoadDocument(ctx context.Context, documentID string) (*models.Document, error) {
	query := `
		SELECT id, content, revision, updated_by, updated_at
		FROM documents
		WHERE id = $1
	`

	doc := &models.Document{}
	err := s.pool.QueryRow(ctx, query, documentID).Scan(
		&doc.ID,
		&doc.Content,
		&doc.Revision,
		&doc.UpdatedBy,
		&doc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

// SaveDocument перезаписывает документ и увеличивает ревизию.
// Строка блокируется upsert'ом, поэтому параллельные сохранения
// получают последовательные ревизии.
func (s *Storage) SaveDocument(ctx context.Context, documentID, content, userID string) (*models.Document, error) {
	query := `
		INSERT INTO documents (id, content, revision, updated_by, updated_at)
		VALUES ($1, $2, 1, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			content = EXCLUDED.content,
			revision = documents.revision + 1,
			updated_by = EXCLUDED.updated_by,
			updated_at = EXCLUDED.updated_at
		RETURNING revision
	`

	doc := &models.Document{
		ID:        documentID,
		Content:   content,
		UpdatedBy: userID,
		UpdatedAt: time.Now().UTC(),
	}

	err := s.pool.QueryRow(ctx, query, doc.ID, doc.Content, doc.UpdatedBy, doc.UpdatedAt).Scan(&doc.Revision)
	if err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}
	return doc, nil
}
