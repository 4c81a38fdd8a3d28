package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/docsync/internal/models"
	"github.com/iudanet/docsync/internal/server/storage"
)

// LoadDocument возвращает сохраненную копию документа
func (s *Storage) LoadDocument(ctx context.Context, documentID string) (*models.Document, error) {
	query := `
		SELECT id, content, revision, updated_by, updated_at
		FROM documents
		WHERE id = ?
	`

	doc := &models.Document{}
	err := s.db.QueryRowContext(ctx, query, documentID).Scan(
		&doc.ID,
		&doc.Content,
		&doc.Revision,
		&doc.UpdatedBy,
		&doc.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrDocumentNotFound
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}

	return doc, nil
}

// SaveDocument перезаписывает документ и увеличивает ревизию
func (s *Storage) SaveDocument(ctx context.Context, documentID, content, userID string) (*models.Document, error) {
	query := `
		INSERT INTO documents (id, content, revision, updated_by, updated_at)
		VALUES (?, ?, 1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			content = excluded.content,
			revision = documents.revision + 1,
			updated_by = excluded.updated_by,
			updated_at = excluded.updated_at
		RETURNING revision
	`

	doc := &models.Document{
		ID:        documentID,
		Content:   content,
		UpdatedBy: userID,
		UpdatedAt: time.Now().UTC(),
	}

	err := s.db.QueryRowContext(ctx, query,
		doc.ID,
		doc.Content,
		doc.UpdatedBy,
		doc.UpdatedAt,
	).Scan(&doc.Revision)
	if err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	return doc, nil
}
