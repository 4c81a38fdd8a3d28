package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/docsync/internal/client/api"
	"github.com/iudanet/docsync/internal/client/storage"
	"github.com/iudanet/docsync/internal/validation"
)

// runCat печатает серверную копию документа.
// Без сервера или авторизации печатается локальный снимок.
func (c *Cli) runCat(ctx context.Context, documentID string) error {
	if err := validation.ValidateDocumentID(documentID); err != nil {
		return fmt.Errorf("invalid document id: %w", err)
	}

	remoteErr := c.printRemote(ctx, documentID)
	if remoteErr == nil {
		return nil
	}
	if errors.Is(remoteErr, api.ErrNotFound) {
		return fmt.Errorf("document %s not found", documentID)
	}

	c.logger.Warn("Server copy unavailable, using cache", "document_id", documentID, "error", remoteErr)

	snap, err := c.snapshots.GetSnapshot(ctx, documentID)
	if err != nil {
		if errors.Is(err, storage.ErrSnapshotNotFound) {
			return fmt.Errorf("failed to get document: %w", remoteErr)
		}
		return fmt.Errorf("failed to get cached document: %w", err)
	}

	c.io.Printf("(offline copy, saved %s)\n", snap.SavedAt.Format(time.RFC3339))
	c.io.Println(snap.Content)
	return nil
}

func (c *Cli) printRemote(ctx context.Context, documentID string) error {
	authData, err := c.currentAuth(ctx)
	if err != nil {
		return err
	}

	doc, err := c.documents.GetDocument(ctx, authData.AccessToken, documentID)
	if err != nil {
		return err
	}

	if doc.Revision > 0 {
		c.io.Printf("(revision %d by %s, %s)\n", doc.Revision, doc.UpdatedBy, doc.UpdatedAt.Format(time.RFC3339))
	}
	c.io.Println(doc.Content)
	return nil
}
