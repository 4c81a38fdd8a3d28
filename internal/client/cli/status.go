package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/docsync/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	authData, err := c.auth.Current(ctx)
	switch {
	case errors.Is(err, auth.ErrNotLoggedIn):
		c.io.Println("Status: Not authenticated")
		c.io.Println("Run 'docsync login' to authenticate.")
	case errors.Is(err, auth.ErrSessionExpired):
		c.io.Println("Status: Session expired")
		c.io.Printf("Username: %s\n", authData.Username)
		c.io.Println("⚠️  Token has expired. Please login again.")
	case err != nil:
		return fmt.Errorf("failed to check authentication: %w", err)
	default:
		expiresAt := time.Unix(authData.ExpiresAt, 0)
		c.io.Println("Status: Authenticated")
		c.io.Printf("Username: %s\n", authData.Username)
		c.io.Printf("User ID: %s\n", authData.UserID)
		c.io.Printf("Server: %s\n", authData.ServerURL)
		c.io.Printf("Token expires: %s\n", expiresAt.Format(time.RFC3339))
	}

	snapshots, err := c.snapshots.ListSnapshots(ctx)
	if err != nil {
		c.io.Printf("\nWarning: Failed to list cached documents: %v\n", err)
		return nil
	}

	c.io.Println()
	if len(snapshots) == 0 {
		c.io.Println("No cached documents.")
		return nil
	}
	c.io.Printf("Cached documents (%d):\n", len(snapshots))
	for _, snap := range snapshots {
		c.io.Printf("  %-32s rev %-6d saved %s\n", snap.DocumentID, snap.Revision, snap.SavedAt.Format(time.RFC3339))
	}
	return nil
}
