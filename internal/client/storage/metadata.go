package storage

import "context"

//go:generate moq -out metadatastorage_mock.go . MetadataStorage

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveClock saves the last Lamport clock value of this client
	SaveClock(ctx context.Context, value int64) error

	// GetClock retrieves the saved Lamport clock value
	// Returns 0 if nothing has been saved yet
	GetClock(ctx context.Context) (int64, error)
}
