package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/docsync/internal/client/storage"
)

const (
	keyClock = "lamport_clock"
)

// SaveClock saves the last Lamport clock value.
// Smaller values never overwrite a larger saved value.
func (s *Storage) SaveClock(ctx context.Context, value int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket, err := bucketOf(tx, bucketMetadata)
		if err != nil {
			return err
		}

		if current := bucket.Get([]byte(keyClock)); current != nil {
			if int64(binary.BigEndian.Uint64(current)) >= value {
				return nil
			}
		}

		// Конвертируем int64 в bytes
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(value))

		if err := bucket.Put([]byte(keyClock), buf); err != nil {
			return fmt.Errorf("failed to save clock: %w", err)
		}

		return nil
	})
}

// GetClock retrieves the saved Lamport clock value
// Returns 0 if nothing has been saved yet
func (s *Storage) GetClock(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var value int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket, err := bucketOf(tx, bucketMetadata)
		if err != nil {
			return err
		}

		buf := bucket.Get([]byte(keyClock))
		if buf == nil {
			return nil
		}

		value = int64(binary.BigEndian.Uint64(buf))
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to get clock: %w", err)
	}

	return value, nil
}
