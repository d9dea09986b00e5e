package blobs

import (
	"context"
	"errors"
	"fmt"
)

// BlobRef identifies an uploaded blob: a public link for clients and the
// store key needed to delete it later.
type BlobRef struct {
	Link string `json:"imageLink"`
	Key  string `json:"imageId"`
}

// Store abstracts the object-storage service holding uploaded images.
// Keys are generated by callers (see NewImageKey) and are globally unique.
type Store interface {
	// Upload writes data under key with the given content type and returns
	// the resulting blob reference.
	Upload(ctx context.Context, key string, data []byte, contentType string) (*BlobRef, error)

	// Delete removes the blob stored under key.
	Delete(ctx context.Context, key string) error
}

// StoreError wraps a failure reported by the upstream object store.
// The upstream message is preserved so callers can surface it.
type StoreError struct {
	Op  string // "upload" or "delete"
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("blob store %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// IsStoreError checks if error originated from the object store.
func IsStoreError(err error) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr)
}
