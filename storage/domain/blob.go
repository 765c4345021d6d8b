package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/dfryer1193/memestack/shared/errs"
)

var (
	ErrKeyNotFound    = fmt.Errorf("key does not exist: %w", errs.ErrNotFound)
	ErrInvalidKey     = fmt.Errorf("key cannot be empty: %w", errs.ErrValidation)
	ErrInvalidPayload = fmt.Errorf("payload is not valid base64: %w", errs.ErrValidation)
	ErrUnsafeKey      = fmt.Errorf("key cannot contain path elements: %w", errs.ErrValidation)
)

// BlobStore holds raw bytes keyed by string. Put silently replaces an existing key.
type BlobStore interface {
	// Ensure prepares the backing store (e.g. creates the bucket) before first use.
	Ensure(ctx context.Context) error

	Put(ctx context.Context, key string, data []byte) error

	// Get returns ErrKeyNotFound when key is absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Delete returns ErrKeyNotFound when key is absent.
	Delete(ctx context.Context, key string) error
}

// IsKeyNotFound reports whether err means the key was absent.
func IsKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}
