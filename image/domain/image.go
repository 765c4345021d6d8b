package domain

import (
	"context"
	"fmt"

	"github.com/dfryer1193/memestack/shared/errs"
)

// Image is a payload stored whole under its id. Data stays base64 encoded end to end.
type Image struct {
	ID      string
	B64Data string
}

var (
	ErrImageNotFound = fmt.Errorf("image does not exist: %w", errs.ErrNotFound)
	ErrEmptyPayload  = fmt.Errorf("image payload cannot be empty: %w", errs.ErrValidation)
)

// StorageClient stores base64 payloads by key. Implementations report a missing key with
// an error wrapping errs.ErrNotFound.
type StorageClient interface {
	CreateData(ctx context.Context, key string, b64Data string) error
	RetrieveData(ctx context.Context, key string) (string, error)
	DeleteData(ctx context.Context, key string) error
}
