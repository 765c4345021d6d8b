package domain

import (
	"context"
	"errors"
	"fmt"

	"github.com/dfryer1193/memestack/shared/errs"
)

// DefaultLimit is the page size used when a caller does not ask for one.
const DefaultLimit = 3

// Meme is the user facing aggregate: an image payload plus an optional caption.
type Meme struct {
	ID      string
	B64Data string
	Caption *string
}

// MemeUpdate carries the fields of a partial update. Empty values are left untouched.
type MemeUpdate struct {
	B64Data string
	Caption string
}

func (u MemeUpdate) IsEmpty() bool {
	return u.B64Data == "" && u.Caption == ""
}

// DBMeme is the record kept by the database service. It references the image by id.
type DBMeme struct {
	ID      string
	ImageID string
	Caption *string
}

// DBMemeUpdate is a merge patch sent to the database service.
type DBMemeUpdate struct {
	ImageID *string
	Caption *string
}

var (
	ErrMemeNotFound = fmt.Errorf("meme does not exist: %w", errs.ErrNotFound)
	ErrMemeExists   = fmt.Errorf("meme already exists: %w", errs.ErrAlreadyExists)
	ErrEmptyUpdate  = fmt.Errorf("no new data given for an update: %w", errs.ErrValidation)
	ErrInvalidPage  = fmt.Errorf("skip and limit cannot be negative: %w", errs.ErrValidation)

	// ErrImageMissing means a database record points at an image the image service does
	// not have. It is a backend failure, not a missing meme.
	ErrImageMissing = errors.New("image missing for existing meme record")
	ErrImageService = errors.New("image service failure")
	ErrDBService    = errors.New("database service failure")
)

// ImageClient talks to the image service. A missing image is reported with an error
// wrapping errs.ErrNotFound.
type ImageClient interface {
	CreateImage(ctx context.Context, b64Data string) (string, error)
	RetrieveImage(ctx context.Context, imageID string) (string, error)
	UpdateImage(ctx context.Context, imageID string, b64Data string) error
	DeleteImage(ctx context.Context, imageID string) error
}

// DBClient talks to the database service. Missing records are reported with an error
// wrapping errs.ErrNotFound and id collisions with errs.ErrAlreadyExists.
type DBClient interface {
	CreateMeme(ctx context.Context, m DBMeme) error
	RetrieveMeme(ctx context.Context, memeID string) (DBMeme, error)
	RetrieveMemes(ctx context.Context, skip, limit int) ([]DBMeme, error)
	UpdateMeme(ctx context.Context, memeID string, update DBMemeUpdate) error
	DeleteMeme(ctx context.Context, memeID string) (DBMeme, error)
}
