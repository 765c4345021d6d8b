package domain

import (
	"context"
	"fmt"

	"github.com/dfryer1193/memestack/shared/errs"
)

// DefaultLimit is the page size used when a caller does not ask for one.
const DefaultLimit = 3

// Meme is the metadata record linking a meme id to the image holding its payload.
type Meme struct {
	ID      string
	ImageID string
	Caption *string
}

// MemeUpdate is a merge patch. Nil fields keep their stored value.
type MemeUpdate struct {
	ImageID *string
	Caption *string
}

func (u MemeUpdate) IsEmpty() bool {
	return u.ImageID == nil && u.Caption == nil
}

var (
	ErrMemeNotFound   = fmt.Errorf("meme does not exist: %w", errs.ErrNotFound)
	ErrMemeExists     = fmt.Errorf("meme or image already recorded: %w", errs.ErrAlreadyExists)
	ErrEmptyUpdate    = fmt.Errorf("update must set image_id or caption: %w", errs.ErrValidation)
	ErrInvalidPage    = fmt.Errorf("skip and limit cannot be negative: %w", errs.ErrValidation)
	ErrMissingMemeID  = fmt.Errorf("meme_id cannot be empty: %w", errs.ErrValidation)
	ErrMissingImageID = fmt.Errorf("image_id cannot be empty: %w", errs.ErrValidation)
)

// MemeRepository persists meme records. Both ID and ImageID are unique across records,
// and RetrieveMemes pages through records in insertion order.
type MemeRepository interface {
	CreateMeme(ctx context.Context, m Meme) error
	RetrieveMeme(ctx context.Context, memeID string) (Meme, error)
	RetrieveMemes(ctx context.Context, skip, limit int) ([]Meme, error)
	UpdateMeme(ctx context.Context, memeID string, update MemeUpdate) (Meme, error)
	DeleteMeme(ctx context.Context, memeID string) (Meme, error)
}
