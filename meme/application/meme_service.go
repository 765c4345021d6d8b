package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/dfryer1193/memestack/meme/domain"
	"github.com/dfryer1193/memestack/shared/errs"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// MemeService composes the image and database services into memes. Each operation is a
// fixed sequence of downstream calls with no compensation when a later call fails.
type MemeService struct {
	images domain.ImageClient
	db     domain.DBClient
	newID  func() string
}

func NewMemeService(images domain.ImageClient, db domain.DBClient) *MemeService {
	return &MemeService{
		images: images,
		db:     db,
		newID:  uuid.NewString,
	}
}

// CreateMeme stores the payload as a new image, then records the meme. When m.ID is empty
// a fresh id is generated. If the record cannot be written the image is left behind.
func (s *MemeService) CreateMeme(ctx context.Context, m domain.Meme) (domain.Meme, error) {
	if m.ID == "" {
		m.ID = s.newID()
	}
	logger := log.With().Str("meme_id", m.ID).Logger()
	logger.Info().Msg("Creating meme")

	imageID, err := s.images.CreateImage(ctx, m.B64Data)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create image for meme")
		return domain.Meme{}, imageFailure(err)
	}

	err = s.db.CreateMeme(ctx, domain.DBMeme{
		ID:      m.ID,
		ImageID: imageID,
		Caption: m.Caption,
	})
	if err != nil {
		logger.Error().Err(err).Str("image_id", imageID).Msg("Failed to create database record for meme, image is orphaned")
		return domain.Meme{}, dbFailure(err)
	}

	logger.Info().Str("image_id", imageID).Msg("Created meme")
	return m, nil
}

func (s *MemeService) RetrieveMeme(ctx context.Context, memeID string) (domain.Meme, error) {
	logger := log.With().Str("meme_id", memeID).Logger()
	logger.Info().Msg("Retrieving meme")

	record, err := s.db.RetrieveMeme(ctx, memeID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve database record for meme")
		return domain.Meme{}, dbFailure(err)
	}

	m, err := s.assemble(ctx, record)
	if err != nil {
		return domain.Meme{}, err
	}

	logger.Info().Msg("Retrieved meme")
	return m, nil
}

// RetrieveMemes pages through memes in creation order. Images are fetched one at a time
// and any failure fails the whole page.
func (s *MemeService) RetrieveMemes(ctx context.Context, skip, limit int) ([]domain.Meme, error) {
	if skip < 0 || limit < 0 {
		return nil, domain.ErrInvalidPage
	}

	logger := log.With().Int("skip", skip).Int("limit", limit).Logger()
	logger.Info().Msg("Retrieving memes")

	records, err := s.db.RetrieveMemes(ctx, skip, limit)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve database records for memes")
		return nil, dbFailure(err)
	}

	memes := make([]domain.Meme, 0, len(records))
	for _, record := range records {
		m, err := s.assemble(ctx, record)
		if err != nil {
			return nil, err
		}
		memes = append(memes, m)
	}

	logger.Info().Int("count", len(memes)).Msg("Retrieved memes")
	return memes, nil
}

// UpdateMeme applies a caption change and then a payload change. The two writes are
// independent: a failed payload write keeps the new caption.
func (s *MemeService) UpdateMeme(ctx context.Context, memeID string, update domain.MemeUpdate) error {
	if update.IsEmpty() {
		return domain.ErrEmptyUpdate
	}

	logger := log.With().Str("meme_id", memeID).Logger()
	logger.Info().Msg("Updating meme")

	record, err := s.db.RetrieveMeme(ctx, memeID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to retrieve database record for meme")
		return dbFailure(err)
	}

	if update.Caption != "" {
		caption := update.Caption
		if err := s.db.UpdateMeme(ctx, memeID, domain.DBMemeUpdate{Caption: &caption}); err != nil {
			logger.Error().Err(err).Msg("Failed to update caption")
			return dbFailure(err)
		}
		logger.Info().Msg("Updated caption")
	}

	if update.B64Data != "" {
		if err := s.images.UpdateImage(ctx, record.ImageID, update.B64Data); err != nil {
			logger.Error().Err(err).Str("image_id", record.ImageID).Msg("Failed to update image")
			return imageFailure(err)
		}
		logger.Info().Str("image_id", record.ImageID).Msg("Updated image")
	}

	logger.Info().Msg("Updated meme")
	return nil
}

// DeleteMeme removes the record, then its image, and returns the deleted meme without
// payload. If the image delete fails the record is already gone.
func (s *MemeService) DeleteMeme(ctx context.Context, memeID string) (domain.Meme, error) {
	logger := log.With().Str("meme_id", memeID).Logger()
	logger.Info().Msg("Deleting meme")

	record, err := s.db.DeleteMeme(ctx, memeID)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to delete database record for meme")
		return domain.Meme{}, dbFailure(err)
	}

	if err := s.images.DeleteImage(ctx, record.ImageID); err != nil {
		logger.Error().Err(err).Str("image_id", record.ImageID).Msg("Failed to delete image, image is orphaned")
		return domain.Meme{}, imageFailure(err)
	}

	logger.Info().Str("image_id", record.ImageID).Msg("Deleted meme")
	return domain.Meme{ID: record.ID, Caption: record.Caption}, nil
}

func (s *MemeService) assemble(ctx context.Context, record domain.DBMeme) (domain.Meme, error) {
	b64Data, err := s.images.RetrieveImage(ctx, record.ImageID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			log.Error().
				Str("meme_id", record.ID).
				Str("image_id", record.ImageID).
				Msg("Image not found even though there is a database record for it")
		} else {
			log.Error().Err(err).Str("meme_id", record.ID).Str("image_id", record.ImageID).Msg("Failed to retrieve image for meme")
		}
		return domain.Meme{}, imageFailure(err)
	}

	return domain.Meme{
		ID:      record.ID,
		B64Data: b64Data,
		Caption: record.Caption,
	}, nil
}

// dbFailure keeps the kinds callers can act on and reports everything else as a backend
// failure.
func dbFailure(err error) error {
	switch {
	case errors.Is(err, errs.ErrNotFound):
		return fmt.Errorf("%w: %v", domain.ErrMemeNotFound, err)
	case errors.Is(err, errs.ErrAlreadyExists):
		return fmt.Errorf("%w: %v", domain.ErrMemeExists, err)
	default:
		return fmt.Errorf("%w: %v", domain.ErrDBService, err)
	}
}

// imageFailure strips error kinds so image problems always surface as backend failures.
func imageFailure(err error) error {
	if errors.Is(err, errs.ErrNotFound) {
		return fmt.Errorf("%w: %v", domain.ErrImageMissing, err)
	}
	return fmt.Errorf("%w: %v", domain.ErrImageService, err)
}
