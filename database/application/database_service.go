package application

import (
	"context"
	"errors"

	"github.com/dfryer1193/memestack/database/domain"
	"github.com/dfryer1193/memestack/shared/errs"
	"github.com/rs/zerolog/log"
)

type DatabaseService struct {
	repo domain.MemeRepository
}

func NewDatabaseService(repo domain.MemeRepository) *DatabaseService {
	return &DatabaseService{
		repo: repo,
	}
}

func (s *DatabaseService) CreateMeme(ctx context.Context, m domain.Meme) error {
	if m.ID == "" {
		return domain.ErrMissingMemeID
	}
	if m.ImageID == "" {
		return domain.ErrMissingImageID
	}

	log.Info().Str("meme_id", m.ID).Str("image_id", m.ImageID).Msg("Creating meme record")

	if err := s.repo.CreateMeme(ctx, m); err != nil {
		if errors.Is(err, errs.ErrAlreadyExists) {
			log.Error().Str("meme_id", m.ID).Str("image_id", m.ImageID).Msg("Failed to create meme record, id already in use")
		} else {
			log.Error().Err(err).Str("meme_id", m.ID).Msg("Failed to create meme record")
		}
		return err
	}

	log.Info().Str("meme_id", m.ID).Msg("Created meme record")
	return nil
}

func (s *DatabaseService) RetrieveMeme(ctx context.Context, memeID string) (domain.Meme, error) {
	log.Info().Str("meme_id", memeID).Msg("Retrieving meme record")

	m, err := s.repo.RetrieveMeme(ctx, memeID)
	if err != nil {
		s.logFailure(err, memeID, "retrieve")
		return domain.Meme{}, err
	}

	log.Info().Str("meme_id", memeID).Msg("Retrieved meme record")
	return m, nil
}

// RetrieveMemes returns up to limit records after skipping the first skip, oldest first.
func (s *DatabaseService) RetrieveMemes(ctx context.Context, skip, limit int) ([]domain.Meme, error) {
	if skip < 0 || limit < 0 {
		return nil, domain.ErrInvalidPage
	}

	log.Info().Int("skip", skip).Int("limit", limit).Msg("Retrieving meme records")

	memes, err := s.repo.RetrieveMemes(ctx, skip, limit)
	if err != nil {
		log.Error().Err(err).Int("skip", skip).Int("limit", limit).Msg("Failed to retrieve meme records")
		return nil, err
	}

	log.Info().Int("count", len(memes)).Msg("Retrieved meme records")
	return memes, nil
}

func (s *DatabaseService) UpdateMeme(ctx context.Context, memeID string, update domain.MemeUpdate) (domain.Meme, error) {
	if update.IsEmpty() {
		return domain.Meme{}, domain.ErrEmptyUpdate
	}
	if update.ImageID != nil && *update.ImageID == "" {
		return domain.Meme{}, domain.ErrMissingImageID
	}

	log.Info().Str("meme_id", memeID).Msg("Updating meme record")

	m, err := s.repo.UpdateMeme(ctx, memeID, update)
	if err != nil {
		s.logFailure(err, memeID, "update")
		return domain.Meme{}, err
	}

	log.Info().Str("meme_id", memeID).Msg("Updated meme record")
	return m, nil
}

func (s *DatabaseService) DeleteMeme(ctx context.Context, memeID string) (domain.Meme, error) {
	log.Info().Str("meme_id", memeID).Msg("Deleting meme record")

	m, err := s.repo.DeleteMeme(ctx, memeID)
	if err != nil {
		s.logFailure(err, memeID, "delete")
		return domain.Meme{}, err
	}

	log.Info().Str("meme_id", memeID).Str("image_id", m.ImageID).Msg("Deleted meme record")
	return m, nil
}

func (s *DatabaseService) logFailure(err error, memeID, op string) {
	if errors.Is(err, errs.ErrNotFound) {
		log.Error().Str("meme_id", memeID).Msgf("Failed to %s meme record, meme does not exist", op)
		return
	}
	log.Error().Err(err).Str("meme_id", memeID).Msgf("Failed to %s meme record", op)
}
