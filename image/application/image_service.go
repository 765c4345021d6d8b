package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/dfryer1193/memestack/image/domain"
	"github.com/dfryer1193/memestack/shared/errs"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type ImageService struct {
	storage domain.StorageClient
	newID   func() string
}

func NewImageService(storage domain.StorageClient) *ImageService {
	return &ImageService{
		storage: storage,
		newID:   uuid.NewString,
	}
}

// CreateImage stores b64Data under a freshly generated id.
func (s *ImageService) CreateImage(ctx context.Context, b64Data string) (domain.Image, error) {
	if b64Data == "" {
		return domain.Image{}, domain.ErrEmptyPayload
	}

	img := domain.Image{ID: s.newID(), B64Data: b64Data}
	log.Info().Str("image_id", img.ID).Msg("Creating image")

	if err := s.storage.CreateData(ctx, img.ID, img.B64Data); err != nil {
		log.Error().Err(err).Str("image_id", img.ID).Msg("Failed to create image")
		return domain.Image{}, fmt.Errorf("failed to create image %s: %w", img.ID, err)
	}

	log.Info().Str("image_id", img.ID).Msg("Created image")
	return img, nil
}

func (s *ImageService) RetrieveImage(ctx context.Context, imageID string) (domain.Image, error) {
	log.Info().Str("image_id", imageID).Msg("Retrieving image")

	b64Data, err := s.storage.RetrieveData(ctx, imageID)
	if err != nil {
		return domain.Image{}, s.translate(imageID, "retrieve", err)
	}

	log.Info().Str("image_id", imageID).Msg("Retrieved image")
	return domain.Image{ID: imageID, B64Data: b64Data}, nil
}

// UpdateImage overwrites the payload stored under img.ID whether or not it existed before.
func (s *ImageService) UpdateImage(ctx context.Context, img domain.Image) error {
	if img.B64Data == "" {
		return domain.ErrEmptyPayload
	}

	log.Info().Str("image_id", img.ID).Msg("Updating image")

	if err := s.storage.CreateData(ctx, img.ID, img.B64Data); err != nil {
		return s.translate(img.ID, "update", err)
	}

	log.Info().Str("image_id", img.ID).Msg("Updated image")
	return nil
}

func (s *ImageService) DeleteImage(ctx context.Context, imageID string) error {
	log.Info().Str("image_id", imageID).Msg("Deleting image")

	if err := s.storage.DeleteData(ctx, imageID); err != nil {
		return s.translate(imageID, "delete", err)
	}

	log.Info().Str("image_id", imageID).Msg("Deleted image")
	return nil
}

// translate turns a missing storage key into ErrImageNotFound and wraps everything else.
func (s *ImageService) translate(imageID, op string, err error) error {
	if errors.Is(err, errs.ErrNotFound) {
		log.Error().Str("image_id", imageID).Msgf("Failed to %s image, image does not exist", op)
		return fmt.Errorf("%s %s: %w", op, imageID, domain.ErrImageNotFound)
	}
	log.Error().Err(err).Str("image_id", imageID).Msgf("Failed to %s image", op)
	return fmt.Errorf("failed to %s image %s: %w", op, imageID, err)
}
