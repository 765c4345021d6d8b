package application

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/dfryer1193/memestack/storage/domain"
	"github.com/rs/zerolog/log"
)

// StorageService translates between base64 transport payloads and raw blobs.
type StorageService struct {
	store domain.BlobStore
}

func NewStorageService(store domain.BlobStore) *StorageService {
	return &StorageService{
		store: store,
	}
}

// CreateData decodes b64Data and writes it under key, replacing any existing value.
func (s *StorageService) CreateData(ctx context.Context, key string, b64Data string) error {
	logger := log.With().Str("key", key).Logger()
	logger.Info().Msg("Creating data")

	if key == "" {
		return domain.ErrInvalidKey
	}

	data, err := base64.StdEncoding.DecodeString(b64Data)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to decode payload")
		return fmt.Errorf("%w: %v", domain.ErrInvalidPayload, err)
	}

	if err := s.store.Put(ctx, key, data); err != nil {
		logger.Error().Err(err).Msg("Failed to create data")
		return fmt.Errorf("failed to store %s: %w", key, err)
	}

	logger.Info().Int("bytes", len(data)).Msg("Created data")
	return nil
}

// RetrieveData returns the base64 encoding of the bytes stored under key.
func (s *StorageService) RetrieveData(ctx context.Context, key string) (string, error) {
	logger := log.With().Str("key", key).Logger()
	logger.Info().Msg("Retrieving data")

	data, err := s.store.Get(ctx, key)
	if err != nil {
		if domain.IsKeyNotFound(err) {
			logger.Error().Msg("Failed to retrieve data, key does not exist")
			return "", err
		}
		logger.Error().Err(err).Msg("Failed to retrieve data")
		return "", fmt.Errorf("failed to load %s: %w", key, err)
	}

	logger.Info().Msg("Retrieved data")
	logger.Debug().Int("bytes", len(data)).Msg("Retrieved payload")

	return base64.StdEncoding.EncodeToString(data), nil
}

func (s *StorageService) DeleteData(ctx context.Context, key string) error {
	logger := log.With().Str("key", key).Logger()
	logger.Info().Msg("Deleting data")

	if err := s.store.Delete(ctx, key); err != nil {
		if domain.IsKeyNotFound(err) {
			logger.Error().Msg("Failed to delete data, key does not exist")
			return err
		}
		logger.Error().Err(err).Msg("Failed to delete data")
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}

	logger.Info().Msg("Deleted data")
	return nil
}
