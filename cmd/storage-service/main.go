package main

import (
	"context"
	"time"

	"github.com/dfryer1193/memestack/internal/rest"
	"github.com/dfryer1193/memestack/shared/config"
	"github.com/dfryer1193/memestack/shared/logging"
	"github.com/dfryer1193/memestack/shared/server"
	"github.com/dfryer1193/memestack/storage/application"
	"github.com/dfryer1193/memestack/storage/domain"
	"github.com/dfryer1193/memestack/storage/persistence"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const ensureTimeout = 30 * time.Second

func main() {
	cfg, err := config.LoadStorage()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Setup(cfg.LogLevel, cfg.LogPretty)
	gin.SetMode(gin.ReleaseMode)

	store, err := newBlobStore(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize blob store")
	}

	ctx, cancel := context.WithTimeout(context.Background(), ensureTimeout)
	err = store.Ensure(ctx)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare blob store")
	}
	log.Info().Str("backend", cfg.Backend).Msg("Blob store initialized")

	router := rest.NewRouter()
	rest.NewDataApi(router, application.NewStorageService(store))

	if err := server.Run("storage-service", cfg.HTTPAddr, router, cfg.ShutdownTimeout); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}

func newBlobStore(cfg *config.StorageConfig) (domain.BlobStore, error) {
	switch cfg.Backend {
	case config.StorageBackendMemory:
		return persistence.NewMemoryBlobStore(), nil
	case config.StorageBackendFile:
		return persistence.NewFileBlobStore(cfg.StorageDir), nil
	}
	return persistence.NewMinIOBlobStore(persistence.MinIOConfig{
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		Bucket:    cfg.S3Bucket,
		UseSSL:    cfg.S3UseSSL,
	})
}
