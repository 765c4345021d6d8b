package main

import (
	"github.com/dfryer1193/memestack/image/application"
	"github.com/dfryer1193/memestack/image/client"
	"github.com/dfryer1193/memestack/image/domain"
	"github.com/dfryer1193/memestack/internal/rest"
	"github.com/dfryer1193/memestack/shared/config"
	"github.com/dfryer1193/memestack/shared/logging"
	"github.com/dfryer1193/memestack/shared/server"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadImage()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Setup(cfg.LogLevel, cfg.LogPretty)
	gin.SetMode(gin.ReleaseMode)

	var storage domain.StorageClient
	switch cfg.Storage {
	case config.ImageStorageMemory:
		storage = client.NewMemoryStorageClient()
	default:
		storage = client.NewStorageServiceClient(cfg.StorageServiceEndpoint, nil, cfg.ClientTimeout)
	}
	log.Info().
		Str("storage", cfg.Storage).
		Str("endpoint", cfg.StorageServiceEndpoint).
		Msg("Storage client initialized")

	router := rest.NewRouter()
	rest.NewImagesApi(router, application.NewImageService(storage))

	if err := server.Run("image-service", cfg.HTTPAddr, router, cfg.ShutdownTimeout); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
