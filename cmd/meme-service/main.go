package main

import (
	"github.com/dfryer1193/memestack/internal/rest"
	"github.com/dfryer1193/memestack/meme/application"
	"github.com/dfryer1193/memestack/meme/client"
	"github.com/dfryer1193/memestack/shared/config"
	"github.com/dfryer1193/memestack/shared/logging"
	"github.com/dfryer1193/memestack/shared/server"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.LoadMeme()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Setup(cfg.LogLevel, cfg.LogPretty)
	gin.SetMode(gin.ReleaseMode)

	images := client.NewImageServiceClient(cfg.ImageServiceEndpoint, nil, cfg.ClientTimeout)
	log.Info().Str("endpoint", cfg.ImageServiceEndpoint).Msg("Image service client initialized")

	db := client.NewDBServiceClient(cfg.DBServiceEndpoint, nil, cfg.ClientTimeout)
	log.Info().Str("endpoint", cfg.DBServiceEndpoint).Msg("Database service client initialized")

	router := rest.NewRouter()
	rest.NewMemesApi(router, application.NewMemeService(images, db))

	if err := server.Run("meme-service", cfg.HTTPAddr, router, cfg.ShutdownTimeout); err != nil {
		log.Fatal().Err(err).Msg("Server failed")
	}
}
