package main

import (
	"context"
	"time"

	"github.com/dfryer1193/memestack/database/application"
	"github.com/dfryer1193/memestack/database/domain"
	"github.com/dfryer1193/memestack/database/persistence"
	"github.com/dfryer1193/memestack/internal/rest"
	"github.com/dfryer1193/memestack/shared/config"
	"github.com/dfryer1193/memestack/shared/db/postgres"
	"github.com/dfryer1193/memestack/shared/db/sqlite"
	"github.com/dfryer1193/memestack/shared/logging"
	"github.com/dfryer1193/memestack/shared/server"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const connectTimeout = 30 * time.Second

func main() {
	cfg, err := config.LoadDatabase()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Setup(cfg.LogLevel, cfg.LogPretty)
	gin.SetMode(gin.ReleaseMode)

	repo, closeRepo, err := newRepository(cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.Driver).Msg("Failed to connect to database")
	}
	defer closeRepo()
	log.Info().Str("driver", cfg.Driver).Msg("Database initialized")

	router := rest.NewRouter()
	rest.NewRecordsApi(router, application.NewDatabaseService(repo))

	if err := server.Run("db-service", cfg.HTTPAddr, router, cfg.ShutdownTimeout); err != nil {
		log.Error().Err(err).Msg("Server failed")
	}
}

func newRepository(cfg *config.DatabaseConfig) (domain.MemeRepository, func(), error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if cfg.Driver == config.DBDriverPostgres {
		pool, err := postgres.Connect(ctx, cfg.DBURL)
		if err != nil {
			return nil, nil, err
		}
		return persistence.NewPostgresMemeRepository(pool), pool.Close, nil
	}

	database := sqlite.NewSQLiteDB(&sqlite.SQLiteConfig{Path: cfg.SQLitePath})
	if err := database.Connect(ctx); err != nil {
		return nil, nil, err
	}
	closeDB := func() {
		if err := database.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}
	return persistence.NewSQLiteMemeRepository(database.DB()), closeDB, nil
}
