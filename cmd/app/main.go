package main

import (
	"concierge/config"
	"concierge/di"
	"concierge/helper"
	"concierge/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Concierge API
// @version 1.0
// @description Hotel guest services: QR room portals, service requests and realtime staff dashboards.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http, cleanup, err := di.InitializeService()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize service")
	}
	defer cleanup()

	http.Serve()
}
