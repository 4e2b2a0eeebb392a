package main

import (
	"hotelhills/config"
	"hotelhills/di"
	"hotelhills/helper"
	"hotelhills/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title HotelHills API
// @version 1.0
// @description Rooms, guests, stays, restaurant and banquet management with bill generation.
// @BasePath /api
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to apply database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
