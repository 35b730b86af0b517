package main

import (
	"context"

	"frontdesk/config"
	"frontdesk/di"
	_ "frontdesk/docs"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Frontdesk API
// @version 1.0
// @description Room lifecycle, inspections, housekeeping and checkout for the front desk.
// @BasePath /
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	app := di.InitializeService()

	if err := app.Seeder.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed demo data")
	}

	app.Relay.Start()

	app.HTTP.Serve()
}
