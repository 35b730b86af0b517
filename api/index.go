package handler

import (
	"context"
	"net/http"
	"sync"

	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

var (
	app  *di.Application
	once sync.Once
)

// Handler serves the API from a serverless function. The object graph is built once per
// instance and kept across invocations.
func Handler(w http.ResponseWriter, r *http.Request) {
	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)

		app = di.InitializeService()

		if err := app.Seeder.Run(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to seed demo data")
		}
	})

	r.RequestURI = r.URL.String()

	app.HTTP.ServeHTTP(w, r)
}
