package timezone

import (
	"sync"
	"time"

	"frontdesk/config"

	"github.com/rs/zerolog/log"
)

var (
	appLocation *time.Location

	clockMu sync.RWMutex
	clock   = time.Now
)

func init() {
	cfg := config.Get()

	if cfg.App.Timezone == "" {
		log.Warn().Msg("No timezone configured, using UTC as default")
		cfg.App.Timezone = "UTC"
	}

	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		log.Error().
			Err(err).
			Str("timezone", cfg.App.Timezone).
			Msg("Failed to load timezone, falling back to UTC. Please use standard timezone names like 'Asia/Jakarta', 'UTC', 'America/New_York'")
		appLocation = time.UTC

		return
	}

	appLocation = loc
	log.Info().
		Str("timezone", cfg.App.Timezone).
		Str("location", loc.String()).
		Msg("Application timezone initialized")
}

// Now returns the current time in the application timezone
func Now() time.Time {
	clockMu.RLock()
	now := clock()
	clockMu.RUnlock()

	return now.In(Location())
}

// Freeze pins Now to t until the returned restore func is called.
func Freeze(t time.Time) (restore func()) {
	clockMu.Lock()
	previous := clock
	clock = func() time.Time { return t }
	clockMu.Unlock()

	return func() {
		clockMu.Lock()
		clock = previous
		clockMu.Unlock()
	}
}

// Location returns the application timezone, UTC until one is loaded.
func Location() *time.Location {
	if appLocation == nil {
		return time.UTC
	}

	return appLocation
}
