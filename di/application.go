package di

import (
	"frontdesk/internal/domains/event/relay"
	"frontdesk/internal/seed"
	"frontdesk/transport/http"
)

// Application is everything the process entry points need from the graph.
type Application struct {
	HTTP   *http.HTTP
	Relay  relay.Relay
	Seeder *seed.Seeder
}
