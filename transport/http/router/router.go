package router

import (
	"frontdesk/internal/handlers/checkout"
	"frontdesk/internal/handlers/event"
	"frontdesk/internal/handlers/guest"
	"frontdesk/internal/handlers/housekeeping"
	"frontdesk/internal/handlers/inspection"
	"frontdesk/internal/handlers/reservation"
	"frontdesk/internal/handlers/room"
	"frontdesk/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

type DomainHandlers struct {
	Room         room.Handler
	Reservation  reservation.Handler
	Inspection   inspection.Handler
	Housekeeping housekeeping.Handler
	Checkout     checkout.Handler
	Guest        guest.Handler
	Event        event.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Use(
		r.Middleware.Tracing,
		r.Middleware.CORS(),
		r.Middleware.RateLimit(),
		r.Middleware.Serialize,
	)

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
		r.DomainHandlers.Inspection.Router(routerGroup)
		r.DomainHandlers.Housekeeping.Router(routerGroup)
		r.DomainHandlers.Checkout.Router(routerGroup)
		r.DomainHandlers.Guest.Router(routerGroup)
		r.DomainHandlers.Event.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, middleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     middleware,
	}
}
