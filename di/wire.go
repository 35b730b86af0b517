//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/infras/redis"
	"frontdesk/internal/seed"
	"frontdesk/shared/cache"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	checkoutService "frontdesk/internal/domains/checkout/service"
	eventRelay "frontdesk/internal/domains/event/relay"
	eventService "frontdesk/internal/domains/event/service"
	guestService "frontdesk/internal/domains/guest/service"
	housekeepingService "frontdesk/internal/domains/housekeeping/service"
	inspectionService "frontdesk/internal/domains/inspection/service"
	reservationService "frontdesk/internal/domains/reservation/service"
	roomService "frontdesk/internal/domains/room/service"

	checkoutHandler "frontdesk/internal/handlers/checkout"
	eventHandler "frontdesk/internal/handlers/event"
	guestHandler "frontdesk/internal/handlers/guest"
	housekeepingHandler "frontdesk/internal/handlers/housekeeping"
	inspectionHandler "frontdesk/internal/handlers/inspection"
	reservationHandler "frontdesk/internal/handlers/reservation"
	roomHandler "frontdesk/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var eventDomain = wire.NewSet(
	eventService.New,
	eventRelay.Provide,
	wire.Bind(new(eventService.Publisher), new(eventService.Bus)),
)

var roomDomain = wire.NewSet(
	guestService.New,
	roomService.New,
	wire.Bind(new(roomService.GuestReader), new(guestService.Guest)),
)

var housekeepingDomain = wire.NewSet(
	housekeepingService.New,
	wire.Bind(new(housekeepingService.RoomReader), new(roomService.Room)),
)

var checkoutDomain = wire.NewSet(
	inspectionService.New,
	reservationService.New,
	checkoutService.New,
	wire.Bind(new(checkoutService.InspectionReader), new(inspectionService.Inspection)),
	wire.Bind(new(checkoutService.TaskCreator), new(housekeepingService.Housekeeping)),
	wire.Bind(new(checkoutService.ReservationReader), new(reservationService.Reservation)),
)

var domains = wire.NewSet(
	eventDomain,
	roomDomain,
	housekeepingDomain,
	checkoutDomain,
	seed.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	reservationHandler.New,
	inspectionHandler.New,
	housekeepingHandler.New,
	checkoutHandler.New,
	guestHandler.New,
	eventHandler.New,
	router.New,
)

func InitializeService() *Application {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(Application), "*"),
	)

	return &Application{}
}
