//go:build wireinject
// +build wireinject

package di

import (
	"concierge/config"
	"concierge/infras/jwt"
	"concierge/infras/kafka"
	"concierge/infras/otel"
	"concierge/infras/postgres"
	"concierge/infras/redis"
	"concierge/infras/s3"
	"concierge/internal/broker"
	"concierge/permissions"
	"concierge/shared/cache"
	"concierge/transport/http"
	"concierge/transport/http/middleware"
	"concierge/transport/http/router"

	"github.com/google/wire"

	authService "concierge/internal/domains/auth/service"
	guestService "concierge/internal/domains/guest/service"
	hotelRepository "concierge/internal/domains/hotel/repository"
	hotelService "concierge/internal/domains/hotel/service"
	requestRepository "concierge/internal/domains/request/repository"
	requestService "concierge/internal/domains/request/service"
	requestStore "concierge/internal/domains/request/store"
	roomRepository "concierge/internal/domains/room/repository"
	roomService "concierge/internal/domains/room/service"
	userRepository "concierge/internal/domains/user/repository"
	userService "concierge/internal/domains/user/service"
	authHandler "concierge/internal/handlers/auth"
	guestHandler "concierge/internal/handlers/guest"
	hotelHandler "concierge/internal/handlers/hotel"
	realtimeHandler "concierge/internal/handlers/realtime"
	requestHandler "concierge/internal/handlers/request"
	roomHandler "concierge/internal/handlers/room"
	staffHandler "concierge/internal/handlers/staff"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	wire.Struct(new(router.Middlewares), "*"),
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	cache.NewLocalCache,
)

var realtime = wire.NewSet(
	broker.NewAuthorizer,
	broker.NewStream,
	broker.New,
	wire.Bind(new(broker.Publisher), new(*broker.Hub)),
	wire.Bind(new(realtimeHandler.Hub), new(*broker.Hub)),
	wire.Bind(new(http.Closer), new(*broker.Hub)),
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	userService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var requestDomain = wire.NewSet(
	requestRepository.New,
	requestStore.New,
	requestService.New,
	guestService.New,
)

var domains = wire.NewSet(
	hotelDomain,
	authDomain,
	roomDomain,
	requestDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	guestHandler.New,
	hotelHandler.New,
	realtimeHandler.New,
	requestHandler.New,
	roomHandler.New,
	staffHandler.New,
	router.New,
)

func InitializeService() (*http.HTTP, func(), error) {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		realtime,
		domains,
		routing,
		http.New,
	)

	return nil, nil, nil
}
