//go:build wireinject
// +build wireinject

package di

import (
	"horizon/config"
	"horizon/infras/jwt"
	"horizon/infras/kafka"
	"horizon/infras/mailer"
	"horizon/infras/otel"
	"horizon/infras/postgres"
	"horizon/infras/redis"
	"horizon/permissions"
	"horizon/shared/cache"
	"horizon/transport/http"
	"horizon/transport/http/middleware"
	"horizon/transport/http/router"

	bookingRepository "horizon/internal/domains/booking/repository"
	bookingService "horizon/internal/domains/booking/service"
	roomRepository "horizon/internal/domains/room/repository"
	roomService "horizon/internal/domains/room/service"

	authService "horizon/internal/domains/auth/service"
	userRepository "horizon/internal/domains/user/repository"

	authHandler "horizon/internal/handlers/auth"
	bookingHandler "horizon/internal/handlers/booking"
	healthHandler "horizon/internal/handlers/health"
	roomHandler "horizon/internal/handlers/room"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	mailer.New,
)

var middlewares = wire.NewSet(
	permissions.Get,
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.NewAvailability,
	bookingService.New,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	roomHandler.New,
	bookingHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
