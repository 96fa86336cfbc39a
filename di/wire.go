//go:build wireinject
// +build wireinject

package di

import (
	"desk/config"
	"desk/infras/jwt"
	"desk/infras/kafka"
	"desk/infras/otel"
	"desk/infras/postgres"
	"desk/infras/redis"
	"desk/infras/s3"
	"desk/internal/domains/booking/policy"
	"desk/internal/seeder"
	"desk/permissions"
	"desk/shared/cache"
	"desk/transport/http"
	"desk/transport/http/middleware"
	"desk/transport/http/router"

	bookingRepository "desk/internal/domains/booking/repository"
	bookingService "desk/internal/domains/booking/service"
	holidayRepository "desk/internal/domains/holiday/repository"
	holidayService "desk/internal/domains/holiday/service"
	reportService "desk/internal/domains/report/service"
	seatRepository "desk/internal/domains/seat/repository"
	seatService "desk/internal/domains/seat/service"

	adminHandler "desk/internal/handlers/admin"
	authHandler "desk/internal/handlers/auth"
	bookingHandler "desk/internal/handlers/booking"
	healthHandler "desk/internal/handlers/health"
	holidayHandler "desk/internal/handlers/holiday"
	seatHandler "desk/internal/handlers/seat"

	"github.com/google/wire"
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
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var seatDomain = wire.NewSet(
	seatRepository.New,
	seatService.New,
)

var holidayDomain = wire.NewSet(
	holidayRepository.New,
	holidayService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	policy.NewClock,
	policy.New,
	wire.Bind(new(policy.HolidayFinder), new(holidayRepository.Holiday)),
	bookingService.New,
)

var reportDomain = wire.NewSet(
	reportService.New,
)

var domains = wire.NewSet(
	seatDomain,
	holidayDomain,
	bookingDomain,
	reportDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	seatHandler.New,
	holidayHandler.New,
	adminHandler.New,
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

func InitializeSeeder() *seeder.Seeder {
	wire.Build(
		config.Get,
		postgres.New,
		otel.New,
		redis.New,
		jwt.New,
		sharedHelpers,
		seatDomain,
		holidayDomain,
		seeder.New,
	)

	return &seeder.Seeder{}
}
