//go:build wireinject
// +build wireinject

package di

import (
	"hotelier/config"
	"hotelier/infras/jwt"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/infras/redis"
	"hotelier/permissions"
	"hotelier/shared/cache"
	"hotelier/transport/http"
	"hotelier/transport/http/middleware"
	"hotelier/transport/http/router"

	bookingRepository "hotelier/internal/domains/booking/repository"
	bookingService "hotelier/internal/domains/booking/service"
	customerRepository "hotelier/internal/domains/customer/repository"
	employeeRepository "hotelier/internal/domains/employee/repository"
	hotelRepository "hotelier/internal/domains/hotel/repository"
	hotelService "hotelier/internal/domains/hotel/service"
	paymentRepository "hotelier/internal/domains/payment/repository"
	rentingRepository "hotelier/internal/domains/renting/repository"
	rentingService "hotelier/internal/domains/renting/service"
	roomRepository "hotelier/internal/domains/room/repository"
	roomService "hotelier/internal/domains/room/service"

	"github.com/google/wire"

	authService "hotelier/internal/domains/auth/service"
	authHandler "hotelier/internal/handlers/auth"
	bookingHandler "hotelier/internal/handlers/booking"
	dashboardHandler "hotelier/internal/handlers/dashboard"
	hotelHandler "hotelier/internal/handlers/hotel"
	roomHandler "hotelier/internal/handlers/room"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.TxRunner), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	permissions.Get,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var hotelDomain = wire.NewSet(
	hotelRepository.New,
	hotelService.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	rentingRepository.New,
	paymentRepository.New,
	bookingService.New,
	rentingService.New,
)

var authDomain = wire.NewSet(
	customerRepository.New,
	employeeRepository.New,
	authService.New,
)

var domains = wire.NewSet(
	hotelDomain,
	roomDomain,
	bookingDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	hotelHandler.New,
	roomHandler.New,
	bookingHandler.New,
	dashboardHandler.New,
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
