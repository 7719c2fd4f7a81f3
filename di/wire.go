//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"digitalpage/config"
	"digitalpage/infras/database"
	"digitalpage/infras/jwt"
	"digitalpage/infras/objectstore"
	"digitalpage/infras/otel"
	"digitalpage/infras/redis"
	"digitalpage/shared/cache"
	"digitalpage/transport/http"
	"digitalpage/transport/http/middleware"
	"digitalpage/transport/http/router"

	bookingRepository "digitalpage/internal/domains/booking/repository"
	bookingService "digitalpage/internal/domains/booking/service"
	orderRepository "digitalpage/internal/domains/order/repository"
	orderService "digitalpage/internal/domains/order/service"

	bookingHandler "digitalpage/internal/handlers/booking"
	orderHandler "digitalpage/internal/handlers/order"
	ownerHandler "digitalpage/internal/handlers/owner"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	database.New,
	objectstore.New,
	otel.New,
	redis.New,
	jwt.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewOwnerAuthMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var orderDomain = wire.NewSet(
	orderRepository.New,
	orderService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
)

var domains = wire.NewSet(
	orderDomain,
	bookingDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	orderHandler.New,
	bookingHandler.New,
	ownerHandler.New,
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
