//go:build wireinject
// +build wireinject

package di

import (
	"scaffold/config"
	"scaffold/infras/events"
	"scaffold/infras/metrics"
	"scaffold/infras/otel"
	"scaffold/infras/redis"
	itemHandler "scaffold/internal/handlers/item"
	todoHandler "scaffold/internal/handlers/todo"
	"scaffold/shared/cache"
	"scaffold/transport/http"
	"scaffold/transport/http/middleware"
	"scaffold/transport/http/router"

	itemRepository "scaffold/internal/domains/item/repository"
	itemService "scaffold/internal/domains/item/service"
	todoRepository "scaffold/internal/domains/todo/repository"
	todoService "scaffold/internal/domains/todo/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	otel.New,
	redis.New,
	events.New,
	metrics.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var itemDomain = wire.NewSet(
	itemRepository.New,
	itemService.New,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var domains = wire.NewSet(
	itemDomain,
	todoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	itemHandler.New,
	todoHandler.New,
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
