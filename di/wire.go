//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"lodgedesk/config"
	"lodgedesk/infras/dynamodb"
	"lodgedesk/infras/otel"
	"lodgedesk/infras/redis"
	customerRepository "lodgedesk/internal/domains/customer/repository"
	customerService "lodgedesk/internal/domains/customer/service"
	sessionRepository "lodgedesk/internal/domains/session/repository"
	dashboardHandler "lodgedesk/internal/handlers/dashboard"
	healthHandler "lodgedesk/internal/handlers/health"
	"lodgedesk/shared/cache"
	"lodgedesk/transport/http"
	"lodgedesk/transport/http/middleware"
	"lodgedesk/transport/http/router"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	dynamodb.New,
	otel.New,
	redis.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var sessionDomain = wire.NewSet(
	sessionRepository.New,
)

var domains = wire.NewSet(
	customerDomain,
	sessionDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	dashboardHandler.New,
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
