//go:build wireinject
// +build wireinject

package di

import (
	"checkinhq/config"
	"checkinhq/infras/jwt"
	"checkinhq/infras/kafka"
	"checkinhq/infras/otel"
	"checkinhq/infras/pesapal"
	"checkinhq/infras/postgres"
	"checkinhq/infras/redis"
	"checkinhq/permissions"
	"checkinhq/shared/cache"
	"checkinhq/transport/http"
	"checkinhq/transport/http/middleware"
	"checkinhq/transport/http/router"

	"github.com/google/wire"

	analyticsRepository "checkinhq/internal/domains/analytics/repository"
	analyticsService "checkinhq/internal/domains/analytics/service"
	authService "checkinhq/internal/domains/auth/service"
	bookingRepository "checkinhq/internal/domains/booking/repository"
	bookingService "checkinhq/internal/domains/booking/service"
	noteRepository "checkinhq/internal/domains/note/repository"
	paymentRepository "checkinhq/internal/domains/payment/repository"
	paymentService "checkinhq/internal/domains/payment/service"
	subscriptionService "checkinhq/internal/domains/subscription/service"
	userRepository "checkinhq/internal/domains/user/repository"

	analyticsHandler "checkinhq/internal/handlers/analytics"
	authHandler "checkinhq/internal/handlers/auth"
	bookingHandler "checkinhq/internal/handlers/booking"
	paymentHandler "checkinhq/internal/handlers/payment"
	subscriptionHandler "checkinhq/internal/handlers/subscription"
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
	pesapal.New,
	permissions.Get,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
	middleware.NewSubscriptionMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var subscriptionDomain = wire.NewSet(
	subscriptionService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	noteRepository.New,
	bookingService.New,
)

var analyticsDomain = wire.NewSet(
	analyticsRepository.New,
	analyticsService.New,
)

var paymentDomain = wire.NewSet(
	paymentRepository.New,
	paymentService.New,
)

var domains = wire.NewSet(
	authDomain,
	subscriptionDomain,
	bookingDomain,
	analyticsDomain,
	paymentDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	analyticsHandler.New,
	subscriptionHandler.New,
	paymentHandler.New,
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
