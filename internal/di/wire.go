//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
	"github.com/google/wire"
	"go.uber.org/mock/gomock"

	"github.com/zetherabarter/Rec-Backend2/internal/cache"
	cfg "github.com/zetherabarter/Rec-Backend2/internal/config"
	"github.com/zetherabarter/Rec-Backend2/internal/controllers"
	"github.com/zetherabarter/Rec-Backend2/internal/mail"
	"github.com/zetherabarter/Rec-Backend2/internal/middleware"
	pg "github.com/zetherabarter/Rec-Backend2/internal/registry/postgres"
	"github.com/zetherabarter/Rec-Backend2/internal/routes"
	tcfg "github.com/zetherabarter/Rec-Backend2/internal/testutils/config"
	mk "github.com/zetherabarter/Rec-Backend2/internal/testutils/mocks"
)

var PostgresSet = wire.NewSet(
	pg.NewPostgresRegistry,
	wire.Bind(new(routes.Registry), new(*pg.Registry)),
	wire.Bind(new(mail.SummaryStore), new(*pg.Registry)),
)

var RedisSet = wire.NewSet(
	cache.NewRedisClient,
)

var RedisCacheSet = wire.NewSet(
	cache.NewRedisCache,
	wire.Bind(new(cache.Cache), new(*cache.Redis)),
)

var MailSet = wire.NewSet(
	mail.NewSMTP,
	wire.Bind(new(mail.Transport), new(*mail.SMTP)),
	mail.NewDispatcher,
	wire.Bind(new(controllers.EmailDispatcher), new(*mail.Dispatcher)),
	mail.NewRecorder,
	wire.Bind(new(controllers.SummaryRecorder), new(*mail.Recorder)),
)

var RedisRateSet = wire.NewSet(
	middleware.NewRedisLimiter,
	wire.Bind(new(middleware.RateLimiter), new(*redis_rate.Limiter)),
)

var MiddlewareSet = wire.NewSet(
	RedisRateSet,
	wire.Struct(new(middleware.RateLimitCfg), "*"),
	wire.Struct(new(middleware.CacheCfg), "*"),
	middleware.NewRateLimitMiddleware,
	middleware.NewCacheMiddleware,
)

var EnvConfigSet = wire.NewSet(
	cfg.NewEnvConfig,
	wire.Bind(new(pg.PostgresConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(cache.RedisConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(mail.SMTPConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(mail.DispatcherConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(routes.EngineConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(middleware.CacheConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(middleware.RateLimitConfigurator), new(*cfg.EnvConfig)),
)

var MockedRegistrySet = wire.NewSet(
	mk.NewMockEmailRegistry,
	mk.NewMockApplicantRegistry,
	mk.NewMockedRegistry,
	wire.Bind(new(routes.Registry), new(*mk.MockedRegistry)),
)

var MockedDispatcherSet = wire.NewSet(
	mk.NewMockEmailDispatcher,
	wire.Bind(new(controllers.EmailDispatcher), new(*mk.MockEmailDispatcher)),
)

var MockedRecorderSet = wire.NewSet(
	mk.NewMockSummaryRecorder,
	wire.Bind(new(controllers.SummaryRecorder), new(*mk.MockSummaryRecorder)),
)

var MockedMiddlewareSet = wire.NewSet(
	mk.NewTestCacheMiddleware,
	mk.NewTestRateLimitMiddleware,
)

var TestVersionConfiguratorSet = wire.NewSet(
	tcfg.NewTestVersionConfigurator,
	wire.Bind(new(routes.EngineConfigurator), new(tcfg.TestEngineConfigurator)),
)

var EngineConfigSet = wire.NewSet(
	wire.Struct(new(routes.EngineConfig), "*"),
)

func InjectBackend(ctx context.Context, envfile *string) (*gin.Engine, error) {

	wire.Build(
		EnvConfigSet,
		PostgresSet,
		RedisSet,
		RedisCacheSet,
		MailSet,
		MiddlewareSet,
		EngineConfigSet,
		routes.NewEngine,
	)

	return nil, nil
}

func InjectMockedBackend(ctx context.Context, mockController *gomock.Controller) (*MockedBackend, error) {

	wire.Build(
		TestVersionConfiguratorSet,
		MockedRegistrySet,
		MockedDispatcherSet,
		MockedRecorderSet,
		MockedMiddlewareSet,
		EngineConfigSet,
		routes.NewEngine,
		wire.Struct(new(MockedBackend), "*"),
	)

	return nil, nil
}
