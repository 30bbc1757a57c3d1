package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/nordcrm/nordcrm/modules/auth"
	"github.com/nordcrm/nordcrm/modules/customers"
	"github.com/nordcrm/nordcrm/pkg/config"
	"github.com/nordcrm/nordcrm/pkg/guard"
	"github.com/nordcrm/nordcrm/pkg/httpserver"
	"github.com/nordcrm/nordcrm/pkg/logger"
	"github.com/nordcrm/nordcrm/pkg/mongo"
	"github.com/nordcrm/nordcrm/pkg/pg"
	"github.com/nordcrm/nordcrm/pkg/redis"
	"github.com/nordcrm/nordcrm/pkg/storage"
	"github.com/nordcrm/nordcrm/pkg/tenant"
	"github.com/nordcrm/nordcrm/pkg/tenant/pgstore"
	"github.com/nordcrm/nordcrm/pkg/token"
)

type appConfig struct {
	AppName     string `env:"APP_NAME" envDefault:"nordcrm"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var appCfg appConfig
	config.MustLoad(&appCfg)

	log := newLogger(appCfg)
	logger.SetAsDefault(log)

	if err := run(ctx, appCfg, log); err != nil {
		log.ErrorContext(ctx, "server exited with error", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context, appCfg appConfig, log *slog.Logger) error {
	var (
		pgCfg    pg.Config
		redisCfg redis.Config
		mongoCfg mongo.Config
		tokenCfg token.Config
		httpCfg  httpserver.Config
	)
	config.MustLoad(&pgCfg)
	config.MustLoad(&redisCfg)
	config.MustLoad(&mongoCfg)
	config.MustLoad(&tokenCfg)
	config.MustLoad(&httpCfg)

	pool, err := pg.Connect(ctx, pgCfg)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, pgCfg, log); err != nil {
		return err
	}

	redisClient, err := redis.Connect(ctx, redisCfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	mongoClient, err := mongo.New(ctx, mongoCfg)
	if err != nil {
		return err
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	codec, err := token.NewFromConfig(tokenCfg)
	if err != nil {
		return err
	}

	registry := pgstore.New(pool)
	loader := tenant.NewLoader(registry,
		tenant.WithCache(tenant.NewRedisCache(redisClient, "")),
		tenant.WithLogger(log),
	)
	resolver := tenant.NewResolver(loader)
	storageRouter := storage.NewRouter(mongoClient)
	requestGuard := guard.New(codec, resolver, storageRouter)

	authSvc := auth.NewService(auth.NewPGStore(pool), codec, auth.WithLogger(log))
	customerHandler := customers.NewHandler(customers.NewService(), log)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)

	r.Route("/api", func(api chi.Router) {
		api.Get("/health", httpserver.HealthCheckHandler(ctx, log,
			pg.Healthcheck(pool),
			redis.Healthcheck(redisClient),
			mongo.Healthcheck(mongoClient),
		))
		api.Mount("/auth", authSvc.Handle())

		api.Route("/{tenantSlug}", func(scoped chi.Router) {
			scoped.Use(guard.Middleware(requestGuard, guard.DefaultErrorHandler))
			scoped.Mount("/customers", customerHandler.Handle())
		})
	})

	srv := httpserver.NewFromConfig(httpCfg,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger) {
			l.InfoContext(ctx, "server listening", slog.String("addr", httpCfg.Addr))
		}),
		httpserver.WithStopHook(func(l *slog.Logger) {
			l.InfoContext(ctx, "server stopped")
		}),
	)
	return srv.Run(ctx, r)
}

func newLogger(cfg appConfig) *slog.Logger {
	opts := []logger.Option{
		logger.WithService(cfg.AppName),
		logger.WithLevel(parseLevel(cfg.LogLevel)),
		logger.WithContextExtractors(tenant.LoggerExtractor()),
	}
	if cfg.Environment == "development" {
		opts = append(opts, logger.WithDevelopment())
	}
	return logger.New(opts...)
}

func parseLevel(raw string) slog.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
