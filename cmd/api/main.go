package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	httptransport "github.com/spec-kit/coworker-service/internal/api/http"
	"github.com/spec-kit/coworker-service/internal/api/http/handlers"
	"github.com/spec-kit/coworker-service/internal/config"
	"github.com/spec-kit/coworker-service/internal/events"
	"github.com/spec-kit/coworker-service/internal/observability"
	"github.com/spec-kit/coworker-service/internal/persistence"
	"github.com/spec-kit/coworker-service/internal/repository"
	"github.com/spec-kit/coworker-service/internal/service"
	"github.com/spec-kit/coworker-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger, cfg.App)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	var (
		coworkerRepo   repository.CoworkerRepository
		departmentRepo repository.DepartmentRepository
		readiness      = map[string]handlers.Pinger{}
	)
	if pg.Enabled() {
		pool := pg.PoolHandle()
		coworkerRepo = repository.NewCoworkerRepository(pool)
		departmentRepo = repository.NewDepartmentRepository(pool)
		readiness["postgres"] = pg
	} else {
		store := repository.NewMemoryStore()
		coworkerRepo = store.Coworkers()
		departmentRepo = store.Departments()
	}
	if redis.Handle() != nil {
		readiness["redis"] = redis
	}

	metrics := observability.NewMetrics("coworkers")
	dispatcher := events.NewInMemoryDispatcher(logger.Named("events"))
	worker.StartNotificationWorker(dispatcher, logger, metrics)

	coworkerService := service.NewCoworkerService(service.CoworkerDependencies{
		CoworkerRepo:   coworkerRepo,
		DepartmentRepo: departmentRepo,
		Cache:          service.NewDepartmentCache(redis.Handle(), cfg.Cache.DepartmentsTTL(), logger.Named("cache")),
		Dispatcher:     dispatcher,
	})

	app := httptransport.NewApp(cfg.App.Name)
	httptransport.RegisterMiddlewares(app, httptransport.MiddlewareConfig{
		Logger:  logger,
		Metrics: metrics,
		Timeout: cfg.App.RequestTimeout(),
		CORS:    cfg.CORS,
	})

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:    handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, readiness),
		Coworkers: handlers.NewCoworkersHandler(coworkerService),
		Metrics:   metrics.Handler(),
	})

	go func() {
		logger.Info("listening", zap.String("addr", cfg.App.Addr()))
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
