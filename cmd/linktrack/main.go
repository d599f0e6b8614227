package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"linktrack/internal/analytics"
	clickssqlite "linktrack/internal/analytics/repository/sqlite"
	analyticsusecase "linktrack/internal/analytics/usecase"
	"linktrack/internal/cache"
	"linktrack/internal/config"
	"linktrack/internal/database"
	httpdelivery "linktrack/internal/delivery/http"
	"linktrack/internal/eventbus"
	"linktrack/internal/repository"
	linkssqlite "linktrack/internal/repository/sqlite"
	"linktrack/internal/usecase"

	"github.com/redis/go-redis/v9"
	_ "go.uber.org/automaxprocs"
	"go.uber.org/zap"
	_ "modernc.org/sqlite"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatal("failed to load config", zap.String("path", *configPath), zap.Error(err))
	}

	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			logger.Fatal("failed to create data directory", zap.Error(err))
		}
	}

	db, err := database.OpenDB(cfg.Database.Path)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		logger.Fatal("failed to run migrations", zap.Error(err))
	}
	logger.Info("database initialized", zap.String("path", cfg.Database.Path))

	// Redis is optional; without it the resolver reads straight from SQLite.
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warn("redis unreachable, running without cache", zap.Error(err))
			rdb = nil
		}
	}

	wmLogger := eventbus.NewZapLoggerAdapter(logger)
	bus := eventbus.NewEventBus(wmLogger)
	defer bus.Close()

	linkRepo := repository.NewCachedLinkRepository(
		linkssqlite.NewLinkRepository(db),
		cache.NewRedisLinkCache(rdb, logger),
	)
	clickRepo := clickssqlite.NewClickRepository(db)

	linkService := usecase.NewLinkService(linkRepo, bus, logger, cfg.Server.BaseURL)
	resolver := usecase.NewResolver(linkRepo, bus, logger)
	statsService := analyticsusecase.NewStatsService(clickRepo)

	busRouter, err := eventbus.NewRouter(bus, wmLogger)
	if err != nil {
		logger.Fatal("failed to create event router", zap.Error(err))
	}
	busRouter.AddHandler(usecase.NewLoggingEventHandler(logger))
	busRouter.AddHandler(analytics.NewClickRecorder(clickRepo, logger))

	go func() {
		if err := busRouter.Run(context.Background()); err != nil {
			logger.Error("event router stopped", zap.Error(err))
		}
	}()
	<-busRouter.Running()

	handler := httpdelivery.NewHandler(linkService, resolver, statsService, logger)
	router := httpdelivery.NewRouter(handler, logger, httpdelivery.RouterConfig{
		JWTSecret:         []byte(cfg.Auth.JWTSecret),
		RequestsPerMinute: cfg.Server.RequestsPerMinute,
	})

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	go func() {
		logger.Info("server starting",
			zap.String("addr", cfg.Server.Addr),
			zap.String("base_url", cfg.Server.BaseURL),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("server shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	// Let in-flight click side effects land before the bus goes away.
	resolver.Wait()

	if err := busRouter.Close(); err != nil {
		logger.Error("failed to close event router", zap.Error(err))
	}

	logger.Info("server stopped")
}
