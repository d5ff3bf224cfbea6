package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"travelweather/internal/api"
	"travelweather/internal/cache"
	"travelweather/internal/config"
	"travelweather/internal/scheduler"
	"travelweather/internal/services"
	"travelweather/pkg/client"

	"github.com/gofiber/fiber/v2"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	zap.ReplaceGlobals(logger)
	logger.Info("Starting travel weather service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Backend API client
	backend := client.NewForecastClient(cfg.Backend.BaseURL, client.ClientConfig{
		Timeout:        cfg.Backend.Timeout,
		MaxRetries:     cfg.Retry.MaxRetries,
		RetryDelay:     cfg.Retry.Delay,
		Multiplier:     cfg.Retry.Multiplier,
		BreakerTimeout: cfg.CircuitBreaker.Timeout,
	}, logger)

	// Cache backend
	store := newStore(cfg, logger)

	// Core pipeline
	fetcher := services.NewFetcher(backend, store, cfg.Cache.TTL, logger)
	compare := services.NewCompareCoordinator(fetcher, logger)

	// Prefetch scheduler
	prefetcher := scheduler.NewPrefetcher(fetcher, cfg.Scheduler.DefaultLocations, cfg.Scheduler.PrefetchSpec, logger)
	if err := prefetcher.Start(); err != nil {
		logger.Fatal("Failed to start prefetcher", zap.Error(err))
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: errorHandler,
	})

	handler := api.NewHandler(fetcher, compare, backend, logger)
	api.SetupRoutes(app, handler)

	// Start server in goroutine
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("Starting server", zap.String("address", addr))

		if err := app.Listen(addr); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	prefetcher.Stop()

	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped")
}

func newStore(cfg *config.Config, logger *zap.Logger) cache.Store {
	switch cfg.Cache.Backend {
	case "file":
		logger.Info("Using file cache", zap.String("dir", cfg.Cache.Dir))
		return cache.NewFileStore(cfg.Cache.Dir, logger)
	case "redis":
		logger.Info("Using redis cache", zap.String("addr", cfg.Cache.RedisAddr))
		rdb := goredis.NewClient(&goredis.Options{
			Addr: cfg.Cache.RedisAddr,
			DB:   cfg.Cache.RedisDB,
		})
		return cache.NewRedisStore(rdb, cfg.Cache.RedisExpiry, logger)
	default:
		logger.Info("Using in-memory cache")
		return cache.NewMemoryStore(logger)
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	zap.L().Error("HTTP error",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err))

	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   err.Error(),
		"success": false,
	})
}
