package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"task-intent/config"
	_ "task-intent/docs" // Swagger docs
	"task-intent/internal/httpserver"
	"task-intent/internal/intent/usecase"
	"task-intent/internal/middleware"
	"task-intent/pkg/datemath"
	"task-intent/pkg/log"
)

// @title       Task Intent API
// @description Rule-based natural-language task parsing with due date, priority and grouping suggestions.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Task Intent API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Clock: relative dates resolve in the configured zone
	clock, err := datemath.NewSystemClock(cfg.Parser.Timezone)
	if err != nil {
		logger.Errorf(ctx, "Invalid timezone: %v", err)
		os.Exit(1)
	}
	logger.Infof(ctx, "Parser timezone: %s", cfg.Parser.Timezone)

	// 4. Intent domain
	intentUC := usecase.New(logger, clock, usecase.Options{
		MaxInputLength:   cfg.Parser.MaxInputLength,
		MaxBatchSize:     cfg.Parser.MaxBatchSize,
		BatchConcurrency: cfg.Parser.BatchConcurrency,
		CacheSize:        cfg.Parser.CacheSize,
		CacheTTL:         cfg.Parser.CacheTTL,
	})

	mw := middleware.New(logger, middleware.Config{
		Enabled:        cfg.RateLimit.Enabled,
		RequestsPerMin: cfg.RateLimit.RequestsPerMin,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ShutdownTimeout: cfg.HTTPServer.ShutdownTimeout,
		IntentUseCase:   intentUC,
		Middleware:      mw,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run until SIGINT/SIGTERM
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
