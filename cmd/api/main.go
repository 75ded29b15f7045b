package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-assistant/config"
	_ "task-assistant/docs" // Swagger docs
	"task-assistant/internal/assistant"
	assistantUC "task-assistant/internal/assistant/usecase"
	"task-assistant/internal/httpserver"
	"task-assistant/pkg/log"
	"task-assistant/pkg/sqldb"
)

// @title       Task Assistant API
// @description Task CRUD with free-text parsing, priority/schedule suggestions and an agent chat endpoint.
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

	logger.Info(ctx, "Starting Task Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Database
	db, err := sqldb.Open(ctx, cfg.Database.URL)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database: %v", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "Database ready (%s)", db.Dialect)

	// 4. Assistant provider, chosen once for the whole process
	asst := assistantUC.NewFromConfig(ctx, logger, cfg.LLM)
	if err := assistant.Init(asst); err != nil {
		logger.Errorf(ctx, "Failed to register assistant: %v", err)
		return
	}
	provider, err := assistant.Default()
	if err != nil {
		logger.Errorf(ctx, "Failed to resolve assistant: %v", err)
		return
	}
	logger.Infof(ctx, "Assistant mode: %s", provider.Mode())

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:                logger,
		Port:                  cfg.HTTPServer.Port,
		Mode:                  cfg.HTTPServer.Mode,
		Environment:           cfg.Environment.Name,
		CORS:                  cfg.CORS,
		RateLimit:             cfg.RateLimit,
		DB:                    db,
		Assistant:             provider,
		EnableAgenticBehavior: cfg.Agent.EnableAgenticBehavior,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(context.WithoutCancel(ctx), "Server stopped gracefully")
}
