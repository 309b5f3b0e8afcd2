package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"language-tutor/config"
	_ "language-tutor/docs" // Swagger docs
	"language-tutor/internal/database"
	"language-tutor/internal/httpserver"
	"language-tutor/pkg/gemini"
	"language-tutor/pkg/log"
)

// @title       Language Tutor API
// @description Conversational language-learning assistant: intent routing, specialist tutors, flashcards and pronunciation analysis backed by Gemini.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
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

	logger.Info(ctx, "Starting Language Tutor...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Store
	db, err := database.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error(ctx, "Failed to connect to database: ", err)
		return
	}
	defer db.Close()

	// 4. Gemini LLM client
	if cfg.Gemini.APIKey == "" {
		logger.Warn(ctx, "GEMINI_API_KEY is missing, chat routes will fail")
	}
	llm := gemini.NewClient(cfg.Gemini.APIKey)
	llm.SetModel(cfg.Gemini.Model)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  db,
		LLM:         llm,
		AppConfig:   cfg,
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

	logger.Info(ctx, "Server stopped gracefully")
}
