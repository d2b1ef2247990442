package main

import (
	"log"

	"systemprompthub/config"
	"systemprompthub/internal/api"
	"systemprompthub/pkg/logger"
)

// @title SystemPromptHub API
// @version 1.0
// @description Directory service for browsing, searching, and submitting system prompts.

// @host localhost:8080
// @BasePath /api

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	err = logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	})
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter(cfg)
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	if err := router.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
