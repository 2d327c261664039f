package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/ThiagoRGoveia/edge-case-harness/internal/config"
	"github.com/ThiagoRGoveia/edge-case-harness/internal/database"
	"github.com/ThiagoRGoveia/edge-case-harness/internal/logging"
	"github.com/ThiagoRGoveia/edge-case-harness/internal/server"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if !cfg.ArchiveEnabled() {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	dbpool, err := database.ConnectDB(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("Failed to connect to the database", zap.Error(err))
	}
	defer dbpool.Close()

	dbManager := database.NewPostgresDBManager(context.Background(), dbpool)
	router := server.SetupRoutes(server.NewResultsService(dbManager, logger))

	logger.Info("Server starting", zap.String("port", cfg.APIPort))
	if err := http.ListenAndServe(fmt.Sprintf(":%s", cfg.APIPort), router); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
