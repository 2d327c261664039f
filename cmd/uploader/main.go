package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThiagoRGoveia/edge-case-harness/internal/config"
	"github.com/ThiagoRGoveia/edge-case-harness/internal/logging"
	"github.com/ThiagoRGoveia/edge-case-harness/internal/pacing"
	"github.com/ThiagoRGoveia/edge-case-harness/internal/parser"
	"github.com/ThiagoRGoveia/edge-case-harness/internal/uploader"
	"github.com/ThiagoRGoveia/edge-case-harness/pkg/checksum"
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
	if len(os.Args) > 1 {
		cfg.ResultsFile = os.Args[1]
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	records, err := parser.ReadRecordsFile(cfg.ResultsFile)
	if err != nil {
		logger.Fatal("Failed to load results", zap.Error(err))
	}
	sum, err := checksum.GetFileChecksum(cfg.ResultsFile)
	if err != nil {
		logger.Warn("Could not checksum results file", zap.Error(err))
	}
	logger.Info("Results loaded",
		zap.String("file", cfg.ResultsFile),
		zap.Int("rows", len(records)),
		zap.String("checksum", sum))

	if cfg.UploadStrict {
		logger.Info("Strict mode: non-2xx responses count as failures")
	}

	service := uploader.NewUploadService(
		uploader.NewClient(cfg.AppsScriptURL, cfg.UploadTimeout, cfg.UploadStrict),
		pacing.New(cfg.UploadInterval),
		logger,
		cfg.UploadSheetName,
	)

	stats, err := service.Execute(ctx, records)
	if err != nil {
		logger.Error("Upload did not complete", zap.Error(err))
	}

	logger.Info("Upload summary",
		zap.Int("succeeded", stats.Succeeded),
		zap.Int("failed", stats.Failed))
}
