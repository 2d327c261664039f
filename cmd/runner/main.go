package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThiagoRGoveia/edge-case-harness/internal/chatbot"
	"github.com/ThiagoRGoveia/edge-case-harness/internal/config"
	"github.com/ThiagoRGoveia/edge-case-harness/internal/database"
	"github.com/ThiagoRGoveia/edge-case-harness/internal/logging"
	"github.com/ThiagoRGoveia/edge-case-harness/internal/pacing"
	"github.com/ThiagoRGoveia/edge-case-harness/internal/questions"
	"github.com/ThiagoRGoveia/edge-case-harness/internal/runner"
	"github.com/ThiagoRGoveia/edge-case-harness/internal/sheets"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

func setup(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*runner.RunnerService, func(), error) {
	if len(os.Args) > 1 {
		cfg.ResultsFile = os.Args[1]
	}

	cleanupFunc := func() {}
	var archive database.DBManager
	if cfg.ArchiveEnabled() {
		dbpool, err := database.ConnectDB(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("unable to connect to database: %w", err)
		}
		dbManager := database.NewPostgresDBManager(ctx, dbpool)
		if err := dbManager.CreateTestRecordsTable(); err != nil {
			dbpool.Close()
			return nil, nil, err
		}
		archive = dbManager
		cleanupFunc = dbpool.Close
	}

	service := runner.NewRunnerService(
		chatbot.NewClient(cfg.ChatbotURL, cfg.ChatbotTimeout),
		pacing.New(cfg.ChatbotInterval),
		archive,
		logger,
		runner.Config{Version: cfg.Version, ResultsFile: cfg.ResultsFile},
	)

	return service, cleanupFunc, nil
}

// checkSheet warns when the target sheet is missing. It never stops the run.
func checkSheet(ctx context.Context, cfg *config.Config, logger *zap.Logger) {
	if !cfg.SheetCheckEnabled() {
		logger.Info("Skipping spreadsheet check, SHEETS_API_KEY is not set")
		return
	}

	checker, err := sheets.NewChecker(ctx, cfg.SpreadsheetID, option.WithAPIKey(cfg.SheetsAPIKey))
	if err != nil {
		logger.Error("Could not create sheets client", zap.Error(err))
		return
	}

	exists, titles, err := checker.SheetExists(ctx, cfg.CheckSheetName)
	if err != nil {
		logger.Error("Spreadsheet lookup failed", zap.Error(err))
		return
	}
	logger.Info("Current sheets", zap.Strings("titles", titles))
	if !exists {
		logger.Warn("Target sheet is missing, create it manually", zap.String("sheet", cfg.CheckSheetName))
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: could not load .env file: %v", err)
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	checkSheet(ctx, cfg, logger)

	for _, category := range questions.Categories() {
		logger.Info("Question category", zap.String("name", category.Name), zap.Int("questions", len(category.Questions)))
	}

	service, cleanupFunc, err := setup(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Setup failed", zap.Error(err))
	}
	defer cleanupFunc()

	_, summary, err := service.Execute(ctx, questions.EdgeCases())
	if err != nil {
		logger.Error("Run did not complete", zap.Error(err))
	}

	logger.Info("Summary",
		zap.Int("total", summary.Total),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
		zap.String("results_file", cfg.ResultsFile))
	logger.Info("Paste the results file into the target sheet or run the uploader",
		zap.String("sheet", cfg.CheckSheetName))
}
