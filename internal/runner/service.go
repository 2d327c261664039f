package runner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ThiagoRGoveia/edge-case-harness/internal/chatbot"
	"github.com/ThiagoRGoveia/edge-case-harness/internal/database"
	"github.com/ThiagoRGoveia/edge-case-harness/internal/models"
	"github.com/ThiagoRGoveia/edge-case-harness/internal/parser"
	"github.com/ThiagoRGoveia/edge-case-harness/pkg/checksum"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InlineMarkers are control tags the chatbot leaves in its answers.
var InlineMarkers = []string{"[OFF_TOPIC]", "[NO_DATA]"}

const previewLength = 50

type Pacer interface {
	Wait(ctx context.Context) error
	Done()
}

type Config struct {
	Version     string
	ResultsFile string
}

type RunnerService struct {
	asker    chatbot.Asker
	pacer    Pacer
	archive  database.DBManager
	logger   *zap.Logger
	config   Config
	newRunID func() string
}

// NewRunnerService builds the batch runner. archive may be nil, in which case
// results only go to the CSV file.
func NewRunnerService(asker chatbot.Asker, pacer Pacer, archive database.DBManager, logger *zap.Logger, cfg Config) *RunnerService {
	return &RunnerService{
		asker:    asker,
		pacer:    pacer,
		archive:  archive,
		logger:   logger,
		config:   cfg,
		newRunID: uuid.NewString,
	}
}

// Execute asks every question in order and writes one record per answered
// question to the results file. A cancelled context stops the batch early; the
// records collected so far are still written and ctx.Err() is returned.
func (s *RunnerService) Execute(ctx context.Context, questions []string) ([]models.TestRecord, models.RunSummary, error) {
	startTime := time.Now()
	summary := models.RunSummary{RunID: s.newRunID()}

	s.logger.Info("Starting edge case run",
		zap.String("run_id", summary.RunID),
		zap.Int("questions", len(questions)),
		zap.String("version", s.config.Version))

	records, runErr := s.askAll(ctx, questions)

	for _, record := range records {
		if record.Failed {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	summary.Total = len(records)

	if err := s.saveResults(records); err != nil {
		summary.Duration = time.Since(startTime)
		return records, summary, err
	}

	s.archiveResults(summary.RunID, records)

	summary.Duration = time.Since(startTime)
	s.logger.Info("Edge case run finished",
		zap.String("run_id", summary.RunID),
		zap.Int("total", summary.Total),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
		zap.Duration("duration", summary.Duration))

	return records, summary, runErr
}

func (s *RunnerService) askAll(ctx context.Context, questions []string) ([]models.TestRecord, error) {
	records := make([]models.TestRecord, 0, len(questions))

	for i, question := range questions {
		if err := s.pacer.Wait(ctx); err != nil {
			s.logger.Warn("Run interrupted", zap.Int("completed", len(records)), zap.Error(err))
			return records, fmt.Errorf("run interrupted after %d questions: %w", len(records), err)
		}

		s.logger.Info("Testing question",
			zap.Int("index", i+1),
			zap.Int("total", len(questions)),
			zap.String("question", Preview(question)))

		result := s.asker.Ask(ctx, question)
		s.pacer.Done()
		record := BuildRecord(question, result, s.config.Version)

		if record.Failed {
			s.logger.Warn("Question failed", zap.Int("index", i+1), zap.String("error", record.Answer))
		} else {
			s.logger.Info("Question answered",
				zap.Int("index", i+1),
				zap.String("answer", Preview(record.Answer)),
				zap.String("model", record.Model))
		}

		records = append(records, record)
	}

	return records, nil
}

func (s *RunnerService) saveResults(records []models.TestRecord) error {
	if err := parser.WriteRecordsFile(s.config.ResultsFile, records); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	sum, err := checksum.GetFileChecksum(s.config.ResultsFile)
	if err != nil {
		s.logger.Warn("Could not checksum results file", zap.String("file", s.config.ResultsFile), zap.Error(err))
	}
	s.logger.Info("Results saved",
		zap.String("file", s.config.ResultsFile),
		zap.Int("rows", len(records)),
		zap.String("checksum", sum))

	return nil
}

func (s *RunnerService) archiveResults(runID string, records []models.TestRecord) {
	if s.archive == nil {
		return
	}

	inserted, err := s.archive.InsertTestRecords(runID, records)
	if err != nil {
		s.logger.Error("Failed to archive results", zap.String("run_id", runID), zap.Error(err))
		return
	}
	s.logger.Info("Results archived", zap.String("run_id", runID), zap.Int64("inserted", inserted))
}

// BuildRecord turns one call result into a record. Markers are stripped from
// successful answers only; error strings are kept verbatim.
func BuildRecord(question string, result models.CallResult, version string) models.TestRecord {
	record := models.TestRecord{
		Question: question,
		Answer:   result.Answer,
		Version:  version,
		Failed:   !result.Success,
	}
	if result.Success {
		record.Answer = StripMarkers(result.Answer)
		record.Model = result.Model
	}
	return record
}

func StripMarkers(answer string) string {
	for _, marker := range InlineMarkers {
		answer = strings.ReplaceAll(answer, marker, "")
	}
	return answer
}

// Preview shortens text for log lines without splitting a multi-byte character.
func Preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewLength {
		return text
	}
	return string(runes[:previewLength]) + "..."
}
