package uploader

import (
	"context"
	"fmt"
	"time"

	"github.com/ThiagoRGoveia/edge-case-harness/internal/models"
	"go.uber.org/zap"
)

const progressEvery = 10

type Pacer interface {
	Wait(ctx context.Context) error
	Done()
}

type UploadService struct {
	uploader  Uploader
	pacer     Pacer
	logger    *zap.Logger
	sheetName string
	now       func() time.Time
}

func NewUploadService(uploader Uploader, pacer Pacer, logger *zap.Logger, sheetName string) *UploadService {
	return &UploadService{
		uploader:  uploader,
		pacer:     pacer,
		logger:    logger,
		sheetName: sheetName,
		now:       time.Now,
	}
}

// Execute uploads every record in order. A failed upload is counted, logged and
// skipped. Only a cancelled context ends the batch early.
func (s *UploadService) Execute(ctx context.Context, records []models.TestRecord) (models.UploadStats, error) {
	stats := models.UploadStats{Total: len(records)}

	s.logger.Info("Uploading records",
		zap.Int("records", len(records)),
		zap.String("sheet", s.sheetName))

	for i, record := range records {
		idx := i + 1
		if err := s.pacer.Wait(ctx); err != nil {
			s.logger.Warn("Upload interrupted", zap.Int("completed", i), zap.Error(err))
			return stats, fmt.Errorf("upload interrupted after %d rows: %w", i, err)
		}

		payload := NewPayload(s.sheetName, record, s.now())
		err := s.uploader.Upload(ctx, payload)
		s.pacer.Done()
		if err != nil {
			stats.Failed++
			rowErr := models.RowError{Index: idx, Message: "Failed to upload row", Err: err, Record: &records[i]}
			stats.Errors = append(stats.Errors, rowErr)
			s.logger.Error("Upload failed", zap.Int("index", idx), zap.Error(err))
		} else {
			stats.Succeeded++
		}

		if idx%progressEvery == 0 {
			s.logger.Info("Upload progress",
				zap.Int("done", idx),
				zap.Int("total", len(records)),
				zap.Int("succeeded", stats.Succeeded),
				zap.Int("failed", stats.Failed))
		}
	}

	s.logger.Info("Upload finished",
		zap.Int("succeeded", stats.Succeeded),
		zap.Int("failed", stats.Failed))

	return stats, nil
}
