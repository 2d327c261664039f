package uploader

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/ThiagoRGoveia/edge-case-harness/internal/models"
	"github.com/ThiagoRGoveia/edge-case-harness/internal/pacing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// MockUploader is a mock implementation of the Uploader interface.
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) Upload(ctx context.Context, payload models.UploadPayload) error {
	args := m.Called(ctx, payload)
	return args.Error(0)
}

func newRecords(n int) []models.TestRecord {
	records := make([]models.TestRecord, 0, n)
	for i := 1; i <= n; i++ {
		records = append(records, models.TestRecord{
			Question: fmt.Sprintf("q%d", i),
			Answer:   fmt.Sprintf("a%d", i),
			Version:  "ver1.0",
		})
	}
	return records
}

func newTestService(uploader Uploader, pacer Pacer, logger *zap.Logger) *UploadService {
	service := NewUploadService(uploader, pacer, logger, "EdgeCaseTest")
	service.now = func() time.Time { return time.Date(2026, 10, 19, 14, 5, 9, 0, time.Local) }
	return service
}

func TestUploadService_Execute(t *testing.T) {
	t.Run("uploads every row in order", func(t *testing.T) {
		uploader := new(MockUploader)
		var order []string
		uploader.On("Upload", mock.Anything, mock.AnythingOfType("models.UploadPayload")).
			Run(func(args mock.Arguments) {
				payload := args.Get(1).(models.UploadPayload)
				assert.Equal(t, "EdgeCaseTest", payload.SheetName)
				assert.Equal(t, "2026-10-19 14:05:09", payload.Timestamp)
				order = append(order, payload.Question)
			}).
			Return(nil)
		service := newTestService(uploader, pacing.New(0), zap.NewNop())

		stats, err := service.Execute(context.Background(), newRecords(3))

		require.NoError(t, err)
		assert.Equal(t, []string{"q1", "q2", "q3"}, order)
		assert.Equal(t, models.UploadStats{Total: 3, Succeeded: 3}, stats)
	})

	t.Run("failed rows are counted and skipped", func(t *testing.T) {
		uploader := new(MockUploader)
		uploadErr := errors.New("connection reset")
		uploader.On("Upload", mock.Anything, mock.MatchedBy(func(p models.UploadPayload) bool { return p.Question == "q2" })).Return(uploadErr).Once()
		uploader.On("Upload", mock.Anything, mock.Anything).Return(nil)
		service := newTestService(uploader, pacing.New(0), zap.NewNop())

		stats, err := service.Execute(context.Background(), newRecords(3))

		require.NoError(t, err)
		assert.Equal(t, 3, stats.Total)
		assert.Equal(t, 2, stats.Succeeded)
		assert.Equal(t, 1, stats.Failed)
		require.Len(t, stats.Errors, 1)
		assert.Equal(t, 2, stats.Errors[0].Index)
		assert.ErrorIs(t, &stats.Errors[0], uploadErr)
		uploader.AssertNumberOfCalls(t, "Upload", 3)
	})

	t.Run("truncates long answers in the outgoing payload", func(t *testing.T) {
		uploader := new(MockUploader)
		uploader.On("Upload", mock.Anything, mock.MatchedBy(func(p models.UploadPayload) bool {
			return len([]rune(p.Answer)) == MaxAnswerLength
		})).Return(nil).Once()
		service := newTestService(uploader, pacing.New(0), zap.NewNop())

		records := []models.TestRecord{{Question: "q", Answer: strings.Repeat("가", 2500), Version: "ver1.0"}}
		stats, err := service.Execute(context.Background(), records)

		require.NoError(t, err)
		assert.Equal(t, 1, stats.Succeeded)
		uploader.AssertExpectations(t)
	})

	t.Run("reports progress every ten rows", func(t *testing.T) {
		uploader := new(MockUploader)
		uploader.On("Upload", mock.Anything, mock.Anything).Return(nil)
		core, logs := observer.New(zapcore.InfoLevel)
		service := newTestService(uploader, pacing.New(0), zap.New(core))

		_, err := service.Execute(context.Background(), newRecords(25))

		require.NoError(t, err)
		progress := logs.FilterMessage("Upload progress").All()
		require.Len(t, progress, 2)
		assert.Equal(t, int64(10), progress[0].ContextMap()["done"])
		assert.Equal(t, int64(20), progress[1].ContextMap()["done"])
	})

	t.Run("waits the interval after each slow upload", func(t *testing.T) {
		interval := 50 * time.Millisecond
		var starts, ends []time.Time
		uploader := new(MockUploader)
		uploader.On("Upload", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			starts = append(starts, time.Now())
			time.Sleep(80 * time.Millisecond)
			ends = append(ends, time.Now())
		}).Return(nil)
		service := newTestService(uploader, pacing.New(interval), zap.NewNop())

		stats, err := service.Execute(context.Background(), newRecords(3))

		require.NoError(t, err)
		assert.Equal(t, 3, stats.Succeeded)
		require.Len(t, starts, 3)
		for i := 1; i < len(starts); i++ {
			assert.GreaterOrEqual(t, starts[i].Sub(ends[i-1]), interval-5*time.Millisecond)
		}
	})

	t.Run("cancelled context stops the batch", func(t *testing.T) {
		uploader := new(MockUploader)
		ctx, cancel := context.WithCancel(context.Background())
		uploader.On("Upload", mock.Anything, mock.Anything).Run(func(args mock.Arguments) { cancel() }).Return(nil).Once()
		service := newTestService(uploader, pacing.New(0), zap.NewNop())

		stats, err := service.Execute(ctx, newRecords(5))

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, stats.Succeeded)
		uploader.AssertExpectations(t)
	})
}
