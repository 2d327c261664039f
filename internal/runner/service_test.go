package runner

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/ThiagoRGoveia/edge-case-harness/internal/models"
	"github.com/ThiagoRGoveia/edge-case-harness/internal/pacing"
	"github.com/ThiagoRGoveia/edge-case-harness/internal/parser"
	"github.com/ThiagoRGoveia/edge-case-harness/internal/questions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockAsker is a mock implementation of the chatbot.Asker interface.
type MockAsker struct {
	mock.Mock
}

func (m *MockAsker) Ask(ctx context.Context, question string) models.CallResult {
	args := m.Called(ctx, question)
	return args.Get(0).(models.CallResult)
}

// MockDBManager is a mock implementation of the database.DBManager interface.
type MockDBManager struct {
	mock.Mock
}

func (m *MockDBManager) CreateTestRecordsTable() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockDBManager) InsertTestRecords(runID string, records []models.TestRecord) (int64, error) {
	args := m.Called(runID, records)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDBManager) GetVersionSummary(version string) (*models.VersionSummary, error) {
	args := m.Called(version)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.VersionSummary), args.Error(1)
}

// countingPacer records how often the runner waited.
type countingPacer struct {
	waits int
}

func (p *countingPacer) Wait(ctx context.Context) error {
	p.waits++
	return ctx.Err()
}

func (p *countingPacer) Done() {}

func newTestService(t *testing.T, asker *MockAsker, pacer Pacer, archive *MockDBManager) (*RunnerService, string) {
	t.Helper()
	resultsFile := filepath.Join(t.TempDir(), "edge_case_results.csv")
	cfg := Config{Version: "ver1.0", ResultsFile: resultsFile}

	var service *RunnerService
	if archive == nil {
		service = NewRunnerService(asker, pacer, nil, zap.NewNop(), cfg)
	} else {
		service = NewRunnerService(asker, pacer, archive, zap.NewNop(), cfg)
	}
	service.newRunID = func() string { return "run-1" }
	return service, resultsFile
}

func TestRunnerService_Execute_FullQuestionList(t *testing.T) {
	asker := new(MockAsker)
	all := questions.EdgeCases()
	for i, q := range all {
		asker.On("Ask", mock.Anything, q).Return(models.CallResult{
			Success: true,
			Answer:  fmt.Sprintf("answer %d", i+1),
			Model:   "gemini-1.5-flash",
		}).Once()
	}
	pacer := &countingPacer{}
	service, resultsFile := newTestService(t, asker, pacer, nil)

	records, summary, err := service.Execute(context.Background(), all)

	require.NoError(t, err)
	require.Len(t, records, len(all))
	for i, record := range records {
		assert.Equal(t, all[i], record.Question)
		assert.Equal(t, fmt.Sprintf("answer %d", i+1), record.Answer)
		assert.Equal(t, "ver1.0", record.Version)
	}
	assert.Equal(t, len(all), pacer.waits)
	assert.Equal(t, models.RunSummary{RunID: "run-1", Total: 100, Succeeded: 100, Duration: summary.Duration}, summary)

	written, err := parser.ReadRecordsFile(resultsFile)
	require.NoError(t, err)
	require.Len(t, written, len(all))
	for i := range written {
		assert.Equal(t, all[i], written[i].Question)
	}
	asker.AssertExpectations(t)
}

func TestRunnerService_Execute_DegradedAnswers(t *testing.T) {
	asker := new(MockAsker)
	asker.On("Ask", mock.Anything, "q1").Return(models.CallResult{Success: true, Answer: "[OFF_TOPIC]X[NO_DATA]", Model: "M"}).Once()
	asker.On("Ask", mock.Anything, "q2").Return(models.CallResult{Success: false, Answer: "E"}).Once()
	asker.On("Ask", mock.Anything, "q3").Return(models.CallResult{Success: false, Answer: "HTTP Error: 500"}).Once()
	asker.On("Ask", mock.Anything, "q4").Return(models.CallResult{Success: false, Answer: "Error: request timed out after 1m0s: context deadline exceeded"}).Once()
	asker.On("Ask", mock.Anything, "q5").Return(models.CallResult{Success: true, Answer: "Y", Model: "M"}).Once()
	service, _ := newTestService(t, asker, pacing.New(0), nil)

	records, summary, err := service.Execute(context.Background(), []string{"q1", "q2", "q3", "q4", "q5"})

	require.NoError(t, err)
	require.Len(t, records, 5)

	assert.Equal(t, models.TestRecord{Question: "q1", Answer: "X", Version: "ver1.0", Model: "M"}, records[0])
	assert.Equal(t, models.TestRecord{Question: "q2", Answer: "E", Version: "ver1.0", Failed: true}, records[1])
	assert.Contains(t, records[2].Answer, "500")
	assert.Empty(t, records[2].Model)
	assert.Contains(t, records[3].Answer, "timed out")
	assert.Equal(t, "Y", records[4].Answer)

	assert.Equal(t, 2, summary.Succeeded)
	assert.Equal(t, 3, summary.Failed)
	asker.AssertExpectations(t)
}

func TestRunnerService_Execute_Archive(t *testing.T) {
	t.Run("archives the records of the run", func(t *testing.T) {
		asker := new(MockAsker)
		asker.On("Ask", mock.Anything, "q1").Return(models.CallResult{Success: true, Answer: "a", Model: "M"}).Once()
		archive := new(MockDBManager)
		expected := []models.TestRecord{{Question: "q1", Answer: "a", Version: "ver1.0", Model: "M"}}
		archive.On("InsertTestRecords", "run-1", expected).Return(int64(1), nil).Once()
		service, _ := newTestService(t, asker, pacing.New(0), archive)

		_, _, err := service.Execute(context.Background(), []string{"q1"})

		assert.NoError(t, err)
		archive.AssertExpectations(t)
	})

	t.Run("archive failure does not fail the run", func(t *testing.T) {
		asker := new(MockAsker)
		asker.On("Ask", mock.Anything, "q1").Return(models.CallResult{Success: true, Answer: "a"}).Once()
		archive := new(MockDBManager)
		archive.On("InsertTestRecords", "run-1", mock.Anything).Return(int64(0), errors.New("connection refused")).Once()
		service, resultsFile := newTestService(t, asker, pacing.New(0), archive)

		records, _, err := service.Execute(context.Background(), []string{"q1"})

		assert.NoError(t, err)
		assert.Len(t, records, 1)
		assert.FileExists(t, resultsFile)
		archive.AssertExpectations(t)
	})
}

func TestRunnerService_Execute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	asker := new(MockAsker)
	asker.On("Ask", mock.Anything, "q1").Return(models.CallResult{Success: true, Answer: "a"}).Run(func(args mock.Arguments) {
		cancel()
	}).Once()
	service, resultsFile := newTestService(t, asker, &countingPacer{}, nil)

	records, summary, err := service.Execute(ctx, []string{"q1", "q2", "q3"})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, records, 1)
	assert.Equal(t, 1, summary.Total)

	written, readErr := parser.ReadRecordsFile(resultsFile)
	require.NoError(t, readErr)
	assert.Len(t, written, 1)
	asker.AssertExpectations(t)
}

func TestRunnerService_Execute_UnwritableResults(t *testing.T) {
	asker := new(MockAsker)
	asker.On("Ask", mock.Anything, "q1").Return(models.CallResult{Success: true, Answer: "a"}).Run(func(args mock.Arguments) {
		time.Sleep(5 * time.Millisecond)
	}).Once()
	service := NewRunnerService(asker, pacing.New(0), nil, zap.NewNop(), Config{
		Version:     "ver1.0",
		ResultsFile: filepath.Join(t.TempDir(), "missing", "results.csv"),
	})

	_, summary, err := service.Execute(context.Background(), []string{"q1"})

	assert.ErrorContains(t, err, "failed to save results")
	assert.Equal(t, 1, summary.Total)
	assert.GreaterOrEqual(t, summary.Duration, 5*time.Millisecond)
}

func TestRunnerService_Execute_CoolDownAfterSlowCalls(t *testing.T) {
	interval := 50 * time.Millisecond
	var starts, ends []time.Time
	asker := new(MockAsker)
	asker.On("Ask", mock.Anything, mock.Anything).Return(models.CallResult{Success: true, Answer: "a"}).Run(func(args mock.Arguments) {
		starts = append(starts, time.Now())
		time.Sleep(80 * time.Millisecond)
		ends = append(ends, time.Now())
	})
	service, _ := newTestService(t, asker, pacing.New(interval), nil)

	records, _, err := service.Execute(context.Background(), []string{"q1", "q2", "q3"})

	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Len(t, starts, 3)
	for i := 1; i < len(starts); i++ {
		gap := starts[i].Sub(ends[i-1])
		assert.GreaterOrEqual(t, gap, interval-5*time.Millisecond, "gap before call %d", i+1)
	}
}

func TestStripMarkers(t *testing.T) {
	tests := []struct {
		name   string
		answer string
		want   string
	}{
		{"no markers", "plain answer", "plain answer"},
		{"off topic", "[OFF_TOPIC]죄송합니다", "죄송합니다"},
		{"no data", "자료가 없습니다[NO_DATA]", "자료가 없습니다"},
		{"repeated markers", "[NO_DATA]a[OFF_TOPIC]b[NO_DATA]", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripMarkers(tt.answer))
		})
	}
}

func TestBuildRecord_KeepsMarkersInErrors(t *testing.T) {
	record := BuildRecord("q", models.CallResult{Success: false, Answer: "[NO_DATA] upstream"}, "ver1.0")

	assert.Equal(t, "[NO_DATA] upstream", record.Answer)
	assert.True(t, record.Failed)
}

func TestPreview(t *testing.T) {
	short := "짧은 질문"
	long := ""
	for i := 0; i < 60; i++ {
		long += "가"
	}

	assert.Equal(t, short, Preview(short))
	assert.Equal(t, 53, len([]rune(Preview(long))))
}
