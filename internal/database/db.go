package database

import (
	"github.com/ThiagoRGoveia/edge-case-harness/internal/models"
)

// DBManager is the results archive used by the runner, the setup command and
// the results API.
type DBManager interface {
	CreateTestRecordsTable() error
	InsertTestRecords(runID string, records []models.TestRecord) (int64, error)
	GetVersionSummary(version string) (*models.VersionSummary, error)
}
