package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ThiagoRGoveia/edge-case-harness/internal/models"
	"github.com/ThiagoRGoveia/edge-case-harness/pkg/checksum"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrVersionNotFound is returned when no archived record carries the version.
var ErrVersionNotFound = errors.New("version not found")

const stagingTableName = "test_records_staging"

func ConnectDB(connStr string) (*pgxpool.Pool, error) {
	dbpool, err := pgxpool.New(context.Background(), connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	return dbpool, nil
}

type PostgresDBManager struct {
	dbpool *pgxpool.Pool
	ctx    context.Context
}

func NewPostgresDBManager(ctx context.Context, pool *pgxpool.Pool) *PostgresDBManager {
	return &PostgresDBManager{dbpool: pool, ctx: ctx}
}

func (m *PostgresDBManager) CreateTestRecordsTable() error {
	query := `
	CREATE TABLE IF NOT EXISTS test_records (
		id BIGSERIAL PRIMARY KEY,
		run_id UUID NOT NULL,
		version VARCHAR(64) NOT NULL,
		question TEXT NOT NULL,
		answer TEXT NOT NULL,
		model VARCHAR(255) NOT NULL DEFAULT '',
		failed BOOLEAN NOT NULL DEFAULT FALSE,
		checksum VARCHAR(64) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT NOW(),
		UNIQUE (run_id, checksum)
	);
	CREATE INDEX IF NOT EXISTS idx_test_records_version ON test_records (version);`

	_, err := m.dbpool.Exec(m.ctx, query)
	if err != nil {
		return fmt.Errorf("error creating test_records table: %w", err)
	}

	return nil
}

// RecordChecksum identifies a record within a run.
func RecordChecksum(record models.TestRecord) string {
	return checksum.CalculateHash([]string{record.Question, record.Answer, record.Version, record.Model})
}

// InsertTestRecords bulk loads the records of one run through a temporary
// staging table and keeps only rows not archived yet for that run. It returns
// the number of new rows.
func (m *PostgresDBManager) InsertTestRecords(runID string, records []models.TestRecord) (int64, error) {
	if len(records) == 0 {
		return 0, nil
	}

	id, err := uuid.Parse(runID)
	if err != nil {
		return 0, fmt.Errorf("invalid run id %q: %w", runID, err)
	}

	tx, err := m.dbpool.Begin(m.ctx)
	if err != nil {
		return 0, fmt.Errorf("error beginning transaction: %w", err)
	}
	defer tx.Rollback(m.ctx)

	createStaging := fmt.Sprintf(
		`CREATE TEMP TABLE IF NOT EXISTS %s (LIKE test_records INCLUDING DEFAULTS) ON COMMIT DROP;`,
		pgx.Identifier{stagingTableName}.Sanitize())
	if _, err := tx.Exec(m.ctx, createStaging); err != nil {
		return 0, fmt.Errorf("error creating staging table: %w", err)
	}

	createdAt := time.Now()
	copySource := pgx.CopyFromSlice(len(records), func(i int) ([]any, error) {
		r := records[i]
		return []any{id, r.Version, r.Question, r.Answer, r.Model, r.Failed, RecordChecksum(r), createdAt}, nil
	})

	_, err = tx.CopyFrom(
		m.ctx,
		pgx.Identifier{stagingTableName},
		[]string{"run_id", "version", "question", "answer", "model", "failed", "checksum", "created_at"},
		copySource,
	)
	if err != nil {
		return 0, fmt.Errorf("unable to copy records to staging table: %w", err)
	}

	insertDiffQuery := fmt.Sprintf(`
	INSERT INTO test_records (run_id, version, question, answer, model, failed, checksum, created_at)
	SELECT DISTINCT ON (s.checksum) s.run_id, s.version, s.question, s.answer, s.model, s.failed, s.checksum, s.created_at
	FROM %s s
	ON CONFLICT (run_id, checksum) DO NOTHING;`, pgx.Identifier{stagingTableName}.Sanitize())

	tag, err := tx.Exec(m.ctx, insertDiffQuery)
	if err != nil {
		return 0, fmt.Errorf("error inserting records from staging table: %w", err)
	}

	if err := tx.Commit(m.ctx); err != nil {
		return 0, fmt.Errorf("error committing records: %w", err)
	}

	return tag.RowsAffected(), nil
}

func (m *PostgresDBManager) GetVersionSummary(version string) (*models.VersionSummary, error) {
	summary := &models.VersionSummary{Version: version, Models: []string{}}

	query := `
	SELECT
		COUNT(*),
		COUNT(*) FILTER (WHERE failed),
		COALESCE(ARRAY_AGG(DISTINCT model) FILTER (WHERE model <> ''), '{}'),
		MAX(created_at)
	FROM test_records
	WHERE version = $1;`

	var lastRunAt *time.Time
	err := m.dbpool.QueryRow(m.ctx, query, version).Scan(&summary.Total, &summary.Failed, &summary.Models, &lastRunAt)
	if err != nil {
		return nil, fmt.Errorf("error querying version summary: %w", err)
	}

	if summary.Total == 0 {
		return nil, ErrVersionNotFound
	}
	if lastRunAt != nil {
		summary.LastRunAt = *lastRunAt
	}

	return summary, nil
}
