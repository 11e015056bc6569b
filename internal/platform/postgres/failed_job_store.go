package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Hachi2308/coloring/internal/domain"
	"github.com/Hachi2308/coloring/internal/platform/logger"
	"github.com/Hachi2308/coloring/internal/store"
)

// PostgresFailedJobStore implements the store.FailedJobStore interface using
// PostgreSQL. The frozen job configuration is stored as JSONB so the schema
// never has to chase config fields.
type PostgresFailedJobStore struct {
	db store.DBTX
}

// NewPostgresFailedJobStore creates a new PostgresFailedJobStore.
func NewPostgresFailedJobStore(db store.DBTX) *PostgresFailedJobStore {
	return &PostgresFailedJobStore{
		db: db,
	}
}

// PutFailedJob saves a failed-job record.
func (s *PostgresFailedJobStore) PutFailedJob(ctx context.Context, job *domain.FailedJob) error {
	log := logger.FromContext(ctx)

	if job == nil {
		return store.ErrInvalidEntity
	}

	configJSON, err := json.Marshal(job.Config)
	if err != nil {
		return fmt.Errorf("failed to marshal job config: %w", err)
	}

	query := `
		INSERT INTO failed_jobs (id, created_at, error_message, config)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET error_message = EXCLUDED.error_message,
		    config = EXCLUDED.config
	`

	_, err = s.db.ExecContext(ctx, query,
		job.ID,
		job.Timestamp,
		job.ErrorMessage,
		configJSON,
	)
	if err != nil {
		log.Error("failed to save failed job",
			"failed_job_id", job.ID,
			"error", err)
		return fmt.Errorf("failed to save failed job: %w", mapError(err, store.ErrFailedJobNotFound))
	}

	return nil
}

// GetAllFailedJobs returns every record, newest first.
func (s *PostgresFailedJobStore) GetAllFailedJobs(ctx context.Context) ([]*domain.FailedJob, error) {
	log := logger.FromContext(ctx)

	query := `
		SELECT id, created_at, error_message, config
		FROM failed_jobs
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query failed jobs", "error", err)
		return nil, fmt.Errorf("failed to query failed jobs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var jobs []*domain.FailedJob
	for rows.Next() {
		var job domain.FailedJob
		var configJSON []byte
		if err := rows.Scan(
			&job.ID,
			&job.Timestamp,
			&job.ErrorMessage,
			&configJSON,
		); err != nil {
			log.Error("failed to scan failed-job row", "error", err)
			return nil, fmt.Errorf("failed to scan failed-job row: %w", err)
		}
		if err := json.Unmarshal(configJSON, &job.Config); err != nil {
			log.Error("failed to unmarshal job config",
				"failed_job_id", job.ID,
				"error", err)
			return nil, fmt.Errorf("failed to unmarshal job config: %w", err)
		}
		jobs = append(jobs, &job)
	}

	if err := rows.Err(); err != nil {
		log.Error("error iterating failed-job rows", "error", err)
		return nil, fmt.Errorf("error iterating failed-job rows: %w", err)
	}

	return jobs, nil
}

// DeleteFailedJob removes a single record.
func (s *PostgresFailedJobStore) DeleteFailedJob(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := s.db.ExecContext(ctx, `DELETE FROM failed_jobs WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete failed job",
			"failed_job_id", id,
			"error", err)
		return fmt.Errorf("failed to delete failed job: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return store.ErrFailedJobNotFound
	}

	return nil
}

// ClearFailedJobs removes every record.
func (s *PostgresFailedJobStore) ClearFailedJobs(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := s.db.ExecContext(ctx, `DELETE FROM failed_jobs`); err != nil {
		log.Error("failed to clear failed jobs", "error", err)
		return fmt.Errorf("failed to clear failed jobs: %w", err)
	}

	return nil
}
