package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/Hachi2308/coloring/internal/domain"
)

// ImageStore defines the interface for generated-image history persistence.
type ImageStore interface {
	// PutImage saves a history entry. Writes are keyed by the entry's unique
	// ID, so concurrent in-flight tasks never conflict.
	PutImage(ctx context.Context, img *domain.GeneratedImage) error

	// GetAllImages returns every history entry sorted by timestamp
	// descending (newest first).
	GetAllImages(ctx context.Context) ([]*domain.GeneratedImage, error)

	// DeleteImage removes a single history entry.
	// Returns ErrImageNotFound if the entry does not exist.
	DeleteImage(ctx context.Context, id uuid.UUID) error

	// ClearImages removes every history entry. Clearing an already-empty
	// collection is a no-op, not an error.
	ClearImages(ctx context.Context) error
}

// FailedJobStore defines the interface for the durable failed-job queue.
type FailedJobStore interface {
	// PutFailedJob saves a failed-job record.
	PutFailedJob(ctx context.Context, job *domain.FailedJob) error

	// GetAllFailedJobs returns every failed-job record sorted by timestamp
	// descending (newest first).
	GetAllFailedJobs(ctx context.Context) ([]*domain.FailedJob, error)

	// DeleteFailedJob removes a single record, typically after a successful
	// retry or a user dismissal.
	// Returns ErrFailedJobNotFound if the record does not exist.
	DeleteFailedJob(ctx context.Context, id string) error

	// ClearFailedJobs removes every record. Clearing an already-empty queue
	// is a no-op, not an error.
	ClearFailedJobs(ctx context.Context) error
}
