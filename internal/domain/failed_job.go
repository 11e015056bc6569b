package domain

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

// FailedJob-specific validation errors
var (
	// ErrFailedJobIDEmpty is returned when a failed job ID is empty.
	ErrFailedJobIDEmpty = errors.New("failed job ID cannot be empty")

	// ErrFailedJobMessageEmpty is returned when a failed job has no error message.
	ErrFailedJobMessageEmpty = errors.New("failed job error message cannot be empty")
)

// FailedJob is the durable record of a job that exhausted its retries or hit
// a non-retryable error. Config is a frozen snapshot of the descriptor that
// failed, seed included, so a retry replays the exact same attempt.
type FailedJob struct {
	ID           string    `json:"id"`
	Timestamp    time.Time `json:"timestamp"`
	ErrorMessage string    `json:"error_message"`
	Config       JobConfig `json:"config"`
}

// NewFailedJob snapshots a descriptor and its terminal error into a durable
// record. The ID is a time+random composite so records created in the same
// millisecond stay distinct.
func NewFailedJob(cfg JobConfig, errMsg string) (*FailedJob, error) {
	job := &FailedJob{
		ID:           fmt.Sprintf("%d-%06d", time.Now().UnixMilli(), rand.Intn(1_000_000)),
		Timestamp:    time.Now().UTC(),
		ErrorMessage: errMsg,
		Config:       cfg.Clone(),
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}

	return job, nil
}

// Validate checks if the FailedJob has valid data.
// Returns an error if any field fails validation.
func (j *FailedJob) Validate() error {
	if j.ID == "" {
		return ErrFailedJobIDEmpty
	}

	if j.ErrorMessage == "" {
		return ErrFailedJobMessageEmpty
	}

	return nil
}
