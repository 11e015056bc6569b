package planner

import (
	"context"
	"fmt"

	"github.com/Hachi2308/coloring/internal/domain"
	"github.com/Hachi2308/coloring/internal/journal"
	"github.com/Hachi2308/coloring/internal/task"
)

// retryThunk replays a failed job's frozen config verbatim, original seed
// included. On success the original record is deleted from durable storage
// and the session cache; on repeat failure the executor has already
// persisted a fresh record, so the thunk adds nothing.
func (s *Service) retryThunk(sess *task.Session, job *domain.FailedJob) task.Thunk {
	return func(ctx context.Context) error {
		desc := job.Config.Clone()

		result, err := s.executor.Execute(ctx, sess, desc)
		if err != nil || result == nil {
			return err
		}

		img, err := domain.NewGeneratedImage(result.Content, storedPromptFor(desc), desc.Resolution, desc.PrintSize)
		if err != nil {
			return fmt.Errorf("failed to build history entry: %w", err)
		}

		if err := s.images.PutImage(ctx, img); err != nil {
			return fmt.Errorf("failed to persist history entry: %w", err)
		}

		if err := s.failed.DeleteFailedJob(ctx, job.ID); err != nil {
			s.logger.Error("failed to delete retried job",
				"failed_job_id", job.ID,
				"error", err)
		} else {
			sess.RemoveFailedJob(job.ID)
		}

		sess.Journal().Append(
			fmt.Sprintf("Retry succeeded: %q", truncate(desc.Prompt)),
			journal.LevelSuccess,
		)
		return nil
	}
}

// RetryOne replays a single failed job.
func (s *Service) RetryOne(ctx context.Context, sess *task.Session, job *domain.FailedJob) error {
	if job == nil {
		return ErrNoFailedJobs
	}

	s.runBatch(ctx, sess, "retry_one", []task.Thunk{s.retryThunk(sess, job)})
	return nil
}

// RetryAll replays every record in the failed-job cache, then refreshes the
// cache from durable storage so it reflects deletions from successful
// retries and any fresh records from repeat failures.
func (s *Service) RetryAll(ctx context.Context, sess *task.Session) error {
	jobs := sess.FailedJobs()
	if len(jobs) == 0 {
		return ErrNoFailedJobs
	}

	thunks := make([]task.Thunk, len(jobs))
	for i, job := range jobs {
		thunks[i] = s.retryThunk(sess, job)
	}

	s.runBatch(ctx, sess, "retry_all", thunks)

	refreshed, err := s.failed.GetAllFailedJobs(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh failed-job list: %w", err)
	}
	sess.SetFailedJobs(refreshed)

	return nil
}
