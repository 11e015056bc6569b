package task

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Hachi2308/coloring/internal/domain"
	"github.com/Hachi2308/coloring/internal/generation"
	"github.com/Hachi2308/coloring/internal/journal"
	"github.com/Hachi2308/coloring/internal/store"
)

// ExecutorConfig holds the retry tuning for one job execution.
type ExecutorConfig struct {
	// MaxRetries bounds rate-limit retries (total attempts = MaxRetries+1).
	MaxRetries int

	// BackoffBase scales the escalating wait between rate-limited attempts:
	// base * (retryCount+1).
	BackoffBase time.Duration
}

// DefaultExecutorConfig returns the production retry tuning: up to three
// retries with 10s/20s/30s escalating backoff.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		MaxRetries:  3,
		BackoffBase: 10 * time.Second,
	}
}

// Executor wraps one generation attempt in the per-job retry state machine:
// rate-limited failures retry with escalating backoff, permission failures
// trigger re-authentication, and any terminal failure is persisted to the
// failed-job queue. No error ever escapes to the runner.
type Executor struct {
	generator  generation.Generator
	failedJobs store.FailedJobStore
	config     ExecutorConfig
	logger     *slog.Logger

	// onAuthError is invoked once per job when the credential is rejected,
	// surfacing an out-of-band re-authentication prompt. May be nil.
	onAuthError func()
}

// NewExecutor creates an executor. onAuthError may be nil when no
// re-authentication surface exists (e.g. in tests).
func NewExecutor(
	generator generation.Generator,
	failedJobs store.FailedJobStore,
	config ExecutorConfig,
	logger *slog.Logger,
	onAuthError func(),
) *Executor {
	if config.MaxRetries < 0 {
		config.MaxRetries = 0
	}

	return &Executor{
		generator:   generator,
		failedJobs:  failedJobs,
		config:      config,
		logger:      logger.With("component", "executor"),
		onAuthError: onAuthError,
	}
}

// Execute runs the retry state machine for one descriptor.
//
// Returns (result, nil) on success, (nil, nil) when the job was abandoned
// because the stop flag or context was observed before an attempt, and
// (nil, err) with the terminal error otherwise. Terminal failures are
// persisted to the failed-job store and mirrored into the session cache
// before returning.
func (e *Executor) Execute(
	ctx context.Context,
	sess *Session,
	desc domain.JobDescriptor,
) (*generation.Result, error) {
	j := sess.Journal()
	retries := 0

	var lastErr error
	for {
		// Abandonment, not failure: no journal entry, no failed-job record.
		if sess.Stopped() || ctx.Err() != nil {
			e.logger.Debug("job abandoned before attempt", "retries", retries)
			return nil, nil
		}

		if retries == 0 {
			j.Append(fmt.Sprintf("Generating %q...", truncatePrompt(desc.Prompt)), journal.LevelInfo)
		}

		result, err := e.generator.Generate(ctx, desc)
		if err == nil {
			return result, nil
		}

		lastErr = err
		kind := generation.Classify(err)
		e.logger.Warn("generation attempt failed",
			"kind", kind.String(),
			"retries", retries,
			"error", err)

		switch kind {
		case generation.KindRateLimited:
			if retries < e.config.MaxRetries {
				wait := e.config.BackoffBase * time.Duration(retries+1)
				j.Append(
					fmt.Sprintf("Rate limited, retrying in %s (attempt %d of %d)",
						wait, retries+2, e.config.MaxRetries+1),
					journal.LevelWarning,
				)

				// The stop flag is not re-checked mid-wait; a pending
				// backoff completes and only the next attempt is skipped.
				if err := Sleep(ctx, wait); err != nil {
					return nil, nil
				}

				retries++
				continue
			}
			j.Append(
				fmt.Sprintf("Giving up after %d attempts: %s", retries+1, err),
				journal.LevelError,
			)

		case generation.KindPermissionDenied:
			j.Append(fmt.Sprintf("Permission denied: %s", err), journal.LevelError)
			if e.onAuthError != nil {
				e.onAuthError()
			}

		default:
			j.Append(fmt.Sprintf("Generation failed: %s", err), journal.LevelError)
		}

		break
	}

	// Every path that lands here ended without success and is either
	// retry-exhausted or non-rate-limit-classified, so it gets persisted.
	e.persistFailure(ctx, sess, desc, lastErr)

	return nil, lastErr
}

// persistFailure snapshots the descriptor and terminal error into the
// durable failed-job queue and keeps the session cache in sync.
func (e *Executor) persistFailure(
	ctx context.Context,
	sess *Session,
	desc domain.JobDescriptor,
	cause error,
) {
	job, err := domain.NewFailedJob(desc, cause.Error())
	if err != nil {
		e.logger.Error("failed to build failed-job record", "error", err)
		return
	}

	if err := e.failedJobs.PutFailedJob(ctx, job); err != nil {
		e.logger.Error("failed to persist failed job",
			"failed_job_id", job.ID,
			"error", err)
		return
	}

	sess.AppendFailedJob(job)
}

// truncatePrompt keeps journal lines readable for long prompts.
func truncatePrompt(prompt string) string {
	const max = 60
	if len(prompt) <= max {
		return prompt
	}
	return prompt[:max] + "..."
}
