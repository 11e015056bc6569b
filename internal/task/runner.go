package task

import (
	"context"
	"log/slog"
	"time"
)

// Thunk is one schedulable unit of work. Thunks close over their job
// descriptor; the runner neither knows nor cares what they do.
type Thunk func(ctx context.Context) error

// RunnerConfig holds configuration for the bounded-concurrency runner.
type RunnerConfig struct {
	// Concurrency is the ceiling on simultaneously in-flight thunks.
	Concurrency int

	// Pacing is the delay before each thunk start, the first included, to
	// avoid bursting the remote rate limiter.
	Pacing time.Duration
}

// DefaultRunnerConfig returns a RunnerConfig with the conservative defaults
// used throughout the system: two in-flight jobs, one second between starts.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Concurrency: 2,
		Pacing:      time.Second,
	}
}

// Runner starts thunks strictly in list order, keeps at most Concurrency of
// them in flight, and spaces starts by the pacing interval. A thunk's error
// never aborts the runner or its peers.
type Runner struct {
	config RunnerConfig
	logger *slog.Logger
}

// NewRunner creates a runner, normalizing invalid config values.
func NewRunner(config RunnerConfig, logger *slog.Logger) *Runner {
	if config.Concurrency <= 0 {
		logger.Warn("invalid concurrency specified, using default",
			"specified", config.Concurrency,
			"default", 1)
		config.Concurrency = 1
	}

	return &Runner{
		config: config,
		logger: logger.With("component", "runner"),
	}
}

// Run schedules the thunks and blocks until every started thunk has settled.
// It returns the number of thunks actually started, which is less than
// len(thunks) when the session's stop flag or the context cut the loop
// short. Already-started thunks always run to completion.
func (r *Runner) Run(ctx context.Context, sess *Session, thunks []Thunk) int {
	done := make(chan int, len(thunks))
	inflight := 0
	started := 0

	for i, thunk := range thunks {
		// Cooperative cancellation point: checked before each start.
		if sess.Stopped() || ctx.Err() != nil {
			r.logger.Info("stop requested, not starting remaining tasks",
				"started", started,
				"remaining", len(thunks)-i)
			break
		}

		// Pacing applies before every start, the first included.
		if err := Sleep(ctx, r.config.Pacing); err != nil {
			break
		}

		idx := i
		run := thunk
		inflight++
		started++
		r.logger.Debug("starting task", "task_index", idx, "inflight", inflight)

		go func() {
			if err := run(ctx); err != nil {
				// Absorbed here so one failing task never aborts the batch.
				r.logger.Error("task settled with error", "task_index", idx, "error", err)
			}
			done <- idx
		}()

		// Race-to-first-completion: once the ceiling is reached, any one
		// finishing thunk frees the slot for the next start.
		if inflight >= r.config.Concurrency {
			idx := <-done
			inflight--
			r.logger.Debug("task settled", "task_index", idx, "inflight", inflight)
		}
	}

	// Wait for everything still in flight, including thunks started before
	// a stop request cut the scheduling loop short.
	for inflight > 0 {
		idx := <-done
		inflight--
		r.logger.Debug("task settled", "task_index", idx, "inflight", inflight)
	}

	return started
}
