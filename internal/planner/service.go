package planner

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Hachi2308/coloring/internal/domain"
	"github.com/Hachi2308/coloring/internal/journal"
	"github.com/Hachi2308/coloring/internal/store"
	"github.com/Hachi2308/coloring/internal/task"
)

// Service wires planners to the scheduling core. Each public method expands
// one user intent into thunks, runs them, and returns once the batch has
// settled.
type Service struct {
	runner   *task.Runner
	executor *task.Executor
	images   store.ImageStore
	failed   store.FailedJobStore
	logger   *slog.Logger
}

// NewService creates a planner service over the given core components.
func NewService(
	runner *task.Runner,
	executor *task.Executor,
	images store.ImageStore,
	failed store.FailedJobStore,
	logger *slog.Logger,
) *Service {
	return &Service{
		runner:   runner,
		executor: executor,
		images:   images,
		failed:   failed,
		logger:   logger.With("component", "planner"),
	}
}

// runBatch resets the stop flag around one batch operation and schedules the
// thunks. The deferred EndBatch clears the flag regardless of outcome.
func (s *Service) runBatch(ctx context.Context, sess *task.Session, name string, thunks []task.Thunk) {
	sess.BeginBatch()
	defer sess.EndBatch()

	s.logger.Info("starting batch", "planner", name, "task_count", len(thunks))
	started := s.runner.Run(ctx, sess, thunks)
	s.logger.Info("batch settled", "planner", name, "started", started, "planned", len(thunks))
}

// generateThunk builds the standard thunk shape: execute one descriptor and,
// on success, persist a history entry whose prompt may differ from the
// descriptor's (colorize/decolorize prefix it).
func (s *Service) generateThunk(
	sess *task.Session,
	desc domain.JobDescriptor,
	storedPrompt string,
) task.Thunk {
	return func(ctx context.Context) error {
		result, err := s.executor.Execute(ctx, sess, desc)
		if err != nil || result == nil {
			// Terminal failures were journaled and persisted by the
			// executor; abandonment is silent. Either way the batch goes on.
			return err
		}

		img, err := domain.NewGeneratedImage(result.Content, storedPrompt, desc.Resolution, desc.PrintSize)
		if err != nil {
			return fmt.Errorf("failed to build history entry: %w", err)
		}

		if err := s.images.PutImage(ctx, img); err != nil {
			return fmt.Errorf("failed to persist history entry: %w", err)
		}

		sess.Journal().Append(
			fmt.Sprintf("Done: %q (%s)", truncate(storedPrompt), result.UsedModel),
			journal.LevelSuccess,
		)
		return nil
	}
}

// truncate keeps journal lines readable for long prompts.
func truncate(s string) string {
	const max = 60
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
