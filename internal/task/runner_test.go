package task

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fastRunnerConfig keeps pacing tiny so tests stay quick while still
// exercising the pacing code path.
func fastRunnerConfig(concurrency int) RunnerConfig {
	return RunnerConfig{
		Concurrency: concurrency,
		Pacing:      time.Millisecond,
	}
}

func TestRunnerConcurrencyCeiling(t *testing.T) {
	t.Parallel()

	const taskCount = 12
	const concurrency = 2

	var current, peak atomic.Int32

	thunks := make([]Thunk, taskCount)
	for i := range thunks {
		thunks[i] = func(ctx context.Context) error {
			n := current.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			current.Add(-1)
			return nil
		}
	}

	runner := NewRunner(fastRunnerConfig(concurrency), discardLogger())
	started := runner.Run(context.Background(), newTestSession(), thunks)

	assert.Equal(t, taskCount, started)
	assert.LessOrEqual(t, peak.Load(), int32(concurrency),
		"never more than Concurrency tasks simultaneously unresolved")
}

func TestRunnerStartsInListOrder(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	var startOrder []int

	thunks := make([]Thunk, 6)
	for i := range thunks {
		idx := i
		thunks[i] = func(ctx context.Context) error {
			mu.Lock()
			startOrder = append(startOrder, idx)
			mu.Unlock()
			// Uneven durations: completion order is unconstrained, start
			// order must not be.
			time.Sleep(time.Duration(6-idx) * time.Millisecond)
			return nil
		}
	}

	runner := NewRunner(fastRunnerConfig(2), discardLogger())
	runner.Run(context.Background(), newTestSession(), thunks)

	require.Len(t, startOrder, 6)
	for i, idx := range startOrder {
		assert.Equal(t, i, idx, "tasks must start in list order")
	}
}

func TestRunnerCancellationStopsNewStarts(t *testing.T) {
	t.Parallel()

	sess := newTestSession()

	var started, completed atomic.Int32

	thunks := make([]Thunk, 10)
	for i := range thunks {
		idx := i
		thunks[i] = func(ctx context.Context) error {
			started.Add(1)
			if idx == 1 {
				// Second task requests a stop; tasks already started still
				// run to completion.
				sess.RequestStop()
			}
			time.Sleep(5 * time.Millisecond)
			completed.Add(1)
			return nil
		}
	}

	runner := NewRunner(fastRunnerConfig(2), discardLogger())
	startedCount := runner.Run(context.Background(), sess, thunks)

	assert.Less(t, startedCount, 10, "stop must prevent later starts")
	assert.Equal(t, int32(startedCount), started.Load())
	assert.Equal(t, started.Load(), completed.Load(),
		"every started task runs to completion, none is aborted")
}

func TestRunnerAbsorbsTaskFailures(t *testing.T) {
	t.Parallel()

	var succeeded atomic.Int32

	thunks := []Thunk{
		func(ctx context.Context) error { return errors.New("boom") },
		func(ctx context.Context) error { succeeded.Add(1); return nil },
		func(ctx context.Context) error { return errors.New("boom again") },
		func(ctx context.Context) error { succeeded.Add(1); return nil },
	}

	runner := NewRunner(fastRunnerConfig(2), discardLogger())
	started := runner.Run(context.Background(), newTestSession(), thunks)

	assert.Equal(t, 4, started, "a failing task never aborts the batch")
	assert.Equal(t, int32(2), succeeded.Load())
}

func TestRunnerPacingSpacesStarts(t *testing.T) {
	t.Parallel()

	const pacing = 30 * time.Millisecond

	var mu sync.Mutex
	var startTimes []time.Time

	thunks := make([]Thunk, 3)
	for i := range thunks {
		thunks[i] = func(ctx context.Context) error {
			mu.Lock()
			startTimes = append(startTimes, time.Now())
			mu.Unlock()
			return nil
		}
	}

	runner := NewRunner(RunnerConfig{Concurrency: 2, Pacing: pacing}, discardLogger())

	begin := time.Now()
	runner.Run(context.Background(), newTestSession(), thunks)

	require.Len(t, startTimes, 3)

	// The pacing delay is unconditional per task, the first included.
	assert.GreaterOrEqual(t, startTimes[0].Sub(begin), pacing)
	assert.GreaterOrEqual(t, startTimes[1].Sub(startTimes[0]), pacing)
	assert.GreaterOrEqual(t, startTimes[2].Sub(startTimes[1]), pacing)
}

func TestRunnerContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var started atomic.Int32
	thunks := make([]Thunk, 10)
	for i := range thunks {
		idx := i
		thunks[i] = func(tctx context.Context) error {
			started.Add(1)
			if idx == 0 {
				cancel()
			}
			return nil
		}
	}

	runner := NewRunner(RunnerConfig{Concurrency: 1, Pacing: time.Millisecond}, discardLogger())
	startedCount := runner.Run(ctx, newTestSession(), thunks)

	assert.Less(t, startedCount, 10)
	assert.Equal(t, int32(startedCount), started.Load())
}

func TestRunnerEmptyTaskList(t *testing.T) {
	t.Parallel()

	runner := NewRunner(fastRunnerConfig(2), discardLogger())
	assert.Equal(t, 0, runner.Run(context.Background(), newTestSession(), nil))
}

func TestNewRunnerNormalizesConcurrency(t *testing.T) {
	t.Parallel()

	runner := NewRunner(RunnerConfig{Concurrency: 0, Pacing: 0}, discardLogger())
	started := runner.Run(context.Background(), newTestSession(), []Thunk{
		func(ctx context.Context) error { return nil },
	})

	assert.Equal(t, 1, started)
}
