package task

import (
	"context"
	"time"
)

// Sleep waits for the given duration or until the context is done, whichever
// comes first. It returns the context's error when cancelled and nil when the
// full duration elapsed. Used for inter-start pacing and retry backoff.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
