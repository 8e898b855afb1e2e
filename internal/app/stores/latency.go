package stores

import (
	"context"
	"time"
)

// simulateLatency blocks for d as the single suspension point of a
// simulated backend call. The context is the cancellation token: if it
// is done first, the operation is abandoned and its error returned.
// A non-positive d returns immediately.
func simulateLatency(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
