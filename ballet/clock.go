package ballet

import (
	"context"
	"time"
)

// Clock abstracts time for the pacing policy and retry backoff so
// tests can simulate elapsed time without real sleeps.
type Clock interface {
	Now() time.Time
	// Sleep blocks for d or until ctx is cancelled, whichever comes
	// first. Non-positive durations return immediately.
	Sleep(ctx context.Context, d time.Duration) error
}

// SystemClock is the wall-clock Clock used outside of tests.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

func (SystemClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
