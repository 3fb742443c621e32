package clock

import (
	"context"
	"time"
)

// Clock abstracts waiting so time-dependent code can be tested without
// real delays.
type Clock interface {
	Sleep(ctx context.Context, d time.Duration) error
}

type implClock struct{}

// New creates a Clock backed by real time.
func New() Clock {
	return &implClock{}
}

// Sleep blocks for d or until the context is cancelled, whichever comes
// first.
func (c *implClock) Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
