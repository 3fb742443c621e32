package poller

import (
	"context"
	"fmt"
	"time"

	"github.com/nguyentantai21042004/video-insight/internal/gemini"
	"github.com/nguyentantai21042004/video-insight/internal/progress"
)

// processingCap keeps reported progress below full scale while the file is
// still PROCESSING; 1.0 is reserved for the transition to ACTIVE.
const processingCap = 0.9

// Wait drives the readiness state machine: while the remote state is
// PROCESSING it sleeps a fixed interval, re-queries the state and
// accumulates elapsed wait time against the ceiling. It exits only on a
// terminal state, the ceiling, or caller cancellation.
func (p *implPoller) Wait(ctx context.Context, handle *gemini.FileHandle) (*gemini.FileHandle, error) {
	p.logger.Info(ctx, "Waiting for remote processing of %s (ceiling %s)", handle.Name, p.timeout)

	current := handle
	var elapsed time.Duration

	for current.State == gemini.StateProcessing {
		if elapsed >= p.timeout {
			p.logger.Error(ctx, "Processing timeout for %s after %s", current.Name, elapsed)
			return nil, &TimeoutError{Waited: elapsed}
		}

		if err := p.clock.Sleep(ctx, p.interval); err != nil {
			return nil, err
		}
		elapsed += p.interval

		refreshed, err := p.files.GetFile(ctx, current.Name)
		if err != nil {
			return nil, fmt.Errorf("query file state: %w", err)
		}
		current = refreshed

		if current.State == gemini.StateProcessing {
			p.reporter.Publish(progress.Event{
				Stage:    progress.StageProcess,
				Fraction: cappedFraction(elapsed, p.timeout),
				Message:  fmt.Sprintf("Processing... (%.0fs) - Status: %s", elapsed.Seconds(), current.State),
			})
		}
	}

	switch current.State {
	case gemini.StateActive:
		p.reporter.Publish(progress.Event{
			Stage:    progress.StageProcess,
			Fraction: 1.0,
			Message:  "Video is ready for analysis",
		})
		p.logger.Info(ctx, "File %s is ACTIVE after %s", current.Name, elapsed)
		return current, nil
	case gemini.StateFailed:
		p.logger.Error(ctx, "Remote processing failed for %s", current.Name)
		return nil, &ProcessingFailedError{Name: current.Name}
	default:
		p.logger.Error(ctx, "Unexpected state %q for %s", current.State, current.Name)
		return nil, &UnexpectedStateError{State: current.State}
	}
}

func cappedFraction(elapsed, timeout time.Duration) float64 {
	f := elapsed.Seconds() / timeout.Seconds()
	if f > processingCap {
		return processingCap
	}
	return f
}
