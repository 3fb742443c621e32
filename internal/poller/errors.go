package poller

import (
	"fmt"
	"time"
)

// TimeoutError reports that the wait ceiling elapsed while the remote
// service still considered the file PROCESSING.
type TimeoutError struct {
	Waited time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("video processing timed out after %s; try a shorter video", e.Waited)
}

// ProcessingFailedError reports that the remote service reached the FAILED
// terminal state for the file.
type ProcessingFailedError struct {
	Name string
}

func (e *ProcessingFailedError) Error() string {
	return fmt.Sprintf("video processing failed for %s; try a different video", e.Name)
}

// UnexpectedStateError reports a remote state outside the known set.
type UnexpectedStateError struct {
	State string
}

func (e *UnexpectedStateError) Error() string {
	return fmt.Sprintf("unexpected file state %q", e.State)
}
