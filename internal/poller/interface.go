package poller

import (
	"context"

	"github.com/nguyentantai21042004/video-insight/internal/gemini"
)

// FileGetter re-queries the remote processing state of an uploaded file.
// gemini.Client satisfies it.
type FileGetter interface {
	GetFile(ctx context.Context, name string) (*gemini.FileHandle, error)
}

// Poller drives an uploaded file to a terminal processing state under a
// bounded wait budget.
type Poller interface {
	// Wait returns the handle once the remote state is ACTIVE. It returns
	// a TimeoutError when the wait ceiling is reached while still
	// PROCESSING, a ProcessingFailedError on FAILED, an
	// UnexpectedStateError on any other state, and the context error if
	// the caller cancels mid-wait.
	Wait(ctx context.Context, handle *gemini.FileHandle) (*gemini.FileHandle, error)
}
