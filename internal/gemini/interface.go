package gemini

import "context"

// Remote processing states reported by the Files API. Anything else is
// treated as an unexpected terminal state by the poller.
const (
	StateProcessing = "PROCESSING"
	StateActive     = "ACTIVE"
	StateFailed     = "FAILED"
)

// FileHandle is the opaque reference to an uploaded video on the remote
// service.
type FileHandle struct {
	Name     string
	URI      string
	MIMEType string
	State    string
}

// Client talks to the Gemini Files and generation APIs.
type Client interface {
	// Upload hands a transient video file to the remote asset store.
	// Single attempt; the caller decides whether to re-run the pipeline.
	Upload(ctx context.Context, path string) (*FileHandle, error)
	// GetFile re-queries the current processing state of an uploaded file.
	GetFile(ctx context.Context, name string) (*FileHandle, error)
	// ExtractText transcribes spoken dialogue and on-screen text from a
	// readiness-confirmed video.
	ExtractText(ctx context.Context, handle *FileHandle) (string, error)
	// Summarize condenses an extracted transcript.
	Summarize(ctx context.Context, transcript string) (string, error)
}
