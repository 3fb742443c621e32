package resolver

import "fmt"

// DownloadError reports a failed fetch of the video source: a transport
// fault, a non-success HTTP status or a failed write of the fetched bytes.
type DownloadError struct {
	URL string
	Err error
}

func (e *DownloadError) Error() string {
	return fmt.Sprintf("download video from %s: %v", e.URL, e.Err)
}

func (e *DownloadError) Unwrap() error { return e.Err }
