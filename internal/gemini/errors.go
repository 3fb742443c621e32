package gemini

import "fmt"

// UploadError reports a failed transfer to the remote asset store.
type UploadError struct {
	Err error
}

func (e *UploadError) Error() string { return fmt.Sprintf("upload video to Gemini: %v", e.Err) }
func (e *UploadError) Unwrap() error { return e.Err }

// ExtractionError reports a failed or empty transcription response.
type ExtractionError struct {
	Err error
}

func (e *ExtractionError) Error() string { return fmt.Sprintf("extract text from video: %v", e.Err) }
func (e *ExtractionError) Unwrap() error { return e.Err }

// SummarizationError reports a failed or empty summary response.
type SummarizationError struct {
	Err error
}

func (e *SummarizationError) Error() string { return fmt.Sprintf("summarize transcript: %v", e.Err) }
func (e *SummarizationError) Unwrap() error { return e.Err }
