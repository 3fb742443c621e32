package pipeline

import "context"

// Source names exactly one video input for a pipeline run.
type Source struct {
	URL  string // remote fetch when set
	Path string // local file when set
}

// Result holds both pipeline outputs. A Result is only produced when
// extraction and summarization both succeeded.
type Result struct {
	ExtractedText string
	Summary       string
}

// Pipeline runs one video through resolve, upload, readiness polling,
// extraction and summarization.
type Pipeline interface {
	Process(ctx context.Context, src Source) (*Result, error)
}
