package report

import "context"

// Fixed artifact names for the downloadable results.
const (
	ExtractedTextFilename = "extracted_text.txt"
	SummaryFilename       = "video_summary.txt"
	CombinedFilename      = "video_analysis_report.txt"

	transcriptDocxFilename = "video_transcript.docx"
	summaryDocxFilename    = "video_summary.docx"
)

// Writer renders pipeline results into downloadable artifacts.
type Writer interface {
	// Write persists the transcript, the summary and a combined report
	// into the destination directory and returns the written paths.
	Write(ctx context.Context, extractedText, summary string) ([]string, error)
}
