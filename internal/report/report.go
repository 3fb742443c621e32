package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Write persists the three plain-text artifacts plus docx renderings of the
// transcript and summary. The docx files are best-effort extras: a failure
// there is logged but does not fail the report.
func (w *implWriter) Write(ctx context.Context, extractedText, summary string) ([]string, error) {
	if err := os.MkdirAll(w.destDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	files := map[string]string{
		ExtractedTextFilename: extractedText,
		SummaryFilename:       summary,
		CombinedFilename:      CombinedReport(extractedText, summary),
	}

	paths := make([]string, 0, len(files)+2)
	for _, name := range []string{ExtractedTextFilename, SummaryFilename, CombinedFilename} {
		path := filepath.Join(w.destDir, name)
		if err := os.WriteFile(path, []byte(files[name]), 0644); err != nil {
			return nil, fmt.Errorf("write %s: %w", name, err)
		}
		paths = append(paths, path)
	}

	transcriptDocx := filepath.Join(w.destDir, transcriptDocxFilename)
	if err := transcriptToDocx("Video Transcript", extractedText, transcriptDocx); err != nil {
		w.logger.Warn(ctx, "Failed to write transcript docx: %v", err)
	} else {
		paths = append(paths, transcriptDocx)
	}

	summaryDocx := filepath.Join(w.destDir, summaryDocxFilename)
	if err := markdownToDocx("Video Summary", summary, summaryDocx); err != nil {
		w.logger.Warn(ctx, "Failed to write summary docx: %v", err)
	} else {
		paths = append(paths, summaryDocx)
	}

	w.logger.Info(ctx, "Report written: %d artifacts in %s", len(paths), w.destDir)
	return paths, nil
}

// CombinedReport concatenates both outputs under fixed section headers.
func CombinedReport(extractedText, summary string) string {
	divider := strings.Repeat("-", 50)
	return fmt.Sprintf("EXTRACTED TEXT:\n%s\n%s\n\n\nSUMMARY:\n%s\n%s",
		divider, extractedText, divider, summary)
}
