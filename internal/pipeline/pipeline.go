package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/nguyentantai21042004/video-insight/internal/gemini"
	"github.com/nguyentantai21042004/video-insight/internal/progress"
	"github.com/nguyentantai21042004/video-insight/internal/resolver"
)

// Process orchestrates the entire video analysis pipeline. Each stage is a
// hard gate: the first failure aborts the run, and the transient video file
// is removed on every exit path.
func (p *implPipeline) Process(ctx context.Context, src Source) (*Result, error) {
	startTime := time.Now()

	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Starting video analysis: %s", src.describe())
	p.logger.Info(ctx, "========================================")

	// Step 1: Stage the video bytes in a transient file
	asset, err := p.resolve(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("resolve video source: %w", err)
	}
	defer p.cleanupTempFile(ctx, asset.Path)

	// Step 2: Upload to the Gemini file store
	p.reporter.Publish(progress.Event{Stage: progress.StageUpload, Message: "uploading video to Gemini"})
	handle, err := p.gemini.Upload(ctx, asset.Path)
	if err != nil {
		return nil, err
	}

	// Step 3: Poll remote processing to readiness
	ready, err := p.poller.Wait(ctx, handle)
	if err != nil {
		return nil, err
	}

	// Step 4: Extract transcript and on-screen text
	p.reporter.Publish(progress.Event{Stage: progress.StageExtract, Message: "extracting text from video"})
	text, err := p.gemini.ExtractText(ctx, ready)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, &gemini.ExtractionError{Err: errors.New("empty transcript")}
	}

	// Step 5: Summarize the extracted text
	p.reporter.Publish(progress.Event{Stage: progress.StageSummarize, Message: "creating summary"})
	summary, err := p.gemini.Summarize(ctx, text)
	if err != nil {
		return nil, err
	}

	duration := time.Since(startTime)
	p.logger.Info(ctx, "========================================")
	p.logger.Info(ctx, "Analysis completed successfully!")
	p.logger.Info(ctx, "Transcript: %d chars, summary: %d chars", len(text), len(summary))
	p.logger.Info(ctx, "Processing time: %s", duration)
	p.logger.Info(ctx, "========================================")

	return &Result{ExtractedText: text, Summary: summary}, nil
}

func (p *implPipeline) resolve(ctx context.Context, src Source) (*resolver.Asset, error) {
	switch {
	case src.URL != "":
		return p.resolver.FromURL(ctx, src.URL)
	case src.Path != "":
		return p.resolver.FromFile(ctx, src.Path)
	default:
		return nil, errors.New("no video source provided")
	}
}

// cleanupTempFile removes the transient video, logs warning if fails
func (p *implPipeline) cleanupTempFile(ctx context.Context, filePath string) {
	if err := os.Remove(filePath); err != nil {
		p.logger.Warn(ctx, "Failed to cleanup temp file %s: %v", filePath, err)
	} else {
		p.logger.Debug(ctx, "Cleaned up temp file: %s", filePath)
	}
}

func (s Source) describe() string {
	if s.URL != "" {
		return s.URL
	}
	return s.Path
}
