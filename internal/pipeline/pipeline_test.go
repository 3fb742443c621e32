package pipeline

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/nguyentantai21042004/video-insight/internal/gemini"
	"github.com/nguyentantai21042004/video-insight/internal/logger"
	"github.com/nguyentantai21042004/video-insight/internal/poller"
	"github.com/nguyentantai21042004/video-insight/internal/progress"
	"github.com/nguyentantai21042004/video-insight/internal/resolver"
)

type fakeResolver struct {
	asset *resolver.Asset
	err   error
}

func (f *fakeResolver) FromURL(ctx context.Context, rawURL string) (*resolver.Asset, error) {
	return f.asset, f.err
}

func (f *fakeResolver) FromBytes(ctx context.Context, data []byte, ext string) (*resolver.Asset, error) {
	return f.asset, f.err
}

func (f *fakeResolver) FromFile(ctx context.Context, path string) (*resolver.Asset, error) {
	return f.asset, f.err
}

type fakeGemini struct {
	uploadHandle *gemini.FileHandle
	uploadErr    error

	extractText  string
	extractErr   error
	extractCalls int

	summaryText    string
	summaryErr     error
	summarizeCalls int
	summarizeInput string
}

func (f *fakeGemini) Upload(ctx context.Context, path string) (*gemini.FileHandle, error) {
	return f.uploadHandle, f.uploadErr
}

func (f *fakeGemini) GetFile(ctx context.Context, name string) (*gemini.FileHandle, error) {
	return f.uploadHandle, nil
}

func (f *fakeGemini) ExtractText(ctx context.Context, handle *gemini.FileHandle) (string, error) {
	f.extractCalls++
	return f.extractText, f.extractErr
}

func (f *fakeGemini) Summarize(ctx context.Context, transcript string) (string, error) {
	f.summarizeCalls++
	f.summarizeInput = transcript
	return f.summaryText, f.summaryErr
}

type fakePoller struct {
	handle *gemini.FileHandle
	err    error
	calls  int
}

func (f *fakePoller) Wait(ctx context.Context, handle *gemini.FileHandle) (*gemini.FileHandle, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.handle, nil
}

func tempAsset(t *testing.T) *resolver.Asset {
	t.Helper()
	path := filepath.Join(t.TempDir(), "video-test.mp4")
	if err := os.WriteFile(path, []byte("bytes"), 0644); err != nil {
		t.Fatal(err)
	}
	return &resolver.Asset{Path: path, SizeBytes: 5}
}

func activeHandle() *gemini.FileHandle {
	return &gemini.FileHandle{Name: "files/abc", URI: "uri", MIMEType: "video/mp4", State: gemini.StateActive}
}

func newTestPipeline(res resolver.Resolver, client gemini.Client, poll poller.Poller) Pipeline {
	return New(res, client, poll, progress.Nop(), logger.New("error"))
}

func TestProcessSuccess(t *testing.T) {
	asset := tempAsset(t)
	client := &fakeGemini{
		uploadHandle: activeHandle(),
		extractText:  "Speaker 1: Hello.",
		summaryText:  "A short greeting.",
	}
	poll := &fakePoller{handle: activeHandle()}

	p := newTestPipeline(&fakeResolver{asset: asset}, client, poll)

	result, err := p.Process(context.Background(), Source{URL: "https://example.com/v.mp4"})
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if result.ExtractedText != "Speaker 1: Hello." {
		t.Errorf("ExtractedText = %q", result.ExtractedText)
	}
	if result.Summary != "A short greeting." {
		t.Errorf("Summary = %q", result.Summary)
	}
	if client.summarizeCalls != 1 {
		t.Errorf("summarize calls = %d, want 1", client.summarizeCalls)
	}
	if client.summarizeInput != "Speaker 1: Hello." {
		t.Errorf("summarize input = %q, want the extracted text", client.summarizeInput)
	}

	if _, err := os.Stat(asset.Path); !os.IsNotExist(err) {
		t.Error("transient file should be removed after a successful run")
	}
}

func TestProcessNoSource(t *testing.T) {
	p := newTestPipeline(&fakeResolver{}, &fakeGemini{}, &fakePoller{})

	if _, err := p.Process(context.Background(), Source{}); err == nil {
		t.Error("Process() should fail without a source")
	}
}

func TestProcessResolveFailure(t *testing.T) {
	client := &fakeGemini{}
	poll := &fakePoller{}
	p := newTestPipeline(&fakeResolver{err: errors.New("dns failure")}, client, poll)

	if _, err := p.Process(context.Background(), Source{URL: "https://example.com/v.mp4"}); err == nil {
		t.Fatal("Process() should fail when the resolver fails")
	}
	if poll.calls != 0 || client.extractCalls != 0 || client.summarizeCalls != 0 {
		t.Error("no later stage should run after a resolve failure")
	}
}

func TestProcessUploadFailure(t *testing.T) {
	asset := tempAsset(t)
	client := &fakeGemini{uploadErr: &gemini.UploadError{Err: errors.New("service fault")}}
	poll := &fakePoller{}

	p := newTestPipeline(&fakeResolver{asset: asset}, client, poll)

	_, err := p.Process(context.Background(), Source{Path: "in.mp4"})
	var upErr *gemini.UploadError
	if !errors.As(err, &upErr) {
		t.Fatalf("Process() error = %v, want UploadError", err)
	}
	if poll.calls != 0 {
		t.Error("poller should not run after an upload failure")
	}

	if _, err := os.Stat(asset.Path); !os.IsNotExist(err) {
		t.Error("transient file should be removed after an upload failure")
	}
}

func TestProcessPollFailureSkipsInference(t *testing.T) {
	asset := tempAsset(t)
	client := &fakeGemini{uploadHandle: activeHandle()}
	poll := &fakePoller{err: &poller.ProcessingFailedError{Name: "files/abc"}}

	p := newTestPipeline(&fakeResolver{asset: asset}, client, poll)

	_, err := p.Process(context.Background(), Source{Path: "in.mp4"})
	var pfErr *poller.ProcessingFailedError
	if !errors.As(err, &pfErr) {
		t.Fatalf("Process() error = %v, want ProcessingFailedError", err)
	}
	if client.extractCalls != 0 {
		t.Error("extraction must never run without readiness")
	}
	if client.summarizeCalls != 0 {
		t.Error("summarization must never run without readiness")
	}

	if _, err := os.Stat(asset.Path); !os.IsNotExist(err) {
		t.Error("transient file should be removed after a poll failure")
	}
}

func TestProcessTimeoutSkipsInference(t *testing.T) {
	asset := tempAsset(t)
	client := &fakeGemini{uploadHandle: activeHandle()}
	poll := &fakePoller{err: &poller.TimeoutError{}}

	p := newTestPipeline(&fakeResolver{asset: asset}, client, poll)

	_, err := p.Process(context.Background(), Source{Path: "in.mp4"})
	var toErr *poller.TimeoutError
	if !errors.As(err, &toErr) {
		t.Fatalf("Process() error = %v, want TimeoutError", err)
	}
	if client.extractCalls != 0 {
		t.Error("extraction must never run after a readiness timeout")
	}
}

func TestProcessEmptyExtractionSkipsSummary(t *testing.T) {
	tests := []struct {
		name   string
		client *fakeGemini
	}{
		{
			name: "extraction error",
			client: &fakeGemini{
				uploadHandle: activeHandle(),
				extractErr:   &gemini.ExtractionError{Err: errors.New("service fault")},
			},
		},
		{
			name: "empty transcript",
			client: &fakeGemini{
				uploadHandle: activeHandle(),
				extractText:  "   \n ",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			asset := tempAsset(t)
			poll := &fakePoller{handle: activeHandle()}
			p := newTestPipeline(&fakeResolver{asset: asset}, tt.client, poll)

			_, err := p.Process(context.Background(), Source{Path: "in.mp4"})
			var exErr *gemini.ExtractionError
			if !errors.As(err, &exErr) {
				t.Fatalf("Process() error = %v, want ExtractionError", err)
			}
			if tt.client.summarizeCalls != 0 {
				t.Errorf("summarize calls = %d, want 0", tt.client.summarizeCalls)
			}
		})
	}
}

func TestProcessSummarizationFailure(t *testing.T) {
	asset := tempAsset(t)
	client := &fakeGemini{
		uploadHandle: activeHandle(),
		extractText:  "transcript",
		summaryErr:   &gemini.SummarizationError{Err: errors.New("service fault")},
	}
	poll := &fakePoller{handle: activeHandle()}

	p := newTestPipeline(&fakeResolver{asset: asset}, client, poll)

	_, err := p.Process(context.Background(), Source{Path: "in.mp4"})
	var sumErr *gemini.SummarizationError
	if !errors.As(err, &sumErr) {
		t.Fatalf("Process() error = %v, want SummarizationError", err)
	}

	if _, statErr := os.Stat(asset.Path); !os.IsNotExist(statErr) {
		t.Error("transient file should be removed after a summarization failure")
	}
}
