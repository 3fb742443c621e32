package resolver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/nguyentantai21042004/video-insight/internal/progress"
)

const copyChunkSize = 32 * 1024

// FromURL streams the video at rawURL into a transient file, reporting
// fractional download progress when the response declares a length.
func (r *implResolver) FromURL(ctx context.Context, rawURL string) (*Asset, error) {
	r.logger.Info(ctx, "Downloading video: %s", rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &DownloadError{URL: rawURL, Err: err}
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, &DownloadError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &DownloadError{URL: rawURL, Err: fmt.Errorf("unexpected status %s", resp.Status)}
	}

	dst, err := r.createTemp(extFromURL(rawURL))
	if err != nil {
		return nil, &DownloadError{URL: rawURL, Err: err}
	}

	written, err := r.copyWithProgress(dst, resp.Body, resp.ContentLength)
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(dst.Name())
		return nil, &DownloadError{URL: rawURL, Err: err}
	}

	r.logger.Info(ctx, "Download completed: %s (%d bytes)", dst.Name(), written)
	return &Asset{Path: dst.Name(), SizeBytes: written}, nil
}

// FromBytes writes an uploaded buffer verbatim to a transient file. The
// extension hint must be on the allow-list.
func (r *implResolver) FromBytes(ctx context.Context, data []byte, ext string) (*Asset, error) {
	ext = normalizeExt(ext)
	if !IsSupported("video" + ext) {
		return nil, fmt.Errorf("unsupported video format %q (supported: %s)",
			ext, strings.Join(SupportedExtensions(), ", "))
	}

	dst, err := r.createTemp(ext)
	if err != nil {
		return nil, fmt.Errorf("create transient file: %w", err)
	}

	if _, err := dst.Write(data); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return nil, fmt.Errorf("write transient file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return nil, fmt.Errorf("close transient file: %w", err)
	}

	r.logger.Debug(ctx, "Buffered upload saved: %s (%d bytes)", dst.Name(), len(data))
	return &Asset{Path: dst.Name(), SizeBytes: int64(len(data))}, nil
}

// FromFile copies a local video into a transient file so the pipeline owns
// a deletable copy without touching the original.
func (r *implResolver) FromFile(ctx context.Context, path string) (*Asset, error) {
	if !IsSupported(path) {
		return nil, fmt.Errorf("unsupported video format %q (supported: %s)",
			filepath.Ext(path), strings.Join(SupportedExtensions(), ", "))
	}

	src, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open video file: %w", err)
	}
	defer src.Close()

	dst, err := r.createTemp(strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return nil, fmt.Errorf("create transient file: %w", err)
	}

	written, err := io.Copy(dst, src)
	closeErr := dst.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(dst.Name())
		return nil, fmt.Errorf("copy video file: %w", err)
	}

	r.logger.Debug(ctx, "Local video staged: %s -> %s", path, dst.Name())
	return &Asset{Path: dst.Name(), SizeBytes: written}, nil
}

func (r *implResolver) createTemp(ext string) (*os.File, error) {
	if err := os.MkdirAll(r.tempDir, 0755); err != nil {
		return nil, err
	}
	name := filepath.Join(r.tempDir, "video-"+uuid.NewString()+ext)
	return os.Create(name)
}

func (r *implResolver) copyWithProgress(dst io.Writer, src io.Reader, total int64) (int64, error) {
	buf := make([]byte, copyChunkSize)
	var written int64

	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			if _, err := dst.Write(buf[:n]); err != nil {
				return written, err
			}
			written += int64(n)
			if total > 0 {
				r.reporter.Publish(progress.Event{
					Stage:    progress.StageDownload,
					Fraction: float64(written) / float64(total),
					Message:  "downloading video",
				})
			}
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, readErr
		}
	}
}

// extFromURL derives the transient file extension from the URL path,
// falling back to .mp4 when the path carries no recognized extension.
func extFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ".mp4"
	}
	ext := strings.ToLower(filepath.Ext(u.Path))
	if ext != "" && IsSupported("video"+ext) {
		return ext
	}
	return ".mp4"
}

func normalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" {
		return ".mp4"
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
