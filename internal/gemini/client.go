package gemini

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"google.golang.org/genai"
)

// Upload hands the transient video file to the Gemini file store and
// returns its handle. The file usually enters the PROCESSING state and must
// be polled to readiness before it can be used as generation input.
func (c *implClient) Upload(ctx context.Context, path string) (*FileHandle, error) {
	client, err := c.newClient(ctx)
	if err != nil {
		return nil, &UploadError{Err: err}
	}

	file, err := client.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		MIMEType: mimeTypeFor(path),
	})
	if err != nil {
		return nil, &UploadError{Err: err}
	}

	c.logger.Info(ctx, "Uploaded %s as %s (state %s)", filepath.Base(path), file.Name, file.State)
	return handleFrom(file), nil
}

// GetFile re-queries the processing state of an uploaded file.
func (c *implClient) GetFile(ctx context.Context, name string) (*FileHandle, error) {
	client, err := c.newClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create client: %w", err)
	}

	file, err := client.Files.Get(ctx, name, nil)
	if err != nil {
		return nil, fmt.Errorf("get file %s: %w", name, err)
	}

	return handleFrom(file), nil
}

// ExtractText asks the model for a chronological transcript of everything
// spoken or shown in the readiness-confirmed video.
func (c *implClient) ExtractText(ctx context.Context, handle *FileHandle) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromURI(handle.URI, handle.MIMEType),
			genai.NewPartFromText(extractPrompt),
		}, genai.RoleUser),
	}

	text, err := c.generate(ctx, contents)
	if err != nil {
		return "", &ExtractionError{Err: err}
	}
	return text, nil
}

// Summarize condenses an extracted transcript into overview, key points,
// details and notable quotes.
func (c *implClient) Summarize(ctx context.Context, transcript string) (string, error) {
	prompt := fmt.Sprintf(summaryPrompt, transcript)

	text, err := c.generate(ctx, genai.Text(prompt))
	if err != nil {
		return "", &SummarizationError{Err: err}
	}
	return text, nil
}

// generate issues one content-generation call, rotating API keys on quota
// errors.
func (c *implClient) generate(ctx context.Context, contents []*genai.Content) (string, error) {
	attempts := len(c.apiKeys)
	var lastErr error

	for range attempts {
		client, err := c.newClient(ctx)
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			c.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, c.model, contents, nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				c.logger.Warn(ctx, "Key %d rate limited, rotating...", c.currentKey+1)
				c.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			if strings.TrimSpace(text) != "" {
				return text, nil
			}
		}

		return "", fmt.Errorf("empty response from Gemini")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (c *implClient) newClient(ctx context.Context) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  c.apiKeys[c.currentKey],
		Backend: genai.BackendGeminiAPI,
	})
}

func (c *implClient) rotateKey() {
	c.currentKey = (c.currentKey + 1) % len(c.apiKeys)
}

func handleFrom(f *genai.File) *FileHandle {
	return &FileHandle{
		Name:     f.Name,
		URI:      f.URI,
		MIMEType: f.MIMEType,
		State:    string(f.State),
	}
}

var videoMIMETypes = map[string]string{
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
	".avi":  "video/x-msvideo",
	".webm": "video/webm",
	".mpg":  "video/mpeg",
	".mpeg": "video/mpeg",
	".wmv":  "video/x-ms-wmv",
	".flv":  "video/x-flv",
}

func mimeTypeFor(path string) string {
	if mime, ok := videoMIMETypes[strings.ToLower(filepath.Ext(path))]; ok {
		return mime
	}
	return "video/mp4"
}
