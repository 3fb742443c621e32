package gemini

import (
	"github.com/nguyentantai21042004/video-insight/internal/logger"
)

type implClient struct {
	apiKeys    []string
	currentKey int
	model      string
	logger     logger.Logger
}

// New creates a Client that rotates through the supplied Gemini API keys
// when the generation endpoint reports quota exhaustion.
func New(apiKeys []string, model string, log logger.Logger) Client {
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &implClient{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}
}
