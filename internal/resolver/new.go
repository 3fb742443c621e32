package resolver

import (
	"net/http"
	"time"

	"github.com/nguyentantai21042004/video-insight/internal/logger"
	"github.com/nguyentantai21042004/video-insight/internal/progress"
)

type implResolver struct {
	tempDir    string
	httpClient *http.Client
	reporter   progress.Reporter
	logger     logger.Logger
}

// New creates a Resolver that writes transient files into tempDir.
func New(tempDir string, reporter progress.Reporter, log logger.Logger) Resolver {
	return &implResolver{
		tempDir: tempDir,
		httpClient: &http.Client{
			Timeout: 30 * time.Minute,
		},
		reporter: reporter,
		logger:   log,
	}
}
