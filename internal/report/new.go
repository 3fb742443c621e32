package report

import (
	"github.com/nguyentantai21042004/video-insight/internal/logger"
)

type implWriter struct {
	destDir string
	logger  logger.Logger
}

// New creates a Writer that places all artifacts under destDir.
func New(destDir string, log logger.Logger) Writer {
	return &implWriter{
		destDir: destDir,
		logger:  log,
	}
}
