package pipeline

import (
	"github.com/nguyentantai21042004/video-insight/internal/gemini"
	"github.com/nguyentantai21042004/video-insight/internal/logger"
	"github.com/nguyentantai21042004/video-insight/internal/poller"
	"github.com/nguyentantai21042004/video-insight/internal/progress"
	"github.com/nguyentantai21042004/video-insight/internal/resolver"
)

type implPipeline struct {
	resolver resolver.Resolver
	gemini   gemini.Client
	poller   poller.Poller
	reporter progress.Reporter
	logger   logger.Logger
}

// New creates a Pipeline instance
func New(res resolver.Resolver, client gemini.Client, poll poller.Poller, reporter progress.Reporter, log logger.Logger) Pipeline {
	if reporter == nil {
		reporter = progress.Nop()
	}
	return &implPipeline{
		resolver: res,
		gemini:   client,
		poller:   poll,
		reporter: reporter,
		logger:   log,
	}
}
