package poller

import (
	"time"

	"github.com/nguyentantai21042004/video-insight/internal/logger"
	"github.com/nguyentantai21042004/video-insight/internal/progress"
	"github.com/nguyentantai21042004/video-insight/pkg/clock"
)

const (
	defaultInterval = 2 * time.Second
	defaultTimeout  = 300 * time.Second
)

type implPoller struct {
	files    FileGetter
	clock    clock.Clock
	interval time.Duration
	timeout  time.Duration
	reporter progress.Reporter
	logger   logger.Logger
}

// New creates a Poller. interval is the fixed sleep between state queries,
// timeout the total wait ceiling; zero values pick the defaults (2s / 300s).
func New(files FileGetter, clk clock.Clock, interval, timeout time.Duration, reporter progress.Reporter, log logger.Logger) Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if reporter == nil {
		reporter = progress.Nop()
	}
	return &implPoller{
		files:    files,
		clock:    clk,
		interval: interval,
		timeout:  timeout,
		reporter: reporter,
		logger:   log,
	}
}
