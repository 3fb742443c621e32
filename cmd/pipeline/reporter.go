package main

import (
	"github.com/schollz/progressbar/v3"

	"github.com/nguyentantai21042004/video-insight/internal/progress"
)

// barReporter renders pipeline progress events as a terminal bar, one bar
// per stage.
type barReporter struct {
	stage progress.Stage
	bar   *progressbar.ProgressBar
}

func newBarReporter() *barReporter {
	return &barReporter{}
}

func (r *barReporter) Publish(e progress.Event) {
	if e.Stage != r.stage || r.bar == nil {
		r.finish()
		r.stage = e.Stage
		r.bar = progressbar.NewOptions(100,
			progressbar.OptionSetDescription(stageLabel(e.Stage)),
			progressbar.OptionSetWidth(30),
			progressbar.OptionClearOnFinish(),
		)
	}
	if e.Fraction > 0 {
		_ = r.bar.Set(int(e.Fraction * 100))
	}
}

func (r *barReporter) finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
		r.bar = nil
	}
}

func stageLabel(s progress.Stage) string {
	switch s {
	case progress.StageDownload:
		return "Downloading video"
	case progress.StageUpload:
		return "Uploading to Gemini"
	case progress.StageProcess:
		return "Remote processing"
	case progress.StageExtract:
		return "Extracting text"
	case progress.StageSummarize:
		return "Creating summary"
	}
	return string(s)
}
