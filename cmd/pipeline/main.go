package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/nguyentantai21042004/video-insight/internal/config"
	"github.com/nguyentantai21042004/video-insight/internal/gemini"
	"github.com/nguyentantai21042004/video-insight/internal/logger"
	"github.com/nguyentantai21042004/video-insight/internal/pipeline"
	"github.com/nguyentantai21042004/video-insight/internal/poller"
	"github.com/nguyentantai21042004/video-insight/internal/progress"
	"github.com/nguyentantai21042004/video-insight/internal/report"
	"github.com/nguyentantai21042004/video-insight/internal/resolver"
	"github.com/nguyentantai21042004/video-insight/internal/watcher"
	"github.com/nguyentantai21042004/video-insight/pkg/clock"
)

var Version = "dev"

type CLI struct {
	Config string `help:"Path to the YAML config file." default:"config.yaml"`

	URL   URLCmd   `cmd:"" help:"Process a video from a remote URL."`
	File  FileCmd  `cmd:"" help:"Process a local video file."`
	Watch WatchCmd `cmd:"" help:"Watch a directory and process new videos as they appear."`
}

type URLCmd struct {
	URL string `arg:"" name:"url" help:"Direct link to the video file."`
}

func (c *URLCmd) Run(a *app) error {
	return a.runOnce(pipeline.Source{URL: c.URL})
}

type FileCmd struct {
	Path string `arg:"" name:"path" type:"path" help:"Video file to process."`
}

func (c *FileCmd) Run(a *app) error {
	return a.runOnce(pipeline.Source{Path: c.Path})
}

type WatchCmd struct{}

func (c *WatchCmd) Run(a *app) error {
	ctx := context.Background()

	a.log.Info(ctx, "========================================")
	a.log.Info(ctx, "Video Insight Pipeline %s", Version)
	a.log.Info(ctx, "========================================")
	a.log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	a.log.Info(ctx, "Model: %s", a.cfg.Gemini.Model)
	a.log.Info(ctx, "Max Concurrent Processing: %d", a.cfg.Watch.MaxConcurrent)

	if err := ensureDirectories(a.cfg); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}

	pipe := a.buildPipeline(progress.Nop())

	handler := func(ctx context.Context, path string) error {
		result, err := pipe.Process(ctx, pipeline.Source{Path: path})
		if err != nil {
			return err
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		writer := report.New(filepath.Join(a.cfg.Paths.Output, name), a.log)
		_, err = writer.Write(ctx, result.ExtractedText, result.Summary)
		return err
	}

	w, err := watcher.New(a.cfg.Watch.Input, handler, a.log, a.cfg.Watch.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

type app struct {
	cfg *config.Config
	log logger.Logger
}

func newApp(configPath string) (*app, error) {
	var (
		cfg *config.Config
		err error
	)
	if _, statErr := os.Stat(configPath); os.IsNotExist(statErr) {
		cfg, err = config.Default()
	} else {
		cfg, err = config.Load(configPath)
	}
	if err != nil {
		return nil, err
	}

	return &app{cfg: cfg, log: logger.New(cfg.Logging.Level)}, nil
}

func (a *app) buildPipeline(rep progress.Reporter) pipeline.Pipeline {
	res := resolver.New(a.cfg.Paths.Temp, rep, a.log)
	client := gemini.New(a.cfg.Gemini.APIKeys, a.cfg.Gemini.Model, a.log)
	poll := poller.New(client, clock.New(),
		a.cfg.Gemini.PollInterval(), a.cfg.Gemini.PollTimeout(), rep, a.log)
	return pipeline.New(res, client, poll, rep, a.log)
}

func (a *app) runOnce(src pipeline.Source) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rep := newBarReporter()
	defer rep.finish()

	result, err := a.buildPipeline(rep).Process(ctx, src)
	if err != nil {
		return err
	}
	rep.finish()

	writer := report.New(a.cfg.Paths.Output, a.log)
	paths, err := writer.Write(ctx, result.ExtractedText, result.Summary)
	if err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	fmt.Println("Artifacts:")
	for _, p := range paths {
		fmt.Printf("  %s\n", p)
	}
	return nil
}

func ensureDirectories(cfg *config.Config) error {
	dirs := []string{cfg.Watch.Input, cfg.Paths.Output, cfg.Paths.Temp}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	return nil
}

func main() {
	// Optional .env for GEMINI_API_KEY(S)
	_ = godotenv.Load()

	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("video-insight"),
		kong.Description("Extract and summarize spoken and on-screen text from videos using Google Gemini."),
		kong.UsageOnError(),
	)

	a, err := newApp(cli.Config)
	kctx.FatalIfErrorf(err)
	kctx.FatalIfErrorf(kctx.Run(a))
}
