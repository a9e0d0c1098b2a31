package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/subtitle-lines/internal/batch"
	"github.com/nguyentantai21042004/subtitle-lines/internal/config"
	"github.com/nguyentantai21042004/subtitle-lines/internal/export"
	"github.com/nguyentantai21042004/subtitle-lines/internal/extractor"
	"github.com/nguyentantai21042004/subtitle-lines/internal/logger"
	"github.com/nguyentantai21042004/subtitle-lines/internal/watcher"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go cancelOnSignal(sigChan, cancel)

	os.Exit(run(ctx, os.Args[1:], os.Stdout, os.Stderr))
}

// cancelOnSignal cancels on the first signal and then restores default
// handling, so a second Ctrl+C kills a run stuck in a slow file.
func cancelOnSignal(sigChan chan os.Signal, cancel context.CancelFunc) {
	<-sigChan
	cancel()
	signal.Stop(sigChan)
}

// run returns the process exit status
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.FromArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}

	log := logger.NewWithWriter(stdout, cfg.Logging.Level)
	log.Info(ctx, "Input: %s", cfg.InputDir())
	log.Info(ctx, "Output: %s", cfg.OutputDir())

	var exporter export.Exporter
	if cfg.Export.Docx {
		exporter = export.NewDocx(cfg.DocxDir(), log)
		log.Info(ctx, "DOCX transcripts: %s", cfg.DocxDir())
	}

	runner := batch.New(cfg, extractor.New(log), exporter, log)

	report, err := runner.Run(ctx)
	if err != nil {
		log.Error(ctx, "%v", err)
		return 1
	}
	if report.Stopped || !cfg.Watch {
		return 0
	}

	return watch(ctx, cfg, runner, log)
}

// watchHandler feeds watched files to the runner. ProcessFile already logs
// failures, so none are passed back to the watcher.
func watchHandler(runner batch.Runner) watcher.EventHandler {
	return func(ctx context.Context, path string) error {
		runner.ProcessFile(ctx, path)
		return nil
	}
}

func watch(ctx context.Context, cfg *config.Config, runner batch.Runner, log logger.Logger) int {
	w, err := watcher.New(cfg.InputDir(), watchHandler(runner), log, watcher.DefaultSettle)
	if err != nil {
		log.Error(ctx, "Failed to create watcher: %v", err)
		return 1
	}
	defer w.Stop()

	log.Info(ctx, "Press Ctrl+C to stop")
	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error(ctx, "Watcher error: %v", err)
		return 1
	}
	log.Info(ctx, "Process stopped by user...")
	return 0
}
