package batch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/nguyentantai21042004/subtitle-lines/internal/discovery"
	"github.com/nguyentantai21042004/subtitle-lines/internal/document"
)

// Run walks the input tree in discovery order, one file at a time.
// Cancellation is honoured between files.
func (r *implRunner) Run(ctx context.Context) (Report, error) {
	start := time.Now()
	report := Report{RunID: ulid.Make().String()}

	inputDir := r.cfg.InputDir()
	outputDir := r.cfg.OutputDir()

	r.logger.Info(ctx, "Run %s: %s -> %s (overwrite=%t)", report.RunID, inputDir, outputDir, bool(r.cfg.Overwrite))

	files, err := discovery.FindFiles(inputDir)
	if err != nil {
		return report, fmt.Errorf("find files: %w", err)
	}
	report.Total = len(files)
	r.logger.Info(ctx, "Have %d to parse!", len(files))

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return report, fmt.Errorf("create output dir %s: %w", outputDir, err)
	}

	for _, f := range files {
		if ctx.Err() != nil {
			report.Stopped = true
			r.logger.Info(ctx, "Process stopped by user...")
			break
		}
		report.Outcomes = append(report.Outcomes, r.ProcessFile(ctx, f))
	}

	report.Duration = time.Since(start)
	r.logger.Info(ctx, "Run %s finished in %s: %d processed, %d skipped, %d failed",
		report.RunID, report.Duration,
		report.Count(KindOK), report.Count(KindSkipped), len(report.Failures()))

	return report, nil
}

// ProcessFile extracts path into the output dir and optionally exports it.
// Every failure, panics included, is logged and returned in the Outcome.
func (r *implRunner) ProcessFile(ctx context.Context, path string) (out Outcome) {
	out.Path = path

	defer func() {
		if p := recover(); p != nil {
			out.Kind = KindExtractionError
			out.Err = fmt.Errorf("panic: %v", p)
			r.logger.Error(ctx, "Error in %s: %v", path, out.Err)
		}
	}()

	res, err := r.extractor.Extract(ctx, path, r.cfg.OutputDir(), bool(r.cfg.Overwrite))
	out.Result = res
	if err != nil {
		out.Kind = classify(err)
		out.Err = err
		r.logger.Error(ctx, "Error in %s: %v", path, err)
		return out
	}

	if res.Skipped {
		out.Kind = KindSkipped
		return out
	}
	out.Kind = KindOK

	if r.exporter != nil && len(res.Lines) > 0 {
		if _, err := r.exporter.Export(ctx, res.ID, res.Lines); err != nil {
			r.logger.Warn(ctx, "Failed to export transcript for %s: %v", path, err)
		}
	}

	return out
}

func classify(err error) Kind {
	if errors.Is(err, document.ErrParse) {
		return KindParseError
	}
	return KindExtractionError
}
