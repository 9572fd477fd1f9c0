package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/nao1215/cloudscraper/internal/model"
)

// BatchProcessor scans a list of targets one after another. Each target is
// a full crawl to completion before the next one starts, and a failing
// target never stops the batch.
type BatchProcessor struct {
	// pipelineFactory creates a fresh pipeline for each target.
	pipelineFactory func() *Pipeline

	// onStart is called before each target is scanned.
	onStart func(target string, index int)

	logger *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor)

// WithBatchLogger sets a custom logger for batch processing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchProcessor) {
		b.logger = logger
	}
}

// WithOnStart registers a function called before each target is scanned.
func WithOnStart(fn func(target string, index int)) BatchOption {
	return func(b *BatchProcessor) {
		b.onStart = fn
	}
}

// NewBatchProcessor creates a new BatchProcessor.
func NewBatchProcessor(pipelineFactory func() *Pipeline, opts ...BatchOption) *BatchProcessor {
	bp := &BatchProcessor{
		pipelineFactory: pipelineFactory,
	}

	for _, opt := range opts {
		opt(bp)
	}

	if bp.logger == nil {
		bp.logger = slog.Default()
	}

	return bp
}

// ProcessBatch scans targets in order and hands each finished report to
// callback, including reports of failed scans. If ctx is cancelled the
// interrupted target's partial report is still delivered, the remaining
// targets are skipped and ctx.Err() is returned.
func (bp *BatchProcessor) ProcessBatch(
	ctx context.Context,
	targets []string,
	callback func(report *model.ScanReport, index int),
) error {
	bp.logger.Info("starting batch processing", "total_targets", len(targets))
	startTime := time.Now()

	for i, target := range targets {
		if err := ctx.Err(); err != nil {
			return err
		}

		if bp.onStart != nil {
			bp.onStart(target, i)
		}

		report := model.NewScanReport(target)
		err := bp.pipelineFactory().Execute(ctx, report)
		report.Duration = time.Since(report.DateScanned)

		if err != nil {
			bp.logger.Info("scan failed", "target", target, "error", err)
		} else {
			bp.logger.Info("scan completed", "target", target, "links", report.TotalLinks())
		}

		callback(report, i)

		if report.Cancelled {
			return ctx.Err()
		}
	}

	bp.logger.Info("batch processing complete",
		"total_targets", len(targets),
		"elapsed", time.Since(startTime),
	)
	return nil
}
