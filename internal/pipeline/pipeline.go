package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nao1215/cloudscraper/internal/crawler"
	"github.com/nao1215/cloudscraper/internal/model"
)

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, with each step receiving the accumulated
// report from previous steps.
type Step interface {
	// Do executes the pipeline step.
	// Returns an error if the step fails critically; non-critical problems
	// should be recorded in the report and return nil.
	Do(ctx context.Context, report *model.ScanReport) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
type Pipeline struct {
	steps []Step

	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a new Pipeline with the given options.
// Steps should be added using AddSteps after creation.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// AddSteps appends steps to the pipeline. Steps run in the order they
// are added.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all pipeline steps in sequence.
//
// Execution stops at the first failing step, whose error is returned and
// recorded in the report. A cancelled context marks the report as Cancelled; a step error
// caused by a per-request timeout does not.
func (p *Pipeline) Execute(ctx context.Context, report *model.ScanReport) error {
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"target", report.Target,
				"reason", err,
			)
			report.Cancelled = true
			return err
		}

		p.logger.Info("executing step",
			"step", step.Name(),
			"target", report.Target,
		)

		if err := step.Do(ctx, report); err != nil {
			report.SetError(err)

			if ctx.Err() != nil {
				report.Cancelled = true
				p.logger.Warn("step interrupted",
					"step", step.Name(),
					"target", report.Target,
				)
				return err
			}

			// Unreachable targets are routine and only shown in verbose mode.
			level := slog.LevelError
			var netErr *crawler.NetworkError
			if errors.As(err, &netErr) {
				level = slog.LevelDebug
			}
			p.logger.Log(ctx, level, "step failed",
				"step", step.Name(),
				"target", report.Target,
				"error", err,
			)
			return err
		}

		p.logger.Debug("step completed",
			"step", step.Name(),
			"target", report.Target,
		)

		report.PerformedSteps = append(report.PerformedSteps, step.Name())
	}

	return nil
}
