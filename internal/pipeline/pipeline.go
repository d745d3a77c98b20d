package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/nao1215/avrsize/internal/model"
)

// Step is one stage of checking a binary.
// All steps of a run share the same report; a step reads what earlier steps
// stored and fills in its own part.
type Step interface {
	// Name identifies the step in logs and in Report.PerformedSteps.
	Name() string

	// Do runs the step. A non-nil error ends the run.
	Do(ctx context.Context, report *model.Report) error
}

// Pipeline runs a fixed list of steps over a report.
type Pipeline struct {
	steps  []Step
	logger *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used by the pipeline and by the steps
// DefaultPipeline creates. slog.Default() is used otherwise.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a pipeline that runs steps in the given order.
func New(steps []Step, opts ...Option) *Pipeline {
	p := &Pipeline{steps: steps}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// StepNames returns the step names in run order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, 0, len(p.steps))
	for _, s := range p.steps {
		names = append(names, s.Name())
	}
	return names
}

// Execute runs the steps in order and returns the first error.
// Cancellation is observed between steps; the report keeps the names of
// the steps that completed.
func (p *Pipeline) Execute(ctx context.Context, report *model.Report) error {
	for _, s := range p.steps {
		if err := ctx.Err(); err != nil {
			p.logger.Warn("run cancelled", "before", s.Name(), "reason", err)
			return err
		}

		start := time.Now()
		err := s.Do(ctx, report)
		p.logger.Debug("step done",
			"step", s.Name(),
			"file", report.File,
			"elapsed", time.Since(start),
			"error", err,
		)
		if err != nil {
			return err
		}

		report.PerformedSteps = append(report.PerformedSteps, s.Name())
	}
	return nil
}
