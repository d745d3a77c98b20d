package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/avrsize/internal/analysis"
	"github.com/nao1215/avrsize/internal/elfimage"
	"github.com/nao1215/avrsize/internal/model"
)

// Step names, in the order DefaultPipeline runs them.
const (
	StepLoad     = "load"
	StepParse    = "parse"
	StepClassify = "classify"
	StepEvaluate = "evaluate"
)

// LoadStep reads the ELF file named by the report into memory.
type LoadStep struct {
	logger *slog.Logger
}

// NewLoadStep creates a new LoadStep.
func NewLoadStep(logger *slog.Logger) *LoadStep {
	return &LoadStep{logger: logger}
}

// Name implements Step.
func (s *LoadStep) Name() string { return StepLoad }

// Do implements Step. Read failures are returned as *elfimage.IOError.
func (s *LoadStep) Do(_ context.Context, report *model.Report) error {
	data, err := elfimage.ReadFile(report.File)
	if err != nil {
		return err
	}

	report.SetData(data)
	report.Digest = elfimage.Digest(data)

	s.logger.Debug("ELF file loaded", "path", report.File, "size", len(data))
	return nil
}

// ParseStep decodes the loaded image into loadable segments.
type ParseStep struct {
	logger *slog.Logger
}

// NewParseStep creates a new ParseStep.
func NewParseStep(logger *slog.Logger) *ParseStep {
	return &ParseStep{logger: logger}
}

// Name implements Step.
func (s *ParseStep) Name() string { return StepParse }

// Do implements Step. Malformed images are returned as *elfimage.ParseError.
func (s *ParseStep) Do(_ context.Context, report *model.Report) error {
	segments, err := elfimage.Parse(report.Data())
	if err != nil {
		return err
	}

	report.Segments = segments
	for _, seg := range segments {
		s.logger.Debug("loadable segment",
			"index", seg.Index,
			"flags", seg.Flags.String(),
			"filesz", seg.FileSize,
			"memsz", seg.MemSize,
			"vaddr", seg.VAddr,
		)
	}
	return nil
}

// ClassifyStep accumulates segment sizes per storage category.
type ClassifyStep struct {
	logger *slog.Logger
}

// NewClassifyStep creates a new ClassifyStep.
func NewClassifyStep(logger *slog.Logger) *ClassifyStep {
	return &ClassifyStep{logger: logger}
}

// Name implements Step.
func (s *ClassifyStep) Name() string { return StepClassify }

// Do implements Step. It never fails.
func (s *ClassifyStep) Do(_ context.Context, report *model.Report) error {
	report.Totals = analysis.Classify(report.Segments)

	s.logger.Debug("segments classified",
		"program", report.Totals.ProgramBytes,
		"dynamic", report.Totals.DynamicBytes,
		"ignored", report.Totals.IgnoredBytes,
	)
	return nil
}

// EvaluateStep computes the budget utilization from the totals.
type EvaluateStep struct {
	budget model.Budget
	logger *slog.Logger
}

// NewEvaluateStep creates a new EvaluateStep for the given budget.
func NewEvaluateStep(budget model.Budget, logger *slog.Logger) *EvaluateStep {
	return &EvaluateStep{budget: budget, logger: logger}
}

// Name implements Step.
func (s *EvaluateStep) Name() string { return StepEvaluate }

// Do implements Step. It fails only for a zero budget.
func (s *EvaluateStep) Do(_ context.Context, report *model.Report) error {
	if err := analysis.Evaluate(report, s.budget); err != nil {
		return err
	}

	for _, u := range report.Usages() {
		if u.Exceeded {
			s.logger.Info("memory budget exceeded",
				"category", u.Category.String(),
				"used", u.UsedBytes,
				"max", u.MaxBytes,
				"percent", u.Percent,
			)
		}
	}
	return nil
}

// DefaultPipeline creates the pipeline that checks one ELF file against budget:
// load, parse, classify and evaluate.
func DefaultPipeline(budget model.Budget, opts ...Option) *Pipeline {
	p := New(nil, opts...)
	p.steps = []Step{
		NewLoadStep(p.logger),
		NewParseStep(p.logger),
		NewClassifyStep(p.logger),
		NewEvaluateStep(budget, p.logger),
	}
	return p
}
