package pipeline

import (
	"context"
	"debug/elf"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/nao1215/avrsize/internal/analysis"
	"github.com/nao1215/avrsize/internal/elfimage"
	"github.com/nao1215/avrsize/internal/model"
	"github.com/nao1215/avrsize/internal/testutil"
)

var (
	discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))
	unoBudget     = model.Budget{MaxProgramBytes: 32256, MaxDynamicBytes: 2048}
)

// TestDefaultPipeline tests the composition of the default pipeline.
func TestDefaultPipeline(t *testing.T) {
	t.Parallel()

	p := DefaultPipeline(unoBudget, WithLogger(discardLogger))

	expected := []string{StepLoad, StepParse, StepClassify, StepEvaluate}
	names := p.StepNames()
	if len(names) != len(expected) {
		t.Fatalf("expected %d steps, got %v", len(expected), names)
	}
	for i := range expected {
		if names[i] != expected[i] {
			t.Errorf("step %d: got %q, expected %q", i, names[i], expected[i])
		}
	}
}

// TestDefaultPipelineExecute runs the whole pipeline over synthetic images.
func TestDefaultPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("program and dynamic segments", func(t *testing.T) {
		t.Parallel()

		path := testutil.WriteELF(t, testutil.Options{},
			testutil.Load(elf.PF_R|elf.PF_X, 1000),
			testutil.Load(elf.PF_R|elf.PF_W, 2048),
			testutil.Load(elf.PF_R, 77),
		)

		report := model.NewReport(path)
		if err := DefaultPipeline(unoBudget, WithLogger(discardLogger)).Execute(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(report.Segments) != 3 {
			t.Errorf("expected 3 segments, got %d", len(report.Segments))
		}
		if report.Program.UsedBytes != 1000 || report.Program.Percent != 4 {
			t.Errorf("unexpected program usage: %+v", report.Program)
		}
		if report.Dynamic.UsedBytes != 2048 || report.Dynamic.Percent != 100 || report.Dynamic.Exceeded {
			t.Errorf("unexpected dynamic usage: %+v", report.Dynamic)
		}
		if report.Totals.IgnoredBytes != 77 {
			t.Errorf("expected 77 ignored bytes, got %d", report.Totals.IgnoredBytes)
		}
		if len(report.Digest) != 64 {
			t.Errorf("expected digest to be set, got %q", report.Digest)
		}
		if len(report.PerformedSteps) != 4 {
			t.Errorf("expected 4 performed steps, got %v", report.PerformedSteps)
		}
	})

	t.Run("no loadable segments", func(t *testing.T) {
		t.Parallel()

		path := testutil.WriteELF(t, testutil.Options{Class64: true})

		report := model.NewReport(path)
		if err := DefaultPipeline(unoBudget, WithLogger(discardLogger)).Execute(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if report.Program.Percent != 0 || report.Dynamic.Percent != 0 || report.Exceeded() {
			t.Errorf("expected empty usage, got %+v / %+v", report.Program, report.Dynamic)
		}
	})

	t.Run("missing file stops at load", func(t *testing.T) {
		t.Parallel()

		report := model.NewReport(filepath.Join(t.TempDir(), "missing.elf"))
		err := DefaultPipeline(unoBudget, WithLogger(discardLogger)).Execute(context.Background(), report)

		if !errors.Is(err, elfimage.ErrIO) {
			t.Fatalf("expected ErrIO, got %v", err)
		}
		if len(report.PerformedSteps) != 0 {
			t.Errorf("expected no performed steps, got %v", report.PerformedSteps)
		}
	})

	t.Run("malformed file stops at parse", func(t *testing.T) {
		t.Parallel()

		report := model.NewReport("truncated.elf")
		report.SetData(testutil.BuildELF(t, testutil.Options{}, testutil.Load(elf.PF_R|elf.PF_X, 1))[:30])

		p := New([]Step{NewParseStep(discardLogger), NewClassifyStep(discardLogger)}, WithLogger(discardLogger))
		err := p.Execute(context.Background(), report)

		if !errors.Is(err, elfimage.ErrParse) {
			t.Fatalf("expected ErrParse, got %v", err)
		}
		if len(report.PerformedSteps) != 0 {
			t.Errorf("expected no performed steps, got %v", report.PerformedSteps)
		}
	})
}

// TestEvaluateStep tests budget evaluation in isolation.
func TestEvaluateStep(t *testing.T) {
	t.Parallel()

	t.Run("marks exceeded budgets", func(t *testing.T) {
		t.Parallel()

		report := model.NewReport("a.elf")
		report.Totals = model.Totals{ProgramBytes: 40000, DynamicBytes: 2049}

		if err := NewEvaluateStep(unoBudget, discardLogger).Do(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !report.Program.Exceeded || !report.Dynamic.Exceeded {
			t.Errorf("expected both budgets exceeded, got %+v / %+v", report.Program, report.Dynamic)
		}
	})

	t.Run("rejects zero budget", func(t *testing.T) {
		t.Parallel()

		step := NewEvaluateStep(model.Budget{MaxProgramBytes: 1}, discardLogger)
		if err := step.Do(context.Background(), model.NewReport("a.elf")); !errors.Is(err, analysis.ErrZeroBudget) {
			t.Errorf("expected ErrZeroBudget, got %v", err)
		}
	})
}
