package analysis

import (
	"math"
	"testing"

	"github.com/nao1215/avrsize/internal/model"
)

func segment(flags model.SegmentFlags, size uint64) model.Segment {
	return model.Segment{Type: "PT_LOAD", Flags: flags, FileSize: size}
}

// TestClassifySegment tests that only exact R+X and R+W flags are accounted.
func TestClassifySegment(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		flags model.SegmentFlags
		want  model.Category
	}{
		{"read execute is program", model.FlagRead | model.FlagExecute, model.CategoryProgram},
		{"read write is dynamic", model.FlagRead | model.FlagWrite, model.CategoryDynamic},
		{"read only is ignored", model.FlagRead, model.CategoryNone},
		{"read write execute is ignored", model.FlagRead | model.FlagWrite | model.FlagExecute, model.CategoryNone},
		{"no flags is ignored", 0, model.CategoryNone},
		{"execute only is ignored", model.FlagExecute, model.CategoryNone},
		{"write only is ignored", model.FlagWrite, model.CategoryNone},
		{"extra OS bits are ignored", model.FlagRead | model.FlagExecute | 0x00100000, model.CategoryNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ClassifySegment(segment(tt.flags, 1)); got != tt.want {
				t.Errorf("ClassifySegment(%s) = %v, want %v", tt.flags, got, tt.want)
			}
		})
	}
}

// TestClassify tests the accumulation of totals.
func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("single program segment", func(t *testing.T) {
		t.Parallel()

		totals := Classify([]model.Segment{segment(model.FlagRead|model.FlagExecute, 1000)})
		if totals.ProgramBytes != 1000 || totals.DynamicBytes != 0 {
			t.Errorf("unexpected totals: %+v", totals)
		}
	})

	t.Run("read only segment contributes to neither total", func(t *testing.T) {
		t.Parallel()

		totals := Classify([]model.Segment{
			segment(model.FlagRead|model.FlagExecute, 500),
			segment(model.FlagRead, 4096),
			segment(model.FlagRead|model.FlagWrite, 30),
		})
		if totals.ProgramBytes != 500 {
			t.Errorf("expected 500 program bytes, got %d", totals.ProgramBytes)
		}
		if totals.DynamicBytes != 30 {
			t.Errorf("expected 30 dynamic bytes, got %d", totals.DynamicBytes)
		}
		if totals.IgnoredBytes != 4096 {
			t.Errorf("expected 4096 ignored bytes, got %d", totals.IgnoredBytes)
		}
	})

	t.Run("multiple segments of the same kind are summed", func(t *testing.T) {
		t.Parallel()

		totals := Classify([]model.Segment{
			segment(model.FlagRead|model.FlagWrite, 10),
			segment(model.FlagRead|model.FlagWrite, 20),
			segment(model.FlagRead|model.FlagExecute, 1),
			segment(model.FlagRead|model.FlagExecute, 2),
		})
		if totals.ProgramBytes != 3 || totals.DynamicBytes != 30 {
			t.Errorf("unexpected totals: %+v", totals)
		}
	})

	t.Run("no segments yields zero totals", func(t *testing.T) {
		t.Parallel()

		for _, segments := range [][]model.Segment{nil, {}} {
			if totals := Classify(segments); totals != (model.Totals{}) {
				t.Errorf("expected zero totals, got %+v", totals)
			}
		}
	})
}

// TestClassifyPartition tests that every byte is accounted exactly once.
func TestClassifyPartition(t *testing.T) {
	t.Parallel()

	var segments []model.Segment
	var sum uint64
	for flags := model.SegmentFlags(0); flags < 8; flags++ {
		size := uint64(flags+1) * 111
		segments = append(segments, segment(flags, size))
		sum += size
	}

	totals := Classify(segments)
	if got := totals.ProgramBytes + totals.DynamicBytes + totals.IgnoredBytes; got != sum {
		t.Errorf("expected partition sum %d, got %d (%+v)", sum, got, totals)
	}
	if totals.ProgramBytes != 6*111 {
		t.Errorf("expected only the R-X segment in program bytes, got %d", totals.ProgramBytes)
	}
	if totals.DynamicBytes != 7*111 {
		t.Errorf("expected only the RW- segment in dynamic bytes, got %d", totals.DynamicBytes)
	}
}

// TestClassifyLargeSegments tests that totals do not wrap around for
// segment sizes whose sum exceeds 64 bits.
func TestClassifyLargeSegments(t *testing.T) {
	t.Parallel()

	rx := model.FlagRead | model.FlagExecute
	rw := model.FlagRead | model.FlagWrite

	totals := Classify([]model.Segment{
		segment(rx, 1<<63),
		segment(rx, 1<<63),
		segment(rx, 100),
		segment(rw, 1<<63),
		segment(rw, 1<<62),
	})
	if totals.ProgramBytes != math.MaxUint64 {
		t.Errorf("expected saturated program total, got %d", totals.ProgramBytes)
	}
	if totals.DynamicBytes != 1<<63+1<<62 {
		t.Errorf("expected exact dynamic total, got %d", totals.DynamicBytes)
	}

	report := model.NewReport("huge.elf")
	report.Totals = totals
	if err := Evaluate(report, model.Budget{MaxProgramBytes: 32256, MaxDynamicBytes: 2048}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.Program.Exceeded || !report.Dynamic.Exceeded {
		t.Errorf("expected both budgets to be exceeded: %+v %+v", report.Program, report.Dynamic)
	}
}
