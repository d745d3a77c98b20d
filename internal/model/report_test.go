package model

import (
	"math"
	"testing"
)

// TestTotalsAdd tests that every category lands in exactly one counter.
func TestTotalsAdd(t *testing.T) {
	t.Parallel()

	var totals Totals
	totals.Add(CategoryProgram, 100)
	totals.Add(CategoryDynamic, 20)
	totals.Add(CategoryNone, 3)
	totals.Add(CategoryProgram, 1)

	if totals.ProgramBytes != 101 {
		t.Errorf("expected 101 program bytes, got %d", totals.ProgramBytes)
	}
	if totals.DynamicBytes != 20 {
		t.Errorf("expected 20 dynamic bytes, got %d", totals.DynamicBytes)
	}
	if totals.IgnoredBytes != 3 {
		t.Errorf("expected 3 ignored bytes, got %d", totals.IgnoredBytes)
	}
}

// TestTotalsAddSaturates tests that huge segment sizes never wrap a counter.
func TestTotalsAddSaturates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category Category
		get      func(Totals) uint64
	}{
		{"program", CategoryProgram, func(tot Totals) uint64 { return tot.ProgramBytes }},
		{"dynamic", CategoryDynamic, func(tot Totals) uint64 { return tot.DynamicBytes }},
		{"ignored", CategoryNone, func(tot Totals) uint64 { return tot.IgnoredBytes }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var totals Totals
			for range 4 {
				totals.Add(tt.category, 1<<62)
			}
			totals.Add(tt.category, 100)

			if got := tt.get(totals); got != math.MaxUint64 {
				t.Errorf("expected saturation at %d, got %d", uint64(math.MaxUint64), got)
			}

			totals.Add(tt.category, 1)
			if got := tt.get(totals); got != math.MaxUint64 {
				t.Errorf("expected counter to stay saturated, got %d", got)
			}
		})
	}
}

// TestUsageFreeBytes tests the remaining budget calculation.
func TestUsageFreeBytes(t *testing.T) {
	t.Parallel()

	t.Run("within budget", func(t *testing.T) {
		t.Parallel()
		u := Usage{UsedBytes: 1000, MaxBytes: 2048}
		if u.FreeBytes() != 1048 {
			t.Errorf("expected 1048 free bytes, got %d", u.FreeBytes())
		}
	})

	t.Run("over budget", func(t *testing.T) {
		t.Parallel()
		u := Usage{UsedBytes: 3000, MaxBytes: 2048}
		if u.FreeBytes() != 0 {
			t.Errorf("expected 0 free bytes, got %d", u.FreeBytes())
		}
	})
}

// TestNewReport tests the Report constructor and verdict.
func TestNewReport(t *testing.T) {
	t.Parallel()

	report := NewReport("firmware.elf")

	if report.File != "firmware.elf" {
		t.Errorf("expected file %q, got %q", "firmware.elf", report.File)
	}
	if report.Segments == nil {
		t.Error("expected non-nil segments")
	}
	if report.Program.Category != CategoryProgram {
		t.Errorf("expected program category, got %v", report.Program.Category)
	}
	if report.Dynamic.Category != CategoryDynamic {
		t.Errorf("expected dynamic category, got %v", report.Dynamic.Category)
	}
	if report.Exceeded() {
		t.Error("expected empty report not to exceed")
	}

	report.Dynamic.Exceeded = true
	if !report.Exceeded() {
		t.Error("expected report to exceed when dynamic memory exceeds")
	}

	usages := report.Usages()
	if len(usages) != 2 || usages[0].Category != CategoryProgram || usages[1].Category != CategoryDynamic {
		t.Errorf("unexpected usages order: %+v", usages)
	}
}

// TestReportData tests that raw image bytes are carried but not exported.
func TestReportData(t *testing.T) {
	t.Parallel()

	report := NewReport("a.elf")
	if report.Data() != nil {
		t.Error("expected nil data before SetData")
	}
	report.SetData([]byte{0x7f, 'E', 'L', 'F'})
	if len(report.Data()) != 4 {
		t.Errorf("expected 4 bytes of data, got %d", len(report.Data()))
	}
}
