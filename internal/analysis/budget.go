package analysis

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/nao1215/avrsize/internal/model"
)

// ErrMemoryExceeded is returned by Check when a binary does not fit into
// at least one of its budgets.
var ErrMemoryExceeded = errors.New("uses too much memory")

// ErrZeroBudget is returned by Evaluate when a budget is zero, which would
// make the utilization undefined.
var ErrZeroBudget = errors.New("memory budget must be greater than zero")

// Percent returns used as a percentage of maxBytes, rounded up to the next
// whole percent. It is computed in float64, so any non-zero usage reports at
// least 1% and a usage one byte over the limit reports more than 100%.
// maxBytes must not be zero.
//
// float64 cannot tell apart sizes that differ below its 53 bit mantissa, so
// the result is pinned to 100 or 101 when rounding would put it on the wrong
// side of the limit. Results beyond the uint64 range are capped at
// math.MaxUint64.
func Percent(used, maxBytes uint64) uint64 {
	f := math.Ceil(float64(used) / float64(maxBytes) * 100)

	var percent uint64
	if f >= maxPercent {
		percent = math.MaxUint64
	} else {
		percent = uint64(f)
	}

	switch {
	case used > maxBytes && percent <= 100:
		return 101
	case used <= maxBytes && percent > 100:
		return 100
	}
	return percent
}

// maxPercent is 2^64, the first float64 that does not fit in a uint64.
const maxPercent = float64(math.MaxUint64)

// NewUsage computes the usage of a single budget.
func NewUsage(c model.Category, used, maxBytes uint64) model.Usage {
	percent := Percent(used, maxBytes)
	return model.Usage{
		Category:  c,
		UsedBytes: used,
		MaxBytes:  maxBytes,
		Percent:   percent,
		Exceeded:  percent > 100,
	}
}

// Evaluate fills the program and dynamic usages of report from its totals.
func Evaluate(report *model.Report, budget model.Budget) error {
	if budget.MaxProgramBytes == 0 {
		return fmt.Errorf("%s: %w", model.CategoryProgram.Label(), ErrZeroBudget)
	}
	if budget.MaxDynamicBytes == 0 {
		return fmt.Errorf("%s: %w", model.CategoryDynamic.Label(), ErrZeroBudget)
	}

	report.Program = NewUsage(model.CategoryProgram, report.Totals.ProgramBytes, budget.MaxProgramBytes)
	report.Dynamic = NewUsage(model.CategoryDynamic, report.Totals.DynamicBytes, budget.MaxDynamicBytes)
	return nil
}

// Check returns an error wrapping ErrMemoryExceeded when either budget of an
// evaluated report is exceeded, and nil otherwise.
func Check(report *model.Report) error {
	var over []string
	for _, u := range report.Usages() {
		if u.Exceeded {
			over = append(over, fmt.Sprintf("%s at %d%% of %d bytes", u.Category.Label(), u.Percent, u.MaxBytes))
		}
	}
	if len(over) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrMemoryExceeded, strings.Join(over, ", "))
}
