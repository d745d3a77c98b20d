package model

import (
	"math"
	"math/bits"
)

// Totals holds the byte counts accumulated by the segment classifier.
// IgnoredBytes collects segments that count against neither budget so that
// ProgramBytes + DynamicBytes + IgnoredBytes always equals the sum of all
// segment file sizes.
type Totals struct {
	ProgramBytes uint64 `json:"programBytes"`
	DynamicBytes uint64 `json:"dynamicBytes"`
	IgnoredBytes uint64 `json:"ignoredBytes"`
}

// Add accounts size bytes against the given category.
// A counter that would overflow stays at math.MaxUint64, so a total never
// decreases.
func (t *Totals) Add(c Category, size uint64) {
	switch c {
	case CategoryProgram:
		t.ProgramBytes = saturatingAdd(t.ProgramBytes, size)
	case CategoryDynamic:
		t.DynamicBytes = saturatingAdd(t.DynamicBytes, size)
	default:
		t.IgnoredBytes = saturatingAdd(t.IgnoredBytes, size)
	}
}

func saturatingAdd(a, b uint64) uint64 {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return math.MaxUint64
	}
	return sum
}

// Budget holds the two configured memory ceilings in bytes.
type Budget struct {
	MaxProgramBytes uint64 `json:"maxProgramBytes"`
	MaxDynamicBytes uint64 `json:"maxDynamicBytes"`
}

// Usage describes how much of a single budget a binary consumes.
type Usage struct {
	// Category is the storage this usage refers to.
	Category Category `json:"category"`

	// UsedBytes is the accumulated file size of the classified segments.
	UsedBytes uint64 `json:"usedBytes"`

	// MaxBytes is the configured budget.
	MaxBytes uint64 `json:"maxBytes"`

	// Percent is the utilization rounded up to the next whole percent.
	Percent uint64 `json:"percent"`

	// Exceeded is true when Percent is strictly greater than 100.
	Exceeded bool `json:"exceeded"`
}

// FreeBytes returns the number of bytes left in the budget, or zero when
// the budget is already exhausted.
func (u Usage) FreeBytes() uint64 {
	if u.UsedBytes >= u.MaxBytes {
		return 0
	}
	return u.MaxBytes - u.UsedBytes
}
