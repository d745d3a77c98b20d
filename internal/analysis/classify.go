package analysis

import "github.com/nao1215/avrsize/internal/model"

const (
	programFlags = model.FlagRead | model.FlagExecute
	dynamicFlags = model.FlagRead | model.FlagWrite
)

// ClassifySegment returns the budget a segment is accounted against.
// The flags must match exactly; bits are not tested individually.
func ClassifySegment(s model.Segment) model.Category {
	switch s.Flags {
	case programFlags:
		return model.CategoryProgram
	case dynamicFlags:
		return model.CategoryDynamic
	default:
		return model.CategoryNone
	}
}

// Classify sums the file sizes of the segments per category.
// An empty slice yields zero totals.
func Classify(segments []model.Segment) model.Totals {
	var totals model.Totals
	for _, s := range segments {
		totals.Add(ClassifySegment(s), s.FileSize)
	}
	return totals
}
