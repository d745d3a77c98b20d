package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/avrsize/internal/model"
)

// usageLine is the sentence printed for each budget. The wording matches the
// Arduino IDE output and must not change.
const usageLine = "This sketch uses %d bytes (%d%%) of %s. The maximum is %d bytes.\n"

// TextWriter outputs the two line usage summary:
//
//	This sketch uses 1000 bytes (4%) of program memory. The maximum is 32256 bytes.
//	This sketch uses 9 bytes (1%) of dynamic memory. The maximum is 2048 bytes.
type TextWriter struct {
	baseWriter
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer) *TextWriter {
	return &TextWriter{baseWriter: newBaseWriter(output)}
}

// Write outputs the program line followed by the dynamic line.
func (w *TextWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder
	for _, u := range report.Usages() {
		sb.WriteString(FormatUsage(u))
	}
	return io.WriteString(w.output, sb.String())
}

// FormatUsage returns the report line for a single budget, including the
// trailing newline.
func FormatUsage(u model.Usage) string {
	return fmt.Sprintf(usageLine, u.UsedBytes, u.Percent, u.Category.Label(), u.MaxBytes)
}
