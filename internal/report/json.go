package report

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/nao1215/avrsize/internal/model"
)

// JSONWriter outputs reports as a single JSON document followed by a newline.
// Without WithVersion the document is the bare model.Report; with it the
// report is wrapped in a JSONReport envelope.
type JSONWriter struct {
	baseWriter

	prefix  string
	indent  string
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent indents nested values with indent, prefixing every line after
// the first with prefix.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.prefix = prefix
		w.indent = indent
	}
}

// WithPrettyPrint indents with two spaces.
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// WithVersion wraps the report in a JSONReport carrying the avrsize version.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
// Output is compact unless an indent option is given.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{baseWriter: newBaseWriter(output)}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write encodes the report. Nothing is written if encoding fails.
func (w *JSONWriter) Write(report *model.Report) (int, error) {
	var v any = report
	if w.version != "" {
		v = NewJSONReport(report, w.version)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// ELF paths are not HTML; keep "<" and "&" readable.
	enc.SetEscapeHTML(false)
	enc.SetIndent(w.prefix, w.indent)
	if err := enc.Encode(v); err != nil {
		return 0, err
	}
	return w.output.Write(buf.Bytes())
}

// JSONReport is the document written by a JSONWriter created WithVersion.
type JSONReport struct {
	// Version is the avrsize version that produced the report.
	Version string `json:"version"`

	// Exceeded mirrors Report.Exceeded so consumers need not inspect both usages.
	Exceeded bool `json:"exceeded"`

	Report *model.Report `json:"report"`
}

// NewJSONReport wraps report with version information.
func NewJSONReport(report *model.Report, version string) *JSONReport {
	return &JSONReport{
		Version:  version,
		Exceeded: report.Exceeded(),
		Report:   report,
	}
}
