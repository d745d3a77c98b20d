package report

import (
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/nao1215/avrsize/internal/analysis"
	"github.com/nao1215/avrsize/internal/model"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	// warningPercent is the usage at which a budget is reported as tight.
	warningPercent = 90
	// importantPercent is the usage at which a budget is worth a notice.
	importantPercent = 75
)

// MarkdownWriter renders a report as GitHub flavored Markdown, suitable for
// a CI job summary or a pull request comment. Byte counts use English digit
// grouping.
type MarkdownWriter struct {
	baseWriter

	// printer formats byte counts with digit grouping.
	printer *message.Printer

	// charts adds a mermaid pie chart per budget.
	charts bool
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithCharts enables mermaid pie charts of used and free memory.
func WithCharts() MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.charts = true
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		printer:    message.NewPrinter(language.English),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeUsage(md, report)
	w.writeSegments(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with file information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("avrsize Report")
	md.PlainText("")

	rows := [][]string{
		{"ELF File", "`" + report.File + "`"},
		{"Image Size", w.bytes(uint64(len(report.Data())))},
		{"Loadable Segments", strconv.Itoa(len(report.Segments))},
		{"Status", statusText(report.Exceeded())},
	}
	if report.Digest != "" {
		rows = append(rows, []string{"SHA3-256", "`" + report.Digest + "`"})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeUsage writes the budget table, optional charts and an alert.
func (w *MarkdownWriter) writeUsage(md *markdown.Markdown, report *model.Report) {
	md.H2("Memory Usage")
	md.PlainText("")

	usages := report.Usages()
	rows := make([][]string, 0, len(usages))
	for _, u := range usages {
		rows = append(rows, []string{
			u.Category.Label(),
			w.bytes(u.UsedBytes),
			w.bytes(u.MaxBytes),
			w.bytes(u.FreeBytes()),
			strconv.FormatUint(u.Percent, 10) + "%",
			statusText(u.Exceeded),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Memory", "Used", "Maximum", "Free", "Usage", "Status"},
		Rows:   rows,
	})
	md.PlainText("")

	if w.charts {
		for _, u := range usages {
			w.writePieChart(md, u)
		}
	}

	w.writeAlert(md, usages)
}

// writePieChart writes a mermaid pie chart of used and free bytes.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, u model.Usage) {
	if u.MaxBytes == 0 {
		return
	}
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle(u.Category.Label()),
		piechart.WithShowData(true),
	)
	chart.LabelAndIntValue("Used", u.UsedBytes)
	chart.LabelAndIntValue("Free", u.FreeBytes())

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an alert for the fullest budget.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, usages []model.Usage) {
	fullest := usages[0]
	for _, u := range usages[1:] {
		if u.Percent > fullest.Percent {
			fullest = u
		}
	}

	switch {
	case fullest.Exceeded:
		md.Cautionf(
			"The sketch does not fit: %s is at %d%% of its %s budget.",
			fullest.Category.Label(), fullest.Percent, w.bytes(fullest.MaxBytes),
		)
	case fullest.Percent >= warningPercent:
		md.Warningf(
			"Usage of %s is at %d%%. Only %s left.",
			fullest.Category.Label(), fullest.Percent, w.bytes(fullest.FreeBytes()),
		)
	case fullest.Percent >= importantPercent:
		md.Importantf(
			"Usage of %s is at %d%% of its budget.",
			fullest.Category.Label(), fullest.Percent,
		)
	default:
		md.Tip("The sketch fits comfortably in both budgets.")
	}
	md.PlainText("")
}

// writeSegments writes the loadable segment table.
func (w *MarkdownWriter) writeSegments(md *markdown.Markdown, report *model.Report) {
	md.H2("Loadable Segments")
	md.PlainText("")

	if len(report.Segments) == 0 {
		md.PlainText("No loadable segments found.")
		md.PlainText("")
		return
	}

	rows := make([][]string, 0, len(report.Segments))
	for _, seg := range report.Segments {
		rows = append(rows, []string{
			strconv.Itoa(seg.Index),
			seg.Flags.String(),
			w.printer.Sprintf("%d", seg.FileSize),
			w.printer.Sprintf("%d", seg.MemSize),
			"0x" + strconv.FormatUint(seg.VAddr, 16),
			analysis.ClassifySegment(seg).String(),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"#", "Flags", "File Size", "Memory Size", "Address", "Counted As"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [avrsize](https://github.com/nao1215/avrsize)*")
}

// bytes formats n as a grouped byte count followed by its IEC size,
// e.g. "2,048 bytes (2.0 KiB)".
func (w *MarkdownWriter) bytes(n uint64) string {
	return w.printer.Sprintf("%d bytes", n) + " (" + humanize.IBytes(n) + ")"
}

// statusText returns the status cell for a verdict.
func statusText(exceeded bool) string {
	if exceeded {
		return "Exceeded"
	}
	return "OK"
}
