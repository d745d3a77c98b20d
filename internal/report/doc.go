// Package report provides report generation and output functionality.
//
// This package contains writers for different output formats:
//   - TextWriter: The two line summary printed by the Arduino IDE. Scripts
//     parse this output, so its wording is fixed
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: A Markdown document for CI job summaries
//
// Writers only render; the numbers in a report are computed by the
// analysis package before a writer sees it.
package report
