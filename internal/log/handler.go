package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// PathHandler wraps an slog.Handler and rewrites string attributes that
// start with the user's home directory to start with "~" instead.
// Build logs are often pasted into issues; this keeps user names out of them.
type PathHandler struct {
	// handler is the underlying slog handler that receives rewritten records.
	handler slog.Handler

	// home is the absolute home directory, without trailing separator.
	// Empty disables rewriting.
	home string
}

// NewPathHandler creates a new PathHandler wrapping the given handler.
// If handler is nil, the returned PathHandler will use slog.Default().Handler().
func NewPathHandler(handler slog.Handler, home string) *PathHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	home = strings.TrimSuffix(home, string(filepath.Separator))
	return &PathHandler{handler: handler, home: home}
}

// Enabled reports whether the handler handles records at the given level.
// It delegates to the underlying handler.
func (h *PathHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle rewrites the record's attributes and passes it to the underlying handler.
func (h *PathHandler) Handle(ctx context.Context, r slog.Record) error {
	rewritten := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)

	r.Attrs(func(a slog.Attr) bool {
		rewritten.AddAttrs(h.rewriteAttr(a))
		return true
	})

	return h.handler.Handle(ctx, rewritten)
}

// WithAttrs returns a new handler with the given attributes added.
func (h *PathHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	rewritten := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		rewritten[i] = h.rewriteAttr(a)
	}
	return &PathHandler{handler: h.handler.WithAttrs(rewritten), home: h.home}
}

// WithGroup returns a new handler with the given group name.
func (h *PathHandler) WithGroup(name string) slog.Handler {
	return &PathHandler{handler: h.handler.WithGroup(name), home: h.home}
}

// rewriteAttr rewrites a single attribute, recursively handling groups.
func (h *PathHandler) rewriteAttr(a slog.Attr) slog.Attr {
	a.Value = a.Value.Resolve()

	if a.Value.Kind() == slog.KindGroup {
		attrs := a.Value.Group()
		rewritten := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			rewritten[i] = h.rewriteAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(rewritten...)}
	}

	if a.Value.Kind() == slog.KindString {
		return slog.String(a.Key, h.shorten(a.Value.String()))
	}

	return a
}

// shorten replaces a leading home directory with "~".
// Only whole path components match: "/home/al" does not shorten "/home/alice".
func (h *PathHandler) shorten(value string) string {
	if h.home == "" || h.home == string(filepath.Separator) {
		return value
	}
	if value == h.home {
		return "~"
	}
	if rest, ok := strings.CutPrefix(value, h.home+string(filepath.Separator)); ok {
		return "~" + string(filepath.Separator) + rest
	}
	return value
}

// userHome returns the home directory, or an empty string if it is unknown.
func userHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return home
}

// levelFor maps the verbose flag to a minimum log level.
func levelFor(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// NewLogger creates a new text slog.Logger that shortens home directory paths.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: levelFor(verbose),
	}

	return slog.New(NewPathHandler(slog.NewTextHandler(w, opts), userHome()))
}

// NewJSONLogger creates a new slog.Logger that outputs JSON format.
// Useful when the build system collects structured logs.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: levelFor(verbose),
	}

	return slog.New(NewPathHandler(slog.NewJSONHandler(w, opts), userHome()))
}
