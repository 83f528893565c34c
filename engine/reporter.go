package engine

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/robbyt/loxsh/internal/helpers"
)

// Reporter writes everything the user sees about an evaluation: parse errors,
// runtime errors, shell diagnostics and computed values.
//
// Diagnostics and results are two sinks. Unless a results writer is given,
// both point at the same diagnostic stream, which keeps a dedicated results
// channel (stdout) free by default.
type Reporter struct {
	diag    io.Writer
	results io.Writer
	logger  *slog.Logger
}

// NewReporter creates a Reporter. A nil diag writes to stderr; a nil results
// shares the diag writer.
func NewReporter(handler slog.Handler, diag, results io.Writer) *Reporter {
	_, logger := helpers.SetupLogger(handler, "engine", "Reporter")
	if diag == nil {
		diag = os.Stderr
	}
	if results == nil {
		results = diag
	}
	return &Reporter{
		diag:    diag,
		results: results,
		logger:  logger,
	}
}

// Writer returns the diagnostic stream.
func (r *Reporter) Writer() io.Writer {
	return r.diag
}

// ParseError reports one parse error.
func (r *Reporter) ParseError(err error) {
	r.writeln(r.diag, err)
}

// RuntimeError reports an evaluation failure.
func (r *Reporter) RuntimeError(err error) {
	r.writeln(r.diag, err)
}

// Value reports a computed value on the results sink.
func (r *Reporter) Value(v EvaluatorResponse) {
	r.writeln(r.results, v.Inspect())
}

// Error reports a failure caught at the shell boundary, such as an
// unreadable `:eval` target.
func (r *Reporter) Error(err error) {
	r.writeln(r.diag, "  error: "+err.Error())
}

// Diagnostic reports a formatted shell message.
func (r *Reporter) Diagnostic(format string, args ...any) {
	r.writeln(r.diag, fmt.Sprintf(format, args...))
}

// writeln is best effort: a failed write is logged and later reports proceed.
func (r *Reporter) writeln(w io.Writer, v any) {
	if _, err := fmt.Fprintln(w, v); err != nil {
		r.logger.Debug("report write failed", "error", err)
	}
}
