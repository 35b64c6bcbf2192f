// Package toollog redirects text that external tools write to a plain
// output stream into the structured log.
package toollog

import (
	"context"
	"log/slog"
	"strings"
)

// Writer is an io.Writer that emits each newline-delimited segment it
// receives as one structured log record at a fixed severity. It can be
// handed to any tool expecting a writable text sink (stdout, stderr, an
// explicit output destination) so the tool's native output joins the
// run's log stream.
type Writer struct {
	name   string
	level  slog.Level
	pinned bool
	log    *slog.Logger
}

// New creates a Writer named name that records at level. The base logger
// carries the handler and therefore the message format; nil means the
// default logger.
func New(base *slog.Logger, name string, level slog.Level) *Writer {
	return newWriter(base, name, level, false)
}

// NewPinned creates a Writer whose level cannot be changed after
// construction. Some tools lower their own logging verbosity at runtime;
// a pinned writer ignores that so their output stays visible.
func NewPinned(base *slog.Logger, name string, level slog.Level) *Writer {
	return newWriter(base, name, level, true)
}

func newWriter(base *slog.Logger, name string, level slog.Level, pinned bool) *Writer {
	if base == nil {
		base = slog.Default()
	}
	return &Writer{
		name:   name,
		level:  level,
		pinned: pinned,
		log:    base.With("logger", name),
	}
}

// SetLevel changes the severity of subsequent records. On a pinned
// Writer it has no effect.
func (w *Writer) SetLevel(level slog.Level) {
	if w.pinned {
		return
	}
	w.level = level
}

// Level returns the severity currently in effect.
func (w *Writer) Level() slog.Level { return w.level }

// Write splits p on newlines and logs one record per non-empty segment.
// An empty chunk or a lone newline produces no records. Writes are
// synchronous and never fail.
func (w *Writer) Write(p []byte) (int, error) {
	msg := string(p)
	if msg == "" || msg == "\n" {
		return len(p), nil
	}

	for _, line := range strings.Split(msg, "\n") {
		if line == "" {
			continue
		}
		w.log.Log(context.Background(), w.level, line)
	}

	return len(p), nil
}
