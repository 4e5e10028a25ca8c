// Package logging sets up the process-wide slog logger.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// levelRouter sends records below ERROR to out and the rest to errOut.
type levelRouter struct {
	min    slog.Leveler
	out    slog.Handler
	errOut slog.Handler
}

func (lr *levelRouter) Enabled(_ context.Context, level slog.Level) bool {
	return level >= lr.min.Level()
}

func (lr *levelRouter) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError {
		return lr.errOut.Handle(ctx, r)
	}
	return lr.out.Handle(ctx, r)
}

func (lr *levelRouter) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelRouter{
		min:    lr.min,
		out:    lr.out.WithAttrs(attrs),
		errOut: lr.errOut.WithAttrs(attrs),
	}
}

func (lr *levelRouter) WithGroup(name string) slog.Handler {
	return &levelRouter{
		min:    lr.min,
		out:    lr.out.WithGroup(name),
		errOut: lr.errOut.WithGroup(name),
	}
}

// NewHandler returns a text handler writing records at or above level to out,
// except ERROR and above, which go to errOut.
func NewHandler(out, errOut io.Writer, level slog.Leveler) slog.Handler {
	opts := &slog.HandlerOptions{Level: level}
	return &levelRouter{
		min:    level,
		out:    slog.NewTextHandler(out, opts),
		errOut: slog.NewTextHandler(errOut, opts),
	}
}

// Setup installs the default logger. INFO and WARN go to stdout, ERROR to
// stderr. If logPath is non-empty every record is also appended to that file.
// The returned function closes the file.
func Setup(logPath string, level slog.Leveler) (func(), error) {
	out := io.Writer(os.Stdout)
	errOut := io.Writer(os.Stderr)
	cleanup := func() {}

	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("opening log file: %w", err)
		}
		cleanup = func() { f.Close() }
		out = io.MultiWriter(os.Stdout, f)
		errOut = io.MultiWriter(os.Stderr, f)
	}

	slog.SetDefault(slog.New(NewHandler(out, errOut, level)))
	return cleanup, nil
}
