package quiz

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
)

type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// NopLogger returns a logger that discards everything.
func NopLogger() *slog.Logger { return slog.New(nopHandler{}) }

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// OpenLogger returns the logger described by cfg and a closer for its
// output. Without a LogFile the logger is silent. The logger is also
// installed as the raster library's logger.
func OpenLogger(cfg Config) (*slog.Logger, io.Closer, error) {
	if cfg.LogFile == "" {
		return NopLogger(), nopCloser{}, nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{Level: cfg.LogLevel}))
	gg.SetLogger(logger.With("component", "gg"))
	return logger, f, nil
}
