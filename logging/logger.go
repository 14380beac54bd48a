// Package logging configures the process wide structured logger.
package logging

import (
	"io"
	"log/slog"
	"os"

	"github.com/seo-optimizer/textprocessor/config"
)

// Setup installs the default slog logger. Development gets readable text
// output at debug level, production gets JSON at info level.
func Setup(cfg config.Config) {
	slog.SetDefault(New(os.Stdout, cfg))
}

// New builds a logger writing to w
func New(w io.Writer, cfg config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}
	if cfg.IsDevelopment() {
		opts.Level = slog.LevelDebug
	}

	var handler slog.Handler
	if cfg.IsDevelopment() {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With("service", "textprocessor")
}
