package logger

import (
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// New creates a stderr logger with optional context extractors.
// Terminals get colored tint output, anything else gets JSON.
func New(level slog.Level, extractors ...ContextExtractor) *slog.Logger {
	return slog.New(NewLogHandlerDecorator(consoleHandler(os.Stderr, level), extractors...))
}

func consoleHandler(f *os.File, level slog.Level) slog.Handler {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return tint.NewHandler(colorable.NewColorable(f), &tint.Options{Level: level})
	}
	return slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level})
}
