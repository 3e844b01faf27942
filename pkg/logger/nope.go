package logger

import "log/slog"

// NewNope creates a logger that discards all output.
// Transports and the mailer use it until a logger is supplied.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
