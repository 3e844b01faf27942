// Package logger builds the slog loggers used by the mailer and its transports.
//
// It provides:
//   - New: stderr logger, colored via tint on terminals and JSON otherwise
//   - NewWithSentry: the same, also forwarding warnings and errors to Sentry
//   - NewNope: discards everything; the default for transports
//   - LogHandlerDecorator: wraps any slog.Handler with context extractors
//
// # Dispatch ids
//
// mailer.Mailer tags each send with an id via WithSendID. Pass SendIDExtractor to
// New so every line logged during that send carries a send_id attribute:
//
//	log := logger.New(slog.LevelInfo, logger.SendIDExtractor)
//	sender, _ := mailslurp.New(cfg, mailslurp.WithLogger(log))
//	m := mailer.New(sender, mailer.Config{}, mailer.WithLogger(log))
//
// # Sentry
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:      os.Getenv("SENTRY_DSN"),
//		MinLevel: slog.LevelWarn,
//	}, slog.LevelInfo, logger.SendIDExtractor)
//
// Errors create Sentry issues; warnings are kept as Sentry logs. An empty DSN
// falls back to stderr only.
package logger
