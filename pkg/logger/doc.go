// Package logger builds slog loggers with request-scoped attributes.
//
// Context extractors run on every record, so a request ID stored on the
// context by middleware shows up on every line logged with that context:
//
//	log, closeLog := logger.NewFromConfig(cfg.Log, middlewares.RequestIDExtractor())
//	defer closeLog()
//
//	log.InfoContext(r.Context(), "contact submitted")
//
// NewFromConfig always writes JSON to stdout. LOG_FILE adds a size-rotated
// file (lumberjack) and SENTRY_DSN adds Sentry: error records become issues,
// warnings are stored as logs. A Sentry init failure is logged and the
// logger carries on without it.
package logger
