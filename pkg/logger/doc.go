// Package logger builds the service's slog loggers.
//
// New returns a JSON logger writing to stdout. NewWithSentry additionally
// fans error-level records out to Sentry when a DSN is configured, falling
// back to stdout-only logging otherwise.
//
// Context extractors inject request-scoped attributes (such as request IDs)
// into every log record:
//
//	log := logger.New(middleware.RequestIDExtractor())
//	log.InfoContext(ctx, "notification sent") // carries request_id
package logger
