// Package logger builds slog loggers with optional context-driven
// attribute injection.
//
// Extractors registered via WithContextExtractors run on every record,
// which lets middleware put tenant or user identity into the request
// context once and have it appear in all downstream log lines:
//
//	log := logger.New(
//	    logger.WithService("nordcrm"),
//	    logger.WithContextExtractors(tenant.LoggerExtractor()),
//	)
package logger
