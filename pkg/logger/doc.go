// Package logger builds context-aware slog loggers.
//
// New creates a *slog.Logger configured by Option values: output format,
// minimum level, static attributes and ContextExtractor callbacks that pull
// request-scoped values (request id, environment) out of the context of every
// log call. Environment presets (WithDevelopment, WithStaging, WithProduction,
// WithEnvironment) pick sensible level and format defaults and tag records
// with service and env.
//
// attr.go holds attribute constructors so keys stay consistent across the
// service: Error, Errors, RequestID, Component, Event, Handler, Duration and
// the catalog helpers Source, Reason and Counts. Error and Errors return an
// empty attribute for nil errors, so they can be passed unconditionally:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.Name),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	log.InfoContext(ctx, "catalog processed",
//		logger.Source("books.xml"),
//		logger.Counts(valid, invalid),
//		logger.Error(err),
//	)
package logger
