package handler

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/bookcatalog/pkg/logger"
)

// Logging logs each handled request with its duration at debug level.
func Logging[R any](log *slog.Logger, name string) Decorator[R] {
	return func(next HandlerFunc[R]) HandlerFunc[R] {
		return func(ctx Context, req R) Response {
			start := time.Now()
			resp := next(ctx, req)
			log.DebugContext(ctx, "request handled",
				logger.Handler(name),
				logger.Duration(time.Since(start)),
				slog.String("path", ctx.Request().URL.Path),
			)
			return resp
		}
	}
}
