package handler

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/bookcatalog/pkg/logger"
)

func logLevel(status int) slog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return slog.LevelError
	case status >= http.StatusBadRequest:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// NewErrorHandler returns an error handler that logs err and renders it with
// JSONError. Client errors are logged at warn level, server errors at error.
// Request id and environment are added by the logger's context extractors.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("error_handler"))

	return func(ctx Context, err error) {
		resp := JSONError(err)
		status, _ := errorToDetail(err)
		r := ctx.Request()

		log.LogAttrs(r.Context(), logLevel(status), "request error",
			logger.Error(err),
			slog.Int("status_code", status),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
		)

		if renderErr := resp.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.ErrorContext(r.Context(), "failed to render error response",
				logger.Error(renderErr),
				logger.Event("render_error"),
			)
			http.Error(ctx.ResponseWriter(), http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
}
