package main

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/bookcatalog/handler"
	"github.com/dmitrymomot/bookcatalog/modules/books"
	"github.com/dmitrymomot/bookcatalog/pkg/clientip"
	"github.com/dmitrymomot/bookcatalog/pkg/httpserver"
	"github.com/dmitrymomot/bookcatalog/pkg/metrics"
	"github.com/dmitrymomot/bookcatalog/pkg/requestid"
)

func newRouter(log *slog.Logger, app appConfig, svc *books.Service, m *metrics.Metrics) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		clientip.Middleware(app.ClientIPHeaders...),
	)

	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(log, svc.Ready))
	r.Method(http.MethodGet, "/metrics", m.Handler())
	r.Mount("/books", svc.Handle())

	notFound := handler.Wrap(func(handler.Context, struct{}) handler.Response {
		return handler.Error(handler.ErrNotFound)
	})
	r.NotFound(notFound)

	return r
}
