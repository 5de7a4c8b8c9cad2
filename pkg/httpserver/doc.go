// Package httpserver runs an http.Handler with graceful shutdown and provides
// liveness and readiness handlers.
//
// Server binds its listener in Run, then serves until the context is cancelled,
// SIGINT/SIGTERM arrives or Shutdown is called. In-flight requests get up to the
// shutdown timeout to finish. Listen failures wrap ErrStart and shutdown
// failures wrap ErrShutdown.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.LivenessHandler())
//	r.Get("/readyz", httpserver.ReadinessHandler(log, books.Ready))
//
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
