package main

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/bookcatalog/modules/books"
	"github.com/dmitrymomot/bookcatalog/pkg/httpserver"
	"github.com/dmitrymomot/bookcatalog/pkg/logger"
	"github.com/dmitrymomot/bookcatalog/pkg/metrics"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve GET /books/valid over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, err := loadServeConfig()
			if err != nil {
				return err
			}

			log := newLogger(cfg.App, cmd.ErrOrStderr())
			logger.SetAsDefault(log)

			storage, err := buildStorage(ctx, cfg.Storage)
			if err != nil {
				return err
			}

			m := metrics.New(metrics.WithRuntimeCollectors())
			svc := books.NewService(cfg.Catalog, storage,
				books.WithLogger(log),
				books.WithMetrics(m),
			)

			log.InfoContext(ctx, "starting bookcatalog",
				logger.Source(cfg.Catalog.File),
				logger.Component("main"),
			)

			srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
			return srv.Run(ctx, newRouter(log, cfg.App, svc, m))
		},
	}
}
