package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/bookcatalog/modules/books"
	"github.com/dmitrymomot/bookcatalog/pkg/clientip"
	"github.com/dmitrymomot/bookcatalog/pkg/config"
	"github.com/dmitrymomot/bookcatalog/pkg/file"
	"github.com/dmitrymomot/bookcatalog/pkg/httpserver"
	"github.com/dmitrymomot/bookcatalog/pkg/logger"
	"github.com/dmitrymomot/bookcatalog/pkg/requestid"
)

type appConfig struct {
	Name string `env:"APP_NAME" envDefault:"bookcatalog"`
	Env  string `env:"APP_ENV" envDefault:"development"`

	// ClientIPHeaders lists proxy headers trusted to carry the client address.
	ClientIPHeaders []string `env:"APP_CLIENT_IP_HEADERS" envSeparator:","`
}

type storageConfig struct {
	Driver    string        `env:"STORAGE_DRIVER" envDefault:"local"`
	LocalRoot string        `env:"STORAGE_LOCAL_ROOT" envDefault:"."`
	S3        file.S3Config `envPrefix:"STORAGE_S3_"`
}

type serveConfig struct {
	App     appConfig
	HTTP    httpserver.Config
	Catalog books.Config
	Storage storageConfig
}

func loadServeConfig() (serveConfig, error) {
	var cfg serveConfig
	if err := config.Load(&cfg.App); err != nil {
		return cfg, err
	}
	if err := config.Load(&cfg.HTTP); err != nil {
		return cfg, err
	}
	if err := config.Load(&cfg.Catalog); err != nil {
		return cfg, err
	}
	if err := config.Load(&cfg.Storage); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(app appConfig, out io.Writer) *slog.Logger {
	return logger.New(
		logger.WithEnvironment(app.Env, app.Name),
		logger.WithOutput(out),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)
}

// buildStorage returns the catalog storage selected by STORAGE_DRIVER.
func buildStorage(ctx context.Context, cfg storageConfig) (file.Storage, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "", "local":
		s, err := file.NewLocalStorage(cfg.LocalRoot)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "s3":
		s, err := file.NewS3Storage(ctx, cfg.S3)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: unknown storage driver %q", file.ErrInvalidConfig, cfg.Driver)
	}
}
