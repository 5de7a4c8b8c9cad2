package books

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/bookcatalog/handler"
	"github.com/dmitrymomot/bookcatalog/pkg/catalog"
	"github.com/dmitrymomot/bookcatalog/pkg/file"
	"github.com/dmitrymomot/bookcatalog/pkg/logger"
)

// Storage is the part of file.Storage the service reads the catalog through.
type Storage interface {
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	Stat(ctx context.Context, path string) (*file.File, error)
}

// Metrics receives per-record and per-document observations.
type Metrics interface {
	catalog.Observer
	ObserveDocument(status string, d time.Duration)
}

type Service struct {
	cfg       Config
	storage   Storage
	log       *slog.Logger
	metrics   Metrics
	processor *catalog.Processor
}

type Option func(*Service)

func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

func WithMetrics(m Metrics) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// NewService builds the books service. Empty config fields fall back to
// DefaultConfig; a zero ProcessingTimeout disables the deadline.
func NewService(cfg Config, storage Storage, opts ...Option) *Service {
	def := DefaultConfig()
	if cfg.File == "" {
		cfg.File = def.File
	}
	if cfg.RecordElement == "" {
		cfg.RecordElement = def.RecordElement
	}

	s := &Service{
		cfg:     cfg,
		storage: storage,
		log:     logger.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("books"))

	procOpts := []catalog.Option{
		catalog.WithRecordElement(cfg.RecordElement),
		catalog.WithLogger(s.log),
	}
	if s.metrics != nil {
		procOpts = append(procOpts, catalog.WithObserver(s.metrics))
	}
	s.processor = catalog.NewProcessor(procOpts...)
	return s
}

// Handle returns the module router. Mount it under /books.
func (s *Service) Handle() http.Handler {
	r := chi.NewRouter()
	r.Get("/valid", handler.Wrap(s.valid,
		handler.WithErrorHandler[struct{}](handler.NewErrorHandler(s.log)),
		handler.WithDecorators(handler.Logging[struct{}](s.log, "books.valid")),
	))
	return r
}

func (s *Service) valid(ctx handler.Context, _ struct{}) handler.Response {
	set, err := s.Catalog(ctx)
	if err != nil {
		return handler.Error(s.httpError(err))
	}
	return handler.RawJSON(set)
}

// Catalog reads the configured document and classifies every record in it.
//
// A missing document yields an error wrapping catalog.ErrSourceNotFound.
// Cancellation of ctx or the processing timeout yields an error wrapping
// catalog.ErrOperationCancelled and the context error.
func (s *Service) Catalog(ctx context.Context) (*catalog.ResultSet, error) {
	start := time.Now()
	if s.cfg.ProcessingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.ProcessingTimeout)
		defer cancel()
	}

	set, err := s.process(ctx)
	if s.metrics != nil {
		s.metrics.ObserveDocument(documentStatus(err), time.Since(start))
	}
	return set, err
}

func (s *Service) process(ctx context.Context) (*catalog.ResultSet, error) {
	src, err := s.storage.Open(ctx, s.cfg.File)
	if err != nil {
		return nil, s.openError(ctx, err)
	}
	defer func() {
		if cerr := src.Close(); cerr != nil {
			s.log.WarnContext(ctx, "failed to close catalog source",
				logger.Source(s.cfg.File),
				logger.Error(cerr),
			)
		}
	}()

	set, err := s.processor.Process(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("books: %s: %w", s.cfg.File, err)
	}
	return set, nil
}

func (s *Service) openError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, file.ErrFileNotFound):
		return fmt.Errorf("%w: %s: %w", catalog.ErrSourceNotFound, s.cfg.File, err)
	case ctx.Err() != nil,
		errors.Is(err, file.ErrOperationCanceled),
		errors.Is(err, file.ErrOperationTimeout):
		return fmt.Errorf("%w: %w", catalog.ErrOperationCancelled, err)
	default:
		return fmt.Errorf("books: open %s: %w", s.cfg.File, err)
	}
}

// Ready reports whether the catalog document can be found in storage.
func (s *Service) Ready(ctx context.Context) error {
	if _, err := s.storage.Stat(ctx, s.cfg.File); err != nil {
		return fmt.Errorf("books: catalog %s unavailable: %w", s.cfg.File, err)
	}
	return nil
}
