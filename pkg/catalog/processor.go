package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/bookcatalog/pkg/logger"
)

// Observer is notified of every classified record, in document order, once the
// whole document has been read. Documents that fail or are cancelled produce
// no notifications.
type Observer interface {
	ObserveRecord(Result)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Result)

func (f ObserverFunc) ObserveRecord(res Result) { f(res) }

// Processor extracts and validates a whole catalog document.
// It holds no per-document state and may be shared between goroutines.
type Processor struct {
	recordName string
	log        *slog.Logger
	observers  []Observer
}

// Option configures a Processor.
type Option func(*Processor)

// WithRecordElement sets the local name of record elements. Empty is ignored.
func WithRecordElement(name string) Option {
	return func(p *Processor) {
		if name != "" {
			p.recordName = name
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(p *Processor) {
		if log != nil {
			p.log = log
		}
	}
}

// WithObserver registers observers. Nil observers are ignored.
func WithObserver(observers ...Observer) Option {
	return func(p *Processor) {
		for _, o := range observers {
			if o != nil {
				p.observers = append(p.observers, o)
			}
		}
	}
}

func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		recordName: DefaultRecordElement,
		log:        logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.With(logger.Component("catalog"))
	return p
}

// Process reads src to the end and returns the classified records.
//
// The context is checked before each record is extracted. Once it is done
// Process stops and returns an error wrapping both ErrOperationCancelled and
// the context error. Malformed markup yields an error wrapping
// ErrMalformedInput. No partial ResultSet is returned on error.
func (p *Processor) Process(ctx context.Context, src io.Reader) (*ResultSet, error) {
	ext := NewExtractor(src, p.recordName)
	set := NewResultSet()
	var results []Result

	for {
		if err := ctx.Err(); err != nil {
			return nil, p.cancelled(ctx, set, err)
		}

		raw, err := ext.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// A source bound to ctx may fail its read when ctx is done.
			if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ErrMalformedInput) {
				return nil, p.cancelled(ctx, set, errors.Join(ctxErr, err))
			}
			p.log.WarnContext(ctx, "catalog extraction failed",
				logger.Counts(len(set.Valid), len(set.Invalid)),
				logger.Error(err),
			)
			return nil, err
		}

		res := Validate(raw)
		if rej, ok := res.Rejection(); ok {
			p.log.DebugContext(ctx, "record rejected",
				slog.Int("index", set.Len()),
				logger.Reason(rej.Reason),
			)
		}
		if len(p.observers) > 0 {
			results = append(results, res)
		}
		set.Add(res)
	}

	for _, res := range results {
		for _, o := range p.observers {
			o.ObserveRecord(res)
		}
	}

	p.log.InfoContext(ctx, "catalog processed", logger.Counts(len(set.Valid), len(set.Invalid)))
	return set, nil
}

func (p *Processor) cancelled(ctx context.Context, set *ResultSet, cause error) error {
	p.log.InfoContext(ctx, "catalog processing cancelled",
		logger.Counts(len(set.Valid), len(set.Invalid)),
		logger.Error(cause),
	)
	return fmt.Errorf("%w: %w", ErrOperationCancelled, cause)
}
