package books

import (
	"context"
	"errors"
	"net/http"

	"github.com/dmitrymomot/bookcatalog/handler"
	"github.com/dmitrymomot/bookcatalog/pkg/catalog"
	"github.com/dmitrymomot/bookcatalog/pkg/metrics"
)

var ErrMalformedCatalog = handler.HTTPError{
	Code:    http.StatusInternalServerError,
	Key:     "malformed_input",
	Message: "Catalog document is malformed",
}

// httpError maps a Catalog error to the response rendered to the client.
func (s *Service) httpError(err error) handler.HTTPError {
	switch {
	case errors.Is(err, catalog.ErrSourceNotFound):
		return handler.ErrNotFound.WithMessage(s.cfg.File + " NOT FOUND").Wrap(err)
	case errors.Is(err, catalog.ErrMalformedInput):
		return ErrMalformedCatalog.Wrap(err)
	case errors.Is(err, context.DeadlineExceeded):
		return handler.ErrTimeout.Wrap(err)
	case errors.Is(err, catalog.ErrOperationCancelled), errors.Is(err, context.Canceled):
		return handler.ErrRequestCancelled.Wrap(err)
	default:
		return handler.ErrInternal.Wrap(err)
	}
}

func documentStatus(err error) string {
	switch {
	case err == nil:
		return metrics.StatusOK
	case errors.Is(err, catalog.ErrSourceNotFound):
		return metrics.StatusNotFound
	case errors.Is(err, catalog.ErrMalformedInput):
		return metrics.StatusMalformed
	case errors.Is(err, catalog.ErrOperationCancelled),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return metrics.StatusCancelled
	default:
		return metrics.StatusError
	}
}
