package handler

import (
	"errors"
	"net/http"
)

var ErrNilResponse = errors.New("handler returned nil response")

// StatusClientClosedRequest is the non-standard status used when the client
// went away before the response was ready.
const StatusClientClosedRequest = 499

// HTTPError is an error with an HTTP status and a stable machine-readable key.
type HTTPError struct {
	Code    int
	Key     string
	Message string
	cause   error
}

func (e HTTPError) Error() string {
	if e.cause != nil {
		return e.Key + ": " + e.cause.Error()
	}
	if e.Message != "" {
		return e.Message
	}
	return e.Key
}

func (e HTTPError) Unwrap() error {
	return e.cause
}

// Is matches HTTPError values by status code and key.
func (e HTTPError) Is(target error) bool {
	var t HTTPError
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code && e.Key == t.Key
}

// WithMessage returns a copy with a human-readable message.
func (e HTTPError) WithMessage(msg string) HTTPError {
	e.Message = msg
	return e
}

// Wrap returns a copy carrying cause. The cause is logged, never rendered.
func (e HTTPError) Wrap(cause error) HTTPError {
	e.cause = cause
	return e
}

// Text returns Message, falling back to the standard status text.
func (e HTTPError) Text() string {
	if e.Message != "" {
		return e.Message
	}
	if t := http.StatusText(e.Code); t != "" {
		return t
	}
	return e.Key
}

var (
	ErrNotFound         = HTTPError{Code: http.StatusNotFound, Key: "not_found"}
	ErrInternal         = HTTPError{Code: http.StatusInternalServerError, Key: "internal_error"}
	ErrRequestCancelled = HTTPError{Code: StatusClientClosedRequest, Key: "request_cancelled", Message: "Request cancelled"}
	ErrTimeout          = HTTPError{Code: http.StatusGatewayTimeout, Key: "processing_timeout"}
)

type errorResponse struct{ err error }

func (e errorResponse) Render(http.ResponseWriter, *http.Request) error {
	return e.err
}

// Error returns a Response that passes err to the ErrorHandler configured on
// Wrap instead of writing anything itself.
func Error(err error) Response {
	return errorResponse{err: err}
}
