package catalog

import "errors"

var (
	ErrSourceNotFound     = errors.New("catalog source not found")
	ErrMalformedInput     = errors.New("malformed catalog input")
	ErrOperationCancelled = errors.New("catalog processing cancelled")
)
