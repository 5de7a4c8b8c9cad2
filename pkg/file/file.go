package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"path"
	"time"
)

// File describes a stored file.
type File struct {
	Name        string
	Path        string
	Size        int64
	ModTime     time.Time
	ContentType string
}

// Storage gives read access to files kept by a backend.
type Storage interface {
	// Open returns a reader for the file at path. The caller must close it.
	// Reads fail once ctx is done.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	// Stat returns file metadata.
	Stat(ctx context.Context, path string) (*File, error)
	// Exists reports whether a regular file exists at path.
	Exists(ctx context.Context, path string) bool
}

// ContentTypeByName guesses a MIME type from the file extension.
func ContentTypeByName(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// contextReader stops reading once its context is done.
type contextReader struct {
	ctx context.Context
	rc  io.ReadCloser
}

func newContextReader(ctx context.Context, rc io.ReadCloser) io.ReadCloser {
	return &contextReader{ctx: ctx, rc: rc}
}

func (r *contextReader) Read(p []byte) (int, error) {
	if err := r.ctx.Err(); err != nil {
		return 0, contextError(err, "read")
	}
	return r.rc.Read(p)
}

func (r *contextReader) Close() error {
	return r.rc.Close()
}

// contextError maps a context error to the package sentinels, keeping the
// original in the chain.
func contextError(err error, operation string) error {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%w: %s operation: %w", ErrOperationTimeout, operation, err)
	case errors.Is(err, context.Canceled):
		return fmt.Errorf("%w: %s operation: %w", ErrOperationCanceled, operation, err)
	default:
		return err
	}
}
