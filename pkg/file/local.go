package file

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage implements Storage on the local filesystem.
// All operations are confined to baseDir. It is safe for concurrent use.
type LocalStorage struct {
	baseDir string // absolute
}

// NewLocalStorage creates a storage rooted at baseDir, which must exist.
func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if baseDir == "" {
		return nil, ErrInvalidConfig
	}

	absBaseDir, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve base directory: %w", ErrFailedToGetAbsolutePath, err)
	}

	info, err := os.Stat(absBaseDir)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, baseDir)
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrFailedToStatPath, err)
	case !info.IsDir():
		return nil, fmt.Errorf("%w: %s", ErrNotDirectory, baseDir)
	}

	return &LocalStorage{baseDir: absBaseDir}, nil
}

// BaseDir returns the absolute root of the storage.
func (s *LocalStorage) BaseDir() string {
	return s.baseDir
}

func (s *LocalStorage) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, contextError(err, "open")
	}

	absPath, err := s.resolvePath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(absPath)
	if err != nil {
		return nil, classifyFSError(err, path)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %w", ErrFailedToStatPath, err)
	}
	if info.IsDir() {
		_ = f.Close()
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	return newContextReader(ctx, f), nil
}

func (s *LocalStorage) Stat(ctx context.Context, path string) (*File, error) {
	if err := ctx.Err(); err != nil {
		return nil, contextError(err, "stat")
	}

	absPath, err := s.resolvePath(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, classifyFSError(err, path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrIsDirectory, path)
	}

	rel, err := filepath.Rel(s.baseDir, absPath)
	if err != nil {
		rel = path
	}

	return &File{
		Name:        info.Name(),
		Path:        filepath.ToSlash(rel),
		Size:        info.Size(),
		ModTime:     info.ModTime(),
		ContentType: ContentTypeByName(info.Name()),
	}, nil
}

// Exists returns false for invalid paths, directories and on cancellation.
func (s *LocalStorage) Exists(ctx context.Context, path string) bool {
	_, err := s.Stat(ctx, path)
	return err == nil
}

// resolvePath keeps every resolved path inside baseDir.
func (s *LocalStorage) resolvePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if filepath.IsAbs(path) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}

	absPath, err := filepath.Abs(filepath.Join(s.baseDir, filepath.Clean(path)))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToGetAbsolutePath, err)
	}

	if !strings.HasPrefix(absPath, s.baseDir+string(filepath.Separator)) && absPath != s.baseDir {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, path)
	}

	return absPath, nil
}

func classifyFSError(err error, path string) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %s", ErrFileNotFound, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %s: %w", ErrAccessDenied, path, err)
	default:
		return fmt.Errorf("%w: %w", ErrFailedToOpenFile, err)
	}
}
