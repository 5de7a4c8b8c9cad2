package file_test

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bookcatalog/pkg/file"
)

func newLocal(t *testing.T) (*file.LocalStorage, string) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "books.xml"), []byte("<catalog/>"), 0o644))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "archive"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "archive", "2023.xml"), []byte("<catalog></catalog>"), 0o644))

	s, err := file.NewLocalStorage(dir)
	require.NoError(t, err)
	return s, dir
}

func TestNewLocalStorage(t *testing.T) {
	t.Parallel()

	t.Run("empty base dir", func(t *testing.T) {
		t.Parallel()
		_, err := file.NewLocalStorage("")
		assert.ErrorIs(t, err, file.ErrInvalidConfig)
	})

	t.Run("missing base dir", func(t *testing.T) {
		t.Parallel()
		_, err := file.NewLocalStorage(filepath.Join(t.TempDir(), "nope"))
		assert.ErrorIs(t, err, file.ErrDirectoryNotFound)
	})

	t.Run("base is a file", func(t *testing.T) {
		t.Parallel()
		p := filepath.Join(t.TempDir(), "f")
		require.NoError(t, os.WriteFile(p, nil, 0o644))
		_, err := file.NewLocalStorage(p)
		assert.ErrorIs(t, err, file.ErrNotDirectory)
	})

	t.Run("resolves to absolute", func(t *testing.T) {
		t.Parallel()
		s, dir := newLocal(t)
		assert.Equal(t, dir, s.BaseDir())
	})
}

func TestLocalStorage_Open(t *testing.T) {
	t.Parallel()

	s, _ := newLocal(t)
	ctx := context.Background()

	t.Run("reads file", func(t *testing.T) {
		t.Parallel()
		rc, err := s.Open(ctx, "books.xml")
		require.NoError(t, err)
		defer rc.Close()

		b, err := io.ReadAll(rc)
		require.NoError(t, err)
		assert.Equal(t, "<catalog/>", string(b))
	})

	t.Run("nested path", func(t *testing.T) {
		t.Parallel()
		rc, err := s.Open(ctx, "archive/2023.xml")
		require.NoError(t, err)
		require.NoError(t, rc.Close())
	})

	t.Run("errors", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			path string
			err  error
		}{
			{"missing.xml", file.ErrFileNotFound},
			{"archive", file.ErrIsDirectory},
			{"../books.xml", file.ErrInvalidPath},
			{"archive/../../etc/passwd", file.ErrInvalidPath},
			{"/etc/passwd", file.ErrInvalidPath},
			{"", file.ErrInvalidPath},
		}
		for _, tt := range tests {
			_, err := s.Open(ctx, tt.path)
			assert.ErrorIs(t, err, tt.err, tt.path)
		}
	})

	t.Run("cancelled before open", func(t *testing.T) {
		t.Parallel()
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := s.Open(cctx, "books.xml")
		assert.ErrorIs(t, err, file.ErrOperationCanceled)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("read fails after cancel", func(t *testing.T) {
		t.Parallel()
		cctx, cancel := context.WithCancel(ctx)
		rc, err := s.Open(cctx, "books.xml")
		require.NoError(t, err)
		defer rc.Close()

		cancel()
		_, err = rc.Read(make([]byte, 4))
		assert.ErrorIs(t, err, file.ErrOperationCanceled)
	})
}

func TestLocalStorage_StatExists(t *testing.T) {
	t.Parallel()

	s, _ := newLocal(t)
	ctx := context.Background()

	f, err := s.Stat(ctx, "archive/2023.xml")
	require.NoError(t, err)
	assert.Equal(t, "2023.xml", f.Name)
	assert.Equal(t, "archive/2023.xml", f.Path)
	assert.Equal(t, int64(len("<catalog></catalog>")), f.Size)
	assert.Contains(t, f.ContentType, "xml")
	assert.False(t, f.ModTime.IsZero())

	_, err = s.Stat(ctx, "missing.xml")
	assert.ErrorIs(t, err, file.ErrFileNotFound)

	assert.True(t, s.Exists(ctx, "books.xml"))
	assert.False(t, s.Exists(ctx, "missing.xml"))
	assert.False(t, s.Exists(ctx, "archive"))
	assert.False(t, s.Exists(ctx, "../x"))

	cctx, cancel := context.WithCancel(ctx)
	cancel()
	assert.False(t, s.Exists(cctx, "books.xml"))
}

func TestContentTypeByName(t *testing.T) {
	t.Parallel()

	assert.Contains(t, file.ContentTypeByName("books.xml"), "xml")
	assert.Equal(t, "application/octet-stream", file.ContentTypeByName("books.unknownext"))
}
