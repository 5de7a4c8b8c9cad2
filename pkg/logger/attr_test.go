package logger_test

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bookcatalog/pkg/logger"
)

func TestGroup(t *testing.T) {
	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, err1, g[0].Value.Any())
	assert.Equal(t, err2, g[1].Value.Any())

	empty := logger.Errors(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	empty := logger.Error(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestRequestID(t *testing.T) {
	attr := logger.RequestID("abc")
	require.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "abc", attr.Value.Any())
}

func TestComponentEventHandler(t *testing.T) {
	assert.Equal(t, "books", logger.Component("books").Value.String())
	assert.Equal(t, "component", logger.Component("books").Key)
	assert.Equal(t, "event", logger.Event("catalog.processed").Key)
	assert.Equal(t, "handler", logger.Handler("books.valid").Key)
}

func TestSource(t *testing.T) {
	attr := logger.Source("books.xml")
	require.Equal(t, "source", attr.Key)
	assert.Equal(t, "books.xml", attr.Value.String())
}

func TestReason(t *testing.T) {
	attr := logger.Reason("Invalid year")
	require.Equal(t, "reason", attr.Key)
	assert.Equal(t, "Invalid year", attr.Value.Any())

	empty := logger.Reason(nil)
	assert.True(t, empty.Equal(slog.Attr{}))
}

func TestCounts(t *testing.T) {
	attr := logger.Counts(3, 2)
	require.Equal(t, "records", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 3)
	assert.Equal(t, int64(3), g[0].Value.Int64())
	assert.Equal(t, int64(2), g[1].Value.Int64())
	assert.Equal(t, int64(5), g[2].Value.Int64())
}
