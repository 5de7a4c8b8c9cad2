package catalog_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bookcatalog/pkg/catalog"
	"github.com/dmitrymomot/bookcatalog/pkg/logger"
)

const mixedCatalog = `<?xml version="1.0"?>
<catalog>
  <book><title>One</title><author>A</author><genre>G</genre><year>2020</year><publisher>https://example.com</publisher></book>
  <book><title>Two</title><year>0</year><publisher>https://example.com</publisher></book>
  <book><title>Three</title><year>1999</year><publisher>not-a-url</publisher></book>
  <book><year>abc</year><publisher>nope</publisher></book>
  <book><title>Five</title><year>1850</year><publisher>http://old.example.org</publisher></book>
</catalog>`

func process(t *testing.T, doc string, opts ...catalog.Option) (*catalog.ResultSet, error) {
	t.Helper()
	return catalog.NewProcessor(opts...).Process(context.Background(), strings.NewReader(doc))
}

func TestProcessor_Scenarios(t *testing.T) {
	t.Parallel()

	one := func(year, publisher string) string {
		return `<catalog><book><title>T</title>` + year + publisher + `</book></catalog>`
	}

	t.Run("valid record", func(t *testing.T) {
		set, err := process(t, one("<year>2020</year>", "<publisher>https://example.com</publisher>"))
		require.NoError(t, err)
		require.Len(t, set.Valid, 1)
		assert.Empty(t, set.Invalid)
		assert.Equal(t, 2020, set.Valid[0].Year)
	})

	t.Run("zero year", func(t *testing.T) {
		set, err := process(t, one("<year>0</year>", "<publisher>https://example.com</publisher>"))
		require.NoError(t, err)
		assert.Empty(t, set.Valid)
		require.Len(t, set.Invalid, 1)
		assert.Equal(t, catalog.ReasonInvalidYear, set.Invalid[0].Reason)
	})

	t.Run("invalid publisher", func(t *testing.T) {
		set, err := process(t, one("<year>1999</year>", "<publisher>not-a-url</publisher>"))
		require.NoError(t, err)
		require.Len(t, set.Invalid, 1)
		assert.Equal(t, catalog.ReasonInvalidPublisher, set.Invalid[0].Reason)
	})

	t.Run("absent year", func(t *testing.T) {
		set, err := process(t, one("", "<publisher>https://example.com</publisher>"))
		require.NoError(t, err)
		require.Len(t, set.Invalid, 1)
		assert.Equal(t, catalog.ReasonInvalidYear, set.Invalid[0].Reason)
	})

	t.Run("no records", func(t *testing.T) {
		set, err := process(t, `<catalog></catalog>`)
		require.NoError(t, err)
		assert.NotNil(t, set.Valid)
		assert.NotNil(t, set.Invalid)
		assert.Zero(t, set.Len())
	})
}

func TestProcessor_OrderAndIdempotence(t *testing.T) {
	t.Parallel()

	first, err := process(t, mixedCatalog)
	require.NoError(t, err)

	var validTitles []string
	for _, r := range first.Valid {
		validTitles = append(validTitles, r.Title)
	}
	assert.Equal(t, []string{"One", "Five"}, validTitles)

	require.Len(t, first.Invalid, 3)
	assert.Equal(t, "Two", *first.Invalid[0].Title)
	assert.Equal(t, catalog.ReasonInvalidYear, first.Invalid[0].Reason)
	assert.Equal(t, "Three", *first.Invalid[1].Title)
	assert.Equal(t, catalog.ReasonInvalidPublisher, first.Invalid[1].Reason)
	assert.Nil(t, first.Invalid[2].Title)
	assert.Equal(t, catalog.ReasonInvalidYear, first.Invalid[2].Reason)

	second, err := process(t, mixedCatalog)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestProcessor_Observer(t *testing.T) {
	t.Parallel()

	var seen []bool
	set, err := process(t, mixedCatalog,
		catalog.WithObserver(nil, catalog.ObserverFunc(func(res catalog.Result) {
			seen = append(seen, res.IsValid())
		})),
	)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, false, false, true}, seen)
	assert.Equal(t, len(seen), set.Len())
}

func TestProcessor_RecordElement(t *testing.T) {
	t.Parallel()

	set, err := process(t,
		`<feed><entry><title>A</title><year>2000</year><publisher>https://a.example</publisher></entry></feed>`,
		catalog.WithRecordElement("entry"),
		catalog.WithRecordElement(""),
	)
	require.NoError(t, err)
	assert.Len(t, set.Valid, 1)
}

func TestProcessor_Malformed(t *testing.T) {
	t.Parallel()

	count := 0
	set, err := process(t,
		`<catalog><book><title>A</title><year>2000</year><publisher>https://a.example</publisher></book><book>`,
		catalog.WithObserver(catalog.ObserverFunc(func(catalog.Result) { count++ })),
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrMalformedInput)
	assert.Nil(t, set)
	assert.Zero(t, count, "records of a malformed document must not reach observers")
}

func TestProcessor_Cancellation(t *testing.T) {
	t.Parallel()

	t.Run("cancelled before start", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		set, err := catalog.NewProcessor().Process(ctx, strings.NewReader(mixedCatalog))
		assert.Nil(t, set)
		assert.ErrorIs(t, err, catalog.ErrOperationCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("cancelled between records", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		head, tail, ok := strings.Cut(mixedCatalog, "<book><title>Three</title>")
		require.True(t, ok)
		src := &chunkedReader{
			chunks: []string{head, "<book><title>Three</title>" + tail},
			before: map[int]func(){1: cancel},
		}

		count := 0
		p := catalog.NewProcessor(catalog.WithObserver(catalog.ObserverFunc(func(catalog.Result) {
			count++
		})))

		set, err := p.Process(ctx, src)
		assert.Nil(t, set)
		assert.ErrorIs(t, err, catalog.ErrOperationCancelled)
		assert.Zero(t, count)
	})

	t.Run("deadline exceeded", func(t *testing.T) {
		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()

		_, err := catalog.NewProcessor().Process(ctx, strings.NewReader(mixedCatalog))
		assert.ErrorIs(t, err, catalog.ErrOperationCancelled)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("read failure after cancel", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		src := &cancellingReader{
			r:      strings.NewReader(`<catalog><book><title>A</title>`),
			cancel: cancel,
		}

		_, err := catalog.NewProcessor().Process(ctx, src)
		assert.ErrorIs(t, err, catalog.ErrOperationCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestProcessor_Logging(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug), logger.WithTextFormatter())

	_, err := process(t, mixedCatalog, catalog.WithLogger(log), catalog.WithLogger(nil))
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "record rejected")
	assert.Contains(t, out, `reason="Invalid publisher"`)
	assert.Contains(t, out, "catalog processed")
	assert.Contains(t, out, "records.valid=2")
	assert.Contains(t, out, "records.invalid=3")
	assert.Contains(t, out, "component=catalog")
}

// cancellingReader serves r and then cancels the context and fails, the way an
// HTTP body bound to a request context does.
type cancellingReader struct {
	r      io.Reader
	cancel context.CancelFunc
}

func (c *cancellingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if errors.Is(err, io.EOF) {
		c.cancel()
		return n, context.Canceled
	}
	return n, err
}

// chunkedReader returns one chunk per Read, running before[i] ahead of chunk i.
type chunkedReader struct {
	chunks []string
	before map[int]func()
	i      int
}

func (c *chunkedReader) Read(p []byte) (int, error) {
	if c.i >= len(c.chunks) {
		return 0, io.EOF
	}
	if fn := c.before[c.i]; fn != nil {
		fn()
	}
	n := copy(p, c.chunks[c.i])
	c.chunks[c.i] = c.chunks[c.i][n:]
	if c.chunks[c.i] == "" {
		c.i++
	}
	return n, nil
}
