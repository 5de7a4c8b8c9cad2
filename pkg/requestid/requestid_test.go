package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/bookcatalog/pkg/requestid"
)

func serve(t *testing.T, header string) (ctxID string, rr *httptest.ResponseRecorder) {
	t.Helper()

	h := requestid.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctxID = requestid.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/books/valid", nil)
	if header != "" {
		req.Header.Set(requestid.Header, header)
	}
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return ctxID, rr
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	t.Run("reuses valid header", func(t *testing.T) {
		t.Parallel()
		id, rr := serve(t, "req_123-abc")
		assert.Equal(t, "req_123-abc", id)
		assert.Equal(t, "req_123-abc", rr.Header().Get(requestid.Header))
	})

	t.Run("generates uuid when missing", func(t *testing.T) {
		t.Parallel()
		id, rr := serve(t, "")
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, rr.Header().Get(requestid.Header))
	})

	t.Run("replaces invalid header", func(t *testing.T) {
		t.Parallel()
		for _, bad := range []string{"has space", "semi;colon", strings.Repeat("a", 129)} {
			id, _ := serve(t, bad)
			assert.NotEqual(t, bad, id)
			_, err := uuid.Parse(id)
			assert.NoError(t, err)
		}
	})
}

func TestValid(t *testing.T) {
	t.Parallel()

	assert.True(t, requestid.Valid("abc"))
	assert.True(t, requestid.Valid(strings.Repeat("a", 128)))
	assert.False(t, requestid.Valid(""))
	assert.False(t, requestid.Valid(strings.Repeat("a", 129)))
	assert.False(t, requestid.Valid("a/b"))
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	extract := requestid.LoggerExtractor()

	attr, ok := extract(requestid.WithContext(context.Background(), "r-1"))
	require.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "r-1", attr.Value.String())

	_, ok = extract(context.Background())
	assert.False(t, ok)
	assert.Empty(t, requestid.FromContext(context.Background()))
}
