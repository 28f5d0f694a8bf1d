package upstream

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestFetcher(t *testing.T, handler http.Handler, headers map[string]string) (*Fetcher, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewFetcher("test_provider", 5*time.Second, logger, headers), srv
}

func TestFetcher_GetJSON(t *testing.T) {
	t.Parallel()

	f, srv := newTestFetcher(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Write([]byte(`{"id": "1"}`))
	}), nil)

	doc, err := f.GetJSON(context.Background(), "op", srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "1", doc["id"])
}

func TestFetcher_GetJSONList(t *testing.T) {
	t.Parallel()

	f, srv := newTestFetcher(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"a": 1}, {"a": 2}]`))
	}), nil)

	list, err := f.GetJSONList(context.Background(), "op", srv.URL)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}

func TestFetcher_SendsConfiguredHeaders(t *testing.T) {
	t.Parallel()

	f, srv := newTestFetcher(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))
		w.Write([]byte(`{}`))
	}), map[string]string{"Authorization": "Bearer token-123"})

	_, err := f.GetJSON(context.Background(), "op", srv.URL)
	require.NoError(t, err)
}

func TestFetcher_NotFound(t *testing.T) {
	t.Parallel()

	f, srv := newTestFetcher(t, http.NotFoundHandler(), nil)

	_, err := f.GetJSON(context.Background(), "op", srv.URL)
	require.Error(t, err)
	assert.True(t, IsNotFound(err))

	ue, ok := AsUpstream(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, ue.StatusCode)
	assert.Equal(t, "test_provider", ue.Provider)
}

func TestFetcher_MalformedBody(t *testing.T) {
	t.Parallel()

	f, srv := newTestFetcher(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}), nil)

	_, err := f.GetJSON(context.Background(), "op", srv.URL)
	require.Error(t, err)
	_, ok := AsUpstream(err)
	assert.True(t, ok)
	assert.False(t, IsNotFound(err))
}

func TestFetcher_BreakerTripsOnServerErrors(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	f, srv := newTestFetcher(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.Error(w, "down", http.StatusInternalServerError)
	}), nil)

	// Three straight 500s trip the breaker.
	for i := 0; i < 3; i++ {
		_, err := f.GetJSON(context.Background(), "op", srv.URL)
		require.Error(t, err)
	}

	// The next call is rejected without reaching the server.
	_, err := f.GetJSON(context.Background(), "op", srv.URL)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gobreaker.ErrOpenState))
	assert.Equal(t, int32(3), hits.Load())

	// Breaker-open failures still come back as upstream errors with no
	// status code.
	ue, ok := AsUpstream(err)
	require.True(t, ok)
	assert.Zero(t, ue.StatusCode)
}

func TestFetcher_NotFoundDoesNotTripBreaker(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	f, srv := newTestFetcher(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.NotFound(w, r)
	}), nil)

	// 404s are answers, not outages; every call reaches the server.
	for i := 0; i < 6; i++ {
		_, err := f.GetJSON(context.Background(), "op", srv.URL)
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
	}
	assert.Equal(t, int32(6), hits.Load())
}

func TestError_Strings(t *testing.T) {
	t.Parallel()

	withStatus := &Error{Provider: "espn", Operation: "summary", StatusCode: 502}
	assert.Contains(t, withStatus.Error(), "502")

	wrapped := &Error{Provider: "espn", Operation: "summary", Err: errors.New("connection refused")}
	assert.Contains(t, wrapped.Error(), "connection refused")
	assert.True(t, errors.Is(wrapped, wrapped.Err))
}
