package rifme

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nfriday/rifme-grabber/internal/config"
	http_transport "github.com/nfriday/rifme-grabber/internal/transport/http"
)

// newTestClient creates a client pointed at the given test server.
func newTestClient(t *testing.T, serverURL string) Client {
	t.Helper()

	cfg := &config.Config{
		RifmeBaseURL:         serverURL,
		ParsedRequestTimeout: 5 * time.Second,
	}

	client, err := NewClient(cfg)
	require.NoError(t, err)

	return client
}

// TestNewClient tests the NewClient function.
func TestNewClient(t *testing.T) {
	t.Parallel()

	t.Run("valid base URL", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{RifmeBaseURL: config.RifmeBaseURL}

		client, err := NewClient(cfg)
		require.NoError(t, err)
		assert.NotNil(t, client)
		assert.Equal(t, config.RifmeBaseURL, client.GetBaseURL())
	})

	t.Run("invalid base URL", func(t *testing.T) {
		t.Parallel()

		cfg := &config.Config{RifmeBaseURL: "ht tp://invalid"}

		client, err := NewClient(cfg)
		require.Error(t, err)
		assert.Nil(t, client)
	})
}

// TestClientImpl_FetchRhymesPage tests fetching a page with filters encoded as cookies.
func TestClientImpl_FetchRhymesPage(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/привет", r.URL.Path)
		assert.Equal(t, "slogovcookie=3;chastcookie=3;", r.Header.Get("Cookie"))
		assert.Equal(t, http_transport.DefaultUserAgent, r.Header.Get("User-Agent"))

		_, _ = w.Write([]byte("<html><body><li class=\"riLi\" data-w=\"совет\"></li></body></html>"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	options := &RequestOptions{
		Syllables: intPointer(3),
		Part:      partPointer(PartOfSpeechVerb),
	}

	page, err := client.FetchRhymesPage(context.Background(), "привет", options)
	require.NoError(t, err)
	assert.Contains(t, page, "riLi")
}

// TestClientImpl_FetchRhymesPage_EmphasisInPath tests that the emphasis filter travels in the URL path.
func TestClientImpl_FetchRhymesPage_EmphasisInPath(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/привет/1", r.URL.Path)
		assert.Empty(t, r.Header.Get("Cookie"))

		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	options := &RequestOptions{Emphasis: intPointer(1)}

	_, err := client.FetchRhymesPage(context.Background(), "привет", options)
	require.NoError(t, err)
}

// TestClientImpl_FetchRhymesPage_NoOptions tests that empty options produce no Cookie header.
func TestClientImpl_FetchRhymesPage_NoOptions(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/r/кот", r.URL.Path)
		assert.Empty(t, r.Header.Get("Cookie"))

		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.FetchRhymesPage(context.Background(), "кот", &RequestOptions{})
	require.NoError(t, err)
}

// TestClientImpl_FetchRhymesPage_UnexpectedStatus tests that non-200 responses fail.
func TestClientImpl_FetchRhymesPage_UnexpectedStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	page, err := client.FetchRhymesPage(context.Background(), "привет", &RequestOptions{})
	require.ErrorIs(t, err, ErrUnexpectedHTTPStatus)
	assert.Empty(t, page)
}

// TestClientImpl_FetchRhymesPage_CacheHit tests that a repeated lookup is served from the cache.
func TestClientImpl_FetchRhymesPage_CacheHit(t *testing.T) {
	t.Parallel()

	var requestCount atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		requestCount.Add(1)

		_, _ = w.Write([]byte("<html></html>"))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)
	options := &RequestOptions{Syllables: intPointer(2)}

	first, err := client.FetchRhymesPage(context.Background(), "привет", options)
	require.NoError(t, err)

	second, err := client.FetchRhymesPage(context.Background(), "привет", options)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, int64(1), requestCount.Load())
}

// TestClientImpl_FetchRhymesPage_TransportFailure tests that transport errors propagate.
func TestClientImpl_FetchRhymesPage_TransportFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	// Close immediately so requests fail at the transport level.
	server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.FetchRhymesPage(context.Background(), "привет", &RequestOptions{})
	require.Error(t, err)
}
