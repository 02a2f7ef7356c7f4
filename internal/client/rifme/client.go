package rifme

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/nfriday/rifme-grabber/internal/config"
	"github.com/nfriday/rifme-grabber/internal/logger"
	http_transport "github.com/nfriday/rifme-grabber/internal/transport/http"
	"github.com/nfriday/rifme-grabber/internal/utils"
)

// Client defines the interface for interacting with the rifme.net service.
type Client interface {
	// FetchRhymesPage fetches the HTML page with rhyme suggestions for the given word.
	FetchRhymesPage(ctx context.Context, word string, options *RequestOptions) (string, error)
	// GetBaseURL returns the base URL of the rifme.net service.
	GetBaseURL() string
}

// ClientImpl implements the Client interface for interacting with the rifme.net service.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// baseURL is the base URL for requests.
	baseURL string
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
	// pagesCache caches fetched pages keyed by URL and cookie to avoid
	// refetching the same lookup within a session.
	pagesCache *lru.Cache[string, string]
}

const (
	// rhymesURIPath is the URI path component for rhyme lookups.
	rhymesURIPath = "r"

	// cookieHeader is the HTTP header name for Cookie.
	cookieHeader = "Cookie"

	// pagesCacheSize defines the maximum number of fetched pages to cache.
	// A full fan-out produces eight pages per word, so this holds pages
	// for a handful of recently requested words.
	pagesCacheSize = 64
)

// Static error definitions for better error handling.
var (
	// ErrUnexpectedHTTPStatus indicates an unexpected HTTP status code was received.
	ErrUnexpectedHTTPStatus = errors.New("unexpected HTTP status")
)

// NewClient creates and returns a new instance of ClientImpl.
// It initializes the HTTP client with the round-tripper chain
// providing User-Agent injection and debug-level request logging.
func NewClient(cfg *config.Config) (Client, error) {
	// Parse the base URL for the rhyme service.
	baseURL, err := url.Parse(cfg.RifmeBaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid host URL: %w", err)
	}

	timeout := cfg.ParsedRequestTimeout
	if timeout <= 0 {
		timeout = http_transport.DefaultTimeout
	}

	// Initialize the HTTP client with custom transport and timeout.
	httpClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewLogTransport(http.DefaultTransport, cfg.ParsedMaxLogLength),
			utils.NewSimpleUserAgentProvider(http_transport.DefaultUserAgent)),
		Timeout: timeout,
	}

	// Initialize the LRU cache for fetched pages to avoid redundant requests.
	pagesCache, err := lru.New[string, string](pagesCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create pages cache: %w", err)
	}

	client := &ClientImpl{
		cfg:        cfg,
		baseURL:    baseURL.String(),
		httpClient: httpClient,
		pagesCache: pagesCache,
	}

	return client, nil
}

// FetchRhymesPage fetches the HTML page with rhyme suggestions for the given word.
// The request carries the filters from options as cookies; the emphasis filter,
// when present, is appended to the URL path.
func (c *ClientImpl) FetchRhymesPage(ctx context.Context, word string, options *RequestOptions) (string, error) {
	requestURL, err := c.buildRhymesURL(word, options)
	if err != nil {
		return "", fmt.Errorf("failed to build request URL: %w", err)
	}

	cookie := BuildCookie(options)

	cacheKey := requestURL + "|" + cookie
	if cached, ok := c.pagesCache.Get(cacheKey); ok {
		logger.Debugf(ctx, "Page cache hit for URL: %s", requestURL)

		return cached, nil
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, http.NoBody)
	if err != nil {
		return "", err
	}

	if cookie != "" {
		request.Header.Set(cookieHeader, cookie)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return "", err
	}

	defer response.Body.Close() //nolint:errcheck // Error on close is not critical here.

	// The service serves a body on any status, but a non-200 page
	// carries no rhyme list, so it is treated as an error.
	if response.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d", ErrUnexpectedHTTPStatus, response.StatusCode)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	page := string(body)
	c.pagesCache.Add(cacheKey, page)

	return page, nil
}

// GetBaseURL returns the base URL of the rifme.net service.
func (c *ClientImpl) GetBaseURL() string {
	return c.baseURL
}

// buildRhymesURL constructs the lookup URL for a word,
// appending the emphasis position when it is specified.
func (c *ClientImpl) buildRhymesURL(word string, options *RequestOptions) (string, error) {
	segments := []string{rhymesURIPath, word}
	if options != nil && options.Emphasis != nil {
		segments = append(segments, strconv.Itoa(*options.Emphasis))
	}

	return url.JoinPath(c.baseURL, segments...)
}
