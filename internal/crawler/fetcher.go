package crawler

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"golang.org/x/net/html/charset"
)

// DefaultUserAgent is the static identity sent with every request.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/93.0.4577.82 Safari/537.36"

// DefaultMaxBodySize caps how much of a response body is read.
const DefaultMaxBodySize = 10 * 1024 * 1024 // 10MB

// Fetcher retrieves the body of a URL as text.
// Implementations must be safe for concurrent use.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// HTTPFetcher performs a single HTTP GET per call.
// Redirects, TLS verification and proxying are properties of the client.
type HTTPFetcher struct {
	client      *http.Client
	userAgent   string
	maxBodySize int64
}

// FetcherOption configures an HTTPFetcher.
type FetcherOption func(*HTTPFetcher)

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) FetcherOption {
	return func(f *HTTPFetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// WithMaxBodySize sets the maximum number of body bytes read per response.
func WithMaxBodySize(size int64) FetcherOption {
	return func(f *HTTPFetcher) {
		if size > 0 {
			f.maxBodySize = size
		}
	}
}

// NewHTTPFetcher creates an HTTPFetcher that sends requests with client.
// If client is nil, http.DefaultClient is used.
func NewHTTPFetcher(client *http.Client, opts ...FetcherOption) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}

	f := &HTTPFetcher{
		client:      client,
		userAgent:   DefaultUserAgent,
		maxBodySize: DefaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch GETs rawURL and returns its body decoded to UTF-8, using the
// Content-Type charset, a BOM or a <meta> declaration. The status code is
// not inspected: error pages can carry links too. Every failure is
// returned as a *NetworkError.
func (f *HTTPFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return "", &NetworkError{URL: rawURL, Err: err}
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &NetworkError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return "", &NetworkError{URL: rawURL, Err: err}
	}

	return decodeBody(body, resp.Header.Get("Content-Type")), nil
}

// decodeBody converts raw to UTF-8. Bodies whose encoding cannot be
// determined or decoded are returned as is.
func decodeBody(raw []byte, contentType string) string {
	r, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		return string(raw)
	}
	decoded, err := io.ReadAll(r)
	if err != nil {
		return string(raw)
	}
	return string(decoded)
}

var _ Fetcher = (*HTTPFetcher)(nil)
