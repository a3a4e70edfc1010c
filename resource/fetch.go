package resource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

// FetchTask identifies one external resource request. Two tasks are equal
// when their URLs are equal; the task is also the cache key.
type FetchTask struct {
	URL string
}

// Fetcher retrieves the raw bytes of a resource.
// Implementations must honor ctx cancellation.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, url string) ([]byte, error)

// Fetch calls f(ctx, url).
func (f FetcherFunc) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f(ctx, url)
}

// IsNetworkURL reports whether s is an http or https URL.
func IsNetworkURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Defaults for HTTPFetcher.
const (
	DefaultMaxBytes  = 32 << 20
	DefaultUserAgent = "nodeimg/1.0 (compatible; Go)"
)

// HTTPFetcher fetches resources over HTTP and HTTPS.
// The zero value is usable.
type HTTPFetcher struct {
	// Client defaults to a client with a 30 second timeout.
	Client *http.Client
	// MaxBytes caps the response body; larger bodies fail. Zero means
	// DefaultMaxBytes.
	MaxBytes int64
	// Limiter, when set, throttles outbound requests.
	Limiter   *rate.Limiter
	UserAgent string
}

var defaultClient = &http.Client{Timeout: 30 * time.Second}

// NewHTTPFetcher returns a fetcher allowing rps requests per second with
// the given burst. A non-positive rps disables rate limiting.
func NewHTTPFetcher(rps float64, burst int) *HTTPFetcher {
	f := &HTTPFetcher{}
	if rps > 0 {
		f.Limiter = rate.NewLimiter(rate.Limit(rps), max(burst, 1))
	}
	return f
}

// Fetch implements Fetcher.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	if !IsNetworkURL(url) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, shorten(url))
	}
	if f.Limiter != nil {
		if err := f.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	ua := f.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	client := f.Client
	if client == nil {
		client = defaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("HTTP %d fetching %s", resp.StatusCode, url)
	}

	limit := f.MaxBytes
	if limit <= 0 {
		limit = DefaultMaxBytes
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}
	if int64(len(body)) > limit {
		return nil, fmt.Errorf("response body of %s exceeds %d bytes", url, limit)
	}
	return body, nil
}
