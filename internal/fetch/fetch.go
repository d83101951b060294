// Package fetch retrieves page HTML through scrape.do, directly, or through a headless browser.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/drewfead/bms-booker/internal"
	"github.com/drewfead/bms-booker/internal/browser"
	"github.com/drewfead/bms-booker/internal/httputil"
	"github.com/gocolly/colly/v2"
	"github.com/gocolly/colly/v2/extensions"
)

const (
	DefaultProxyURL       = "http://api.scrape.do/"
	DefaultRequestTimeout = 30 * time.Second
)

// FetchError reports a non-2xx answer from the upstream.
type FetchError struct {
	StatusCode int
	URL        string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// ProxyConfig points the proxy fetcher at a scrape.do style endpoint.
type ProxyConfig struct {
	URL   string
	Token string
}

type Option func(*collectorFetcher)

// WithTimeout sets the per-request timeout. Zero keeps DefaultRequestTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *collectorFetcher) {
		if d > 0 {
			f.timeout = d
		}
	}
}

// WithTransport replaces the transport used under the collector (e.g. httptest.Server.Client().Transport).
func WithTransport(rt http.RoundTripper) Option {
	return func(f *collectorFetcher) {
		if rt != nil {
			f.transport = rt
		}
	}
}

// WithCache keeps successful responses in an in-memory LRU. maxEntries <= 0 disables it.
func WithCache(maxEntries int, ttl time.Duration) Option {
	return func(f *collectorFetcher) {
		if maxEntries <= 0 {
			f.cache = nil
			return
		}
		f.cache = &httputil.CacheTransport{MaxEntries: maxEntries, TTL: ttl}
	}
}

type collectorFetcher struct {
	timeout   time.Duration
	transport http.RoundTripper
	cache     *httputil.CacheTransport
	target    func(string) string
}

func newCollectorFetcher(opts []Option) *collectorFetcher {
	f := &collectorFetcher{
		timeout:   DefaultRequestTimeout,
		transport: http.DefaultTransport,
		target:    func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.cache != nil {
		f.cache.Base = f.transport
		f.cache.OnCacheHit = func(key string, hit bool) {
			slog.Debug("fetch cache", "key", key, "hit", hit)
		}
	}
	return f
}

// Proxy fetches every target through the proxy endpoint: <proxy>?token=<token>&url=<target>.
func Proxy(cfg ProxyConfig, opts ...Option) internal.Fetcher {
	if cfg.URL == "" {
		cfg.URL = DefaultProxyURL
	}
	f := newCollectorFetcher(opts)
	f.target = func(target string) string {
		return ProxiedURL(cfg, target)
	}
	if f.cache != nil && f.cache.Key == nil {
		// the request URL embeds the token; key on the page itself
		f.cache.Key = func(req *http.Request) string {
			return req.Method + " " + req.URL.Query().Get("url")
		}
	}
	return f
}

// Direct fetches targets without a proxy.
func Direct(opts ...Option) internal.Fetcher {
	return newCollectorFetcher(opts)
}

// ProxiedURL builds the proxy request URL for target.
func ProxiedURL(cfg ProxyConfig, target string) string {
	base := cfg.URL
	if base == "" {
		base = DefaultProxyURL
	}
	q := url.Values{}
	q.Set("token", cfg.Token)
	q.Set("url", target)
	return base + "?" + q.Encode()
}

// contextTransport binds outgoing requests to the caller's context so cancellation reaches the collector.
type contextTransport struct {
	ctx  context.Context
	base http.RoundTripper
}

func (t *contextTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	return t.base.RoundTrip(req.WithContext(t.ctx))
}

func (f *collectorFetcher) collector(ctx context.Context) *colly.Collector {
	c := colly.NewCollector(
		colly.MaxBodySize(0),
		colly.ParseHTTPErrorResponse(),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(f.timeout)
	var base http.RoundTripper = f.transport
	if f.cache != nil {
		base = f.cache
	}
	c.WithTransport(&contextTransport{ctx: ctx, base: base})
	extensions.RandomUserAgent(c)
	c.OnRequest(func(r *colly.Request) {
		r.Headers.Set("Accept-Language", "en-US,en;q=0.9")
		r.Headers.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	})
	return c
}

func (f *collectorFetcher) Fetch(ctx context.Context, targetURL string) (*internal.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	requestURL := f.target(targetURL)
	c := f.collector(ctx)

	var page *internal.Page
	var fetchErr error
	c.OnResponse(func(r *colly.Response) {
		page = &internal.Page{
			URL:        targetURL,
			StatusCode: r.StatusCode,
			Body:       string(r.Body),
		}
	})
	c.OnError(func(r *colly.Response, err error) {
		if fetchErr == nil {
			fetchErr = err
		}
	})

	start := time.Now()
	if err := c.Visit(requestURL); err != nil && fetchErr == nil {
		fetchErr = err
	}
	if fetchErr != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("fetch %s: %w", targetURL, ctxErr)
		}
		return nil, fmt.Errorf("fetch %s: %w", targetURL, fetchErr)
	}
	if page == nil {
		return nil, fmt.Errorf("fetch %s: %w", targetURL, errNoResponse)
	}
	slog.Debug("fetched page", "url", targetURL, "status", page.StatusCode, "bytes", len(page.Body), "elapsed", time.Since(start))
	if page.StatusCode < 200 || page.StatusCode >= 300 {
		return nil, &FetchError{StatusCode: page.StatusCode, URL: targetURL}
	}
	return page, nil
}

var errNoResponse = errors.New("no response received")

type browserFetcher struct {
	browser browser.Interface
}

// Browser renders targets in a headless browser and returns the resulting document.
func Browser(b browser.Interface) internal.Fetcher {
	if b == nil {
		b = browser.Headless()
	}
	return &browserFetcher{browser: b}
}

func (f *browserFetcher) Fetch(ctx context.Context, targetURL string) (*internal.Page, error) {
	html, err := f.browser.HTML(ctx, targetURL)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", targetURL, err)
	}
	return &internal.Page{URL: targetURL, StatusCode: http.StatusOK, Body: html}, nil
}
