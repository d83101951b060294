package httputil

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2"
)

const defaultLRUMaxEntries = 256

// CacheTransport is an http.RoundTripper that caches successful GET responses in memory.
// Hits are served from an LRU; misses go to Base and are stored on 2xx unless the
// response forbids it. Concurrent misses for the same key may both reach the backend.
type CacheTransport struct {
	Base http.RoundTripper

	// MaxEntries bounds the LRU. Zero means defaultLRUMaxEntries.
	MaxEntries int

	// TTL applies to responses that carry no max-age. Zero keeps them until evicted.
	TTL time.Duration

	// Key derives the cache key. Nil means method + URL with its query sorted. Proxied requests use
	// this to key on the target page instead of the proxy URL that embeds a token.
	Key func(req *http.Request) string

	// OnCacheHit, if set, is called for every RoundTrip with the cache key and whether it was a hit.
	OnCacheHit func(cacheKey string, hit bool)

	initOnce sync.Once
	cache    *lru.Cache[string, *cachedResponse]
	initErr  error

	hits, misses atomic.Int64
}

type cachedResponse struct {
	Status  int
	Header  http.Header
	Body    []byte
	Expires time.Time // zero = honor only LRU
}

func (t *CacheTransport) ensureCache() error {
	t.initOnce.Do(func() {
		size := t.MaxEntries
		if size <= 0 {
			size = defaultLRUMaxEntries
		}
		t.cache, t.initErr = lru.New[string, *cachedResponse](size)
	})
	return t.initErr
}

// Stats returns the hit and miss counts since creation.
func (t *CacheTransport) Stats() (hits, misses int64) {
	return t.hits.Load(), t.misses.Load()
}

func (t *CacheTransport) key(req *http.Request) string {
	if t.Key != nil {
		return t.Key(req)
	}
	u := *req.URL
	u.RawQuery = u.Query().Encode()
	return req.Method + " " + u.String()
}

func (t *CacheTransport) record(key string, hit bool) {
	if hit {
		t.hits.Add(1)
	} else {
		t.misses.Add(1)
	}
	if t.OnCacheHit != nil {
		t.OnCacheHit(key, hit)
	}
}

// RoundTrip implements http.RoundTripper.
func (t *CacheTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.ensureCache(); err != nil {
		return nil, err
	}
	key := t.key(req)
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	if req.Method == http.MethodGet && !requestWantsFresh(req) {
		if entry, ok := t.cache.Get(key); ok {
			if entry.Expires.IsZero() || time.Now().Before(entry.Expires) {
				t.record(key, true)
				return responseFromCache(req, entry), nil
			}
			t.cache.Remove(key)
		}
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	t.record(key, false)
	if req.Method != http.MethodGet || resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return resp, nil
	}
	noStore, maxAge := responseCacheControl(resp.Header)
	if noStore {
		return resp, nil
	}
	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, err
	}
	t.cache.Add(key, &cachedResponse{
		Status:  resp.StatusCode,
		Header:  resp.Header.Clone(),
		Body:    body,
		Expires: t.expires(maxAge),
	})
	resp.Body = io.NopCloser(bytes.NewReader(body))
	resp.ContentLength = int64(len(body))
	return resp, nil
}

func responseFromCache(req *http.Request, entry *cachedResponse) *http.Response {
	return &http.Response{
		Status:        strconv.Itoa(entry.Status) + " " + http.StatusText(entry.Status),
		StatusCode:    entry.Status,
		Proto:         "HTTP/1.1",
		ProtoMajor:    1,
		ProtoMinor:    1,
		Header:        entry.Header.Clone(),
		Body:          io.NopCloser(bytes.NewReader(entry.Body)),
		ContentLength: int64(len(entry.Body)),
		Request:       req,
	}
}

// requestWantsFresh returns true if the request's Cache-Control asks to bypass cache (no-cache or max-age=0).
func requestWantsFresh(req *http.Request) bool {
	cc := req.Header.Get("Cache-Control")
	if cc == "" {
		return false
	}
	for part := range strings.SplitSeq(cc, ",") {
		part = strings.TrimSpace(part)
		if part == "no-cache" {
			return true
		}
		if after, ok := strings.CutPrefix(part, "max-age="); ok {
			if n, err := strconv.Atoi(strings.TrimSpace(after)); err == nil && n <= 0 {
				return true
			}
		}
	}
	return false
}

// responseCacheControl parses Cache-Control from response headers.
// Returns noStore (do not cache) and maxAge in seconds (0 = not set).
func responseCacheControl(header http.Header) (noStore bool, maxAge int) {
	for _, cc := range header["Cache-Control"] {
		for part := range strings.SplitSeq(cc, ",") {
			part = strings.TrimSpace(strings.ToLower(part))
			switch {
			case part == "no-store" || part == "no-cache":
				noStore = true
			case strings.HasPrefix(part, "max-age="), strings.HasPrefix(part, "s-maxage="):
				_, val, _ := strings.Cut(part, "=")
				if n, err := strconv.Atoi(strings.TrimSpace(val)); err == nil && n > 0 {
					maxAge = n
				}
			}
		}
	}
	return noStore, maxAge
}

func (t *CacheTransport) expires(maxAgeSeconds int) time.Time {
	switch {
	case maxAgeSeconds > 0:
		return time.Now().Add(time.Duration(maxAgeSeconds) * time.Second)
	case t.TTL > 0:
		return time.Now().Add(t.TTL)
	}
	return time.Time{}
}
