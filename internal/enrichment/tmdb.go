package enrichment

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	tmdb "github.com/cyruzin/golang-tmdb"
	"github.com/drewfead/bms-booker/internal"
	"github.com/drewfead/bms-booker/internal/httputil"
)

// httpRequestRecord is appended by auditTransport for each outgoing request.
type httpRequestRecord struct {
	Method string `json:"method"`
	URL    string `json:"url"`
	Status int    `json:"status"`
}

type cacheEvent struct {
	Key string
	Hit bool
}

type auditTransport struct {
	base http.RoundTripper
	e    *tmdbEnrichment
}

func (t *auditTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	resp, err := t.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	t.e.auditRequests = append(t.e.auditRequests, httpRequestRecord{
		Method: req.Method,
		URL:    redactQuery(req),
		Status: resp.StatusCode,
	})
	return resp, nil
}

// redactQuery drops the query string, which can carry an api_key.
func redactQuery(req *http.Request) string {
	u := *req.URL
	u.RawQuery = ""
	return u.String()
}

type tmdbEnrichment struct {
	client *tmdb.Client
	region string

	// mu serializes Enrich calls; the audit slices below are per call.
	mu            sync.Mutex
	auditRequests []httpRequestRecord
	cacheEvents   []cacheEvent
}

type TMDBOption func(*tmdbConfig)

type tmdbConfig struct {
	transport    http.RoundTripper
	cacheEntries int
	region       string
}

// WithTMDBTransport replaces the transport under the cache (e.g. to point at a test server).
func WithTMDBTransport(rt http.RoundTripper) TMDBOption {
	return func(c *tmdbConfig) {
		if rt != nil {
			c.transport = rt
		}
	}
}

// WithTMDBCacheEntries bounds the response cache.
func WithTMDBCacheEntries(n int) TMDBOption {
	return func(c *tmdbConfig) {
		c.cacheEntries = n
	}
}

// WithRegion biases search results to a release region (ISO 3166-1, e.g. "IN").
func WithRegion(region string) TMDBOption {
	return func(c *tmdbConfig) {
		c.region = region
	}
}

// TMDB annotates movies with their TMDB overview and page link. apiKey is a v4 read access token.
func TMDB(apiKey string, opts ...TMDBOption) (internal.EnrichmentProvider, error) {
	cfg := tmdbConfig{transport: http.DefaultTransport, region: "IN"}
	for _, opt := range opts {
		opt(&cfg)
	}
	tmdbClient, err := tmdb.InitV4(apiKey)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize TMDB client: %w", err)
	}
	e := &tmdbEnrichment{client: tmdbClient, region: cfg.region}
	cacheTransport := &httputil.CacheTransport{
		Base:       cfg.transport,
		MaxEntries: cfg.cacheEntries,
		OnCacheHit: func(cacheKey string, hit bool) {
			e.cacheEvents = append(e.cacheEvents, cacheEvent{Key: cacheKey, Hit: hit})
		},
	}
	tmdbClient.SetClientConfig(http.Client{
		Timeout:   10 * time.Second,
		Transport: &auditTransport{base: cacheTransport, e: e},
	})
	return e, nil
}

// searchCacheHit returns true if the search/movie request was a cache hit.
func searchCacheHit(events []cacheEvent) bool {
	for _, ev := range events {
		if strings.Contains(ev.Key, "search/movie") {
			return ev.Hit
		}
	}
	return false
}

// titleEqual normalizes both strings (collapse spaces, case-insensitive) for comparison.
func titleEqual(a, b string) bool {
	norm := func(s string) string {
		return strings.ToUpper(strings.Join(strings.Fields(s), " "))
	}
	return norm(a) == norm(b)
}

// pickBestResult prefers an exact title match, then the first result.
func pickBestResult(results []tmdb.MovieResult, title string) *tmdb.MovieResult {
	if len(results) == 0 {
		return nil
	}
	for i := range results {
		if titleEqual(results[i].Title, title) {
			return &results[i]
		}
	}
	return &results[0]
}

func (e *tmdbEnrichment) Enrich(ctx context.Context, movie internal.EnrichedMovie) (internal.EnrichedMovie, error) {
	if err := ctx.Err(); err != nil {
		return movie, err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.auditRequests = nil
	e.cacheEvents = nil

	annotations := make(map[string]any)

	if movie.Movie.Name == "" {
		annotations["skipped"] = "no title"
		movie.Audits = append(movie.Audits, internal.EnrichmentAudit{
			Result:      internal.EnrichmentResultSuccess,
			At:          time.Now(),
			Annotations: annotations,
		})
		return movie, nil
	}

	searchTitle := movie.Movie.Name
	options := map[string]string{"language": "en-US"}
	if e.region != "" {
		options["region"] = e.region
	}
	searchResults, err := e.client.GetSearchMovies(searchTitle, options)
	if err != nil {
		return movie, fmt.Errorf("failed to search for movie %s: %w", searchTitle, err)
	}

	result := internal.EnrichmentResultPartialSuccess
	if best := pickBestResult(searchResults.Results, searchTitle); best != nil {
		result = internal.EnrichmentResultSuccess
		if movie.Movie.Overview == "" {
			movie.Movie.Overview = best.Overview
		}
		movie.Movie.Links = append(movie.Movie.Links, internal.Link{
			Href:    fmt.Sprintf("https://www.themoviedb.org/movie/%d", best.ID),
			Display: "TMDB",
		})
		annotations["tmdb_id"] = best.ID
	} else {
		annotations["no_results"] = searchTitle
	}

	annotations["cache_search"] = map[string]any{"hit": searchCacheHit(e.cacheEvents), "query": searchTitle}
	if len(e.auditRequests) > 0 {
		reqs := make([]map[string]any, len(e.auditRequests))
		for i, r := range e.auditRequests {
			reqs[i] = map[string]any{"method": r.Method, "url": r.URL, "status": r.Status}
		}
		annotations["http_requests"] = reqs
	}

	movie.Audits = append(movie.Audits, internal.EnrichmentAudit{
		Result:      result,
		At:          time.Now(),
		Annotations: annotations,
	})
	return movie, nil
}
