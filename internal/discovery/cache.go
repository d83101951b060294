package discovery

import (
	"context"
	"time"

	"github.com/drewfead/bms-booker/internal"
	"github.com/drewfead/bms-booker/internal/booking"
	"github.com/hashicorp/golang-lru/v2/expirable"
)

type Middleware func(internal.MovieDirectory) internal.MovieDirectory

// Cached returns middleware that keeps listing results in an LRU with a TTL, keyed by city slug
// (and movie slug for lookups). Errors are not cached.
//
//	discovery.Cached(64, 10*time.Minute)(discovery.NewDirectory(fetcher, site))
//
// maxEntries is the LRU size; ttl is how long entries stay valid (zero = no expiration).
func Cached(maxEntries int, ttl time.Duration) Middleware {
	return func(inner internal.MovieDirectory) internal.MovieDirectory {
		if inner == nil {
			return nil
		}
		if maxEntries <= 0 {
			maxEntries = 64
		}
		return &cachingDirectory{
			inner:  inner,
			movies: expirable.NewLRU[string, []internal.Movie](maxEntries, nil, ttl),
			ids:    expirable.NewLRU[string, string](maxEntries, nil, ttl),
		}
	}
}

type cachingDirectory struct {
	inner  internal.MovieDirectory
	movies *expirable.LRU[string, []internal.Movie]
	ids    *expirable.LRU[string, string]
}

func (c *cachingDirectory) ListMovies(ctx context.Context, city string) ([]internal.Movie, error) {
	key := booking.Slugify(city)
	if movies, ok := c.movies.Get(key); ok {
		return cloneMovies(movies), nil
	}
	movies, err := c.inner.ListMovies(ctx, city)
	if err != nil {
		return nil, err
	}
	c.movies.Add(key, cloneMovies(movies))
	return movies, nil
}

func (c *cachingDirectory) FindMovieID(ctx context.Context, city, movieName string) (string, error) {
	key := booking.Slugify(city) + "|" + booking.Slugify(movieName)
	if id, ok := c.ids.Get(key); ok {
		return id, nil
	}
	id, err := c.inner.FindMovieID(ctx, city, movieName)
	if err != nil {
		return "", err
	}
	c.ids.Add(key, id)
	return id, nil
}

// cloneMovies copies the slice so callers that enrich results cannot mutate cached entries.
func cloneMovies(movies []internal.Movie) []internal.Movie {
	out := make([]internal.Movie, len(movies))
	copy(out, movies)
	return out
}
