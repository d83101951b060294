package internal

import "context"

// Fetcher is the outbound fetch boundary. Implementations fail immediately; there is no retry.
type Fetcher interface {
	Fetch(ctx context.Context, targetURL string) (*Page, error)
}

// MovieDirectory discovers the movies currently listed for a city.
type MovieDirectory interface {
	ListMovies(ctx context.Context, city string) ([]Movie, error)
	// FindMovieID returns the id of the first listing whose link mentions the movie's slug.
	FindMovieID(ctx context.Context, city, movieName string) (string, error)
}
