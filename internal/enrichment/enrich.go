package enrichment

import (
	"context"
	"log/slog"
	"time"

	"github.com/drewfead/bms-booker/internal"
)

// Enrich runs every provider over movie in order. A provider error is recorded as a failure audit
// and the movie keeps whatever earlier providers added.
func Enrich(ctx context.Context, movie internal.Movie, providers ...internal.EnrichmentProvider) internal.EnrichedMovie {
	enriched := internal.EnrichedMovie{
		Movie:  movie,
		Audits: make([]internal.EnrichmentAudit, 0, len(providers)),
	}
	for _, provider := range providers {
		next, err := provider.Enrich(ctx, enriched)
		if err != nil {
			enriched.Audits = append(enriched.Audits, internal.EnrichmentAudit{
				Result:      internal.EnrichmentResultFailure,
				Details:     err.Error(),
				At:          time.Now(),
				Annotations: nil,
			})
			continue
		}
		enriched = next
	}
	for i, audit := range enriched.Audits {
		slog.Debug("enrichment audit",
			"movie_id", movie.ID,
			"provider_index", i,
			"result", audit.Result,
			"details", audit.Details,
			"annotations", audit.Annotations,
		)
	}
	return enriched
}

// EnrichAll enriches movies in order. Once ctx is done the remaining movies pass through untouched.
func EnrichAll(ctx context.Context, movies []internal.Movie, providers ...internal.EnrichmentProvider) []internal.Movie {
	if len(providers) == 0 {
		return movies
	}
	out := make([]internal.Movie, 0, len(movies))
	for _, m := range movies {
		if ctx.Err() != nil {
			out = append(out, m)
			continue
		}
		out = append(out, Enrich(ctx, m, providers...).Movie)
	}
	return out
}
