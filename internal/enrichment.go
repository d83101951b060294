package internal

import (
	"context"
	"time"
)

type EnrichmentProvider interface {
	// Enrich makes a best-effort attempt to annotate the movie with data from the provider
	Enrich(ctx context.Context, movie EnrichedMovie) (EnrichedMovie, error)
}

type EnrichedMovie struct {
	Movie  Movie             `json:"movie"`
	Audits []EnrichmentAudit `json:"audits"`
}

type EnrichmentResult uint8

const (
	EnrichmentResultSuccess EnrichmentResult = iota
	EnrichmentResultFailure
	EnrichmentResultPartialSuccess
)

type EnrichmentAudit struct {
	Result      EnrichmentResult `json:"result"`
	Details     string           `json:"details"`
	At          time.Time        `json:"at"`
	Annotations map[string]any   `json:"annotations"`
}
