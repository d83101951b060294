// Package tools implements the named operations exposed to assistants and the CLI:
// validate, list_movies, get_venue_details and book_tickets.
package tools

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/drewfead/bms-booker/internal"
	"github.com/drewfead/bms-booker/internal/booking"
	"github.com/drewfead/bms-booker/internal/discovery"
	"github.com/drewfead/bms-booker/internal/embedded"
	"github.com/drewfead/bms-booker/internal/enrichment"
	"github.com/drewfead/bms-booker/internal/resolve"
	"github.com/drewfead/bms-booker/internal/showtimes"
)

// DefaultCity is used by get_venue_details when no city is given.
const DefaultCity = "Kanpur"

var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrToolNotFound    = errors.New("tool not found")
)

var dateRE = regexp.MustCompile(`^\d{8}$`)

type Service struct {
	fetcher     internal.Fetcher
	directory   internal.MovieDirectory
	site        booking.Site
	schema      showtimes.Schema
	enrichment  []internal.EnrichmentProvider
	marker      string
	cutoff      float64
	ownerNumber string
}

type Option func(*Service)

func WithSite(site booking.Site) Option {
	return func(s *Service) {
		s.site = site
	}
}

// WithDirectory replaces the movie directory (e.g. with a cached one).
func WithDirectory(d internal.MovieDirectory) Option {
	return func(s *Service) {
		if d != nil {
			s.directory = d
		}
	}
}

func WithEnrichment(providers ...internal.EnrichmentProvider) Option {
	return func(s *Service) {
		s.enrichment = append(s.enrichment, providers...)
	}
}

// WithMarker sets the page-state marker searched for in buy-tickets pages.
func WithMarker(marker string) Option {
	return func(s *Service) {
		if marker != "" {
			s.marker = marker
		}
	}
}

// WithCutoff sets the venue similarity cutoff; values outside [0, 1] are ignored.
func WithCutoff(cutoff float64) Option {
	return func(s *Service) {
		if cutoff >= 0 && cutoff <= 1 {
			s.cutoff = cutoff
		}
	}
}

// WithOwnerNumber sets the phone number returned by validate.
func WithOwnerNumber(number string) Option {
	return func(s *Service) {
		s.ownerNumber = number
	}
}

func NewService(fetcher internal.Fetcher, opts ...Option) *Service {
	s := &Service{
		fetcher: fetcher,
		site:    booking.NewSite(""),
		schema:  showtimes.BookMyShow,
		marker:  embedded.InitialStateMarker,
		cutoff:  resolve.DefaultCutoff,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.directory == nil {
		s.directory = discovery.NewDirectory(fetcher, s.site)
	}
	return s
}

type ListMoviesParams struct {
	City string `json:"city"`
}

type VenueDetailsParams struct {
	MovieName  string `json:"movie_name"`
	TargetDate string `json:"target_date"`
	MovieID    string `json:"movie_id,omitempty"`
	City       string `json:"city,omitempty"`
}

type BookTicketsParams struct {
	MovieID   string `json:"movie_id,omitempty"`
	VenueName string `json:"venue_name"`
	MovieName string `json:"movie_name"`
	Time      string `json:"time"`
	Date      string `json:"date"`
	City      string `json:"city"`
}

// Validate returns the owner's phone number.
func (s *Service) Validate(context.Context) (string, error) {
	if s.ownerNumber == "" {
		return "", fmt.Errorf("owner number is not configured")
	}
	return s.ownerNumber, nil
}

func (s *Service) ListMovies(ctx context.Context, p ListMoviesParams) (internal.MovieList, error) {
	if err := required("city", p.City); err != nil {
		return internal.MovieList{}, err
	}
	movies, err := s.directory.ListMovies(ctx, p.City)
	if err != nil {
		return internal.MovieList{}, err
	}
	movies = enrichment.EnrichAll(ctx, movies, s.enrichment...)
	slog.Debug("list movies", "city", p.City, "movies", len(movies))
	return internal.MovieList{Movies: movies}, nil
}

func (s *Service) GetVenueDetails(ctx context.Context, p VenueDetailsParams) (internal.VenueDetails, error) {
	if p.City == "" {
		p.City = DefaultCity
	}
	if err := errors.Join(required("movie_name", p.MovieName), date("target_date", p.TargetDate)); err != nil {
		return internal.VenueDetails{}, err
	}
	movieID, err := s.movieID(ctx, p.City, p.MovieName, p.MovieID)
	if err != nil {
		return internal.VenueDetails{}, err
	}
	records, err := s.showtimes(ctx, p.City, p.MovieName, movieID, p.TargetDate)
	if err != nil {
		return internal.VenueDetails{}, err
	}
	return internal.VenueDetails{
		MovieID: movieID,
		Venues:  showtimes.GroupByVenue(records),
	}, nil
}

// BookTickets resolves the venue and time against the day's shows and returns the seat-layout
// link. A venue or time with no match yields a nil URL, not an error.
func (s *Service) BookTickets(ctx context.Context, p BookTicketsParams) (internal.BookingLink, error) {
	if err := errors.Join(
		required("venue_name", p.VenueName),
		required("movie_name", p.MovieName),
		required("time", p.Time),
		date("date", p.Date),
		required("city", p.City),
	); err != nil {
		return internal.BookingLink{}, err
	}
	movieID, err := s.movieID(ctx, p.City, p.MovieName, p.MovieID)
	if err != nil {
		return internal.BookingLink{}, err
	}
	records, err := s.showtimes(ctx, p.City, p.MovieName, movieID, p.Date)
	if err != nil {
		return internal.BookingLink{}, err
	}
	res, ok := resolve.Resolve(records, p.VenueName, p.Time, resolve.WithCutoff(s.cutoff))
	if !ok {
		slog.Info("no matching show", "venue", p.VenueName, "time", p.Time, "date", p.Date, "shows", len(records))
		return internal.BookingLink{}, nil
	}
	link := s.site.SeatLayoutURL(booking.Slugify(p.City), movieID, res.VenueCode, res.SessionID, p.Date)
	return internal.BookingLink{URL: &link}, nil
}

func (s *Service) movieID(ctx context.Context, city, movieName, movieID string) (string, error) {
	if movieID = strings.TrimSpace(movieID); movieID != "" {
		return movieID, nil
	}
	return s.directory.FindMovieID(ctx, city, movieName)
}

// showtimes fetches the buy-tickets page for one movie and date and extracts its records.
func (s *Service) showtimes(ctx context.Context, city, movieName, movieID, date string) ([]internal.ShowtimeRecord, error) {
	target := s.site.BuyTicketsURL(booking.Slugify(city), booking.Slugify(movieName), movieID, date)
	page, err := s.fetcher.Fetch(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch showtimes: %w", err)
	}
	doc, err := embedded.Locate(page.Body, s.marker)
	if err != nil {
		return nil, fmt.Errorf("failed to read page state of %s: %w", target, err)
	}
	records, stats := s.schema.Extract(doc, date)
	slog.Debug("extracted showtimes",
		"url", target,
		"page_bytes", len(page.Body),
		"records", len(records),
		"venues", stats.Venues,
		"showtimes", stats.Showtimes,
	)
	if stats.Skipped() {
		slog.Warn("skipped incomplete showtimes",
			"url", target,
			"skipped_venues", stats.SkippedVenues,
			"skipped_showtimes", stats.SkippedShowtimes,
		)
	}
	return records, nil
}

func required(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidArgument, name)
	}
	return nil
}

func date(name, value string) error {
	if !dateRE.MatchString(value) {
		return fmt.Errorf("%w: %s must be YYYYMMDD, got %q", ErrInvalidArgument, name, value)
	}
	return nil
}
