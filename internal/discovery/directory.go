// Package discovery reads the city listing page to find movies and their ids.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/drewfead/bms-booker/internal"
	"github.com/drewfead/bms-booker/internal/booking"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrMovieNotFound is returned when no listing link matches the requested movie.
var ErrMovieNotFound = errors.New("movie not found")

// minLinkParts is the smallest number of "/"-separated parts in a movie link,
// e.g. "/movies/kanpur/saiyaara/ET00447951".
const minLinkParts = 5

type Directory struct {
	fetcher internal.Fetcher
	site    booking.Site
}

func NewDirectory(fetcher internal.Fetcher, site booking.Site) *Directory {
	return &Directory{fetcher: fetcher, site: site}
}

// ListMovies returns the movies linked from the city's explore page, de-duplicated by id.
func (d *Directory) ListMovies(ctx context.Context, city string) ([]internal.Movie, error) {
	citySlug := booking.Slugify(city)
	hrefs, err := d.movieLinks(ctx, citySlug)
	if err != nil {
		return nil, err
	}
	return MoviesFromLinks(hrefs), nil
}

// FindMovieID returns the id from the first listing link that contains the movie slug.
func (d *Directory) FindMovieID(ctx context.Context, city, movieName string) (string, error) {
	citySlug := booking.Slugify(city)
	movieSlug := booking.Slugify(movieName)
	hrefs, err := d.movieLinks(ctx, citySlug)
	if err != nil {
		return "", err
	}
	if id, ok := FindInLinks(hrefs, movieSlug); ok {
		return id, nil
	}
	return "", fmt.Errorf("%w: %q in %s", ErrMovieNotFound, movieName, city)
}

func (d *Directory) movieLinks(ctx context.Context, citySlug string) ([]string, error) {
	page, err := d.fetcher.Fetch(ctx, d.site.ExploreURL(citySlug))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch movie listing: %w", err)
	}
	hrefs, err := ParseMovieLinks(page.Body, citySlug)
	if err != nil {
		return nil, err
	}
	slog.Debug("movie listing", "city", citySlug, "links", len(hrefs))
	return hrefs, nil
}

// ParseMovieLinks returns, in document order, every anchor href that points into the
// city's movie pages.
func ParseMovieLinks(html, citySlug string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse movie listing: %w", err)
	}
	fragment := "/movies/" + citySlug + "/"
	var hrefs []string
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if strings.Contains(href, fragment) {
			hrefs = append(hrefs, href)
		}
	})
	return hrefs, nil
}

func linkParts(href string) ([]string, bool) {
	parts := strings.Split(strings.TrimRight(href, "/"), "/")
	return parts, len(parts) >= minLinkParts
}

// MoviesFromLinks turns listing links into movies. The first link seen for an id wins.
func MoviesFromLinks(hrefs []string) []internal.Movie {
	movies := make([]internal.Movie, 0, len(hrefs))
	seen := make(map[string]struct{}, len(hrefs))
	caser := cases.Title(language.Und)
	for _, href := range hrefs {
		parts, ok := linkParts(href)
		if !ok {
			continue
		}
		id := parts[len(parts)-1]
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		name := strings.ReplaceAll(parts[len(parts)-2], "-", " ")
		movies = append(movies, internal.Movie{
			ID:   id,
			Name: caser.String(name),
		})
	}
	return movies
}

// FindInLinks returns the id of the first link containing movieSlug.
func FindInLinks(hrefs []string, movieSlug string) (string, bool) {
	if movieSlug == "" {
		return "", false
	}
	for _, href := range hrefs {
		if !strings.Contains(href, movieSlug) {
			continue
		}
		if parts, ok := linkParts(href); ok {
			return parts[len(parts)-1], true
		}
	}
	return "", false
}
