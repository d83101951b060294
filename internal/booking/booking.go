// Package booking builds site URLs: the explore listing, the buy-tickets page and the
// seat-layout deep link.
package booking

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// DefaultSiteURL is the BookMyShow India host.
const DefaultSiteURL = "https://in.bookmyshow.com"

var (
	whitespaceRE = regexp.MustCompile(`[\s\x{85}\p{Z}]+`)
	nonSlugRE    = regexp.MustCompile(`[^a-z0-9-]`)
)

// Slugify lower-cases s, turns whitespace runs (Unicode spaces included) into single hyphens and drops anything
// that is not a lowercase letter, digit or hyphen.
func Slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = whitespaceRE.ReplaceAllString(s, "-")
	return nonSlugRE.ReplaceAllString(s, "")
}

// Site formats URLs for one ticketing host.
type Site struct {
	baseURL string
}

// NewSite returns a Site rooted at baseURL; an empty baseURL means DefaultSiteURL.
func NewSite(baseURL string) Site {
	if baseURL == "" {
		baseURL = DefaultSiteURL
	}
	return Site{baseURL: strings.TrimRight(baseURL, "/")}
}

func (s Site) BaseURL() string {
	if s.baseURL == "" {
		return DefaultSiteURL
	}
	return s.baseURL
}

// Host is the site host name, used to recognise absolute links on listing pages.
func (s Site) Host() string {
	u, err := url.Parse(s.BaseURL())
	if err != nil {
		return ""
	}
	return u.Host
}

func (s Site) ExploreURL(citySlug string) string {
	return fmt.Sprintf("%s/explore/movies-%s", s.BaseURL(), citySlug)
}

func (s Site) BuyTicketsURL(citySlug, movieSlug, movieID, date string) string {
	return fmt.Sprintf("%s/movies/%s/%s/buytickets/%s/%s", s.BaseURL(), citySlug, movieSlug, movieID, date)
}

// SeatLayoutURL is the deep link into seat selection for one session.
func (s Site) SeatLayoutURL(citySlug, movieID, venueCode, sessionID, date string) string {
	return fmt.Sprintf("%s/movies/%s/seat-layout/%s/%s/%s/%s", s.BaseURL(), citySlug, movieID, venueCode, sessionID, date)
}

// BuildSeatLayoutURL formats a seat-layout link on DefaultSiteURL.
func BuildSeatLayoutURL(citySlug, movieID, venueCode, sessionID, date string) string {
	return NewSite("").SeatLayoutURL(citySlug, movieID, venueCode, sessionID, date)
}
