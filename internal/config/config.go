// Package config holds runtime settings. Values come from defaults, a .env file, the
// environment and command flags, in increasing priority; the CLI resolves them once and
// passes the result into constructors.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const EnvPrefix = "BMS_BOOKER_"

type FetchMode string

const (
	FetchModeProxy   FetchMode = "proxy"
	FetchModeDirect  FetchMode = "direct"
	FetchModeBrowser FetchMode = "browser"
)

func ParseFetchMode(s string) (FetchMode, error) {
	switch m := FetchMode(strings.ToLower(strings.TrimSpace(s))); m {
	case FetchModeProxy, FetchModeDirect, FetchModeBrowser:
		return m, nil
	case "":
		return FetchModeProxy, nil
	}
	return "", fmt.Errorf("invalid fetch mode %q (valid: proxy, direct, browser)", s)
}

type Config struct {
	// AuthToken is the bearer token clients must present to the servers.
	AuthToken string
	// OwnerNumber is returned by the validate tool.
	OwnerNumber string
	// ScrapeToken authenticates against the scraping proxy.
	ScrapeToken string
	ProxyURL    string
	SiteURL     string
	FetchMode   FetchMode

	RequestTimeout time.Duration
	// CacheEntries > 0 caches fetched pages in memory.
	CacheEntries int
	// ListingCacheTTL > 0 caches movie listings per city.
	ListingCacheTTL time.Duration

	TMDBKey     string
	Marker      string
	MatchCutoff float64

	GRPCAddr string
	HTTPAddr string
}

func Default() Config {
	return Config{
		ProxyURL:       "http://api.scrape.do/",
		SiteURL:        "https://in.bookmyshow.com",
		FetchMode:      FetchModeProxy,
		RequestTimeout: 30 * time.Second,
		Marker:         "__INITIAL_STATE__",
		MatchCutoff:    0.6,
		GRPCAddr:       ":8086",
		HTTPAddr:       ":8080",
	}
}

// Env returns the environment variable names read for a setting: the prefixed name first,
// then any legacy names.
func Env(name string, legacy ...string) []string {
	return append([]string{EnvPrefix + name}, legacy...)
}

// LoadDotEnv loads .env style files into the process environment without overriding
// variables that are already set. Missing files are ignored; with no paths ".env" is tried.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
	}
	return nil
}

// ValidateFetch checks the settings needed to fetch pages.
func (c Config) ValidateFetch() error {
	var errs []error
	if _, err := ParseFetchMode(string(c.FetchMode)); err != nil {
		errs = append(errs, err)
	}
	if c.FetchMode == FetchModeProxy && c.ScrapeToken == "" {
		errs = append(errs, fmt.Errorf("scrape token is required in proxy mode (set %s or API_TOKEN)", EnvPrefix+"SCRAPE_TOKEN"))
	}
	if c.RequestTimeout < 0 {
		errs = append(errs, fmt.Errorf("request timeout must not be negative"))
	}
	if c.MatchCutoff < 0 || c.MatchCutoff > 1 {
		errs = append(errs, fmt.Errorf("match cutoff must be within [0, 1], got %v", c.MatchCutoff))
	}
	return errors.Join(errs...)
}

// ValidateServe checks the settings needed to run the servers.
func (c Config) ValidateServe() error {
	var errs []error
	if c.AuthToken == "" {
		errs = append(errs, fmt.Errorf("auth token is required (set %s or AUTH_TOKEN)", EnvPrefix+"AUTH_TOKEN"))
	}
	if c.OwnerNumber == "" {
		errs = append(errs, fmt.Errorf("owner number is required (set %s or MY_NUMBER)", EnvPrefix+"OWNER_NUMBER"))
	}
	if c.GRPCAddr == "" && c.HTTPAddr == "" {
		errs = append(errs, errors.New("at least one of the grpc and http addresses is required"))
	}
	return errors.Join(c.ValidateFetch(), errors.Join(errs...))
}
