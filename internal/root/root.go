package root

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/drewfead/bms-booker/internal"
	"github.com/drewfead/bms-booker/internal/booking"
	"github.com/drewfead/bms-booker/internal/browser"
	"github.com/drewfead/bms-booker/internal/config"
	"github.com/drewfead/bms-booker/internal/discovery"
	"github.com/drewfead/bms-booker/internal/embedded"
	"github.com/drewfead/bms-booker/internal/enrichment"
	"github.com/drewfead/bms-booker/internal/fetch"
	"github.com/drewfead/bms-booker/internal/server"
	"github.com/drewfead/bms-booker/internal/showtimes"
	"github.com/drewfead/bms-booker/internal/tools"
	"github.com/urfave/cli/v3"
)

// RootOption configures the root command (e.g. for tests).
type RootOption func(*rootConfig)

type rootConfig struct {
	fetcher internal.Fetcher
}

// WithFetcher replaces the fetcher built from flags. Use in tests to point at golden servers.
func WithFetcher(f internal.Fetcher) RootOption {
	return func(c *rootConfig) {
		c.fetcher = f
	}
}

func Root(ctx context.Context, opts ...RootOption) (*cli.Command, error) {
	rc := &rootConfig{}
	for _, opt := range opts {
		opt(rc)
	}
	defaults := config.Default()
	a := &app{root: rc}

	return &cli.Command{
		Name:  "bms-booker",
		Usage: "find movies, showtimes and seat-layout links on BookMyShow",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "debug, info, warn or error", Sources: cli.EnvVars(config.Env("LOG_LEVEL")...)},
			&cli.StringFlag{Name: "output-format", Value: formatJSON, Usage: "json or table"},
			&cli.StringFlag{Name: "output", Usage: "write results to this file instead of stdout"},
			&cli.StringFlag{Name: "scrape-token", Usage: "scraping proxy token", Sources: cli.EnvVars(config.Env("SCRAPE_TOKEN", "API_TOKEN")...)},
			&cli.StringFlag{Name: "proxy-url", Value: defaults.ProxyURL, Sources: cli.EnvVars(config.Env("PROXY_URL")...)},
			&cli.StringFlag{Name: "site-url", Value: defaults.SiteURL, Sources: cli.EnvVars(config.Env("SITE_URL")...)},
			&cli.StringFlag{Name: "fetch-mode", Value: string(defaults.FetchMode), Usage: "proxy, direct or browser", Sources: cli.EnvVars(config.Env("FETCH_MODE")...)},
			&cli.DurationFlag{Name: "request-timeout", Value: defaults.RequestTimeout, Sources: cli.EnvVars(config.Env("REQUEST_TIMEOUT")...)},
			&cli.IntFlag{Name: "cache-entries", Usage: "cache this many fetched pages in memory (0 disables)", Sources: cli.EnvVars(config.Env("CACHE_ENTRIES")...)},
			&cli.DurationFlag{Name: "listing-cache-ttl", Usage: "cache movie listings for this long (0 disables)", Sources: cli.EnvVars(config.Env("LISTING_CACHE_TTL")...)},
			&cli.StringFlag{Name: "tmdb-key", Usage: "TMDB read access token; enables movie enrichment", Sources: cli.EnvVars(config.Env("TMDB_KEY")...)},
			&cli.StringFlag{Name: "marker", Value: defaults.Marker, Usage: "page-state marker in buy-tickets pages", Sources: cli.EnvVars(config.Env("MARKER")...)},
			&cli.FloatFlag{Name: "match-cutoff", Value: defaults.MatchCutoff, Usage: "minimum venue similarity (0-1)", Sources: cli.EnvVars(config.Env("MATCH_CUTOFF")...)},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level, err := parseLevel(cmd.String("log-level"))
			if err != nil {
				return ctx, err
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return ctx, nil
		},
		Commands: []*cli.Command{
			a.serveCommand(defaults),
			a.moviesCommand(),
			a.venuesCommand(),
			a.bookCommand(),
			a.extractCommand(),
			a.callCommand(defaults),
		},
	}, nil
}

const pageCacheTTL = 5 * time.Minute

type app struct {
	root *rootConfig
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("invalid --log-level %q: %w", s, err)
	}
	return level, nil
}

// loadConfig resolves flags (with their env sources already applied) into a Config.
func loadConfig(cmd *cli.Command) (config.Config, error) {
	mode, err := config.ParseFetchMode(cmd.String("fetch-mode"))
	if err != nil {
		return config.Config{}, err
	}
	cfg := config.Default()
	cfg.ScrapeToken = cmd.String("scrape-token")
	cfg.ProxyURL = cmd.String("proxy-url")
	cfg.SiteURL = cmd.String("site-url")
	cfg.FetchMode = mode
	cfg.RequestTimeout = cmd.Duration("request-timeout")
	cfg.CacheEntries = cmd.Int("cache-entries")
	cfg.ListingCacheTTL = cmd.Duration("listing-cache-ttl")
	cfg.TMDBKey = cmd.String("tmdb-key")
	cfg.Marker = cmd.String("marker")
	cfg.MatchCutoff = cmd.Float("match-cutoff")
	return cfg, nil
}

// service wires a tools.Service from cfg. The returned closer releases the browser, if one was started.
func (a *app) service(cfg config.Config, ownerNumber string) (*tools.Service, io.Closer, error) {
	var closer io.Closer = nopCloser{}
	fetcher := a.root.fetcher
	if fetcher == nil {
		if err := cfg.ValidateFetch(); err != nil {
			return nil, nil, err
		}
		fetchOpts := []fetch.Option{
			fetch.WithTimeout(cfg.RequestTimeout),
			fetch.WithCache(cfg.CacheEntries, pageCacheTTL),
		}
		switch cfg.FetchMode {
		case config.FetchModeDirect:
			fetcher = fetch.Direct(fetchOpts...)
		case config.FetchModeBrowser:
			b := browser.Headless()
			closer = b
			fetcher = fetch.Browser(b)
		default:
			fetcher = fetch.Proxy(fetch.ProxyConfig{URL: cfg.ProxyURL, Token: cfg.ScrapeToken}, fetchOpts...)
		}
	}

	site := booking.NewSite(cfg.SiteURL)
	var directory internal.MovieDirectory = discovery.NewDirectory(fetcher, site)
	if cfg.ListingCacheTTL > 0 {
		directory = discovery.Cached(64, cfg.ListingCacheTTL)(directory)
	}

	svcOpts := []tools.Option{
		tools.WithSite(site),
		tools.WithDirectory(directory),
		tools.WithMarker(cfg.Marker),
		tools.WithCutoff(cfg.MatchCutoff),
		tools.WithOwnerNumber(ownerNumber),
	}
	if cfg.TMDBKey != "" {
		provider, err := enrichment.TMDB(cfg.TMDBKey)
		if err != nil {
			slog.Info("TMDB enrichment not configured", "reason", "client init failed", "error", err)
		} else {
			svcOpts = append(svcOpts, tools.WithEnrichment(provider))
			slog.Info("TMDB enrichment configured")
		}
	} else {
		slog.Debug("TMDB enrichment not configured", "reason", "no api key")
	}
	return tools.NewService(fetcher, svcOpts...), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func (a *app) withService(cmd *cli.Command, fn func(*tools.Service) (any, error)) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	svc, closer, err := a.service(cfg, "")
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()
	result, err := fn(svc)
	if err != nil {
		return err
	}
	return writeOutput(cmd, result)
}

func (a *app) serveCommand(defaults config.Config) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the tools over gRPC and HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "grpc-addr", Value: defaults.GRPCAddr, Usage: "gRPC listen address (empty disables)", Sources: cli.EnvVars(config.Env("GRPC_ADDR")...)},
			&cli.StringFlag{Name: "http-addr", Value: defaults.HTTPAddr, Usage: "HTTP listen address (empty disables)", Sources: cli.EnvVars(config.Env("HTTP_ADDR")...)},
			&cli.StringFlag{Name: "port", Usage: "HTTP port; overrides --http-addr", Sources: cli.EnvVars("PORT")},
			&cli.StringFlag{Name: "auth-token", Usage: "bearer token clients must send", Sources: cli.EnvVars(config.Env("AUTH_TOKEN", "AUTH_TOKEN")...)},
			&cli.StringFlag{Name: "owner-number", Usage: "phone number returned by validate", Sources: cli.EnvVars(config.Env("OWNER_NUMBER", "MY_NUMBER")...)},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			cfg.AuthToken = cmd.String("auth-token")
			cfg.OwnerNumber = cmd.String("owner-number")
			cfg.GRPCAddr = cmd.String("grpc-addr")
			cfg.HTTPAddr = cmd.String("http-addr")
			if port := cmd.String("port"); port != "" {
				cfg.HTTPAddr = ":" + strings.TrimPrefix(port, ":")
			}
			if a.root.fetcher == nil {
				if err := cfg.ValidateServe(); err != nil {
					return err
				}
			}
			svc, closer, err := a.service(cfg, cfg.OwnerNumber)
			if err != nil {
				return err
			}
			defer func() { _ = closer.Close() }()

			registry := tools.NewRegistry(tools.Register(svc, tools.Logged))
			return server.Serve(ctx, registry, server.ServeConfig{
				GRPCAddr:  cfg.GRPCAddr,
				HTTPAddr:  cfg.HTTPAddr,
				AuthToken: cfg.AuthToken,
			})
		},
	}
}

func (a *app) moviesCommand() *cli.Command {
	return &cli.Command{
		Name:  "movies",
		Usage: "list the movies showing in a city",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "city", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return a.withService(cmd, func(svc *tools.Service) (any, error) {
				return svc.ListMovies(ctx, tools.ListMoviesParams{City: cmd.String("city")})
			})
		},
	}
}

func (a *app) venuesCommand() *cli.Command {
	return &cli.Command{
		Name:  "venues",
		Usage: "list venues, showtimes and prices for a movie on a date",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "movie", Required: true},
			&cli.StringFlag{Name: "date", Required: true, Usage: "YYYYMMDD"},
			&cli.StringFlag{Name: "movie-id", Usage: "skip the listing lookup"},
			&cli.StringFlag{Name: "city", Value: tools.DefaultCity},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return a.withService(cmd, func(svc *tools.Service) (any, error) {
				return svc.GetVenueDetails(ctx, tools.VenueDetailsParams{
					MovieName:  cmd.String("movie"),
					TargetDate: cmd.String("date"),
					MovieID:    cmd.String("movie-id"),
					City:       cmd.String("city"),
				})
			})
		},
	}
}

func (a *app) bookCommand() *cli.Command {
	return &cli.Command{
		Name:  "book",
		Usage: "print the seat-layout link for a show",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "movie", Required: true},
			&cli.StringFlag{Name: "venue", Required: true},
			&cli.StringFlag{Name: "time", Required: true, Usage: `e.g. "6:55 PM"`},
			&cli.StringFlag{Name: "date", Required: true, Usage: "YYYYMMDD"},
			&cli.StringFlag{Name: "movie-id", Usage: "skip the listing lookup"},
			&cli.StringFlag{Name: "city", Required: true},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return a.withService(cmd, func(svc *tools.Service) (any, error) {
				return svc.BookTickets(ctx, tools.BookTicketsParams{
					MovieID:   cmd.String("movie-id"),
					VenueName: cmd.String("venue"),
					MovieName: cmd.String("movie"),
					Time:      cmd.String("time"),
					Date:      cmd.String("date"),
					City:      cmd.String("city"),
				})
			})
		},
	}
}

// extractResult is what the extract command prints.
type extractResult struct {
	Records []internal.ShowtimeRecord `json:"records"`
	Stats   showtimes.ExtractStats    `json:"stats"`
}

func (a *app) extractCommand() *cli.Command {
	return &cli.Command{
		Name:  "extract",
		Usage: "extract showtimes from a saved buy-tickets page",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Required: true, Usage: `saved HTML page ("-" for stdin)`},
			&cli.StringFlag{Name: "date", Required: true, Usage: "YYYYMMDD"},
			&cli.BoolFlag{Name: "raw", Usage: "print the carved page-state JSON instead of records"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			html, err := readInput(cmd.String("file"))
			if err != nil {
				return err
			}
			marker := cmd.String("marker")
			if cmd.Bool("raw") {
				carved, err := embedded.Carve(html, marker)
				if err != nil {
					return err
				}
				return writeOutput(cmd, json.RawMessage(carved))
			}
			doc, err := embedded.Locate(html, marker)
			if err != nil {
				return err
			}
			records, stats := showtimes.ExtractShowtimes(doc, cmd.String("date"))
			slog.Debug("extracted showtimes", "records", len(records), "venues", stats.Venues, "showtimes", stats.Showtimes)
			if stats.Skipped() {
				slog.Warn("skipped incomplete showtimes", "skipped_venues", stats.SkippedVenues, "skipped_showtimes", stats.SkippedShowtimes)
			}
			if records == nil {
				records = []internal.ShowtimeRecord{}
			}
			return writeOutput(cmd, extractResult{Records: records, Stats: stats})
		},
	}
}

func readInput(path string) (string, error) {
	if path == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(b), nil
}

func (a *app) callCommand(defaults config.Config) *cli.Command {
	return &cli.Command{
		Name:  "call",
		Usage: "call a tool on a running server",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "addr", Value: "localhost" + defaults.GRPCAddr, Usage: "gRPC server address"},
			&cli.StringFlag{Name: "tool", Required: true},
			&cli.StringFlag{Name: "args", Value: "{}", Usage: "tool arguments as a JSON object"},
			&cli.StringFlag{Name: "auth-token", Sources: cli.EnvVars(config.Env("AUTH_TOKEN", "AUTH_TOKEN")...)},
			&cli.DurationFlag{Name: "timeout", Value: time.Minute},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := server.NewClient(cmd.String("addr"), cmd.String("auth-token"))
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			ctx, cancel := context.WithTimeout(ctx, cmd.Duration("timeout"))
			defer cancel()
			out, err := client.CallJSON(ctx, cmd.String("tool"), json.RawMessage(cmd.String("args")))
			if err != nil {
				return err
			}
			return writeOutput(cmd, out)
		},
	}
}
