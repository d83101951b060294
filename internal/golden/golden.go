// Package golden serves recorded BookMyShow pages from testdata behind a scrape.do look-alike,
// and re-records them when asked.
package golden

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/drewfead/bms-booker/internal"
	"github.com/drewfead/bms-booker/internal/booking"
)

//go:embed testdata/*.html
var fixtures embed.FS

// Values the recorded pages were captured with.
const (
	Token     = "golden-token"
	City      = "Kanpur"
	CitySlug  = "kanpur"
	MovieName = "Saiyaara"
	MovieSlug = "saiyaara"
	MovieID   = "ET00447951"
	Date      = "20250810"
)

// Dir is the on-disk fixture directory, relative to this package.
const Dir = "testdata"

// Page maps one recorded site path to its fixture file.
type Page struct {
	Path string
	File string
}

// Pages lists every recorded page.
var Pages = []Page{
	{
		Path: "/explore/movies-" + CitySlug,
		File: "explore-" + CitySlug + ".html",
	},
	{
		Path: "/movies/" + CitySlug + "/" + MovieSlug + "/buytickets/" + MovieID + "/" + Date,
		File: "buytickets-" + MovieSlug + "-" + Date + ".html",
	},
}

// Handler answers like the proxy: GET /?token=<token>&url=<target>. Without a url parameter the
// request path itself is looked up, so the same handler stands in for the site in direct mode.
// An empty token disables the token check.
func Handler(token string) http.Handler {
	byPath := make(map[string]string, len(Pages))
	for _, p := range Pages {
		byPath[p.Path] = p.File
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := r.URL.Path
		if target := r.URL.Query().Get("url"); target != "" {
			if token != "" && r.URL.Query().Get("token") != token {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}
			u, err := url.Parse(target)
			if err != nil {
				http.Error(w, "invalid url", http.StatusBadRequest)
				return
			}
			path = u.Path
		}
		file, ok := byPath[path]
		if !ok {
			http.Error(w, "not found (no golden page for "+path+")", http.StatusNotFound)
			return
		}
		body, err := fixtures.ReadFile(Dir + "/" + file)
		if err != nil {
			http.Error(w, "not found (golden file not found: "+file+")", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(body)
	})
}

// NewServer starts a proxy look-alike over the recorded pages that expects Token.
func NewServer(t testing.TB) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(Handler(Token))
	t.Cleanup(server.Close)
	return server
}

// ProxyURL is the proxy endpoint of a server started by NewServer.
func ProxyURL(server *httptest.Server) string {
	return server.URL + "/"
}

// Read returns the recorded body of the page at path.
func Read(path string) (string, error) {
	for _, p := range Pages {
		if p.Path == path {
			body, err := fs.ReadFile(fixtures, Dir+"/"+p.File)
			return string(body), err
		}
	}
	return "", fmt.Errorf("no golden page for %s", path)
}

// Pull fetches every recorded page from the live site and rewrites the fixture files in dir.
func Pull(ctx context.Context, fetcher internal.Fetcher, site booking.Site, dir string) error {
	files := make(map[string][]byte, len(Pages))
	var errs []error
	for _, p := range Pages {
		page, err := fetcher.Fetch(ctx, site.BaseURL()+p.Path)
		if err != nil {
			errs = append(errs, fmt.Errorf("failed to fetch %s: %w", p.Path, err))
			continue
		}
		files[p.File] = []byte(page.Body)
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}
	return writeGoldenFiles(dir, files)
}

// writeGoldenFiles creates goldenDir and writes each map entry under its file name.
func writeGoldenFiles(goldenDir string, files map[string][]byte) error {
	if err := os.MkdirAll(goldenDir, 0o750); err != nil {
		return fmt.Errorf("failed to create golden dir: %w", err)
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(goldenDir, name), body, 0o600); err != nil {
			return fmt.Errorf("failed to write %s golden file: %w", name, err)
		}
	}
	return nil
}
