package golden

import (
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/drewfead/bms-booker/internal/booking"
	"github.com/drewfead/bms-booker/internal/fetch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func get(t *testing.T, rawURL string) (int, string) {
	t.Helper()
	resp, err := http.Get(rawURL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestUnit_Handler_ServesRecordedPages(t *testing.T) {
	server := NewServer(t)
	site := booking.NewSite("")

	for _, p := range Pages {
		t.Run(p.File, func(t *testing.T) {
			q := url.Values{"token": {Token}, "url": {site.BaseURL() + p.Path}}
			status, body := get(t, ProxyURL(server)+"?"+q.Encode())
			assert.Equal(t, http.StatusOK, status)

			want, err := Read(p.Path)
			require.NoError(t, err)
			assert.Equal(t, want, body)
		})
	}
}

func TestUnit_Handler_RejectsBadToken(t *testing.T) {
	server := NewServer(t)
	q := url.Values{"token": {"wrong"}, "url": {"https://in.bookmyshow.com" + Pages[0].Path}}
	status, _ := get(t, ProxyURL(server)+"?"+q.Encode())
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestUnit_Handler_UnknownPage(t *testing.T) {
	server := NewServer(t)
	q := url.Values{"token": {Token}, "url": {"https://in.bookmyshow.com/explore/movies-mumbai"}}
	status, body := get(t, ProxyURL(server)+"?"+q.Encode())
	assert.Equal(t, http.StatusNotFound, status)
	assert.Contains(t, body, "/explore/movies-mumbai")
}

func TestUnit_Handler_DirectPath(t *testing.T) {
	server := NewServer(t)
	status, body := get(t, server.URL+Pages[0].Path)
	assert.Equal(t, http.StatusOK, status)
	assert.Contains(t, body, "/movies/kanpur/")
}

func TestPrep_PullAllGolden(t *testing.T) {
	if os.Getenv("PREP") != "1" {
		t.Skip("PREP is not set")
	}
	token := os.Getenv("API_TOKEN")
	require.NotEmpty(t, token, "API_TOKEN is required to record pages")

	fetcher := fetch.Proxy(fetch.ProxyConfig{Token: token})
	require.NoError(t, Pull(t.Context(), fetcher, booking.NewSite(""), Dir), "Pull")
	t.Logf("wrote golden files to %s", filepath.Clean(Dir))
}
