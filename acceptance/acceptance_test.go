package acceptance

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/drewfead/bms-booker/internal"
	"github.com/drewfead/bms-booker/internal/fetch"
	"github.com/drewfead/bms-booker/internal/golden"
	"github.com/drewfead/bms-booker/internal/root"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) []byte {
	t.Helper()
	server := golden.NewServer(t)
	fetcher := fetch.Proxy(fetch.ProxyConfig{URL: golden.ProxyURL(server), Token: golden.Token})

	outputFile := filepath.Join(t.TempDir(), "output.json")

	rootCmd, err := root.Root(t.Context(), root.WithFetcher(fetcher))
	require.NoError(t, err, "Root")
	require.NotNil(t, rootCmd, "Root")

	err = rootCmd.Run(t.Context(), append([]string{"bms-booker", "--output", outputFile}, args...))
	require.NoError(t, err, "Run")

	outputBytes, err := os.ReadFile(outputFile)
	require.NoError(t, err, "ReadFile")
	require.NotEmpty(t, outputBytes, "output file should contain results from golden data")
	t.Log(string(outputBytes))
	return outputBytes
}

func TestAcceptance_Venues(t *testing.T) {
	out := run(t, "venues", "--movie", golden.MovieName, "--date", golden.Date, "--city", golden.City)

	var details internal.VenueDetails
	require.NoError(t, json.Unmarshal(out, &details))
	assert.Equal(t, golden.MovieID, details.MovieID)
	require.Len(t, details.Venues, 2)
	assert.Equal(t, "INZS", details.Venues[0].VenueCode)
	assert.Len(t, details.Venues[0].Shows, 2)
	assert.Equal(t, "PVRR", details.Venues[1].VenueCode)
	assert.Equal(t, "09:40 PM", details.Venues[1].Shows[1].Time)
}

func TestAcceptance_Book(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "matched",
			args: []string{"--venue", "INOX Z Square Mall", "--time", "6:55 PM"},
			want: `{"url":"https://in.bookmyshow.com/movies/kanpur/seat-layout/ET00447951/INZS/10502/20250810"}`,
		},
		{
			name: "no match",
			args: []string{"--venue", "Nowhere Multiplex", "--time", "6:55 PM"},
			want: `{"url":null}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"book", "--movie", golden.MovieName, "--date", golden.Date, "--city", golden.City}, tt.args...)
			out := run(t, args...)
			assert.JSONEq(t, tt.want, string(out))
		})
	}
}

func TestAcceptance_Movies(t *testing.T) {
	out := run(t, "movies", "--city", golden.City)

	var list internal.MovieList
	require.NoError(t, json.Unmarshal(out, &list))
	names := make([]string, 0, len(list.Movies))
	for _, m := range list.Movies {
		names = append(names, m.Name)
	}
	assert.Equal(t, []string{"Saiyaara", "Dhadak 2", "Son Of Sardaar 2", "War 2"}, names)
}

func TestAcceptance_VenuesTable(t *testing.T) {
	out := run(t, "--output-format", "table", "venues", "--movie", golden.MovieName, "--date", golden.Date, "--movie-id", golden.MovieID)
	assert.Contains(t, string(out), "INOX: Z Square Mall, Kanpur")
	assert.Contains(t, string(out), "Executive 250, Recliner 450")
}
