package discovery

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/drewfead/bms-booker/internal"
	"github.com/drewfead/bms-booker/internal/booking"
	"github.com/drewfead/bms-booker/internal/fetch"
	"github.com/drewfead/bms-booker/internal/golden"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goldenDirectory(t *testing.T) *Directory {
	t.Helper()
	server := golden.NewServer(t)
	fetcher := fetch.Proxy(fetch.ProxyConfig{URL: golden.ProxyURL(server), Token: golden.Token})
	return NewDirectory(fetcher, booking.NewSite(""))
}

func TestUnit_Directory_ListMovies(t *testing.T) {
	d := goldenDirectory(t)

	movies, err := d.ListMovies(t.Context(), " Kanpur ")
	require.NoError(t, err, "ListMovies")

	want := []internal.Movie{
		{ID: "ET00447951", Name: "Saiyaara"},
		{ID: "ET00399488", Name: "Dhadak 2"},
		{ID: "ET00430817", Name: "Son Of Sardaar 2"},
		{ID: "ET00356501", Name: "War 2"},
	}
	if diff := cmp.Diff(want, movies); diff != "" {
		t.Errorf("ListMovies mismatch (-want +got):\n%s", diff)
	}
}

func TestUnit_Directory_FindMovieID(t *testing.T) {
	d := goldenDirectory(t)

	id, err := d.FindMovieID(t.Context(), "Kanpur", "Dhadak 2")
	require.NoError(t, err)
	assert.Equal(t, "ET00399488", id)

	_, err = d.FindMovieID(t.Context(), "Kanpur", "Mahavatar Narsimha")
	assert.ErrorIs(t, err, ErrMovieNotFound, "links for other cities do not count")

	_, err = d.FindMovieID(t.Context(), "Kanpur", "!!!")
	assert.ErrorIs(t, err, ErrMovieNotFound, "empty slug matches nothing")
}

func TestUnit_Directory_FetchError(t *testing.T) {
	d := goldenDirectory(t)
	_, err := d.ListMovies(t.Context(), "Mumbai")
	var fe *fetch.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, 404, fe.StatusCode)
}

func TestUnit_MoviesFromLinks(t *testing.T) {
	tests := []struct {
		name  string
		hrefs []string
		want  []internal.Movie
	}{
		{
			name:  "first occurrence wins",
			hrefs: []string{"/movies/pune/k-g-f/ET1", "/movies/pune/kgf-renamed/ET1"},
			want:  []internal.Movie{{ID: "ET1", Name: "K G F"}},
		},
		{
			name:  "trailing slash trimmed",
			hrefs: []string{"https://in.bookmyshow.com/movies/pune/the-batman/ET2/"},
			want:  []internal.Movie{{ID: "ET2", Name: "The Batman"}},
		},
		{
			name:  "too few parts",
			hrefs: []string{"/movies/pune/ET3", "movies/pune/x"},
			want:  []internal.Movie{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, MoviesFromLinks(tt.hrefs)); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnit_ParseMovieLinks_DocumentOrder(t *testing.T) {
	html := `<a href="/movies/pune/a/1">a</a><a>none</a><a href="/movies/mumbai/b/2">b</a><a href="/movies/pune/c/3">c</a>`
	hrefs, err := ParseMovieLinks(html, "pune")
	require.NoError(t, err)
	assert.Equal(t, []string{"/movies/pune/a/1", "/movies/pune/c/3"}, hrefs)
}

type countingDirectory struct {
	lists, finds atomic.Int32
	err          error
}

func (c *countingDirectory) ListMovies(context.Context, string) ([]internal.Movie, error) {
	c.lists.Add(1)
	if c.err != nil {
		return nil, c.err
	}
	return []internal.Movie{{ID: "ET1", Name: "One"}}, nil
}

func (c *countingDirectory) FindMovieID(context.Context, string, string) (string, error) {
	c.finds.Add(1)
	if c.err != nil {
		return "", c.err
	}
	return "ET1", nil
}

func TestUnit_Cached(t *testing.T) {
	inner := &countingDirectory{}
	d := Cached(8, time.Minute)(inner)

	for range 3 {
		movies, err := d.ListMovies(t.Context(), "Kanpur")
		require.NoError(t, err)
		require.Len(t, movies, 1)
		movies[0].Name = "mutated"
	}
	movies, err := d.ListMovies(t.Context(), " kanpur")
	require.NoError(t, err)
	assert.Equal(t, "One", movies[0].Name, "cached entries are copies")
	assert.Equal(t, int32(1), inner.lists.Load())

	for range 2 {
		id, err := d.FindMovieID(t.Context(), "Kanpur", "One")
		require.NoError(t, err)
		assert.Equal(t, "ET1", id)
	}
	assert.Equal(t, int32(1), inner.finds.Load())
}

func TestUnit_Cached_ErrorsNotCached(t *testing.T) {
	inner := &countingDirectory{err: errors.New("down")}
	d := Cached(8, time.Minute)(inner)
	for range 2 {
		_, err := d.ListMovies(t.Context(), "Kanpur")
		require.Error(t, err)
	}
	assert.Equal(t, int32(2), inner.lists.Load())
	assert.Nil(t, Cached(8, 0)(nil))
}
