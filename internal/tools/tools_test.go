package tools

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/drewfead/bms-booker/internal"
	"github.com/drewfead/bms-booker/internal/discovery"
	"github.com/drewfead/bms-booker/internal/embedded"
	"github.com/drewfead/bms-booker/internal/fetch"
	"github.com/drewfead/bms-booker/internal/golden"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func goldenService(t *testing.T, opts ...Option) *Service {
	t.Helper()
	server := golden.NewServer(t)
	fetcher := fetch.Proxy(fetch.ProxyConfig{URL: golden.ProxyURL(server), Token: golden.Token})
	return NewService(fetcher, append([]Option{WithOwnerNumber("919876543210")}, opts...)...)
}

func TestUnit_Service_Validate(t *testing.T) {
	number, err := goldenService(t).Validate(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "919876543210", number)

	_, err = NewService(nil).Validate(t.Context())
	assert.Error(t, err)
}

func TestUnit_Service_ListMovies(t *testing.T) {
	list, err := goldenService(t).ListMovies(t.Context(), ListMoviesParams{City: golden.City})
	require.NoError(t, err)
	require.Len(t, list.Movies, 4)
	assert.Equal(t, internal.Movie{ID: golden.MovieID, Name: golden.MovieName}, list.Movies[0])

	_, err = goldenService(t).ListMovies(t.Context(), ListMoviesParams{})
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

var wantVenues = []internal.Venue{
	{
		VenueName: "INOX: Z Square Mall, Kanpur",
		VenueCode: "INZS",
		Shows: []internal.Show{
			{Time: "06:55 AM", SessionID: "10501", Categories: []internal.Category{{SeatType: "Executive", Price: 180}, {SeatType: "Recliner", Price: 400}}},
			{Time: "06:55 PM", SessionID: "10502", Categories: []internal.Category{{SeatType: "Executive", Price: 250}, {SeatType: "Recliner", Price: 450}}},
		},
	},
	{
		VenueName: "PVR: Rave 3, Kanpur",
		VenueCode: "PVRR",
		Shows: []internal.Show{
			{Time: "10:15 AM", SessionID: "20777", Categories: []internal.Category{{SeatType: "Classic", Price: 200}}},
			{Time: "09:40 PM", SessionID: "20778", Categories: []internal.Category{{SeatType: "Classic", Price: 220.5}, {SeatType: "Prime", Price: 0}}},
		},
	},
}

func TestUnit_Service_GetVenueDetails(t *testing.T) {
	tests := []struct {
		name   string
		params VenueDetailsParams
	}{
		{"movie id looked up", VenueDetailsParams{MovieName: golden.MovieName, TargetDate: golden.Date}},
		{"movie id given", VenueDetailsParams{MovieName: golden.MovieName, TargetDate: golden.Date, MovieID: golden.MovieID, City: golden.City}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details, err := goldenService(t).GetVenueDetails(t.Context(), tt.params)
			require.NoError(t, err)
			assert.Equal(t, golden.MovieID, details.MovieID)
			if diff := cmp.Diff(wantVenues, details.Venues); diff != "" {
				t.Errorf("venues mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUnit_Service_GetVenueDetails_Errors(t *testing.T) {
	svc := goldenService(t)

	_, err := svc.GetVenueDetails(t.Context(), VenueDetailsParams{MovieName: golden.MovieName, TargetDate: "2025-08-10"})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.GetVenueDetails(t.Context(), VenueDetailsParams{TargetDate: golden.Date})
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.GetVenueDetails(t.Context(), VenueDetailsParams{MovieName: "Not Showing", TargetDate: golden.Date})
	assert.ErrorIs(t, err, discovery.ErrMovieNotFound)

	_, err = svc.GetVenueDetails(t.Context(), VenueDetailsParams{MovieName: golden.MovieName, TargetDate: "20250811", MovieID: golden.MovieID})
	var fe *fetch.FetchError
	assert.ErrorAs(t, err, &fe, "no recorded page for that date")

	_, err = goldenService(t, WithMarker("__NEXT_DATA__")).GetVenueDetails(t.Context(), VenueDetailsParams{MovieName: golden.MovieName, TargetDate: golden.Date})
	assert.ErrorIs(t, err, embedded.ErrMarkerNotFound)
}

func TestUnit_Service_BookTickets(t *testing.T) {
	base := BookTicketsParams{MovieName: golden.MovieName, Date: golden.Date, City: golden.City}
	tests := []struct {
		name  string
		venue string
		time  string
		want  string
	}{
		{"exact", "PVR: Rave 3, Kanpur", "10:15 AM", "https://in.bookmyshow.com/movies/kanpur/seat-layout/ET00447951/PVRR/20777/20250810"},
		{"fuzzy venue and 12h time", "inox z square mall", "6:55 PM", "https://in.bookmyshow.com/movies/kanpur/seat-layout/ET00447951/INZS/10502/20250810"},
		{"no meridiem takes first show", "INOX Z Square Mall Kanpur", "06:55", "https://in.bookmyshow.com/movies/kanpur/seat-layout/ET00447951/INZS/10501/20250810"},
		{"time falls back to showTime", "PVR Rave 3", "9:40 pm", "https://in.bookmyshow.com/movies/kanpur/seat-layout/ET00447951/PVRR/20778/20250810"},
		{"unknown venue", "Cinepolis Lucknow", "10:15 AM", ""},
		{"unknown time", "PVR: Rave 3, Kanpur", "11:00 AM", ""},
	}
	svc := goldenService(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			p.VenueName = tt.venue
			p.Time = tt.time
			link, err := svc.BookTickets(t.Context(), p)
			require.NoError(t, err)
			if tt.want == "" {
				assert.Nil(t, link.URL)
				return
			}
			require.NotNil(t, link.URL)
			assert.Equal(t, tt.want, *link.URL)
		})
	}
}

func TestUnit_Service_BookTickets_ZeroCutoff(t *testing.T) {
	p := BookTicketsParams{VenueName: "Cinepolis Lucknow", MovieName: golden.MovieName, Time: "6:55 PM", Date: golden.Date, City: golden.City}

	link, err := goldenService(t).BookTickets(t.Context(), p)
	require.NoError(t, err)
	assert.Nil(t, link.URL)

	link, err = goldenService(t, WithCutoff(0)).BookTickets(t.Context(), p)
	require.NoError(t, err)
	require.NotNil(t, link.URL, "cutoff 0 takes the closest venue")
	assert.Equal(t, "https://in.bookmyshow.com/movies/kanpur/seat-layout/ET00447951/INZS/10502/20250810", *link.URL)
}

func TestUnit_Service_BookTickets_Validation(t *testing.T) {
	_, err := goldenService(t).BookTickets(t.Context(), BookTicketsParams{Date: "1"})
	require.ErrorIs(t, err, ErrInvalidArgument)
	for _, field := range []string{"venue_name", "movie_name", "time", "date", "city"} {
		assert.ErrorContains(t, err, field)
	}
}

func TestUnit_Registry_Call(t *testing.T) {
	r := NewRegistry(Register(goldenService(t), Logged))

	got, err := r.Call(t.Context(), ToolBookTickets, json.RawMessage(`{
		"movie_id": "ET00447951", "venue_name": "pvr rave 3", "movie_name": "Saiyaara",
		"time": "10:15 am", "date": "20250810", "city": "Kanpur"
	}`))
	require.NoError(t, err)
	raw, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":"https://in.bookmyshow.com/movies/kanpur/seat-layout/ET00447951/PVRR/20777/20250810"}`, string(raw))

	got, err = r.Call(t.Context(), ToolBookTickets, json.RawMessage(`{
		"movie_id": "ET00447951", "venue_name": "nowhere at all", "movie_name": "Saiyaara",
		"time": "10:15 am", "date": "20250810", "city": "Kanpur"
	}`))
	require.NoError(t, err)
	raw, _ = json.Marshal(got)
	assert.JSONEq(t, `{"url":null}`, string(raw))

	got, err = r.Call(t.Context(), ToolValidate, nil)
	require.NoError(t, err)
	assert.Equal(t, "919876543210", got)

	_, err = r.Call(t.Context(), "fetch", nil)
	assert.ErrorIs(t, err, ErrToolNotFound)

	_, err = r.Call(t.Context(), ToolListMovies, json.RawMessage(`{"city": 12}`))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestUnit_Registry_ToolsOrderAndMiddleware(t *testing.T) {
	var seen []string
	var ids []string
	recorder := func(name string, next Handler) Handler {
		return func(ctx context.Context, args json.RawMessage) (any, error) {
			seen = append(seen, name)
			ids = append(ids, InvocationID(ctx))
			return next(ctx, args)
		}
	}
	failing := func(context.Context, json.RawMessage) (any, error) { return nil, errors.New("boom") }

	r := NewRegistry(
		WithTool("b", Description{Description: "b"}, failing, recorder, Logged),
		WithTool("a", Description{Description: "a"}, failing, recorder, Logged),
	)
	names := []string{}
	for _, tool := range r.Tools() {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{"b", "a"}, names)

	_, err := r.Call(WithInvocationID(t.Context(), "fixed-id"), "a", nil)
	assert.EqualError(t, err, "boom")
	assert.Equal(t, []string{"a"}, seen)
	assert.Equal(t, []string{"fixed-id"}, ids)
}

func TestUnit_Logged_AssignsInvocationID(t *testing.T) {
	var id string
	h := Logged("x", func(ctx context.Context, _ json.RawMessage) (any, error) {
		id = InvocationID(ctx)
		return "ok", nil
	})
	got, err := h(t.Context(), nil)
	require.NoError(t, err)
	assert.Equal(t, "ok", got)
	assert.Len(t, id, 36)
}

func TestUnit_DecodeArgs(t *testing.T) {
	p, err := DecodeArgs[ListMoviesParams](json.RawMessage(" null "))
	require.NoError(t, err)
	assert.Equal(t, ListMoviesParams{}, p)

	p, err = DecodeArgs[ListMoviesParams](json.RawMessage(`{"city":"Pune","extra":1}`))
	require.NoError(t, err)
	assert.Equal(t, "Pune", p.City)

	_, err = DecodeArgs[ListMoviesParams](json.RawMessage(`{`))
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
