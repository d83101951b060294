package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/drewfead/bms-booker/internal/discovery"
	"github.com/drewfead/bms-booker/internal/embedded"
	"github.com/drewfead/bms-booker/internal/fetch"
	"github.com/drewfead/bms-booker/internal/golden"
	"github.com/drewfead/bms-booker/internal/tools"
	toolsv1 "github.com/drewfead/bms-booker/proto/bmsbooker/tools/v1"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
)

const authToken = "s3cret"

const wantBookURL = "https://in.bookmyshow.com/movies/kanpur/seat-layout/ET00447951/INZS/10502/20250810"

func goldenRegistry(t *testing.T) *tools.Registry {
	t.Helper()
	server := golden.NewServer(t)
	fetcher := fetch.Proxy(fetch.ProxyConfig{URL: golden.ProxyURL(server), Token: golden.Token})
	svc := tools.NewService(fetcher, tools.WithOwnerNumber("919876543210"))
	return tools.NewRegistry(tools.Register(svc, tools.Logged))
}

func bufClient(t *testing.T, token string) *Client {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	s, err := NewGRPCServer(goldenRegistry(t), authToken)
	require.NoError(t, err)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	client, err := NewClient("passthrough:///bufnet", token,
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestUnit_GRPC_Auth(t *testing.T) {
	for _, token := range []string{"", "wrong"} {
		t.Run(fmt.Sprintf("token=%q", token), func(t *testing.T) {
			_, err := bufClient(t, token).Validate(t.Context(), &toolsv1.ValidateRequest{})
			assert.Equal(t, codes.Unauthenticated, status.Code(err))
		})
	}
}

func TestUnit_GRPC_Validate(t *testing.T) {
	var header metadata.MD
	out, err := bufClient(t, authToken).Validate(t.Context(), &toolsv1.ValidateRequest{}, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, "919876543210", out.GetOwnerNumber())
	assert.Len(t, header.Get(invocationHeader), 1)
}

func TestUnit_GRPC_ListMovies(t *testing.T) {
	out, err := bufClient(t, authToken).ListMovies(t.Context(), &toolsv1.ListMoviesRequest{City: golden.City})
	require.NoError(t, err)
	require.Len(t, out.GetMovies(), 4)
	assert.Equal(t, golden.MovieID, out.GetMovies()[0].GetId())
	assert.Equal(t, "Dhadak 2", out.GetMovies()[1].GetName())
}

func TestUnit_GRPC_BookTickets(t *testing.T) {
	client := bufClient(t, authToken)
	in := &toolsv1.BookTicketsRequest{
		VenueName: "INOX Z Square",
		MovieName: golden.MovieName,
		Time:      "06:55 pm",
		Date:      golden.Date,
		City:      golden.City,
	}

	out, err := client.BookTickets(t.Context(), in)
	require.NoError(t, err)
	require.NotNil(t, out.Url)
	assert.Equal(t, wantBookURL, out.GetUrl())

	in.Time = "11:00 pm"
	out, err = client.BookTickets(t.Context(), in)
	require.NoError(t, err)
	assert.Nil(t, out.Url, "no matching show leaves url unset")
}

func TestUnit_GRPC_GetVenueDetails(t *testing.T) {
	out, err := bufClient(t, authToken).GetVenueDetails(t.Context(), &toolsv1.GetVenueDetailsRequest{
		MovieName:  golden.MovieName,
		TargetDate: golden.Date,
	})
	require.NoError(t, err)
	assert.Equal(t, golden.MovieID, out.GetMovieId())
	require.Len(t, out.GetVenues(), 2)

	inox := out.GetVenues()[0]
	assert.Equal(t, "INZS", inox.GetVenueCode())
	require.Len(t, inox.GetShows(), 2)
	assert.Equal(t, "10502", inox.GetShows()[1].GetSessionId())
	categories := inox.GetShows()[1].GetCategories()
	require.Len(t, categories, 2)
	assert.Equal(t, "Recliner", categories[1].GetSeatType())
	assert.InDelta(t, 450.0, categories[1].GetPrice(), 1e-9)
}

func TestUnit_GRPC_ErrorCodes(t *testing.T) {
	client := bufClient(t, authToken)

	_, err := client.GetVenueDetails(t.Context(), &toolsv1.GetVenueDetailsRequest{MovieName: golden.MovieName, TargetDate: "tomorrow"})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.GetVenueDetails(t.Context(), &toolsv1.GetVenueDetailsRequest{MovieName: "Unlisted", TargetDate: golden.Date})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = client.CallJSON(t.Context(), "fetch", nil)
	assert.Equal(t, codes.Unimplemented, status.Code(err))

	_, err = client.Call(t.Context(), &toolsv1.CallRequest{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = client.ListMovies(t.Context(), &toolsv1.ListMoviesRequest{City: "Mumbai"})
	assert.Equal(t, codes.Unavailable, status.Code(err))
}

func TestUnit_GRPC_CallJSON(t *testing.T) {
	client := bufClient(t, authToken)
	out, err := client.CallJSON(t.Context(), tools.ToolListMovies, json.RawMessage(`{"city":"Kanpur"}`))
	require.NoError(t, err)

	var list struct {
		Movies []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"movies"`
	}
	require.NoError(t, json.Unmarshal(out, &list))
	require.Len(t, list.Movies, 4)
	assert.Equal(t, "Dhadak 2", list.Movies[1].Name)

	out, err = client.CallJSON(t.Context(), tools.ToolValidate, nil)
	require.NoError(t, err)
	assert.JSONEq(t, `"919876543210"`, string(out))

	out, err = client.CallJSON(t.Context(), tools.ToolBookTickets, json.RawMessage(`{
		"movie_id": "ET00447951", "venue_name": "nowhere at all", "movie_name": "Saiyaara",
		"time": "6:55 PM", "date": "20250810", "city": "Kanpur"}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"url":null}`, string(out))

	_, err = client.CallJSON(t.Context(), tools.ToolListMovies, json.RawMessage(`[1]`))
	assert.ErrorIs(t, err, tools.ErrInvalidArgument)
}

func TestUnit_NewGRPCServer_RequiresToken(t *testing.T) {
	_, err := NewGRPCServer(tools.NewRegistry(), "")
	assert.Error(t, err)
}

func TestUnit_Code(t *testing.T) {
	tests := []struct {
		err    error
		code   codes.Code
		status int
	}{
		{nil, codes.OK, http.StatusOK},
		{fmt.Errorf("x: %w", tools.ErrInvalidArgument), codes.InvalidArgument, http.StatusBadRequest},
		{fmt.Errorf("x: %w", discovery.ErrMovieNotFound), codes.NotFound, http.StatusNotFound},
		{tools.ErrToolNotFound, codes.Unimplemented, http.StatusNotFound},
		{ErrUnauthenticated, codes.Unauthenticated, http.StatusUnauthorized},
		{fmt.Errorf("x: %w", &fetch.FetchError{StatusCode: 503}), codes.Unavailable, http.StatusBadGateway},
		{fmt.Errorf("x: %w", embedded.ErrMarkerNotFound), codes.Internal, http.StatusBadGateway},
		{fmt.Errorf("x: %w", embedded.ErrMalformedJSON), codes.Internal, http.StatusBadGateway},
		{context.DeadlineExceeded, codes.DeadlineExceeded, http.StatusGatewayTimeout},
		{errors.New("other"), codes.Internal, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.code, Code(tt.err), "%v", tt.err)
		assert.Equal(t, tt.status, HTTPStatus(tt.err), "%v", tt.err)
	}
}

func TestUnit_ToValue(t *testing.T) {
	v, err := toValue("919876543210")
	require.NoError(t, err)
	assert.Equal(t, "919876543210", v.GetStringValue())

	v, err = toValue(struct {
		URL *string `json:"url"`
	}{})
	require.NoError(t, err)
	_, isNull := v.GetStructValue().GetFields()["url"].GetKind().(*structpb.Value_NullValue)
	assert.True(t, isNull)
}

func doHTTP(t *testing.T, h http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestUnit_HTTP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHTTPHandler(goldenRegistry(t), authToken)

	rec := doHTTP(t, h, http.MethodGet, "/healthz", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doHTTP(t, h, http.MethodGet, "/tools", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	rec = doHTTP(t, h, http.MethodPost, "/tools/validate", "nope", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doHTTP(t, h, http.MethodGet, "/tools", authToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	for _, name := range []string{"validate", "list_movies", "get_venue_details", "book_tickets"} {
		assert.Contains(t, rec.Body.String(), `"name":"`+name+`"`)
	}

	rec = doHTTP(t, h, http.MethodPost, "/tools/book_tickets", authToken, `{
		"venue_name": "inox z square mall", "movie_name": "Saiyaara",
		"time": "6:55 PM", "date": "20250810", "city": "Kanpur"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"url":"`+wantBookURL+`"}`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(invocationHTTPHeader))

	rec = doHTTP(t, h, http.MethodPost, "/tools/validate", authToken, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `"919876543210"`, rec.Body.String())
}

func TestUnit_HTTP_Errors(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewHTTPHandler(goldenRegistry(t), authToken)

	tests := []struct {
		name   string
		path   string
		body   string
		status int
	}{
		{"unknown tool", "/tools/fetch", "{}", http.StatusNotFound},
		{"bad json", "/tools/list_movies", "{", http.StatusBadRequest},
		{"missing city", "/tools/list_movies", "{}", http.StatusBadRequest},
		{"movie not listed", "/tools/get_venue_details", `{"movie_name":"Unlisted","target_date":"20250810"}`, http.StatusNotFound},
		{"upstream 404", "/tools/list_movies", `{"city":"Mumbai"}`, http.StatusBadGateway},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doHTTP(t, h, http.MethodPost, tt.path, authToken, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), `"error"`)
		})
	}
}
