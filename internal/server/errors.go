package server

import (
	"context"
	"crypto/subtle"
	"errors"
	"net/http"
	"strings"

	"github.com/drewfead/bms-booker/internal/discovery"
	"github.com/drewfead/bms-booker/internal/embedded"
	"github.com/drewfead/bms-booker/internal/fetch"
	"github.com/drewfead/bms-booker/internal/tools"
	"google.golang.org/grpc/codes"
)

var ErrUnauthenticated = errors.New("missing or invalid bearer token")

// Code maps a tool error to a gRPC code.
func Code(err error) codes.Code {
	var fe *fetch.FetchError
	switch {
	case err == nil:
		return codes.OK
	case errors.Is(err, ErrUnauthenticated):
		return codes.Unauthenticated
	case errors.Is(err, tools.ErrInvalidArgument):
		return codes.InvalidArgument
	case errors.Is(err, discovery.ErrMovieNotFound):
		return codes.NotFound
	case errors.Is(err, tools.ErrToolNotFound):
		return codes.Unimplemented
	case errors.Is(err, context.Canceled):
		return codes.Canceled
	case errors.Is(err, context.DeadlineExceeded):
		return codes.DeadlineExceeded
	case errors.As(err, &fe):
		return codes.Unavailable
	case errors.Is(err, embedded.ErrMarkerNotFound), errors.Is(err, embedded.ErrMalformedJSON):
		return codes.Internal
	}
	return codes.Internal
}

// HTTPStatus maps a tool error to an HTTP status.
func HTTPStatus(err error) int {
	switch Code(err) {
	case codes.OK:
		return http.StatusOK
	case codes.Unauthenticated:
		return http.StatusUnauthorized
	case codes.InvalidArgument:
		return http.StatusBadRequest
	case codes.NotFound, codes.Unimplemented:
		return http.StatusNotFound
	case codes.Unavailable:
		return http.StatusBadGateway
	case codes.DeadlineExceeded:
		return http.StatusGatewayTimeout
	case codes.Canceled:
		return 499
	}
	if errors.Is(err, embedded.ErrMarkerNotFound) || errors.Is(err, embedded.ErrMalformedJSON) {
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// bearerOK reports whether header is "Bearer <token>". An empty token never matches.
func bearerOK(header, token string) bool {
	if token == "" {
		return false
	}
	got, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(strings.TrimSpace(got)), []byte(token)) == 1
}
