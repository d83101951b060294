package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Handler runs one tool with its raw JSON arguments.
type Handler func(ctx context.Context, args json.RawMessage) (any, error)

// Middleware wraps the handler registered under name.
type Middleware func(name string, next Handler) Handler

// Description tells a caller what a tool does, when to use it and what it returns.
type Description struct {
	Description string `json:"description"`
	UseWhen     string `json:"use_when"`
	SideEffects string `json:"side_effects,omitempty"`
}

type Tool struct {
	Name        string      `json:"name"`
	Description Description `json:"description"`
	handler     Handler
}

type RegistryOption func(r *Registry)

type Registry struct {
	tools map[string]Tool
	order []string
}

func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		tools: make(map[string]Tool),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func WithTool(name string, desc Description, handler Handler, middleware ...Middleware) RegistryOption {
	return func(r *Registry) {
		for _, m := range middleware {
			handler = m(name, handler)
		}
		if _, exists := r.tools[name]; !exists {
			r.order = append(r.order, name)
		}
		r.tools[name] = Tool{Name: name, Description: desc, handler: handler}
	}
}

// Call decodes args for the named tool and runs it.
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (any, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, name)
	}
	return tool.handler(ctx, args)
}

// Tools lists the registered tools in registration order.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

const (
	ToolValidate        = "validate"
	ToolListMovies      = "list_movies"
	ToolGetVenueDetails = "get_venue_details"
	ToolBookTickets     = "book_tickets"
)

var (
	validateDescription = Description{
		Description: "Returns the phone number of the server owner.",
		UseWhen:     "Use this tool when the client asks the server to prove who it belongs to.",
	}
	listMoviesDescription = Description{
		Description: "Fetches all the movies for a given city from BookMyShow which the user can watch in theatres and returns JSON with id and name.",
		UseWhen:     "Use this tool when the user wants to get a list of all movies playing in a specific city.",
		SideEffects: "Returns internal identifier movie_id which should NOT be shown to the user but kept for later calls.",
	}
	venueDetailsDescription = Description{
		Description: "Fetches venues, showtimes and seat prices for a specific movie in a given city on a particular date (YYYYMMDD).",
		UseWhen:     "Use this tool when the user asks where a movie is playing and gives the movie name, date and city, and wants venue, showtime and price information for booking.",
		SideEffects: "Returns internal identifiers (movieId, venueCode, sessionId) which must NOT be shown to the user but should be passed to book_tickets.",
	}
	bookTicketsDescription = Description{
		Description: "Generates a direct seat-layout link on BookMyShow for a movie at a given venue, time, date (YYYYMMDD) and city. If movie_id is empty it is looked up from the city listing.",
		UseWhen:     "Use this tool when the user wants to book a ticket and gives the movie name, venue name, show time, date and city.",
		SideEffects: "Returns {\"url\": null} when no venue and time match the day's shows.",
	}
)

// Register adds the four tools backed by svc.
func Register(svc *Service, middleware ...Middleware) RegistryOption {
	return func(r *Registry) {
		WithTool(ToolValidate, validateDescription, func(ctx context.Context, _ json.RawMessage) (any, error) {
			return svc.Validate(ctx)
		}, middleware...)(r)
		WithTool(ToolListMovies, listMoviesDescription, typed(svc.ListMovies), middleware...)(r)
		WithTool(ToolGetVenueDetails, venueDetailsDescription, typed(svc.GetVenueDetails), middleware...)(r)
		WithTool(ToolBookTickets, bookTicketsDescription, typed(svc.BookTickets), middleware...)(r)
	}
}

// typed adapts a params-struct operation to a Handler.
func typed[P, R any](fn func(context.Context, P) (R, error)) Handler {
	return func(ctx context.Context, args json.RawMessage) (any, error) {
		params, err := DecodeArgs[P](args)
		if err != nil {
			return nil, err
		}
		return fn(ctx, params)
	}
}

// DecodeArgs unmarshals tool arguments. Empty or null arguments give the zero value.
func DecodeArgs[P any](args json.RawMessage) (P, error) {
	var params P
	trimmed := bytes.TrimSpace(args)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return params, nil
	}
	if err := json.Unmarshal(trimmed, &params); err != nil {
		return params, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}
	return params, nil
}

type invocationKey struct{}

// WithInvocationID attaches a caller-chosen invocation id to ctx.
func WithInvocationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, invocationKey{}, id)
}

// InvocationID returns the id attached to ctx, if any.
func InvocationID(ctx context.Context) string {
	id, _ := ctx.Value(invocationKey{}).(string)
	return id
}

// Logged logs each call with an invocation id, reusing one already on the context.
func Logged(name string, next Handler) Handler {
	return func(ctx context.Context, args json.RawMessage) (any, error) {
		id := InvocationID(ctx)
		if id == "" {
			id = uuid.NewString()
			ctx = WithInvocationID(ctx, id)
		}
		logger := slog.With("tool", name, "invocation_id", id)
		logger.Debug("tool call", "args", string(args))
		start := time.Now()
		result, err := next(ctx, args)
		if err != nil {
			logger.Warn("tool call failed", "error", err, "elapsed", time.Since(start))
			return nil, err
		}
		logger.Info("tool call", "elapsed", time.Since(start))
		return result, nil
	}
}
