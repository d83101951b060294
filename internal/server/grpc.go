// Package server exposes the tool registry over gRPC and HTTP/JSON behind bearer auth.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/drewfead/bms-booker/internal/tools"
	toolsv1 "github.com/drewfead/bms-booker/proto/bmsbooker/tools/v1"
	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/encoding/protojson"
	protobuf "google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const invocationHeader = "x-invocation-id"

var (
	// requests are sent to tools with the proto field names, which match the tool parameters.
	argsMarshal = protojson.MarshalOptions{UseProtoNames: true}
	// results carry fields the messages do not model (e.g. the resolver score).
	resultUnmarshal = protojson.UnmarshalOptions{DiscardUnknown: true}
)

// toolServer serves ToolService from a tool registry, so every RPC goes through the
// registry's middleware.
type toolServer struct {
	toolsv1.UnimplementedToolServiceServer

	registry *tools.Registry
}

// NewToolServer serves registry's tools.
func NewToolServer(registry *tools.Registry) toolsv1.ToolServiceServer {
	return &toolServer{registry: registry}
}

func (s *toolServer) Validate(ctx context.Context, in *toolsv1.ValidateRequest) (*toolsv1.ValidateResponse, error) {
	result, err := s.run(ctx, tools.ToolValidate, in)
	if err != nil {
		return nil, err
	}
	number, ok := result.(string)
	if !ok {
		return nil, status.Errorf(codes.Internal, "%s returned %T", tools.ToolValidate, result)
	}
	return &toolsv1.ValidateResponse{OwnerNumber: number}, nil
}

func (s *toolServer) ListMovies(ctx context.Context, in *toolsv1.ListMoviesRequest) (*toolsv1.ListMoviesResponse, error) {
	out := new(toolsv1.ListMoviesResponse)
	if err := s.invoke(ctx, tools.ToolListMovies, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *toolServer) GetVenueDetails(ctx context.Context, in *toolsv1.GetVenueDetailsRequest) (*toolsv1.GetVenueDetailsResponse, error) {
	out := new(toolsv1.GetVenueDetailsResponse)
	if err := s.invoke(ctx, tools.ToolGetVenueDetails, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *toolServer) BookTickets(ctx context.Context, in *toolsv1.BookTicketsRequest) (*toolsv1.BookTicketsResponse, error) {
	out := new(toolsv1.BookTicketsResponse)
	if err := s.invoke(ctx, tools.ToolBookTickets, in, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *toolServer) Call(ctx context.Context, in *toolsv1.CallRequest) (*toolsv1.CallResponse, error) {
	if in.GetTool() == "" {
		return nil, status.Error(Code(tools.ErrInvalidArgument), "tool is required")
	}
	var args protobuf.Message
	if in.GetArguments() != nil {
		args = in.GetArguments()
	}
	result, err := s.run(ctx, in.GetTool(), args)
	if err != nil {
		return nil, err
	}
	value, err := toValue(result)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode %s result: %v", in.GetTool(), err)
	}
	return &toolsv1.CallResponse{Result: value}, nil
}

// run calls the named tool with in rendered as its JSON arguments.
func (s *toolServer) run(ctx context.Context, name string, in protobuf.Message) (any, error) {
	var args json.RawMessage
	if in != nil {
		raw, err := argsMarshal.Marshal(in)
		if err != nil {
			return nil, status.Error(Code(tools.ErrInvalidArgument), err.Error())
		}
		args = raw
	}
	result, err := s.registry.Call(ctx, name, args)
	if err != nil {
		return nil, status.Error(Code(err), err.Error())
	}
	return result, nil
}

// invoke runs the named tool and decodes its JSON result into out.
func (s *toolServer) invoke(ctx context.Context, name string, in, out protobuf.Message) error {
	result, err := s.run(ctx, name, in)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return status.Errorf(codes.Internal, "encode %s result: %v", name, err)
	}
	if err := resultUnmarshal.Unmarshal(raw, out); err != nil {
		return status.Errorf(codes.Internal, "decode %s result: %v", name, err)
	}
	return nil
}

// toValue converts any JSON-encodable tool result to a Value.
func toValue(result any) (*structpb.Value, error) {
	raw, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	out := new(structpb.Value)
	if err := protojson.Unmarshal(raw, out); err != nil {
		return nil, err
	}
	return out, nil
}

// BearerAuth rejects calls whose "authorization" metadata is not "Bearer <token>" and tags
// accepted calls with an invocation id, echoed in the x-invocation-id header.
func BearerAuth(token string) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		var header string
		if values := md.Get("authorization"); len(values) > 0 {
			header = values[0]
		}
		if !bearerOK(header, token) {
			slog.Warn("rejected grpc call", "method", info.FullMethod)
			return nil, status.Error(Code(ErrUnauthenticated), ErrUnauthenticated.Error())
		}
		id := uuid.NewString()
		_ = grpc.SetHeader(ctx, metadata.Pairs(invocationHeader, id))
		start := time.Now()
		resp, err := handler(tools.WithInvocationID(ctx, id), req)
		slog.Debug("grpc call", "method", info.FullMethod, "invocation_id", id, "code", status.Code(err), "elapsed", time.Since(start))
		return resp, err
	}
}

// NewGRPCServer returns a gRPC server with ToolService registered behind bearer auth.
func NewGRPCServer(registry *tools.Registry, token string, opts ...grpc.ServerOption) (*grpc.Server, error) {
	if token == "" {
		return nil, errors.New("auth token is required")
	}
	opts = append(opts, grpc.ChainUnaryInterceptor(BearerAuth(token)))
	s := grpc.NewServer(opts...)
	toolsv1.RegisterToolServiceServer(s, NewToolServer(registry))
	return s, nil
}

// bearerCredentials sends the token on every call. Transport security is left to the dial options.
type bearerCredentials struct {
	token string
}

func (c bearerCredentials) GetRequestMetadata(context.Context, ...string) (map[string]string, error) {
	return map[string]string{"authorization": "Bearer " + c.token}, nil
}

func (c bearerCredentials) RequireTransportSecurity() bool { return false }

// Client calls a remote ToolService.
type Client struct {
	toolsv1.ToolServiceClient

	conn *grpc.ClientConn
}

// NewClient connects to addr with token. Without dial options the connection is plaintext.
func NewClient(addr, token string, opts ...grpc.DialOption) (*Client, error) {
	if len(opts) == 0 {
		opts = []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	}
	opts = append(opts, grpc.WithPerRPCCredentials(bearerCredentials{token: token}))
	conn, err := grpc.NewClient(addr, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create grpc client for %s: %w", addr, err)
	}
	return &Client{ToolServiceClient: toolsv1.NewToolServiceClient(conn), conn: conn}, nil
}

func (c *Client) Close() error {
	return c.conn.Close()
}

// CallJSON runs a tool by name. args must be a JSON object or empty; the result is returned as JSON.
func (c *Client) CallJSON(ctx context.Context, tool string, args json.RawMessage, opts ...grpc.CallOption) (json.RawMessage, error) {
	in := &toolsv1.CallRequest{Tool: tool}
	if len(args) > 0 {
		in.Arguments = &structpb.Struct{}
		if err := protojson.Unmarshal(args, in.Arguments); err != nil {
			return nil, fmt.Errorf("%w: args must be a JSON object: %v", tools.ErrInvalidArgument, err)
		}
	}
	out, err := c.Call(ctx, in, opts...)
	if err != nil {
		return nil, err
	}
	return protojson.Marshal(out.GetResult())
}
