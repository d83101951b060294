package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/drewfead/bms-booker/internal/tools"
)

const shutdownTimeout = 10 * time.Second

type ServeConfig struct {
	GRPCAddr  string
	HTTPAddr  string
	AuthToken string
}

// Serve runs whichever front ends have an address until ctx is done or one of them fails.
func Serve(ctx context.Context, registry *tools.Registry, cfg ServeConfig) error {
	if cfg.AuthToken == "" {
		return errors.New("auth token is required to serve")
	}
	if cfg.GRPCAddr == "" && cfg.HTTPAddr == "" {
		return errors.New("no listen address configured")
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errs := make(chan error, 2)
	running := 0

	if cfg.GRPCAddr != "" {
		lis, err := net.Listen("tcp", cfg.GRPCAddr)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", cfg.GRPCAddr, err)
		}
		grpcServer, err := NewGRPCServer(registry, cfg.AuthToken)
		if err != nil {
			_ = lis.Close()
			return err
		}
		running++
		go func() {
			slog.Info("grpc server listening", "addr", lis.Addr().String())
			errs <- grpcServer.Serve(lis)
		}()
		go func() {
			<-ctx.Done()
			grpcServer.GracefulStop()
		}()
	}

	if cfg.HTTPAddr != "" {
		httpServer := &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           NewHTTPHandler(registry, cfg.AuthToken),
			ReadHeaderTimeout: 10 * time.Second,
		}
		running++
		go func() {
			slog.Info("http server listening", "addr", cfg.HTTPAddr)
			err := httpServer.ListenAndServe()
			if errors.Is(err, http.ErrServerClosed) {
				err = nil
			}
			errs <- err
		}()
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			_ = httpServer.Shutdown(shutdownCtx)
		}()
	}

	var first error
	for range running {
		if err := <-errs; err != nil && first == nil {
			first = err
		}
		// one front end stopping stops the other
		cancel()
	}
	return first
}
