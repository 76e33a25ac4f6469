// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/handler"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Str("func", "*server.RunServer").Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if err := s.httpServer.Shutdown(); err != nil {
		s.logger.Err(err).Str("func", "*server.Shutdown").Msg("HTTP server shutdown")
	}
}

func (s *server) run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.server.Addr)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.httpServer.server.Addr, err)
	}

	return s.serve(ctx, ln)
}

// serve runs the HTTP server on ln until ctx is done, then shuts it down
// gracefully. It returns early if the server fails on its own.
func (s *server) serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(ln)
	}()

	s.logger.Info().Str("address", ln.Addr().String()).Msg("Launching HTTP server")

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down HTTP server")
	s.Shutdown()

	if err := <-errCh; err != nil {
		return fmt.Errorf("HTTP server stopped: %w", err)
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
