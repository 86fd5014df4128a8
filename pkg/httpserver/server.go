package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"
)

const shutdownTimeout = 30 * time.Second

// Server represents an HTTP server with graceful shutdown
type Server struct {
	server *http.Server
	logger *slog.Logger
}

// New creates a new HTTP server
func New(addr string, handler http.Handler, readTimeout, writeTimeout time.Duration, logger *slog.Logger) *Server {
	return &Server{
		server: &http.Server{
			Addr:         addr,
			Handler:      handler,
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		logger: logger,
	}
}

// Run listens on the configured address and serves until ctx is cancelled
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	serverErrors := make(chan error, 1)

	go func() {
		s.logger.Info("starting http server",
			slog.String("addr", ln.Addr().String()),
		)
		serverErrors <- s.server.Serve(ln)
	}()

	// Block until we receive a cancellation or an error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		// Attempt graceful shutdown
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("graceful shutdown failed, forcing shutdown",
				slog.String("error", err.Error()),
			)
			if err := s.server.Close(); err != nil {
				return err
			}
		}

		s.logger.Info("server stopped gracefully")
	}

	return nil
}
