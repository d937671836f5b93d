// Package server runs the HTTP server with graceful shutdown.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/okutan/lexbook/internal/bootstrap"
	"github.com/okutan/lexbook/internal/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the HTTP server and its dependencies
type Server struct {
	deps *bootstrap.Dependencies
	http *http.Server
}

// NewServer creates a server from assembled dependencies
func NewServer(deps *bootstrap.Dependencies) *Server {
	router := bootstrap.SetupRouter(deps)

	return &Server{
		deps: deps,
		http: &http.Server{
			Addr:    ":" + deps.Config.Server.Port,
			Handler: router,
		},
	}
}

// Run starts the server and blocks until shutdown completes. SIGINT and
// SIGTERM trigger a graceful stop.
func (s *Server) Run() error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", s.http.Addr).Msg("HTTP server listening")
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	return s.Shutdown()
}

// Shutdown stops the HTTP server and closes the database pool
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := s.http.Shutdown(ctx)
	s.deps.DB.Close()
	if err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}

	logger.Info().Msg("Server stopped")
	return nil
}
