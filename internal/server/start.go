package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// Start runs the HTTP server until an interrupt or terminate signal arrives,
// then shuts down gracefully.
func (s *Server) Start() {
	addr := s.Cfg.GetServerAddr()
	go func() {
		slog.Info("Starting server", "addr", addr)
		if err := s.E.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.E.Logger.Fatalf("shutting down the server: %v", err)
		}
	}()

	quit, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-quit.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		s.E.Logger.Fatal(err)
	}
}

// Shutdown stops the modules, the message bus, the HTTP server and the
// database connection, in that order.
func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down server")
	s.shutdownModules(ctx)

	if err := s.bus.Close(); err != nil {
		slog.Error("Failed to close message bus", "error", err)
	}

	err := s.E.Shutdown(ctx)

	if s.DB != nil {
		s.DB.Close(ctx)
	}
	return err
}
