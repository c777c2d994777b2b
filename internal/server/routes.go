package server

import (
	"github.com/nfrund/collectives/internal/handlers"
)

// RegisterRoutes sets up the routes that do not belong to a module.
func (s *Server) RegisterRoutes() {
	s.E.GET("/health", handlers.Health)
}
