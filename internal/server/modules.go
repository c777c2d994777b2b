package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/nfrund/collectives/internal/module"
	"github.com/nfrund/collectives/internal/modules/createevent"
)

// AppModules returns the modules the application is made of. The server
// registers and boots them in order.
func AppModules() []module.Module {
	return []module.Module{
		createevent.New(),
	}
}

func (s *Server) bootModules(ctx context.Context) error {
	for _, m := range s.modules {
		if err := m.Register(s.Registry); err != nil {
			return fmt.Errorf("register module %s: %w", m.Name(), err)
		}
	}

	root := s.E.Group("")
	for _, m := range s.modules {
		slog.Info("Booting module", "module", m.Name())
		if err := m.Boot(ctx, root, s.Registry); err != nil {
			return fmt.Errorf("boot module %s: %w", m.Name(), err)
		}
	}
	slog.Info("Modules booted", "modules", module.Names(s.modules), "services", s.Registry.Keys())
	return nil
}

func (s *Server) shutdownModules(ctx context.Context) {
	for i := len(s.modules) - 1; i >= 0; i-- {
		m := s.modules[i]
		if err := m.Shutdown(ctx); err != nil {
			slog.Error("Module shutdown failed", "module", m.Name(), "error", err)
		}
	}
}
