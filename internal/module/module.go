package module

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/collectives/internal/registry"
)

// Module is a self-contained feature the server registers, boots and shuts
// down.
type Module interface {
	// Name returns a unique identifier for the module.
	Name() string

	// Register publishes services other modules may resolve. Every module is
	// registered before any module is booted.
	Register(reg *registry.Registry) error

	// Boot mounts the module's routes on router and starts its background work.
	Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error

	// Shutdown stops background work. Modules shut down in reverse boot order.
	Shutdown(ctx context.Context) error
}

// BaseModule provides no-op Register, Boot and Shutdown methods for modules
// to embed.
type BaseModule struct{}

func (m *BaseModule) Register(reg *registry.Registry) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, reg *registry.Registry) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error { return nil }

// Names returns the names of mods in order.
func Names(mods []Module) []string {
	names := make([]string, 0, len(mods))
	for _, m := range mods {
		names = append(names, m.Name())
	}
	return names
}
