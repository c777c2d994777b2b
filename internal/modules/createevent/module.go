package createevent

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/nfrund/collectives/internal/i18n"
	"github.com/nfrund/collectives/internal/middleware"
	"github.com/nfrund/collectives/internal/module"
	"github.com/nfrund/collectives/internal/registry"
)

// Module implements the module.Module interface for event creation.
type Module struct {
	module.BaseModule
	cancel context.CancelFunc
}

// New creates a new instance of the Module.
func New() *Module {
	return &Module{}
}

// Name returns the unique name for the module.
func (m *Module) Name() string {
	return "createevent"
}

// Boot registers the create-event routes and starts the subscriber.
func (m *Module) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	sessions := registry.MustGet(reg, registry.SessionRepositoryKey)
	collectives := registry.MustGet(reg, registry.CollectiveRepositoryKey)
	events := registry.MustGet(reg, registry.EventRepositoryKey)
	publisher := registry.MustGet(reg, registry.PublisherKey)
	loc, ok := registry.Get(reg, registry.LocalizerKey)
	if !ok {
		loc = i18n.Provider()
	}

	if sub, ok := registry.Get(reg, registry.SubscriberKey); ok {
		subCtx, cancel := context.WithCancel(context.Background())
		m.cancel = cancel
		if err := NewSubscriber(sub, slog.Default()).Start(subCtx); err != nil {
			cancel()
			return err
		}
	}

	slog.Info("Booting createevent module: Setting up routes...")
	h := NewHandler(sessions, collectives, events, publisher, loc)
	RegisterRoutes(g, h, middleware.RequireSession(sessions))
	return nil
}

// Shutdown stops the subscriber.
func (m *Module) Shutdown(ctx context.Context) error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}

// RegisterRoutes mounts the page, its content fragment and the submission
// under /:collectiveSlug/events. requireSession guards the submission.
func RegisterRoutes(g *echo.Group, h *Handler, requireSession echo.MiddlewareFunc) {
	events := g.Group("/:"+SlugParam+"/events", echomw.CSRFWithConfig(echomw.CSRFConfig{
		TokenLookup:    "form:" + CSRFFieldName + ",header:" + echo.HeaderXCSRFToken,
		ContextKey:     CSRFContextKey,
		CookieName:     "_csrf",
		CookiePath:     "/",
		CookieHTTPOnly: true,
		CookieSameSite: http.SameSiteLaxMode,
	}))

	events.GET("/new", h.PageGet)
	events.GET("/new/content", h.ContentGet)
	events.POST("", h.CreatePost, middleware.RateLimiter(), requireSession)
}
