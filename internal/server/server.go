package server

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/surrealdb/surrealdb.go"

	"github.com/nfrund/collectives/internal/config"
	"github.com/nfrund/collectives/internal/database"
	"github.com/nfrund/collectives/internal/domain"
	"github.com/nfrund/collectives/internal/handlers"
	"github.com/nfrund/collectives/internal/i18n"
	"github.com/nfrund/collectives/internal/logging"
	"github.com/nfrund/collectives/internal/middleware"
	"github.com/nfrund/collectives/internal/module"
	"github.com/nfrund/collectives/internal/pubsub"
	"github.com/nfrund/collectives/internal/registry"
	"github.com/nfrund/collectives/internal/rendering"
	"github.com/nfrund/collectives/web"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	DB       *surrealdb.DB
	Cfg      config.Provider
	Registry *registry.Registry

	bus     *pubsub.WatermillBridge
	modules []module.Module
}

// Services are the collaborators shared with the modules.
type Services struct {
	Sessions    domain.SessionRepository
	Collectives domain.CollectiveRepository
	Events      domain.EventRepository
	Localizer   i18n.Localizer
}

// New creates a new Server instance backed by SurrealDB. It exits the
// process when the database cannot be reached.
func New() *Server {
	logging.New()
	cfg := config.New()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg, database.DefaultBackoff())
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	if err := database.ApplySchema(ctx, db); err != nil {
		slog.Error("Failed to apply database schema", "error", err)
		os.Exit(1)
	}

	timeout := cfg.GetDBQueryTimeout()
	s, err := Build(cfg, Services{
		Sessions:    database.NewSurrealSessionStore(db, timeout),
		Collectives: database.NewSurrealCollectiveStore(db, timeout),
		Events:      database.NewSurrealEventStore(db, timeout),
		Localizer:   i18n.Provider(),
	}, AppModules())
	if err != nil {
		slog.Error("Failed to build server", "error", err)
		os.Exit(1)
	}
	s.DB = db
	return s
}

// Build wires the echo instance, the message bus and the modules around svc.
func Build(cfg config.Provider, svc Services, modules []module.Module) (*Server, error) {
	if svc.Localizer == nil {
		svc.Localizer = i18n.Provider()
	}

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Renderer = rendering.NewUniversalRenderer()
	setupErrorHandling(e)

	e.Use(echomw.RequestID())
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(middleware.Logger)

	store := sessions.NewCookieStore([]byte(cfg.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	bus := pubsub.NewWatermillBridge(slog.Default())
	reg := registry.New(cfg)
	registry.Set[domain.SessionRepository](reg, registry.SessionRepositoryKey, svc.Sessions)
	registry.Set[domain.CollectiveRepository](reg, registry.CollectiveRepositoryKey, svc.Collectives)
	registry.Set[domain.EventRepository](reg, registry.EventRepositoryKey, svc.Events)
	registry.Set[pubsub.Publisher](reg, registry.PublisherKey, bus)
	registry.Set[pubsub.Subscriber](reg, registry.SubscriberKey, bus)
	registry.Set[i18n.Localizer](reg, registry.LocalizerKey, svc.Localizer)

	s := &Server{
		E:        e,
		Cfg:      cfg,
		Registry: reg,
		bus:      bus,
		modules:  modules,
	}

	if err := s.bootModules(context.Background()); err != nil {
		_ = bus.Close()
		return nil, err
	}
	s.RegisterRoutes()
	return s, nil
}
